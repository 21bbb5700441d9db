// Package mailrelay delivers contact form submissions through a hosted
// email-delivery REST service (an EmailJS-style send endpoint).
package mailrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/amar2mail9/Polytechub.com/domain/contracts"
	"github.com/amar2mail9/Polytechub.com/logging"
	"github.com/amar2mail9/Polytechub.com/platform/metrics"
)

// DefaultTimeout bounds a single relay round trip.
const DefaultTimeout = 15 * time.Second

// Config holds the relay service credentials and endpoint.
type Config struct {
	Endpoint   string // full send URL, e.g. https://api.emailjs.com/api/v1.0/email/send
	ServiceID  string
	TemplateID string
	PublicKey  string
	ToName     string // recipient display name injected into the template
}

// Client relays contact messages through the configured delivery service.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *logging.Logger
}

var _ contracts.MailRelay = (*Client)(nil)

// New creates a relay client.
func New(cfg Config, timeout time.Duration, logger *logging.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.WithComponent("mailrelay"),
	}
}

// sendRequest is the delivery service's wire format.
type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

// Send relays one contact message. A non-success status from the delivery
// service is returned as an error; no retries are attempted.
func (c *Client) Send(ctx context.Context, msg contracts.ContactMessage) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:  c.cfg.ServiceID,
		TemplateID: c.cfg.TemplateID,
		UserID:     c.cfg.PublicKey,
		TemplateParams: map[string]any{
			"to_name":    c.cfg.ToName,
			"from_name":  msg.FromName,
			"from_email": msg.FromEmail,
			"subject":    msg.Subject,
			"message":    msg.Message,
		},
	})
	if err != nil {
		return fmt.Errorf("encode relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ContactRelaysTotal.WithLabelValues("error").Inc()
		c.logger.Error("mail relay unreachable", "error", err)
		return fmt.Errorf("mail relay unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ContactRelaysTotal.WithLabelValues("rejected").Inc()
		c.logger.Error("mail relay rejected message", "status", resp.StatusCode)
		return fmt.Errorf("mail relay returned status %d", resp.StatusCode)
	}

	metrics.ContactRelaysTotal.WithLabelValues("success").Inc()
	c.logger.Mail("contact message relayed", "from", msg.FromEmail, "subject", msg.Subject)
	return nil
}
