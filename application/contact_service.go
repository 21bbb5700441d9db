package application

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/amar2mail9/Polytechub.com/domain/contracts"
	"github.com/amar2mail9/Polytechub.com/logging"
)

// ContactForm is the raw contact page submission before validation.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Validate checks the submission. All fields are required; the email must
// be well formed.
func (f ContactForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 200),
		),
		validation.Field(&f.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("email address is not valid"),
		),
		validation.Field(&f.Subject,
			validation.Required.Error("subject is required"),
			validation.Length(1, 300),
		),
		validation.Field(&f.Message,
			validation.Required.Error("message is required"),
		),
	)
}

// ContactService validates contact submissions and relays them through the
// email-delivery service. Delivery failures are surfaced to the caller; no
// automatic retries.
type ContactService struct {
	relay  contracts.MailRelay
	logger *logging.Logger
}

// NewContactService creates a contact service.
func NewContactService(relay contracts.MailRelay, logger *logging.Logger) *ContactService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ContactService{
		relay:  relay,
		logger: logger.WithComponent("contact"),
	}
}

// Submit validates and relays one contact message.
func (s *ContactService) Submit(ctx context.Context, form ContactForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	err := s.relay.Send(ctx, contracts.ContactMessage{
		FromName:  form.Name,
		FromEmail: form.Email,
		Subject:   form.Subject,
		Message:   form.Message,
	})
	if err != nil {
		s.logger.Error("contact relay failed", "error", err)
		return err
	}
	return nil
}
