package config

import (
	"os"
	"time"

	"github.com/amar2mail9/Polytechub.com/infrastructure/mailrelay"
	"github.com/amar2mail9/Polytechub.com/logging"
)

// AppConfig holds application-wide system configuration.
type AppConfig struct {
	HTTPAddr    string
	HTTPLogPath string

	// CMSBaseURL is the root of the headless CMS REST API,
	// e.g. https://example.com/wp-json/wp/v2
	CMSBaseURL string
	CMSTimeout time.Duration

	MailRelay        mailrelay.Config
	MailRelayTimeout time.Duration

	Logging *logging.Config
}

// LoadAppConfigFromEnv loads complete application configuration from
// environment variables.
func LoadAppConfigFromEnv() *AppConfig {
	return &AppConfig{
		HTTPAddr:    getEnvWithDefault("HTTP_ADDR", ":8080"),
		HTTPLogPath: getEnvWithDefault("HTTP_LOG_PATH", ""),

		CMSBaseURL: getEnvWithDefault("CMS_API_URL", ""),
		CMSTimeout: getEnvDurationWithDefault("CMS_TIMEOUT", 10*time.Second),

		MailRelay: mailrelay.Config{
			Endpoint:   getEnvWithDefault("MAIL_RELAY_URL", "https://api.emailjs.com/api/v1.0/email/send"),
			ServiceID:  getEnvWithDefault("MAIL_RELAY_SERVICE_ID", ""),
			TemplateID: getEnvWithDefault("MAIL_RELAY_TEMPLATE_ID", ""),
			PublicKey:  getEnvWithDefault("MAIL_RELAY_PUBLIC_KEY", ""),
			ToName:     getEnvWithDefault("MAIL_RELAY_TO_NAME", "Site Admin"),
		},
		MailRelayTimeout: getEnvDurationWithDefault("MAIL_RELAY_TIMEOUT", 15*time.Second),

		Logging: LoadLoggingConfigFromEnv(),
	}
}

// LoadLoggingConfigFromEnv loads logging configuration from environment
// variables.
func LoadLoggingConfigFromEnv() *logging.Config {
	return &logging.Config{
		Level:  getEnvWithDefault("LOG_LEVEL", "info"),
		Format: getEnvWithDefault("LOG_FORMAT", "json"),
		Output: getEnvWithDefault("LOG_OUTPUT", "stdout"),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
