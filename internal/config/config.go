package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sullivan-trading/sullivan-api/internal/constants"
)

// Config holds everything the process reads from the environment.
// godotenv populates the environment in main for local development;
// deployed stages inject real environment variables.
type Config struct {
	Stage       string
	Port        string
	DatabaseURL string

	StripeSecretKey     string
	StripeWebhookSecret string

	AdminPasswordHash string
	SessionSecret     string

	ResendAPIKey     string
	InvoiceFromEmail string
	InvoiceFromName  string

	AllowedOrigins []string
}

// Load reads configuration from the environment. DATABASE_URL is the only
// hard requirement; Stripe and Resend credentials are optional and the
// features they back degrade gracefully without them.
func Load() (*Config, error) {
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = constants.StageLocal
	}
	if !constants.IsValidStage(stage) {
		return nil, fmt.Errorf("invalid STAGE %q: must be one of %s, %s, %s",
			stage, constants.StageProd, constants.StageDev, constants.StageLocal)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		if stage == constants.StageProd {
			return nil, fmt.Errorf("SESSION_SECRET environment variable is required in prod")
		}
		sessionSecret = "dev-secret-change-me"
	}

	var origins []string
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	fromName := os.Getenv("INVOICE_FROM_NAME")
	if fromName == "" {
		fromName = "Sullivan Trading"
	}

	return &Config{
		Stage:               stage,
		Port:                port,
		DatabaseURL:         dbURL,
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		AdminPasswordHash:   os.Getenv("ADMIN_PASSWORD_HASH"),
		SessionSecret:       sessionSecret,
		ResendAPIKey:        os.Getenv("RESEND_API_KEY"),
		InvoiceFromEmail:    os.Getenv("INVOICE_FROM_EMAIL"),
		InvoiceFromName:     fromName,
		AllowedOrigins:      origins,
	}, nil
}

// StripeConfigured reports whether payment link creation can be attempted.
func (c *Config) StripeConfigured() bool {
	return strings.HasPrefix(c.StripeSecretKey, "sk_")
}

// EmailConfigured reports whether invoice emails can be sent.
func (c *Config) EmailConfigured() bool {
	return c.ResendAPIKey != "" && c.InvoiceFromEmail != ""
}

// IsDevelopment reports whether the process runs in a non-prod stage.
func (c *Config) IsDevelopment() bool {
	return c.Stage != constants.StageProd
}
