// Package stripe implements the payments boundary against Stripe using
// the v82 client API.
package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/sullivan-trading/sullivan-api/internal/client/payments"
	"go.uber.org/zap"
)

// Ensure Service implements both sides of the payments boundary.
var (
	_ payments.LinkProvider    = (*Service)(nil)
	_ payments.WebhookVerifier = (*Service)(nil)
)

// Service wraps the Stripe client for payment link provisioning and
// webhook verification. With an empty API key the service stays
// unconfigured and Configured reports false; the webhook secret is
// checked separately on delivery so a missing secret surfaces as a
// server-side configuration error, not a silent skip.
type Service struct {
	client        *stripe.Client
	webhookSecret string
	logger        *zap.Logger
}

// New creates a Service. apiKey may be empty (Stripe disabled).
func New(apiKey, webhookSecret string, logger *zap.Logger) *Service {
	s := &Service{
		webhookSecret: webhookSecret,
		logger:        logger,
	}
	if apiKey != "" {
		s.client = stripe.NewClient(apiKey, nil)
	}
	return s
}

// GetServiceName returns the name of the provider.
func (s *Service) GetServiceName() string {
	return "stripe"
}

// Configured reports whether the API client is usable.
func (s *Service) Configured() bool {
	return s.client != nil
}

// CheckConnection verifies that the service can reach Stripe.
func (s *Service) CheckConnection(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("stripe client not configured")
	}
	_, err := s.client.V1Accounts.Retrieve(ctx, &stripe.AccountRetrieveParams{})
	if err != nil {
		return fmt.Errorf("failed to connect to Stripe: %w", err)
	}
	return nil
}
