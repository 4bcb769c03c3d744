package stripe

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"github.com/sullivan-trading/sullivan-api/internal/apperrors"
	"github.com/sullivan-trading/sullivan-api/internal/client/payments"
	"go.uber.org/zap"
)

// VerifyWebhook validates the Stripe-Signature header against the shared
// webhook secret and maps the event to its canonical form. The signature
// must verify before any payload content is interpreted.
func (s *Service) VerifyWebhook(payload []byte, signatureHeader string) (payments.WebhookEvent, error) {
	if s.webhookSecret == "" {
		return payments.WebhookEvent{}, apperrors.NewConfiguration("stripe webhook secret not configured")
	}

	event, err := webhook.ConstructEvent(payload, signatureHeader, s.webhookSecret)
	if err != nil {
		s.logger.Error("Webhook signature verification failed", zap.Error(err))
		return payments.WebhookEvent{}, apperrors.NewAuthentication("webhook signature verification failed", err)
	}

	s.logger.Info("Received Stripe webhook event",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
	)

	out := payments.WebhookEvent{
		ProviderEventID: event.ID,
		Provider:        s.GetServiceName(),
		EventType:       string(event.Type),
		ReceivedAt:      time.Now().Unix(),
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			s.logger.Error("Failed to unmarshal checkout session payload", zap.Error(err))
			return out, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
		}

		out.EventType = payments.EventCheckoutCompleted
		checkout := &payments.CheckoutSession{ID: session.ID}
		if session.PaymentLink != nil {
			checkout.PaymentLinkID = session.PaymentLink.ID
		}
		out.Checkout = checkout

	default:
		// Unhandled event types are acknowledged upstream; nothing to map.
	}

	return out, nil
}
