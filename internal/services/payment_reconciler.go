package services

import (
	"context"

	"github.com/sullivan-trading/sullivan-api/internal/client/payments"
	"github.com/sullivan-trading/sullivan-api/internal/store"
	"go.uber.org/zap"
)

// PaymentReconciler consumes webhook deliveries from the payment
// processor and settles the matching invoice. The verifier is injected
// so tests can substitute a deterministic fake for the provider's
// signature check.
type PaymentReconciler struct {
	verifier payments.WebhookVerifier
	store    store.Store
	logger   *zap.Logger
}

// NewPaymentReconciler creates a PaymentReconciler.
func NewPaymentReconciler(verifier payments.WebhookVerifier, st store.Store, logger *zap.Logger) *PaymentReconciler {
	return &PaymentReconciler{
		verifier: verifier,
		store:    st,
		logger:   logger,
	}
}

// HandleEvent verifies and applies one webhook delivery. The processor
// delivers at least once, so the store-side state guard makes repeated
// application of the same event a no-op rather than a double credit.
// Errors out of verification keep their kind (authentication vs
// configuration) so the handler can map them to 400 vs 500.
func (r *PaymentReconciler) HandleEvent(ctx context.Context, payload []byte, signatureHeader string) error {
	event, err := r.verifier.VerifyWebhook(payload, signatureHeader)
	if err != nil {
		return err
	}

	if event.EventType != payments.EventCheckoutCompleted {
		r.logger.Debug("Ignoring webhook event",
			zap.String("event_type", event.EventType),
			zap.String("event_id", event.ProviderEventID),
		)
		return nil
	}

	if event.Checkout == nil || event.Checkout.PaymentLinkID == "" {
		// Checkout completed outside a payment link; nothing to reconcile.
		r.logger.Info("Checkout completed without payment link, ignoring",
			zap.String("event_id", event.ProviderEventID))
		return nil
	}

	affected, err := r.store.MarkInvoicePaidByPaymentLink(ctx, event.Checkout.PaymentLinkID, event.Checkout.ID)
	if err != nil {
		return err
	}

	if affected == 0 {
		r.logger.Info("No eligible invoice for payment link, likely duplicate delivery",
			zap.String("payment_link_id", event.Checkout.PaymentLinkID),
			zap.String("event_id", event.ProviderEventID),
		)
		return nil
	}

	r.logger.Info("Invoice paid via payment link",
		zap.String("payment_link_id", event.Checkout.PaymentLinkID),
		zap.String("checkout_session_id", event.Checkout.ID),
	)
	return nil
}
