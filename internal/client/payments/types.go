// Package payments defines the provider-neutral boundary to the external
// payment processor: link provisioning on the way out, verified webhook
// events on the way in. Provider implementations live in subpackages
// (currently stripe); tests substitute deterministic fakes.
package payments

import "context"

// Canonical event types. Providers map their own event names onto these;
// anything else is passed through unhandled.
const (
	EventCheckoutCompleted = "checkout.completed"
)

// PaymentLink is a provisioned, externally hosted checkout page.
type PaymentLink struct {
	ID  string
	URL string
}

// CheckoutSession carries the identifiers extracted from a completed
// checkout event. PaymentLinkID may be empty when the checkout was not
// reached through a payment link.
type CheckoutSession struct {
	ID            string
	PaymentLinkID string
}

// WebhookEvent is the canonical form of a verified provider event.
type WebhookEvent struct {
	ProviderEventID string
	Provider        string
	EventType       string
	ReceivedAt      int64
	Checkout        *CheckoutSession
}

// LinkProvider provisions the processor-side objects backing an invoice
// payment link: a product, a price for the invoice total, and the link
// itself.
type LinkProvider interface {
	// Configured reports whether credentials are present. When false the
	// creation workflow skips link provisioning entirely.
	Configured() bool
	CreateProduct(ctx context.Context, name string) (string, error)
	CreatePrice(ctx context.Context, productID string, amountCents int64, currency string) (string, error)
	CreatePaymentLink(ctx context.Context, priceID string, metadata map[string]string) (PaymentLink, error)
}

// WebhookVerifier authenticates a raw webhook delivery against the
// shared secret and parses it into a canonical event. Implementations
// return apperrors.ConfigurationError when no secret is configured and
// apperrors.AuthenticationError when the signature does not verify.
type WebhookVerifier interface {
	VerifyWebhook(payload []byte, signatureHeader string) (WebhookEvent, error)
}

// VerifyFunc adapts a plain function to the WebhookVerifier interface.
type VerifyFunc func(payload []byte, signatureHeader string) (WebhookEvent, error)

// VerifyWebhook implements WebhookVerifier.
func (f VerifyFunc) VerifyWebhook(payload []byte, signatureHeader string) (WebhookEvent, error) {
	return f(payload, signatureHeader)
}
