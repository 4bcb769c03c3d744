package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/sullivan-trading/sullivan-api/internal/client/payments"
	"go.uber.org/zap"
)

// CreateProduct creates the Stripe product backing one invoice.
func (s *Service) CreateProduct(ctx context.Context, name string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("stripe client not configured")
	}

	params := &stripe.ProductCreateParams{
		Name: stripe.String(name),
	}

	product, err := s.client.V1Products.Create(ctx, params)
	if err != nil {
		s.logger.Error("Failed to create Stripe product", zap.Error(err), zap.String("name", name))
		return "", fmt.Errorf("stripe.CreateProduct: %w", err)
	}

	s.logger.Info("Created Stripe product", zap.String("stripe_product_id", product.ID))
	return product.ID, nil
}

// CreatePrice creates a one-time price for the invoice total. Amount is
// in the smallest currency unit.
func (s *Service) CreatePrice(ctx context.Context, productID string, amountCents int64, currency string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("stripe client not configured")
	}

	params := &stripe.PriceCreateParams{
		Product:    stripe.String(productID),
		UnitAmount: stripe.Int64(amountCents),
		Currency:   stripe.String(string(stripe.Currency(currency))),
	}

	price, err := s.client.V1Prices.Create(ctx, params)
	if err != nil {
		s.logger.Error("Failed to create Stripe price",
			zap.Error(err),
			zap.String("stripe_product_id", productID),
			zap.Int64("amount_cents", amountCents),
		)
		return "", fmt.Errorf("stripe.CreatePrice: %w", err)
	}

	s.logger.Info("Created Stripe price", zap.String("stripe_price_id", price.ID))
	return price.ID, nil
}

// CreatePaymentLink creates a shareable checkout page for the price.
// Metadata carries the invoice correlation so webhook events can be
// traced back even without the payment link id.
func (s *Service) CreatePaymentLink(ctx context.Context, priceID string, metadata map[string]string) (payments.PaymentLink, error) {
	if s.client == nil {
		return payments.PaymentLink{}, fmt.Errorf("stripe client not configured")
	}

	params := &stripe.PaymentLinkCreateParams{
		LineItems: []*stripe.PaymentLinkCreateLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: metadata,
	}

	link, err := s.client.V1PaymentLinks.Create(ctx, params)
	if err != nil {
		s.logger.Error("Failed to create Stripe payment link", zap.Error(err), zap.String("stripe_price_id", priceID))
		return payments.PaymentLink{}, fmt.Errorf("stripe.CreatePaymentLink: %w", err)
	}

	s.logger.Info("Created Stripe payment link",
		zap.String("stripe_payment_link_id", link.ID),
		zap.String("url", link.URL),
	)
	return payments.PaymentLink{ID: link.ID, URL: link.URL}, nil
}
