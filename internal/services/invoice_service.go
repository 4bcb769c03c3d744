package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sullivan-trading/sullivan-api/internal/apperrors"
	"github.com/sullivan-trading/sullivan-api/internal/client/payments"
	"github.com/sullivan-trading/sullivan-api/internal/constants"
	"github.com/sullivan-trading/sullivan-api/internal/store"
	"go.uber.org/zap"
)

// InvoiceFormInput is raw operator input: optional fields may be empty
// and the three line-item arrays are parallel, with unit prices given in
// decimal currency units (dollars).
type InvoiceFormInput struct {
	CustomerName  string   `json:"customer_name"`
	CustomerEmail string   `json:"customer_email"`
	Notes         string   `json:"notes"`
	Descriptions  []string `json:"descriptions"`
	Quantities    []string `json:"quantities"`
	UnitPrices    []string `json:"unit_prices"`
}

// CreateInvoiceResult reports the outcome of invoice creation. A failed
// payment-link provision does not fail the invoice: LinkErr carries the
// downgraded error and the invoice stands without a link.
type CreateInvoiceResult struct {
	Invoice            store.Invoice
	PaymentLinkCreated bool
	LinkErr            error
}

// InvoiceService orchestrates invoice creation: validation, persistence
// through the store, and optional payment-link provisioning via the
// external processor.
type InvoiceService struct {
	store    store.Store
	provider payments.LinkProvider
	emailer  InvoiceEmailSender
	logger   *zap.Logger
}

// NewInvoiceService creates an InvoiceService. emailer may be nil when
// invoice email is not configured.
func NewInvoiceService(st store.Store, provider payments.LinkProvider, emailer InvoiceEmailSender, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{
		store:    st,
		provider: provider,
		emailer:  emailer,
		logger:   logger,
	}
}

// parseLineItems normalizes the parallel form arrays: quantity defaults
// to 1 unless a positive integer, dollar amounts become rounded cents,
// and items with an empty description or non-positive price are dropped.
func parseLineItems(input InvoiceFormInput) []store.LineItemParams {
	items := []store.LineItemParams{}
	for i, desc := range input.Descriptions {
		desc = strings.TrimSpace(desc)

		quantity := int32(1)
		if i < len(input.Quantities) {
			if q, err := strconv.Atoi(strings.TrimSpace(input.Quantities[i])); err == nil && q > 0 {
				quantity = int32(q)
			}
		}

		var unitPriceCents int64
		if i < len(input.UnitPrices) {
			if price, err := strconv.ParseFloat(strings.TrimSpace(input.UnitPrices[i]), 64); err == nil {
				unitPriceCents = int64(math.Round(price * 100))
			}
		}

		if desc == "" || unitPriceCents <= 0 {
			continue
		}
		items = append(items, store.LineItemParams{
			Description:    desc,
			Quantity:       quantity,
			UnitPriceCents: unitPriceCents,
		})
	}
	return items
}

// CreateInvoice validates the operator input, persists the invoice, and
// attempts payment-link provisioning when the processor is configured.
// Provisioning failure is downgraded into the result; the invoice is
// never rolled back once committed.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input InvoiceFormInput) (CreateInvoiceResult, error) {
	if strings.TrimSpace(input.CustomerName) == "" || len(input.Descriptions) == 0 {
		return CreateInvoiceResult{}, apperrors.NewValidation("missing required fields")
	}

	lineItems := parseLineItems(input)
	if len(lineItems) == 0 {
		return CreateInvoiceResult{}, apperrors.NewValidation("no valid line items")
	}

	invoice, err := s.store.CreateInvoice(ctx, store.CreateInvoiceParams{
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerEmail: strings.TrimSpace(input.CustomerEmail),
		Notes:         strings.TrimSpace(input.Notes),
		LineItems:     lineItems,
	})
	if err != nil {
		return CreateInvoiceResult{}, err
	}

	if !s.provider.Configured() {
		s.logger.Info("Payment processor not configured, invoice created without payment link",
			zap.String("invoice_number", invoice.InvoiceNumber))
		return CreateInvoiceResult{Invoice: invoice}, nil
	}

	linked, created, linkErr := s.EnsurePaymentLink(ctx, invoice.ID)
	if linkErr != nil {
		// Deliberate partial state: the invoice stands without a link and
		// the operator can retry provisioning later.
		s.logger.Error("Payment link provisioning failed, invoice kept without link",
			zap.Int64("invoice_id", invoice.ID),
			zap.Error(linkErr),
		)
		return CreateInvoiceResult{Invoice: invoice, LinkErr: linkErr}, nil
	}
	return CreateInvoiceResult{Invoice: linked, PaymentLinkCreated: created}, nil
}

// EnsurePaymentLink provisions a payment link for the invoice if it does
// not already have one. Idempotent and keyed by invoice id, so it can be
// retried after a partial failure. Returns the (possibly updated)
// invoice and whether a new link was created by this call.
func (s *InvoiceService) EnsurePaymentLink(ctx context.Context, invoiceID int64) (store.Invoice, bool, error) {
	invoice, err := s.store.GetInvoice(ctx, invoiceID)
	if err != nil {
		return store.Invoice{}, false, err
	}

	if invoice.StripePaymentLinkID.Valid {
		return invoice, false, nil
	}
	if invoice.Status == store.InvoiceStatusPaid {
		return invoice, false, nil
	}
	if !s.provider.Configured() {
		return invoice, false, apperrors.NewConfiguration("payment processor credentials not configured")
	}

	productName := fmt.Sprintf("Invoice %s - %s", invoice.InvoiceNumber, invoice.CustomerName)
	productID, err := s.provider.CreateProduct(ctx, productName)
	if err != nil {
		return invoice, false, apperrors.NewExternalService(constants.StripeProvider, err)
	}

	priceID, err := s.provider.CreatePrice(ctx, productID, invoice.TotalCents, constants.USDCurrency)
	if err != nil {
		return invoice, false, apperrors.NewExternalService(constants.StripeProvider, err)
	}

	link, err := s.provider.CreatePaymentLink(ctx, priceID, map[string]string{
		"invoice_id":     strconv.FormatInt(invoice.ID, 10),
		"invoice_number": invoice.InvoiceNumber,
	})
	if err != nil {
		return invoice, false, apperrors.NewExternalService(constants.StripeProvider, err)
	}

	updated, err := s.store.RecordPaymentLink(ctx, store.RecordPaymentLinkParams{
		InvoiceID:            invoice.ID,
		StripeProductID:      productID,
		StripePriceID:        priceID,
		StripePaymentLinkID:  link.ID,
		StripePaymentLinkURL: link.URL,
	})
	if err != nil {
		return invoice, false, err
	}

	s.sendInvoiceEmail(ctx, updated)
	return updated, true, nil
}

// sendInvoiceEmail is a best-effort side effect: failure is logged, the
// invoice and its link are already committed.
func (s *InvoiceService) sendInvoiceEmail(ctx context.Context, invoice store.Invoice) {
	if s.emailer == nil || !s.emailer.Configured() {
		return
	}
	if !invoice.CustomerEmail.Valid || !invoice.StripePaymentLinkURL.Valid {
		return
	}

	err := s.emailer.SendInvoiceEmail(ctx, InvoiceEmailData{
		CustomerName:   invoice.CustomerName,
		CustomerEmail:  invoice.CustomerEmail.String,
		InvoiceNumber:  invoice.InvoiceNumber,
		TotalFormatted: FormatCentsUSD(invoice.TotalCents),
		PaymentLinkURL: invoice.StripePaymentLinkURL.String,
		MerchantName:   "Sullivan Trading",
	})
	if err != nil {
		s.logger.Error("Failed to send invoice email",
			zap.String("invoice_number", invoice.InvoiceNumber),
			zap.Error(err),
		)
	}
}

// GetInvoice returns one invoice with line items.
func (s *InvoiceService) GetInvoice(ctx context.Context, id int64) (store.Invoice, error) {
	return s.store.GetInvoice(ctx, id)
}

// GetInvoiceByNumber returns one invoice by its human-facing number.
func (s *InvoiceService) GetInvoiceByNumber(ctx context.Context, number string) (store.Invoice, error) {
	return s.store.GetInvoiceByNumber(ctx, number)
}

// ListInvoices lists invoices with optional status and search filters.
func (s *InvoiceService) ListInvoices(ctx context.Context, params store.ListInvoicesParams) ([]store.Invoice, error) {
	return s.store.ListInvoices(ctx, params)
}

// Dashboard runs the overdue sweep and returns stats plus the most
// recent invoices.
func (s *InvoiceService) Dashboard(ctx context.Context) (store.DashboardStats, []store.Invoice, error) {
	if _, err := s.store.MarkOverdueInvoices(ctx); err != nil {
		return store.DashboardStats{}, nil, err
	}
	stats, err := s.store.GetDashboardStats(ctx)
	if err != nil {
		return store.DashboardStats{}, nil, err
	}
	recent, err := s.store.RecentInvoices(ctx, 10)
	if err != nil {
		return store.DashboardStats{}, nil, err
	}
	return stats, recent, nil
}

// SweepOverdue marks stale pending invoices overdue and returns how many
// rows transitioned.
func (s *InvoiceService) SweepOverdue(ctx context.Context) (int64, error) {
	return s.store.MarkOverdueInvoices(ctx)
}

// FormatCentsUSD renders integer cents as a dollar string.
func FormatCentsUSD(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
