package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sullivan-trading/sullivan-api/internal/apperrors"
	"github.com/sullivan-trading/sullivan-api/internal/client/payments"
	"github.com/sullivan-trading/sullivan-api/internal/mocks"
	"github.com/sullivan-trading/sullivan-api/internal/services"
	"github.com/sullivan-trading/sullivan-api/internal/store"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func validInput() services.InvoiceFormInput {
	return services.InvoiceFormInput{
		CustomerName: "Acme Corp",
		Descriptions: []string{"Consulting"},
		Quantities:   []string{"2"},
		UnitPrices:   []string{"50.00"},
	}
}

func TestCreateInvoiceValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   services.InvoiceFormInput
		wantErr string
	}{
		{
			name: "missing customer name",
			input: services.InvoiceFormInput{
				Descriptions: []string{"Consulting"},
				UnitPrices:   []string{"50.00"},
			},
			wantErr: "missing required fields",
		},
		{
			name: "whitespace customer name",
			input: services.InvoiceFormInput{
				CustomerName: "   ",
				Descriptions: []string{"Consulting"},
				UnitPrices:   []string{"50.00"},
			},
			wantErr: "missing required fields",
		},
		{
			name: "no line items at all",
			input: services.InvoiceFormInput{
				CustomerName: "Acme Corp",
			},
			wantErr: "missing required fields",
		},
		{
			name: "all line items filtered out",
			input: services.InvoiceFormInput{
				CustomerName: "Acme Corp",
				Descriptions: []string{"", "Free item"},
				UnitPrices:   []string{"50.00", "0"},
			},
			wantErr: "no valid line items",
		},
		{
			name: "negative price only",
			input: services.InvoiceFormInput{
				CustomerName: "Acme Corp",
				Descriptions: []string{"Refund"},
				UnitPrices:   []string{"-10.00"},
			},
			wantErr: "no valid line items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No store or provider expectations: rejected input must not
			// touch either.
			st := mocks.NewMockStoreForTest(t)
			provider := mocks.NewMockLinkProviderForTest(t)
			svc := services.NewInvoiceService(st, provider, nil, zap.NewNop())

			_, err := svc.CreateInvoice(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestCreateInvoiceLineItemNormalization(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	provider := mocks.NewMockLinkProviderForTest(t)
	svc := services.NewInvoiceService(st, provider, nil, zap.NewNop())

	input := services.InvoiceFormInput{
		CustomerName:  "  Acme Corp  ",
		CustomerEmail: "billing@acme.test",
		Descriptions:  []string{"Consulting", "  Hosting  ", "", "Comped"},
		Quantities:    []string{"3", "", "1", "2"},
		UnitPrices:    []string{"19.99", "100", "5.00", "0"},
	}

	var captured store.CreateInvoiceParams
	st.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params store.CreateInvoiceParams) (store.Invoice, error) {
			captured = params
			return store.Invoice{ID: 1, InvoiceNumber: "INV-0001", Status: store.InvoiceStatusDraft}, nil
		})
	provider.EXPECT().Configured().Return(false)

	_, err := svc.CreateInvoice(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", captured.CustomerName)
	require.Len(t, captured.LineItems, 2)

	assert.Equal(t, "Consulting", captured.LineItems[0].Description)
	assert.Equal(t, int32(3), captured.LineItems[0].Quantity)
	assert.Equal(t, int64(1999), captured.LineItems[0].UnitPriceCents)

	// Blank quantity defaults to 1.
	assert.Equal(t, "Hosting", captured.LineItems[1].Description)
	assert.Equal(t, int32(1), captured.LineItems[1].Quantity)
	assert.Equal(t, int64(10000), captured.LineItems[1].UnitPriceCents)
}

func TestCreateInvoiceWithoutProcessor(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	provider := mocks.NewMockLinkProviderForTest(t)
	svc := services.NewInvoiceService(st, provider, nil, zap.NewNop())

	st.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		Return(store.Invoice{ID: 1, InvoiceNumber: "INV-0001", Status: store.InvoiceStatusDraft}, nil)
	provider.EXPECT().Configured().Return(false)

	result, err := svc.CreateInvoice(context.Background(), validInput())
	require.NoError(t, err)
	assert.False(t, result.PaymentLinkCreated)
	assert.NoError(t, result.LinkErr)
	assert.Equal(t, "INV-0001", result.Invoice.InvoiceNumber)
}

func TestCreateInvoiceProvisionsPaymentLink(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	provider := mocks.NewMockLinkProviderForTest(t)
	svc := services.NewInvoiceService(st, provider, nil, zap.NewNop())

	draft := store.Invoice{
		ID:            7,
		InvoiceNumber: "INV-0007",
		CustomerName:  "Acme Corp",
		TotalCents:    10000,
		Status:        store.InvoiceStatusDraft,
	}
	linked := draft
	linked.Status = store.InvoiceStatusPending
	linked.StripePaymentLinkID = pgtype.Text{String: "plink_123", Valid: true}
	linked.StripePaymentLinkURL = pgtype.Text{String: "https://buy.stripe.test/plink_123", Valid: true}

	st.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(draft, nil)
	provider.EXPECT().Configured().Return(true).Times(2)
	st.EXPECT().GetInvoice(gomock.Any(), int64(7)).Return(draft, nil)
	provider.EXPECT().
		CreateProduct(gomock.Any(), "Invoice INV-0007 - Acme Corp").
		Return("prod_123", nil)
	provider.EXPECT().
		CreatePrice(gomock.Any(), "prod_123", int64(10000), "usd").
		Return("price_123", nil)
	provider.EXPECT().
		CreatePaymentLink(gomock.Any(), "price_123", map[string]string{
			"invoice_id":     "7",
			"invoice_number": "INV-0007",
		}).
		Return(payments.PaymentLink{ID: "plink_123", URL: "https://buy.stripe.test/plink_123"}, nil)
	st.EXPECT().
		RecordPaymentLink(gomock.Any(), store.RecordPaymentLinkParams{
			InvoiceID:            7,
			StripeProductID:      "prod_123",
			StripePriceID:        "price_123",
			StripePaymentLinkID:  "plink_123",
			StripePaymentLinkURL: "https://buy.stripe.test/plink_123",
		}).
		Return(linked, nil)

	result, err := svc.CreateInvoice(context.Background(), validInput())
	require.NoError(t, err)
	assert.True(t, result.PaymentLinkCreated)
	assert.NoError(t, result.LinkErr)
	assert.Equal(t, store.InvoiceStatusPending, result.Invoice.Status)
	assert.Equal(t, "plink_123", result.Invoice.StripePaymentLinkID.String)
}

func TestCreateInvoiceSurvivesProviderFailure(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	provider := mocks.NewMockLinkProviderForTest(t)
	svc := services.NewInvoiceService(st, provider, nil, zap.NewNop())

	draft := store.Invoice{
		ID:            2,
		InvoiceNumber: "INV-0002",
		CustomerName:  "Acme Corp",
		TotalCents:    10000,
		Status:        store.InvoiceStatusDraft,
	}

	st.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(draft, nil)
	provider.EXPECT().Configured().Return(true).Times(2)
	st.EXPECT().GetInvoice(gomock.Any(), int64(2)).Return(draft, nil)
	provider.EXPECT().
		CreateProduct(gomock.Any(), gomock.Any()).
		Return("", errors.New("stripe: 500"))

	result, err := svc.CreateInvoice(context.Background(), validInput())
	require.NoError(t, err, "provider failure must not fail invoice creation")
	assert.False(t, result.PaymentLinkCreated)
	require.Error(t, result.LinkErr)
	assert.True(t, apperrors.IsExternalService(result.LinkErr))
	assert.Equal(t, "INV-0002", result.Invoice.InvoiceNumber)
}

func TestEnsurePaymentLinkIdempotent(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	provider := mocks.NewMockLinkProviderForTest(t)
	svc := services.NewInvoiceService(st, provider, nil, zap.NewNop())

	existing := store.Invoice{
		ID:                  3,
		InvoiceNumber:       "INV-0003",
		Status:              store.InvoiceStatusPending,
		StripePaymentLinkID: pgtype.Text{String: "plink_old", Valid: true},
	}
	// No provider expectations: an invoice with a link is left alone.
	st.EXPECT().GetInvoice(gomock.Any(), int64(3)).Return(existing, nil)

	invoice, created, err := svc.EnsurePaymentLink(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "plink_old", invoice.StripePaymentLinkID.String)
}

func TestEnsurePaymentLinkSkipsPaidInvoice(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	provider := mocks.NewMockLinkProviderForTest(t)
	svc := services.NewInvoiceService(st, provider, nil, zap.NewNop())

	st.EXPECT().
		GetInvoice(gomock.Any(), int64(4)).
		Return(store.Invoice{ID: 4, Status: store.InvoiceStatusPaid}, nil)

	_, created, err := svc.EnsurePaymentLink(context.Background(), 4)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestEnsurePaymentLinkUnconfigured(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	provider := mocks.NewMockLinkProviderForTest(t)
	svc := services.NewInvoiceService(st, provider, nil, zap.NewNop())

	st.EXPECT().
		GetInvoice(gomock.Any(), int64(5)).
		Return(store.Invoice{ID: 5, Status: store.InvoiceStatusDraft}, nil)
	provider.EXPECT().Configured().Return(false)

	_, _, err := svc.EnsurePaymentLink(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestEnsurePaymentLinkSendsEmail(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	provider := mocks.NewMockLinkProviderForTest(t)
	emailer := mocks.NewMockInvoiceEmailSenderForTest(t)
	svc := services.NewInvoiceService(st, provider, emailer, zap.NewNop())

	draft := store.Invoice{
		ID:            6,
		InvoiceNumber: "INV-0006",
		CustomerName:  "Acme Corp",
		CustomerEmail: pgtype.Text{String: "billing@acme.test", Valid: true},
		TotalCents:    2500,
		Status:        store.InvoiceStatusDraft,
	}
	linked := draft
	linked.Status = store.InvoiceStatusPending
	linked.StripePaymentLinkID = pgtype.Text{String: "plink_6", Valid: true}
	linked.StripePaymentLinkURL = pgtype.Text{String: "https://buy.stripe.test/plink_6", Valid: true}

	st.EXPECT().GetInvoice(gomock.Any(), int64(6)).Return(draft, nil)
	provider.EXPECT().Configured().Return(true)
	provider.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return("prod_6", nil)
	provider.EXPECT().CreatePrice(gomock.Any(), "prod_6", int64(2500), "usd").Return("price_6", nil)
	provider.EXPECT().CreatePaymentLink(gomock.Any(), "price_6", gomock.Any()).
		Return(payments.PaymentLink{ID: "plink_6", URL: "https://buy.stripe.test/plink_6"}, nil)
	st.EXPECT().RecordPaymentLink(gomock.Any(), gomock.Any()).Return(linked, nil)

	emailer.EXPECT().Configured().Return(true)
	emailer.EXPECT().
		SendInvoiceEmail(gomock.Any(), services.InvoiceEmailData{
			CustomerName:   "Acme Corp",
			CustomerEmail:  "billing@acme.test",
			InvoiceNumber:  "INV-0006",
			TotalFormatted: "$25.00",
			PaymentLinkURL: "https://buy.stripe.test/plink_6",
			MerchantName:   "Sullivan Trading",
		}).
		Return(nil)

	_, created, err := svc.EnsurePaymentLink(context.Background(), 6)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestDashboardSweepsBeforeStats(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	provider := mocks.NewMockLinkProviderForTest(t)
	svc := services.NewInvoiceService(st, provider, nil, zap.NewNop())

	stats := store.DashboardStats{
		Pending: store.StatusBucket{Count: 2, TotalCents: 15000},
		Overdue: store.StatusBucket{Count: 1, TotalCents: 5000},
	}

	gomock.InOrder(
		st.EXPECT().MarkOverdueInvoices(gomock.Any()).Return(int64(1), nil),
		st.EXPECT().GetDashboardStats(gomock.Any()).Return(stats, nil),
		st.EXPECT().RecentInvoices(gomock.Any(), int32(10)).Return([]store.Invoice{{ID: 1}}, nil),
	)

	got, recent, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stats, got)
	assert.Len(t, recent, 1)
}

func TestFormatCentsUSD(t *testing.T) {
	assert.Equal(t, "$0.00", services.FormatCentsUSD(0))
	assert.Equal(t, "$0.05", services.FormatCentsUSD(5))
	assert.Equal(t, "$19.99", services.FormatCentsUSD(1999))
	assert.Equal(t, "$100.00", services.FormatCentsUSD(10000))
	assert.Equal(t, "-$1.50", services.FormatCentsUSD(-150))
}
