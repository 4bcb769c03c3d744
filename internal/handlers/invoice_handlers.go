package handlers

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/sullivan-trading/sullivan-api/internal/services"
	"github.com/sullivan-trading/sullivan-api/internal/store"
	"go.uber.org/zap"
)

// InvoiceHandler serves the admin invoice endpoints.
type InvoiceHandler struct {
	invoices *services.InvoiceService
	logger   *zap.Logger
}

// NewInvoiceHandler creates an InvoiceHandler.
func NewInvoiceHandler(invoices *services.InvoiceService, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, logger: logger}
}

type lineItemResponse struct {
	ID             int64  `json:"id"`
	Description    string `json:"description"`
	Quantity       int32  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type invoiceResponse struct {
	ID                      int64              `json:"id"`
	InvoiceNumber           string             `json:"invoice_number"`
	CustomerName            string             `json:"customer_name"`
	CustomerEmail           *string            `json:"customer_email,omitempty"`
	Notes                   *string            `json:"notes,omitempty"`
	TotalCents              int64              `json:"total_cents"`
	Status                  string             `json:"status"`
	StripeProductID         *string            `json:"stripe_product_id,omitempty"`
	StripePriceID           *string            `json:"stripe_price_id,omitempty"`
	StripePaymentLinkID     *string            `json:"stripe_payment_link_id,omitempty"`
	PaymentLinkURL          *string            `json:"payment_link_url,omitempty"`
	StripeCheckoutSessionID *string            `json:"stripe_checkout_session_id,omitempty"`
	CreatedAt               time.Time          `json:"created_at"`
	SentAt                  *time.Time         `json:"sent_at,omitempty"`
	PaidAt                  *time.Time         `json:"paid_at,omitempty"`
	QRCodeData              *string            `json:"qr_code_data,omitempty"`
	LineItems               []lineItemResponse `json:"line_items,omitempty"`
}

func toInvoiceResponse(inv store.Invoice) invoiceResponse {
	resp := invoiceResponse{
		ID:                      inv.ID,
		InvoiceNumber:           inv.InvoiceNumber,
		CustomerName:            inv.CustomerName,
		CustomerEmail:           textPtr(inv.CustomerEmail),
		Notes:                   textPtr(inv.Notes),
		TotalCents:              inv.TotalCents,
		Status:                  inv.Status,
		StripeProductID:         textPtr(inv.StripeProductID),
		StripePriceID:           textPtr(inv.StripePriceID),
		StripePaymentLinkID:     textPtr(inv.StripePaymentLinkID),
		PaymentLinkURL:          textPtr(inv.StripePaymentLinkURL),
		StripeCheckoutSessionID: textPtr(inv.StripeCheckoutSessionID),
		CreatedAt:               inv.CreatedAt.Time,
		SentAt:                  timePtr(inv.SentAt),
		PaidAt:                  timePtr(inv.PaidAt),
	}
	for _, li := range inv.LineItems {
		resp.LineItems = append(resp.LineItems, lineItemResponse{
			ID:             li.ID,
			Description:    li.Description,
			Quantity:       li.Quantity,
			UnitPriceCents: li.UnitPriceCents,
		})
	}
	return resp
}

type createInvoiceResponse struct {
	Invoice invoiceResponse `json:"invoice"`
	Message string          `json:"message"`
}

// CreateInvoice handles POST /admin/invoices.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var input services.InvoiceFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.invoices.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	message := fmt.Sprintf("Invoice %s created with payment link.", result.Invoice.InvoiceNumber)
	switch {
	case result.LinkErr != nil:
		message = fmt.Sprintf("Invoice %s created, but payment link creation failed; retry from the invoice page.", result.Invoice.InvoiceNumber)
	case !result.PaymentLinkCreated:
		message = fmt.Sprintf("Invoice %s created (Stripe not configured, no payment link generated).", result.Invoice.InvoiceNumber)
	}

	c.JSON(http.StatusCreated, createInvoiceResponse{
		Invoice: toInvoiceResponse(result.Invoice),
		Message: message,
	})
}

// ListInvoices handles GET /admin/invoices?status=&search=.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.invoices.ListInvoices(c.Request.Context(), store.ListInvoicesParams{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	data := make([]invoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		data = append(data, toInvoiceResponse(inv))
	}
	c.JSON(http.StatusOK, gin.H{"object": "list", "data": data})
}

// GetInvoice handles GET /admin/invoices/:id. The response carries a QR
// data URL for the payment link when one exists.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	invoice, err := h.invoices.GetInvoice(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	resp := toInvoiceResponse(invoice)
	if invoice.StripePaymentLinkURL.Valid {
		if qr, err := paymentLinkQRCode(invoice.StripePaymentLinkURL.String); err != nil {
			h.logger.Error("Failed to generate payment link QR code",
				zap.Int64("invoice_id", invoice.ID), zap.Error(err))
		} else {
			resp.QRCodeData = &qr
		}
	}
	c.JSON(http.StatusOK, resp)
}

// CreatePaymentLink handles POST /admin/invoices/:id/payment-link, the
// retryable follow-up for invoices left without a link.
func (h *InvoiceHandler) CreatePaymentLink(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	invoice, created, err := h.invoices.EnsurePaymentLink(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	message := "Payment link already exists."
	if created {
		message = "Payment link created."
	}
	c.JSON(http.StatusOK, createInvoiceResponse{
		Invoice: toInvoiceResponse(invoice),
		Message: message,
	})
}

type dashboardResponse struct {
	Stats          store.DashboardStats `json:"stats"`
	RecentInvoices []invoiceResponse    `json:"recent_invoices"`
}

// Dashboard handles GET /admin/dashboard. Fetching the dashboard runs
// the overdue sweep first so the stats reflect current ages.
func (h *InvoiceHandler) Dashboard(c *gin.Context) {
	stats, recent, err := h.invoices.Dashboard(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	resp := dashboardResponse{Stats: stats, RecentInvoices: make([]invoiceResponse, 0, len(recent))}
	for _, inv := range recent {
		resp.RecentInvoices = append(resp.RecentInvoices, toInvoiceResponse(inv))
	}
	c.JSON(http.StatusOK, resp)
}

// paymentLinkQRCode renders the payment URL as a PNG data URL.
func paymentLinkQRCode(paymentURL string) (string, error) {
	qr, err := qrcode.New(paymentURL, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}
	pngBytes, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes), nil
}
