package store

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Invoice status values. The state machine is:
// draft -> pending (payment link recorded) -> paid (webhook) or
// pending -> overdue (30 days unsent-to-paid) -> paid. Paid is terminal.
const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Post status values
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// Invoice is one row of the invoices table with its line items attached
// on single-invoice reads. TotalCents is fixed at creation and never
// recomputed.
type Invoice struct {
	ID                      int64
	InvoiceNumber           string
	CustomerName            string
	CustomerEmail           pgtype.Text
	Notes                   pgtype.Text
	TotalCents              int64
	Status                  string
	StripeProductID         pgtype.Text
	StripePriceID           pgtype.Text
	StripePaymentLinkID     pgtype.Text
	StripePaymentLinkURL    pgtype.Text
	StripeCheckoutSessionID pgtype.Text
	CreatedAt               pgtype.Timestamptz
	SentAt                  pgtype.Timestamptz
	PaidAt                  pgtype.Timestamptz

	LineItems []InvoiceLineItem
}

// InvoiceLineItem is one billable unit within an invoice.
type InvoiceLineItem struct {
	ID             int64
	InvoiceID      int64
	Description    string
	Quantity       int32
	UnitPriceCents int64
}

// Post is a blog post row.
type Post struct {
	ID          int64
	Title       string
	Slug        string
	Excerpt     pgtype.Text
	Body        pgtype.Text
	Status      string
	HeroImage   pgtype.Text
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
	PublishedAt pgtype.Timestamptz
}

// LineItemParams describes a line item to persist. Quantity and unit
// price are already normalized by the creation workflow.
type LineItemParams struct {
	Description    string
	Quantity       int32
	UnitPriceCents int64
}

// CreateInvoiceParams carries validated invoice input. Empty optional
// strings are stored as NULL.
type CreateInvoiceParams struct {
	CustomerName  string
	CustomerEmail string
	Notes         string
	LineItems     []LineItemParams
}

// ListInvoicesParams filters the invoice listing. An empty (or "all")
// Status disables the status filter; an empty Search disables the text
// filter. Both filters are ANDed.
type ListInvoicesParams struct {
	Status string
	Search string
}

// RecordPaymentLinkParams carries the external processor correlation
// fields recorded after a payment link has been provisioned.
type RecordPaymentLinkParams struct {
	InvoiceID            int64
	StripeProductID      string
	StripePriceID        string
	StripePaymentLinkID  string
	StripePaymentLinkURL string
}

// StatusBucket is an aggregate over invoices in one status.
type StatusBucket struct {
	Count      int64 `json:"count"`
	TotalCents int64 `json:"total_cents"`
}

// DashboardStats reports per-status aggregates; statuses with no rows
// report zero values.
type DashboardStats struct {
	Pending StatusBucket `json:"pending"`
	Paid    StatusBucket `json:"paid"`
	Overdue StatusBucket `json:"overdue"`
}

// CreatePostParams carries validated blog post input.
type CreatePostParams struct {
	Title     string
	Slug      string
	Excerpt   string
	Body      string
	Status    string
	HeroImage string
}

// UpdatePostParams carries a full replacement of a post's editable fields.
type UpdatePostParams struct {
	ID        int64
	Title     string
	Slug      string
	Excerpt   string
	Body      string
	Status    string
	HeroImage string
}

func textOrNull(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
