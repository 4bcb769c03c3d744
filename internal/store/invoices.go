package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sullivan-trading/sullivan-api/internal/apperrors"
	"github.com/sullivan-trading/sullivan-api/internal/helpers"
	"go.uber.org/zap"
)

// invoiceNumberLockID keys the advisory lock that serializes invoice
// number allocation. Concurrent creations queue on this lock for the
// duration of their transaction, so two transactions can never read the
// same latest number and both insert its successor.
const invoiceNumberLockID int64 = 7145

const invoiceColumns = `id, invoice_number, customer_name, customer_email, notes, total_cents, status,
	stripe_product_id, stripe_price_id, stripe_payment_link_id, stripe_payment_link_url,
	stripe_checkout_session_id, created_at, sent_at, paid_at`

func scanInvoice(row pgx.Row) (Invoice, error) {
	var inv Invoice
	err := row.Scan(
		&inv.ID,
		&inv.InvoiceNumber,
		&inv.CustomerName,
		&inv.CustomerEmail,
		&inv.Notes,
		&inv.TotalCents,
		&inv.Status,
		&inv.StripeProductID,
		&inv.StripePriceID,
		&inv.StripePaymentLinkID,
		&inv.StripePaymentLinkURL,
		&inv.StripeCheckoutSessionID,
		&inv.CreatedAt,
		&inv.SentAt,
		&inv.PaidAt,
	)
	return inv, err
}

func scanInvoices(rows pgx.Rows) ([]Invoice, error) {
	defer rows.Close()
	invoices := []Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

// CreateInvoice allocates the next invoice number and persists the
// invoice with all of its line items in a single transaction: either
// all rows exist afterwards or none do. The total is fixed here as the
// sum of quantity times unit price over the line items.
func (s *PGStore) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (Invoice, error) {
	if len(params.LineItems) == 0 {
		return Invoice{}, apperrors.NewValidation("invoice requires at least one line item")
	}

	var totalCents int64
	for _, li := range params.LineItems {
		totalCents += int64(li.Quantity) * li.UnitPriceCents
	}

	var created Invoice
	err := helpers.WithTransactionRetry(ctx, s.pool, 3, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, invoiceNumberLockID); err != nil {
			return fmt.Errorf("failed to acquire invoice number lock: %w", err)
		}

		invoiceNumber := FirstInvoiceNumber
		var latest string
		err := tx.QueryRow(ctx, `SELECT invoice_number FROM invoices ORDER BY id DESC LIMIT 1`).Scan(&latest)
		switch {
		case err == nil:
			invoiceNumber, err = NextInvoiceNumber(latest)
			if err != nil {
				return err
			}
		case errors.Is(err, pgx.ErrNoRows):
			// first invoice ever
		default:
			return fmt.Errorf("failed to read latest invoice number: %w", err)
		}

		created, err = scanInvoice(tx.QueryRow(ctx, `
			INSERT INTO invoices (invoice_number, customer_name, customer_email, notes, total_cents)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+invoiceColumns,
			invoiceNumber,
			params.CustomerName,
			textOrNull(params.CustomerEmail),
			textOrNull(params.Notes),
			totalCents,
		))
		if err != nil {
			return fmt.Errorf("failed to insert invoice: %w", err)
		}

		for _, li := range params.LineItems {
			var item InvoiceLineItem
			err := tx.QueryRow(ctx, `
				INSERT INTO invoice_line_items (invoice_id, description, quantity, unit_price_cents)
				VALUES ($1, $2, $3, $4)
				RETURNING id, invoice_id, description, quantity, unit_price_cents`,
				created.ID, li.Description, li.Quantity, li.UnitPriceCents,
			).Scan(&item.ID, &item.InvoiceID, &item.Description, &item.Quantity, &item.UnitPriceCents)
			if err != nil {
				return fmt.Errorf("failed to insert line item: %w", err)
			}
			created.LineItems = append(created.LineItems, item)
		}

		return nil
	})
	if err != nil {
		return Invoice{}, err
	}

	s.logger.Info("Invoice created",
		zap.Int64("invoice_id", created.ID),
		zap.String("invoice_number", created.InvoiceNumber),
		zap.Int64("total_cents", created.TotalCents),
	)
	return created, nil
}

// GetInvoice returns the invoice with its line items attached.
func (s *PGStore) GetInvoice(ctx context.Context, id int64) (Invoice, error) {
	inv, err := scanInvoice(s.pool.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Invoice{}, apperrors.NewNotFound("invoice")
		}
		return Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}
	if err := s.attachLineItems(ctx, &inv); err != nil {
		return Invoice{}, err
	}
	return inv, nil
}

// GetInvoiceByNumber returns the invoice with the given human-facing
// number, with line items attached.
func (s *PGStore) GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (Invoice, error) {
	inv, err := scanInvoice(s.pool.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE invoice_number = $1`, invoiceNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Invoice{}, apperrors.NewNotFound("invoice")
		}
		return Invoice{}, fmt.Errorf("failed to get invoice by number: %w", err)
	}
	if err := s.attachLineItems(ctx, &inv); err != nil {
		return Invoice{}, err
	}
	return inv, nil
}

func (s *PGStore) attachLineItems(ctx context.Context, inv *Invoice) error {
	rows, err := s.pool.Query(ctx, `
		SELECT id, invoice_id, description, quantity, unit_price_cents
		FROM invoice_line_items WHERE invoice_id = $1 ORDER BY id`, inv.ID)
	if err != nil {
		return fmt.Errorf("failed to load line items: %w", err)
	}
	defer rows.Close()

	items := []InvoiceLineItem{}
	for rows.Next() {
		var item InvoiceLineItem
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.Description, &item.Quantity, &item.UnitPriceCents); err != nil {
			return fmt.Errorf("failed to scan line item: %w", err)
		}
		items = append(items, item)
	}
	inv.LineItems = items
	return rows.Err()
}

// ListInvoices filters by exact status (empty or "all" disables the
// filter) and by case-insensitive substring match against customer name
// or invoice number. Results are ordered newest first.
func (s *PGStore) ListInvoices(ctx context.Context, params ListInvoicesParams) ([]Invoice, error) {
	status := params.Status
	if status == "all" {
		status = ""
	}
	rows, err := s.pool.Query(ctx, `
		SELECT `+invoiceColumns+` FROM invoices
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR customer_name ILIKE '%' || $2 || '%' OR invoice_number ILIKE '%' || $2 || '%')
		ORDER BY id DESC`,
		status, params.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return scanInvoices(rows)
}

// RecentInvoices returns the newest invoices for the dashboard.
func (s *PGStore) RecentInvoices(ctx context.Context, limit int32) ([]Invoice, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent invoices: %w", err)
	}
	return scanInvoices(rows)
}

// RecordPaymentLink stores the processor correlation fields, moves the
// invoice to pending and stamps sent_at. Repeated calls replace earlier
// link fields. Paid invoices are never touched: recording a link must
// not drag a settled invoice back to pending.
func (s *PGStore) RecordPaymentLink(ctx context.Context, params RecordPaymentLinkParams) (Invoice, error) {
	inv, err := scanInvoice(s.pool.QueryRow(ctx, `
		UPDATE invoices
		SET stripe_product_id = $2, stripe_price_id = $3, stripe_payment_link_id = $4,
		    stripe_payment_link_url = $5, status = $6, sent_at = now()
		WHERE id = $1 AND status <> $7
		RETURNING `+invoiceColumns,
		params.InvoiceID,
		textOrNull(params.StripeProductID),
		textOrNull(params.StripePriceID),
		textOrNull(params.StripePaymentLinkID),
		textOrNull(params.StripePaymentLinkURL),
		InvoiceStatusPending,
		InvoiceStatusPaid,
	))
	if err == nil {
		if err := s.attachLineItems(ctx, &inv); err != nil {
			return Invoice{}, err
		}
		return inv, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Invoice{}, fmt.Errorf("failed to record payment link: %w", err)
	}

	// Guard tripped or no such invoice. Look the row up to tell the two
	// apart: an already-paid invoice is returned unchanged.
	existing, getErr := s.GetInvoice(ctx, params.InvoiceID)
	if getErr != nil {
		return Invoice{}, getErr
	}
	s.logger.Warn("Refusing to record payment link on paid invoice",
		zap.Int64("invoice_id", params.InvoiceID),
		zap.String("status", existing.Status),
	)
	return existing, nil
}

// MarkInvoicePaidByPaymentLink settles the invoice matching the payment
// link, but only while it is pending or overdue. Zero affected rows is
// a successful no-op: the payment processor redelivers events, and the
// second delivery must not error or double-credit.
func (s *PGStore) MarkInvoicePaidByPaymentLink(ctx context.Context, paymentLinkID, checkoutSessionID string) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE invoices
		SET status = $3, stripe_checkout_session_id = $2, paid_at = now()
		WHERE stripe_payment_link_id = $1 AND status IN ($4, $5)`,
		paymentLinkID,
		textOrNull(checkoutSessionID),
		InvoiceStatusPaid,
		InvoiceStatusPending,
		InvoiceStatusOverdue,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark invoice paid: %w", err)
	}

	affected := tag.RowsAffected()
	if affected > 0 {
		s.logger.Info("Invoice marked paid",
			zap.String("payment_link_id", paymentLinkID),
			zap.String("checkout_session_id", checkoutSessionID),
		)
	}
	return affected, nil
}

// MarkOverdueInvoices transitions every pending invoice sent more than
// 30 days ago to overdue. Idempotent: rows already overdue are not
// matched.
func (s *PGStore) MarkOverdueInvoices(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE invoices
		SET status = $1
		WHERE status = $2 AND sent_at < now() - interval '30 days'`,
		InvoiceStatusOverdue, InvoiceStatusPending)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue invoices: %w", err)
	}
	return tag.RowsAffected(), nil
}

// GetDashboardStats aggregates counts and totals per status.
func (s *PGStore) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT status, COUNT(*), COALESCE(SUM(total_cents), 0)
		FROM invoices
		WHERE status IN ($1, $2, $3)
		GROUP BY status`,
		InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	defer rows.Close()

	var stats DashboardStats
	for rows.Next() {
		var status string
		var bucket StatusBucket
		if err := rows.Scan(&status, &bucket.Count, &bucket.TotalCents); err != nil {
			return DashboardStats{}, fmt.Errorf("failed to scan dashboard stats: %w", err)
		}
		switch status {
		case InvoiceStatusPending:
			stats.Pending = bucket
		case InvoiceStatusPaid:
			stats.Paid = bucket
		case InvoiceStatusOverdue:
			stats.Overdue = bucket
		}
	}
	return stats, rows.Err()
}
