// Package store owns persisted invoices, their line items, and blog
// posts. The store is constructed once at process start and passed to
// every component that needs it; there is no package-level handle.
package store

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schemaSQL string

// Store is the persistence boundary for invoices and posts. The pgx
// implementation is PGStore; tests substitute the gomock mock or the
// in-memory fake in internal/testutil.
type Store interface {
	CreateInvoice(ctx context.Context, params CreateInvoiceParams) (Invoice, error)
	GetInvoice(ctx context.Context, id int64) (Invoice, error)
	GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (Invoice, error)
	ListInvoices(ctx context.Context, params ListInvoicesParams) ([]Invoice, error)
	RecentInvoices(ctx context.Context, limit int32) ([]Invoice, error)
	RecordPaymentLink(ctx context.Context, params RecordPaymentLinkParams) (Invoice, error)
	MarkInvoicePaidByPaymentLink(ctx context.Context, paymentLinkID, checkoutSessionID string) (int64, error)
	MarkOverdueInvoices(ctx context.Context) (int64, error)
	GetDashboardStats(ctx context.Context) (DashboardStats, error)

	CreatePost(ctx context.Context, params CreatePostParams) (Post, error)
	UpdatePost(ctx context.Context, params UpdatePostParams) (Post, error)
	DeletePost(ctx context.Context, id int64) error
	GetPost(ctx context.Context, id int64) (Post, error)
	GetPublishedPostBySlug(ctx context.Context, slug string) (Post, error)
	ListPosts(ctx context.Context) ([]Post, error)
	ListPublishedPosts(ctx context.Context, limit int32) ([]Post, error)
}

// PGStore is the Postgres-backed Store.
type PGStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

var _ Store = (*PGStore)(nil)

// New creates a PGStore on top of an established pool.
func New(pool *pgxpool.Pool, logger *zap.Logger) *PGStore {
	return &PGStore{
		pool:   pool,
		logger: logger,
	}
}

// Bootstrap applies the embedded schema. All statements are idempotent
// (CREATE ... IF NOT EXISTS), so running it on every start is safe.
func (s *PGStore) Bootstrap(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	s.logger.Debug("Schema bootstrap complete")
	return nil
}
