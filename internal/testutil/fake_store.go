// Package testutil provides an in-memory Store for tests that exercise
// multi-step flows, where per-call gomock expectations would obscure the
// scenario. State transition guards match the Postgres implementation.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sullivan-trading/sullivan-api/internal/apperrors"
	"github.com/sullivan-trading/sullivan-api/internal/store"
)

// overdueAfter mirrors the sweep cutoff in the Postgres store.
const overdueAfter = 30 * 24 * time.Hour

// FakeStore is an in-memory store.Store. Now is injectable so sweep
// boundary tests can control the clock.
type FakeStore struct {
	mu sync.Mutex

	Now func() time.Time

	invoices []store.Invoice
	posts    []store.Post

	nextInvoiceID  int64
	nextLineItemID int64
	nextPostID     int64
}

var _ store.Store = (*FakeStore)(nil)

// NewFakeStore creates an empty FakeStore using the real clock.
func NewFakeStore() *FakeStore {
	return &FakeStore{
		Now:            time.Now,
		nextInvoiceID:  1,
		nextLineItemID: 1,
		nextPostID:     1,
	}
}

func text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// CreateInvoice assigns the next sequential number and persists the
// invoice with its line items, mirroring the transactional path.
func (f *FakeStore) CreateInvoice(_ context.Context, params store.CreateInvoiceParams) (store.Invoice, error) {
	if len(params.LineItems) == 0 {
		return store.Invoice{}, apperrors.NewValidation("invoice requires at least one line item")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	number := store.FirstInvoiceNumber
	if n := len(f.invoices); n > 0 {
		next, err := store.NextInvoiceNumber(f.invoices[n-1].InvoiceNumber)
		if err != nil {
			return store.Invoice{}, err
		}
		number = next
	}

	var total int64
	items := make([]store.InvoiceLineItem, 0, len(params.LineItems))
	for _, li := range params.LineItems {
		total += int64(li.Quantity) * li.UnitPriceCents
		items = append(items, store.InvoiceLineItem{
			ID:             f.nextLineItemID,
			InvoiceID:      f.nextInvoiceID,
			Description:    li.Description,
			Quantity:       li.Quantity,
			UnitPriceCents: li.UnitPriceCents,
		})
		f.nextLineItemID++
	}

	inv := store.Invoice{
		ID:            f.nextInvoiceID,
		InvoiceNumber: number,
		CustomerName:  params.CustomerName,
		CustomerEmail: text(params.CustomerEmail),
		Notes:         text(params.Notes),
		TotalCents:    total,
		Status:        store.InvoiceStatusDraft,
		CreatedAt:     ts(f.Now()),
		LineItems:     items,
	}
	f.nextInvoiceID++
	f.invoices = append(f.invoices, inv)
	return inv, nil
}

func (f *FakeStore) findLocked(id int64) (int, bool) {
	for i := range f.invoices {
		if f.invoices[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// GetInvoice returns one invoice with line items.
func (f *FakeStore) GetInvoice(_ context.Context, id int64) (store.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.findLocked(id)
	if !ok {
		return store.Invoice{}, apperrors.NewNotFound("invoice")
	}
	return f.invoices[i], nil
}

// GetInvoiceByNumber returns one invoice by its human-facing number.
func (f *FakeStore) GetInvoiceByNumber(_ context.Context, number string) (store.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.invoices {
		if f.invoices[i].InvoiceNumber == number {
			return f.invoices[i], nil
		}
	}
	return store.Invoice{}, apperrors.NewNotFound("invoice")
}

// ListInvoices filters by status and case-insensitive name/number search,
// newest first.
func (f *FakeStore) ListInvoices(_ context.Context, params store.ListInvoicesParams) ([]store.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	status := params.Status
	if status == "all" {
		status = ""
	}
	search := strings.ToLower(params.Search)

	var out []store.Invoice
	for i := range f.invoices {
		inv := f.invoices[i]
		if status != "" && inv.Status != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(inv.CustomerName), search) &&
			!strings.Contains(strings.ToLower(inv.InvoiceNumber), search) {
			continue
		}
		out = append(out, inv)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID > out[b].ID })
	return out, nil
}

// RecentInvoices returns the newest invoices up to limit.
func (f *FakeStore) RecentInvoices(ctx context.Context, limit int32) ([]store.Invoice, error) {
	all, err := f.ListInvoices(ctx, store.ListInvoicesParams{})
	if err != nil {
		return nil, err
	}
	if int(limit) < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// RecordPaymentLink attaches processor identifiers and moves the invoice
// to pending, unless it is already paid.
func (f *FakeStore) RecordPaymentLink(_ context.Context, params store.RecordPaymentLinkParams) (store.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.findLocked(params.InvoiceID)
	if !ok {
		return store.Invoice{}, apperrors.NewNotFound("invoice")
	}
	inv := &f.invoices[i]
	if inv.Status == store.InvoiceStatusPaid {
		return *inv, nil
	}
	inv.StripeProductID = text(params.StripeProductID)
	inv.StripePriceID = text(params.StripePriceID)
	inv.StripePaymentLinkID = text(params.StripePaymentLinkID)
	inv.StripePaymentLinkURL = text(params.StripePaymentLinkURL)
	inv.Status = store.InvoiceStatusPending
	inv.SentAt = ts(f.Now())
	return *inv, nil
}

// MarkInvoicePaidByPaymentLink settles the invoice matching the payment
// link, guarded on pending or overdue status.
func (f *FakeStore) MarkInvoicePaidByPaymentLink(_ context.Context, paymentLinkID, checkoutSessionID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.invoices {
		inv := &f.invoices[i]
		if !inv.StripePaymentLinkID.Valid || inv.StripePaymentLinkID.String != paymentLinkID {
			continue
		}
		if inv.Status != store.InvoiceStatusPending && inv.Status != store.InvoiceStatusOverdue {
			continue
		}
		inv.Status = store.InvoiceStatusPaid
		inv.PaidAt = ts(f.Now())
		inv.StripeCheckoutSessionID = text(checkoutSessionID)
		return 1, nil
	}
	return 0, nil
}

// MarkOverdueInvoices transitions pending invoices sent more than 30
// days ago.
func (f *FakeStore) MarkOverdueInvoices(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cutoff := f.Now().Add(-overdueAfter)
	var n int64
	for i := range f.invoices {
		inv := &f.invoices[i]
		if inv.Status == store.InvoiceStatusPending && inv.SentAt.Valid && inv.SentAt.Time.Before(cutoff) {
			inv.Status = store.InvoiceStatusOverdue
			n++
		}
	}
	return n, nil
}

// GetDashboardStats aggregates per status, zero-filled.
func (f *FakeStore) GetDashboardStats(_ context.Context) (store.DashboardStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var stats store.DashboardStats
	for i := range f.invoices {
		inv := f.invoices[i]
		switch inv.Status {
		case store.InvoiceStatusPending:
			stats.Pending.Count++
			stats.Pending.TotalCents += inv.TotalCents
		case store.InvoiceStatusPaid:
			stats.Paid.Count++
			stats.Paid.TotalCents += inv.TotalCents
		case store.InvoiceStatusOverdue:
			stats.Overdue.Count++
			stats.Overdue.TotalCents += inv.TotalCents
		}
	}
	return stats, nil
}

// CreatePost persists a post, enforcing slug uniqueness.
func (f *FakeStore) CreatePost(_ context.Context, params store.CreatePostParams) (store.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.posts {
		if f.posts[i].Slug == params.Slug {
			return store.Post{}, apperrors.NewValidation("a post with that slug already exists")
		}
	}
	now := f.Now()
	post := store.Post{
		ID:        f.nextPostID,
		Title:     params.Title,
		Slug:      params.Slug,
		Excerpt:   text(params.Excerpt),
		Body:      text(params.Body),
		Status:    params.Status,
		HeroImage: text(params.HeroImage),
		CreatedAt: ts(now),
		UpdatedAt: ts(now),
	}
	if params.Status == store.PostStatusPublished {
		post.PublishedAt = ts(now)
	}
	f.nextPostID++
	f.posts = append(f.posts, post)
	return post, nil
}

// UpdatePost replaces a post's editable fields, stamping PublishedAt on
// the first transition to published.
func (f *FakeStore) UpdatePost(_ context.Context, params store.UpdatePostParams) (store.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.posts {
		if f.posts[i].ID != params.ID {
			continue
		}
		p := &f.posts[i]
		p.Title = params.Title
		p.Slug = params.Slug
		p.Excerpt = text(params.Excerpt)
		p.Body = text(params.Body)
		p.Status = params.Status
		p.HeroImage = text(params.HeroImage)
		p.UpdatedAt = ts(f.Now())
		if params.Status == store.PostStatusPublished && !p.PublishedAt.Valid {
			p.PublishedAt = ts(f.Now())
		}
		return *p, nil
	}
	return store.Post{}, apperrors.NewNotFound("post")
}

// DeletePost removes a post.
func (f *FakeStore) DeletePost(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFound("post")
}

// GetPost returns a post by id.
func (f *FakeStore) GetPost(_ context.Context, id int64) (store.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.posts {
		if f.posts[i].ID == id {
			return f.posts[i], nil
		}
	}
	return store.Post{}, apperrors.NewNotFound("post")
}

// GetPublishedPostBySlug returns a published post by slug.
func (f *FakeStore) GetPublishedPostBySlug(_ context.Context, slug string) (store.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.posts {
		if f.posts[i].Slug == slug && f.posts[i].Status == store.PostStatusPublished {
			return f.posts[i], nil
		}
	}
	return store.Post{}, apperrors.NewNotFound("post")
}

// ListPosts returns all posts, newest first.
func (f *FakeStore) ListPosts(_ context.Context) ([]store.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.Post, len(f.posts))
	copy(out, f.posts)
	sort.Slice(out, func(a, b int) bool { return out[a].ID > out[b].ID })
	return out, nil
}

// ListPublishedPosts returns published posts, newest first, up to limit
// when limit is positive.
func (f *FakeStore) ListPublishedPosts(ctx context.Context, limit int32) ([]store.Post, error) {
	all, err := f.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	var out []store.Post
	for _, p := range all {
		if p.Status == store.PostStatusPublished {
			out = append(out, p)
		}
	}
	if limit > 0 && int(limit) < len(out) {
		out = out[:limit]
	}
	return out, nil
}
