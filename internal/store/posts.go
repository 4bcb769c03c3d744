package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sullivan-trading/sullivan-api/internal/apperrors"
)

const postColumns = `id, title, slug, excerpt, body, status, hero_image, created_at, updated_at, published_at`

func scanPost(row pgx.Row) (Post, error) {
	var p Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Excerpt,
		&p.Body,
		&p.Status,
		&p.HeroImage,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.PublishedAt,
	)
	return p, err
}

func scanPosts(rows pgx.Rows) ([]Post, error) {
	defer rows.Close()
	posts := []Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreatePost inserts a post. A published post gets its published_at
// stamped immediately; drafts stay unstamped.
func (s *PGStore) CreatePost(ctx context.Context, params CreatePostParams) (Post, error) {
	status := params.Status
	if status == "" {
		status = PostStatusDraft
	}
	p, err := scanPost(s.pool.QueryRow(ctx, `
		INSERT INTO posts (title, slug, excerpt, body, status, hero_image, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, CASE WHEN $5 = $7 THEN now() ELSE NULL END)
		RETURNING `+postColumns,
		params.Title,
		params.Slug,
		textOrNull(params.Excerpt),
		textOrNull(params.Body),
		status,
		textOrNull(params.HeroImage),
		PostStatusPublished,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return Post{}, apperrors.NewValidation("a post with that slug already exists")
		}
		return Post{}, fmt.Errorf("failed to create post: %w", err)
	}
	return p, nil
}

// UpdatePost replaces the editable fields. Publishing for the first
// time stamps published_at; moving back to draft clears it; republishing
// an already-published post keeps the original timestamp.
func (s *PGStore) UpdatePost(ctx context.Context, params UpdatePostParams) (Post, error) {
	status := params.Status
	if status == "" {
		status = PostStatusDraft
	}
	p, err := scanPost(s.pool.QueryRow(ctx, `
		UPDATE posts
		SET title = $2, slug = $3, excerpt = $4, body = $5, status = $6, hero_image = $7,
		    updated_at = now(),
		    published_at = CASE
		        WHEN $6 = $8 AND published_at IS NULL THEN now()
		        WHEN $6 <> $8 THEN NULL
		        ELSE published_at
		    END
		WHERE id = $1
		RETURNING `+postColumns,
		params.ID,
		params.Title,
		params.Slug,
		textOrNull(params.Excerpt),
		textOrNull(params.Body),
		status,
		textOrNull(params.HeroImage),
		PostStatusPublished,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Post{}, apperrors.NewNotFound("post")
		}
		if isUniqueViolation(err) {
			return Post{}, apperrors.NewValidation("a post with that slug already exists")
		}
		return Post{}, fmt.Errorf("failed to update post: %w", err)
	}
	return p, nil
}

// DeletePost removes a post.
func (s *PGStore) DeletePost(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFound("post")
	}
	return nil
}

// GetPost returns a post by id regardless of status (admin view).
func (s *PGStore) GetPost(ctx context.Context, id int64) (Post, error) {
	p, err := scanPost(s.pool.QueryRow(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Post{}, apperrors.NewNotFound("post")
		}
		return Post{}, fmt.Errorf("failed to get post: %w", err)
	}
	return p, nil
}

// GetPublishedPostBySlug returns a published post by slug (public view).
func (s *PGStore) GetPublishedPostBySlug(ctx context.Context, slug string) (Post, error) {
	p, err := scanPost(s.pool.QueryRow(ctx,
		`SELECT `+postColumns+` FROM posts WHERE slug = $1 AND status = $2`, slug, PostStatusPublished))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Post{}, apperrors.NewNotFound("post")
		}
		return Post{}, fmt.Errorf("failed to get post by slug: %w", err)
	}
	return p, nil
}

// ListPosts returns all posts, newest first (admin view).
func (s *PGStore) ListPosts(ctx context.Context) ([]Post, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+postColumns+` FROM posts ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return scanPosts(rows)
}

// ListPublishedPosts returns published posts newest first; limit <= 0
// means no limit.
func (s *PGStore) ListPublishedPosts(ctx context.Context, limit int32) ([]Post, error) {
	var rows pgx.Rows
	var err error
	if limit > 0 {
		rows, err = s.pool.Query(ctx, `
			SELECT `+postColumns+` FROM posts
			WHERE status = $1 ORDER BY published_at DESC LIMIT $2`,
			PostStatusPublished, limit)
	} else {
		rows, err = s.pool.Query(ctx, `
			SELECT `+postColumns+` FROM posts
			WHERE status = $1 ORDER BY published_at DESC`,
			PostStatusPublished)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list published posts: %w", err)
	}
	return scanPosts(rows)
}
