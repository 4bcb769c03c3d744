package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/sullivan-trading/sullivan-api/internal/apperrors"
	"github.com/sullivan-trading/sullivan-api/internal/store"
	"go.uber.org/zap"
)

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title or operator-supplied slug into a URL-safe slug.
func Slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = slugStripRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// PostInput is raw blog post input from the admin panel.
type PostInput struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Excerpt   string `json:"excerpt"`
	Body      string `json:"body"`
	Status    string `json:"status"`
	HeroImage string `json:"hero_image"`
}

// PostService manages blog posts for the admin panel and public site.
type PostService struct {
	store  store.Store
	logger *zap.Logger
}

// NewPostService creates a PostService.
func NewPostService(st store.Store, logger *zap.Logger) *PostService {
	return &PostService{store: st, logger: logger}
}

func (s *PostService) normalize(input PostInput) (PostInput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return PostInput{}, apperrors.NewValidation("title is required")
	}
	if input.Slug != "" {
		input.Slug = Slugify(input.Slug)
	} else {
		input.Slug = Slugify(input.Title)
	}
	if input.Status == "" {
		input.Status = store.PostStatusDraft
	}
	return input, nil
}

// CreatePost validates and persists a new post.
func (s *PostService) CreatePost(ctx context.Context, input PostInput) (store.Post, error) {
	input, err := s.normalize(input)
	if err != nil {
		return store.Post{}, err
	}
	post, err := s.store.CreatePost(ctx, store.CreatePostParams{
		Title:     input.Title,
		Slug:      input.Slug,
		Excerpt:   input.Excerpt,
		Body:      input.Body,
		Status:    input.Status,
		HeroImage: input.HeroImage,
	})
	if err != nil {
		return store.Post{}, err
	}
	s.logger.Info("Post created", zap.Int64("post_id", post.ID), zap.String("slug", post.Slug))
	return post, nil
}

// UpdatePost validates and replaces a post's editable fields.
func (s *PostService) UpdatePost(ctx context.Context, id int64, input PostInput) (store.Post, error) {
	input, err := s.normalize(input)
	if err != nil {
		return store.Post{}, err
	}
	return s.store.UpdatePost(ctx, store.UpdatePostParams{
		ID:        id,
		Title:     input.Title,
		Slug:      input.Slug,
		Excerpt:   input.Excerpt,
		Body:      input.Body,
		Status:    input.Status,
		HeroImage: input.HeroImage,
	})
}

// DeletePost removes a post.
func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	return s.store.DeletePost(ctx, id)
}

// GetPost returns a post by id for the admin panel.
func (s *PostService) GetPost(ctx context.Context, id int64) (store.Post, error) {
	return s.store.GetPost(ctx, id)
}

// GetPublishedPost returns a published post by slug for the public site.
func (s *PostService) GetPublishedPost(ctx context.Context, slug string) (store.Post, error) {
	return s.store.GetPublishedPostBySlug(ctx, slug)
}

// ListPosts returns all posts for the admin panel.
func (s *PostService) ListPosts(ctx context.Context) ([]store.Post, error) {
	return s.store.ListPosts(ctx)
}

// ListPublishedPosts returns published posts for the public site.
func (s *PostService) ListPublishedPosts(ctx context.Context, limit int32) ([]store.Post, error) {
	return s.store.ListPublishedPosts(ctx, limit)
}
