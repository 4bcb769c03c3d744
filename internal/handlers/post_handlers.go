package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sullivan-trading/sullivan-api/internal/services"
	"github.com/sullivan-trading/sullivan-api/internal/store"
	"go.uber.org/zap"
)

// PostHandler serves the admin blog CRUD and the public blog routes.
type PostHandler struct {
	posts  *services.PostService
	logger *zap.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(posts *services.PostService, logger *zap.Logger) *PostHandler {
	return &PostHandler{posts: posts, logger: logger}
}

type postResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Body        string     `json:"body"`
	Status      string     `json:"status"`
	HeroImage   *string    `json:"hero_image,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toPostResponse(p store.Post) postResponse {
	return postResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     textPtr(p.Excerpt),
		Body:        p.Body.String,
		Status:      p.Status,
		HeroImage:   textPtr(p.HeroImage),
		PublishedAt: timePtr(p.PublishedAt),
		CreatedAt:   p.CreatedAt.Time,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func toPostListResponse(posts []store.Post) gin.H {
	data := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		data = append(data, toPostResponse(p))
	}
	return gin.H{"object": "list", "data": data}
}

// CreatePost handles POST /admin/posts.
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input services.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	post, err := h.posts.CreatePost(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPostResponse(post))
}

// UpdatePost handles PUT /admin/posts/:id.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	post, err := h.posts.UpdatePost(c.Request.Context(), id, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostResponse(post))
}

// DeletePost handles DELETE /admin/posts/:id.
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.posts.DeletePost(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "post deleted"})
}

// GetPost handles GET /admin/posts/:id.
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	post, err := h.posts.GetPost(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostResponse(post))
}

// ListPosts handles GET /admin/posts, all statuses included.
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.posts.ListPosts(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostListResponse(posts))
}

// ListPublishedPosts handles GET /blog?limit=.
func (h *PostHandler) ListPublishedPosts(c *gin.Context) {
	var limit int32
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 0 {
			sendError(c, http.StatusBadRequest, "invalid limit parameter", err)
			return
		}
		limit = int32(parsed)
	}

	posts, err := h.posts.ListPublishedPosts(c.Request.Context(), limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostListResponse(posts))
}

// GetPublishedPost handles GET /blog/:slug. Drafts are invisible here.
func (h *PostHandler) GetPublishedPost(c *gin.Context) {
	slug := c.Param("slug")
	post, err := h.posts.GetPublishedPost(c.Request.Context(), slug)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostResponse(post))
}
