package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sullivan-trading/sullivan-api/internal/handlers"
	"github.com/sullivan-trading/sullivan-api/internal/services"
	"github.com/sullivan-trading/sullivan-api/internal/testutil"
	"go.uber.org/zap"
)

func postRouter() *gin.Engine {
	fake := testutil.NewFakeStore()
	svc := services.NewPostService(fake, zap.NewNop())
	h := handlers.NewPostHandler(svc, zap.NewNop())

	router := gin.New()
	router.GET("/blog", h.ListPublishedPosts)
	router.GET("/blog/:slug", h.GetPublishedPost)
	router.POST("/admin/posts", h.CreatePost)
	router.PUT("/admin/posts/:id", h.UpdatePost)
	router.DELETE("/admin/posts/:id", h.DeletePost)
	router.GET("/admin/posts", h.ListPosts)
	return router
}

func TestDraftPostsHiddenFromBlog(t *testing.T) {
	router := postRouter()

	rec := doJSON(t, router, http.MethodPost, "/admin/posts",
		`{"title":"Hidden Draft","body":"wip"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/blog/hidden-draft", "")
	assert.Equal(t, http.StatusNotFound, rec.Code, "drafts are invisible on the public site")

	var list struct {
		Data []json.RawMessage `json:"data"`
	}
	rec = doJSON(t, router, http.MethodGet, "/blog", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Empty(t, list.Data)

	// Admin listing still shows it.
	rec = doJSON(t, router, http.MethodGet, "/admin/posts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Data, 1)
}

func TestPublishPostFlow(t *testing.T) {
	router := postRouter()

	rec := doJSON(t, router, http.MethodPost, "/admin/posts",
		`{"title":"Market Update","body":"Q3 numbers","status":"published"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID          int64   `json:"id"`
		Slug        string  `json:"slug"`
		PublishedAt *string `json:"published_at"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "market-update", created.Slug)
	assert.NotNil(t, created.PublishedAt)

	rec = doJSON(t, router, http.MethodGet, "/blog/market-update", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Q3 numbers")
}

func TestCreatePostSlugConflict(t *testing.T) {
	router := postRouter()

	rec := doJSON(t, router, http.MethodPost, "/admin/posts", `{"title":"Same Title"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/admin/posts", `{"title":"Same Title"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "slug already exists")
}

func TestDeletePostEndpoint(t *testing.T) {
	router := postRouter()

	rec := doJSON(t, router, http.MethodPost, "/admin/posts", `{"title":"Doomed"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/admin/posts/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/admin/posts/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
