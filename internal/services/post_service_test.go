package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sullivan-trading/sullivan-api/internal/apperrors"
	"github.com/sullivan-trading/sullivan-api/internal/mocks"
	"github.com/sullivan-trading/sullivan-api/internal/services"
	"github.com/sullivan-trading/sullivan-api/internal/store"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Trimmed  ", "trimmed"},
		{"Q3 2026: Market Update!", "q3-2026-market-update"},
		{"already-a-slug", "already-a-slug"},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, services.Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestCreatePostRequiresTitle(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	svc := services.NewPostService(st, zap.NewNop())

	_, err := svc.CreatePost(context.Background(), services.PostInput{Body: "text"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreatePostDerivesSlugFromTitle(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	svc := services.NewPostService(st, zap.NewNop())

	var captured store.CreatePostParams
	st.EXPECT().
		CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params store.CreatePostParams) (store.Post, error) {
			captured = params
			return store.Post{ID: 1, Title: params.Title, Slug: params.Slug, Status: params.Status}, nil
		})

	_, err := svc.CreatePost(context.Background(), services.PostInput{Title: "Market Update: Q3"})
	require.NoError(t, err)
	assert.Equal(t, "market-update-q3", captured.Slug)
	assert.Equal(t, store.PostStatusDraft, captured.Status, "status defaults to draft")
}

func TestCreatePostKeepsExplicitSlug(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	svc := services.NewPostService(st, zap.NewNop())

	st.EXPECT().
		CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params store.CreatePostParams) (store.Post, error) {
			assert.Equal(t, "custom-slug", params.Slug)
			return store.Post{ID: 1, Slug: params.Slug}, nil
		})

	_, err := svc.CreatePost(context.Background(), services.PostInput{
		Title:  "Some Title",
		Slug:   "Custom Slug",
		Status: store.PostStatusPublished,
	})
	require.NoError(t, err)
}

func TestUpdatePostValidation(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	svc := services.NewPostService(st, zap.NewNop())

	_, err := svc.UpdatePost(context.Background(), 1, services.PostInput{Title: ""})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
