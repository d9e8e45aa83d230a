package services

import (
	"context"
	"testing"

	"insights-backend/domain/records"
	"insights-backend/infrastructure/persistence/memory"
	"insights-backend/infrastructure/persistence/repository"
	apperrors "insights-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newContentService(t *testing.T) (*ContentService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	repo := repository.New(store, "contents", records.ContentMapping, zap.NewNop())
	return NewContentService(repo, zap.NewNop()), store
}

func TestContentCreateDefaultsStatus(t *testing.T) {
	svc, _ := newContentService(t)

	rec, err := svc.Create(context.Background(), records.NewContentParams{
		Title:    "a study",
		UserText: "raw source text",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "pending", rec.Status)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestContentCreateMissingTitle(t *testing.T) {
	svc, store := newContentService(t)

	_, err := svc.Create(context.Background(), records.NewContentParams{
		UserText: "raw source text",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 0, store.Count("contents"))
}

func TestContentCreateRejectsUnknownStatus(t *testing.T) {
	svc, store := newContentService(t)

	_, err := svc.Create(context.Background(), records.NewContentParams{
		Title:    "a study",
		UserText: "raw source text",
		Status:   "draft",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 0, store.Count("contents"))
}

func TestContentUpdateStatus(t *testing.T) {
	svc, _ := newContentService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, records.NewContentParams{
		Title:    "a study",
		UserText: "raw source text",
	})
	require.NoError(t, err)

	status := "analyzed"
	updated, err := svc.Update(ctx, rec.ID, records.ContentUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "analyzed", updated.Status)
	assert.Equal(t, rec.Title, updated.Title)
}

func TestContentUpdateMissing(t *testing.T) {
	svc, _ := newContentService(t)

	status := "archived"
	_, err := svc.Update(context.Background(), "absent", records.ContentUpdate{Status: &status})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestContentGetByIDRoundTrip(t *testing.T) {
	svc, _ := newContentService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, records.NewContentParams{
		Title:     "a study",
		UserText:  "raw source text",
		SourceURL: "https://example.com/study",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Title, got.Title)
	assert.Equal(t, rec.SourceURL, got.SourceURL)
}
