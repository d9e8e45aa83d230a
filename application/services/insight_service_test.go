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

func newInsightService(t *testing.T) (*InsightService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	repo := repository.New(store, "insights", records.InsightMapping, zap.NewNop())
	return NewInsightService(repo, zap.NewNop()), store
}

func TestInsightCreateDefaultsVersion(t *testing.T) {
	svc, _ := newInsightService(t)

	rec, err := svc.Create(context.Background(), records.NewInsightParams{
		ContentID:       "c1",
		Text:            "an insight",
		ConfidenceScore: 0.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Version)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestInsightCreateScoreOutOfRange(t *testing.T) {
	svc, store := newInsightService(t)

	for _, score := range []float64{-0.1, 1.5} {
		_, err := svc.Create(context.Background(), records.NewInsightParams{
			ContentID:       "c1",
			Text:            "an insight",
			ConfidenceScore: score,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	}
	assert.Equal(t, 0, store.Count("insights"))
}

func TestInsightCreateMissingFields(t *testing.T) {
	svc, store := newInsightService(t)

	_, err := svc.Create(context.Background(), records.NewInsightParams{
		Text: "no content id",
	})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(context.Background(), records.NewInsightParams{
		ContentID: "c1",
	})
	assert.True(t, apperrors.IsValidation(err))

	assert.Equal(t, 0, store.Count("insights"))
}

func TestInsightGetByID(t *testing.T) {
	svc, _ := newInsightService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, records.NewInsightParams{
		ContentID:       "c1",
		Text:            "an insight",
		ConfidenceScore: 0.6,
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetByID(ctx, "absent")
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.GetByID(ctx, "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestInsightUpdatePartial(t *testing.T) {
	svc, _ := newInsightService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, records.NewInsightParams{
		ContentID:       "c1",
		Text:            "original",
		ConfidenceScore: 0.6,
	})
	require.NoError(t, err)

	text := "revised"
	updated, err := svc.Update(ctx, created.ID, records.InsightUpdate{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "revised", updated.Text)
	assert.Equal(t, 0.6, updated.ConfidenceScore)

	bad := 2.0
	_, err = svc.Update(ctx, created.ID, records.InsightUpdate{ConfidenceScore: &bad})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Update(ctx, created.ID, records.InsightUpdate{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestInsightListByMinConfidence(t *testing.T) {
	svc, _ := newInsightService(t)
	ctx := context.Background()

	for _, score := range []float64{0.3, 0.7, 0.9} {
		_, err := svc.Create(ctx, records.NewInsightParams{
			ContentID:       "c1",
			Text:            "an insight",
			ConfidenceScore: score,
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, records.NewInsightParams{
		ContentID:       "c2",
		Text:            "other content",
		ConfidenceScore: 0.95,
	})
	require.NoError(t, err)

	recs, err := svc.ListByMinConfidence(ctx, "c1", 0.7, 0)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
	for _, rec := range recs {
		assert.Equal(t, "c1", rec.ContentID)
		assert.GreaterOrEqual(t, rec.ConfidenceScore, 0.7)
	}

	_, err = svc.ListByMinConfidence(ctx, "", 0.5, 0)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.ListByMinConfidence(ctx, "c1", 1.2, 0)
	assert.True(t, apperrors.IsValidation(err))
}

func TestInsightListLimit(t *testing.T) {
	svc, _ := newInsightService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, records.NewInsightParams{
			ContentID:       "c1",
			Text:            "an insight",
			ConfidenceScore: 0.5,
		})
		require.NoError(t, err)
	}

	recs, err := svc.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	_, err = svc.List(ctx, -1)
	assert.True(t, apperrors.IsValidation(err))
}
