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

func newImplicationService(t *testing.T) (*ImplicationService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	repo := repository.New(store, "implications", records.ImplicationMapping, zap.NewNop())
	return NewImplicationService(repo, zap.NewNop()), store
}

func TestImplicationCreateDefaultsVersion(t *testing.T) {
	svc, _ := newImplicationService(t)

	rec, err := svc.Create(context.Background(), records.NewImplicationParams{
		ContentID:      "c1",
		Text:           "an implication",
		RelevanceScore: 0.6,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Version)
	assert.NotEmpty(t, rec.ID)
}

func TestImplicationCreateScoreOutOfRange(t *testing.T) {
	svc, store := newImplicationService(t)

	for _, score := range []float64{-0.2, 1.1} {
		_, err := svc.Create(context.Background(), records.NewImplicationParams{
			ContentID:      "c1",
			Text:           "an implication",
			RelevanceScore: score,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	}
	assert.Equal(t, 0, store.Count("implications"))
}

func TestImplicationListByMinRelevance(t *testing.T) {
	svc, _ := newImplicationService(t)
	ctx := context.Background()

	for _, score := range []float64{0.3, 0.75, 0.9} {
		_, err := svc.Create(ctx, records.NewImplicationParams{
			ContentID:      "c1",
			Text:           "an implication",
			RelevanceScore: score,
		})
		require.NoError(t, err)
	}

	matched, err := svc.ListByMinRelevance(ctx, "c1", 0.7, 0)
	require.NoError(t, err)
	require.Len(t, matched, 2)
	for _, rec := range matched {
		assert.GreaterOrEqual(t, rec.RelevanceScore, 0.7)
	}
}

func TestImplicationListByMinRelevanceLimit(t *testing.T) {
	svc, _ := newImplicationService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, records.NewImplicationParams{
			ContentID:      "c1",
			Text:           "an implication",
			RelevanceScore: 0.8,
		})
		require.NoError(t, err)
	}

	matched, err := svc.ListByMinRelevance(ctx, "c1", 0.5, 2)
	require.NoError(t, err)
	assert.Len(t, matched, 2)
}

func TestImplicationListByMinRelevanceValidation(t *testing.T) {
	svc, _ := newImplicationService(t)
	ctx := context.Background()

	_, err := svc.ListByMinRelevance(ctx, "  ", 0.5, 0)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.ListByMinRelevance(ctx, "c1", 1.2, 0)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.ListByMinRelevance(ctx, "c1", -0.1, 0)
	assert.True(t, apperrors.IsValidation(err))
}
