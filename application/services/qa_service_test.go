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

func newQAService(t *testing.T) *QAService {
	t.Helper()
	store := memory.NewStore()
	repo := repository.New(store, "qa", records.QAMapping, zap.NewNop())
	return NewQAService(repo, zap.NewNop())
}

func TestQACreateAndListByParentID(t *testing.T) {
	svc := newQAService(t)
	ctx := context.Background()

	for _, parent := range []string{"i1", "i1", "i2"} {
		_, err := svc.Create(ctx, records.NewQAParams{
			ParentID:     parent,
			ContentID:    "c1",
			Question:     "why?",
			Answer:       "because",
			QuestionType: records.QuestionTypeRegeneration,
		})
		require.NoError(t, err)
	}

	recs, err := svc.ListByParentID(ctx, "i1", 0)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	recs, err = svc.ListByParentID(ctx, "i3", 0)
	require.NoError(t, err)
	assert.Empty(t, recs)

	_, err = svc.ListByParentID(ctx, "", 0)
	assert.True(t, apperrors.IsValidation(err))
}

func TestQACreateRequiresFields(t *testing.T) {
	svc := newQAService(t)

	_, err := svc.Create(context.Background(), records.NewQAParams{
		ParentID:  "i1",
		ContentID: "c1",
		Question:  "why?",
		// missing answer and question type
	})
	assert.True(t, apperrors.IsValidation(err))
}
