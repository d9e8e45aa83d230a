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

func newMetadataService(t *testing.T) *MetadataService {
	t.Helper()
	store := memory.NewStore()
	repo := repository.New(store, "metadata", records.MetadataMapping, zap.NewNop())
	return NewMetadataService(repo, zap.NewNop())
}

func TestMetadataCreateAndFindByContentID(t *testing.T) {
	svc := newMetadataService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, records.NewMetadataParams{
		ContentID:  "c1",
		Attributes: map[string]interface{}{"language": "en", "word_count": 840},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	found, err := svc.FindByContentID(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "en", found.Attributes["language"])

	found, err = svc.FindByContentID(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, found)

	_, err = svc.FindByContentID(ctx, " ")
	assert.True(t, apperrors.IsValidation(err))
}

func TestMetadataCreateDefaultsAttributes(t *testing.T) {
	svc := newMetadataService(t)

	created, err := svc.Create(context.Background(), records.NewMetadataParams{ContentID: "c1"})
	require.NoError(t, err)
	assert.NotNil(t, created.Attributes)
	assert.Empty(t, created.Attributes)
}

func TestMetadataUpdateReplacesAttributes(t *testing.T) {
	svc := newMetadataService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, records.NewMetadataParams{
		ContentID:  "c1",
		Attributes: map[string]interface{}{"language": "en"},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, records.MetadataUpdate{
		Attributes: map[string]interface{}{"language": "de"},
	})
	require.NoError(t, err)
	assert.Equal(t, "de", updated.Attributes["language"])

	_, err = svc.Update(ctx, "absent", records.MetadataUpdate{
		Attributes: map[string]interface{}{"k": "v"},
	})
	assert.True(t, apperrors.IsNotFound(err))
}
