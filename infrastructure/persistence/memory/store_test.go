package memory

import (
	"context"
	"testing"

	"insights-backend/domain/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateAndGet(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	item := records.Item{records.KeyAttr: "a1", "title": "first"}
	created, err := s.CreateItem(ctx, "t", item)
	require.NoError(t, err)
	assert.Equal(t, "first", created["title"])

	got, err := s.GetItem(ctx, "t", "a1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "first", got["title"])

	// stored copy is isolated from caller mutation
	item["title"] = "changed"
	got, err = s.GetItem(ctx, "t", "a1")
	require.NoError(t, err)
	assert.Equal(t, "first", got["title"])
}

func TestStoreGetMissing(t *testing.T) {
	s := NewStore()

	got, err := s.GetItem(context.Background(), "t", "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreQueryFilterAndLimit(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	for _, it := range []records.Item{
		{records.KeyAttr: "a", "content_id": "c1", "version": 1},
		{records.KeyAttr: "b", "content_id": "c2", "version": 1},
		{records.KeyAttr: "c", "content_id": "c1", "version": 2},
	} {
		_, err := s.CreateItem(ctx, "t", it)
		require.NoError(t, err)
	}

	items, err := s.QueryItems(ctx, "t", records.Filter{"content_id": "c1"}, 0)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = s.QueryItems(ctx, "t", records.Filter{"content_id": "c1"}, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0][records.KeyAttr])

	items, err = s.QueryItems(ctx, "t", records.Filter{"content_id": "c3"}, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStoreQueryNumericEquality(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.CreateItem(ctx, "t", records.Item{records.KeyAttr: "a", "version": 2})
	require.NoError(t, err)

	// DynamoDB round-trips numbers as float64; the filter may carry an int
	items, err := s.QueryItems(ctx, "t", records.Filter{"version": float64(2)}, 0)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestStoreUpdateMergesFields(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.CreateItem(ctx, "t", records.Item{records.KeyAttr: "a", "title": "old", "version": 1})
	require.NoError(t, err)

	updated, err := s.UpdateItem(ctx, "t", "a", records.Item{"title": "new"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "new", updated["title"])
	assert.Equal(t, 1, updated["version"])
}

func TestStoreUpdateMissing(t *testing.T) {
	s := NewStore()

	updated, err := s.UpdateItem(context.Background(), "t", "nope", records.Item{"title": "x"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}
