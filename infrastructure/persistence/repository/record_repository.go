package repository

import (
	"context"

	"insights-backend/application/ports"
	"insights-backend/domain/records"
	apperrors "insights-backend/pkg/errors"

	"go.uber.org/zap"
)

// RecordRepository implements the typed repository port for one entity
// table on top of any RecordStore. The mapping supplies the item codec,
// so a single implementation serves all seven entities.
type RecordRepository[T any] struct {
	store   ports.RecordStore
	table   string
	mapping records.Mapping[T]
	logger  *zap.Logger
}

// New creates a repository for one entity table
func New[T any](store ports.RecordStore, table string, mapping records.Mapping[T], logger *zap.Logger) *RecordRepository[T] {
	return &RecordRepository[T]{
		store:   store,
		table:   table,
		mapping: mapping,
		logger:  logger,
	}
}

// Create persists a fully-populated record
func (r *RecordRepository[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T

	item := r.mapping.ToItem(rec)
	if _, err := r.store.CreateItem(ctx, r.table, item); err != nil {
		r.logger.Error("Failed to create record",
			zap.String("entity", string(r.mapping.Schema.Entity)),
			zap.String("table", r.table),
			zap.Error(err),
		)
		return zero, err
	}

	r.logger.Debug("Record created",
		zap.String("entity", string(r.mapping.Schema.Entity)),
		zap.String("id", r.mapping.ID(rec)),
	)

	return rec, nil
}

// FindOne returns the first record matching the filter, nil when none.
// A primary-key-only filter takes the direct GetItem path.
func (r *RecordRepository[T]) FindOne(ctx context.Context, filter records.Filter) (*T, error) {
	if id, ok := filter[records.KeyAttr].(string); ok && len(filter) == 1 {
		item, err := r.store.GetItem(ctx, r.table, id)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, nil
		}
		return r.fromItem(item)
	}

	items, err := r.store.QueryItems(ctx, r.table, filter, 1)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return r.fromItem(items[0])
}

// FindAll returns every record matching the filter, capped to limit
func (r *RecordRepository[T]) FindAll(ctx context.Context, filter records.Filter, limit int) ([]T, error) {
	items, err := r.store.QueryItems(ctx, r.table, filter, limit)
	if err != nil {
		return nil, err
	}

	recs := make([]T, 0, len(items))
	for _, item := range items {
		rec, err := r.mapping.FromItem(item)
		if err != nil {
			r.logger.Warn("Skipping malformed item",
				zap.String("entity", string(r.mapping.Schema.Entity)),
				zap.Error(err),
			)
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Update merges partial fields into the record, nil when the id is absent
func (r *RecordRepository[T]) Update(ctx context.Context, id string, partial records.Item) (*T, error) {
	item, err := r.store.UpdateItem(ctx, r.table, id, partial)
	if err != nil {
		r.logger.Error("Failed to update record",
			zap.String("entity", string(r.mapping.Schema.Entity)),
			zap.String("id", id),
			zap.Error(err),
		)
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return r.fromItem(item)
}

func (r *RecordRepository[T]) fromItem(item records.Item) (*T, error) {
	rec, err := r.mapping.FromItem(item)
	if err != nil {
		return nil, apperrors.NewStoreError("decode", err)
	}
	return &rec, nil
}
