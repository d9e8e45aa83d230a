package ports

import (
	"context"

	"insights-backend/domain/records"
)

// RecordRepository is the typed per-entity repository contract. One
// implementation, parameterized over a record mapping, serves all seven
// entity tables.
type RecordRepository[T any] interface {
	// Create persists a fully-populated record. Fails with a store error
	// when the underlying write fails; does not check for duplicates.
	Create(ctx context.Context, rec T) (T, error)

	// FindOne returns the first record matching the filter, or nil when
	// nothing matches. Zero matches is not an error.
	FindOne(ctx context.Context, filter records.Filter) (*T, error)

	// FindAll returns every record matching the filter, optionally capped
	// to limit. Ordering is unspecified.
	FindAll(ctx context.Context, filter records.Filter, limit int) ([]T, error)

	// Update merges partial fields into the record identified by primary
	// key. Returns nil when no record with that id exists.
	Update(ctx context.Context, id string, partial records.Item) (*T, error)
}
