package ports

import (
	"context"

	"insights-backend/domain/records"
)

// RecordStore is the single-table-per-entity key-value store contract.
// Items are flat string/number/bool keyed maps; every call is an
// independent store operation with no cross-item transaction.
type RecordStore interface {
	// CreateItem persists an item and returns it. No duplicate check.
	CreateItem(ctx context.Context, table string, item records.Item) (records.Item, error)

	// GetItem fetches an item by primary key. Returns nil when absent.
	GetItem(ctx context.Context, table string, id string) (records.Item, error)

	// QueryItems returns all items matching an exact-match conjunction
	// filter, capped to limit when limit > 0. An empty filter matches
	// everything. Non-key filtering is scan-and-filter; callers must not
	// assume it scales past a small working set.
	QueryItems(ctx context.Context, table string, filter records.Filter, limit int) ([]records.Item, error)

	// UpdateItem merges partial fields into the item identified by primary
	// key and returns the updated item, or nil when no such item exists.
	// The merge is not atomic with any prior read.
	UpdateItem(ctx context.Context, table string, id string, partial records.Item) (records.Item, error)
}
