package memory

import (
	"context"
	"sync"

	"insights-backend/domain/records"
)

// Store is an in-memory RecordStore used by tests and local development.
// It mirrors the DynamoDB adapter's semantics: exact-match conjunction
// filters, post-filter limit, nil for missing keys.
type Store struct {
	mu     sync.RWMutex
	tables map[string]map[string]records.Item
	order  map[string][]string
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		tables: make(map[string]map[string]records.Item),
		order:  make(map[string][]string),
	}
}

// CreateItem stores a copy of the item keyed by its pk attribute
func (s *Store) CreateItem(_ context.Context, table string, item records.Item) (records.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := item[records.KeyAttr].(string)
	if s.tables[table] == nil {
		s.tables[table] = make(map[string]records.Item)
	}
	if _, exists := s.tables[table][id]; !exists {
		s.order[table] = append(s.order[table], id)
	}
	s.tables[table][id] = copyItem(item)
	return copyItem(item), nil
}

// GetItem returns a copy of the item, nil when absent
func (s *Store) GetItem(_ context.Context, table string, id string) (records.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.tables[table][id]
	if !ok {
		return nil, nil
	}
	return copyItem(item), nil
}

// QueryItems returns items matching the filter in insertion order
func (s *Store) QueryItems(_ context.Context, table string, filter records.Filter, limit int) ([]records.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]records.Item, 0)
	for _, id := range s.order[table] {
		item, ok := s.tables[table][id]
		if !ok || !matches(item, filter) {
			continue
		}
		items = append(items, copyItem(item))
		if limit > 0 && len(items) >= limit {
			break
		}
	}
	return items, nil
}

// UpdateItem merges partial fields, nil when the key is absent
func (s *Store) UpdateItem(_ context.Context, table string, id string, partial records.Item) (records.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.tables[table][id]
	if !ok {
		return nil, nil
	}
	for field, value := range partial {
		item[field] = value
	}
	return copyItem(item), nil
}

// Count reports the number of items in a table
func (s *Store) Count(table string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables[table])
}

func matches(item records.Item, filter records.Filter) bool {
	for field, want := range filter {
		if !valueEqual(item[field], want) {
			return false
		}
	}
	return true
}

// valueEqual compares store values, treating numeric types as equal when
// their float64 renderings match, the way DynamoDB round-trips numbers
func valueEqual(got, want interface{}) bool {
	if gf, ok := asFloat(got); ok {
		if wf, ok := asFloat(want); ok {
			return gf == wf
		}
		return false
	}
	return got == want
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func copyItem(item records.Item) records.Item {
	dup := make(records.Item, len(item))
	for k, v := range item {
		if m, ok := v.(map[string]interface{}); ok {
			inner := make(map[string]interface{}, len(m))
			for ik, iv := range m {
				inner[ik] = iv
			}
			dup[k] = inner
			continue
		}
		dup[k] = v
	}
	return dup
}
