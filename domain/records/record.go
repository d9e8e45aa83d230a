package records

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EntityType identifies one of the per-entity tables
type EntityType string

const (
	EntityContent     EntityType = "content"
	EntityURLMapping  EntityType = "url_mapping"
	EntityInsight     EntityType = "insight"
	EntityImplication EntityType = "implication"
	EntitySummary     EntityType = "summary"
	EntityMetadata    EntityType = "metadata"
	EntityQA          EntityType = "qa"
)

// Item is the flat string/number/bool keyed map the record store speaks
type Item = map[string]interface{}

// Filter is a conjunction (AND) of field=value equality constraints
type Filter = map[string]interface{}

// KeyAttr is the primary-key attribute shared by every table. Each entity
// exposes its own external field name for it in responses.
const KeyAttr = "pk"

// Schema describes an entity's key layout
type Schema struct {
	Entity      EntityType
	ResponseKey string // external name of the primary key, e.g. "insight_id"
}

// Mapping binds a record type to its schema and item codec. The generic
// repository is parameterized over one of these instead of a hand-written
// repository per entity.
type Mapping[T any] struct {
	Schema   Schema
	ID       func(T) string
	ToItem   func(T) Item
	FromItem func(Item) (T, error)
}

// NewID generates a record primary key
func NewID() string {
	return uuid.New().String()
}

// item field readers; store implementations round-trip numbers through
// float64, so the integer reader accepts both

func itemString(it Item, key string) string {
	if v, ok := it[key].(string); ok {
		return v
	}
	return ""
}

func itemFloat(it Item, key string) float64 {
	switch v := it[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func itemInt(it Item, key string) int {
	switch v := it[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func itemBool(it Item, key string) bool {
	if v, ok := it[key].(bool); ok {
		return v
	}
	return false
}

func itemTime(it Item, key string) time.Time {
	s := itemString(it, key)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func itemMap(it Item, key string) map[string]interface{} {
	if v, ok := it[key].(map[string]interface{}); ok {
		return v
	}
	return nil
}

func requireKey(it Item, entity EntityType) (string, error) {
	id := itemString(it, KeyAttr)
	if id == "" {
		return "", fmt.Errorf("%s item missing %s attribute", entity, KeyAttr)
	}
	return id, nil
}
