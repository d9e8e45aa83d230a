package ports

import (
	"context"
	"time"

	"insights-backend/domain/records"
)

// VersionedRecord is the entity-neutral view the versioning workflow
// operates on. Insight and implication services project their records
// into this shape.
type VersionedRecord struct {
	ID              string
	ContentID       string
	URLID           string
	Body            string
	Score           float64
	Version         int
	IsCanonical     bool
	PreferredChoice bool
	CreatedAt       time.Time
	CreatedBy       string
}

// NewVersionParams describes the record the workflow wants created
type NewVersionParams struct {
	ContentID       string
	URLID           string
	Body            string
	Score           float64
	Version         int
	IsCanonical     bool
	PreferredChoice bool
	CreatedBy       string
}

// VersionedEntity is implemented per versioned entity type (insight,
// implication). The workflow drives demotion and creation through it.
type VersionedEntity interface {
	EntityType() records.EntityType

	// ListByContent returns every record for a content id
	ListByContent(ctx context.Context, contentID string) ([]VersionedRecord, error)

	// SetPreferred flips the preferred_choice flag on one record.
	// Returns a not-found error when the id does not exist.
	SetPreferred(ctx context.Context, id string, preferred bool) error

	// CreateVersion persists a new record built from the params
	CreateVersion(ctx context.Context, p NewVersionParams) (VersionedRecord, error)
}
