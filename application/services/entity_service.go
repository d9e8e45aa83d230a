package services

import (
	"context"
	"strings"

	"insights-backend/application/ports"
	"insights-backend/domain/records"
	apperrors "insights-backend/pkg/errors"

	"go.uber.org/zap"
)

// EntityService wraps a record repository with input validation and
// logging. One generic implementation backs every entity service; the
// per-entity types add their typed create/update operations on top.
type EntityService[T any] struct {
	entity records.EntityType
	repo   ports.RecordRepository[T]
	logger *zap.Logger
}

// NewEntityService creates the generic service core for one entity
func NewEntityService[T any](entity records.EntityType, repo ports.RecordRepository[T], logger *zap.Logger) *EntityService[T] {
	return &EntityService[T]{
		entity: entity,
		repo:   repo,
		logger: logger,
	}
}

// GetByID fetches one record by primary key
func (s *EntityService[T]) GetByID(ctx context.Context, id string) (*T, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationErrorf("%s id is required", s.entity)
	}

	rec, err := s.repo.FindOne(ctx, records.Filter{records.KeyAttr: id})
	if err != nil {
		s.logger.Error("Failed to fetch record",
			zap.String("entity", string(s.entity)),
			zap.String("id", id),
			zap.Error(err),
		)
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFoundError(string(s.entity), id)
	}
	return rec, nil
}

// List returns records, optionally capped to limit (0 means uncapped)
func (s *EntityService[T]) List(ctx context.Context, limit int) ([]T, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, nil, limit)
}

// ListByContentID returns all records for a parent content id
func (s *EntityService[T]) ListByContentID(ctx context.Context, contentID string, limit int) ([]T, error) {
	if strings.TrimSpace(contentID) == "" {
		return nil, apperrors.NewValidationError("content id is required")
	}
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, records.Filter{"content_id": contentID}, limit)
}

// UpdateFields merges a validated partial field map into one record
func (s *EntityService[T]) UpdateFields(ctx context.Context, id string, partial records.Item) (*T, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationErrorf("%s id is required", s.entity)
	}
	if len(partial) == 0 {
		return nil, apperrors.NewValidationError("no fields to update")
	}

	rec, err := s.repo.Update(ctx, id, partial)
	if err != nil {
		s.logger.Error("Failed to update record",
			zap.String("entity", string(s.entity)),
			zap.String("id", id),
			zap.Error(err),
		)
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFoundError(string(s.entity), id)
	}

	s.logger.Info("Record updated",
		zap.String("entity", string(s.entity)),
		zap.String("id", id),
		zap.Int("fields", len(partial)),
	)
	return rec, nil
}

func (s *EntityService[T]) create(ctx context.Context, rec T, id string) (T, error) {
	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		var zero T
		s.logger.Error("Failed to create record",
			zap.String("entity", string(s.entity)),
			zap.String("id", id),
			zap.Error(err),
		)
		return zero, err
	}

	s.logger.Info("Record created",
		zap.String("entity", string(s.entity)),
		zap.String("id", id),
	)
	return created, nil
}

func checkLimit(limit int) error {
	if limit < 0 {
		return apperrors.NewValidationError("limit must be positive")
	}
	return nil
}
