package services

import (
	"context"

	"insights-backend/application/ports"
	"insights-backend/domain/records"
	apperrors "insights-backend/pkg/errors"
	"insights-backend/pkg/utils"

	"go.uber.org/zap"
)

// ContentService provides validated CRUD over content records
type ContentService struct {
	*EntityService[records.Content]
}

// NewContentService creates a content service
func NewContentService(repo ports.RecordRepository[records.Content], logger *zap.Logger) *ContentService {
	return &ContentService{
		EntityService: NewEntityService(records.EntityContent, repo, logger),
	}
}

// Create validates the params and persists a new content record
func (s *ContentService) Create(ctx context.Context, p records.NewContentParams) (records.Content, error) {
	if err := utils.ValidateStruct(p); err != nil {
		return records.Content{}, apperrors.NewValidationError(err.Error())
	}

	rec := records.NewContent(p)
	return s.create(ctx, rec, rec.ID)
}

// Update applies a typed partial update to one content record
func (s *ContentService) Update(ctx context.Context, id string, upd records.ContentUpdate) (*records.Content, error) {
	if err := utils.ValidateStruct(upd); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	return s.UpdateFields(ctx, id, upd.Item())
}
