package services

import (
	"context"
	"strings"

	"insights-backend/application/ports"
	"insights-backend/domain/records"
	apperrors "insights-backend/pkg/errors"
	"insights-backend/pkg/utils"

	"go.uber.org/zap"
)

// MetadataService provides validated CRUD over metadata records
type MetadataService struct {
	*EntityService[records.Metadata]
}

// NewMetadataService creates a metadata service
func NewMetadataService(repo ports.RecordRepository[records.Metadata], logger *zap.Logger) *MetadataService {
	return &MetadataService{
		EntityService: NewEntityService(records.EntityMetadata, repo, logger),
	}
}

// Create validates the params and persists a new metadata record
func (s *MetadataService) Create(ctx context.Context, p records.NewMetadataParams) (records.Metadata, error) {
	if err := utils.ValidateStruct(p); err != nil {
		return records.Metadata{}, apperrors.NewValidationError(err.Error())
	}

	rec := records.NewMetadata(p)
	return s.create(ctx, rec, rec.ID)
}

// FindByContentID returns the first metadata record for a content id,
// nil when none exists
func (s *MetadataService) FindByContentID(ctx context.Context, contentID string) (*records.Metadata, error) {
	if strings.TrimSpace(contentID) == "" {
		return nil, apperrors.NewValidationError("content id is required")
	}
	return s.repo.FindOne(ctx, records.Filter{"content_id": contentID})
}

// Update replaces the attribute map on one metadata record
func (s *MetadataService) Update(ctx context.Context, id string, upd records.MetadataUpdate) (*records.Metadata, error) {
	return s.UpdateFields(ctx, id, upd.Item())
}
