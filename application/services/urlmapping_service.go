package services

import (
	"context"

	"insights-backend/application/ports"
	"insights-backend/domain/records"
	apperrors "insights-backend/pkg/errors"
	"insights-backend/pkg/utils"

	"go.uber.org/zap"
)

// URLMappingService provides validated CRUD over URL mapping records
type URLMappingService struct {
	*EntityService[records.URLMapping]
}

// NewURLMappingService creates a URL mapping service
func NewURLMappingService(repo ports.RecordRepository[records.URLMapping], logger *zap.Logger) *URLMappingService {
	return &URLMappingService{
		EntityService: NewEntityService(records.EntityURLMapping, repo, logger),
	}
}

// Create validates the params, normalizes the URL, and persists the
// mapping. A URL that does not parse is a validation error.
func (s *URLMappingService) Create(ctx context.Context, p records.NewURLMappingParams) (records.URLMapping, error) {
	if err := utils.ValidateStruct(p); err != nil {
		return records.URLMapping{}, apperrors.NewValidationError(err.Error())
	}

	rec, err := records.NewURLMapping(p)
	if err != nil {
		return records.URLMapping{}, apperrors.NewValidationErrorf("invalid url %q: %v", p.URL, err)
	}
	return s.create(ctx, rec, rec.ID)
}

// FindByNormalizedURL looks up a mapping by its normalized URL,
// nil when no mapping exists
func (s *URLMappingService) FindByNormalizedURL(ctx context.Context, rawURL string) (*records.URLMapping, error) {
	normalized, err := records.NormalizeURL(rawURL)
	if err != nil {
		return nil, apperrors.NewValidationErrorf("invalid url %q: %v", rawURL, err)
	}
	return s.repo.FindOne(ctx, records.Filter{"normalized_url": normalized})
}
