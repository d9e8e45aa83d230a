package services

import (
	"context"

	"insights-backend/application/ports"
	"insights-backend/domain/records"
	apperrors "insights-backend/pkg/errors"
	"insights-backend/pkg/utils"

	"go.uber.org/zap"
)

// SummaryService provides validated CRUD over summary records
type SummaryService struct {
	*EntityService[records.Summary]
}

// NewSummaryService creates a summary service
func NewSummaryService(repo ports.RecordRepository[records.Summary], logger *zap.Logger) *SummaryService {
	return &SummaryService{
		EntityService: NewEntityService(records.EntitySummary, repo, logger),
	}
}

// Create validates the params and persists a new summary
func (s *SummaryService) Create(ctx context.Context, p records.NewSummaryParams) (records.Summary, error) {
	if p.Version == 0 {
		p.Version = 1
	}
	if err := utils.ValidateStruct(p); err != nil {
		return records.Summary{}, apperrors.NewValidationError(err.Error())
	}

	rec := records.NewSummary(p)
	return s.create(ctx, rec, rec.ID)
}

// Update applies a typed partial update to one summary
func (s *SummaryService) Update(ctx context.Context, id string, upd records.SummaryUpdate) (*records.Summary, error) {
	if err := utils.ValidateStruct(upd); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	return s.UpdateFields(ctx, id, upd.Item())
}
