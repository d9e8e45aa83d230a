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

// QAService provides validated creation and lookup of Q&A audit records.
// Q&A records are immutable; there is no update or delete operation.
type QAService struct {
	*EntityService[records.QA]
}

// NewQAService creates a Q&A service
func NewQAService(repo ports.RecordRepository[records.QA], logger *zap.Logger) *QAService {
	return &QAService{
		EntityService: NewEntityService(records.EntityQA, repo, logger),
	}
}

// Create validates the params and persists a new Q&A record
func (s *QAService) Create(ctx context.Context, p records.NewQAParams) (records.QA, error) {
	if err := utils.ValidateStruct(p); err != nil {
		return records.QA{}, apperrors.NewValidationError(err.Error())
	}

	rec := records.NewQA(p)
	return s.create(ctx, rec, rec.ID)
}

// ListByParentID returns all Q&A records for an insight or implication id
func (s *QAService) ListByParentID(ctx context.Context, parentID string, limit int) ([]records.QA, error) {
	if strings.TrimSpace(parentID) == "" {
		return nil, apperrors.NewValidationError("parent id is required")
	}
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, records.Filter{"parent_id": parentID}, limit)
}
