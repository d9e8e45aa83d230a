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

// ImplicationService provides validated CRUD over implication records
// and the versioned-entity projection the regeneration workflow drives.
type ImplicationService struct {
	*EntityService[records.Implication]
}

// NewImplicationService creates an implication service
func NewImplicationService(repo ports.RecordRepository[records.Implication], logger *zap.Logger) *ImplicationService {
	return &ImplicationService{
		EntityService: NewEntityService(records.EntityImplication, repo, logger),
	}
}

// Create validates the params and persists a new implication
func (s *ImplicationService) Create(ctx context.Context, p records.NewImplicationParams) (records.Implication, error) {
	if p.Version == 0 {
		p.Version = 1
	}
	if err := utils.ValidateStruct(p); err != nil {
		return records.Implication{}, apperrors.NewValidationError(err.Error())
	}

	rec := records.NewImplication(p)
	return s.create(ctx, rec, rec.ID)
}

// Update applies a typed partial update to one implication
func (s *ImplicationService) Update(ctx context.Context, id string, upd records.ImplicationUpdate) (*records.Implication, error) {
	if err := utils.ValidateStruct(upd); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	return s.UpdateFields(ctx, id, upd.Item())
}

// ListByMinRelevance returns implications for a content id at or above
// a relevance threshold, filtered client-side after the fetch.
func (s *ImplicationService) ListByMinRelevance(ctx context.Context, contentID string, minScore float64, limit int) ([]records.Implication, error) {
	if strings.TrimSpace(contentID) == "" {
		return nil, apperrors.NewValidationError("content id is required")
	}
	if minScore < 0 || minScore > 1 {
		return nil, apperrors.NewValidationError("min relevance score must be between 0.0 and 1.0")
	}
	if err := checkLimit(limit); err != nil {
		return nil, err
	}

	all, err := s.repo.FindAll(ctx, records.Filter{"content_id": contentID}, 0)
	if err != nil {
		return nil, err
	}

	matched := make([]records.Implication, 0, len(all))
	for _, rec := range all {
		if rec.RelevanceScore < minScore {
			continue
		}
		matched = append(matched, rec)
		if limit > 0 && len(matched) >= limit {
			break
		}
	}
	return matched, nil
}

// EntityType implements the versioned-entity port
func (s *ImplicationService) EntityType() records.EntityType {
	return records.EntityImplication
}

// ListByContent projects every implication for a content id into the
// workflow's entity-neutral record shape
func (s *ImplicationService) ListByContent(ctx context.Context, contentID string) ([]ports.VersionedRecord, error) {
	recs, err := s.ListByContentID(ctx, contentID, 0)
	if err != nil {
		return nil, err
	}

	out := make([]ports.VersionedRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, implicationToVersioned(rec))
	}
	return out, nil
}

// SetPreferred flips the preferred_choice flag on one implication
func (s *ImplicationService) SetPreferred(ctx context.Context, id string, preferred bool) error {
	_, err := s.Update(ctx, id, records.ImplicationUpdate{PreferredChoice: &preferred})
	return err
}

// CreateVersion persists the new implication version the workflow built
func (s *ImplicationService) CreateVersion(ctx context.Context, p ports.NewVersionParams) (ports.VersionedRecord, error) {
	rec, err := s.Create(ctx, records.NewImplicationParams{
		ContentID:       p.ContentID,
		URLID:           p.URLID,
		Text:            p.Body,
		RelevanceScore:  p.Score,
		Version:         p.Version,
		IsCanonical:     p.IsCanonical,
		PreferredChoice: p.PreferredChoice,
		CreatedBy:       p.CreatedBy,
	})
	if err != nil {
		return ports.VersionedRecord{}, err
	}
	return implicationToVersioned(rec), nil
}

func implicationToVersioned(rec records.Implication) ports.VersionedRecord {
	return ports.VersionedRecord{
		ID:              rec.ID,
		ContentID:       rec.ContentID,
		URLID:           rec.URLID,
		Body:            rec.Text,
		Score:           rec.RelevanceScore,
		Version:         rec.Version,
		IsCanonical:     rec.IsCanonical,
		PreferredChoice: rec.PreferredChoice,
		CreatedAt:       rec.CreatedAt,
		CreatedBy:       rec.CreatedBy,
	}
}
