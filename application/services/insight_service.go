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

// InsightService provides validated CRUD over insight records and the
// versioned-entity projection the regeneration workflow drives.
type InsightService struct {
	*EntityService[records.Insight]
}

// NewInsightService creates an insight service
func NewInsightService(repo ports.RecordRepository[records.Insight], logger *zap.Logger) *InsightService {
	return &InsightService{
		EntityService: NewEntityService(records.EntityInsight, repo, logger),
	}
}

// Create validates the params and persists a new insight. Version
// defaults to 1 for direct creation; the versioning workflow supplies
// its own computed version.
func (s *InsightService) Create(ctx context.Context, p records.NewInsightParams) (records.Insight, error) {
	if p.Version == 0 {
		p.Version = 1
	}
	if err := utils.ValidateStruct(p); err != nil {
		return records.Insight{}, apperrors.NewValidationError(err.Error())
	}

	rec := records.NewInsight(p)
	return s.create(ctx, rec, rec.ID)
}

// Update applies a typed partial update to one insight
func (s *InsightService) Update(ctx context.Context, id string, upd records.InsightUpdate) (*records.Insight, error) {
	if err := utils.ValidateStruct(upd); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	return s.UpdateFields(ctx, id, upd.Item())
}

// ListByMinConfidence returns insights for a content id at or above a
// confidence threshold. The store has no range queries, so this fetches
// the content id's records and filters client-side.
func (s *InsightService) ListByMinConfidence(ctx context.Context, contentID string, minScore float64, limit int) ([]records.Insight, error) {
	if strings.TrimSpace(contentID) == "" {
		return nil, apperrors.NewValidationError("content id is required")
	}
	if minScore < 0 || minScore > 1 {
		return nil, apperrors.NewValidationError("min confidence score must be between 0.0 and 1.0")
	}
	if err := checkLimit(limit); err != nil {
		return nil, err
	}

	all, err := s.repo.FindAll(ctx, records.Filter{"content_id": contentID}, 0)
	if err != nil {
		return nil, err
	}

	matched := make([]records.Insight, 0, len(all))
	for _, rec := range all {
		if rec.ConfidenceScore < minScore {
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
func (s *InsightService) EntityType() records.EntityType {
	return records.EntityInsight
}

// ListByContent projects every insight for a content id into the
// workflow's entity-neutral record shape
func (s *InsightService) ListByContent(ctx context.Context, contentID string) ([]ports.VersionedRecord, error) {
	recs, err := s.ListByContentID(ctx, contentID, 0)
	if err != nil {
		return nil, err
	}

	out := make([]ports.VersionedRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, insightToVersioned(rec))
	}
	return out, nil
}

// SetPreferred flips the preferred_choice flag on one insight
func (s *InsightService) SetPreferred(ctx context.Context, id string, preferred bool) error {
	_, err := s.Update(ctx, id, records.InsightUpdate{PreferredChoice: &preferred})
	return err
}

// CreateVersion persists the new insight version the workflow built
func (s *InsightService) CreateVersion(ctx context.Context, p ports.NewVersionParams) (ports.VersionedRecord, error) {
	rec, err := s.Create(ctx, records.NewInsightParams{
		ContentID:       p.ContentID,
		URLID:           p.URLID,
		Text:            p.Body,
		ConfidenceScore: p.Score,
		Version:         p.Version,
		IsCanonical:     p.IsCanonical,
		PreferredChoice: p.PreferredChoice,
		CreatedBy:       p.CreatedBy,
	})
	if err != nil {
		return ports.VersionedRecord{}, err
	}
	return insightToVersioned(rec), nil
}

func insightToVersioned(rec records.Insight) ports.VersionedRecord {
	return ports.VersionedRecord{
		ID:              rec.ID,
		ContentID:       rec.ContentID,
		URLID:           rec.URLID,
		Body:            rec.Text,
		Score:           rec.ConfidenceScore,
		Version:         rec.Version,
		IsCanonical:     rec.IsCanonical,
		PreferredChoice: rec.PreferredChoice,
		CreatedAt:       rec.CreatedAt,
		CreatedBy:       rec.CreatedBy,
	}
}
