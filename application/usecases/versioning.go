package usecases

import (
	"context"
	"fmt"
	"strings"

	"insights-backend/application/ports"
	"insights-backend/domain/records"
	apperrors "insights-backend/pkg/errors"
	"insights-backend/pkg/utils"

	"go.uber.org/zap"
)

// answerExcerptLimit caps how much of the generated body is quoted in a
// synthesized Q&A answer.
const answerExcerptLimit = 200

// QACreator is the slice of QAService the workflow needs
type QACreator interface {
	Create(ctx context.Context, p records.NewQAParams) (records.QA, error)
}

// WorkflowOptions configures one entity's regeneration behavior
type WorkflowOptions struct {
	// DefaultCanonical is used when the caller does not state intent:
	// true for fresh implication generation, false for regenerated
	// insight variants pending review.
	DefaultCanonical bool
	// DefaultScore seeds the confidence/relevance score of a generated
	// version.
	DefaultScore float64
	// CreatedBy names the workflow as the record creator
	CreatedBy string
}

// VersioningWorkflow computes the next version number for a content id,
// demotes previously preferred records, creates the new record, and
// optionally writes a linked Q&A audit entry.
//
// The steps are sequential and non-transactional. Two concurrent
// invocations for the same content id can compute the same version from
// a stale count and leave zero or two records preferred; the next
// invocation's demotion pass reconciles the preferred flags. This
// read-then-write behavior is intentional.
type VersioningWorkflow struct {
	entity  ports.VersionedEntity
	qa      QACreator
	regen   ports.RegenerationClient
	events  ports.EventPublisher
	metrics ports.MetricsEmitter
	opts    WorkflowOptions
	logger  *zap.Logger
}

// NewVersioningWorkflow wires a workflow for one versioned entity type.
// events and metrics may be nil; both are best-effort.
func NewVersioningWorkflow(
	entity ports.VersionedEntity,
	qa QACreator,
	regen ports.RegenerationClient,
	events ports.EventPublisher,
	metrics ports.MetricsEmitter,
	opts WorkflowOptions,
	logger *zap.Logger,
) *VersioningWorkflow {
	return &VersioningWorkflow{
		entity:  entity,
		qa:      qa,
		regen:   regen,
		events:  events,
		metrics: metrics,
		opts:    opts,
		logger:  logger,
	}
}

// RegenerateParams carries caller input for one regeneration
type RegenerateParams struct {
	ContentID    string
	URLID        string
	UserText     string
	QuestionText string
	// IsCanonical overrides the entity's default canonical intent
	IsCanonical *bool
}

// RegenerateResult summarizes a completed regeneration
type RegenerateResult struct {
	Record     ports.VersionedRecord
	Version    int
	PriorCount int
	// QA is nil when no question was supplied
	QA *records.QA
	// UsedFallback reports that the upstream API failed and placeholder
	// text was substituted
	UsedFallback bool
}

// Regenerate runs the versioning workflow for one content id
func (w *VersioningWorkflow) Regenerate(ctx context.Context, p RegenerateParams) (*RegenerateResult, error) {
	if strings.TrimSpace(p.ContentID) == "" {
		return nil, apperrors.NewValidationError("content id is required")
	}

	entity := string(w.entity.EntityType())

	// Step 1: count existing records; the next version is count+1, not
	// max+1, so after deletions a version number can be reused.
	existing, err := w.entity.ListByContent(ctx, p.ContentID)
	if err != nil {
		return nil, err
	}
	newVersion := len(existing) + 1

	// Step 2: demote every currently preferred record. Sequential and
	// idempotent per record; a crash mid-loop is reconciled by the next
	// invocation's pass.
	for _, rec := range existing {
		if !rec.PreferredChoice {
			continue
		}
		if err := w.entity.SetPreferred(ctx, rec.ID, false); err != nil {
			w.logger.Error("Failed to demote preferred record",
				zap.String("entity", entity),
				zap.String("id", rec.ID),
				zap.String("contentID", p.ContentID),
				zap.Error(err),
			)
			return nil, err
		}
		w.logger.Debug("Demoted preferred record",
			zap.String("entity", entity),
			zap.String("id", rec.ID),
		)
	}

	// Step 3: generate the new body text. Upstream failure is absorbed
	// into a placeholder so versioning and persistence proceed.
	body, usedFallback := w.generateBody(ctx, p, newVersion)

	canonical := w.opts.DefaultCanonical
	if p.IsCanonical != nil {
		canonical = *p.IsCanonical
	}

	// Step 4: create the new preferred record
	created, err := w.entity.CreateVersion(ctx, ports.NewVersionParams{
		ContentID:       p.ContentID,
		URLID:           p.URLID,
		Body:            body,
		Score:           w.opts.DefaultScore,
		Version:         newVersion,
		IsCanonical:     canonical,
		PreferredChoice: true,
		CreatedBy:       w.opts.CreatedBy,
	})
	if err != nil {
		return nil, err
	}

	result := &RegenerateResult{
		Record:       created,
		Version:      newVersion,
		PriorCount:   len(existing),
		UsedFallback: usedFallback,
	}

	// Step 5: optional Q&A audit entry
	question := strings.TrimSpace(p.QuestionText)
	if question != "" {
		qaRec, err := w.qa.Create(ctx, records.NewQAParams{
			ParentID:     created.ID,
			ContentID:    p.ContentID,
			Question:     question,
			Answer:       synthesizeAnswer(entity, created.Body),
			QuestionType: records.QuestionTypeRegeneration,
			Metadata: map[string]interface{}{
				"version":    newVersion,
				"content_id": p.ContentID,
			},
			CreatedBy: w.opts.CreatedBy,
		})
		if err != nil {
			return nil, err
		}
		result.QA = &qaRec
	}

	w.logger.Info("Regeneration completed",
		zap.String("entity", entity),
		zap.String("contentID", p.ContentID),
		zap.String("recordID", created.ID),
		zap.Int("version", newVersion),
		zap.Int("priorCount", len(existing)),
		zap.Bool("usedFallback", usedFallback),
		zap.Bool("qaCreated", result.QA != nil),
	)

	w.publishAudit(ctx, created, newVersion, usedFallback)

	return result, nil
}

// SetPreferredRecord re-runs the demotion pass for a content id, then
// force-sets preferred_choice on the named record. Used when a UI picks
// among already-generated drafts instead of creating a new one.
func (w *VersioningWorkflow) SetPreferredRecord(ctx context.Context, contentID, recordID string) error {
	if strings.TrimSpace(contentID) == "" {
		return apperrors.NewValidationError("content id is required")
	}
	if strings.TrimSpace(recordID) == "" {
		return apperrors.NewValidationError("record id is required")
	}

	existing, err := w.entity.ListByContent(ctx, contentID)
	if err != nil {
		return err
	}

	for _, rec := range existing {
		if !rec.PreferredChoice || rec.ID == recordID {
			continue
		}
		if err := w.entity.SetPreferred(ctx, rec.ID, false); err != nil {
			return err
		}
	}

	if err := w.entity.SetPreferred(ctx, recordID, true); err != nil {
		return err
	}

	w.logger.Info("Preferred record updated",
		zap.String("entity", string(w.entity.EntityType())),
		zap.String("contentID", contentID),
		zap.String("recordID", recordID),
	)
	return nil
}

func (w *VersioningWorkflow) generateBody(ctx context.Context, p RegenerateParams, version int) (string, bool) {
	entity := string(w.entity.EntityType())

	body, err := w.regen.Regenerate(ctx, ports.RegenerationRequest{
		ContentID:    p.ContentID,
		UserText:     p.UserText,
		QuestionText: strings.TrimSpace(p.QuestionText),
	})
	if err == nil && strings.TrimSpace(body) != "" {
		return body, false
	}

	if err != nil {
		w.logger.Warn("Regeneration API unavailable, substituting placeholder",
			zap.String("entity", entity),
			zap.String("contentID", p.ContentID),
			zap.Error(err),
		)
	}
	w.count(ctx, "RegenerationFallback", entity)

	return fmt.Sprintf("[pending regeneration] %s draft v%d for content %s", entity, version, p.ContentID), true
}

func (w *VersioningWorkflow) publishAudit(ctx context.Context, rec ports.VersionedRecord, version int, usedFallback bool) {
	w.count(ctx, "RecordRegenerated", string(w.entity.EntityType()))

	if w.events == nil {
		return
	}
	event := ports.AuditEvent{
		DetailType: "RecordRegenerated",
		Detail: map[string]interface{}{
			"entity":        string(w.entity.EntityType()),
			"record_id":     rec.ID,
			"content_id":    rec.ContentID,
			"version":       version,
			"used_fallback": usedFallback,
			"occurred_at":   utils.NowRFC3339(),
		},
	}
	if err := w.events.Publish(ctx, event); err != nil {
		w.logger.Warn("Failed to publish audit event",
			zap.String("detailType", event.DetailType),
			zap.Error(err),
		)
	}
}

func (w *VersioningWorkflow) count(ctx context.Context, name, entity string) {
	if w.metrics == nil {
		return
	}
	if err := w.metrics.Count(ctx, name, 1, map[string]string{"Entity": entity}); err != nil {
		w.logger.Debug("Failed to emit metric", zap.String("metric", name), zap.Error(err))
	}
}

func synthesizeAnswer(entity, body string) string {
	excerpt := []rune(body)
	if len(excerpt) > answerExcerptLimit {
		return fmt.Sprintf("Based on the latest %s: %s...", entity, string(excerpt[:answerExcerptLimit]))
	}
	return fmt.Sprintf("Based on the latest %s: %s", entity, body)
}
