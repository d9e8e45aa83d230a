package usecases

import (
	"insights-backend/application/ports"
	"insights-backend/application/services"

	"go.uber.org/zap"
)

// InsightRegeneration is the versioning workflow bound to insights
type InsightRegeneration struct {
	*VersioningWorkflow
}

// NewInsightRegeneration wires the versioning workflow for insights.
// Regenerated insight variants start non-canonical, pending review.
func NewInsightRegeneration(
	insights *services.InsightService,
	qa *services.QAService,
	regen ports.RegenerationClient,
	events ports.EventPublisher,
	metrics ports.MetricsEmitter,
	logger *zap.Logger,
) *InsightRegeneration {
	return &InsightRegeneration{NewVersioningWorkflow(insights, qa, regen, events, metrics, WorkflowOptions{
		DefaultCanonical: false,
		DefaultScore:     0.8,
		CreatedBy:        "insight-regeneration",
	}, logger)}
}
