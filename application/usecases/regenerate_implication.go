package usecases

import (
	"insights-backend/application/ports"
	"insights-backend/application/services"

	"go.uber.org/zap"
)

// ImplicationRegeneration is the versioning workflow bound to implications
type ImplicationRegeneration struct {
	*VersioningWorkflow
}

// NewImplicationRegeneration wires the versioning workflow for
// implications. Fresh implication generations are canonical by default.
func NewImplicationRegeneration(
	implications *services.ImplicationService,
	qa *services.QAService,
	regen ports.RegenerationClient,
	events ports.EventPublisher,
	metrics ports.MetricsEmitter,
	logger *zap.Logger,
) *ImplicationRegeneration {
	return &ImplicationRegeneration{NewVersioningWorkflow(implications, qa, regen, events, metrics, WorkflowOptions{
		DefaultCanonical: true,
		DefaultScore:     0.75,
		CreatedBy:        "implication-regeneration",
	}, logger)}
}
