package ports

import "context"

// RegenerationRequest is the outbound regeneration API payload
type RegenerationRequest struct {
	ContentID    string `json:"content_id"`
	UserText     string `json:"user_text"`
	QuestionText string `json:"question_text,omitempty"`
}

// RegenerationClient calls the external insight-regeneration API. A
// timeout, transport error, or non-2xx response surfaces as an upstream
// error; callers substitute fallback text rather than aborting.
type RegenerationClient interface {
	Regenerate(ctx context.Context, req RegenerationRequest) (string, error)
}

// AuditEvent is a best-effort domain event emitted after workflow steps
type AuditEvent struct {
	DetailType string
	Detail     map[string]interface{}
}

// EventPublisher publishes audit events. Failures are logged by callers
// and never propagated.
type EventPublisher interface {
	Publish(ctx context.Context, event AuditEvent) error
}

// MetricsEmitter records operational counters. Best-effort.
type MetricsEmitter interface {
	Count(ctx context.Context, name string, value float64, dimensions map[string]string) error
}
