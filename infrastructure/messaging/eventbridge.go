package messaging

import (
	"context"
	"encoding/json"

	"insights-backend/application/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"
)

const eventSource = "insights-backend"

// EventBridgePublisher publishes audit events to an EventBridge bus.
// Publishing is best-effort; callers log and continue on failure.
type EventBridgePublisher struct {
	client  *eventbridge.Client
	busName string
	logger  *zap.Logger
}

// NewEventBridgePublisher creates an EventBridge audit publisher
func NewEventBridgePublisher(client *eventbridge.Client, busName string, logger *zap.Logger) *EventBridgePublisher {
	return &EventBridgePublisher{
		client:  client,
		busName: busName,
		logger:  logger,
	}
}

// Publish sends one audit event
func (p *EventBridgePublisher) Publish(ctx context.Context, event ports.AuditEvent) error {
	detail, err := json.Marshal(event.Detail)
	if err != nil {
		return err
	}

	input := &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{
			{
				EventBusName: aws.String(p.busName),
				Source:       aws.String(eventSource),
				DetailType:   aws.String(event.DetailType),
				Detail:       aws.String(string(detail)),
			},
		},
	}

	result, err := p.client.PutEvents(ctx, input)
	if err != nil {
		return err
	}
	if result.FailedEntryCount > 0 {
		p.logger.Warn("EventBridge rejected audit event",
			zap.String("detailType", event.DetailType),
			zap.Int32("failed", result.FailedEntryCount),
		)
	}

	p.logger.Debug("Audit event published",
		zap.String("detailType", event.DetailType),
		zap.String("bus", p.busName),
	)
	return nil
}
