package service

import (
	"context"
	"time"

	"autobid/internal/domain/entity"
)

// ViewInvalidatedEvent tells cached admin screens that their data changed
type ViewInvalidatedEvent struct {
	RequestID  string        `json:"request_id,omitempty"` // For distributed tracing
	Views      []entity.View `json:"views"`
	Reason     string        `json:"reason"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishViewInvalidated announces that the listed views must be refreshed
	PublishViewInvalidated(ctx context.Context, event *ViewInvalidatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
