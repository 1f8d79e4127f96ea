package service

import (
	"context"
	"time"
)

// ProductEventType names a product lifecycle transition.
type ProductEventType string

const (
	ProductCreated   ProductEventType = "product.created"
	ProductDetailed  ProductEventType = "product.detailed"
	ProductActivated ProductEventType = "product.activated"
	ProductDeleted   ProductEventType = "product.deleted"
)

// ProductEvent is published after a product mutation has been committed.
type ProductEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	EventID    string           `json:"event_id"`
	Type       ProductEventType `json:"type"`
	ProductID  int64            `json:"product_id"`
	MerchantID int64            `json:"merchant_id"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProductEvent publishes a product lifecycle event
	PublishProductEvent(ctx context.Context, event *ProductEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
