package service

import (
	"context"
	"time"
)

// CatalogEventType names a change to the restaurant catalog.
type CatalogEventType string

const (
	EventRestaurantCreated CatalogEventType = "restaurant.created"
	EventRatingAdded       CatalogEventType = "rating.added"
)

// CatalogEvent tells other instances that the catalog changed and their snapshot is stale
type CatalogEvent struct {
	RequestID    string           `json:"request_id,omitempty"` // For distributed tracing
	EventID      string           `json:"event_id"`
	Type         CatalogEventType `json:"type"`
	RestaurantID string           `json:"restaurant_id"`
	Origin       string           `json:"origin"` // Instance ID of the publisher
	OccurredAt   time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a catalog change event
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
