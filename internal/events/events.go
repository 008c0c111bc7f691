// Package events publishes shipment lifecycle events.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/shiptrack/internal/domain"
)

// Event types.
const (
	ShipmentCreated = "shipment.created"
	ShipmentUpdated = "shipment.updated"
	ShipmentDeleted = "shipment.deleted"
)

// ShipmentEvent is the JSON payload written for every shipment change.
type ShipmentEvent struct {
	Type              string              `json:"type"`
	ShipmentID        uuid.UUID           `json:"shipmentId"`
	OwnerID           uuid.UUID           `json:"ownerId"`
	TrackingNumber    string              `json:"trackingNumber"`
	Status            domain.Status       `json:"status,omitempty"`
	EstimatedDelivery *openapi_types.Date `json:"estimatedDelivery,omitempty"`
	OccurredAt        time.Time           `json:"occurredAt"`
}

// NewShipmentEvent builds an event of the given type from s.
// Deleted events carry only identifiers.
func NewShipmentEvent(eventType string, s domain.Shipment, at time.Time) ShipmentEvent {
	e := ShipmentEvent{
		Type:           eventType,
		ShipmentID:     s.ID,
		OwnerID:        s.OwnerID,
		TrackingNumber: s.TrackingNumber,
		OccurredAt:     at.UTC(),
	}
	if eventType != ShipmentDeleted {
		e.Status = s.Status
		e.EstimatedDelivery = &openapi_types.Date{Time: s.EstimatedDelivery}
	}
	return e
}

// Publisher is the interface used by services to publish events.
type Publisher interface {
	Publish(ctx context.Context, e ShipmentEvent) error
	Close() error
}

// Nop discards every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, ShipmentEvent) error { return nil }
func (Nop) Close() error                                 { return nil }
