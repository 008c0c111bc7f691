// Package service contains the business logic for the shipment tracker.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/shiptrack/internal/domain"
	"github.com/pkordes/shiptrack/internal/events"
	"github.com/pkordes/shiptrack/internal/repo"
)

// publishTimeout bounds how long a write waits to hand an event to the publisher.
const publishTimeout = 5 * time.Second

// maxDeliveryYear is the last year a calendar date column can hold.
const maxDeliveryYear = 9999

// ShipmentService implements business logic for Shipment operations.
// Every method is scoped to the calling owner.
type ShipmentService struct {
	repo   repo.ShipmentRepo
	events events.Publisher
	log    *slog.Logger
	now    func() time.Time
}

// NewShipmentService constructs a ShipmentService. Events are published
// after each successful write; publish failures are logged, not returned.
func NewShipmentService(r repo.ShipmentRepo, p events.Publisher, log *slog.Logger) *ShipmentService {
	return &ShipmentService{repo: r, events: p, log: log, now: time.Now}
}

// Create validates in, computes the estimated delivery date, and persists
// a new shipment owned by ownerID.
func (s *ShipmentService) Create(ctx context.Context, ownerID uuid.UUID, in domain.ShipmentInput) (domain.Shipment, error) {
	shipment, err := prepareShipment(ownerID, in)
	if err != nil {
		return domain.Shipment{}, err
	}

	if err := s.ensureTrackingNumberFree(ctx, ownerID, shipment.TrackingNumber, uuid.Nil); err != nil {
		return domain.Shipment{}, fmt.Errorf("service.ShipmentService.Create: %w", err)
	}

	created, err := s.repo.Create(ctx, shipment)
	if err != nil {
		return domain.Shipment{}, fmt.Errorf("service.ShipmentService.Create: %w", err)
	}
	s.publish(ctx, events.ShipmentCreated, created)
	return created, nil
}

// GetByID returns one of the owner's shipments.
func (s *ShipmentService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (domain.Shipment, error) {
	shipment, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return domain.Shipment{}, fmt.Errorf("service.ShipmentService.GetByID: %w", err)
	}
	return shipment, nil
}

// List returns one page of the owner's shipments and the total match count.
func (s *ShipmentService) List(ctx context.Context, ownerID uuid.UUID, q domain.ShipmentQuery) ([]domain.Shipment, int64, error) {
	if err := q.Page.Validate(); err != nil {
		return nil, 0, fmt.Errorf("service.ShipmentService.List: %w", err)
	}
	items, total, err := s.repo.List(ctx, ownerID, q)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ShipmentService.List: %w", err)
	}
	return items, total, nil
}

// Update applies the fields present in in to an existing shipment.
// EstimatedDelivery is recomputed only when a field it depends on is present.
func (s *ShipmentService) Update(ctx context.Context, ownerID, id uuid.UUID, in domain.ShipmentInput) (domain.Shipment, error) {
	existing, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return domain.Shipment{}, fmt.Errorf("service.ShipmentService.Update: %w", err)
	}

	patched, err := applyPatch(existing, in)
	if err != nil {
		return domain.Shipment{}, err
	}

	if patched.TrackingNumber != existing.TrackingNumber {
		if err := s.ensureTrackingNumberFree(ctx, ownerID, patched.TrackingNumber, id); err != nil {
			return domain.Shipment{}, fmt.Errorf("service.ShipmentService.Update: %w", err)
		}
	}

	updated, err := s.repo.Update(ctx, patched)
	if err != nil {
		return domain.Shipment{}, fmt.Errorf("service.ShipmentService.Update: %w", err)
	}
	s.publish(ctx, events.ShipmentUpdated, updated)
	return updated, nil
}

// Delete removes one of the owner's shipments.
func (s *ShipmentService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("service.ShipmentService.Delete: %w", err)
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("service.ShipmentService.Delete: %w", err)
	}
	s.publish(ctx, events.ShipmentDeleted, existing)
	return nil
}

// ensureTrackingNumberFree returns a conflict when another of the owner's
// shipments (other than self) already uses trackingNumber.
func (s *ShipmentService) ensureTrackingNumberFree(ctx context.Context, ownerID uuid.UUID, trackingNumber string, self uuid.UUID) error {
	found, err := s.repo.FindByTrackingNumber(ctx, ownerID, trackingNumber)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return err
	case found.ID == self:
		return nil
	}
	return &domain.ConflictError{Message: "Tracking number already exists"}
}

func (s *ShipmentService) publish(ctx context.Context, eventType string, shipment domain.Shipment) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.events.Publish(ctx, events.NewShipmentEvent(eventType, shipment, s.now())); err != nil {
		s.log.WarnContext(ctx, "publish shipment event",
			"type", eventType,
			"shipment_id", shipment.ID,
			"error", err,
		)
	}
}

// prepareShipment validates a create payload and builds the shipment to
// persist. Every failing field is reported.
func prepareShipment(ownerID uuid.UUID, in domain.ShipmentInput) (domain.Shipment, error) {
	v := &domain.ValidationError{}
	s := domain.Shipment{
		OwnerID: ownerID,
		Status:  domain.StatusPending,
	}

	if in.TrackingNumber == nil {
		v.Add("trackingNumber", "Tracking number is required")
	} else {
		s.TrackingNumber = checkTrackingNumber(v, *in.TrackingNumber)
	}
	if in.Description == nil {
		v.Add("description", "Description is required")
	} else {
		s.Description = checkDescription(v, *in.Description)
	}
	if in.Status != nil {
		s.Status = checkStatus(v, *in.Status)
	}
	if in.IsFragile != nil {
		s.IsFragile = *in.IsFragile
	}
	if in.Origin != nil {
		s.Origin = trimAddress(*in.Origin)
	}
	if in.Destination != nil {
		s.Destination = trimAddress(*in.Destination)
	}
	if in.ShippingDate == nil {
		v.Add("shippingDate", "Shipping date is required")
	} else {
		s.ShippingDate = checkShippingDate(v, *in.ShippingDate)
	}
	if in.Distance == nil {
		v.Add("distance", "Distance is required")
	} else {
		s.Distance = checkDistance(v, *in.Distance)
	}
	if in.ShippingMethod == nil {
		v.Add("shippingMethod", "Shipping method is required")
	} else {
		s.ShippingMethod = checkShippingMethod(v, *in.ShippingMethod)
	}

	if len(v.Fields) == 0 {
		s.EstimatedDelivery = checkEstimate(v, s)
	}
	if err := v.Err(); err != nil {
		return domain.Shipment{}, err
	}
	return s, nil
}

// applyPatch merges the fields present in in over existing.
// ID, OwnerID and CreatedAt are never touched.
func applyPatch(existing domain.Shipment, in domain.ShipmentInput) (domain.Shipment, error) {
	v := &domain.ValidationError{}
	s := existing

	if in.TrackingNumber != nil {
		s.TrackingNumber = checkTrackingNumber(v, *in.TrackingNumber)
	}
	if in.Description != nil {
		s.Description = checkDescription(v, *in.Description)
	}
	if in.Status != nil {
		s.Status = checkStatus(v, *in.Status)
	}
	if in.IsFragile != nil {
		s.IsFragile = *in.IsFragile
	}
	if in.Origin != nil {
		s.Origin = trimAddress(*in.Origin)
	}
	if in.Destination != nil {
		s.Destination = trimAddress(*in.Destination)
	}
	if in.ShippingDate != nil {
		s.ShippingDate = checkShippingDate(v, *in.ShippingDate)
	}
	if in.Distance != nil {
		s.Distance = checkDistance(v, *in.Distance)
	}
	if in.ShippingMethod != nil {
		s.ShippingMethod = checkShippingMethod(v, *in.ShippingMethod)
	}

	if in.TouchesDelivery() && len(v.Fields) == 0 {
		s.EstimatedDelivery = checkEstimate(v, s)
	}
	if err := v.Err(); err != nil {
		return domain.Shipment{}, err
	}
	return s, nil
}

func checkTrackingNumber(v *domain.ValidationError, raw string) string {
	tn := strings.TrimSpace(raw)
	if tn == "" {
		v.Add("trackingNumber", "Tracking number is required")
	}
	return tn
}

func checkDescription(v *domain.ValidationError, raw string) string {
	d := strings.TrimSpace(raw)
	if d == "" {
		v.Add("description", "Description is required")
	}
	return d
}

func checkStatus(v *domain.ValidationError, raw string) domain.Status {
	st := domain.Status(strings.TrimSpace(raw))
	if !st.Valid() {
		v.Add("status", fmt.Sprintf("Status must be one of %s", joinValues(domain.Statuses)))
	}
	return st
}

func checkShippingMethod(v *domain.ValidationError, raw string) domain.ShippingMethod {
	m := domain.ShippingMethod(strings.TrimSpace(raw))
	if !m.Valid() {
		v.Add("shippingMethod", fmt.Sprintf("Shipping method must be one of %s", joinValues(domain.ShippingMethods)))
	}
	return m
}

func checkShippingDate(v *domain.ValidationError, raw string) time.Time {
	d, err := parseCalendarDate(raw)
	if err != nil {
		v.Add("shippingDate", "Shipping date must be a valid date (YYYY-MM-DD)")
	}
	return d
}

func checkDistance(v *domain.ValidationError, d float64) float64 {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		v.Add("distance", "Distance must be a positive number")
	}
	return d
}

// checkEstimate computes the delivery date for s and rejects results that
// no longer fit a calendar date.
func checkEstimate(v *domain.ValidationError, s domain.Shipment) time.Time {
	if s.Distance > maxDeliveryDistance {
		v.Add("distance", "Distance is too large")
		return time.Time{}
	}
	est := domain.EstimateDelivery(s.ShippingDate, s.Distance, s.ShippingMethod)
	if est.Year() > maxDeliveryYear {
		v.Add("distance", "Distance is too large")
	}
	return est
}

// maxDeliveryDistance keeps the day count well inside int range
// (about 8000 years of standard shipping).
const maxDeliveryDistance = 1.5e9

// parseCalendarDate accepts 2006-01-02 or RFC 3339 and returns midnight
// UTC of the calendar day as written, ignoring any offset.
func parseCalendarDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, err
		}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func trimAddress(a domain.Address) domain.Address {
	return domain.Address{
		Address: strings.TrimSpace(a.Address),
		City:    strings.TrimSpace(a.City),
		Country: strings.TrimSpace(a.Country),
	}
}

func joinValues[T ~string](values []T) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return strings.Join(out, ", ")
}
