package service_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/shiptrack/internal/domain"
	"github.com/pkordes/shiptrack/internal/events"
	"github.com/pkordes/shiptrack/internal/service"
)

// ---- helpers ---------------------------------------------------------------

func validInput(tracking string) domain.ShipmentInput {
	return domain.ShipmentInput{
		TrackingNumber: ptr(tracking),
		Description:    ptr("  Box of books  "),
		Origin:         &domain.Address{City: " Berlin ", Country: "DE"},
		ShippingDate:   ptr("2024-01-01"),
		Distance:       ptr(1200.0),
		ShippingMethod: ptr("standard"),
	}
}

func newService() (*service.ShipmentService, *memShipmentRepo, *recordingPublisher) {
	r := newMemShipmentRepo()
	p := &recordingPublisher{}
	return service.NewShipmentService(r, p, discardLogger()), r, p
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var v *domain.ValidationError
	require.ErrorAs(t, err, &v)
	out := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		out[i] = f.Field
	}
	return out
}

// ---- Create ----------------------------------------------------------------

func TestShipmentService_Create_Valid(t *testing.T) {
	svc, _, pub := newService()
	owner := uuid.New()

	got, err := svc.Create(context.Background(), owner, validInput("TRK1"))

	require.NoError(t, err)
	assert.Equal(t, owner, got.OwnerID)
	assert.Equal(t, "TRK1", got.TrackingNumber)
	assert.Equal(t, "Box of books", got.Description, "description is stored trimmed")
	assert.Equal(t, domain.StatusPending, got.Status, "status defaults to pending")
	assert.False(t, got.IsFragile)
	assert.Equal(t, "Berlin", got.Origin.City)
	assert.Equal(t, date(2024, 1, 1), got.ShippingDate)
	assert.Equal(t, date(2024, 1, 4), got.EstimatedDelivery)
	assert.Equal(t, []string{events.ShipmentCreated}, pub.types())
}

func TestShipmentService_Create_EstimatedDeliveryPerMethod(t *testing.T) {
	tests := []struct {
		method string
		want   time.Time
	}{
		{"standard", date(2024, 1, 4)},
		{"express", date(2024, 1, 3)},
		{"overnight", date(2024, 1, 2)},
	}
	for _, tc := range tests {
		t.Run(tc.method, func(t *testing.T) {
			svc, _, _ := newService()
			in := validInput("TRK1")
			in.ShippingMethod = ptr(tc.method)

			got, err := svc.Create(context.Background(), uuid.New(), in)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got.EstimatedDelivery)
		})
	}
}

func TestShipmentService_Create_RFC3339KeepsCalendarDay(t *testing.T) {
	svc, _, _ := newService()
	in := validInput("TRK1")
	in.ShippingDate = ptr("2024-01-01T23:30:00-05:00")

	got, err := svc.Create(context.Background(), uuid.New(), in)

	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 1), got.ShippingDate)
}

func TestShipmentService_Create_ReportsEveryInvalidField(t *testing.T) {
	svc, _, pub := newService()

	in := domain.ShipmentInput{
		TrackingNumber: ptr("   "),
		Status:         ptr("lost"),
		ShippingDate:   ptr("01/02/2024"),
		Distance:       ptr(-5.0),
		ShippingMethod: ptr("teleport"),
	}
	_, err := svc.Create(context.Background(), uuid.New(), in)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ElementsMatch(t,
		[]string{"trackingNumber", "description", "status", "shippingDate", "distance", "shippingMethod"},
		fieldsOf(t, err))
	assert.Empty(t, pub.types())
}

func TestShipmentService_Create_RejectsBadDistances(t *testing.T) {
	for _, d := range []float64{0, -1, math.NaN(), math.Inf(1), 1e12} {
		t.Run(fmt.Sprint(d), func(t *testing.T) {
			svc, _, _ := newService()
			in := validInput("TRK1")
			in.Distance = ptr(d)

			_, err := svc.Create(context.Background(), uuid.New(), in)

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, []string{"distance"}, fieldsOf(t, err))
		})
	}
}

func TestShipmentService_Create_TrackingNumberScopedToOwner(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	_, err := svc.Create(ctx, alice, validInput("TRK1"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, bob, validInput("TRK1"))
	require.NoError(t, err, "another owner may reuse the tracking number")

	_, err = svc.Create(ctx, alice, validInput("TRK1"))
	assert.ErrorIs(t, err, domain.ErrConflict)
	var ce *domain.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Tracking number already exists", ce.Message)
}

func TestShipmentService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockShipmentRepo{
		findByTrackingNumber: func(context.Context, uuid.UUID, string) (domain.Shipment, error) {
			return domain.Shipment{}, domain.ErrNotFound
		},
		create: func(context.Context, domain.Shipment) (domain.Shipment, error) {
			return domain.Shipment{}, repoErr
		},
	}
	svc := service.NewShipmentService(r, events.Nop{}, discardLogger())

	_, err := svc.Create(context.Background(), uuid.New(), validInput("TRK1"))

	assert.ErrorIs(t, err, repoErr)
}

func TestShipmentService_Create_PublishFailureIsNotFatal(t *testing.T) {
	r := newMemShipmentRepo()
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := service.NewShipmentService(r, pub, discardLogger())

	_, err := svc.Create(context.Background(), uuid.New(), validInput("TRK1"))

	assert.NoError(t, err)
	assert.Len(t, pub.types(), 1)
}

// ---- Get / List ------------------------------------------------------------

func TestShipmentService_RoundTrip(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()
	owner := uuid.New()
	in := validInput("TRK1")
	in.IsFragile = ptr(true)
	in.Status = ptr("in_transit")
	in.Destination = &domain.Address{Address: "5 Rue X", City: "Paris", Country: "FR"}

	created, err := svc.Create(ctx, owner, in)
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "Paris", got.Destination.City)
	assert.True(t, got.IsFragile)
	assert.Equal(t, domain.StatusInTransit, got.Status)
}

func TestShipmentService_OwnershipOpacity(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	created, err := svc.Create(ctx, alice, validInput("TRK1"))
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, bob, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Update(ctx, bob, created.ID, domain.ShipmentInput{Status: ptr("delivered")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, bob, created.ID), domain.ErrNotFound)

	items, total, err := svc.List(ctx, bob, domain.ShipmentQuery{
		Sort: domain.DefaultShipmentSort,
		Page: domain.PaginationParams{Page: 1, Limit: 8},
	})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestShipmentService_List_Pagination(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()
	owner := uuid.New()
	for i := range 17 {
		_, err := svc.Create(ctx, owner, validInput(fmt.Sprintf("TRK%02d", i)))
		require.NoError(t, err)
	}

	q := domain.ShipmentQuery{Sort: domain.DefaultShipmentSort, Page: domain.PaginationParams{Page: 3, Limit: 8}}
	items, total, err := svc.List(ctx, owner, q)

	require.NoError(t, err)
	assert.EqualValues(t, 17, total)
	assert.Equal(t, 3, q.Page.Pages(total))
	require.Len(t, items, 1)
	assert.Equal(t, "TRK00", items[0].TrackingNumber, "oldest row is last under createdAt desc")
}

func TestShipmentService_List_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockShipmentRepo{
		list: func(context.Context, uuid.UUID, domain.ShipmentQuery) ([]domain.Shipment, int64, error) {
			return nil, 0, repoErr
		},
	}
	svc := service.NewShipmentService(r, events.Nop{}, discardLogger())

	_, _, err := svc.List(context.Background(), uuid.New(), domain.ShipmentQuery{
		Sort: domain.DefaultShipmentSort,
		Page: domain.PaginationParams{Page: 1, Limit: 8},
	})

	assert.ErrorIs(t, err, repoErr)
}

func TestShipmentService_List_PageOutOfRange(t *testing.T) {
	r := &mockShipmentRepo{
		list: func(context.Context, uuid.UUID, domain.ShipmentQuery) ([]domain.Shipment, int64, error) {
			t.Fatal("repo must not be called")
			return nil, 0, nil
		},
	}
	svc := service.NewShipmentService(r, events.Nop{}, discardLogger())

	tests := []struct {
		name string
		page domain.PaginationParams
	}{
		{"page overflows offset", domain.PaginationParams{Page: math.MaxInt64, Limit: 8}},
		{"zero page", domain.PaginationParams{Page: 0, Limit: 8}},
		{"limit too large", domain.PaginationParams{Page: 1, Limit: 1000}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.List(context.Background(), uuid.New(), domain.ShipmentQuery{
				Sort: domain.DefaultShipmentSort,
				Page: tc.page,
			})
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

// ---- Update ----------------------------------------------------------------

func TestShipmentService_Update_StatusOnlyKeepsEstimate(t *testing.T) {
	svc, _, pub := newService()
	ctx := context.Background()
	owner := uuid.New()
	created, err := svc.Create(ctx, owner, validInput("TRK1"))
	require.NoError(t, err)

	got, err := svc.Update(ctx, owner, created.ID, domain.ShipmentInput{Status: ptr("delivered")})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, got.Status)
	assert.Equal(t, created.EstimatedDelivery, got.EstimatedDelivery)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, []string{events.ShipmentCreated, events.ShipmentUpdated}, pub.types())
}

func TestShipmentService_Update_RecomputesEstimate(t *testing.T) {
	tests := []struct {
		name string
		in   domain.ShipmentInput
		want time.Time
	}{
		{"method", domain.ShipmentInput{ShippingMethod: ptr("express")}, date(2024, 1, 3)},
		{"distance", domain.ShipmentInput{Distance: ptr(2600.0)}, date(2024, 1, 7)},
		{"date", domain.ShipmentInput{ShippingDate: ptr("2024-02-28")}, date(2024, 3, 2)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _ := newService()
			ctx := context.Background()
			owner := uuid.New()
			created, err := svc.Create(ctx, owner, validInput("TRK1"))
			require.NoError(t, err)

			got, err := svc.Update(ctx, owner, created.ID, tc.in)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got.EstimatedDelivery)
		})
	}
}

func TestShipmentService_Update_Validation(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()
	owner := uuid.New()
	created, err := svc.Create(ctx, owner, validInput("TRK1"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, owner, created.ID, domain.ShipmentInput{
		Description: ptr(" "),
		Distance:    ptr(0.0),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ElementsMatch(t, []string{"description", "distance"}, fieldsOf(t, err))

	unchanged, err := svc.GetByID(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, unchanged)
}

func TestShipmentService_Update_TrackingNumber(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()
	owner := uuid.New()
	first, err := svc.Create(ctx, owner, validInput("TRK1"))
	require.NoError(t, err)
	second, err := svc.Create(ctx, owner, validInput("TRK2"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, owner, second.ID, domain.ShipmentInput{TrackingNumber: ptr("TRK1")})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Resubmitting the current tracking number is not a conflict.
	_, err = svc.Update(ctx, owner, first.ID, domain.ShipmentInput{TrackingNumber: ptr("TRK1")})
	assert.NoError(t, err)

	got, err := svc.Update(ctx, owner, second.ID, domain.ShipmentInput{TrackingNumber: ptr("TRK3")})
	require.NoError(t, err)
	assert.Equal(t, "TRK3", got.TrackingNumber)
}

// ---- Delete ----------------------------------------------------------------

func TestShipmentService_Delete(t *testing.T) {
	svc, _, pub := newService()
	ctx := context.Background()
	owner := uuid.New()
	created, err := svc.Create(ctx, owner, validInput("TRK1"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner, created.ID))

	_, err = svc.GetByID(ctx, owner, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, owner, created.ID), domain.ErrNotFound)
	assert.Equal(t, []string{events.ShipmentCreated, events.ShipmentDeleted}, pub.types())
}
