package service_test

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/shiptrack/internal/domain"
	"github.com/pkordes/shiptrack/internal/events"
	"github.com/pkordes/shiptrack/internal/repo"
)

// mockShipmentRepo is a hand-written test double for repo.ShipmentRepo.
// Each method is a function field; set only the ones your test needs.
type mockShipmentRepo struct {
	create               func(ctx context.Context, s domain.Shipment) (domain.Shipment, error)
	getByID              func(ctx context.Context, ownerID, id uuid.UUID) (domain.Shipment, error)
	findByTrackingNumber func(ctx context.Context, ownerID uuid.UUID, tn string) (domain.Shipment, error)
	list                 func(ctx context.Context, ownerID uuid.UUID, q domain.ShipmentQuery) ([]domain.Shipment, int64, error)
	update               func(ctx context.Context, s domain.Shipment) (domain.Shipment, error)
	delete               func(ctx context.Context, ownerID, id uuid.UUID) error
}

func (m *mockShipmentRepo) Create(ctx context.Context, s domain.Shipment) (domain.Shipment, error) {
	return m.create(ctx, s)
}
func (m *mockShipmentRepo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (domain.Shipment, error) {
	return m.getByID(ctx, ownerID, id)
}
func (m *mockShipmentRepo) FindByTrackingNumber(ctx context.Context, ownerID uuid.UUID, tn string) (domain.Shipment, error) {
	return m.findByTrackingNumber(ctx, ownerID, tn)
}
func (m *mockShipmentRepo) List(ctx context.Context, ownerID uuid.UUID, q domain.ShipmentQuery) ([]domain.Shipment, int64, error) {
	return m.list(ctx, ownerID, q)
}
func (m *mockShipmentRepo) Update(ctx context.Context, s domain.Shipment) (domain.Shipment, error) {
	return m.update(ctx, s)
}
func (m *mockShipmentRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.delete(ctx, ownerID, id)
}

// compile-time check: mockShipmentRepo must satisfy repo.ShipmentRepo.
var _ repo.ShipmentRepo = (*mockShipmentRepo)(nil)

// memShipmentRepo is an in-memory repo.ShipmentRepo with the same owner
// scoping and uniqueness rules as the Postgres one. It lets the service
// tests exercise multi-call behaviour without a database.
type memShipmentRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]domain.Shipment
}

func newMemShipmentRepo() *memShipmentRepo {
	return &memShipmentRepo{rows: map[uuid.UUID]domain.Shipment{}}
}

var _ repo.ShipmentRepo = (*memShipmentRepo)(nil)

func (m *memShipmentRepo) conflicts(s domain.Shipment) bool {
	for _, r := range m.rows {
		if r.OwnerID == s.OwnerID && r.TrackingNumber == s.TrackingNumber && r.ID != s.ID {
			return true
		}
	}
	return false
}

func (m *memShipmentRepo) Create(_ context.Context, s domain.Shipment) (domain.Shipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conflicts(s) {
		return domain.Shipment{}, &domain.ConflictError{Message: "Tracking number already exists"}
	}
	s.ID = uuid.New()
	// Distinct, increasing timestamps keep createdAt ordering deterministic.
	s.CreatedAt = time.Date(2024, 1, 1, 0, 0, len(m.rows), 0, time.UTC)
	s.UpdatedAt = s.CreatedAt
	m.rows[s.ID] = s
	return s, nil
}

func (m *memShipmentRepo) GetByID(_ context.Context, ownerID, id uuid.UUID) (domain.Shipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok || s.OwnerID != ownerID {
		return domain.Shipment{}, domain.ErrNotFound
	}
	return s, nil
}

func (m *memShipmentRepo) FindByTrackingNumber(_ context.Context, ownerID uuid.UUID, tn string) (domain.Shipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.rows {
		if s.OwnerID == ownerID && s.TrackingNumber == tn {
			return s, nil
		}
	}
	return domain.Shipment{}, domain.ErrNotFound
}

func (m *memShipmentRepo) List(_ context.Context, ownerID uuid.UUID, q domain.ShipmentQuery) ([]domain.Shipment, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var matched []domain.Shipment
	for _, s := range m.rows {
		if s.OwnerID != ownerID {
			continue
		}
		if q.Filter.Status != nil && s.Status != *q.Filter.Status {
			continue
		}
		if q.Filter.IsFragile != nil && s.IsFragile != *q.Filter.IsFragile {
			continue
		}
		matched = append(matched, s)
	}
	// Only createdAt ordering is needed by the service tests.
	slices.SortFunc(matched, func(a, b domain.Shipment) int {
		c := a.CreatedAt.Compare(b.CreatedAt)
		if c == 0 {
			c = cmp.Compare(a.ID.String(), b.ID.String())
		}
		if q.Sort.Desc {
			return -c
		}
		return c
	})

	total := int64(len(matched))
	start := min(max(q.Page.Offset(), 0), len(matched))
	end := min(start+q.Page.Limit, len(matched))
	return append([]domain.Shipment{}, matched[start:end]...), total, nil
}

func (m *memShipmentRepo) Update(_ context.Context, s domain.Shipment) (domain.Shipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[s.ID]
	if !ok || cur.OwnerID != s.OwnerID {
		return domain.Shipment{}, domain.ErrNotFound
	}
	if m.conflicts(s) {
		return domain.Shipment{}, &domain.ConflictError{Message: "Tracking number already exists"}
	}
	s.CreatedAt = cur.CreatedAt
	s.UpdatedAt = cur.UpdatedAt.Add(time.Second)
	m.rows[s.ID] = s
	return s, nil
}

func (m *memShipmentRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok || s.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.ShipmentEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.ShipmentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func ptr[T any](v T) *T { return &v }
