package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/shiptrack/internal/auth"
	"github.com/pkordes/shiptrack/internal/domain"
	"github.com/pkordes/shiptrack/internal/handler"
	"github.com/pkordes/shiptrack/internal/service"
)

// mockShipmentServicer is a test double for handler.ShipmentServicer.
// Set only the method fields your test needs.
type mockShipmentServicer struct {
	create  func(ctx context.Context, ownerID uuid.UUID, in domain.ShipmentInput) (domain.Shipment, error)
	getByID func(ctx context.Context, ownerID, id uuid.UUID) (domain.Shipment, error)
	list    func(ctx context.Context, ownerID uuid.UUID, q domain.ShipmentQuery) ([]domain.Shipment, int64, error)
	update  func(ctx context.Context, ownerID, id uuid.UUID, in domain.ShipmentInput) (domain.Shipment, error)
	delete  func(ctx context.Context, ownerID, id uuid.UUID) error
}

func (m *mockShipmentServicer) Create(ctx context.Context, ownerID uuid.UUID, in domain.ShipmentInput) (domain.Shipment, error) {
	return m.create(ctx, ownerID, in)
}
func (m *mockShipmentServicer) GetByID(ctx context.Context, ownerID, id uuid.UUID) (domain.Shipment, error) {
	return m.getByID(ctx, ownerID, id)
}
func (m *mockShipmentServicer) List(ctx context.Context, ownerID uuid.UUID, q domain.ShipmentQuery) ([]domain.Shipment, int64, error) {
	return m.list(ctx, ownerID, q)
}
func (m *mockShipmentServicer) Update(ctx context.Context, ownerID, id uuid.UUID, in domain.ShipmentInput) (domain.Shipment, error) {
	return m.update(ctx, ownerID, id, in)
}
func (m *mockShipmentServicer) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.delete(ctx, ownerID, id)
}

// compile-time check: mockShipmentServicer must satisfy handler.ShipmentServicer.
var _ handler.ShipmentServicer = (*mockShipmentServicer)(nil)

// mockAuthServicer is a test double for handler.AuthServicer.
// A nil authenticate falls back to stubAuthenticate.
type mockAuthServicer struct {
	register     func(ctx context.Context, in service.RegisterInput) (domain.Session, error)
	login        func(ctx context.Context, in service.LoginInput) (domain.Session, error)
	authenticate func(ctx context.Context, token string) (domain.User, error)
}

func (m *mockAuthServicer) Register(ctx context.Context, in service.RegisterInput) (domain.Session, error) {
	return m.register(ctx, in)
}
func (m *mockAuthServicer) Login(ctx context.Context, in service.LoginInput) (domain.Session, error) {
	return m.login(ctx, in)
}
func (m *mockAuthServicer) Authenticate(ctx context.Context, token string) (domain.User, error) {
	if m.authenticate == nil {
		return stubAuthenticate(ctx, token)
	}
	return m.authenticate(ctx, token)
}

var _ handler.AuthServicer = (*mockAuthServicer)(nil)

// Bearer tokens understood by stubAuthenticate.
const (
	aliceToken   = "alice-token"
	expiredToken = "expired-token"
	orphanToken  = "orphan-token"
)

var aliceID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func stubAuthenticate(_ context.Context, token string) (domain.User, error) {
	switch token {
	case aliceToken:
		return domain.User{ID: aliceID, Username: "alice"}, nil
	case expiredToken:
		return domain.User{}, auth.ErrTokenExpired
	case orphanToken:
		return domain.User{}, service.ErrUserGone
	}
	return domain.User{}, auth.ErrTokenInvalid
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

// newHTTPHandler wires a Server into a chi router the way main.go does.
func newHTTPHandler(d handler.Deps) http.Handler {
	if d.Auth == nil {
		d.Auth = &mockAuthServicer{}
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.DiscardHandler)
	}
	if d.DefaultPageSize == 0 {
		d.DefaultPageSize = domain.DefaultPageSize
	}
	r := chi.NewRouter()
	handler.NewServer(d).Routes(r)
	return r
}

func shipmentsHandler(svc handler.ShipmentServicer) http.Handler {
	return newHTTPHandler(handler.Deps{Shipments: svc})
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// do sends a request as alice unless token is overridden with "".
func do(t *testing.T, h http.Handler, method, target string, body io.Reader, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors the response body for assertions.
type envelope struct {
	Status     string          `json:"status"`
	Token      string          `json:"token"`
	Results    *int            `json:"results"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		Current int   `json:"current"`
		Pages   int   `json:"pages"`
		Total   int64 `json:"total"`
	} `json:"pagination"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env), "body: %s", rec.Body.String())
	return env
}
