// Package handler implements the HTTP handlers for the shipment tracker API.
// Server implements gen.StrictServerInterface, generated from
// spec/openapi.yaml. Methods are split into domain-specific files
// (health.go, auth.go, shipment.go) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/shiptrack/internal/domain"
	"github.com/pkordes/shiptrack/internal/handler/gen"
	"github.com/pkordes/shiptrack/internal/service"
)

// ShipmentServicer defines the business operations the shipment handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type ShipmentServicer interface {
	Create(ctx context.Context, ownerID uuid.UUID, in domain.ShipmentInput) (domain.Shipment, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (domain.Shipment, error)
	List(ctx context.Context, ownerID uuid.UUID, q domain.ShipmentQuery) ([]domain.Shipment, int64, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, in domain.ShipmentInput) (domain.Shipment, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// AuthServicer defines registration, login and bearer token resolution.
type AuthServicer interface {
	Register(ctx context.Context, in service.RegisterInput) (domain.Session, error)
	Login(ctx context.Context, in service.LoginInput) (domain.Session, error)
	Authenticate(ctx context.Context, token string) (domain.User, error)
}

// Pinger reports database reachability. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators a Server needs.
type Deps struct {
	Shipments       ShipmentServicer
	Auth            AuthServicer
	DB              Pinger
	Logger          *slog.Logger
	DefaultPageSize int
}

// Server implements gen.StrictServerInterface.
type Server struct {
	shipments       ShipmentServicer
	auth            AuthServicer
	db              Pinger
	log             *slog.Logger
	defaultPageSize int
	now             func() time.Time
}

// compile-time check: Server must satisfy the generated strict interface.
var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
func NewServer(d Deps) *Server {
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		shipments:       d.Shipments,
		auth:            d.Auth,
		db:              d.DB,
		log:             log,
		defaultPageSize: d.DefaultPageSize,
		now:             time.Now,
	}
}

// Routes registers every endpoint on r. Cross-cutting middleware (request
// id, logging, CORS, body limits) is the caller's to install first.
func (s *Server) Routes(r chi.Router) {
	strict := gen.NewStrictHandlerWithOptions(s,
		[]gen.StrictMiddlewareFunc{withClientIP},
		gen.StrictHTTPServerOptions{
			RequestErrorHandlerFunc:  s.handleRequestError,
			ResponseErrorHandlerFunc: s.handleResponseError,
		},
	)
	gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []gen.MiddlewareFunc{s.requireAuth},
		ErrorHandlerFunc: s.handleParamError,
	})

	r.NotFound(s.routeNotFound)
	r.MethodNotAllowed(s.routeNotFound)
}
