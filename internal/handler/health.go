package handler

import (
	"bytes"
	"context"
	"time"

	"github.com/pkordes/shiptrack/internal/handler/gen"
	"github.com/pkordes/shiptrack/spec"
)

// healthPingTimeout bounds the database check so /health always answers.
const healthPingTimeout = 2 * time.Second

// GetHealth handles GET /health.
// It always returns 200; the database field reports whether Postgres answered a ping.
func (s *Server) GetHealth(ctx context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	db := "disconnected"
	if s.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
		defer cancel()
		if err := s.db.Ping(pingCtx); err == nil {
			db = "connected"
		} else {
			s.log.WarnContext(ctx, "health: database ping failed", "error", err)
		}
	}

	return gen.GetHealth200JSONResponse{
		Status:    statusSuccess,
		Message:   "Server is running",
		Database:  db,
		Timestamp: s.now().UTC(),
	}, nil
}

// GetOpenAPI handles GET /openapi.yaml.
func (s *Server) GetOpenAPI(_ context.Context, _ gen.GetOpenAPIRequestObject) (gen.GetOpenAPIResponseObject, error) {
	return gen.GetOpenAPI200ApplicationyamlResponse{
		Body:          bytes.NewReader(spec.OpenAPI),
		ContentLength: int64(len(spec.OpenAPI)),
	}, nil
}
