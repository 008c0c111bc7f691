package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/shiptrack/internal/auth"
	"github.com/pkordes/shiptrack/internal/domain"
	"github.com/pkordes/shiptrack/internal/handler/gen"
	"github.com/pkordes/shiptrack/internal/middleware"
	"github.com/pkordes/shiptrack/internal/service"
)

// Envelope statuses: fail for 4xx, error for 5xx.
const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

const (
	msgShipmentNotFound = "Shipment not found"
	msgRateLimited      = "Too many failed login attempts. Please try again later."
	msgInvalidQuery     = "Invalid query parameters"
	msgServerError      = "Something went wrong!"
)

// failBody returns a Fail envelope. errs, when given, lists one message per
// rejected field or parameter.
func failBody(message string, errs ...string) gen.Fail {
	f := gen.Fail{Status: statusFail, Message: message}
	if len(errs) > 0 {
		f.Errors = &errs
	}
	return f
}

// badRequestBody reports whether err is a client input failure and, if so,
// returns the 400 body describing it.
func badRequestBody(err error) (gen.Fail, bool) {
	var (
		valErr   *domain.ValidationError
		conflict *domain.ConflictError
	)
	switch {
	case errors.As(err, &valErr):
		return failBody("Validation failed", valErr.Messages()...), true
	case errors.As(err, &conflict):
		return failBody(conflict.Message), true
	case errors.Is(err, domain.ErrConflict):
		return failBody("Resource already exists"), true
	}
	return gen.Fail{}, false
}

func unauthorizedMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Incorrect username or password"
	case errors.Is(err, service.ErrUserGone):
		return "The user belonging to this token no longer exists."
	case errors.Is(err, auth.ErrTokenExpired):
		return "Token expired. Please log in again."
	case errors.Is(err, auth.ErrTokenInvalid):
		return "Invalid token. Please log in again."
	}
	return "You are not logged in! Please log in to get access."
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError answers outside a typed strict response: from middleware, from
// parameter binding, and for errors a handler method returned unmapped.
// Unrecognised errors become a 500 whose cause is logged, never returned.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		middleware.WriteBodyTooLarge(w)
		return
	}
	if body, ok := badRequestBody(err); ok {
		writeJSON(w, http.StatusBadRequest, body)
		return
	}
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, failBody(unauthorizedMessage(err)))
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, failBody(msgShipmentNotFound))
	case errors.Is(err, domain.ErrRateLimited):
		writeJSON(w, http.StatusTooManyRequests, failBody(msgRateLimited))
	default:
		s.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimiddleware.GetReqID(r.Context()),
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, gen.Fail{Status: statusError, Message: msgServerError})
	}
}

// handleRequestError answers a request body the strict handler could not decode.
func (s *Server) handleRequestError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		middleware.WriteBodyTooLarge(w)
	case errors.Is(err, io.EOF):
		writeJSON(w, http.StatusBadRequest, failBody("Request body is required"))
	default:
		cause := errors.Unwrap(err)
		if cause == nil {
			cause = err
		}
		writeJSON(w, http.StatusBadRequest, failBody(fmt.Sprintf("Malformed JSON body: %v", cause)))
	}
}

// handleResponseError answers an error a handler method returned instead of
// a typed response.
func (s *Server) handleResponseError(w http.ResponseWriter, r *http.Request, err error) {
	s.writeError(w, r, err)
}

// handleParamError answers a path or query parameter that failed to bind.
// Binding runs before requireAuth, so the caller is authenticated here
// first. A malformed shipment id reads as not found, like any id the caller
// does not own.
func (s *Server) handleParamError(w http.ResponseWriter, r *http.Request, err error) {
	if _, authErr := s.authenticate(r); authErr != nil {
		s.writeError(w, r, authErr)
		return
	}

	name := paramName(err)
	if name == "id" {
		writeJSON(w, http.StatusNotFound, failBody(msgShipmentNotFound))
		return
	}
	writeJSON(w, http.StatusBadRequest, failBody(msgInvalidQuery, fmt.Sprintf("Invalid query parameter %q", name)))
}

func paramName(err error) string {
	var (
		invalid  *gen.InvalidParamFormatError
		required *gen.RequiredParamError
		tooMany  *gen.TooManyValuesForParamError
	)
	switch {
	case errors.As(err, &invalid):
		return invalid.ParamName
	case errors.As(err, &required):
		return required.ParamName
	case errors.As(err, &tooMany):
		return tooMany.ParamName
	}
	return "unknown"
}

// routeNotFound answers any method and path no route matches.
func (s *Server) routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, failBody(fmt.Sprintf("Can't find %s %s on this server!", r.Method, r.URL.RequestURI())))
}
