package handler

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/pkordes/shiptrack/internal/auth"
	"github.com/pkordes/shiptrack/internal/domain"
	"github.com/pkordes/shiptrack/internal/handler/gen"
	"github.com/pkordes/shiptrack/internal/service"
)

func sessionBody(sess domain.Session) gen.Session {
	return gen.Session{
		Status: statusSuccess,
		Token:  sess.Token,
		Data: gen.SessionData{
			User: gen.User{
				Id:       sess.User.ID,
				Username: sess.User.Username,
				Email:    sess.User.Email,
			},
			ExpiresAt: sess.ExpiresAt.UTC(),
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Register handles POST /auth/register.
func (s *Server) Register(ctx context.Context, req gen.RegisterRequestObject) (gen.RegisterResponseObject, error) {
	sess, err := s.auth.Register(ctx, service.RegisterInput{
		Username: deref(req.Body.Username),
		Email:    req.Body.Email,
		Password: deref(req.Body.Password),
	})
	if err != nil {
		if body, ok := badRequestBody(err); ok {
			return gen.Register400JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.Register201JSONResponse(sessionBody(sess)), nil
}

// Login handles POST /auth/login. The login may arrive under "username"
// (a username or an email) or under "email".
func (s *Server) Login(ctx context.Context, req gen.LoginRequestObject) (gen.LoginResponseObject, error) {
	login := deref(req.Body.Username)
	if strings.TrimSpace(login) == "" {
		login = deref(req.Body.Email)
	}

	sess, err := s.auth.Login(ctx, service.LoginInput{
		Login:    login,
		Password: deref(req.Body.Password),
		IP:       clientIPFrom(ctx),
	})
	if err != nil {
		if body, ok := badRequestBody(err); ok {
			return gen.Login400JSONResponse(body), nil
		}
		switch {
		case errors.Is(err, domain.ErrRateLimited):
			return gen.Login429JSONResponse(failBody(msgRateLimited)), nil
		case errors.Is(err, domain.ErrUnauthorized):
			return gen.Login401JSONResponse(failBody(unauthorizedMessage(err))), nil
		}
		return nil, err
	}
	return gen.Login200JSONResponse(sessionBody(sess)), nil
}

// requireAuth guards every operation the generated router marked with
// bearerAuth. It resolves the token to a live user and stores the user id in
// the request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Context().Value(gen.BearerAuthScopes) == nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := s.authenticate(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), user.ID)))
	})
}

func (s *Server) authenticate(r *http.Request) (domain.User, error) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return domain.User{}, domain.ErrUnauthorized
	}
	return s.auth.Authenticate(r.Context(), token)
}

type clientIPKey struct{}

// withClientIP carries the caller's address into the strict handler methods,
// which see only a context. The login limiter keys on it.
func withClientIP(f gen.StrictHandlerFunc, _ string) gen.StrictHandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, req any) (any, error) {
		return f(context.WithValue(ctx, clientIPKey{}, clientIP(r)), w, r, req)
	}
}

func clientIPFrom(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// clientIP strips the port from RemoteAddr, which chi's RealIP middleware
// has already replaced with the forwarded address when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
