package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/shiptrack/internal/auth"
	"github.com/pkordes/shiptrack/internal/domain"
	"github.com/pkordes/shiptrack/internal/limiter"
	"github.com/pkordes/shiptrack/internal/repo"
)

// MinPasswordLen is the shortest password Register accepts.
const MinPasswordLen = 6

// ErrInvalidCredentials is returned by Login for an unknown user or a wrong
// password; the two cases are never distinguished.
var ErrInvalidCredentials = fmt.Errorf("incorrect username or password: %w", domain.ErrUnauthorized)

// ErrUserGone is returned by Authenticate for a valid token whose user has
// since been deleted.
var ErrUserGone = fmt.Errorf("token user no longer exists: %w", domain.ErrUnauthorized)

// SessionTokens mints session tokens for a user id and resolves them back.
// *auth.TokenManager satisfies it.
type SessionTokens interface {
	Issue(userID uuid.UUID) (token string, expiresAt time.Time, err error)
	Verify(token string) (uuid.UUID, error)
}

// RegisterInput is the payload of a registration.
type RegisterInput struct {
	Username string
	Email    *string
	Password string
}

// LoginInput is the payload of a login. Login is a username or an email.
type LoginInput struct {
	Login    string
	Password string
	IP       string
}

// AuthService registers users and issues sessions.
type AuthService struct {
	users  repo.UserRepo
	tokens SessionTokens
	lim    limiter.Limiter
	log    *slog.Logger

	// dummySalt/dummyHash let Login spend the same hashing time for
	// unknown users as for wrong passwords.
	dummySalt []byte
	dummyHash []byte
}

// NewAuthService constructs an AuthService with required dependencies.
func NewAuthService(users repo.UserRepo, tokens SessionTokens, lim limiter.Limiter, log *slog.Logger) *AuthService {
	salt := []byte("shiptrack-dummy!")
	return &AuthService{
		users:     users,
		tokens:    tokens,
		lim:       lim,
		log:       log,
		dummySalt: salt,
		dummyHash: auth.HashPassword([]byte("dummy-password"), salt),
	}
}

// Register creates a user with an argon2id credential and a fresh session.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.Session, error) {
	v := &domain.ValidationError{}
	username := strings.TrimSpace(in.Username)
	if username == "" {
		v.Add("username", "Username is required")
	}
	if in.Password == "" {
		v.Add("password", "Password is required")
	} else if len([]rune(in.Password)) < MinPasswordLen {
		v.Add("password", fmt.Sprintf("Password must be at least %d characters", MinPasswordLen))
	}
	var email *string
	if in.Email != nil {
		if e := strings.TrimSpace(*in.Email); e != "" {
			if !strings.Contains(e, "@") {
				v.Add("email", "Email must be a valid address")
			}
			email = &e
		}
	}
	if err := v.Err(); err != nil {
		return domain.Session{}, err
	}

	salt, err := auth.RandBytes(auth.SaltLen)
	if err != nil {
		return domain.Session{}, fmt.Errorf("service.AuthService.Register: salt: %w", err)
	}
	user, err := s.users.Create(ctx, domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: auth.HashPassword([]byte(in.Password), salt),
		PasswordSalt: salt,
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("service.AuthService.Register: %w", err)
	}

	return s.session(user)
}

// Login authenticates by username or email, rate limited per (login, ip).
func (s *AuthService) Login(ctx context.Context, in LoginInput) (domain.Session, error) {
	v := &domain.ValidationError{}
	login := strings.TrimSpace(in.Login)
	if login == "" {
		v.Add("username", "Username is required")
	}
	if in.Password == "" {
		v.Add("password", "Password is required")
	}
	if err := v.Err(); err != nil {
		return domain.Session{}, err
	}

	ipHash := limiter.HashIP(in.IP)
	allowed, retry, err := s.lim.Allow(ctx, login, ipHash)
	switch {
	case err != nil:
		// Limiter errors fail open.
		s.log.WarnContext(ctx, "login limiter unavailable", "error", err)
	case !allowed:
		return domain.Session{}, fmt.Errorf("service.AuthService.Login: retry in %s: %w", retry.Round(time.Second), domain.ErrRateLimited)
	}

	user, err := s.users.GetByLogin(ctx, login)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.Session{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}

	var ok bool
	if err == nil {
		ok = auth.VerifyPassword([]byte(in.Password), user.PasswordSalt, user.PasswordHash)
	} else {
		auth.VerifyPassword([]byte(in.Password), s.dummySalt, s.dummyHash)
	}
	if !ok {
		blocked, _, ferr := s.lim.Failure(ctx, login, ipHash)
		if ferr != nil {
			s.log.WarnContext(ctx, "login limiter failure not recorded", "error", ferr)
		}
		if blocked {
			return domain.Session{}, fmt.Errorf("service.AuthService.Login: %w", domain.ErrRateLimited)
		}
		return domain.Session{}, ErrInvalidCredentials
	}

	if err := s.lim.Success(ctx, login, ipHash); err != nil {
		s.log.WarnContext(ctx, "login limiter reset failed", "error", err)
	}
	return s.session(user)
}

// Authenticate resolves a bearer token to its user. Token failures and
// deleted users both match domain.ErrUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	id, err := s.tokens.Verify(token)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Authenticate: %w", err)
	}

	user, err := s.users.GetByID(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return domain.User{}, ErrUserGone
	case err != nil:
		return domain.User{}, fmt.Errorf("service.AuthService.Authenticate: %w", err)
	}
	return user, nil
}

func (s *AuthService) session(u domain.User) (domain.Session, error) {
	token, exp, err := s.tokens.Issue(u.ID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("service.AuthService: issue token: %w", err)
	}
	return domain.Session{Token: token, ExpiresAt: exp, User: u}, nil
}
