package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pkordes/shiptrack/internal/domain"
)

// UserRepo defines the persistence operations for Users.
type UserRepo interface {
	// Create inserts a new user and returns it with the DB-generated id and created_at.
	// Returns domain.ErrConflict when the username or email is taken.
	Create(ctx context.Context, u domain.User) (domain.User, error)

	// GetByID loads a user by id. Returns domain.ErrNotFound if absent, which
	// is how a token outliving its user is detected.
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)

	// GetByLogin loads a user whose username or email equals login, preferring
	// a username match. Returns domain.ErrNotFound if absent.
	GetByLogin(ctx context.Context, login string) (domain.User, error)
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

// Create inserts a new user row.
func (r *pgUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	const q = `
INSERT INTO users (username, email, password_hash, password_salt)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

	err := r.db.QueryRow(ctx, q, u.Username, u.Email, u.PasswordHash, u.PasswordSalt).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			msg := "User already exists"
			if constraint == "users_email_key" {
				msg = "Email already in use"
			}
			return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", &domain.ConflictError{Message: msg})
		}
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return u, nil
}

// GetByID selects a user by id.
func (r *pgUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	const q = `
SELECT id, username, email, password_hash, password_salt, created_at
FROM users WHERE id = $1`

	u, err := scanUser(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByID: %w", err)
	}
	return u, nil
}

// GetByLogin selects a user by username or email.
func (r *pgUserRepo) GetByLogin(ctx context.Context, login string) (domain.User, error) {
	const q = `
SELECT id, username, email, password_hash, password_salt, created_at
FROM users WHERE username = $1 OR email = $1
ORDER BY (username = $1) DESC
LIMIT 1`

	u, err := scanUser(r.db.QueryRow(ctx, q, login))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByLogin: %w", err)
	}
	return u, nil
}

func scanUser(s scanner) (domain.User, error) {
	var u domain.User
	err := s.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.PasswordSalt, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}
