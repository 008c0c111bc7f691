package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. PasswordHash and PasswordSalt hold the
// argon2id credential and are never serialised.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        *string   `json:"email,omitempty"`
	PasswordHash []byte    `json:"-"`
	PasswordSalt []byte    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is the result of a successful register or login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      User
}
