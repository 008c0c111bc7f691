package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/shiptrack/internal/domain"
)

func TestTokenManager_roundTrip(t *testing.T) {
	m := NewTokenManager([]byte("secret"), time.Hour)
	id := uuid.New()

	token, exp, err := m.Issue(id)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	got, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestTokenManager_Verify_expired(t *testing.T) {
	m := NewTokenManager([]byte("secret"), time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := m.Issue(uuid.New())
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(token)

	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenManager_Verify_invalid(t *testing.T) {
	m := NewTokenManager([]byte("secret"), time.Hour)
	other := NewTokenManager([]byte("other-secret"), time.Hour)
	foreign, _, err := other.Issue(uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"wrong secret", foreign},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.Verify(tc.token)
			assert.ErrorIs(t, err, ErrTokenInvalid)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestUserIDContext(t *testing.T) {
	_, ok := UserIDFromContext(t.Context())
	assert.False(t, ok)

	want := uuid.New()
	got, ok := UserIDFromContext(WithUserID(t.Context(), want))
	assert.True(t, ok)
	assert.Equal(t, want, got)
}
