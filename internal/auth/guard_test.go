package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_Authenticate(t *testing.T) {
	t.Parallel()

	tokens := NewTokenService("super-secret", time.Hour)
	guard := NewGuard(tokens)

	userID := uuid.New()
	valid, err := tokens.Issue(userID, "admin@example.com")
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/admin/auth/me", nil)

		_, err := guard.Authenticate(r)
		assert.ErrorIs(t, err, ErrAuthRequired)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/admin/auth/me", nil)
		r.Header.Set("Authorization", "Basic "+valid)

		_, err := guard.Authenticate(r)
		assert.ErrorIs(t, err, ErrAuthRequired)
	})

	t.Run("invalid token", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/admin/auth/me", nil)
		r.Header.Set("Authorization", "Bearer not-a-token")

		_, err := guard.Authenticate(r)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("valid token", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/admin/auth/me", nil)
		r.Header.Set("Authorization", "Bearer "+valid)

		identity, err := guard.Authenticate(r)
		require.NoError(t, err)
		assert.Equal(t, userID, identity.UserID)
		assert.Equal(t, "admin@example.com", identity.Email)
	})
}
