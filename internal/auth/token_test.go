package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.Issue(userID, "admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "admin@example.com", identity.Email)
}

func TestTokenService_Verify_Tampered(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", time.Hour)

	token, err := svc.Issue(uuid.New(), "admin@example.com")
	require.NoError(t, err)

	// Flip a byte in the header, the payload and the signature.
	for _, pos := range []int{2, len(token) / 2, len(token) - 3} {
		tampered := []byte(token)
		if tampered[pos] == 'x' {
			tampered[pos] = 'y'
		} else {
			tampered[pos] = 'x'
		}

		_, err := svc.Verify(string(tampered))
		assert.ErrorIs(t, err, ErrInvalidToken, "tampered byte at %d", pos)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", -time.Minute)

	token, err := svc.Issue(uuid.New(), "admin@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService("right-secret", time.Hour)
	verifier := NewTokenService("wrong-secret", time.Hour)

	token, err := issuer.Issue(uuid.New(), "admin@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", time.Hour)

	for _, token := range []string{"", "not.a.jwt", "garbage"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
