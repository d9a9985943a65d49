package auth

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrAuthRequired means no bearer credential was supplied at all.
	ErrAuthRequired = errors.New("authentication required")
	// ErrUnauthorized means a credential was supplied but did not verify.
	ErrUnauthorized = errors.New("invalid token or not authorized")
)

// Guard resolves a request into an owner identity. It is not route
// middleware: every admin handler calls Authenticate explicitly before
// touching storage.
type Guard struct {
	tokens *TokenService
}

func NewGuard(tokens *TokenService) *Guard {
	return &Guard{tokens: tokens}
}

func (g *Guard) Authenticate(r *http.Request) (Identity, error) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return Identity{}, ErrAuthRequired
	}

	identity, err := g.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return Identity{}, ErrUnauthorized
	}

	return identity, nil
}
