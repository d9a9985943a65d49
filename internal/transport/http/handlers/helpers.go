package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkovac/folio/internal/auth"
	"github.com/dkovac/folio/pkg/validator"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func writeValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error": map[string]any{
			"code":   "VALIDATION_ERROR",
			"fields": errs,
		},
	})
}

// authenticate resolves the request's bearer identity or writes the 401
// envelope. Admin handlers call this before anything else; the two failure
// modes stay distinguishable in the message but share the status.
func authenticate(w http.ResponseWriter, r *http.Request, guard *auth.Guard) (auth.Identity, bool) {
	identity, err := guard.Authenticate(r)
	if err != nil {
		if errors.Is(err, auth.ErrAuthRequired) {
			writeError(w, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication required")
		} else {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token or not authorized")
		}
		return auth.Identity{}, false
	}
	return identity, true
}
