package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dkovac/folio/internal/auth"
	"github.com/dkovac/folio/internal/service"
)

type InfoHandler struct {
	infoService *service.InfoService
	guard       *auth.Guard
}

func NewInfoHandler(infoService *service.InfoService, guard *auth.Guard) *InfoHandler {
	return &InfoHandler{infoService: infoService, guard: guard}
}

// Upsert is the singleton-profile PUT: 201 when the owner's row is created,
// 200 when it is updated in place.
func (h *InfoHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	identity, ok := authenticate(w, r, h.guard)
	if !ok {
		return
	}

	var input service.UpsertInfoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	inserted, err := h.infoService.Upsert(r.Context(), identity.UserID, input)
	if err != nil {
		if errors.Is(err, service.ErrEmptyUpdate) {
			writeError(w, http.StatusBadRequest, "EMPTY_UPDATE", "At least one field is required for update")
		} else {
			slog.Error("upsert personal info", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	status := http.StatusOK
	if inserted {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]bool{"ok": true})
}

func (h *InfoHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	info, err := h.infoService.GetPublic(r.Context())
	if err != nil {
		slog.Error("get personal info", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if info == nil {
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}

	writeJSON(w, http.StatusOK, info)
}
