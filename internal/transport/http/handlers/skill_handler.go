package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dkovac/folio/internal/auth"
	"github.com/dkovac/folio/internal/domain"
	"github.com/dkovac/folio/internal/service"
	"github.com/dkovac/folio/pkg/validator"
)

type SkillHandler struct {
	skillService *service.SkillService
	guard        *auth.Guard
}

func NewSkillHandler(skillService *service.SkillService, guard *auth.Guard) *SkillHandler {
	return &SkillHandler{skillService: skillService, guard: guard}
}

func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := authenticate(w, r, h.guard)
	if !ok {
		return
	}

	var input service.CreateSkillInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateSkill(input.SkillName); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	id, err := h.skillService.Create(r.Context(), identity.UserID, input)
	if err != nil {
		slog.Error("create skill", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (h *SkillHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := authenticate(w, r, h.guard)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid skill ID")
		return
	}

	skill, err := h.skillService.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		if errors.Is(err, service.ErrSkillNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Skill not found")
		} else {
			slog.Error("get skill", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, skill)
}

func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := authenticate(w, r, h.guard)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid skill ID")
		return
	}

	var input service.UpdateSkillInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.skillService.Update(r.Context(), identity.UserID, id, input); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyUpdate):
			writeError(w, http.StatusBadRequest, "EMPTY_UPDATE", "At least one field is required for update")
		case errors.Is(err, service.ErrSkillNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Skill not found")
		default:
			slog.Error("update skill", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := authenticate(w, r, h.guard)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid skill ID")
		return
	}

	if err := h.skillService.Delete(r.Context(), identity.UserID, id); err != nil {
		if errors.Is(err, service.ErrSkillNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Skill not found")
		} else {
			slog.Error("delete skill", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *SkillHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skillService.ListPublic(r.Context())
	if err != nil {
		slog.Error("list skills", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if skills == nil {
		skills = []domain.Skill{}
	}

	writeJSON(w, http.StatusOK, skills)
}
