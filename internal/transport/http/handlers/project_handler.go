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

type ProjectHandler struct {
	projectService *service.ProjectService
	guard          *auth.Guard
}

func NewProjectHandler(projectService *service.ProjectService, guard *auth.Guard) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, guard: guard}
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := authenticate(w, r, h.guard)
	if !ok {
		return
	}

	var input service.CreateProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateProject(input.Title, input.Description, input.Technologies); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	id, err := h.projectService.Create(r.Context(), identity.UserID, input)
	if err != nil {
		if errors.Is(err, service.ErrEmptyTechnologies) {
			writeError(w, http.StatusBadRequest, "EMPTY_TECHNOLOGIES", "Technologies must contain at least one entry")
		} else {
			slog.Error("create project", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := authenticate(w, r, h.guard)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid project ID")
		return
	}

	p, err := h.projectService.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Project not found")
		} else {
			slog.Error("get project", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := authenticate(w, r, h.guard)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid project ID")
		return
	}

	var input service.UpdateProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.projectService.Update(r.Context(), identity.UserID, id, input); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyUpdate):
			writeError(w, http.StatusBadRequest, "EMPTY_UPDATE", "At least one field is required for update")
		case errors.Is(err, service.ErrEmptyTechnologies):
			writeError(w, http.StatusBadRequest, "EMPTY_TECHNOLOGIES", "Technologies must contain at least one entry")
		case errors.Is(err, service.ErrProjectNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Project not found")
		default:
			slog.Error("update project", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := authenticate(w, r, h.guard)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid project ID")
		return
	}

	if err := h.projectService.Delete(r.Context(), identity.UserID, id); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Project not found")
		} else {
			slog.Error("delete project", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *ProjectHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListPublic(r.Context())
	if err != nil {
		slog.Error("list projects", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if projects == nil {
		projects = []domain.Project{}
	}

	writeJSON(w, http.StatusOK, projects)
}
