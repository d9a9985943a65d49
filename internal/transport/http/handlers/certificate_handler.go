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

// CertificateHandler serves the "achievements" routes: authenticated CRUD
// for the owner plus the public ordered list.
type CertificateHandler struct {
	certificateService *service.CertificateService
	guard              *auth.Guard
}

func NewCertificateHandler(certificateService *service.CertificateService, guard *auth.Guard) *CertificateHandler {
	return &CertificateHandler{certificateService: certificateService, guard: guard}
}

func (h *CertificateHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := authenticate(w, r, h.guard)
	if !ok {
		return
	}

	var input service.CreateCertificateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateCertificate(input.Title, input.Date); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	id, err := h.certificateService.Create(r.Context(), identity.UserID, input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			writeError(w, http.StatusBadRequest, "INVALID_DATE", "Date must be formatted as YYYY-MM-DD")
		} else {
			slog.Error("create certificate", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (h *CertificateHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := authenticate(w, r, h.guard)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid certificate ID")
		return
	}

	c, err := h.certificateService.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		if errors.Is(err, service.ErrCertificateNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Certificate not found")
		} else {
			slog.Error("get certificate", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (h *CertificateHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := authenticate(w, r, h.guard)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid certificate ID")
		return
	}

	var input service.UpdateCertificateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.certificateService.Update(r.Context(), identity.UserID, id, input); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyUpdate):
			writeError(w, http.StatusBadRequest, "EMPTY_UPDATE", "At least one field is required for update")
		case errors.Is(err, service.ErrInvalidDate):
			writeError(w, http.StatusBadRequest, "INVALID_DATE", "Date must be formatted as YYYY-MM-DD")
		case errors.Is(err, service.ErrCertificateNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Certificate not found")
		default:
			slog.Error("update certificate", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *CertificateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := authenticate(w, r, h.guard)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid certificate ID")
		return
	}

	if err := h.certificateService.Delete(r.Context(), identity.UserID, id); err != nil {
		if errors.Is(err, service.ErrCertificateNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Certificate not found")
		} else {
			slog.Error("delete certificate", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *CertificateHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	certificates, err := h.certificateService.ListPublic(r.Context())
	if err != nil {
		slog.Error("list certificates", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if certificates == nil {
		certificates = []domain.Certificate{}
	}

	writeJSON(w, http.StatusOK, certificates)
}
