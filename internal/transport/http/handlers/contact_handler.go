package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dkovac/folio/internal/service"
	"github.com/dkovac/folio/pkg/validator"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	var input service.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateContact(input.Name, input.Email, input.Message); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	if err := h.contactService.Send(r.Context(), input); err != nil {
		slog.Error("contact form", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to send message. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Message sent successfully"})
}
