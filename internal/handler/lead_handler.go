package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jjrsoftware/backend/internal/model"
	"github.com/jjrsoftware/backend/internal/service"
)

// LeadHandler serves contact-form lead submissions.
type LeadHandler struct {
	leadService service.LeadService
}

// NewLeadHandler creates a LeadHandler with the given service.
func NewLeadHandler(leadService service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// Submit handles POST /api/leads. Validation failures are a 400 with the
// reason; sink failures are a 502 the client presents as a dismissable
// "try again" notice. No retries happen server-side.
func (h *LeadHandler) Submit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var lead model.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	err := h.leadService.Submit(r.Context(), &lead)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
	case errors.Is(err, service.ErrValidation):
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_input", "message": err.Error()})
	default:
		slog.Error("lead submit failed", "error", err, "page", lead.Page)
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "submit_failed", "message": err.Error()})
	}
}
