package handler

import (
	"net/http"

	"github.com/family-safety-api/internal/application/incident"
	"github.com/family-safety-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
)

// IncidentHandler handles the guardian incident review endpoints.
type IncidentHandler struct {
	svc incident.Service
}

func NewIncidentHandler(svc incident.Service) *IncidentHandler {
	return &IncidentHandler{svc: svc}
}

// List returns the calling guardian's family incidents, newest first.
func (h *IncidentHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	incidents, err := h.svc.ListByFamily(r.Context(), claims.FamilyID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, incidents)
}

// MarkReviewed flags an incident as reviewed by a guardian.
func (h *IncidentHandler) MarkReviewed(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	inc, err := h.svc.MarkReviewed(r.Context(), chi.URLParam(r, "id"), claims.FamilyID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inc)
}
