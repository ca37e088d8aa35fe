package handler

import (
	"encoding/json"
	"net/http"

	"github.com/family-safety-api/internal/application/family"
	"github.com/family-safety-api/internal/domain"
	"github.com/family-safety-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
)

// FamilyHandler handles family and child-profile registration endpoints.
type FamilyHandler struct {
	svc family.Service
}

func NewFamilyHandler(svc family.Service) *FamilyHandler { return &FamilyHandler{svc: svc} }

func (h *FamilyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateFamilyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	f, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

func (h *FamilyHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	targetID := chi.URLParam(r, "id")
	if claims.Role != domain.RoleService && claims.FamilyID != targetID {
		writeError(w, http.StatusForbidden, "cannot access another family")
		return
	}
	f, err := h.svc.Get(r.Context(), targetID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *FamilyHandler) AddChild(w http.ResponseWriter, r *http.Request) {
	var req domain.AddChildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.svc.AddChild(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *FamilyHandler) ListChildren(w http.ResponseWriter, r *http.Request) {
	children, err := h.svc.ListChildren(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, children)
}
