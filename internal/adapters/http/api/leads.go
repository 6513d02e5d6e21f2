// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/prospect/internal/domain/model"
)

// LeadDependencies defines the interface for lead read operations.
type LeadDependencies interface {
	TopN(ctx context.Context, n int) ([]model.Lead, error)
	Lead(ctx context.Context, leadID string) (model.Lead, error)
}

// LeadsHandler handles lead list and lookup requests.
type LeadsHandler struct {
	deps     LeadDependencies
	maxLimit int
}

// NewLeadsHandler creates a new leads handler.
func NewLeadsHandler(deps LeadDependencies, maxLimit int) *LeadsHandler {
	return &LeadsHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleGetLeads handles GET /leads?limit=N requests.
func (h *LeadsHandler) HandleGetLeads(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_leads"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	limitStr := r.URL.Query().Get("limit")
	n, err := strconv.Atoi(limitStr)
	if err != nil || n < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	if n > h.maxLimit {
		writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
		return
	}
	leads, err := h.deps.TopN(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

// HandleGetLead handles GET /leads/{lead_id} requests.
func (h *LeadsHandler) HandleGetLead(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_lead"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /leads/
	path := strings.TrimPrefix(r.URL.Path, "/leads/")
	if path == "" || strings.Contains(path, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	lead, err := h.deps.Lead(r.Context(), path)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, lead)
}
