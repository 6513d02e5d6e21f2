// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/prospect/internal/domain/model"
)

// CompanyDependencies defines the interface for company read operations.
type CompanyDependencies interface {
	Companies(ctx context.Context, n int) ([]model.Company, error)
}

// CompaniesHandler handles scored-company list requests.
type CompaniesHandler struct {
	deps     CompanyDependencies
	maxLimit int
}

// NewCompaniesHandler creates a new companies handler.
func NewCompaniesHandler(deps CompanyDependencies, maxLimit int) *CompaniesHandler {
	return &CompaniesHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleGetCompanies handles GET /companies?limit=N requests.
func (h *CompaniesHandler) HandleGetCompanies(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_companies"
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
	companies, err := h.deps.Companies(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, companies)
}
