// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/prospect/internal/adapters/repository"
	"github.com/okian/prospect/internal/domain/dedupe"
	"github.com/okian/prospect/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	dedupe.Deduper

	// Enqueue pushes a batch for async processing. Returns false on
	// backpressure.
	Enqueue(ctx context.Context, b model.Batch) bool

	// Read operations expose the served snapshot.
	TopN(ctx context.Context, n int) ([]model.Lead, error)
	Lead(ctx context.Context, leadID string) (model.Lead, error)
	Companies(ctx context.Context, n int) ([]model.Company, error)
	TierCounts(ctx context.Context) map[string]int
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	batchesHandler   *BatchesHandler
	leadsHandler     *LeadsHandler
	companiesHandler *CompaniesHandler
	tiersHandler     *TiersHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers. maxLeadsLimit
// caps the limit query parameter on list endpoints.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLeadsLimit int) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		batchesHandler:   NewBatchesHandler(deps),
		leadsHandler:     NewLeadsHandler(deps, maxLeadsLimit),
		companiesHandler: NewCompaniesHandler(deps, maxLeadsLimit),
		tiersHandler:     NewTiersHandler(deps),
		dashboardHandler: newdashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/batches", MetricsMiddleware(s.batchesHandler.HandlePostBatch, "batches"))
	mux.HandleFunc("/leads", MetricsMiddleware(s.leadsHandler.HandleGetLeads, "leads"))
	mux.HandleFunc("/leads/", MetricsMiddleware(s.leadsHandler.HandleGetLead, "lead"))
	mux.HandleFunc("/companies", MetricsMiddleware(s.companiesHandler.HandleGetCompanies, "companies"))
	mux.HandleFunc("/tiers", MetricsMiddleware(s.tiersHandler.HandleGetTiers, "tiers"))
}

// batchRequest mirrors the OpenAPI schema for POST /batches.
type batchRequest struct {
	BatchID      string               `json:"batch_id"`
	Companies    []companyRequest     `json:"companies"`
	Stakeholders []stakeholderRequest `json:"stakeholders"`
}

type companyRequest struct {
	Name          string   `json:"name"`
	Website       string   `json:"website"`
	Description   string   `json:"description"`
	Industry      string   `json:"industry"`
	CompanySize   string   `json:"company_size"`
	EmployeeCount int      `json:"employee_count"`
	AnnualRevenue float64  `json:"annual_revenue"`
	Products      []string `json:"products"`
	Materials     []string `json:"materials"`
	TargetMarkets []string `json:"target_markets"`
	Technologies  []string `json:"technologies"`
	Source        string   `json:"source"`
}

type stakeholderRequest struct {
	Name             string   `json:"name"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Email            string   `json:"email"`
	LinkedInURL      string   `json:"linkedin_url"`
	RawDecisionPower *float64 `json:"decision_making_power"`
}

func (b batchRequest) validate() error {
	for i, c := range b.Companies {
		if strings.TrimSpace(c.Name) == "" {
			return errors.New("company " + strconv.Itoa(i) + ": missing name")
		}
	}
	for i, s := range b.Stakeholders {
		if strings.TrimSpace(s.Name) == "" {
			return errors.New("stakeholder " + strconv.Itoa(i) + ": missing name")
		}
	}
	return nil
}

// toModel converts the wire form to the domain batch.
func (b batchRequest) toModel() model.Batch {
	out := model.Batch{BatchID: strings.TrimSpace(b.BatchID)}
	for _, c := range b.Companies {
		out.Companies = append(out.Companies, model.Company{
			Name:          c.Name,
			Website:       c.Website,
			Description:   c.Description,
			Industry:      c.Industry,
			CompanySize:   c.CompanySize,
			EmployeeCount: c.EmployeeCount,
			AnnualRevenue: c.AnnualRevenue,
			Products:      c.Products,
			Materials:     c.Materials,
			TargetMarkets: c.TargetMarkets,
			Technologies:  c.Technologies,
			Source:        c.Source,
		})
	}
	for _, s := range b.Stakeholders {
		out.Stakeholders = append(out.Stakeholders, model.Stakeholder{
			Name:             s.Name,
			Title:            s.Title,
			CompanyName:      s.Company,
			Email:            s.Email,
			LinkedInURL:      s.LinkedInURL,
			RawDecisionPower: s.RawDecisionPower,
		})
	}
	return out
}

type ackResponse struct {
	Status    string `json:"status"`
	BatchID   string `json:"batch_id"`
	Duplicate bool   `json:"duplicate"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates the store's not-found sentinel to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
