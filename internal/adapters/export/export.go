// Package export writes per-batch CSV artifacts for downstream
// consumers. Each processed batch lands in its own directory named by
// batch ID, holding companies.csv, stakeholders.csv and leads.csv.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/okian/prospect/internal/domain/model"
	"github.com/okian/prospect/internal/domain/score"
	"github.com/okian/prospect/pkg/logger"
	"github.com/okian/prospect/pkg/metrics"
)

// Artifact file names inside a batch directory.
const (
	CompaniesFile    = "companies.csv"
	StakeholdersFile = "stakeholders.csv"
	LeadsFile        = "leads.csv"
)

const dirPerm = 0o755

// Option applies a configuration option to the Exporter.
type Option func(*Exporter)

// WithLogger sets a custom logger for the exporter.
func WithLogger(l logger.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// Exporter writes processed results as flat CSV files.
type Exporter struct {
	dir    string
	logger logger.Logger
}

// New creates an Exporter rooted at dir with configuration options.
func New(dir string, opts ...Option) *Exporter {
	e := &Exporter{
		dir:    dir,
		logger: logger.Get().Named("export"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// column describes one CSV column: a header, a per-row value extractor,
// and whether the column may be dropped when no row populates it.
type column[T any] struct {
	header   string
	value    func(T) string
	optional bool
}

// Export writes the three artifacts for one result. Optional columns
// that no row populates are omitted rather than written empty.
func (e *Exporter) Export(ctx context.Context, r model.Result) error {
	start := time.Now()

	batchDir := filepath.Join(e.dir, r.BatchID)
	if err := os.MkdirAll(batchDir, dirPerm); err != nil {
		metrics.RecordExportError()
		return fmt.Errorf("create export dir: %w", err)
	}

	if err := writeCSV(filepath.Join(batchDir, CompaniesFile), companyColumns(), r.Companies); err != nil {
		metrics.RecordExportError()
		return err
	}
	if err := writeCSV(filepath.Join(batchDir, StakeholdersFile), stakeholderColumns(), r.Stakeholders); err != nil {
		metrics.RecordExportError()
		return err
	}
	if err := writeCSV(filepath.Join(batchDir, LeadsFile), leadColumns(), r.Leads); err != nil {
		metrics.RecordExportError()
		return err
	}

	metrics.RecordExportDuration(float64(time.Since(start).Milliseconds()))
	e.logger.Info(ctx, "batch exported",
		logger.String("batchID", r.BatchID),
		logger.String("dir", batchDir),
		logger.Int("leads", len(r.Leads)),
	)
	return nil
}

// writeCSV writes rows with the given column set, dropping optional
// columns that are empty for every row.
func writeCSV[T any](path string, cols []column[T], rows []T) error {
	kept := make([]column[T], 0, len(cols))
	for _, c := range cols {
		if c.optional && !anyPopulated(c, rows) {
			continue
		}
		kept = append(kept, c)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := make([]string, len(kept))
	for i, c := range kept {
		header[i] = c.header
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(kept))
	for _, row := range rows {
		for i, c := range kept {
			record[i] = c.value(row)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", filepath.Base(path), err)
	}
	return nil
}

func anyPopulated[T any](c column[T], rows []T) bool {
	for _, row := range rows {
		if c.value(row) != "" {
			return true
		}
	}
	return false
}

func companyColumns() []column[model.Company] {
	return []column[model.Company]{
		{header: "id", value: func(c model.Company) string { return c.ID }},
		{header: "name", value: func(c model.Company) string { return c.Name }},
		{header: "website", value: func(c model.Company) string { return c.Website }, optional: true},
		{header: "description", value: func(c model.Company) string { return c.Description }, optional: true},
		{header: "industry", value: func(c model.Company) string { return c.Industry }},
		{header: "company_size", value: func(c model.Company) string { return c.CompanySize }},
		{header: "employee_count", value: func(c model.Company) string { return formatInt(c.EmployeeCount) }, optional: true},
		{header: "annual_revenue", value: func(c model.Company) string { return formatRevenue(c.AnnualRevenue) }, optional: true},
		{header: "products", value: func(c model.Company) string { return joinList(c.Products) }, optional: true},
		{header: "materials", value: func(c model.Company) string { return joinList(c.Materials) }, optional: true},
		{header: "target_markets", value: func(c model.Company) string { return joinList(c.TargetMarkets) }, optional: true},
		{header: "technologies", value: func(c model.Company) string { return joinList(c.Technologies) }, optional: true},
		{header: "source", value: func(c model.Company) string { return c.Source }, optional: true},
		{header: "size_score", value: func(c model.Company) string { return formatScore(c.SizeScore) }},
		{header: "industry_score", value: func(c model.Company) string { return formatScore(c.IndustryScore) }},
		{header: "product_fit_score", value: func(c model.Company) string { return formatScore(c.ProductFitScore) }},
		{header: "company_score", value: func(c model.Company) string { return formatScore(c.CompanyScore) }},
		{header: "relevance", value: func(c model.Company) string { return c.Relevance }, optional: true},
	}
}

func stakeholderColumns() []column[model.Stakeholder] {
	return []column[model.Stakeholder]{
		{header: "id", value: func(s model.Stakeholder) string { return s.ID }},
		{header: "name", value: func(s model.Stakeholder) string { return s.Name }},
		{header: "title", value: func(s model.Stakeholder) string { return s.Title }, optional: true},
		{header: "company", value: func(s model.Stakeholder) string { return s.CompanyName }},
		{header: "company_id", value: func(s model.Stakeholder) string { return s.CompanyID }, optional: true},
		{header: "email", value: func(s model.Stakeholder) string { return s.Email }, optional: true},
		{header: "linkedin_url", value: func(s model.Stakeholder) string { return s.LinkedInURL }, optional: true},
		{header: "decision_making_power", value: func(s model.Stakeholder) string { return formatScore(s.DecisionMakingPower) }},
		{header: "company_score", value: func(s model.Stakeholder) string { return formatScore(s.CompanyScore) }},
		{header: "company_match", value: func(s model.Stakeholder) string { return strconv.FormatBool(s.CompanyMatch) }},
		{header: "stakeholder_score", value: func(s model.Stakeholder) string { return formatScore(s.StakeholderScore) }},
		{header: "relevance", value: func(s model.Stakeholder) string { return s.Relevance }, optional: true},
	}
}

func leadColumns() []column[model.Lead] {
	return []column[model.Lead]{
		{header: "lead_id", value: func(l model.Lead) string { return l.LeadID }},
		{header: "name", value: func(l model.Lead) string { return l.Name }},
		{header: "title", value: func(l model.Lead) string { return l.Title }, optional: true},
		{header: "company", value: func(l model.Lead) string { return l.Company }},
		{header: "email", value: func(l model.Lead) string { return l.Email }, optional: true},
		{header: "linkedin_url", value: func(l model.Lead) string { return l.LinkedInURL }, optional: true},
		{header: "decision_making_power", value: func(l model.Lead) string { return formatScore(l.DecisionMakingPower) }},
		{header: "company_score", value: func(l model.Lead) string { return formatScore(l.CompanyScore) }},
		{header: "stakeholder_score", value: func(l model.Lead) string { return formatScore(l.StakeholderScore) }},
		{header: "lead_score", value: func(l model.Lead) string { return formatScore(l.LeadScore) }},
		{header: "tier", value: func(l model.Lead) string { return l.Tier }},
		{header: "company_match", value: func(l model.Lead) string { return strconv.FormatBool(l.CompanyMatch) }},
		{header: "relevance", value: func(l model.Lead) string { return l.Relevance }, optional: true},
		{header: "template_type", value: func(l model.Lead) string { return l.TemplateType }, optional: true},
		{header: "subject", value: func(l model.Lead) string { return l.Subject }, optional: true},
		{header: "outreach_message", value: func(l model.Lead) string { return l.OutreachMessage }, optional: true},
	}
}

func formatScore(v score.Value) string {
	return strconv.FormatFloat(v.Float64(), 'f', 2, 64)
}

func formatInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func formatRevenue(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func joinList(values []string) string {
	return strings.Join(values, "; ")
}
