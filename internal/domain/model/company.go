// Package model contains domain records passed between pipeline stages.
package model

import "github.com/okian/prospect/internal/domain/score"

// Categorical company size buckets accepted on ingestion.
const (
	SizeMicro  = "Micro"
	SizeSmall  = "Small"
	SizeMedium = "Medium"
	SizeLarge  = "Large"
)

// Company is one candidate company flowing through the pipeline. Fields up
// to Source arrive from the collection stage and may be partially empty;
// the extractor fills gaps and the scoring stage attaches the derived
// scores. Name is display-only after ingestion; ID is the join key.
type Company struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Website       string   `json:"website,omitempty"`
	Description   string   `json:"description,omitempty"`
	Industry      string   `json:"industry,omitempty"`
	CompanySize   string   `json:"company_size,omitempty"` // Micro/Small/Medium/Large
	EmployeeCount int      `json:"employee_count,omitempty"`
	AnnualRevenue float64  `json:"annual_revenue,omitempty"`
	Products      []string `json:"products,omitempty"`
	Materials     []string `json:"materials,omitempty"`
	TargetMarkets []string `json:"target_markets,omitempty"`
	Technologies  []string `json:"technologies,omitempty"`
	Source        string   `json:"source,omitempty"` // e.g. "Event: ISA Sign Expo"

	// Derived columns, attached by the company score engine.
	SizeScore       score.Value `json:"size_score"`
	IndustryScore   score.Value `json:"industry_score"`
	ProductFitScore score.Value `json:"product_fit_score"`
	CompanyScore    score.Value `json:"company_score"`

	// Relevance is the narrator's explanation. It never feeds back into
	// any score.
	Relevance string `json:"relevance,omitempty"`
}
