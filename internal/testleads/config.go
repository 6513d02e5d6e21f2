package testleads

import "time"

// Config holds configuration for the lead seeding run
type Config struct {
	BaseURL      string        // Base URL of the service
	NumBatches   int           // Number of batches to generate
	CompaniesMin int           // Minimum companies per batch
	CompaniesMax int           // Maximum companies per batch
	TopN         int           // Number of top leads to fetch
	Workers      int           // Number of concurrent workers
	Timeout      time.Duration // HTTP request timeout
	OutputFile   string        // Output file for batches
	LogFile      string        // Log file for run output
	Verbose      bool          // Enable verbose logging
}

// Batch represents a batch to be submitted
type Batch struct {
	BatchID      string        `json:"batch_id"`
	Companies    []Company     `json:"companies"`
	Stakeholders []Stakeholder `json:"stakeholders"`
}

// Company represents a raw company row
type Company struct {
	Name          string   `json:"name"`
	Website       string   `json:"website,omitempty"`
	Description   string   `json:"description,omitempty"`
	Industry      string   `json:"industry,omitempty"`
	EmployeeCount int      `json:"employee_count,omitempty"`
	AnnualRevenue float64  `json:"annual_revenue,omitempty"`
	Products      []string `json:"products,omitempty"`
	Materials     []string `json:"materials,omitempty"`
	TargetMarkets []string `json:"target_markets,omitempty"`
	Source        string   `json:"source,omitempty"`
}

// Stakeholder represents a raw stakeholder row
type Stakeholder struct {
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Company     string `json:"company"`
	Email       string `json:"email,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
}

// Lead represents a served lead entry
type Lead struct {
	LeadID    string  `json:"lead_id"`
	Name      string  `json:"name"`
	Company   string  `json:"company"`
	LeadScore float64 `json:"lead_score"`
	Tier      string  `json:"tier"`
}

// AckResponse represents the response from batch submission
type AckResponse struct {
	Status    string `json:"status"`
	BatchID   string `json:"batch_id"`
	Duplicate bool   `json:"duplicate"`
}

// Stats holds run statistics
type Stats struct {
	BatchesGenerated  int
	BatchesSubmitted  int
	BatchesSuccessful int
	BatchesDuplicate  int
	BatchesFailed     int
	LeadsRetrieved    int
	TierCounts        map[string]int
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}
