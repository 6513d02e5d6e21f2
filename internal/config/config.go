// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import "runtime"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9090".
	Addr string `koanf:"addr"`

	// BatchQueueSize bounds the in-memory batch queue.
	BatchQueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of pipeline workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the batch-id deduplication cache.
	DedupeSize int `koanf:"dedupe_size"`

	// MaxLeadsLimit caps GET /leads?limit.
	MaxLeadsLimit int `koanf:"max_leads_limit"`

	// CompanyWeights maps company sub-score names (size, industry,
	// product_fit) to their composite weights. They need not sum to 1.
	CompanyWeights map[string]float64 `koanf:"company_weights"`

	// DecisionPowerWeight blends decision-making power against the
	// company score in the stakeholder composite.
	DecisionPowerWeight float64 `koanf:"decision_power_weight"`

	// ICPScoreThreshold marks the score above which a record counts as a
	// strong ideal-customer-profile fit (narratives, template choice).
	ICPScoreThreshold float64 `koanf:"icp_score_threshold"`

	// DefaultIndustry is assigned when extraction finds no industry
	// signal at all.
	DefaultIndustry string `koanf:"default_industry"`

	// KeepUnmatchedLeads retains leads whose company join missed,
	// flagged, instead of dropping them at assembly.
	KeepUnmatchedLeads bool `koanf:"keep_unmatched_leads"`

	// ExportDir is the directory for per-batch CSV artifacts. Empty
	// disables export.
	ExportDir string `koanf:"export_dir"`

	// ProductName is the product referenced in narratives and outreach
	// messages.
	ProductName string `koanf:"product_name"`
}

// New creates a Config populated with the documented defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9090",
		BatchQueueSize: 1024,
		WorkerCount:    runtime.NumCPU(),
		DedupeSize:     100_000,
		MaxLeadsLimit:  100,
		CompanyWeights: map[string]float64{
			"size":        0.3,
			"industry":    0.4,
			"product_fit": 0.3,
		},
		DecisionPowerWeight: 0.6,
		ICPScoreThreshold:   0.7,
		DefaultIndustry:     "Graphics and Signage",
		KeepUnmatchedLeads:  false,
		ExportDir:           "data/output",
		ProductName:         "Tedlar",
	}
}
