// Package repository defines the processed-lead store interface and
// errors.
package repository

import (
	"context"
	"time"

	"github.com/okian/prospect/internal/domain/model"
)

// Stats summarizes the currently served snapshot.
type Stats struct {
	BatchID      string         `json:"batch_id"`
	ProcessedAt  time.Time      `json:"processed_at"`
	Companies    int            `json:"companies"`
	Stakeholders int            `json:"stakeholders"`
	Leads        int            `json:"leads"`
	TierCounts   map[string]int `json:"tier_counts"`
}

// Store provides read access to the latest processed batch and atomic
// replacement when a new one lands.
type Store interface {
	// Replace swaps the served snapshot with the given result.
	Replace(ctx context.Context, r model.Result) error

	// TopN returns the top-N leads ordered by lead score desc.
	TopN(ctx context.Context, n int) ([]model.Lead, error)

	// Lead returns a single lead by its lead ID.
	// Returns ErrNotFound if the lead is unknown.
	Lead(ctx context.Context, leadID string) (model.Lead, error)

	// Companies returns up to n scored companies ordered by company
	// score desc.
	Companies(ctx context.Context, n int) ([]model.Company, error)

	// TierCounts returns the number of leads per tier.
	TierCounts(ctx context.Context) map[string]int

	// Count returns the number of leads in the served snapshot.
	Count(ctx context.Context) int

	// Stats returns summary counts for the served snapshot.
	Stats(ctx context.Context) Stats
}
