package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/okian/prospect/internal/domain/model"
	"github.com/okian/prospect/pkg/metrics"
)

// MemStore holds the latest processed batch in memory behind a RWMutex.
// Reads serve from an immutable snapshot; Replace swaps the whole
// snapshot, so readers never see a half-processed batch.
type MemStore struct {
	mu       sync.RWMutex
	snapshot snapshot

	metricsEnabled bool
}

// snapshot is the immutable read model built at Replace time.
type snapshot struct {
	result   model.Result
	leadByID map[string]model.Lead
	tiers    map[string]int
}

// compile-time check.
var _ Store = (*MemStore)(nil)

// NewMemStore creates an empty in-memory store with configuration
// options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		metricsEnabled: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.snapshot = snapshot{
		leadByID: make(map[string]model.Lead),
		tiers:    make(map[string]int),
	}
	return s
}

// Replace swaps the served snapshot with the given result.
func (s *MemStore) Replace(_ context.Context, r model.Result) error {
	next := snapshot{
		result:   r,
		leadByID: make(map[string]model.Lead, len(r.Leads)),
		tiers:    make(map[string]int, 3),
	}
	for _, l := range r.Leads {
		next.leadByID[l.LeadID] = l
		next.tiers[l.Tier]++
	}

	s.mu.Lock()
	s.snapshot = next
	s.mu.Unlock()

	if s.metricsEnabled {
		metrics.RecordSnapshotReplaced()
		metrics.UpdateSnapshot(len(r.Leads), len(r.Companies), next.tiers)
	}
	return nil
}

// Publish lets the store act as a worker publisher.
func (s *MemStore) Publish(ctx context.Context, r model.Result) error {
	return s.Replace(ctx, r)
}

// TopN returns the top-N leads by lead score desc. Leads are stored
// pre-sorted by the assembler, so this is a prefix copy.
func (s *MemStore) TopN(_ context.Context, n int) ([]model.Lead, error) {
	if n <= 0 {
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	leads := s.snapshot.result.Leads
	if n > len(leads) {
		n = len(leads)
	}
	out := make([]model.Lead, n)
	copy(out, leads[:n])
	return out, nil
}

// Lead returns a single lead by its lead ID.
func (s *MemStore) Lead(_ context.Context, leadID string) (model.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.snapshot.leadByID[leadID]
	if !ok {
		return model.Lead{}, ErrNotFound
	}
	return l, nil
}

// Companies returns up to n scored companies ordered by company score
// desc.
func (s *MemStore) Companies(_ context.Context, n int) ([]model.Company, error) {
	if n <= 0 {
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	companies := make([]model.Company, len(s.snapshot.result.Companies))
	copy(companies, s.snapshot.result.Companies)
	s.mu.RUnlock()

	sort.SliceStable(companies, func(i, j int) bool {
		return companies[i].CompanyScore > companies[j].CompanyScore
	})

	if n > len(companies) {
		n = len(companies)
	}
	return companies[:n], nil
}

// TierCounts returns the number of leads per tier.
func (s *MemStore) TierCounts(_ context.Context) map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int, len(s.snapshot.tiers))
	for tier, n := range s.snapshot.tiers {
		out[tier] = n
	}
	return out
}

// Count returns the number of leads in the served snapshot.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshot.result.Leads)
}

// Stats returns summary counts for the served snapshot.
func (s *MemStore) Stats(ctx context.Context) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r := s.snapshot.result
	tiers := make(map[string]int, len(s.snapshot.tiers))
	for tier, n := range s.snapshot.tiers {
		tiers[tier] = n
	}
	return Stats{
		BatchID:      r.BatchID,
		ProcessedAt:  r.ProcessedAt,
		Companies:    len(r.Companies),
		Stakeholders: len(r.Stakeholders),
		Leads:        len(r.Leads),
		TierCounts:   tiers,
	}
}
