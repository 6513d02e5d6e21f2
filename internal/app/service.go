// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/okian/prospect/internal/adapters/export"
	batchqueue "github.com/okian/prospect/internal/adapters/mq/queue"
	workerpool "github.com/okian/prospect/internal/adapters/mq/worker"
	repository "github.com/okian/prospect/internal/adapters/repository"
	"github.com/okian/prospect/internal/domain/assemble"
	"github.com/okian/prospect/internal/domain/dedupe"
	"github.com/okian/prospect/internal/domain/extract"
	"github.com/okian/prospect/internal/domain/model"
	"github.com/okian/prospect/internal/domain/narrate"
	"github.com/okian/prospect/internal/domain/scoring"
	"github.com/okian/prospect/internal/outreach"
	"github.com/okian/prospect/pkg/logger"
	"github.com/okian/prospect/pkg/metrics"
)

// Service wires the batch queue, pipeline workers, lead store and CSV
// exporter into one unit behind the HTTP API.
type Service struct {
	mu sync.RWMutex

	// Core components
	store      repository.Store
	deduper    dedupe.Deduper
	batchQueue batchqueue.Queue
	workerPool *workerpool.Pool
	exporter   *export.Exporter

	// Pipeline stages
	extractor         *extract.Extractor
	companyScorer     *scoring.CompanyScorer
	stakeholderScorer *scoring.StakeholderScorer
	assembler         *assemble.Assembler
	narrator          *narrate.Narrator
	outreach          *outreach.Generator

	// Configuration
	workerCount         int
	queueSize           int
	dedupeSize          int
	companyWeights      scoring.CompanyWeights
	decisionPowerWeight float64
	icpThreshold        float64
	defaultIndustry     string
	keepUnmatched       bool
	exportDir           string
	productName         string

	// State
	started bool
	stopCh  chan struct{}

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of pipeline worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the batch queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the batch-id deduplication cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCompanyWeights sets the company composite weights by sub-score
// name (size, industry, product_fit). Unknown keys are ignored.
func WithCompanyWeights(weights map[string]float64) Option {
	return func(s *Service) {
		if len(weights) == 0 {
			return
		}
		w := s.companyWeights
		if v, ok := weights["size"]; ok {
			w.Size = v
		}
		if v, ok := weights["industry"]; ok {
			w.Industry = v
		}
		if v, ok := weights["product_fit"]; ok {
			w.ProductFit = v
		}
		s.companyWeights = w
	}
}

// WithDecisionPowerWeight sets the stakeholder composite blend weight.
func WithDecisionPowerWeight(w float64) Option {
	return func(s *Service) {
		if w > 0 && w < 1 {
			s.decisionPowerWeight = w
		}
	}
}

// WithICPThreshold sets the ideal-customer-profile score threshold used
// by narratives and outreach template selection.
func WithICPThreshold(t float64) Option {
	return func(s *Service) {
		if t > 0 && t <= 1 {
			s.icpThreshold = t
		}
	}
}

// WithDefaultIndustry sets the industry assigned when extraction finds
// no signal.
func WithDefaultIndustry(industry string) Option {
	return func(s *Service) {
		if industry != "" {
			s.defaultIndustry = industry
		}
	}
}

// WithKeepUnmatchedLeads retains leads whose company join missed
// instead of dropping them at assembly.
func WithKeepUnmatchedLeads(keep bool) Option {
	return func(s *Service) {
		s.keepUnmatched = keep
	}
}

// WithExportDir sets the directory for per-batch CSV artifacts. Empty
// disables export.
func WithExportDir(dir string) Option {
	return func(s *Service) {
		s.exportDir = dir
	}
}

// WithProductName sets the product referenced in narratives and
// outreach messages.
func WithProductName(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.productName = name
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:         runtime.NumCPU(),
		queueSize:           1024,
		dedupeSize:          100_000,
		companyWeights:      scoring.DefaultCompanyWeights(),
		decisionPowerWeight: 0.6,
		icpThreshold:        0.7,
		defaultIndustry:     "",
		keepUnmatched:       false,
		exportDir:           "",
		productName:         "Tedlar",
		stopCh:              make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting lead pipeline service...")

	s.store = repository.NewMemStore()
	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.batchQueue = batchqueue.NewInMemoryQueue(
		batchqueue.WithCapacity(s.queueSize),
		batchqueue.WithBufferSize(s.queueSize),
	)

	extractOpts := []extract.Option{}
	if s.defaultIndustry != "" {
		extractOpts = append(extractOpts, extract.WithDefaultIndustry(s.defaultIndustry))
	}
	s.extractor = extract.New(extractOpts...)
	s.companyScorer = scoring.NewCompanyScorer(
		scoring.WithCompanyWeights(s.companyWeights),
	)
	s.stakeholderScorer = scoring.NewStakeholderScorer(
		scoring.WithDecisionPowerWeight(s.decisionPowerWeight),
	)
	s.assembler = assemble.New(
		assemble.WithKeepUnmatched(s.keepUnmatched),
	)
	s.narrator = narrate.New(
		narrate.WithProductName(s.productName),
		narrate.WithICPThreshold(s.icpThreshold),
	)
	s.outreach = outreach.New(
		outreach.WithProductName(s.productName),
		outreach.WithScoreThreshold(s.icpThreshold),
	)
	if s.exportDir != "" {
		s.exporter = export.New(s.exportDir)
	}

	s.workerPool = workerpool.NewPool(s.workerCount, s.batchQueue, s, s)
	s.workerPool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "lead pipeline service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
		logger.Bool("exportEnabled", s.exporter != nil),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping lead pipeline service...")

	if s.workerPool != nil {
		_ = s.workerPool.Shutdown(context.Background())
	}

	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}

	s.started = false
	s.logger.Info(context.Background(), "lead pipeline service stopped")
}

// Process runs one batch through the full pipeline: normalization,
// attribute extraction, company and stakeholder scoring, narration,
// lead assembly and outreach generation.
func (s *Service) Process(ctx context.Context, b model.Batch) (model.Result, error) {
	normalized := model.Normalize(b)
	if dropped := len(b.Companies) - len(normalized.Companies); dropped > 0 {
		metrics.RecordCompaniesDeduped(dropped)
	}

	companies := s.extractor.FillBatch(normalized.Companies)
	companies = s.companyScorer.ScoreBatch(ctx, companies)
	for i := range companies {
		companies[i].Relevance = s.narrator.CompanyRelevance(companies[i])
	}

	companyByID := make(map[string]model.Company, len(companies))
	for _, c := range companies {
		companyByID[c.ID] = c
	}

	stakeholders := s.stakeholderScorer.ScoreBatch(ctx, normalized.Stakeholders, companies)
	for i := range stakeholders {
		if !stakeholders[i].CompanyMatch {
			metrics.RecordJoinMiss()
		}
		stakeholders[i].Relevance = s.narrator.StakeholderRelevance(
			stakeholders[i], companyByID[stakeholders[i].CompanyID])
	}

	leads := s.assembler.Assemble(ctx, companies, stakeholders)
	if dropped := len(stakeholders) - len(leads); dropped > 0 {
		metrics.RecordUnmatchedDropped(dropped)
	}

	for i := range leads {
		msg := s.outreach.Generate(leads[i], companyByID[leads[i].CompanyID])
		leads[i].TemplateType = msg.Type
		leads[i].Subject = msg.Subject
		leads[i].OutreachMessage = msg.Body
	}

	return model.Result{
		BatchID:      normalized.BatchID,
		Companies:    companies,
		Stakeholders: stakeholders,
		Leads:        leads,
		ProcessedAt:  time.Now().UTC(),
	}, nil
}

// Publish replaces the served snapshot and writes export artifacts when
// export is enabled. A failed export does not fail the publish; the
// snapshot stays authoritative.
func (s *Service) Publish(ctx context.Context, r model.Result) error {
	if err := s.store.Replace(ctx, r); err != nil {
		return err
	}
	if s.exporter != nil {
		if err := s.exporter.Export(ctx, r); err != nil {
			s.logger.Error(ctx, "csv export failed",
				logger.String("batchID", r.BatchID),
				logger.Error(err),
			)
		}
	}
	return nil
}

// SeenAndRecord atomically checks if a batch id was seen and records it
// if not. Returns true if the batch was already seen.
func (s *Service) SeenAndRecord(ctx context.Context, id string) bool {
	seen := s.deduper.SeenAndRecord(ctx, id)
	if seen {
		metrics.RecordBatchDuplicate()
	}
	return seen
}

// Unrecord removes a batch ID from the seen list, allowing a retry.
func (s *Service) Unrecord(ctx context.Context, id string) {
	s.deduper.Unrecord(ctx, id)
}

// Enqueue submits a batch for asynchronous processing. Returns false
// when the queue rejects the batch (backpressure or shutdown).
func (s *Service) Enqueue(ctx context.Context, b model.Batch) bool {
	ok := s.batchQueue.Enqueue(ctx, b)
	if !ok {
		metrics.RecordBatchRejected()
		s.logger.Warn(ctx, "batch rejected by queue",
			logger.String("batchID", b.BatchID),
			logger.Int("queueLen", s.batchQueue.Len(ctx)),
		)
	}
	return ok
}

// TopN returns the top N leads from the served snapshot.
func (s *Service) TopN(ctx context.Context, n int) ([]model.Lead, error) {
	return s.store.TopN(ctx, n)
}

// Lead returns a single lead by lead ID.
func (s *Service) Lead(ctx context.Context, leadID string) (model.Lead, error) {
	return s.store.Lead(ctx, leadID)
}

// Companies returns up to n scored companies ordered by company score.
func (s *Service) Companies(ctx context.Context, n int) ([]model.Company, error) {
	return s.store.Companies(ctx, n)
}

// TierCounts returns the number of leads per tier.
func (s *Service) TierCounts(ctx context.Context) map[string]int {
	return s.store.TierCounts(ctx)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"dedupeSize":  s.dedupeSize,
	}

	if s.started {
		queueLen := s.batchQueue.Len(ctx)
		snapshot := s.store.Stats(ctx)

		stats["queueLength"] = queueLen
		stats["batchID"] = snapshot.BatchID
		stats["processedAt"] = snapshot.ProcessedAt
		stats["totalCompanies"] = snapshot.Companies
		stats["totalStakeholders"] = snapshot.Stakeholders
		stats["totalLeads"] = snapshot.Leads
		stats["tierCounts"] = snapshot.TierCounts

		metrics.UpdateQueueSize(queueLen)
	}

	return stats
}

// Size returns the current number of entries in the deduper.
func (s *Service) Size() int64 {
	if s.deduper == nil {
		return 0
	}
	return s.deduper.Size()
}
