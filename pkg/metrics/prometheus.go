// Package metrics provides Prometheus metrics for the lead pipeline
// service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the pipeline service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Core business metrics - one pipeline run per batch.
	batchesProcessed prometheus.Counter
	batchesDuplicate prometheus.Counter
	batchesRejected  prometheus.Counter
	leadsAssembled   prometheus.Counter
	companiesDeduped prometheus.Counter
	joinMisses       prometheus.Counter
	unmatchedDropped prometheus.Counter
	pipelineLatency  prometheus.Histogram
	snapshotReplaced prometheus.Counter

	// Snapshot state gauges.
	totalLeads     prometheus.Gauge
	totalCompanies prometheus.Gauge
	tierLeads      *prometheus.GaugeVec

	// Export metrics.
	exportDuration prometheus.Histogram
	exportErrors   prometheus.Counter

	// Queue metrics.
	queueSize        prometheus.Gauge
	queueCapacity    prometheus.Gauge
	queueUtilization prometheus.Gauge
	queueEnqueues    prometheus.Counter
	queueEnqueueErrs prometheus.Counter
	queueDequeues    prometheus.Counter

	// Worker metrics.
	workerCount             prometheus.Gauge
	workerProcessingLatency prometheus.Histogram
	workerErrors            prometheus.Counter

	// HTTP performance metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics by origin.
	errorsByComponent *prometheus.CounterVec

	// System metrics.
	systemMemoryBytes prometheus.Gauge
	systemGoroutines  prometheus.Gauge
	systemGCPause     prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "prospect",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics registers all metrics on the configured registry.
func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.batchesProcessed = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "batches_processed_total",
		Help: "Total number of input batches run through the pipeline.",
	})
	m.batchesDuplicate = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "batches_duplicate_total",
		Help: "Total number of batches rejected as duplicates.",
	})
	m.batchesRejected = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "batches_rejected_total",
		Help: "Total number of batches rejected due to backpressure.",
	})
	m.leadsAssembled = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "leads_assembled_total",
		Help: "Total number of leads assembled across all batches.",
	})
	m.companiesDeduped = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "companies_deduped_total",
		Help: "Total number of duplicate company rows dropped at ingestion.",
	})
	m.joinMisses = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "join_misses_total",
		Help: "Total number of stakeholders whose company reference resolved to nothing.",
	})
	m.unmatchedDropped = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "unmatched_leads_dropped_total",
		Help: "Total number of unmatched stakeholders dropped at lead assembly.",
	})
	m.pipelineLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "run_duration_ms",
		Help:    "Full pipeline run duration per batch in milliseconds.",
		Buckets: m.histogramBuckets,
	})
	m.snapshotReplaced = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "snapshot_replacements_total",
		Help: "Total number of served-snapshot replacements.",
	})

	m.totalLeads = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "leads",
		Help: "Number of leads in the currently served snapshot.",
	})
	m.totalCompanies = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "companies",
		Help: "Number of companies in the currently served snapshot.",
	})
	m.tierLeads = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "tier_leads",
		Help: "Number of leads per tier in the currently served snapshot.",
	}, []string{"tier"})

	m.exportDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "export_duration_ms",
		Help:    "CSV export duration per batch in milliseconds.",
		Buckets: m.histogramBuckets,
	})
	m.exportErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "export_errors_total",
		Help: "Total number of failed CSV exports.",
	})

	m.queueSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "queue_size",
		Help: "Current number of queued batches.",
	})
	m.queueCapacity = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "queue_capacity",
		Help: "Configured batch queue capacity.",
	})
	m.queueUtilization = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "queue_utilization",
		Help: "Queue fill ratio between 0 and 1.",
	})
	m.queueEnqueues = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "queue_enqueues_total",
		Help: "Total number of successful batch enqueues.",
	})
	m.queueEnqueueErrs = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "queue_enqueue_errors_total",
		Help: "Total number of failed batch enqueues.",
	})
	m.queueDequeues = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "queue_dequeues_total",
		Help: "Total number of batch dequeues.",
	})

	m.workerCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "workers",
		Help: "Number of pipeline workers.",
	})
	m.workerProcessingLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "worker_processing_ms",
		Help:    "Per-batch worker processing latency in milliseconds.",
		Buckets: m.histogramBuckets,
	})
	m.workerErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "worker_errors_total",
		Help: "Total number of worker processing errors.",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "http_requests_total",
		Help: "Total HTTP requests by endpoint, method and status.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds.",
		Buckets: m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.errorsByComponent = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "errors_total",
		Help: "Total errors by component and reason.",
	}, []string{"component", "reason"})

	m.systemMemoryBytes = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "system_memory_bytes",
		Help: "Current allocated heap memory in bytes.",
	})
	m.systemGoroutines = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "system_goroutines",
		Help: "Current number of goroutines.",
	})
	m.systemGCPause = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "system_gc_pause_ms",
		Help:    "Average GC pause time in milliseconds.",
		Buckets: m.histogramBuckets,
	})
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordBatchProcessed increments the processed-batch counter and adds
// the batch's lead count.
func RecordBatchProcessed(leadCount int) {
	if !globalManager.enabled {
		return
	}
	globalManager.batchesProcessed.Inc()
	globalManager.leadsAssembled.Add(float64(leadCount))
}

// RecordBatchDuplicate increments the duplicate-batch counter.
func RecordBatchDuplicate() {
	if globalManager.enabled {
		globalManager.batchesDuplicate.Inc()
	}
}

// RecordBatchRejected increments the backpressure rejection counter.
func RecordBatchRejected() {
	if globalManager.enabled {
		globalManager.batchesRejected.Inc()
	}
}

// RecordCompaniesDeduped adds dropped duplicate company rows.
func RecordCompaniesDeduped(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.companiesDeduped.Add(float64(n))
	}
}

// RecordJoinMiss increments the join-miss counter.
func RecordJoinMiss() {
	if globalManager.enabled {
		globalManager.joinMisses.Inc()
	}
}

// RecordUnmatchedDropped adds stakeholders dropped at assembly.
func RecordUnmatchedDropped(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.unmatchedDropped.Add(float64(n))
	}
}

// RecordPipelineLatency observes a full pipeline run duration.
func RecordPipelineLatency(ms float64) {
	if globalManager.enabled {
		globalManager.pipelineLatency.Observe(ms)
	}
}

// RecordSnapshotReplaced increments the snapshot replacement counter.
func RecordSnapshotReplaced() {
	if globalManager.enabled {
		globalManager.snapshotReplaced.Inc()
	}
}

// UpdateSnapshot sets the served-snapshot gauges.
func UpdateSnapshot(leads, companies int, tierCounts map[string]int) {
	if !globalManager.enabled {
		return
	}
	globalManager.totalLeads.Set(float64(leads))
	globalManager.totalCompanies.Set(float64(companies))
	globalManager.tierLeads.Reset()
	for tier, n := range tierCounts {
		globalManager.tierLeads.WithLabelValues(tier).Set(float64(n))
	}
}

// RecordExportDuration observes a CSV export duration.
func RecordExportDuration(ms float64) {
	if globalManager.enabled {
		globalManager.exportDuration.Observe(ms)
	}
}

// RecordExportError increments the export error counter.
func RecordExportError() {
	if globalManager.enabled {
		globalManager.exportErrors.Inc()
	}
}

// UpdateQueueSize sets the queue size gauge.
func UpdateQueueSize(n int) {
	if globalManager.enabled {
		globalManager.queueSize.Set(float64(n))
	}
}

// UpdateQueueCapacity sets the queue capacity gauge.
func UpdateQueueCapacity(n int) {
	if globalManager.enabled {
		globalManager.queueCapacity.Set(float64(n))
	}
}

// UpdateQueueUtilization sets the queue utilization gauge.
func UpdateQueueUtilization(ratio float64) {
	if globalManager.enabled {
		globalManager.queueUtilization.Set(ratio)
	}
}

// RecordQueueEnqueue increments the enqueue counter.
func RecordQueueEnqueue() {
	if globalManager.enabled {
		globalManager.queueEnqueues.Inc()
	}
}

// RecordQueueEnqueueError increments the enqueue error counter.
func RecordQueueEnqueueError() {
	if globalManager.enabled {
		globalManager.queueEnqueueErrs.Inc()
	}
}

// RecordQueueDequeue increments the dequeue counter.
func RecordQueueDequeue() {
	if globalManager.enabled {
		globalManager.queueDequeues.Inc()
	}
}

// UpdateWorkerCount sets the worker count gauge.
func UpdateWorkerCount(n int) {
	if globalManager.enabled {
		globalManager.workerCount.Set(float64(n))
	}
}

// RecordWorkerProcessingLatency observes per-batch worker latency.
func RecordWorkerProcessingLatency(ms float64) {
	if globalManager.enabled {
		globalManager.workerProcessingLatency.Observe(ms)
	}
}

// RecordWorkerError increments the worker error counter.
func RecordWorkerError() {
	if globalManager.enabled {
		globalManager.workerErrors.Inc()
	}
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration observes an HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
	}
}

// RecordErrorByComponent increments the per-component error counter.
func RecordErrorByComponent(component, reason string) {
	if globalManager.enabled {
		globalManager.errorsByComponent.WithLabelValues(component, reason).Inc()
	}
}

// UpdateSystemMemoryUsage sets the allocated heap memory gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	if globalManager.enabled {
		globalManager.systemMemoryBytes.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the goroutine count gauge.
func UpdateSystemGoroutineCount(n int) {
	if globalManager.enabled {
		globalManager.systemGoroutines.Set(float64(n))
	}
}

// RecordSystemGCPauseTime observes an average GC pause duration.
func RecordSystemGCPauseTime(ms float64) {
	if globalManager.enabled {
		globalManager.systemGCPause.Observe(ms)
	}
}
