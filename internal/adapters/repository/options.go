// Package repository defines the processed-lead store interface and
// errors.
package repository

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithMetricsEnabled enables or disables snapshot gauge updates on
// Replace.
func WithMetricsEnabled(enabled bool) Option {
	return func(s *MemStore) {
		s.metricsEnabled = enabled
	}
}
