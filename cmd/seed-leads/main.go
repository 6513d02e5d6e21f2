package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/prospect/internal/testleads"
)

// Default configuration constants.
const (
	defaultNumBatches   = 100
	defaultCompaniesMin = 3
	defaultCompaniesMax = 12
	defaultTopN         = 50
	defaultWorkers      = 2 // multiplier for runtime.NumCPU()
	defaultTimeout      = 30 * time.Second
	defaultRunTimeout   = 10 * time.Minute
)

func main() {
	var (
		baseURL      = flag.String("url", "http://localhost:9090", "Base URL of the service")
		numBatches   = flag.Int("batches", defaultNumBatches, "Number of batches to generate and submit")
		companiesMin = flag.Int("companies-min", defaultCompaniesMin, "Minimum companies per batch")
		companiesMax = flag.Int("companies-max", defaultCompaniesMax, "Maximum companies per batch")
		topN         = flag.Int("top", defaultTopN, "Number of top leads to fetch")
		workers      = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout      = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		outputFile   = flag.String("output", "", "Output file for generated batches (default: generated_batches_TIMESTAMP.json)")
		logFile      = flag.String("log", "", "Log file for run output (default: seed_log_TIMESTAMP.log)")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		testleads.ShowHelp()
		return
	}

	// Setup logging
	if err := testleads.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	// Create run configuration
	config := &testleads.Config{
		BaseURL:      *baseURL,
		NumBatches:   *numBatches,
		CompaniesMin: *companiesMin,
		CompaniesMax: *companiesMax,
		TopN:         *topN,
		Workers:      *workers,
		Timeout:      *timeout,
		OutputFile:   *outputFile,
		LogFile:      *logFile,
		Verbose:      *verbose,
	}

	// Run the seeding
	if err := testleads.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Seeding run failed: " + err.Error() + "\n")
		return
	}
}
