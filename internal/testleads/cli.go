package testleads

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/prospect/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "seed_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the lead seeding tool.
func ShowHelp() {
	os.Stdout.WriteString(`Prospect Lead Seeding Tool
==========================

A concurrent tool for seeding and exercising the lead scoring pipeline.

Usage:
  go run cmd/seed-leads/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9090")
  -batches int
        Number of batches to generate and submit (default 100)
  -companies-min int
        Minimum companies per batch (default 3)
  -companies-max int
        Maximum companies per batch (default 12)
  -top int
        Number of top leads to fetch (default 50)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Output file for generated batches (default: generated_batches_TIMESTAMP.json)
  -log string
        Log file for run output (default: seed_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Seed with default settings
  go run cmd/seed-leads/main.go

  # Seed with custom parameters
  go run cmd/seed-leads/main.go -batches 500 -workers 16 -url http://localhost:8080

  # Seed with verbose output
  go run cmd/seed-leads/main.go -verbose -batches 100

  # Seed with custom log file
  go run cmd/seed-leads/main.go -batches 500 -log my_seed.log
`)
}
