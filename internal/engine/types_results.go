package engine

import (
	"time"

	"github.com/invectorlabs/bomsort/internal/feeder"
	"github.com/invectorlabs/bomsort/internal/report"
)

// Artifact describes one produced output.
type Artifact struct {
	Kind    report.Kind `json:"kind"`
	Path    string      `json:"path"`
	Rows    int         `json:"rows"`
	Written bool        `json:"written"`
	Error   string      `json:"error,omitempty"`
}

// OptimizerSummary reports how the feeder optimizer finished.
type OptimizerSummary struct {
	Passes     int  `json:"passes"`
	Swaps      int  `json:"swaps"`
	Collisions int  `json:"collisions"`
	Converged  bool `json:"converged"`
}

// GenerateResult represents the result of a generate run.
type GenerateResult struct {
	// RunID tags the log entries of this run
	RunID string `json:"run_id"`

	// Input is the BOM file path
	Input string `json:"input"`

	// Fingerprint is the BOM content hash
	Fingerprint string `json:"fingerprint"`

	// Records is the number of placed components read
	Records int `json:"records"`

	// Parts is the number of distinct part types
	Parts int `json:"parts"`

	// Artifacts lists requested outputs in production order
	Artifacts []Artifact `json:"artifacts"`

	// Optimizer is set when a feeder list was produced
	Optimizer *OptimizerSummary `json:"optimizer,omitempty"`

	// Travel is set when a feeder list was produced
	Travel *feeder.TravelStats `json:"travel,omitempty"`

	// DryRun is true when nothing was written
	DryRun bool `json:"dry_run"`

	// GeneratedAt is the run time
	GeneratedAt time.Time `json:"generated_at"`
}
