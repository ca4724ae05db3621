// Package engine orchestrates bomsort runs.
//
// The engine sits between the CLI and the pipeline packages. A run loads the
// BOM once, derives the requested artifacts from it, and writes each artifact
// atomically. Ingestion failures abort the run; a failure while producing one
// artifact does not stop the others.
//
// Key components:
//   - Engine: holds the filesystem, hasher, clock, report writer and config
//   - Load: reads, fingerprints and aggregates a BOM
//   - Placement/Inventory/Feeders: build the three artifact tables
//   - Generate: produces and writes any subset of the artifacts
package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/invectorlabs/bomsort/internal/bom"
	"github.com/invectorlabs/bomsort/internal/clock"
	"github.com/invectorlabs/bomsort/internal/config"
	"github.com/invectorlabs/bomsort/internal/feeder"
	"github.com/invectorlabs/bomsort/internal/fsops"
	"github.com/invectorlabs/bomsort/internal/hash"
	"github.com/invectorlabs/bomsort/internal/report"
)

// Engine orchestrates all bomsort operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs     fsops.FS
	hasher hash.Hasher
	clock  clock.Clock
	writer report.Writer
	cfg    *config.Config
	logger *zap.Logger
}

// New creates a new Engine with the given dependencies.
func New(
	fs fsops.FS,
	hasher hash.Hasher,
	clk clock.Clock,
	writer report.Writer,
	cfg *config.Config,
	logger *zap.Logger,
) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		fs:     fs,
		hasher: hasher,
		clock:  clk,
		writer: writer,
		cfg:    cfg,
		logger: logger,
	}
}

// Board is a loaded BOM together with its aggregated parts.
type Board struct {
	// Path is the BOM file the board was read from
	Path string

	// Fingerprint is the content hash of the BOM file
	Fingerprint string

	// Records are the placed components in file order
	Records []bom.Record

	// Parts are the aggregated part types in first-occurrence order
	Parts []feeder.Part
}

// Load reads, fingerprints and aggregates the BOM at path.
func (e *Engine) Load(ctx context.Context, path string) (*Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src := bom.NewFileSource(e.fs, path, bom.NewParser(e.cfg.BOM.FilterPrefixes))
	content, err := src.Content()
	if err != nil {
		return nil, err
	}
	records, err := src.Records()
	if err != nil {
		return nil, err
	}

	board := &Board{
		Path:        path,
		Fingerprint: e.hasher.Hash(content),
		Records:     records,
		Parts:       feeder.Aggregate(records),
	}
	e.logger.Info("bom loaded",
		zap.String("path", path),
		zap.Int("records", len(board.Records)),
		zap.Int("parts", len(board.Parts)),
		zap.String("fingerprint", board.Fingerprint))
	return board, nil
}

// Placement builds the placement table, optionally in natural designator order.
func (e *Engine) Placement(b *Board, sorted bool) report.Table {
	records := b.Records
	if sorted {
		records = bom.SortNatural(records)
	}
	return report.Placement(records)
}

// Inventory builds the inventory pick list.
func (e *Engine) Inventory(b *Board) report.Table {
	return report.Inventory(b.Parts)
}

// FeederPlan is a computed feeder assignment.
type FeederPlan struct {
	Table     report.Table
	Optimizer feeder.OptimizeResult
	Travel    feeder.TravelStats
}

// Feeders distributes the board's parts over the feeder table and optimizes
// the result.
func (e *Engine) Feeders(b *Board) (*FeederPlan, error) {
	if len(b.Parts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoParts, b.Path)
	}

	table := e.cfg.FeederTable()
	assignments := feeder.Distribute(b.Parts, table)
	result := feeder.NewOptimizer(table, e.cfg.Optimizer.MaxPasses, e.logger).Optimize(assignments)

	return &FeederPlan{
		Table:     report.FeederList(result.Assignments),
		Optimizer: result,
		Travel:    feeder.Travel(result.Assignments, table.Home()),
	}, nil
}
