package engine

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/invectorlabs/bomsort/internal/logging"
	"github.com/invectorlabs/bomsort/internal/report"
)

// Algorithm steps:
// 1. Validate the request
// 2. Load the BOM (any failure aborts the run)
// 3. For each requested artifact: build the table, render, write atomically
// 4. Collect per-artifact failures without stopping the others
// 5. Return the result and the joined artifact errors
func (e *Engine) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error) {
	if !req.outputs() {
		return nil, fmt.Errorf("%w: no output requested", ErrValidation)
	}
	if req.Input == "" {
		return nil, fmt.Errorf("%w: no input file", ErrValidation)
	}

	logger, runID := logging.WithRun(e.logger)
	run := *e
	run.logger = logger

	board, err := run.Load(ctx, req.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to load BOM: %w", err)
	}

	result := &GenerateResult{
		RunID:       runID,
		Input:       board.Path,
		Fingerprint: board.Fingerprint,
		Records:     len(board.Records),
		Parts:       len(board.Parts),
		Artifacts:   []Artifact{},
		DryRun:      req.DryRun,
		GeneratedAt: e.clock.Now(),
	}

	var errs []error
	emit := func(kind report.Kind, path string, build func() (report.Table, error)) {
		if path == "" {
			return
		}
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			return
		}
		artifact, err := run.produce(kind, path, req, build)
		if err != nil {
			artifact.Error = err.Error()
			errs = append(errs, fmt.Errorf("%s: %w", kind, err))
		}
		result.Artifacts = append(result.Artifacts, artifact)
	}

	emit(report.KindPlacement, req.PlacementPath, func() (report.Table, error) {
		return run.Placement(board, req.Sorted), nil
	})
	emit(report.KindInventory, req.InventoryPath, func() (report.Table, error) {
		return run.Inventory(board), nil
	})
	emit(report.KindFeeders, req.FeederPath, func() (report.Table, error) {
		plan, err := run.Feeders(board)
		if err != nil {
			return report.Table{}, err
		}
		result.Optimizer = &OptimizerSummary{
			Passes:     plan.Optimizer.Passes,
			Swaps:      plan.Optimizer.Swaps,
			Collisions: plan.Optimizer.Collisions,
			Converged:  plan.Optimizer.Converged,
		}
		travel := plan.Travel
		result.Travel = &travel
		return plan.Table, nil
	})

	return result, errors.Join(errs...)
}

// produce builds, renders and writes one artifact.
func (e *Engine) produce(kind report.Kind, path string, req *GenerateRequest, build func() (report.Table, error)) (Artifact, error) {
	artifact := Artifact{Kind: kind, Path: path}

	table, err := build()
	if err != nil {
		return artifact, err
	}
	artifact.Rows = len(table.Rows)

	data, err := report.Render(e.writer, table)
	if err != nil {
		return artifact, fmt.Errorf("failed to render: %w", err)
	}
	if req.DryRun {
		return artifact, nil
	}

	if path == StdoutPath {
		if req.Stdout == nil {
			return artifact, fmt.Errorf("%w: no stdout writer for %s", ErrValidation, kind)
		}
		if _, err := req.Stdout.Write(data); err != nil {
			return artifact, fmt.Errorf("failed to write to stdout: %w", err)
		}
	} else if err := e.fs.AtomicWrite(path, data, 0644); err != nil {
		return artifact, fmt.Errorf("failed to write %s: %w", path, err)
	}

	artifact.Written = true
	e.logger.Info("artifact written",
		zap.String("kind", string(kind)),
		zap.String("path", path),
		zap.Int("rows", artifact.Rows))
	return artifact, nil
}
