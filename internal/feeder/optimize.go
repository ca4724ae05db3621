package feeder

import "go.uber.org/zap"

// DefaultMaxPasses bounds the number of optimizer passes.
const DefaultMaxPasses = 200

// OptimizeResult is the outcome of an optimizer run.
type OptimizeResult struct {
	// Assignments is the optimized table in ascending slot order
	Assignments []Assignment

	// Passes is the number of full scans performed
	Passes int

	// Swaps is the total number of swaps applied
	Swaps int

	// Collisions is the number of neighbouring same-type pairs left
	Collisions int

	// Converged is true when no neighbouring feeders share a part type
	Converged bool
}

// Optimizer separates neighbouring feeders holding the same part type.
//
// Each pass scans the slot-ordered table and, for every neighbouring pair
// (i, i+1) sharing a type key, applies one swap:
//   - lower half (i <= LowerHalfEnd): swap i-1 and i, or i+1 and i+2 when i == 0
//   - upper half: swap i+1 and i+2, or i-1 and i on the last pair
//
// Swaps exchange the parts held by two positions; the occupied slots never
// change. Passes repeat until one makes no swap or the pass budget runs out.
// The rule is a heuristic and a swap may create a collision elsewhere.
type Optimizer struct {
	lowerHalfEnd int
	maxPasses    int
	logger       *zap.Logger
}

// NewOptimizer creates an Optimizer for the given table.
// A non-positive maxPasses selects DefaultMaxPasses; a nil logger is replaced
// by a no-op logger.
func NewOptimizer(table Table, maxPasses int, logger *zap.Logger) *Optimizer {
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Optimizer{
		lowerHalfEnd: table.LowerHalfEnd,
		maxPasses:    maxPasses,
		logger:       logger,
	}
}

// Optimize runs passes over a private copy of assignments.
func (o *Optimizer) Optimize(assignments []Assignment) OptimizeResult {
	table := make([]Assignment, len(assignments))
	copy(table, assignments)

	result := OptimizeResult{}
	for result.Passes < o.maxPasses {
		swaps := o.pass(table)
		result.Passes++
		result.Swaps += swaps
		o.logger.Debug("optimizer pass",
			zap.Int("pass", result.Passes),
			zap.Int("swaps", swaps))
		if swaps == 0 {
			break
		}
	}

	result.Assignments = table
	result.Collisions = Collisions(table)
	result.Converged = result.Collisions == 0
	if !result.Converged {
		o.logger.Warn("optimizer did not converge",
			zap.Int("passes", result.Passes),
			zap.Int("collisions", result.Collisions))
	}
	return result
}

// pass performs one scan and returns the number of swaps made.
func (o *Optimizer) pass(table []Assignment) int {
	swaps := 0
	n := len(table)
	for i := 0; i < n-1; i++ {
		if table[i].Part.TypeKey != table[i+1].Part.TypeKey {
			continue
		}
		a, b, ok := o.swapTarget(i, n)
		if !ok {
			continue
		}
		table[a].Part, table[b].Part = table[b].Part, table[a].Part
		swaps++
	}
	return swaps
}

// swapTarget picks the two positions to exchange for a collision at (i, i+1).
func (o *Optimizer) swapTarget(i, n int) (int, int, bool) {
	if i <= o.lowerHalfEnd {
		if i > 0 {
			return i - 1, i, true
		}
		if n > 2 {
			return 1, 2, true
		}
		// two entries of one type: nothing to swap with
		return 0, 0, false
	}
	if i+2 >= n {
		return i - 1, i, true
	}
	return i + 1, i + 2, true
}

// Collisions counts neighbouring assignments that share a type key.
func Collisions(assignments []Assignment) int {
	count := 0
	for i := 0; i+1 < len(assignments); i++ {
		if assignments[i].Part.TypeKey == assignments[i+1].Part.TypeKey {
			count++
		}
	}
	return count
}
