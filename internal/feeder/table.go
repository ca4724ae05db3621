package feeder

import (
	"errors"
	"fmt"
)

// ErrInvalidTable indicates an inconsistent feeder table definition.
var ErrInvalidTable = errors.New("invalid feeder table")

const (
	// DefaultSlots is the number of front-row feeder positions.
	DefaultSlots = 38

	// DefaultLowerHalfEnd is the last sequence index handled by the
	// lower-half swap rule.
	DefaultLowerHalfEnd = 17
)

// FeederWidth describes how many 8mm positions a feeder occupies around its
// base slot.
//
// Widths are carried as configuration only; slot allocation treats every
// feeder as one position wide.
type FeederWidth struct {
	Width int `yaml:"width" json:"width"`
	Above int `yaml:"above" json:"above"`
	Below int `yaml:"below" json:"below"`
}

// DefaultFeederWidths lists the 8, 12 and 16mm feeders of the machine.
func DefaultFeederWidths() []FeederWidth {
	return []FeederWidth{
		{Width: 8, Above: 0, Below: 0},
		{Width: 12, Above: 1, Below: 0},
		{Width: 16, Above: 1, Below: 0},
	}
}

// Table is the physical feeder table of one machine row.
type Table struct {
	// Slots is the number of feeder positions
	Slots int

	// Pattern maps rank to slot: the i-th most used part goes to Pattern[i]
	Pattern []int

	// LowerHalfEnd splits the optimizer swap rule between the two table halves
	LowerHalfEnd int

	// FeederWidths is the feeder width table (not used for allocation)
	FeederWidths []FeederWidth
}

// DefaultTable returns the 38-slot front row with a center-out pattern.
func DefaultTable() Table {
	return Table{
		Slots:        DefaultSlots,
		Pattern:      CenterOutPattern(DefaultSlots),
		LowerHalfEnd: DefaultLowerHalfEnd,
		FeederWidths: DefaultFeederWidths(),
	}
}

// CenterOutPattern returns slot indices starting at the middle of an n-slot
// table and alternating outward, one step down then one step up.
// For 38 slots: 19, 18, 20, 17, 21, ... 1, 37, 0.
func CenterOutPattern(n int) []int {
	if n <= 0 {
		return nil
	}
	center := n / 2
	pattern := make([]int, 0, n)
	pattern = append(pattern, center)
	for k := 1; len(pattern) < n; k++ {
		if center-k >= 0 {
			pattern = append(pattern, center-k)
		}
		if center+k < n {
			pattern = append(pattern, center+k)
		}
	}
	return pattern
}

// Home returns the slot given to the highest ranked part.
func (t Table) Home() int {
	if len(t.Pattern) == 0 {
		return 0
	}
	return t.Pattern[0]
}

// Validate checks that the pattern is a permutation of the table slots.
func (t Table) Validate() error {
	if t.Slots <= 0 {
		return fmt.Errorf("%w: slots must be positive, got %d", ErrInvalidTable, t.Slots)
	}
	if len(t.Pattern) != t.Slots {
		return fmt.Errorf("%w: pattern has %d entries for %d slots", ErrInvalidTable, len(t.Pattern), t.Slots)
	}
	seen := make([]bool, t.Slots)
	for _, slot := range t.Pattern {
		if slot < 0 || slot >= t.Slots {
			return fmt.Errorf("%w: pattern slot %d out of range [0, %d]", ErrInvalidTable, slot, t.Slots-1)
		}
		if seen[slot] {
			return fmt.Errorf("%w: pattern repeats slot %d", ErrInvalidTable, slot)
		}
		seen[slot] = true
	}
	if t.LowerHalfEnd < 0 || t.LowerHalfEnd >= t.Slots {
		return fmt.Errorf("%w: lower half end %d out of range", ErrInvalidTable, t.LowerHalfEnd)
	}
	for _, w := range t.FeederWidths {
		if w.Width <= 0 || w.Above < 0 || w.Below < 0 {
			return fmt.Errorf("%w: bad feeder width entry %+v", ErrInvalidTable, w)
		}
	}
	return nil
}
