package feeder

import "sort"

// Assignment places a part on a feeder slot.
type Assignment struct {
	Part Part

	// Slot is the zero-based table position
	Slot int
}

// Feeder returns the 1-indexed feeder number printed for operators.
func (a Assignment) Feeder() int {
	return a.Slot + 1
}

// Distribute ranks parts by quantity, keeps as many as the table holds,
// splits dominant parts, and places the ranked entries on the table pattern.
// The result is ordered by ascending slot.
//
// Split entries beyond the original candidate count take the next unused
// pattern positions; entries that find no position are dropped.
func Distribute(parts []Part, table Table) []Assignment {
	ranked := rankByQuantity(parts)
	cnt := min(len(ranked), table.Slots)

	entries := rankByQuantity(Split(ranked[:cnt], cnt))
	n := min(len(entries), len(table.Pattern))

	assignments := make([]Assignment, n)
	for i := 0; i < n; i++ {
		assignments[i] = Assignment{Part: entries[i], Slot: table.Pattern[i]}
	}

	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].Slot < assignments[j].Slot
	})
	return assignments
}
