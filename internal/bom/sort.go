package bom

import (
	"sort"

	"github.com/maruel/natural"
)

// SortNatural returns a copy of records ordered by designator with numeric
// runs compared by value, so C2 sorts before C10.
func SortNatural(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return natural.Less(sorted[i].Designator, sorted[j].Designator)
	})
	return sorted
}
