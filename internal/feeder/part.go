package feeder

import (
	"sort"

	"github.com/invectorlabs/bomsort/internal/bom"
)

// Part is one distinct component type with the number of instances placed.
// Designator and position are copied from the first instance seen.
type Part struct {
	Designator string
	X          float64
	Y          float64
	Rotation   float64
	TypeKey    string
	Quantity   int
}

// Aggregate collapses records sharing a type key into parts. Parts are
// returned in first-occurrence order.
func Aggregate(records []bom.Record) []Part {
	parts := make([]Part, 0)
	index := make(map[string]int)
	for _, rec := range records {
		if i, ok := index[rec.TypeKey]; ok {
			parts[i].Quantity++
			continue
		}
		index[rec.TypeKey] = len(parts)
		parts = append(parts, Part{
			Designator: rec.Designator,
			X:          rec.X,
			Y:          rec.Y,
			Rotation:   rec.Rotation,
			TypeKey:    rec.TypeKey,
			Quantity:   1,
		})
	}
	return parts
}

// TotalQuantity sums the quantity of every part.
func TotalQuantity(parts []Part) int {
	total := 0
	for _, p := range parts {
		total += p.Quantity
	}
	return total
}

// rankByQuantity returns a copy of parts ordered by descending quantity.
// Equal quantities keep their relative order.
func rankByQuantity(parts []Part) []Part {
	ranked := make([]Part, len(parts))
	copy(ranked, parts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	return ranked
}
