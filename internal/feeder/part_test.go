package feeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invectorlabs/bomsort/internal/bom"
)

func TestAggregate(t *testing.T) {
	records := []bom.Record{
		{Designator: "R1", X: 1, Y: 2, Rotation: 90, TypeKey: "10k|0603"},
		{Designator: "R2", X: 3, Y: 4, TypeKey: "10k|0603"},
		{Designator: "C1", X: 5, Y: 6, TypeKey: "100n|0402"},
		{Designator: "R3", TypeKey: "10k|0603"},
		{Designator: "C2", TypeKey: "100n|0603"},
	}

	parts := Aggregate(records)
	require.Len(t, parts, 3)

	assert.Equal(t, Part{Designator: "R1", X: 1, Y: 2, Rotation: 90, TypeKey: "10k|0603", Quantity: 3}, parts[0])
	assert.Equal(t, "C1", parts[1].Designator)
	assert.Equal(t, 1, parts[1].Quantity)
	assert.Equal(t, "100n|0603", parts[2].TypeKey)
}

func TestAggregate_Conservation(t *testing.T) {
	var records []bom.Record
	keys := []string{"a|x", "b|x", "a|y", "c|z"}
	for i := 0; i < 97; i++ {
		records = append(records, bom.Record{TypeKey: keys[(i*i+3)%len(keys)]})
	}

	parts := Aggregate(records)
	assert.Equal(t, len(records), TotalQuantity(parts))

	seen := make(map[string]bool)
	for _, p := range parts {
		assert.False(t, seen[p.TypeKey], "type key %s aggregated twice", p.TypeKey)
		seen[p.TypeKey] = true
	}
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}

func TestRankByQuantity_Stable(t *testing.T) {
	parts := []Part{
		{TypeKey: "a", Quantity: 2},
		{TypeKey: "b", Quantity: 5},
		{TypeKey: "c", Quantity: 2},
		{TypeKey: "d", Quantity: 5},
	}

	ranked := rankByQuantity(parts)
	assert.Equal(t, []string{"b", "d", "a", "c"}, typeKeys(ranked))
	assert.Equal(t, "a", parts[0].TypeKey)
}

func typeKeys(parts []Part) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.TypeKey
	}
	return out
}
