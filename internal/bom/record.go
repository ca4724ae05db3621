// Package bom reads CAD-generated bill-of-materials files.
//
// A BOM file holds one placed component per line as six whitespace-separated
// tokens: designator, x, y, rotation, value and package. Test points and
// fiducials are dropped during ingestion, and commas inside fields are turned
// into decimal points so the values survive CSV export.
package bom

import (
	"strconv"
	"strings"
)

// typeKeySep joins value and package into a type key.
const typeKeySep = "|"

// Record is one placed component instance.
type Record struct {
	// Designator is the per-instance label (R12, C3, U1)
	Designator string

	// X and Y are the placement coordinates
	X float64
	Y float64

	// Rotation is the placement angle
	Rotation float64

	// TypeKey identifies the component type as "value|package"
	TypeKey string
}

// TypeKey builds the type key for a value and package pair.
func TypeKey(value, pkg string) string {
	return value + typeKeySep + pkg
}

// SplitTypeKey recovers the value and package from a type key.
// A key without a separator is returned as the value with an empty package.
func SplitTypeKey(key string) (value, pkg string) {
	value, pkg, _ = strings.Cut(key, typeKeySep)
	return value, pkg
}

// FormatNumber renders a coordinate or angle in its shortest exact form.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
