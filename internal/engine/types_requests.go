package engine

import "io"

// StdoutPath selects standard output instead of a file.
const StdoutPath = "-"

// GenerateRequest represents a request to produce BOM artifacts.
type GenerateRequest struct {
	// Input is the BOM file path
	Input string

	// PlacementPath is the placement file to write (empty to skip)
	PlacementPath string

	// Sorted orders placement rows by natural designator order
	Sorted bool

	// InventoryPath is the inventory pick list to write (empty to skip)
	InventoryPath string

	// FeederPath is the feeder list to write (empty to skip)
	FeederPath string

	// DryRun computes every artifact without writing any
	DryRun bool

	// Stdout receives artifacts whose path is StdoutPath
	Stdout io.Writer
}

// outputs reports whether at least one artifact was requested.
func (r *GenerateRequest) outputs() bool {
	return r.PlacementPath != "" || r.InventoryPath != "" || r.FeederPath != ""
}
