// Package feeder assigns aggregated BOM parts to pick-and-place feeder slots.
//
// The pipeline runs leaves first and every stage returns a freshly owned
// slice, so no stage mutates another stage's output:
//   - Aggregate: collapse component records into part types with quantities
//   - Split: give dominant part types a second "double-pick" feeder
//   - Distribute: rank parts and place them center-out on the feeder table
//   - Optimizer: swap parts until no two neighbouring feeders hold the same type
//
// The table is a single front row of a single machine.
package feeder
