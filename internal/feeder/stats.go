package feeder

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// TravelStats summarizes how far parts sit from the table home slot,
// weighted by the number of placements fed from each slot.
type TravelStats struct {
	MeanDistance   float64 `json:"mean_distance"`
	StdDevDistance float64 `json:"stddev_distance"`
	Placements     int     `json:"placements"`
}

// Travel computes pick travel statistics for an assignment table.
func Travel(assignments []Assignment, home int) TravelStats {
	if len(assignments) == 0 {
		return TravelStats{}
	}

	dist := make([]float64, len(assignments))
	weights := make([]float64, len(assignments))
	total := 0
	for i, a := range assignments {
		dist[i] = math.Abs(float64(a.Slot - home))
		weights[i] = float64(a.Part.Quantity)
		total += a.Part.Quantity
	}

	ts := TravelStats{
		MeanDistance: stat.Mean(dist, weights),
		Placements:   total,
	}
	// the weighted estimator divides by (sum of weights - 1)
	if total > 1 {
		ts.StdDevDistance = stat.StdDev(dist, weights)
	}
	return ts
}
