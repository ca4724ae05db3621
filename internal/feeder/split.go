package feeder

// Split gives every candidate whose quantity exceeds half of cnt a second
// feeder entry. The original entry keeps floor(q/2) and the appended entry
// carries the remainder, so for odd q the new entry is the larger one.
// Parts with a single instance are never split. candidates is not modified.
func Split(candidates []Part, cnt int) []Part {
	out := make([]Part, len(candidates), len(candidates)*2)
	copy(out, candidates)

	var extra []Part
	for i := range out {
		q := out[i].Quantity
		if q < 2 || 2*q <= cnt {
			continue
		}
		out[i].Quantity = q / 2
		dup := out[i]
		dup.Quantity = q - q/2
		extra = append(extra, dup)
	}

	return append(out, extra...)
}
