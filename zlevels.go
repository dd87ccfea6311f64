package prismesh

import (
	"math"
	"sort"
)

// Elevations closer than this are one level
const levelEpsilon = 1e-9

// buildZLevels computes the ascending, deduplicated elevations subdividing
// the prism: base, top and every in-range anchor are always present, with
// evenly spaced levels inserted so no gap exceeds targetZ.
func buildZLevels(base, top, targetZ float64, anchors []float64) ([]float64, error) {
	if top <= base {
		return nil, ErrInvalidRange
	}

	raw := make([]float64, 0, len(anchors)+2)
	raw = append(raw, base, top)
	for _, z := range anchors {
		if z > base+levelEpsilon && z < top-levelEpsilon {
			raw = append(raw, z)
		}
	}
	sort.Float64s(raw)

	// Dedupe anchors within epsilon
	keys := raw[:1]
	for _, z := range raw[1:] {
		if z-keys[len(keys)-1] > levelEpsilon {
			keys = append(keys, z)
		}
	}

	// Fill each anchor gap so no step exceeds targetZ
	levels := make([]float64, 0, len(keys))
	for i := 0; i < len(keys)-1; i++ {
		lo, hi := keys[i], keys[i+1]
		gap := hi - lo
		steps := 1
		if targetZ < gap {
			steps = int(math.Ceil(gap / targetZ))
		}
		for s := 0; s < steps; s++ {
			levels = append(levels, lo+gap*float64(s)/float64(steps))
		}
	}
	levels = append(levels, keys[len(keys)-1])

	return levels, nil
}
