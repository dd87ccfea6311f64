package prismesh

import (
	"math"

	"github.com/akmonengine/prismesh/geo"
)

// Structures below this estimated element count run inline without
// progress/scheduling overhead
const TRIVIAL_COMPLEXITY_THRESHOLD = 512

// Complexity is a closed-form, side-effect-free estimate of a run's output
// size. It never executes the meshing pipeline; use it to pick batch
// parallelism or to pre-warn callers about large outputs.
type Complexity struct {
	ZLevels   int
	SideQuads int
	CapCells  int
}

func (c Complexity) Total() int {
	return c.SideQuads + c.CapCells
}

func (c Complexity) Trivial() bool {
	return c.Total() < TRIVIAL_COMPLEXITY_THRESHOLD
}

// EstimateComplexity approximates the element counts from the structure's
// measurements alone. Refinement bands are ignored: the estimate is a
// lower bound when local refinement is enabled.
func EstimateComplexity(def PrismStructureDefinition, opts MesherOptions) Complexity {
	height := def.Top - def.Base
	if height <= 0 || opts.XYEdgeLength <= 0 || opts.ZEdgeLength <= 0 {
		return Complexity{}
	}

	levels := int(math.Ceil(height/opts.ZEdgeLength)) + 1 + len(def.constraintZLevels())

	perimeter := ringLength(def.Footprint)
	for _, hole := range def.Holes {
		perimeter += ringLength(hole)
	}
	sideQuads := int(math.Ceil(perimeter/opts.XYEdgeLength)) * (levels - 1)

	cellArea := opts.XYEdgeLength * opts.XYEdgeLength
	capArea := def.Footprint.Area()
	for _, hole := range def.Holes {
		capArea -= hole.Area()
	}
	capArea = max(0, capArea)

	capCells := 0
	if opts.GenerateBottomCap {
		capCells += int(math.Ceil(capArea / cellArea))
	}
	if opts.GenerateTopCap {
		capCells += int(math.Ceil(capArea / cellArea))
	}
	for _, s := range def.InternalSurfaces {
		area := s.Outline.Area()
		for _, hole := range s.Holes {
			area -= hole.Area()
		}
		capCells += int(math.Ceil(max(0, area) / cellArea))
	}

	return Complexity{ZLevels: levels, SideQuads: sideQuads, CapCells: capCells}
}

func ringLength(p geo.Polygon2D) float64 {
	length := 0.0
	for _, e := range p.Edges() {
		length += e.Length()
	}
	return length
}
