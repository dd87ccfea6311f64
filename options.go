package prismesh

const (
	DEFAULT_XY_EDGE_LENGTH  = 1.0
	DEFAULT_Z_EDGE_LENGTH   = 1.0
	DEFAULT_MIN_CAP_QUALITY = 0.3
	DEFAULT_MERGE_EPSILON   = 1e-9
	RECT_CLASSIFICATION_EPS = 1e-9

	// Grid cells between cancellation polls in the rectangle fast path
	cancelCheckInterval = 256
)

// MesherOptions controls one meshing run. Zero refinement lengths/bands
// disable the corresponding local refinement. Immutable; build through
// NewOptionsBuilder.
type MesherOptions struct {
	// Target edge lengths along the footprint and along Z
	XYEdgeLength float64
	ZEdgeLength  float64

	GenerateBottomCap bool
	GenerateTopCap    bool

	// Local refinement near hole boundaries: cells whose center lies within
	// HoleRefinementBand of a hole ring are regenerated at NearHoleXYLength
	NearHoleXYLength   float64
	HoleRefinementBand float64

	// Same, near the XY projection of constraint segments
	NearSegmentXYLength   float64
	SegmentRefinementBand float64

	// Minimum quality for a paired cap quad to be accepted, in [0,1]
	MinCapQuadQuality float64

	// Keep triangles that failed pairing instead of discarding them
	OutputRejectedCapTriangles bool

	// Vertices closer than this merge into one index
	VertexMergeEpsilon float64
}

// holeRefinement reports whether near-hole refinement is configured
func (o MesherOptions) holeRefinement() bool {
	return o.NearHoleXYLength > 0 && o.HoleRefinementBand > 0
}

// segmentRefinement reports whether near-segment refinement is configured
func (o MesherOptions) segmentRefinement() bool {
	return o.NearSegmentXYLength > 0 && o.SegmentRefinementBand > 0
}

// OptionsBuilder validates on Build and reports every problem at once
type OptionsBuilder struct {
	opts MesherOptions
}

func NewOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{opts: MesherOptions{
		XYEdgeLength:               DEFAULT_XY_EDGE_LENGTH,
		ZEdgeLength:                DEFAULT_Z_EDGE_LENGTH,
		GenerateBottomCap:          true,
		GenerateTopCap:             true,
		MinCapQuadQuality:          DEFAULT_MIN_CAP_QUALITY,
		OutputRejectedCapTriangles: true,
		VertexMergeEpsilon:         DEFAULT_MERGE_EPSILON,
	}}
}

func (b *OptionsBuilder) XYEdgeLength(length float64) *OptionsBuilder {
	b.opts.XYEdgeLength = length
	return b
}

func (b *OptionsBuilder) ZEdgeLength(length float64) *OptionsBuilder {
	b.opts.ZEdgeLength = length
	return b
}

func (b *OptionsBuilder) GenerateBottomCap(enabled bool) *OptionsBuilder {
	b.opts.GenerateBottomCap = enabled
	return b
}

func (b *OptionsBuilder) GenerateTopCap(enabled bool) *OptionsBuilder {
	b.opts.GenerateTopCap = enabled
	return b
}

// NearHoleRefinement enables finer cells within band of a hole boundary
func (b *OptionsBuilder) NearHoleRefinement(length, band float64) *OptionsBuilder {
	b.opts.NearHoleXYLength = length
	b.opts.HoleRefinementBand = band
	return b
}

// NearSegmentRefinement enables finer cells within band of a constraint segment
func (b *OptionsBuilder) NearSegmentRefinement(length, band float64) *OptionsBuilder {
	b.opts.NearSegmentXYLength = length
	b.opts.SegmentRefinementBand = band
	return b
}

func (b *OptionsBuilder) MinCapQuadQuality(quality float64) *OptionsBuilder {
	b.opts.MinCapQuadQuality = quality
	return b
}

func (b *OptionsBuilder) OutputRejectedCapTriangles(enabled bool) *OptionsBuilder {
	b.opts.OutputRejectedCapTriangles = enabled
	return b
}

func (b *OptionsBuilder) VertexMergeEpsilon(epsilon float64) *OptionsBuilder {
	b.opts.VertexMergeEpsilon = epsilon
	return b
}

// Build validates the accumulated options. On failure the returned error
// is a *ValidationError listing every problem.
func (b *OptionsBuilder) Build() (MesherOptions, error) {
	if err := b.opts.validate(); err != nil {
		return MesherOptions{}, err
	}
	return b.opts, nil
}

// validate aggregates every problem with the options. Shared by Build and
// the mesher, so options assembled by hand fail the same way as built ones.
func (o MesherOptions) validate() error {
	v := &validator{}
	o.collectProblems(v)
	return v.err()
}

func (o MesherOptions) collectProblems(v *validator) {
	if o.XYEdgeLength <= 0 {
		v.addf("XY edge length must be > 0, got %g", o.XYEdgeLength)
	}
	if o.ZEdgeLength <= 0 {
		v.addf("Z edge length must be > 0, got %g", o.ZEdgeLength)
	}
	if o.NearHoleXYLength < 0 || o.HoleRefinementBand < 0 {
		v.addf("near-hole refinement values must be >= 0")
	} else if (o.NearHoleXYLength > 0) != (o.HoleRefinementBand > 0) {
		v.addf("near-hole length and band must be set together")
	} else if o.holeRefinement() && o.NearHoleXYLength > o.XYEdgeLength {
		v.addf("near-hole length %g exceeds global XY length %g", o.NearHoleXYLength, o.XYEdgeLength)
	}
	if o.NearSegmentXYLength < 0 || o.SegmentRefinementBand < 0 {
		v.addf("near-segment refinement values must be >= 0")
	} else if (o.NearSegmentXYLength > 0) != (o.SegmentRefinementBand > 0) {
		v.addf("near-segment length and band must be set together")
	} else if o.segmentRefinement() && o.NearSegmentXYLength > o.XYEdgeLength {
		v.addf("near-segment length %g exceeds global XY length %g", o.NearSegmentXYLength, o.XYEdgeLength)
	}
	if o.MinCapQuadQuality < 0 || o.MinCapQuadQuality > 1 {
		v.addf("min cap quad quality must be in [0,1], got %g", o.MinCapQuadQuality)
	}
	if o.VertexMergeEpsilon <= 0 {
		v.addf("vertex merge epsilon must be > 0, got %g", o.VertexMergeEpsilon)
	}
}
