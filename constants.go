package strands

// Size limits
const (
	maxStrands = 1 << 16 // Maximum strand count per animator
	maxSamples = 1 << 16 // Maximum samples per strand
	minSamples = 2       // Both curve endpoints must be sampled
)

// Defaults
const (
	// DefaultStrands is the strand count of the head preset.
	DefaultStrands = 120

	// DefaultSamples is the per-strand resolution used by the presets.
	DefaultSamples = 100
)

// Vertex layout
const (
	coordsPerVertex = 2 // x, y
	bytesPerFloat32 = 4 // Size of float32 in bytes
	bytesPerFloat64 = 8 // Size of float64 in bytes
)

// Head preset geometry (strands hanging from a circle)
const (
	headRadius    = 0.4  // Circle radius in NDC
	headDegree    = 3    // Cubic strands
	headDrop      = 0.25 // Downward step between control points
	headCurl      = 0.05 // Sideways bend of the non-root control points
	headCurlPhase = 0.5  // Angle offset of the bend
)

// Head preset wind
const (
	windAmplitudeX = 0.05
	windAmplitudeY = 0.02
	windFrequency  = 2.0 // rad/s
	windDriftX     = -0.05
	windExponent   = 2.5

	calmAmplitudeScale = 0.5 // Calm preset halves the oscillation

	gustStrength = 0.6
	gustRate     = 0.35
	gustSeed     = 1
)

// Head preset colour (warm brown)
const (
	brownR = 0.55
	brownG = 0.35
	brownB = 0.15

	colorVariation     = 0.1
	colorVariationRate = 0.4
	colorWeightG       = 0.5
	colorWeightB       = 0.2
	depthDarkening     = 0.4

	// Phase span of one half wind period staggers neighbours visibly.
	phaseSpan = 3.141592653589793 // π
)

// Fringe preset (template curve authored in pixel space)
const (
	fringeWidth        = 800.0
	fringeHeight       = 600.0
	fringeStrands      = 64
	fringeScaleFalloff = 0.3
	fringeSpread       = 1.2

	blondR = 0.85
	blondG = 0.7
	blondB = 0.4
)
