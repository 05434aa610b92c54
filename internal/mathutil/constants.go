package mathutil

// Binomial coefficient bounds
const (
	// MaxExactBinomialDegree is the largest n for which every entry of
	// Pascal's row n is below 2^53 and therefore exact in float64.
	// C(56, 28) ≈ 7.65e15 < 2^53 ≈ 9.007e15; C(57, 28) exceeds it.
	MaxExactBinomialDegree = 56
)
