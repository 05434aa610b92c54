// Package testutil provides reusable test helper functions for strand tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-hair-strands/internal/geom"
)

// PointTolerance is the default per-coordinate tolerance for curve points.
const PointTolerance = 1e-14

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f] %v", i, v, minVal, maxVal, msgAndArgs)
		}
	}
	return true
}

// AssertWeightsSumToOne verifies that a set of curve weights forms a
// partition of unity.
func AssertWeightsSumToOne(t *testing.T, weights []float64, tolerance float64) bool {
	t.Helper()
	var sum float64
	for _, w := range weights {
		sum += w
	}
	return assert.InDelta(t, 1.0, sum, tolerance,
		"weights sum to %f, want 1", sum)
}

// AssertMonotonic verifies that a slice is monotonically increasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertStrictlyIncreasing verifies that every element exceeds its predecessor.
func AssertStrictlyIncreasing(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, "not strictly increasing",
				"s[%d]=%f <= s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertPointInDelta verifies both coordinates of a point.
func AssertPointInDelta(t *testing.T, expected, actual geom.Point, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	okX := assert.InDelta(t, expected.X, actual.X, tolerance, msgAndArgs...)
	okY := assert.InDelta(t, expected.Y, actual.Y, tolerance, msgAndArgs...)
	return okX && okY
}

// AssertColorInRange verifies that every channel is displayable.
func AssertColorInRange(t *testing.T, c geom.Color, msgAndArgs ...any) bool {
	t.Helper()
	return AssertAllInRange(t, []float64{c.R, c.G, c.B}, 0, 1, msgAndArgs...)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			fmt.Sprintf("value %f is outside range [%f, %f] %v", value, minVal, maxVal, msgAndArgs))
	}
	return true
}
