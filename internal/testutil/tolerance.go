package testutil

import (
	"math"
	"testing"
)

// RefInvSqrt returns the float64 reference 2^16/sqrt(x) that the Q16
// estimator approximates.
func RefInvSqrt(x uint32) float64 {
	return 65536 / math.Sqrt(float64(x))
}

// RequireWithinRel fails t unless got is within relTol of want in relative
// terms. want must be nonzero.
func RequireWithinRel(t *testing.T, got, want, relTol float64, context string) {
	t.Helper()
	if math.Abs(got-want) > relTol*math.Abs(want) {
		t.Fatalf("%s: got %v, want %v within relative tolerance %v", context, got, want, relTol)
	}
}

// RequireFinite fails t if any value is NaN or infinite.
func RequireFinite(t *testing.T, vals ...float64) {
	t.Helper()
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("value %d: non-finite %v", i, v)
		}
	}
}
