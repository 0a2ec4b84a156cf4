package q16

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fixmath/internal/testutil"
)

func TestDistance3KnownValues(t *testing.T) {
	tests := []struct {
		x, y, z  int32
		expected uint32
	}{
		{0, 0, 0, 0},
		{1, 0, 0, 1},
		{0, 1, 0, 1},
		{0, 0, 1, 1},
		{1, 1, 1, 1},
		{1, 2, 3, 3},
		{3, 4, 0, 4},
		{5, 0, 4, 6},
		{-3, -4, 0, 4},
		{5, 12, 0, 12},
		{6, 8, 0, 9},
		{100, 200, 300, 373},
		{1000, 1000, 1000, 1693},
		{10000, 20000, 25000, 17166},
		{30000, 40000, 0, 38146},
		{40000, 40000, 0, 48828},
		// 46341^2 crosses 2^31, so the reciprocal comes from the top
		// bucket and its coarse seed dominates the result.
		{46341, 0, 0, 32768},
		// Saturated sums always report 65535.
		{1 << 30, 1 << 30, 1 << 30, 65535},
		{-2147483647, 0, 0, 65535},
	}

	for _, tt := range tests {
		if got := Distance3(tt.x, tt.y, tt.z); got != tt.expected {
			t.Fatalf("Distance3(%d, %d, %d) = %d, want %d", tt.x, tt.y, tt.z, got, tt.expected)
		}
	}
}

func TestDistance3SignAndPermutationInvariant(t *testing.T) {
	perms := [6][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}

	for _, tri := range testutil.ScrambledTriples(256, 1<<30) {
		want := Distance3(tri[0], tri[1], tri[2])

		for _, p := range perms {
			for signs := 0; signs < 8; signs++ {
				c := [3]int32{tri[p[0]], tri[p[1]], tri[p[2]]}
				for axis := 0; axis < 3; axis++ {
					if signs&(1<<axis) != 0 {
						c[axis] = -c[axis]
					}
				}

				if got := Distance3(c[0], c[1], c[2]); got != want {
					t.Fatalf("Distance3(%d, %d, %d) = %d, want %d as for (%d, %d, %d)",
						c[0], c[1], c[2], got, want, tri[0], tri[1], tri[2])
				}
			}
		}
	}
}

func TestDistance3SmallCoordinateAccuracy(t *testing.T) {
	// The linear term covers the reciprocal's relative error and the
	// quadratic term covers Q16 quantization of the reciprocal, which
	// scales with the squared magnitude once multiplied back.
	for _, tri := range testutil.ScrambledTriples(2048, 1000) {
		x, y, z := tri[0], tri[1], tri[2]
		exact := math.Sqrt(float64(int64(x)*int64(x) + int64(y)*int64(y) + int64(z)*int64(z)))
		got := float64(Distance3(x, y, z))

		if math.Abs(got-exact) > 0.001*exact+exact*exact/32768+2 {
			t.Fatalf("Distance3(%d, %d, %d) = %v, exact %v beyond bound", x, y, z, got, exact)
		}
	}
}

func TestSqrtKnownValues(t *testing.T) {
	tests := []struct {
		x        uint32
		expected uint32
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{9, 2},
		{16, 4},
		{25, 4},
		{100, 9},
		{144, 11},
		{1024, 32},
		{4096, 64},
		{65536, 256},
		{1000000, 991},
		{16777216, 4096},
		{2147483647, 32767},
		{4294967295, 65535},
	}

	for _, tt := range tests {
		if got := Sqrt(tt.x); got != tt.expected {
			t.Fatalf("Sqrt(%d) = %d, want %d", tt.x, got, tt.expected)
		}
	}
}

func TestSqrtNeverExceedsExact(t *testing.T) {
	corpus := append(
		testutil.LogSpacedValues(0, 31, 256),
		testutil.ScrambledValues(1, math.MaxUint32, 4096)...,
	)

	for _, x := range corpus {
		exact := uint32(math.Sqrt(float64(x)))
		if got := Sqrt(x); got > exact {
			t.Fatalf("Sqrt(%d) = %d exceeds integer square root %d", x, got, exact)
		}
	}
}
