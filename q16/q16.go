package q16

import "math/bits"

// Q16 layout constants. A Q16 value stores its real value scaled by 2^16
// in a uint32, so One represents exactly 1.0.
const (
	Shift = 16
	One   = 1 << Shift
)

// Float64 converts a Q16 value to float64.
func Float64(q uint32) float64 {
	return float64(q) / float64(One)
}

// floorLog2 returns floor(log2(x)), the index of the highest set bit.
// The result for x == 0 is -1.
func floorLog2(x uint32) int {
	return 31 - bits.LeadingZeros32(x)
}
