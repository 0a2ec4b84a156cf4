package q16

// Sqrt returns an integer approximation of sqrt(x), reconstructed from the
// reciprocal square root as (InvSqrt(x)*x) >> 16. The result never exceeds
// floor(sqrt(x)); truncation can undershoot it (Sqrt(25) is 4).
func Sqrt(x uint32) uint32 {
	return uint32(uint64(InvSqrt(x)) * uint64(x) >> Shift)
}

// Distance3 returns an integer approximation of the Euclidean distance
// sqrt(x^2+y^2+z^2).
//
// The sum of squares is computed in 64 bits and saturates at the maximum
// uint32 before estimating, so out-of-range magnitudes degrade to the
// saturated distance 65535 instead of wrapping.
func Distance3(x, y, z int32) uint32 {
	sumSq := uint64(int64(x)*int64(x)) +
		uint64(int64(y)*int64(y)) +
		uint64(int64(z)*int64(z))
	if sumSq > 0xFFFFFFFF {
		sumSq = 0xFFFFFFFF
	}

	s := uint32(sumSq)

	return uint32(uint64(InvSqrt(s)) * uint64(s) >> Shift)
}
