// Package q16 implements an integer-only reciprocal square root in Q16
// fixed-point arithmetic, with a derived 3D Euclidean distance.
//
// The estimator combines a 32-entry seed table (one entry per power-of-two
// bucket), linear interpolation inside the bucket, and two fixed-point
// Newton-Raphson refinement steps. All arithmetic is integer; every multiply
// that can exceed 32 bits is widened to 64 bits before it happens. This
// keeps the package usable on targets without hardware floating point and
// on hot paths where floating point is unwelcome.
//
// A Q16 value is a uint32 interpreted as value/2^16, so One (65536)
// represents exactly 1.0. InvSqrt takes a plain unscaled integer and
// returns 2^16/sqrt(x) as Q16, truncated low.
//
// No function here returns an error. Out-of-domain inputs degrade by
// saturation instead: InvSqrt(0) returns the maximum uint32, and Distance3
// clamps its sum of squares to 32 bits before estimating.
//
// # Usage
//
//	r := q16.InvSqrt(1000000) // 65, i.e. about 0.000992
//	d := q16.Distance3(1, 2, 3) // 3, floor of sqrt(14)
//
// # Accuracy
//
// The estimator never exceeds the true value, and it is exact at powers of
// four. Relative error stays below 0.1% while the result is large enough
// for Q16 quantization not to dominate (inputs up to a few thousand); for
// larger inputs the undershoot approaches one ulp of the result, which for
// inputs near 2^32 is most of the value. Callers needing a picture of the
// error profile over a given range can use the measure/accuracy package.
package q16
