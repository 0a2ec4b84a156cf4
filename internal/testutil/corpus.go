package testutil

// Weyl increments for deterministic corpus generation. Odd constants are
// coprime to every power-of-two span, so successive multiples scatter
// across the full range without repeating early.
const (
	weylA = 0x9E3779B1
	weylB = 0x85EBCA77
	weylC = 0xC2B2AE3D
)

// LogSpacedValues returns perBucket deterministic samples from every
// power-of-two bucket [2^e, 2^(e+1)) for e in [loExp, hiExp]. Samples are
// spaced uniformly inside each bucket, making the whole corpus roughly
// uniform in log2(x). Low buckets are narrower than perBucket and contain
// repeated values.
func LogSpacedValues(loExp, hiExp, perBucket int) []uint32 {
	var out []uint32

	for e := loExp; e <= hiExp && e < 32; e++ {
		lo := uint64(1) << uint(e)
		span := lo
		for i := 0; i < perBucket; i++ {
			out = append(out, uint32(lo+span*uint64(i)/uint64(perBucket)))
		}
	}

	return out
}

// ScrambledValues returns n deterministic values in [lo, hi], generated by
// a Weyl sequence. The order is scrambled but reproducible across runs and
// platforms.
func ScrambledValues(lo, hi uint32, n int) []uint32 {
	span := uint64(hi) - uint64(lo) + 1

	out := make([]uint32, n)
	for i := range out {
		out[i] = lo + uint32(uint64(i)*weylA%span)
	}

	return out
}

// ScrambledTriples returns n deterministic coordinate triples with every
// component in [-limit, limit].
func ScrambledTriples(n int, limit int32) [][3]int32 {
	span := 2*uint64(limit) + 1

	out := make([][3]int32, n)
	for i := range out {
		k := uint64(i)
		out[i] = [3]int32{
			int32(int64(k*weylA%span) - int64(limit)),
			int32(int64(k*weylB%span) - int64(limit)),
			int32(int64(k*weylC%span) - int64(limit)),
		}
	}

	return out
}
