package accuracy

import "math"

// StreamingStats accumulates relative-error statistics incrementally, for
// corpora too large to hold in memory. The zero value is ready to use.
// Moments use Welford's online algorithm for numerical stability.
type StreamingStats struct {
	n          int
	mean       float64
	m2         float64
	sumSq      float64
	worstAbs   float64
	worstInput uint32
}

// Update folds the relative error of every non-zero value into the
// accumulator. Zero values are skipped.
func (s *StreamingStats) Update(xs []uint32) {
	for _, x := range xs {
		if x == 0 {
			continue
		}

		s.add(x, relError(x))
	}
}

// Reset clears the accumulator for reuse.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}

// Result reports the statistics accumulated so far. Ripple fields stay
// zero; spectrum analysis needs the ordered sweep that Calculator.Analyze
// performs.
func (s *StreamingStats) Result() Result {
	if s.n == 0 {
		return Result{}
	}

	nf := float64(s.n)
	rms := mathSqrt(s.sumSq / nf)

	variance := 0.0
	if s.n > 1 {
		variance = s.m2 / nf
	}

	effBits := math.Inf(1)
	if s.worstAbs > 0 {
		effBits = -mathLog2(s.worstAbs)
	}

	return Result{
		Points:         s.n,
		WorstInput:     s.worstInput,
		MaxRelError:    s.worstAbs,
		MaxRelError_dB: ratioToDB(s.worstAbs),
		RMSRelError:    rms,
		RMSRelError_dB: ratioToDB(rms),
		Bias:           s.mean,
		StdDev:         mathSqrt(variance),
		EffectiveBits:  effBits,
	}
}

func (s *StreamingStats) add(x uint32, e float64) {
	s.n++

	delta := e - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (e - s.mean)
	s.sumSq += e * e

	if s.n == 1 || math.Abs(e) > s.worstAbs {
		s.worstAbs = math.Abs(e)
		s.worstInput = x
	}
}
