package accuracy

import (
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-fixmath/q16"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultMinValue        = 1 << 16
	defaultMaxValue        = math.MaxUint32
	defaultPointsPerOctave = 64

	minRippleSamples = 4
)

// Config holds sweep analysis parameters.
type Config struct {
	// MinValue and MaxValue bound the swept input range. Zero selects the
	// defaults [1<<16, 1<<32).
	MinValue uint32
	MaxValue uint32

	// PointsPerOctave is the sampling density per power-of-two bucket.
	PointsPerOctave int

	// SpectrumSize is the FFT size for ripple analysis. Zero picks the
	// largest power of two not exceeding the sweep length; a negative
	// value disables spectrum analysis.
	SpectrumSize int
}

// Result holds sweep analysis results.
//
//nolint:revive
type Result struct {
	Points         int
	WorstInput     uint32
	MaxRelError    float64
	MaxRelError_dB float64
	RMSRelError    float64
	RMSRelError_dB float64
	Bias           float64
	StdDev         float64
	EffectiveBits  float64

	RippleLevel           float64
	RippleCyclesPerOctave float64
}

// Calculator performs error analysis sweeps.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a new accuracy calculator.
func NewCalculator(cfg Config) *Calculator {
	cfg = normalizeConfig(cfg)
	return &Calculator{cfg: cfg}
}

// Analyze is a one-shot sweep analysis.
func Analyze(cfg Config) Result {
	return NewCalculator(cfg).Analyze()
}

// AnalyzeValues is a one-shot statistics pass over a caller-supplied corpus.
func AnalyzeValues(xs []uint32, cfg Config) Result {
	return NewCalculator(cfg).AnalyzeValues(xs)
}

// Analyze sweeps the configured range uniformly in log2(x) and reports
// error statistics plus the periodic structure of the error series.
func (c *Calculator) Analyze() Result {
	xs := c.sweepValues()

	res := c.AnalyzeValues(xs)
	if res.Points == 0 {
		return res
	}

	errs := make([]float64, 0, len(xs))
	for _, x := range xs {
		errs = append(errs, relError(x))
	}

	res.RippleLevel, res.RippleCyclesPerOctave = c.analyzeRipple(errs)

	return res
}

// AnalyzeValues computes error statistics over a caller-supplied corpus.
// Zero values are skipped; they report the saturation policy rather than
// approximation error. Ripple fields stay zero because an arbitrary corpus
// has no log-uniform ordering to transform.
func (c *Calculator) AnalyzeValues(xs []uint32) Result {
	var stats StreamingStats
	stats.Update(xs)

	return stats.Result()
}

// sweepValues samples the configured range uniformly in log2(x). Dense low
// buckets produce repeated integers after rounding; consecutive duplicates
// are collapsed.
func (c *Calculator) sweepValues() []uint32 {
	cfg := c.cfg

	loExp := 31 - bits.LeadingZeros32(cfg.MinValue)
	hiExp := 31 - bits.LeadingZeros32(cfg.MaxValue)

	out := make([]uint32, 0, (hiExp-loExp+1)*cfg.PointsPerOctave)

	for e := loExp; e <= hiExp; e++ {
		for i := 0; i < cfg.PointsPerOctave; i++ {
			exp := float64(e) + float64(i)/float64(cfg.PointsPerOctave)

			v := uint64(math.Round(mathPower2(exp)))
			if v < uint64(cfg.MinValue) || v > uint64(cfg.MaxValue) {
				continue
			}

			x := uint32(v)
			if len(out) > 0 && out[len(out)-1] == x {
				continue
			}

			out = append(out, x)
		}
	}

	return out
}

// analyzeRipple locates the dominant periodic component of the mean-removed
// error series. The returned level is the component amplitude; the rate is
// expressed in cycles per octave of the swept input.
//
//nolint:funlen
func (c *Calculator) analyzeRipple(errs []float64) (float64, float64) {
	if c.cfg.SpectrumSize < 0 || len(errs) < minRippleSamples {
		return 0, 0
	}

	fftSize := c.cfg.SpectrumSize
	if fftSize == 0 {
		fftSize = prevPowerOf2(len(errs))
	}

	if fftSize < minRippleSamples {
		return 0, 0
	}

	n := min(len(errs), fftSize)

	mean := 0.0
	for _, e := range errs[:n] {
		mean += e
	}

	mean /= float64(n)

	inData := make([]complex128, fftSize)
	for i, e := range errs[:n] {
		inData[i] = complex(e-mean, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, 0
	}

	out := make([]complex128, fftSize)

	if err := plan.Forward(out, inData); err != nil {
		return 0, 0
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	bestBin := 0
	bestMag := 0.0

	for k := 1; k < bins; k++ {
		if mag[k] > bestMag {
			bestMag = mag[k]
			bestBin = k
		}
	}

	if bestBin == 0 {
		return 0, 0
	}

	level := 2 * bestMag / float64(n)
	cycles := float64(bestBin) * float64(c.cfg.PointsPerOctave) / float64(fftSize)

	return level, cycles
}

// relError is the signed relative error of the fixed-point reciprocal
// square root against the float reference, for x > 0.
func relError(x uint32) float64 {
	ref := 65536 / mathSqrt(float64(x))
	return (float64(q16.InvSqrt(x)) - ref) / ref
}

func normalizeConfig(cfg Config) Config {
	if cfg.MinValue == 0 {
		cfg.MinValue = defaultMinValue
	}

	if cfg.MaxValue == 0 {
		cfg.MaxValue = defaultMaxValue
	}

	if cfg.MaxValue < cfg.MinValue {
		cfg.MaxValue = cfg.MinValue
	}

	if cfg.PointsPerOctave <= 0 {
		cfg.PointsPerOctave = defaultPointsPerOctave
	}

	return cfg
}

func ratioToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}

func prevPowerOf2(n int) int {
	p := 1
	for p*2 <= n {
		p <<= 1
	}

	return p
}
