// Package accuracy measures the approximation quality of the fixed-point
// reciprocal square root against a floating-point reference.
//
// The analyzer sweeps inputs uniformly in log2(x), so every power-of-two
// bucket contributes the same number of samples regardless of its width.
// Per-sample signed relative errors are folded into summary statistics
// (worst case, RMS, bias, effective bits), and the ordered error series is
// transformed with an FFT to expose periodic structure: an interpolated
// seed table repeats its error shape once per octave, so its signature
// shows up as energy at a fixed number of cycles per octave.
//
// # Usage
//
// Sweep the default range and inspect the headline numbers:
//
//	res := accuracy.Analyze(accuracy.Config{})
//	fmt.Printf("worst %.4f%% at %d (%.1f effective bits)\n",
//	    res.MaxRelError*100, res.WorstInput, res.EffectiveBits)
//
// Corpora that do not form a log-uniform sweep can still be scored:
//
//	res := accuracy.AnalyzeValues(values, accuracy.Config{})
//
// For corpora too large to hold in memory, feed chunks through a
// StreamingStats and read the result once at the end.
package accuracy
