// Command rsqrtinfo prints fixed-point reciprocal square root results
// against float64 references.
//
// Usage:
//
//	rsqrtinfo [flags] [value ...]
//
// Without arguments it prints a table for a small set of sample inputs
// and a distance demo row.
//
// Examples:
//
//	rsqrtinfo 42 1000 65536
//	rsqrtinfo -dist 30,40,0
//	rsqrtinfo -sweep -min 1 -max 4096 -points 128
//	rsqrtinfo -quirk
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-fixmath/measure/accuracy"
	"github.com/cwbudde/algo-fixmath/q16"
)

var defaultValues = []uint32{1, 5, 16, 1000000}

func main() {
	dist := flag.String("dist", "1,2,3", "comma-separated x,y,z for a distance row (empty disables)")
	sweep := flag.Bool("sweep", false, "run an accuracy sweep and print the result")
	minVal := flag.Uint64("min", 0, "sweep lower bound (0 = default)")
	maxVal := flag.Uint64("max", 0, "sweep upper bound (0 = default)")
	points := flag.Int("points", 0, "sweep points per octave (0 = default)")
	quirk := flag.Bool("quirk", false, "show degraded results for inputs at and above 1<<31")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rsqrtinfo [flags] [value ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints fixed-point reciprocal square root results against float64 references.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints a small sample table and a distance row.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  rsqrtinfo 42 1000 65536\n")
		fmt.Fprintf(os.Stderr, "  rsqrtinfo -dist 30,40,0\n")
		fmt.Fprintf(os.Stderr, "  rsqrtinfo -sweep -min 1 -max 4096 -points 128\n")
		fmt.Fprintf(os.Stderr, "  rsqrtinfo -quirk\n")
	}
	flag.Parse()

	if *quirk {
		printQuirk()
		return
	}

	if *sweep {
		if *minVal > math.MaxUint32 || *maxVal > math.MaxUint32 {
			fmt.Fprintf(os.Stderr, "error: sweep bounds exceed uint32 range\n")
			os.Exit(1)
		}

		printSweep(accuracy.Config{
			MinValue:        uint32(*minVal),
			MaxValue:        uint32(*maxVal),
			PointsPerOctave: *points,
		})

		return
	}

	values := defaultValues
	if args := flag.Args(); len(args) > 0 {
		values = parseValues(args)
	}

	printedValues := printValues(values)

	printedDist := false
	if *dist != "" {
		printedDist = printDistance(*dist)
	}

	if !printedValues && !printedDist {
		fmt.Fprintf(os.Stderr, "error: nothing to print\n")
		os.Exit(1)
	}
}

func parseValues(args []string) []uint32 {
	var out []uint32

	for _, arg := range args {
		v, err := strconv.ParseUint(strings.TrimSpace(arg), 0, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %q: not a uint32\n", arg)
			continue
		}

		out = append(out, uint32(v))
	}

	return out
}

func printValues(values []uint32) bool {
	if len(values) == 0 {
		return false
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Input\tRaw Q16\tValue\tReference\tError [ppm]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return false
	}
	if _, err := fmt.Fprintf(tw, "-----\t-------\t-----\t---------\t-----------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return false
	}

	for _, x := range values {
		raw := q16.InvSqrt(x)
		value := q16.Float64(raw)

		var err error
		if x == 0 {
			_, err = fmt.Fprintf(tw, "%d\t%d\t%.8f\tsaturated\t-\n", x, raw, value)
		} else {
			ref := 1 / math.Sqrt(float64(x))
			ppm := (value - ref) / ref * 1e6
			_, err = fmt.Fprintf(tw, "%d\t%d\t%.8f\t%.8f\t%+.1f\n", x, raw, value, ref, ppm)
		}

		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return false
		}
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return false
	}

	return true
}

func printDistance(arg string) bool {
	parts := strings.Split(arg, ",")
	if len(parts) != 3 {
		fmt.Fprintf(os.Stderr, "warning: -dist needs x,y,z, got %q\n", arg)
		return false
	}

	var coords [3]int32

	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 0, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: -dist component %q: not an int32\n", p)
			return false
		}

		coords[i] = int32(v)
	}

	x, y, z := coords[0], coords[1], coords[2]
	d := q16.Distance3(x, y, z)
	ref := math.Sqrt(float64(int64(x)*int64(x) + int64(y)*int64(y) + int64(z)*int64(z)))

	fmt.Printf("dist3(%d, %d, %d) = %d (reference %.4f)\n", x, y, z, d, ref)

	return true
}

func printSweep(cfg accuracy.Config) {
	res := accuracy.Analyze(cfg)
	if res.Points == 0 {
		fmt.Fprintf(os.Stderr, "error: sweep produced no points\n")
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	rows := []struct {
		key   string
		value string
	}{
		{"Points", strconv.Itoa(res.Points)},
		{"WorstInput", strconv.FormatUint(uint64(res.WorstInput), 10)},
		{"MaxRelError", fmt.Sprintf("%.6g (%.2f dB)", res.MaxRelError, res.MaxRelError_dB)},
		{"RMSRelError", fmt.Sprintf("%.6g (%.2f dB)", res.RMSRelError, res.RMSRelError_dB)},
		{"Bias", fmt.Sprintf("%.6g", res.Bias)},
		{"StdDev", fmt.Sprintf("%.6g", res.StdDev)},
		{"EffectiveBits", fmt.Sprintf("%.2f", res.EffectiveBits)},
		{"RippleLevel", fmt.Sprintf("%.6g", res.RippleLevel)},
		{"RippleCyclesPerOctave", fmt.Sprintf("%.4f", res.RippleCyclesPerOctave)},
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.key, r.value); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printQuirk() {
	fmt.Println("Inputs at and above 1<<31 interpolate from a zero lower bound,")
	fmt.Println("so their results degrade far beyond the usual error envelope:")
	fmt.Println()

	printValues([]uint32{
		2147483647,
		2147483648,
		2500000000,
		3000000000,
		3500000000,
		4000000000,
		4294967295,
	})
}
