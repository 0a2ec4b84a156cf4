package q16_test

import (
	"fmt"

	"github.com/cwbudde/algo-fixmath/q16"
)

func ExampleInvSqrt() {
	// 1/sqrt(16) = 0.25, held exactly in Q16.
	raw := q16.InvSqrt(16)
	fmt.Printf("raw=%d value=%v\n", raw, q16.Float64(raw))
	// Output:
	// raw=16384 value=0.25
}

func ExampleSqrt() {
	fmt.Println(q16.Sqrt(1048576))
	// Output:
	// 1024
}

func ExampleDistance3() {
	// A 3-4-5 triangle scaled by 100. The exact distance is 500; the
	// fixed-point result truncates low.
	fmt.Println(q16.Distance3(300, 400, 0))
	// Output:
	// 499
}
