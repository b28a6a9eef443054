package main

import (
	"fmt"
	"math"
)

// sCurve maps linear progress to eased progress along a sine S-curve:
// slow in, slow out, fixed points at 0, 0.5 and 1.
func sCurve(x float32) float32 {
	if x < 0 || x > 1 {
		panic(fmt.Sprintf("sCurve: progress %g outside [0, 1]", x))
	}
	return float32((1 + math.Sin((float64(x)-0.5)*math.Pi)) / 2)
}

// easeRange returns n+1 eased samples at evenly spaced progress values,
// running from exactly 0 to exactly 1.
func easeRange(n int) []float32 {
	if n <= 0 {
		panic(fmt.Sprintf("easeRange: sample count %d must be positive", n))
	}
	out := make([]float32, n+1)
	for i := 0; i <= n; i++ {
		out[i] = sCurve(float32(i) / float32(n))
	}
	return out
}
