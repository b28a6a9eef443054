package main

import (
	"math"
	"testing"
)

func TestSCurveFixedPoints(t *testing.T) {
	for _, tc := range []struct{ in, want float32 }{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
	} {
		if got := sCurve(tc.in); got != tc.want {
			t.Fatalf("sCurve(%g) = %g, want %g", tc.in, got, tc.want)
		}
	}
}

func TestSCurveMonotoneAndSymmetric(t *testing.T) {
	const n = 1000
	prev := float32(0)
	for i := 0; i <= n; i++ {
		x := float32(i) / n
		y := sCurve(x)
		if y < prev {
			t.Fatalf("sCurve not monotone at x=%g: %g < %g", x, y, prev)
		}
		if y < 0 || y > 1 {
			t.Fatalf("sCurve(%g) = %g outside [0, 1]", x, y)
		}
		if s := float64(y) + float64(sCurve(1-x)); math.Abs(s-1) > 1e-6 {
			t.Fatalf("sCurve not symmetric at x=%g: sum %g", x, s)
		}
		prev = y
	}
}

func TestSCurveDomainPanics(t *testing.T) {
	for _, x := range []float32{-0.1, 1.1, 2} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("sCurve(%g) did not panic", x)
				}
			}()
			sCurve(x)
		}()
	}
}

func TestEaseRange(t *testing.T) {
	for _, n := range []int{1, 2, 7, 24} {
		samples := easeRange(n)
		if len(samples) != n+1 {
			t.Fatalf("easeRange(%d) returned %d samples, want %d", n, len(samples), n+1)
		}
		if samples[0] != 0 {
			t.Fatalf("easeRange(%d)[0] = %g, want 0", n, samples[0])
		}
		if samples[n] != 1 {
			t.Fatalf("easeRange(%d)[%d] = %g, want 1", n, n, samples[n])
		}
		for i := 1; i <= n; i++ {
			if samples[i] < samples[i-1] {
				t.Fatalf("easeRange(%d) not monotone at %d", n, i)
			}
		}
	}
}

func TestEaseRangePanics(t *testing.T) {
	for _, n := range []int{0, -1, -10} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("easeRange(%d) did not panic", n)
				}
			}()
			easeRange(n)
		}()
	}
}
