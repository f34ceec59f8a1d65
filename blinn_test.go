package polyroot

import (
	"math"
	"testing"
)

func TestSolveQuadratic(t *testing.T) {
	solve := func(p Quadratic[float64]) []float64 {
		r := SolveQuadratic(p)
		return r[:]
	}
	checkRoots(t, solve(Quadratic[float64]{1, 0, -5}), []float64{-math.Sqrt(5), math.Sqrt(5)})
	checkRoots(t, solve(Quadratic[float64]{1, 0, 5}), []float64{})
	// Linear; the root at infinity is reported as NaN.
	checkRoots(t, solve(Quadratic[float64]{0, 1, 5}), []float64{-5.0})
	checkRoots(t, solve(Quadratic[float64]{0, 1, 1}), []float64{-1.0})
	// Double roots are reported twice.
	checkRoots(t, solve(Quadratic[float64]{1, 2, 1}), []float64{-1.0, -1.0})
	checkRoots(t, solve(Quadratic[float64]{2, 0, 0}), []float64{0, 0})
	// All three branches of the homogeneous formula. The small roots would be
	// lost to cancellation by the textbook formula.
	const big = 0x1p20
	checkRoots(t, solve(Quadratic[float64]{1, big + 1/big, 1}), []float64{-big, -1 / big})
	checkRoots(t, solve(Quadratic[float64]{1, -(big + 1/big), 1}), []float64{1 / big, big})
	checkRoots(t, solve(Quadratic[float64]{0.25, 0, -4}), []float64{-4, 4})
}

func TestSolveQuadraticFixtures(t *testing.T) {
	// The order of the roots is fixed by the formula.
	diff(t, [2]float64{4, -3}, SolveQuadratic(Quadratic[float64]{1, -1, -12}))
	diff(t, [2]float64{3, 3}, SolveQuadratic(Quadratic[float64]{1, -6, 9}))
	r := SolveQuadratic(Quadratic[float64]{1, -3, 5})
	if !math.IsNaN(r[0]) || !math.IsNaN(r[1]) {
		t.Errorf("got %v, want two NaNs", r)
	}
	r = SolveQuadratic(Quadratic[float64]{0, 0, 1})
	if !math.IsNaN(r[0]) || !math.IsNaN(r[1]) {
		t.Errorf("got %v, want two NaNs", r)
	}
}

func TestSolveCubic(t *testing.T) {
	solve := func(p Cubic[float64]) []float64 {
		r := SolveCubic(p)
		return r[:]
	}
	checkRoots(t, solve(Cubic[float64]{1, 0, 0, -5}), []float64{math.Cbrt(5)})
	checkRoots(t, solve(Cubic[float64]{1, 0, -1, -5}), []float64{1.90416085913492})
	checkRoots(t, solve(Cubic[float64]{1, 0, -1, 0}), []float64{-1.0, 0.0, 1.0})
	checkRoots(t, solve(Cubic[float64]{1, 0, -3, -2}), []float64{-1.0, 2.0})
	checkRoots(t, solve(Cubic[float64]{1, 0, -3, 2}), []float64{-2.0, 1.0})
	checkRoots(t, solve(Cubic[float64]{1, 4, 5, 2.0 - 1e-12}),
		[]float64{
			-1.9999999999989995,
			-1.0000010000848456,
			-0.9999989999161546,
		},
	)
	checkRoots(t, solve(Cubic[float64]{1, 4, 5, 2.0 + 1e-12}), []float64{-2.0})
	checkRoots(t, solve(Cubic[float64]{1, 5, -14, 0}), []float64{-7, 0, 2})
	checkRoots(t, solve(Cubic[float64]{-2, 10, 28, 0}), []float64{-2, 0, 7})
}

func TestSolveCubicDegenerate(t *testing.T) {
	// A zero cubic coefficient falls back to the quadratic formed by the
	// remaining coefficients.
	r := SolveCubic(Cubic[float64]{0, 1, -1, -12})
	checkRoots(t, r[:], []float64{-3, 4})
	if !math.IsNaN(r[2]) {
		t.Errorf("got %v in the unused slot, want NaN", r[2])
	}

	r = SolveCubic(Cubic[float64]{1e-320, 1, -1, -12})
	checkRoots(t, r[:], []float64{-3, 4})
}

func TestSolveCubicOverflow(t *testing.T) {
	// Intermediate values of x³ + 1e155 x² - 1 overflow; infinities must not
	// be reported as roots.
	r := SolveCubic(Cubic[float64]{1, 1e155, 0, -1})
	for _, x := range r {
		if math.IsInf(x, 0) {
			t.Errorf("got %v, want NaN instead of infinities", r)
		}
	}
}

func TestSolveFloat32(t *testing.T) {
	diff(t, [2]float32{4, -3}, SolveQuadratic(Quadratic[float32]{1, -1, -12}))

	r := SolveCubic(Cubic[float32]{1, 5, -14, 0})
	got := realRoots(r[:])
	diff(t, []float64{-7, 0, 2}, got, approx(1e-4))
}

type meters float64

func TestSolveNamedFloat(t *testing.T) {
	r := SolveQuadratic(Quadratic[meters]{1, -6, 9})
	diff(t, [2]meters{3, 3}, r)
	c := SolveCubic(Cubic[meters]{1, 0, -1, 0})
	checkRoots(t, c[:], []float64{-1, 0, 1})
}
