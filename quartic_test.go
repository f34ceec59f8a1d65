package polyroot

import (
	"math"
	"testing"
)

func TestSolveQuartic(t *testing.T) {
	// These test cases are taken from Orellana and De Michele paper (Table 1).
	testWithRoots := func(coeffs [4]float64, roots []float64, relErr float64) {
		t.Helper()

		r := SolveQuartic(Quartic[float64]{1, coeffs[0], coeffs[1], coeffs[2], coeffs[3]})
		actual := realRoots(r[:])
		if len(actual) != len(roots) {
			t.Fatalf("got %d roots %v, expected %d", len(actual), actual, len(roots))
		}
		for i := range actual {
			if math.Abs(actual[i]-roots[i]) > relErr*math.Abs(roots[i]) {
				t.Errorf("root %d is %v but we expected %v", i, actual[i], roots[i])
			}
		}
	}

	testVietaRoots := func(x1, x2, x3, x4 float64, roots []float64, relErr float64) {
		t.Helper()
		a := -(x1 + x2 + x3 + x4)
		b := x1*(x2+x3) + x2*(x3+x4) + x4*(x1+x3)
		c := -x1*x2*(x3+x4) - x3*x4*(x1+x2)
		d := x1 * x2 * x3 * x4
		testWithRoots([4]float64{a, b, c, d}, roots, relErr)
	}

	testVieta := func(x1, x2, x3, x4, relErr float64) {
		t.Helper()
		testVietaRoots(x1, x2, x3, x4, []float64{x1, x2, x3, x4}, relErr)
	}

	// case 1
	testVieta(1.0, 1e3, 1e6, 1e9, 1e-16)
	// case 2
	testVieta(2.0, 2.001, 2.002, 2.003, 1e-6)
	// case 3
	testVieta(1e47, 1e49, 1e50, 1e53, 2e-16)
	// case 4
	testVieta(-1.0, 1.0, 2.0, 1e14, 1e-16)
	// case 5
	testVieta(-2e7, -1.0, 1.0, 1e7, 1e-16)
	// case 6
	testWithRoots(
		[4]float64{-9000002.0, -9999981999998.0, 19999982e6, -2e13},
		[]float64{-1e6, 1e7},
		1e-16,
	)
	// case 7
	testWithRoots(
		[4]float64{2000011.0, 1010022000028.0, 11110056e6, 2828e10},
		[]float64{-7.0, -4.0},
		1e-16,
	)
	// case 8
	testWithRoots(
		[4]float64{-100002011.0, 201101022001.0, -102200111000011.0, 11000011e8},
		[]float64{11.0, 1e8},
		1e-16,
	)
	// cases 9-13 have no real roots
	// case 14
	testVietaRoots(1000.0, 1000.0, 1000.0, 1000.0, []float64{1000.0, 1000.0}, 1e-16)
	// case 15
	testVietaRoots(1e-15, 1000.0, 1000.0, 1000.0, []float64{1e-15, 1000.0, 1000.0}, 1e-15)
	// case 16 no real roots
	// case 17
	testVieta(10000.0, 10001.0, 10010.0, 10100.0, 1e-6)
	// case 19
	testVietaRoots(1.0, 1e30, 1e30, 1e44, []float64{1.0, 1e30, 1e44}, 1e-16)
	// case 20, with a relaxed error bound
	testVieta(1.0, 1e7, 1e7, 1e14, 1e-7)
	// case 21 doesn't pick up double root
	// case 22
	testVieta(1.0, 10.0, 1e152, 1e154, 3e-16)
	// case 23
	testWithRoots(
		[4]float64{1.0, 1.0, 3.0 / 8.0, 1e-3},
		[]float64{-0.497314148060048, -0.00268585193995149},
		2e-15,
	)
	// case 24
	const s = 1e30
	testWithRoots(
		[4]float64{-(1.0 + 1.0/s), 1.0/s - s*s, s*s + s, -s},
		[]float64{-s, 1e-30, 1.0, s},
		2e-16,
	)
}

func TestSolveQuarticNoRealRoots(t *testing.T) {
	for _, p := range []Quartic[float64]{
		{1, 0, 0, 0, 1},
		{1, 0, 2, 0, 1},
		{3, -2, 5, 1, 7},
	} {
		r := SolveQuartic(p)
		if n := nanCount(r[:]); n != 4 {
			t.Errorf("%s: got %v, want only NaNs", p, r)
		}
	}
}

func TestSolveQuarticDegenerate(t *testing.T) {
	// A zero constant term contributes the root 0 and leaves a cubic.
	r := SolveQuartic(Quartic[float64]{1, 0, -1, 0, 0})
	checkRoots(t, r[:], []float64{-1, 0, 0, 1})
	if r[3] != 0 {
		t.Errorf("got %v, want the root 0 in the last slot", r)
	}

	// A vanishing leading coefficient falls back to the cubic.
	r = SolveQuartic(Quartic[float64]{0, 1, 0, -1, 0})
	checkRoots(t, r[:], []float64{-1, 0, 1})
}

func TestSolveQuarticFloat32(t *testing.T) {
	// (x-1)(x-2)(x+3)(x+4)
	p := Quartic[float32]{1, 4, -7, -22, 24}
	r := SolveQuartic(p)
	got := realRoots(r[:])
	diff(t, []float64{-4, -3, 1, 2}, got, approx(1e-5))
}

func TestSolveQuarticResiduals(t *testing.T) {
	// Roots are collected per quadratic factor and not sorted overall; each
	// root must still be a root.
	p := Quartic[float64]{2, -4, -22, 24, 0.5}
	r := SolveQuartic(p)
	got := realRoots(r[:])
	if len(got) != 4 {
		t.Fatalf("got %v, want 4 real roots", r)
	}
	for _, x := range got {
		if y := p.Eval(x); math.Abs(y) > 1e-10*max(1, x*x*x*x) {
			t.Errorf("p(%v) = %v", x, y)
		}
	}
}

func TestSolveQuarticSharedAlpha(t *testing.T) {
	// The two quadratic factors of these quartics have the same linear
	// coefficient, which makes the factorization degenerate.
	u1, u2 := 6-math.Sqrt(572)/4, 6+math.Sqrt(572)/4
	tests := []struct {
		p     Quartic[float64]
		roots []float64
	}{
		// (x-1)(x-2)(x-3)(x-4)
		{Quartic[float64]{1, -10, 35, -50, 24}, []float64{1, 2, 3, 4}},
		// (x²-x-12)(x²-x+5)
		{Quartic[float64]{1, -2, -6, 7, -60}, []float64{-3, 4}},
		{Quartic[float64]{1, 0, -5, 0, 4}, []float64{-2, -1, 1, 2}},
		{Quartic[float64]{1, 0, 0, 0, -16}, []float64{-2, 2}},
		// 2u² - 24u + 0.5 with u = x² - x
		{Quartic[float64]{2, -4, -22, 24, 0.5}, []float64{
			(1 - math.Sqrt(1+4*u1)) / 2,
			(1 + math.Sqrt(1+4*u1)) / 2,
			(1 - math.Sqrt(1+4*u2)) / 2,
			(1 + math.Sqrt(1+4*u2)) / 2,
		}},
	}
	for _, tt := range tests {
		r := SolveQuartic(tt.p)
		checkRoots(t, r[:], tt.roots)
	}
}
