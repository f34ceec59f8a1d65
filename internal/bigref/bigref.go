// Package bigref evaluates polynomials in extended precision, so that tests can
// judge float64 roots without being misled by rounding in the evaluation
// itself.
package bigref

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// Prec is the precision, in bits, of all computations in this package. It is
// enough to evaluate a quartic at a float64 point without any rounding.
const Prec = 512

func newFloat(x float64) *big.Float {
	return new(big.Float).SetPrec(Prec).SetFloat64(x)
}

// Eval evaluates the polynomial with coefficients c, in decreasing order of
// degree, at x using Horner's scheme.
func Eval(c []float64, x float64) *big.Float {
	bx := newFloat(x)
	acc := newFloat(0)
	for _, v := range c {
		acc.Mul(acc, bx)
		acc.Add(acc, newFloat(v))
	}
	return acc
}

// Residual returns the relative backward error of x as a root of the
// polynomial with coefficients c: |p(x)| / Σ |cᵢ| |x|ⁱ.
//
// A value within a small multiple of the machine epsilon means x is as good a
// root as float64 can represent for these coefficients. The residual of an
// exact root, or of any x for the zero polynomial, is zero.
func Residual(c []float64, x float64) float64 {
	num := Eval(c, x)
	num.Abs(num)
	absC := make([]float64, len(c))
	for i, v := range c {
		absC[i] = math.Abs(v)
	}
	den := Eval(absC, math.Abs(x))
	if den.Sign() == 0 {
		return 0
	}
	r, _ := num.Quo(num, den).Float64()
	return r
}

// Newton polishes x as a root of the polynomial with coefficients c, running
// up to iters Newton steps in extended precision, and returns the result
// rounded to float64.
func Newton(c []float64, x float64, iters int) float64 {
	n := len(c) - 1
	deriv := make([]float64, n)
	for i := range deriv {
		deriv[i] = c[i] * float64(n-i)
	}
	bx := newFloat(x)
	for _i := 0; _i < iters; _i++ {
		y := evalBig(c, bx)
		if y.Sign() == 0 {
			break
		}
		dy := evalBig(deriv, bx)
		if dy.Sign() == 0 {
			break
		}
		bx.Sub(bx, y.Quo(y, dy))
	}
	f, _ := bx.Float64()
	return f
}

func evalBig(c []float64, x *big.Float) *big.Float {
	acc := newFloat(0)
	for _, v := range c {
		acc.Mul(acc, x)
		acc.Add(acc, newFloat(v))
	}
	return acc
}

// NthRoot returns the real n-th root of k, correctly rounded to float64, i.e.
// the real root of xⁿ - k. Odd roots of negative numbers are negative; even
// roots of negative numbers are NaN.
func NthRoot(k float64, n int) float64 {
	switch {
	case k == 0:
		return 0
	case k < 0 && n%2 == 0:
		return math.NaN()
	case k < 0:
		return -NthRoot(-k, n)
	}
	exp := new(big.Float).SetPrec(Prec).Quo(newFloat(1), newFloat(float64(n)))
	f, _ := bigfloat.Pow(newFloat(k), exp).Float64()
	return f
}
