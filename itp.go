package polyroot

import (
	"math"
)

// SolveITP finds a zero crossing of f in the bracket [a, b] with the
// [ITP method] of Oliveira and Takahashi.
//
// f must be negative at a and positive at b, and ya and yb must be those
// values. If f is monotonic on the bracket, the result is within epsilon of
// the crossing. epsilon must exceed 2⁻⁶³ (b - a).
//
// k1 and n0 tune the method; k2 is fixed at 2. A k1 of 0.2 / (b - a) is a
// good default. With n0 = 0 the method never needs more steps than bisection,
// while n0 = 1 lets the secant step engage more often on smooth functions.
//
// Nothing is assumed about f beyond the sign change, so SolveITP can
// cross-check the roots found by the polynomial solvers.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func SolveITP[T Float](f func(T) T, a, b, epsilon T, n0 int, k1, ya, yb T) T {
	nHalf := int(max(math.Ceil(math.Log2(float64((b-a)/epsilon)))-1.0, 0.0))
	nmax := n0 + nHalf
	scaledEpsilon := epsilon * T(uint64(1)<<nmax)
	for b-a > 2*epsilon {
		mid := (a + b) / 2
		r := scaledEpsilon - (b-a)/2
		// Regula falsi estimate.
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := mid - xf
		delta := k1 * ((b - a) * (b - a))
		// Truncate towards the midpoint, then project onto the minmax
		// interval.
		xt := mid
		if delta <= abs(mid-xf) {
			xt = xf + copysign(delta, sigma)
		}
		x := mid - copysign(r, sigma)
		if abs(xt-mid) <= r {
			x = xt
		}
		y := f(x)
		switch {
		case y > 0:
			b, yb = x, y
		case y < 0:
			a, ya = x, y
		default:
			return x
		}
		scaledEpsilon /= 2
	}
	return (a + b) / 2
}
