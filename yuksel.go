package polyroot

import (
	"math"
)

// This file implements the root finder described in Cem Yuksel, "High-Performance
// Polynomial Root Finding for Graphics", Proc. ACM Comput. Graph. Interact.
// Tech. (HPG 2022).
//
// The roots of a polynomial's derivative split the real line into ranges on
// which the polynomial is strictly monotonic, so that each range contains at
// most one root. The derivative's roots are found recursively, down to a
// quadratic that is solved directly.

// IsolateQuadratic finds the real roots of a quadratic and returns them in
// increasing order.
//
// Returns values of x for which p[0] x² + p[1] x + p[2] = 0.
//
// Unlike [SolveQuadratic], a double root is reported once, with the second slot
// set to NaN. If p[0] is zero or so small that normalizing by it overflows, the
// single root of p[1] x + p[2] is reported.
func IsolateQuadratic[T Float](p Quadratic[T]) [2]T {
	out := [2]T{nan[T](), nan[T]()}
	a, b, c := p[0], p[1], p[2]
	if !normalizable(a, b, c) {
		out[0] = finiteOrNaN(-c / b)
		return out
	}
	delta := b*b - 4*a*c
	if !isFinite(delta) {
		return isolateMonic(b/a, c/a)
	}
	switch {
	case delta > 0:
		q := -(b + copysign(sqrt(delta), b)) / 2
		out = sorted2(finiteOrNaN(q/a), finiteOrNaN(c/q))
	case delta == 0:
		out[0] = -b / (2 * a)
	}
	return out
}

// isolateMonic finds the roots of x² + b x + c when the discriminant of the
// original quadratic overflowed.
func isolateMonic[T Float](b, c T) [2]T {
	out := [2]T{nan[T](), nan[T]()}
	s := T(1)
	if !isFinite(b*b - 4*c) {
		// Scale x by s, which keeps the scaled discriminant below 5.
		s = max(abs(b), sqrt(abs(c)))
	}
	bs, cs := b/s, c/s/s
	arg := bs*bs - 4*cs
	switch {
	case arg < 0:
		return out
	case arg == 0:
		out[0] = -bs / 2 * s
		return out
	}
	r0 := -(bs + copysign(sqrt(arg), bs)) / 2 * s
	return sorted2(finiteOrNaN(r0), finiteOrNaN(c/r0))
}

// sorted2 returns x and y in increasing order, with NaNs last.
func sorted2[T Float](x, y T) [2]T {
	switch {
	case isNaN(x):
		return [2]T{y, x}
	case isNaN(y):
		return [2]T{x, y}
	}
	return [2]T{min(x, y), max(x, y)}
}

// IsolateCubic finds the real roots of a cubic and returns them in increasing
// order.
//
// Returns values of x for which p[0] x³ + p[1] x² + p[2] x + p[3] = 0.
//
// The roots are refined until they are within tol of the true root; a tol of
// zero refines them as far as the arithmetic allows. Negative and NaN
// tolerances are treated as zero. A double root is only reported if the
// polynomial evaluates to exactly zero at it, and then only once. Unused slots
// are NaN.
//
// If p[0] is zero or so small that normalizing by it overflows, the quadratic
// formed by the remaining coefficients is solved with [IsolateQuadratic].
func IsolateCubic[T Float](p Cubic[T], tol T) [3]T {
	out := [3]T{nan[T](), nan[T](), nan[T]()}
	if !normalizable(p[0], p[1], p[2], p[3]) {
		r := IsolateQuadratic(Quadratic[T]{p[1], p[2], p[3]})
		out[0], out[1] = r[0], r[1]
		return out
	}
	dp := p.Deriv()
	crit := IsolateQuadratic(dp)
	r := refiner[T]{deg: 3, f: p.Eval, df: dp.Eval, tol: sanitizeTolerance(tol)}
	// Without critical points the cubic is monotonic; search outwards from
	// the inflection point.
	inflection := -p[1] / (3 * p[0])
	r.isolate(p[0], finitePrefix(crit[:]), inflection, out[:])
	return out
}

// IsolateQuartic finds the real roots of a quartic and returns them in
// increasing order.
//
// Returns values of x for which p[0] x⁴ + p[1] x³ + p[2] x² + p[3] x + p[4] = 0.
//
// The tolerance and the reporting of double roots behave as for
// [IsolateCubic]. The critical points are found with [IsolateCubic] using the
// same tolerance.
//
// If p[0] is zero or so small that normalizing by it overflows, the cubic
// formed by the remaining coefficients is solved with [IsolateCubic].
func IsolateQuartic[T Float](p Quartic[T], tol T) [4]T {
	out := [4]T{nan[T](), nan[T](), nan[T](), nan[T]()}
	tol = sanitizeTolerance(tol)
	if !normalizable(p[0], p[1], p[2], p[3], p[4]) {
		r := IsolateCubic(Cubic[T]{p[1], p[2], p[3], p[4]}, tol)
		copy(out[:], r[:])
		return out
	}
	dp := p.Deriv()
	crit := IsolateCubic(dp, tol)
	r := refiner[T]{deg: 4, f: p.Eval, df: dp.Eval, tol: tol}
	r.isolate(p[0], finitePrefix(crit[:]), 0, out[:])
	return out
}

// normalizable reports whether all coefficients can be divided by the leading
// coefficient lead without producing infinities or NaNs.
func normalizable[T Float](lead T, rest ...T) bool {
	for _, c := range rest {
		if !isFinite(c / lead) {
			return false
		}
	}
	return true
}

func sanitizeTolerance[T Float](tol T) T {
	if !(tol >= 0) {
		return 0
	}
	return tol
}

// finitePrefix returns the leading finite values of xs.
func finitePrefix[T Float](xs []T) []T {
	for i, x := range xs {
		if !isFinite(x) {
			return xs[:i]
		}
	}
	return xs
}

// monotonicRanges returns the ranges between consecutive critical points,
// which must be sorted. The first range starts at -Inf and the last one ends at
// +Inf. Repeated critical points don't produce empty ranges.
func monotonicRanges[T Float](crit []T) ([MaxDegree][2]T, int) {
	var ret [MaxDegree][2]T
	var n int
	lo := T(math.Inf(-1))
	for _, x := range crit {
		if x == lo {
			continue
		}
		ret[n] = [2]T{lo, x}
		n++
		lo = x
	}
	ret[n] = [2]T{lo, T(math.Inf(1))}
	n++
	return ret, n
}

// bracket is a range [x0, x1] whose end values y0 and y1 have opposite signs,
// or one of which is zero, and on which the polynomial is monotonic.
type bracket[T Float] struct {
	x0, x1 T
	y0, y1 T
}

// refiner locates roots of a polynomial f with derivative df.
type refiner[T Float] struct {
	deg   int
	f, df func(T) T
	tol   T
}

// isolate stores the roots on each monotonic range in out, in increasing
// order. lead is the polynomial's leading coefficient. anchor is used as the
// starting point for odd-degree polynomials without critical points.
func (r *refiner[T]) isolate(lead T, crit []T, anchor T, out []T) {
	odd := r.deg%2 != 0
	n := 0
	emit := func(x T) {
		if n < len(out) && !isNaN(x) {
			out[n] = x
			n++
		}
	}

	if len(crit) == 0 {
		if !odd {
			// Without critical points an even-degree polynomial never
			// changes sign.
			return
		}
		y := r.f(anchor)
		switch {
		case y == 0:
			emit(anchor)
		case (y < 0) != (lead < 0):
			emit(r.open(anchor, y, 1))
		default:
			emit(r.open(anchor, y, -1))
		}
		return
	}

	// Signs are compared with < 0 rather than by multiplying values: near
	// multiple roots the values may underflow while their signs stay
	// meaningful. A critical point at which the polynomial is exactly zero is
	// a multiple root, and strict monotonicity rules out other roots in the
	// ranges next to it.
	ranges, nr := monotonicRanges(crit)
	var ylo T
	for _, rng := range ranges[:nr] {
		lo, hi := rng[0], rng[1]
		switch {
		case !isFinite(lo):
			// As x → -Inf, the sign of the polynomial is that of lead,
			// flipped for odd degrees.
			yhi := r.f(hi)
			if yhi != 0 && ((yhi < 0) != (lead < 0)) != odd {
				emit(r.open(hi, yhi, -1))
			}
			if yhi == 0 {
				emit(hi)
			}
			ylo = yhi
		case !isFinite(hi):
			if ylo != 0 && (ylo < 0) != (lead < 0) {
				emit(r.open(lo, ylo, 1))
			}
		default:
			yhi := r.f(hi)
			if ylo != 0 && yhi != 0 && (ylo < 0) != (yhi < 0) {
				emit(r.closed(bracket[T]{lo, hi, ylo, yhi}))
			}
			if yhi == 0 {
				emit(hi)
			}
			ylo = yhi
		}
	}
}

// closed finds the root in b using Newton steps safeguarded by bisection.
//
// Every iteration either shrinks the bracket or returns, so this always
// terminates. The result is within tol of the root; the loop stops once the
// bracket is no wider than 2*tol.
func (r *refiner[T]) closed(b bracket[T]) T {
	x0, x1, y0 := b.x0, b.x1, b.y0
	tol := r.tol
	tol2 := 2 * tol
	xr := (x0 + x1) / 2
	if x1-x0 <= tol2 {
		return xr
	}

	if r.deg <= 3 {
		// Plain Newton iteration, clamped to the bracket, usually converges
		// quickly for low degrees.
		xr0 := xr
		for _i := 0; _i < 16; _i++ {
			xn := xr - r.f(xr)/r.df(xr)
			xn = max(x0, min(xn, x1))
			if abs(xr-xn) <= tol {
				if xn > x0 && xn < x1 {
					return xn
				}
				// Stuck at one end; let the safeguarded iteration sort it
				// out.
				break
			}
			xr = xn
		}
		if !isFinite(xr) {
			xr = xr0
		}
	}

	yr := r.f(xr)
	xb0, xb1 := x0, x1
	for {
		if yr == 0 {
			return xr
		}
		// side is true if the root lies below xr.
		side := (y0 < 0) != (yr < 0)
		if side {
			xb1 = xr
		} else {
			xb0 = xr
		}
		xn := xr - yr/r.df(xr)
		if xn > xb0 && xn < xb1 {
			step := abs(xr - xn)
			xr = xn
			if step > tol {
				yr = r.f(xr)
				continue
			}
			// The step is small. Probe one tolerance further towards the
			// root to check whether we have actually converged.
			var xs T
			if side {
				xs = xn - tol
			} else {
				xs = xn + tol
			}
			if xs == xn {
				if side {
					xs = nextAfter(xn, xb0)
				} else {
					xs = nextAfter(xn, xb1)
				}
			}
			xs = max(xb0, min(xs, xb1))
			ys := r.f(xs)
			if side != ((y0 < 0) != (ys < 0)) {
				return xn
			}
			xr, yr = xs, ys
			continue
		}

		// The Newton step leaves the bracket; bisect.
		xm := (xb0 + xb1) / 2
		if xm == xb0 || xm == xb1 || xb1-xb0 <= tol2 {
			if tol == 0 {
				// Return whichever end is closer to zero. yr belongs to
				// the end that was updated last.
				other := xb1
				if side {
					other = xb0
				}
				if abs(r.f(other)) < abs(yr) {
					return other
				}
				return xr
			}
			return xm
		}
		xr = xm
		yr = r.f(xr)
	}
}

// open finds the root on the unbounded range that starts at xm and extends
// in direction dir, which is -1 or 1. ym is the polynomial's value at xm.
//
// Newton steps that move outwards are accepted. Otherwise, the search moves
// outwards by a distance that starts at 1 and doubles with every such step,
// so the offset grows geometrically. Once the sign changes, the bracket is
// refined by [refiner.closed]. Roots that lie beyond the range
// of T are reported as NaN.
func (r *refiner[T]) open(xm, ym, dir T) T {
	tol := r.tol
	inf := copysign(T(math.Inf(1)), dir)
	delta := T(1)
	xr := xm + dir
	yr := r.f(xr)
	for yr != 0 {
		if !isFinite(xr) {
			return nan[T]()
		}
		if (ym < 0) != (yr < 0) {
			if dir < 0 {
				return r.closed(bracket[T]{xr, xm, yr, ym})
			}
			return r.closed(bracket[T]{xm, xr, ym, yr})
		}
		xm, ym = xr, yr
		xn := xr - yr/r.df(xr)
		// step is the distance moved outwards.
		step := (xn - xr) * dir
		if step >= 0 && isFinite(xn) {
			xr = xn
			if step <= tol {
				if xr == xm {
					break
				}
				xs := xn + tol*dir
				if xs == xn {
					xs = nextAfter(xn, inf)
				}
				ys := r.f(xs)
				if (ym < 0) != (ys < 0) {
					return xn
				}
				xr, yr = xs, ys
				continue
			}
		} else {
			xr += delta * dir
			delta *= 2
		}
		yr = r.f(xr)
	}
	return xr
}
