package polyroot

// SolveQuadratic finds the real roots of a quadratic using Blinn's
// homogeneous formulation.
//
// Returns values of x for which p[0] x² + p[1] x + p[2] = 0.
//
// Halving the linear coefficient and computing the discriminant with a fused
// multiply-add keeps rounding low, and the choice between three algebraically
// equivalent pairs of homogeneous coordinates (x, w) avoids subtracting
// nearly equal quantities. Each root is x/w.
//
// If the roots are complex, both slots are NaN. A double root is reported
// twice. If p[0] is zero, the slot that would hold the root at infinity is NaN.
// The order of the roots is determined by the formulas and is not sorted.
//
// See Jim Blinn, "How to Solve a Quadratic Equation", IEEE Computer Graphics
// and Applications, 2005.
func SolveQuadratic[T Float](p Quadratic[T]) [2]T {
	return blinnQuadratic(p[0], p[1], p[2])
}

func blinnQuadratic[T Float](a, b, c T) [2]T {
	A, B, C := a, b/2, c
	D := fma(B, B, -(A * C))
	if !(D >= 0) {
		// Complex pair, or NaN coefficients.
		return [2]T{nan[T](), nan[T]()}
	}
	E := sqrt(D)
	var x1, w1, x2, w2 T
	if B > 0 {
		x1, w1 = -C, B+E
		x2, w2 = -B-E, A
	} else if B < 0 {
		F := -B + E
		x1, w1 = F, A
		x2, w2 = C, F
	} else {
		F := sqrt(-A * C)
		if abs(A) >= abs(C) {
			x1, w1 = F, A
			x2, w2 = -F, A
		} else {
			x1, w1 = -C, F
			x2, w2 = C, F
		}
	}
	return [2]T{finiteOrNaN(x1 / w1), finiteOrNaN(x2 / w2)}
}

// SolveCubic finds the real roots of a cubic.
//
// Returns values of x for which p[0] x³ + p[1] x² + p[2] x + p[3] = 0.
//
// If p[0] is zero or so small that normalizing by it overflows, the quadratic
// formed by the remaining coefficients is solved with [SolveQuadratic] instead,
// filling the first two slots.
//
// Otherwise, depending on the sign of the discriminant, there are three
// distinct real roots (computed with a trigonometric identity), a double and a
// simple root (the third slot is NaN), or a single real root (computed as the
// sum of two cube roots; the other two slots are NaN). A double root is only
// detected if the discriminant is exactly zero. The order of the roots is
// determined by the formulas and is not sorted. If intermediate values
// overflow, the affected slots are NaN.
//
// See: https://momentsingraphics.de/CubicRoots.html
//
// That implementation is in turn based on Jim Blinn's "How to Solve a Cubic
// Equation", which is masterful.
func SolveCubic[T Float](p Cubic[T]) [3]T {
	out := [3]T{nan[T](), nan[T](), nan[T]()}

	third := T(1) / 3
	aRecip := 1 / p[0]
	b := p[1] * (third * aRecip)
	c := p[2] * (third * aRecip)
	d := p[3] * aRecip
	if !(isFinite(b) && isFinite(c) && isFinite(d)) {
		// Cubic coefficient is zero or nearly so.
		r := blinnQuadratic(p[1], p[2], p[3])
		out[0], out[1] = r[0], r[1]
		return out
	}

	// (h2, h1, h0) is called "Delta" in the article.
	h0 := b*d - c*c
	h1 := fma(-c, b, d)
	h2 := fma(-b, b, c)
	h := 4*h2*h0 - h1*h1
	// dp is called "Depressed.x", Depressed.y = h2.
	dp := fma(-2*b, h2, h1)
	switch {
	case h > 0:
		t := atan2(sqrt(h), -dp) * third
		// (ts, tc) is called "CubicRoot".
		ts, tc := sincos(t)
		r0 := tc
		ps := ts * sqrt(T(3))
		r1 := (-tc + ps) / 2
		r2 := (-tc - ps) / 2
		s := 2 * sqrt(-h2)
		out[0] = fma(s, r0, -b)
		out[1] = fma(s, r1, -b)
		out[2] = fma(s, r2, -b)
	case h == 0:
		s := copysign(sqrt(-h2), dp)
		out[0] = s - b
		out[1] = fma(s, -2, -b)
	case h < 0:
		rt := sqrt(-h / 4)
		r := -dp / 2
		s := cbrt(r+rt) + cbrt(r-rt)
		out[0] = s - b
	}
	for i, x := range out {
		out[i] = finiteOrNaN(x)
	}
	return out
}
