package polyroot

import (
	"math"
)

// SolveQuartic finds the real roots of a quartic in closed form.
//
// Returns values of x for which p[0] x⁴ + p[1] x³ + p[2] x² + p[3] x + p[4] = 0.
//
// This is a fairly literal implementation of the method described in:
// Algorithm 1010: Boosting Efficiency in Solving Quartic Equations with
// No Compromise in Accuracy, Orellana and De Michele, ACM
// Transactions on Mathematical Software, Vol. 46, No. 2, May 2020.
//
// The quartic is factored into two real quadratics whose roots are then
// collected. Quartics without any real root, as well as those whose
// factorization overflows even after rescaling, yield only NaNs. The roots
// aren't sorted, and a multiple root may be reported more than once.
//
// The computation is always carried out in float64, regardless of T.
//
// If p[0] is zero or nearly so, the cubic formed by the remaining coefficients
// is solved with [SolveCubic].
func SolveQuartic[T Float](p Quartic[T]) [4]T {
	out := [4]T{nan[T](), nan[T](), nan[T](), nan[T]()}

	lead := float64(p[0])
	a := float64(p[1]) / lead
	b := float64(p[2]) / lead
	c := float64(p[3]) / lead
	d := float64(p[4]) / lead
	if !(isFinite(a) && isFinite(b) && isFinite(c) && isFinite(d)) {
		r := SolveCubic(Cubic[T]{p[1], p[2], p[3], p[4]})
		copy(out[:], r[:])
		return out
	}
	if p[4] == 0 {
		// x = 0 is a root; the others are those of the cubic p / x.
		r := SolveCubic(Cubic[T]{p[0], p[1], p[2], p[3]})
		copy(out[:], r[:])
		out[3] = 0
		return out
	}

	roots, n := monicQuarticRoots(a, b, c, d)
	for i, r := range roots[:n] {
		out[i] = T(r)
	}
	return out
}

// monicQuarticRoots returns the real roots of x⁴ + a x³ + b x² + c x + d.
func monicQuarticRoots(a, b, c, d float64) ([4]float64, int) {
	roots, n, res := factoredRoots(a, b, c, d, false)
	if res != factorOverflow {
		return roots, n
	}
	// Do polynomial rescaling
	const kq = 7.16e76
	for _, rescale := range [...]bool{false, true} {
		roots, n, res := factoredRoots(
			a/kq,
			b/(kq*kq),
			c/(kq*kq*kq),
			d/(kq*kq*kq*kq),
			rescale,
		)
		if res != factorOverflow {
			for i := range roots[:n] {
				roots[i] *= kq
			}
			return roots, n
		}
	}
	// Overflow happened, just return no roots.
	return [4]float64{}, 0
}

func factoredRoots(a, b, c, d float64, rescale bool) ([4]float64, int, factorResult) {
	factors, res := factorQuartic(a, b, c, d, rescale)
	if res != factored {
		return [4]float64{}, 0, res
	}
	var out [4]float64
	var n int
	for _, f := range factors {
		roots, m := monicQuadratic(f.alpha, f.beta)
		n += copy(out[n:], roots[:m])
	}
	return out, n, factored
}

// monicQuadratic returns the real roots of x² + b x + c in increasing order.
func monicQuadratic(b, c float64) ([2]float64, int) {
	arg := b*b - 4.0*c
	var r1 float64
	if math.IsInf(arg, 0) {
		// b*b overflowed. Find one root using b x + x² = 0, the other as c / r1.
		r1 = -b
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * b}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		r1 = -0.5 * (b + math.Copysign(math.Sqrt(arg), b))
	}
	r2 := c / r1
	switch {
	case math.IsInf(r2, 0):
		return [2]float64{r1}, 1
	case r2 > r1:
		return [2]float64{r1, r2}, 2
	default:
		return [2]float64{r2, r1}, 2
	}
}

// quadFactor is the monic quadratic x² + alpha x + beta.
type quadFactor struct {
	alpha, beta float64
}

// factorResult is the outcome of [factorQuartic].
type factorResult int

const (
	factored factorResult = iota
	// factorOverflow means that an intermediate value overflowed; rescaling
	// might succeed.
	factorOverflow
	// factorComplex means that the quartic has no real roots, so any
	// factorization would have complex coefficients.
	factorComplex
)

// factorQuartic factors x⁴ + a x³ + b x² + c x + d into two quadratics.
func factorQuartic(a, b, c, d float64, rescale bool) ([2]quadFactor, factorResult) {
	// Relative backward errors of a candidate factorization, with respect to
	// the cubic, quadratic, linear (epsQ) and constant (epsT) coefficients.
	epsQ := func(f1, f2 quadFactor) float64 {
		return relativeEpsilon(f1.alpha+f2.alpha, a) +
			relativeEpsilon(f1.beta+f1.alpha*f2.alpha+f2.beta, b) +
			relativeEpsilon(f1.beta*f2.alpha+f1.alpha*f2.beta, c)
	}
	epsT := func(f1, f2 quadFactor) float64 {
		return epsQ(f1, f2) + relativeEpsilon(f1.beta*f2.beta, d)
	}

	g, h, ok := shiftedResolvent(a, b, c, d, rescale)
	if !ok {
		return [2]quadFactor{}, factorOverflow
	}
	phi := depressedCubicDominant(g, h)
	if rescale {
		phi *= resolventScale
	}

	// LDLᵀ decomposition; pick the (d2, l2) candidate with the smallest error.
	l1 := a * 0.5
	l3 := (1.0/6.0)*b + 0.5*phi
	delt2 := c - a*l3
	d2c1 := (2.0/3.0)*b - phi - l1*l1
	l2c1 := 0.5 * delt2 / d2c1
	l2c2 := 2.0 * (d - l3*l3) / delt2
	d2c2 := 0.5 * delt2 / l2c2
	var d2, l2, best float64
	for i, cand := range [...][2]float64{{d2c1, l2c1}, {d2c2, l2c2}, {d2c1, l2c2}} {
		e := relativeEpsilon(cand[0]+l1*l1+2.0*l3, b) +
			relativeEpsilon(2.0*(cand[0]*cand[1]+l1*l3), c) +
			relativeEpsilon(cand[0]*cand[1]*cand[1]+l3*l3, d)
		if i == 0 || e < best {
			d2, l2, best = cand[0], cand[1], e
		}
	}
	if math.IsNaN(d2) {
		return [2]quadFactor{}, factorOverflow
	}
	// When both factors share the same alpha, d2 vanishes and its computed
	// value is pure rounding noise, whose sign must not decide between the
	// branches below.
	if math.Abs(d2) <= 16*epsilon64*(math.Abs((2.0/3.0)*b)+math.Abs(phi)+l1*l1) {
		d2 = 0
	}

	var f1, f2 quadFactor
	switch {
	case d2 < 0.0:
		sq := math.Sqrt(-d2)
		f1 = quadFactor{l1 + sq, l3 + sq*l2}
		f2 = quadFactor{l1 - sq, l3 - sq*l2}
		if math.Abs(f2.beta) < math.Abs(f1.beta) {
			f2.beta = d / f1.beta
		} else if math.Abs(f2.beta) > math.Abs(f1.beta) {
			f1.beta = d / f2.beta
		}
		if math.Abs(f1.alpha) != math.Abs(f2.alpha) {
			// Recompute the smaller alpha from the other coefficients, keeping
			// whichever candidate fits best. The first candidate can't
			// overflow.
			var cands [3][2]float64
			if math.Abs(f1.alpha) < math.Abs(f2.alpha) {
				cands = [3][2]float64{
					{a - f2.alpha, f2.alpha},
					{(c - f1.beta*f2.alpha) / f2.beta, f2.alpha},
					{(b - f2.beta - f1.beta) / f2.alpha, f2.alpha},
				}
			} else {
				cands = [3][2]float64{
					{f1.alpha, a - f1.alpha},
					{f1.alpha, (c - f1.alpha*f2.beta) / f1.beta},
					{f1.alpha, (b - f2.beta - f1.beta) / f1.alpha},
				}
			}
			var bestQ float64
			for i, cand := range cands {
				if math.IsInf(cand[0], 0) || math.IsInf(cand[1], 0) {
					continue
				}
				e := epsQ(quadFactor{cand[0], f1.beta}, quadFactor{cand[1], f2.beta})
				if i == 0 || e < bestQ {
					f1.alpha, f2.alpha, bestQ = cand[0], cand[1], e
				}
			}
		}
	case d2 == 0.0:
		d3 := d - l3*l3
		if d3 > 0.0 {
			// The quartic is (x² + l1 x + l3)² + d3.
			return [2]quadFactor{}, factorComplex
		}
		f1 = quadFactor{l1, l3 + math.Sqrt(-d3)}
		f2 = quadFactor{l1, l3 - math.Sqrt(-d3)}
		if math.Abs(f1.beta) > math.Abs(f2.beta) {
			f2.beta = d / f1.beta
		} else if math.Abs(f2.beta) > math.Abs(f1.beta) {
			f1.beta = d / f2.beta
		}
	default:
		// No real factorization; the roots come in two complex pairs.
		return [2]quadFactor{}, factorComplex
	}

	// Newton-Raphson iteration on the factor coefficients.
	errT := epsT(f1, f2)
	for _i := 0; _i < 8; _i++ {
		if errT == 0.0 {
			break
		}
		n1, n2, ok := newtonFactorStep(a, b, c, d, f1, f2)
		if !ok {
			break
		}
		// We stop if the error doesn't decrease, the paper keeps going.
		e := epsT(n1, n2)
		if !(e < errT) {
			break
		}
		f1, f2, errT = n1, n2, e
	}
	return [2]quadFactor{f1, f2}, factored
}

// epsilon64 is the machine epsilon of float64.
const epsilon64 = 0x1p-52

// resolventScale rescales the shifted coefficients in [shiftedResolvent].
const resolventScale = 3.49e102

// shiftedResolvent shifts the quartic to reduce cancellation and returns the
// coefficients of its depressed resolvent cubic x³ + g x + h.
func shiftedResolvent(a, b, c, d float64, rescale bool) (g, h float64, ok bool) {
	disc := 9.0*a*a - 24.0*b
	s := -0.25 * a
	if disc >= 0.0 {
		if den := 3.0*a + math.Copysign(math.Sqrt(disc), a); den != 0.0 {
			s = -2.0 * b / den
		}
	}
	ap := a + 4.0*s
	bp := b + 3.0*s*(a+2.0*s)
	cp := c + s*(2.0*b+s*(3.0*a+4.0*s))
	dp := d + s*(c+s*(b+s*(a+s)))
	if rescale {
		const kc = resolventScale
		ap, bp, cp, dp = ap/kc, bp/kc, cp/kc, dp/kc
		g = ap*cp - (4.0/kc)*dp - (1.0/3.0)*bp*bp
		h = (ap*cp+(8.0/kc)*dp-(2.0/9.0)*bp*bp)*(1.0/3.0)*bp -
			cp*(cp/kc) -
			ap*ap*dp
	} else {
		g = ap*cp - 4.0*dp - (1.0/3.0)*bp*bp
		h = (ap*cp+8.0*dp-(2.0/9.0)*bp*bp)*(1.0/3.0)*bp -
			cp*cp -
			ap*ap*dp
	}
	if !isFinite(g) || !isFinite(h) {
		return 0, 0, false
	}
	return g, h, true
}

// newtonFactorStep performs one Newton step on the system
// (x² + α₁x + β₁)(x² + α₂x + β₂) = x⁴ + a x³ + b x² + c x + d.
func newtonFactorStep(a, b, c, d float64, f1, f2 quadFactor) (quadFactor, quadFactor, bool) {
	alpha1, beta1 := f1.alpha, f1.beta
	alpha2, beta2 := f2.alpha, f2.beta
	r0 := beta1*beta2 - d
	r1 := beta1*alpha2 + alpha1*beta2 - c
	r2 := beta1 + alpha1*alpha2 + beta2 - b
	r3 := alpha1 + alpha2 - a
	c1 := alpha1 - alpha2
	detJ := beta1*beta1 - beta1*(alpha2*c1+2.0*beta2) +
		beta2*(alpha1*c1+beta2)
	if detJ == 0.0 {
		return f1, f2, false
	}
	inv := 1.0 / detJ
	c2 := beta2 - beta1
	c3 := beta1*alpha2 - alpha1*beta2
	dz0 := c1*r0 + c2*r1 + c3*r2 - (beta1*c2+alpha1*c3)*r3
	dz1 := (alpha1*c1+c2)*r0 -
		beta1*c1*r1 -
		beta1*c2*r2 -
		beta1*c3*r3
	dz2 := -c1*r0 - c2*r1 - c3*r2 + (alpha2*c3+beta2*c2)*r3
	dz3 := -(alpha2*c1+c2)*r0 +
		beta2*c1*r1 +
		beta2*c2*r2 +
		beta2*c3*r3
	return quadFactor{alpha1 - inv*dz0, beta1 - inv*dz1},
		quadFactor{alpha2 - inv*dz2, beta2 - inv*dz3},
		true
}

// depressedCubicDominant returns the dominant root of the depressed cubic
// x³ + g x + h = 0.
//
// Section 2.2 of Orellana and De Michele.
func depressedCubicDominant(g, h float64) float64 {
	q := (-1.0 / 3.0) * g
	r := 0.5 * h
	// k is only needed when q³ or r² might overflow.
	var k option[float64]
	if math.Abs(q) >= 1e102 || math.Abs(r) >= 1e154 {
		if math.Abs(q) < math.Abs(r) {
			k.set(1.0 - q*((q/r)*(q/r)))
		} else {
			v := ((r/q)*(r/q))/q - 1.0
			if math.Signbit(q) {
				v = -v
			}
			k.set(v)
		}
	}

	var phi0 float64
	switch {
	case k.isSet && r == 0.0:
		if g <= 0.0 {
			phi0 = math.Sqrt(-g)
		}
	case k.isSet && k.value < 0.0 || !k.isSet && r*r < q*q*q:
		var t float64
		if k.isSet {
			t = r / q / math.Sqrt(q)
		} else {
			t = r / math.Sqrt(q*q*q)
		}
		phi0 = -2.0 * math.Sqrt(q) * math.Copysign(math.Cos(math.Acos(min(math.Abs(t), 1))*(1.0/3.0)), t)
	default:
		var u float64
		switch {
		case !k.isSet:
			u = -r - math.Copysign(math.Sqrt(r*r-q*q*q), r)
		case math.Abs(q) < math.Abs(r):
			u = -r * (1.0 + math.Sqrt(k.value))
		default:
			u = -r - math.Copysign(math.Sqrt(math.Abs(q))*q*math.Sqrt(k.value), r)
		}
		u = math.Cbrt(u)
		phi0 = u
		if u != 0.0 {
			phi0 += q / u
		}
	}

	// Refine with Newton-Raphson iteration.
	x := phi0
	f := (x*x+g)*x + h
	const epsM = 2.22045e-16
	if math.Abs(f) < epsM*max(x*x*x, g*x, h) {
		return x
	}
	for _i := 0; _i < 8; _i++ {
		df := 3.0*x*x + g
		if df == 0.0 {
			break
		}
		nx := x - f/df
		nf := (nx*nx+g)*nx + h
		if nf == 0.0 {
			return nx
		}
		if math.Abs(nf) >= math.Abs(f) {
			break
		}
		x, f = nx, nf
	}
	return x
}

// relativeEpsilon computes the error of raw relative to the coefficient a.
//
// A helper function from the Orellana and De Michele paper.
func relativeEpsilon(raw, a float64) float64 {
	if a == 0.0 {
		return math.Abs(raw)
	}
	return math.Abs((raw - a) / a)
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}
