package polyroot

import (
	"fmt"
	"slices"
)

// Method selects a family of root finders.
type Method int

const (
	// ClosedForm uses direct formulas: [SolveQuadratic], [SolveCubic] and
	// [SolveQuartic]. Roots are not sorted and the tolerance is ignored.
	ClosedForm Method = iota
	// Iterative isolates roots between critical points and refines them:
	// [IsolateQuadratic], [IsolateCubic] and [IsolateQuartic]. Roots are
	// sorted.
	Iterative
)

func (m Method) String() string {
	switch m {
	case ClosedForm:
		return "closed-form"
	case Iterative:
		return "iterative"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// SolveConstant returns the root of a constant polynomial.
//
// A constant that is within tol of zero is zero everywhere; 0 is reported as
// its representative root. Any other constant has no root, and NaN is
// returned.
func SolveConstant[T Float](p Constant[T], tol T) [1]T {
	if abs(p[0]) <= tol {
		return [1]T{0}
	}
	return [1]T{nan[T]()}
}

// SolveLinear returns the root of p[0] x + p[1] = 0, or NaN if p[0] is zero.
func SolveLinear[T Float](p Linear[T]) [1]T {
	return [1]T{finiteOrNaN(-p[1] / p[0])}
}

// Solve finds the real roots of p using the family of solvers selected by m.
//
// The result has [Degree.MaxRoots] elements; slots without a real root are NaN.
// tol is passed to the iterative solvers and to [SolveConstant].
//
// Solve panics with a [*DegreeError] if p isn't one of [Constant], [Linear],
// [Quadratic], [Cubic], or [Quartic], and panics if m isn't a known method.
func Solve[T Float](p Polynomial[T], m Method, tol T) []T {
	if m != ClosedForm && m != Iterative {
		panic(fmt.Sprintf("polyroot: unknown method %v", m))
	}
	switch p := p.(type) {
	case Constant[T]:
		r := SolveConstant(p, tol)
		return r[:]
	case Linear[T]:
		r := SolveLinear(p)
		return r[:]
	case Quadratic[T]:
		var r [2]T
		if m == ClosedForm {
			r = SolveQuadratic(p)
		} else {
			r = IsolateQuadratic(p)
		}
		return r[:]
	case Cubic[T]:
		var r [3]T
		if m == ClosedForm {
			r = SolveCubic(p)
		} else {
			r = IsolateCubic(p, tol)
		}
		return r[:]
	case Quartic[T]:
		var r [4]T
		if m == ClosedForm {
			r = SolveQuartic(p)
		} else {
			r = IsolateQuartic(p, tol)
		}
		return r[:]
	default:
		panic(&DegreeError{Op: "Solve", Degree: int(p.Degree())})
	}
}

// Solver specifies settings for finding roots.
type Solver[T Float] struct {
	Method Method
	// Tolerance controls the accuracy of the iterative solvers, trading
	// precision for the number of iterations. The zero value refines roots as
	// far as the arithmetic allows. See [DefaultTolerance].
	Tolerance T
}

// Roots returns the real roots of p in increasing order. Repeated roots appear
// as often as the selected method reports them.
func (s Solver[T]) Roots(p Polynomial[T]) []T {
	roots := slices.DeleteFunc(Solve(p, s.Method, s.Tolerance), isNaN[T])
	slices.Sort(roots)
	return roots
}

// Count returns the number of real roots reported for p.
func (s Solver[T]) Count(p Polynomial[T]) int {
	return len(s.Roots(p))
}
