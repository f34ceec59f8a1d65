package polyroot

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxDegree is the highest polynomial degree supported by this package.
const MaxDegree = 4

// DefaultTolerance is a default value for functions that take a tolerance
// argument. It is suitable for general-purpose use, such as 2D graphics.
const DefaultTolerance = 1e-6

// Degree is the degree of a polynomial.
type Degree int

const (
	ConstantDegree Degree = iota
	LinearDegree
	QuadraticDegree
	CubicDegree
	QuarticDegree
)

func (d Degree) String() string {
	switch d {
	case ConstantDegree:
		return "constant"
	case LinearDegree:
		return "linear"
	case QuadraticDegree:
		return "quadratic"
	case CubicDegree:
		return "cubic"
	case QuarticDegree:
		return "quartic"
	default:
		return fmt.Sprintf("Degree(%d)", int(d))
	}
}

// MaxRoots returns the number of root slots used for polynomials of degree d.
//
// This is the algebraic maximum number of roots, except for constants, which
// get a single slot for the root at zero of the zero polynomial.
func (d Degree) MaxRoots() int {
	if d == ConstantDegree {
		return 1
	}
	return int(d)
}

// Polynomial describes a polynomial of fixed degree.
//
// Coefficients are stored in decreasing order of degree, so that the first
// coefficient multiplies the highest power of x.
type Polynomial[T Float] interface {
	// Eval evaluates the polynomial at x.
	Eval(x T) T
	Degree() Degree
	// Coefficients returns a copy of the coefficients.
	Coefficients() []T
	String() string
}

var (
	_ Polynomial[float64] = Constant[float64]{}
	_ Polynomial[float64] = Linear[float64]{}
	_ Polynomial[float64] = Quadratic[float64]{}
	_ Polynomial[float64] = Cubic[float64]{}
	_ Polynomial[float64] = Quartic[float64]{}
)

// Constant is the polynomial c0.
type Constant[T Float] [1]T

// Linear is the polynomial c0 x + c1.
type Linear[T Float] [2]T

// Quadratic is the polynomial c0 x² + c1 x + c2.
type Quadratic[T Float] [3]T

// Cubic is the polynomial c0 x³ + c1 x² + c2 x + c3.
type Cubic[T Float] [4]T

// Quartic is the polynomial c0 x⁴ + c1 x³ + c2 x² + c3 x + c4.
type Quartic[T Float] [5]T

func (p Constant[T]) Eval(x T) T { return p[0] }
func (p Linear[T]) Eval(x T) T   { return p[0]*x + p[1] }

func (p Quadratic[T]) Eval(x T) T {
	return (p[0]*x+p[1])*x + p[2]
}

func (p Cubic[T]) Eval(x T) T {
	return ((p[0]*x+p[1])*x+p[2])*x + p[3]
}

func (p Quartic[T]) Eval(x T) T {
	return (((p[0]*x+p[1])*x+p[2])*x+p[3])*x + p[4]
}

func (Constant[T]) Degree() Degree  { return ConstantDegree }
func (Linear[T]) Degree() Degree    { return LinearDegree }
func (Quadratic[T]) Degree() Degree { return QuadraticDegree }
func (Cubic[T]) Degree() Degree     { return CubicDegree }
func (Quartic[T]) Degree() Degree   { return QuarticDegree }

func (p Constant[T]) Coefficients() []T  { return append([]T(nil), p[:]...) }
func (p Linear[T]) Coefficients() []T    { return append([]T(nil), p[:]...) }
func (p Quadratic[T]) Coefficients() []T { return append([]T(nil), p[:]...) }
func (p Cubic[T]) Coefficients() []T     { return append([]T(nil), p[:]...) }
func (p Quartic[T]) Coefficients() []T   { return append([]T(nil), p[:]...) }

// Deriv returns the derivative.
func (p Linear[T]) Deriv() Constant[T] { return Constant[T]{p[0]} }

// Deriv returns the derivative.
func (p Quadratic[T]) Deriv() Linear[T] { return Linear[T]{2 * p[0], p[1]} }

// Deriv returns the derivative.
func (p Cubic[T]) Deriv() Quadratic[T] {
	return Quadratic[T]{3 * p[0], 2 * p[1], p[2]}
}

// Deriv returns the derivative.
func (p Quartic[T]) Deriv() Cubic[T] {
	return Cubic[T]{4 * p[0], 3 * p[1], 2 * p[2], p[3]}
}

func (p Constant[T]) String() string  { return format(p[:]) }
func (p Linear[T]) String() string    { return format(p[:]) }
func (p Quadratic[T]) String() string { return format(p[:]) }
func (p Cubic[T]) String() string     { return format(p[:]) }
func (p Quartic[T]) String() string   { return format(p[:]) }

// format renders coefficients as "1×x^2 + 2×x^1 + 3".
func format[T Float](c []T) string {
	bits := 64
	if is32[T]() {
		bits = 32
	}
	sb := &strings.Builder{}
	n := len(c) - 1
	for i, v := range c {
		sb.WriteString(strconv.FormatFloat(float64(v), 'f', -1, bits))
		if i != n {
			fmt.Fprintf(sb, "×x^%d + ", n-i)
		}
	}
	return sb.String()
}

// Eval evaluates the polynomial with coefficients c, in decreasing order of
// degree, at x.
//
// Eval panics with a [*DegreeError] if c is empty or describes a polynomial of
// degree higher than [MaxDegree].
func Eval[T Float](c []T, x T) T {
	switch len(c) {
	case 1:
		return Constant[T](c).Eval(x)
	case 2:
		return Linear[T](c).Eval(x)
	case 3:
		return Quadratic[T](c).Eval(x)
	case 4:
		return Cubic[T](c).Eval(x)
	case 5:
		return Quartic[T](c).Eval(x)
	default:
		panic(&DegreeError{Op: "Eval", Degree: len(c) - 1})
	}
}

// FromCoefficients returns the polynomial with coefficients c, in decreasing
// order of degree. The concrete type of the result is one of [Constant],
// [Linear], [Quadratic], [Cubic], or [Quartic].
//
// The degree is taken from the number of coefficients; leading zeros are kept.
func FromCoefficients[T Float](c ...T) (Polynomial[T], error) {
	switch len(c) {
	case 1:
		return Constant[T](c), nil
	case 2:
		return Linear[T](c), nil
	case 3:
		return Quadratic[T](c), nil
	case 4:
		return Cubic[T](c), nil
	case 5:
		return Quartic[T](c), nil
	default:
		return nil, &DegreeError{Op: "FromCoefficients", Degree: len(c) - 1}
	}
}
