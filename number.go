package polyroot

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the scalar capability required by the solvers.
//
// Both float32 and float64 qualify, as do named types whose underlying type is
// one of them. Transcendental functions are evaluated in float64 and rounded
// back to T.
type Float interface {
	constraints.Float
}

// Epsilon returns the machine epsilon of T, the difference between 1 and the
// next representable value.
func Epsilon[T Float]() T {
	if is32[T]() {
		return T(0x1p-23)
	}
	return T(0x1p-52)
}

func is32[T Float]() bool {
	return unsafe.Sizeof(T(0)) == 4
}

func nan[T Float]() T {
	return T(math.NaN())
}

func isNaN[T Float](x T) bool {
	return x != x
}

func isFinite[T Float](x T) bool {
	f := float64(x)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func abs[T Float](x T) T {
	return T(math.Abs(float64(x)))
}

func sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

func cbrt[T Float](x T) T {
	return T(math.Cbrt(float64(x)))
}

func atan2[T Float](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

func sincos[T Float](x T) (sin, cos T) {
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

func copysign[T Float](x, sign T) T {
	return T(math.Copysign(float64(x), float64(sign)))
}

// fma computes x*y + z with a single rounding for float64. For float32 the
// product is exact in float64, so only the final conversion rounds again.
func fma[T Float](x, y, z T) T {
	return T(math.FMA(float64(x), float64(y), float64(z)))
}

// nextAfter returns the next representable value of T after x towards y.
func nextAfter[T Float](x, y T) T {
	if is32[T]() {
		return T(math.Nextafter32(float32(x), float32(y)))
	}
	return T(math.Nextafter(float64(x), float64(y)))
}

// finiteOrNaN maps infinities to NaN, so that they can't masquerade as roots.
func finiteOrNaN[T Float](x T) T {
	if !isFinite(x) {
		return nan[T]()
	}
	return x
}
