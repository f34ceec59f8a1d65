package polyroot

import (
	"errors"
	"fmt"
)

// ErrUnsupportedDegree is reported for polynomials whose degree exceeds
// [MaxDegree], or that have no coefficients at all.
var ErrUnsupportedDegree = errors.New("polyroot: unsupported polynomial degree")

// DegreeError describes an operation that was attempted on a polynomial of
// unsupported degree. The dynamic entry points ([Eval], [Solve]) panic with a
// *DegreeError; [FromCoefficients] returns one.
//
// A DegreeError always unwraps to [ErrUnsupportedDegree].
type DegreeError struct {
	Op string
	// Degree is the degree that was requested, -1 for an empty coefficient
	// list.
	Degree int
}

func (e *DegreeError) Error() string {
	return fmt.Sprintf("polyroot: %s: degree %d is not implemented (max %d)", e.Op, e.Degree, MaxDegree)
}

func (e *DegreeError) Unwrap() error {
	return ErrUnsupportedDegree
}
