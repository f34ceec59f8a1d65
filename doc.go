// Package polyroot finds the real roots of polynomials of degree four or less.
// It was designed to serve the needs of 2D graphics applications, such as
// intersecting curves or computing bounding boxes, but it is general enough to
// be useful elsewhere.
//
// # Polynomials
//
// Polynomials are fixed-size arrays of coefficients, stored in decreasing
// order of degree: [Quadratic]{a, b, c} is a x² + b x + c. There is one type
// per degree, from [Constant] to [Quartic], so that the degree is known at
// compile time and every solver returns a fixed-size array. All types
// implement the [Polynomial] interface, and [FromCoefficients] builds one from
// a slice.
//
// The scalar type is any [Float]: float32, float64, or a named type whose
// underlying type is one of them.
//
// # Roots
//
// Solvers return an array with one slot per possible root. Slots that don't
// hold a real root are NaN; complex roots are never computed. A polynomial of
// unsupported degree is a programming error and causes a panic with a
// [*DegreeError], which is distinct from a NaN "no root" result.
//
// If the leading coefficient is zero, or so small that normalizing by it
// overflows, all solvers fall back to the polynomial of the next lower degree
// formed by the remaining coefficients.
//
// # Closed-form and iterative solvers
//
// There are two families of solvers with different trade-offs.
//
// The closed-form solvers, [SolveQuadratic], [SolveCubic], and [SolveQuartic],
// evaluate formulas directly. The quadratic and cubic solvers use Blinn's
// homogeneous formulation, which avoids the cancellation that plagues the
// textbook formulas. The quartic solver factors the polynomial into two
// quadratics. Roots are returned in the order the formulas produce them, and
// double roots are reported twice when detected.
//
// The iterative solvers, [IsolateQuadratic], [IsolateCubic], and
// [IsolateQuartic], use Yuksel's method: the roots of the derivative split the
// real line into ranges on which the polynomial is monotonic, and each range
// that contains a root is refined with Newton's method, safeguarded by
// bisection. Roots are returned in increasing order, to a caller-specified
// tolerance. Multiple roots are reported once.
//
// [Solve] and [Solver] select a family at run time.
//
// All functions are pure and safe for concurrent use.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [Algorithm 1010: Boosting Efficiency in Solving Quartic Equations with No Compromise in Accuracy] by Orellana and De Michele
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [High-Performance Polynomial Root Finding for Graphics] by Cem Yuksel
//   - [How to Solve a Quadratic Equation] by Jim Blinn
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//
// [Algorithm 1010: Boosting Efficiency in Solving Quartic Equations with No Compromise in Accuracy]: https://cristiano-de-michele.netlify.app/publication/orellana-2020/orellana-2020.pdf
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [High-Performance Polynomial Root Finding for Graphics]: https://www.cemyuksel.com/research/polynomials/
// [How to Solve a Quadratic Equation]: https://doi.org/10.1109/MCG.2005.134
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
package polyroot
