// Package poly evaluates polynomials and rational polynomials of
// arbitrary degree, structured for instruction-level parallelism.
//
// Each polynomial is evaluated with Estrin's scheme: adjacent
// coefficients are paired with one multiply-add each, and the pairs are
// combined through precomputed powers of x, so independent subtrees have
// no data dependency on each other. Polynomials longer than 16
// coefficients are consumed in chunks of 16, Horner-style between
// chunks, which keeps the sequential dependency chain at O(n/16) fused
// multiply-adds while each chunk parallelizes internally.
//
// Basic usage:
//
//	y := poly.Eval(x, coeffs)           // sum of coeffs[i] * x^i
//	r := poly.EvalRational(x, num, den) // P(x) / Q(x)
//
// Whether multiply-add is fused is a build-time choice: compile with
// -tags fma to route every multiply-add through math.FMA. The default
// build uses a separate multiply and add. The two differ only in
// rounding, never in the evaluation structure.
package poly

// Floats is a constraint for the floating-point types a polynomial can
// be evaluated over.
type Floats interface {
	~float32 | ~float64
}
