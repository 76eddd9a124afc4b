//go:generate go run github.com/ajroetker/go-estrin/cmd/polygen -output .

package poly

// maxChunk is the number of coefficients consumed per iteration of the
// hybrid sweep. It matches the widest individually specialized evaluator
// in the bank (Poly15).
const maxChunk = 16

// Eval evaluates the polynomial
//
//	coeffs[0] + coeffs[1]*x + ... + coeffs[n-1]*x^(n-1)
//
// where n = len(coeffs). An empty coefficient slice evaluates to zero.
//
// For n <= 16 the matching fixed-degree evaluator from the bank is used
// directly; larger polynomials go through the hybrid Estrin/Horner
// sweep. Results match a plain Horner evaluation up to rounding.
func Eval[T Floats](x T, coeffs []T) T {
	return evalFunc(x, len(coeffs), func(i int) T { return coeffs[i] })
}

// EvalFunc evaluates a polynomial with n coefficients supplied by coeff,
// where coeff(i) is the coefficient of x^i. Each index in [0, n) is
// queried at most once. This allows coefficients to be computed lazily
// or converted from a narrower storage format on the fly.
//
// EvalFunc panics if n is negative.
func EvalFunc[T Floats](x T, n int, coeff func(int) T) T {
	if n < 0 {
		panic("poly: negative coefficient count")
	}
	return evalFunc(x, n, coeff)
}

func evalFunc[T Floats](x T, n int, g func(int) T) T {
	// Fast path for small inputs, computing only the powers of x that
	// the selected evaluator needs.
	switch n {
	case 0:
		return 0
	case 1:
		return g(0)
	case 2:
		return Poly1(x, g(0), g(1))
	case 3:
		return Poly2(x, x*x, g(0), g(1), g(2))
	case 4:
		return Poly3(x, x*x, g(0), g(1), g(2), g(3))
	}

	x2 := x * x
	x4 := x2 * x2

	switch n {
	case 5:
		return Poly4(x, x2, x4, g(0), g(1), g(2), g(3), g(4))
	case 6:
		return Poly5(x, x2, x4, g(0), g(1), g(2), g(3), g(4), g(5))
	case 7:
		return Poly6(x, x2, x4, g(0), g(1), g(2), g(3), g(4), g(5), g(6))
	case 8:
		return Poly7(x, x2, x4, g(0), g(1), g(2), g(3), g(4), g(5), g(6), g(7))
	}

	x8 := x4 * x4

	switch n {
	case 9:
		return Poly8(x, x2, x4, x8, g(0), g(1), g(2), g(3), g(4), g(5), g(6), g(7), g(8))
	case 10:
		return Poly9(x, x2, x4, x8, g(0), g(1), g(2), g(3), g(4), g(5), g(6), g(7), g(8), g(9))
	case 11:
		return Poly10(x, x2, x4, x8, g(0), g(1), g(2), g(3), g(4), g(5), g(6), g(7), g(8), g(9), g(10))
	case 12:
		return Poly11(x, x2, x4, x8, g(0), g(1), g(2), g(3), g(4), g(5), g(6), g(7), g(8), g(9), g(10), g(11))
	case 13:
		return Poly12(x, x2, x4, x8, g(0), g(1), g(2), g(3), g(4), g(5), g(6), g(7), g(8), g(9), g(10), g(11), g(12))
	case 14:
		return Poly13(x, x2, x4, x8, g(0), g(1), g(2), g(3), g(4), g(5), g(6), g(7), g(8), g(9), g(10), g(11), g(12), g(13))
	case 15:
		return Poly14(x, x2, x4, x8, g(0), g(1), g(2), g(3), g(4), g(5), g(6), g(7), g(8), g(9), g(10), g(11), g(12), g(13), g(14))
	case 16:
		return Poly15(x, x2, x4, x8, g(0), g(1), g(2), g(3), g(4), g(5), g(6), g(7), g(8), g(9), g(10), g(11), g(12), g(13), g(14), g(15))
	}

	x16 := x8 * x8

	// Hybrid Estrin/Horner sweep: consume 16 coefficients at a time from
	// the high-order end. Each chunk is an independent Estrin tree; the
	// running sum is shifted up by x^16 per chunk, so the sequential
	// dependency chain is one fused multiply-add per chunk.
	var sum T
	j := n
	for j >= maxChunk {
		j -= maxChunk
		sum = fma(sum, x16, Poly15(x, x2, x4, x8,
			g(j+0), g(j+1), g(j+2), g(j+3), g(j+4), g(j+5), g(j+6), g(j+7),
			g(j+8), g(j+9), g(j+10), g(j+11), g(j+12), g(j+13), g(j+14), g(j+15)))
	}

	// Fold the 0-15 low-order leftover coefficients beneath the
	// accumulated chunks. x^j is assembled from the cached squarings,
	// never by fresh exponentiation.
	var rmx, res T
	switch j {
	case 0:
		return sum
	case 1:
		rmx, res = x, g(0)
	case 2:
		rmx, res = x2, Poly1(x, g(0), g(1))
	case 3:
		rmx, res = x2*x, Poly2(x, x2, g(0), g(1), g(2))
	case 4:
		rmx, res = x4, Poly3(x, x2, g(0), g(1), g(2), g(3))
	case 5:
		rmx, res = x4*x, Poly4(x, x2, x4, g(0), g(1), g(2), g(3), g(4))
	case 6:
		rmx, res = x4*x2, Poly5(x, x2, x4, g(0), g(1), g(2), g(3), g(4), g(5))
	case 7:
		rmx, res = x4*x2*x, Poly6(x, x2, x4, g(0), g(1), g(2), g(3), g(4), g(5), g(6))
	case 8:
		rmx, res = x8, Poly7(x, x2, x4, g(0), g(1), g(2), g(3), g(4), g(5), g(6), g(7))
	case 9:
		rmx, res = x8*x, Poly8(x, x2, x4, x8, g(0), g(1), g(2), g(3), g(4), g(5), g(6), g(7), g(8))
	case 10:
		rmx, res = x8*x2, Poly9(x, x2, x4, x8, g(0), g(1), g(2), g(3), g(4), g(5), g(6), g(7), g(8), g(9))
	case 11:
		rmx, res = x8*x2*x, Poly10(x, x2, x4, x8, g(0), g(1), g(2), g(3), g(4), g(5), g(6), g(7), g(8), g(9), g(10))
	case 12:
		rmx, res = x8*x4, Poly11(x, x2, x4, x8, g(0), g(1), g(2), g(3), g(4), g(5), g(6), g(7), g(8), g(9), g(10), g(11))
	case 13:
		rmx, res = x8*x4*x, Poly12(x, x2, x4, x8, g(0), g(1), g(2), g(3), g(4), g(5), g(6), g(7), g(8), g(9), g(10), g(11), g(12))
	case 14:
		rmx, res = x8*x4*x2, Poly13(x, x2, x4, x8, g(0), g(1), g(2), g(3), g(4), g(5), g(6), g(7), g(8), g(9), g(10), g(11), g(12), g(13))
	case 15:
		rmx, res = x8*x4*x2*x, Poly14(x, x2, x4, x8, g(0), g(1), g(2), g(3), g(4), g(5), g(6), g(7), g(8), g(9), g(10), g(11), g(12), g(13), g(14))
	default:
		// The sweep loop exits with j < maxChunk.
		panic("poly: internal error: remainder out of range")
	}

	return fma(sum, rmx, res)
}
