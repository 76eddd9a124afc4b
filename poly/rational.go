package poly

// EvalRational evaluates the rational polynomial P(x)/Q(x), where num
// holds the coefficients of P and den the coefficients of Q, both in
// ascending order of powers. Numerator and denominator lengths are
// independent.
//
// When either polynomial has more than two coefficients and |x| > 1,
// both are evaluated at 1/x with reversed coefficient order instead, so
// every intermediate power stays within [-1, 1] where floating-point
// relative precision is best; the quotient is then corrected for the
// degree difference. The transform changes only rounding, never the
// mathematical value.
//
// A zero denominator is not special-cased: the result follows IEEE 754
// division semantics (±Inf or NaN). A denominator with no coefficients
// at all is a contract violation, not a zero polynomial, and panics.
func EvalRational[T Floats](x T, num, den []T) T {
	if len(den) == 0 {
		panic("poly: empty denominator")
	}
	return evalRational(x,
		len(num), func(i int) T { return num[i] },
		len(den), func(i int) T { return den[i] })
}

// EvalRationalFunc evaluates P(x)/Q(x) with the numerator's p
// coefficients supplied by num and the denominator's q coefficients by
// den, where num(i) and den(i) are the coefficients of x^i. Each index
// is queried at most once per polynomial.
//
// EvalRationalFunc panics if p is negative or q is not positive.
func EvalRationalFunc[T Floats](x T, p int, num func(int) T, q int, den func(int) T) T {
	if p < 0 || q < 0 {
		panic("poly: negative coefficient count")
	}
	if q == 0 {
		panic("poly: empty denominator")
	}
	return evalRational(x, p, num, q, den)
}

// EvalRationalBalanced is EvalRational restricted to numerator and
// denominator of equal length. It panics if the lengths differ, for
// callers whose contract guarantees matched coefficient counts.
func EvalRationalBalanced[T Floats](x T, num, den []T) T {
	if len(num) != len(den) {
		panic("poly: numerator and denominator coefficient counts differ")
	}
	return EvalRational(x, num, den)
}

func evalRational[T Floats](x T, p int, num func(int) T, q int, den func(int) T) T {
	if (p > 2 || q > 2) && x*x > 1 {
		// Evaluate the mirrored polynomials at z = 1/x:
		//
		//	P(x) = x^(p-1) * Prev(1/x)
		//
		// so Prev(z)/Qrev(z) = P(x)/Q(x) * x^(q-p). The asymmetry factor
		// is divided back out below.
		z := 1 / x
		n := evalFunc(z, p, func(i int) T { return num(p - i - 1) })
		d := evalFunc(z, q, func(i int) T { return den(q - i - 1) })
		r := n / d

		if p == q {
			return r
		}
		var u T
		var e int
		if p < q {
			u, e = z, q-p
		} else {
			u, e = x, p-q
		}
		return mulPow(r, u, e)
	}

	// |x| <= 1 (or both polynomials are short): powers of x are already
	// in the numerically safe range.
	return evalFunc(x, p, num) / evalFunc(x, q, den)
}

// mulPow returns r * u^e using exponentiation by squaring.
func mulPow[T Floats](r, u T, e int) T {
	for e > 0 {
		if e&1 == 1 {
			r *= u
		}
		u *= u
		e >>= 1
	}
	return r
}
