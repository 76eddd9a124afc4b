package vecpoly

import (
	"github.com/ajroetker/go-highway/hwy"

	"github.com/ajroetker/go-estrin/poly"
)

// EvalRational evaluates P(x)/Q(x) at every input in xs, writing results
// to out. It processes min(len(xs), len(out)) inputs.
//
// This applies the scalar rational evaluator to each input
// independently: the reciprocal-substitution stability transform
// branches on each input's magnitude, so inputs on opposite sides of
// |x| = 1 take different paths and cannot share one vector expression.
func EvalRational[T hwy.FloatsNative](xs []T, num, den []T, out []T) {
	size := min(len(xs), len(out))
	for i := 0; i < size; i++ {
		out[i] = poly.EvalRational(xs[i], num, den)
	}
}
