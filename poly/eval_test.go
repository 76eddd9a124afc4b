package poly

import (
	"math"
	"testing"
)

var testXs = []float64{0.0, 0.2, 0.5, -0.5, 0.99, 1.0, -1.0, 1.5, -2.0, 3.0}

// TestEvalMatchesHorner checks every coefficient count from the empty
// polynomial through two full sweep chunks plus remainder.
func TestEvalMatchesHorner(t *testing.T) {
	for n := 0; n <= 40; n++ {
		c := testCoeffs(n)
		for _, x := range testXs {
			got := Eval(x, c)
			want := horner(x, c)
			if !closeTo(got, want, 1e-9) {
				t.Errorf("Eval(x=%v, n=%d) = %v, want %v", x, n, got, want)
			}
		}
	}
}

func TestEvalEmpty(t *testing.T) {
	for _, x := range testXs {
		if got := Eval(x, nil); got != 0 {
			t.Errorf("Eval(%v, nil) = %v, want 0", x, got)
		}
	}
}

// TestEvalConstant checks that a single coefficient ignores x entirely,
// including non-finite x.
func TestEvalConstant(t *testing.T) {
	for _, x := range []float64{0, 2.5, math.Inf(1), math.NaN()} {
		if got := Eval(x, []float64{42.5}); got != 42.5 {
			t.Errorf("Eval(%v, [42.5]) = %v, want 42.5", x, got)
		}
	}
}

// TestEvalChunkBoundaries pins the crossover between the fixed-degree
// bank and the hybrid sweep, and the first full extra chunk.
func TestEvalChunkBoundaries(t *testing.T) {
	for _, n := range []int{15, 16, 17, 31, 32, 33} {
		c := testCoeffs(n)
		for _, x := range []float64{0.5, -0.5, 1.25, -1.25} {
			got := Eval(x, c)
			want := horner(x, c)
			if !closeTo(got, want, 1e-12) {
				t.Errorf("Eval(x=%v, n=%d) = %v, want %v", x, n, got, want)
			}
		}
	}
}

func TestEvalConcreteScenario(t *testing.T) {
	// 1.6*0.5^3 + 0.4*0.5^2 + 0.3*0.5 + 1.0 = 1.45
	got := Eval(0.5, []float64{1.0, 0.3, 0.4, 1.6})
	if math.Abs(got-1.45) > 1e-6 {
		t.Errorf("Eval(0.5) = %v, want 1.45", got)
	}
}

// TestEvalLargeRegression is the fixed-vector regression for a
// 42-coefficient polynomial: two full sweep chunks and a 10-coefficient
// remainder.
func TestEvalLargeRegression(t *testing.T) {
	c := testCoeffs(42)
	got := Eval(0.2, c)
	want := horner(0.2, c)
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("Eval(0.2, 42 coeffs) = %v, want %v (diff %v)", got, want, got-want)
	}
}

// TestEvalFuncMatchesEval checks the pull-based entry point returns
// bit-identical results to the slice form for every supported size.
func TestEvalFuncMatchesEval(t *testing.T) {
	for n := 0; n <= 40; n++ {
		c := testCoeffs(n)
		for _, x := range testXs {
			fromSlice := Eval(x, c)
			fromFunc := EvalFunc(x, n, func(i int) float64 { return c[i] })
			if fromSlice != fromFunc && !(math.IsNaN(fromSlice) && math.IsNaN(fromFunc)) {
				t.Errorf("EvalFunc(x=%v, n=%d) = %v, Eval = %v", x, n, fromFunc, fromSlice)
			}
		}
	}
}

// TestEvalFuncConverting evaluates float32-stored coefficients at
// float64 precision through a converting callback.
func TestEvalFuncConverting(t *testing.T) {
	stored := []float32{1.0, 0.3, 0.4, 1.6}
	got := EvalFunc(0.5, len(stored), func(i int) float64 { return float64(stored[i]) })
	if math.Abs(got-1.45) > 1e-6 {
		t.Errorf("EvalFunc(converting) = %v, want 1.45", got)
	}
}

func TestEvalFuncNegativeCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("EvalFunc with negative count did not panic")
		}
	}()
	EvalFunc(1.0, -1, func(i int) float64 { return 0 })
}

func TestEvalFloat32(t *testing.T) {
	for n := 0; n <= 40; n++ {
		c := make([]float32, n)
		for i := range c {
			c[i] = float32(1.5 * math.Sin(float64(i+1)))
		}
		for _, x := range []float32{0.5, -0.5, 1.5} {
			got := Eval(x, c)
			want := horner(x, c)
			if !closeTo(float64(got), float64(want), 1e-4) {
				t.Errorf("Eval[float32](x=%v, n=%d) = %v, want %v", x, n, got, want)
			}
		}
	}
}

// TestEvalQueriesEachIndexOnce verifies the accessor contract: every
// index in [0, n) is pulled exactly once.
func TestEvalQueriesEachIndexOnce(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 16, 17, 33, 40} {
		seen := make([]int, n)
		EvalFunc(0.5, n, func(i int) float64 {
			seen[i]++
			return float64(i)
		})
		for i, count := range seen {
			if count != 1 {
				t.Errorf("n=%d: index %d queried %d times", n, i, count)
			}
		}
	}
}
