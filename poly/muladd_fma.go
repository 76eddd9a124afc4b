//go:build fma

package poly

import "math"

// fma computes x*m + a with a single rounding via math.FMA.
//
// float32 operands are widened to float64 for the fused operation and
// rounded back on return. Whether the operation compiles to a hardware
// instruction is reported by HardwareFMA.
func fma[T Floats](x, m, a T) T {
	return T(math.FMA(float64(x), float64(m), float64(a)))
}

// UsingFMA reports whether this build routes multiply-add through
// math.FMA. It is true for builds with -tags fma.
func UsingFMA() bool {
	return true
}
