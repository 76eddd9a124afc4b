//go:build !fma

package poly

// fma computes x*m + a with a separate multiply and add (two roundings).
// Build with -tags fma to use a single-rounding fused multiply-add.
func fma[T Floats](x, m, a T) T {
	return x*m + a
}

// UsingFMA reports whether this build routes multiply-add through
// math.FMA. It is false for the default build.
func UsingFMA() bool {
	return false
}
