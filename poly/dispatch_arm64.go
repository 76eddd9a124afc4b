//go:build arm64

package poly

func init() {
	// FMADD/FMSUB are part of the arm64 baseline.
	hardwareFMA = !NoFMAEnv()
}
