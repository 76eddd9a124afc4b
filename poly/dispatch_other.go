//go:build !amd64 && !arm64

package poly

func init() {
	// Unknown architecture: assume math.FMA is emulated.
	hardwareFMA = false
}
