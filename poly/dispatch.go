package poly

import (
	"os"
	"strconv"
)

// hardwareFMA is set by init() in dispatch_*.go files.
var hardwareFMA bool

// HardwareFMA reports whether this CPU executes math.FMA as a single
// fused instruction. When false, -tags fma builds still compute a
// correctly fused result, but through a slower software path.
func HardwareFMA() bool {
	return hardwareFMA
}

// NoFMAEnv checks if the POLY_NO_FMA environment variable is set.
// When set, HardwareFMA reports false regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoFMAEnv() bool {
	val := os.Getenv("POLY_NO_FMA")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
