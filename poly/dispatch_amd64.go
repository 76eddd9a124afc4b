//go:build amd64

package poly

import "golang.org/x/sys/cpu"

func init() {
	if NoFMAEnv() {
		return
	}
	// FMA3 (Haswell+, Piledriver+). Plain amd64 baseline does not
	// guarantee it, so ask the CPU.
	hardwareFMA = cpu.X86.HasFMA
}
