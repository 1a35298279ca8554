//go:build amd64

package sekai

import "golang.org/x/sys/cpu"

func init() {
	if cpu.X86.HasPOPCNT {
		kernelCount = countPopcnt
		kernelName = "popcnt"
	}
}
