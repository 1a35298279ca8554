//go:build arm64

package sekai

import "golang.org/x/sys/cpu"

func init() {
	if cpu.ARM64.HasASIMD {
		kernelCount = countPopcnt
		kernelName = "asimd"
	}
}
