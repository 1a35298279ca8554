package sekai

import "math/bits"

// Lane kernels used by bitmask256. The generic versions are the default;
// platform init functions switch to hardware popcount when the CPU reports it.
var (
	kernelCount = countGeneric
	kernelEmpty = emptyGeneric
	kernelName  = "generic"
)

// Kernel returns the name of the lane kernel selected for this CPU.
func Kernel() string {
	return kernelName
}

func emptyGeneric(m *bitmask256) bool {
	return m[0]|m[1]|m[2]|m[3] == 0
}

// countGeneric is a SWAR population count per lane followed by a horizontal
// sum of the four lane counts.
func countGeneric(m *bitmask256) int {
	var sum uint64
	for _, v := range m {
		v -= (v >> 1) & 0x5555555555555555
		v = (v & 0x3333333333333333) + ((v >> 2) & 0x3333333333333333)
		v = (v + (v >> 4)) & 0x0f0f0f0f0f0f0f0f
		sum += (v * 0x0101010101010101) >> 56
	}
	return int(sum)
}

func countPopcnt(m *bitmask256) int {
	return bits.OnesCount64(m[0]) + bits.OnesCount64(m[1]) +
		bits.OnesCount64(m[2]) + bits.OnesCount64(m[3])
}
