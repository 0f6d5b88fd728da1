// Package cpu reports the host characteristics surfaced by the pipebench
// tool alongside throughput numbers, so results can be compared across
// machines.
package cpu

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes the SIMD capabilities and architecture of the current
// process.
type Features struct {
	HasAVX2      bool
	HasAVX512    bool
	HasSSE2      bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasSSE2:      cpu.X86.HasSSE2,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// Summary returns a one-line human-readable feature report.
func (f Features) Summary() string {
	simd := "none"

	switch {
	case f.HasAVX512:
		simd = "avx512"
	case f.HasAVX2:
		simd = "avx2"
	case f.HasSSE2:
		simd = "sse2"
	case f.HasNEON:
		simd = "neon"
	}

	return fmt.Sprintf("arch=%s simd=%s", f.Architecture, simd)
}
