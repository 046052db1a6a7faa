package cliffnet

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// CPUFeatures tracks the instruction set extensions of the host. The
// contraction kernels are pure Go; the features are reported so benchmark
// numbers can be attributed to the machine they came from.
type CPUFeatures struct {
	Arch       string
	NumCPU     int
	HasSSE4    bool
	HasAVX     bool
	HasAVX2    bool
	HasFMA     bool
	HasAVX512F bool
	HasNEON    bool // ARM64 ASIMD
}

var cpuFeatures CPUFeatures

func init() {
	detectCPUFeatures()
}

func detectCPUFeatures() {
	cpuFeatures = CPUFeatures{
		Arch:       runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		HasSSE4:    cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
		HasAVX:     cpu.X86.HasAVX,
		HasAVX2:    cpu.X86.HasAVX2,
		HasFMA:     cpu.X86.HasFMA,
		HasAVX512F: cpu.X86.HasAVX512F,
		HasNEON:    cpu.ARM64.HasASIMD,
	}
}

// Features returns the detected CPU features.
func Features() CPUFeatures {
	return cpuFeatures
}

// List returns the names of the detected SIMD extensions.
func (f CPUFeatures) List() []string {
	var names []string
	for _, feat := range []struct {
		name string
		ok   bool
	}{
		{"SSE4", f.HasSSE4},
		{"AVX", f.HasAVX},
		{"AVX2", f.HasAVX2},
		{"FMA", f.HasFMA},
		{"AVX512F", f.HasAVX512F},
		{"NEON", f.HasNEON},
	} {
		if feat.ok {
			names = append(names, feat.name)
		}
	}
	return names
}

// String describes the host for logs.
func (f CPUFeatures) String() string {
	names := f.List()
	if len(names) == 0 {
		return f.Arch + ": no SIMD extensions detected"
	}
	return f.Arch + ": " + strings.Join(names, ", ")
}
