package cliffnet

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeaturesDetected(t *testing.T) {
	f := Features()
	assert.Equal(t, runtime.GOARCH, f.Arch)
	assert.Equal(t, runtime.NumCPU(), f.NumCPU)
	assert.True(t, strings.HasPrefix(f.String(), runtime.GOARCH+": "))

	if runtime.GOARCH != "arm64" {
		assert.False(t, f.HasNEON)
	}
	if runtime.GOARCH != "amd64" && runtime.GOARCH != "386" {
		assert.False(t, f.HasAVX2)
	}
}

func TestFeaturesList(t *testing.T) {
	f := CPUFeatures{Arch: "amd64", HasAVX: true, HasFMA: true}
	assert.Equal(t, []string{"AVX", "FMA"}, f.List())
	assert.Equal(t, "amd64: AVX, FMA", f.String())

	none := CPUFeatures{Arch: "riscv64"}
	assert.Equal(t, "riscv64: no SIMD extensions detected", none.String())
}
