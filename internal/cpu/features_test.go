package cpu

import (
	"strings"
	"testing"
)

func TestDetectFeatures(t *testing.T) {
	t.Parallel()

	f := DetectFeatures()

	if f.Architecture == "" {
		t.Fatal("Architecture is empty")
	}

	sum := f.Summary()
	if !strings.Contains(sum, "arch="+f.Architecture) || !strings.Contains(sum, "simd=") {
		t.Errorf("Summary() = %q", sum)
	}
}
