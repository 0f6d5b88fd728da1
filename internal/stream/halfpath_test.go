package stream

import (
	"testing"

	"github.com/cwbudde/algo-pipefft/internal/fixed"
)

func TestSplitter(t *testing.T) {
	t.Parallel()

	sp := NewSplitter(8)

	var outA, outB []fixed.Complex
	for i := 0; i < 16; i++ {
		a, b, ok := sp.Step(label(i), true)
		if ok {
			outA = append(outA, a)
			outB = append(outB, b)
		}
	}

	// Two blocks, each paired as (j, j+4).
	pairsEqual(t, "A", outA, labels(0, 1, 2, 3, 8, 9, 10, 11))
	pairsEqual(t, "B", outB, labels(4, 5, 6, 7, 12, 13, 14, 15))
}

func TestSplitterGaps(t *testing.T) {
	t.Parallel()

	sp := NewSplitter(8)

	var outA, outB []fixed.Complex
	fed := 0
	for tick := 0; fed < 8; tick++ {
		valid := tick%2 == 0

		var a, b fixed.Complex
		var ok bool
		if valid {
			a, b, ok = sp.Step(label(fed), true)
			fed++
		} else {
			a, b, ok = sp.Step(fixed.Complex{}, false)
		}

		if ok {
			outA = append(outA, a)
			outB = append(outB, b)
		}
	}

	pairsEqual(t, "A", outA, labels(0, 1, 2, 3))
	pairsEqual(t, "B", outB, labels(4, 5, 6, 7))
}

func TestInterleaver(t *testing.T) {
	t.Parallel()

	il := NewInterleaver(8)

	inA := labels(0, 2, 4, 6)
	inB := labels(1, 3, 5, 7)

	var out []fixed.Complex
	for tick := 0; tick < 12 && len(out) < 8; tick++ {
		var a, b fixed.Complex
		valid := tick < len(inA)
		if valid {
			a, b = inA[tick], inB[tick]
		}

		o, ok := il.Step(a, b, valid)
		if ok {
			out = append(out, o)
		}
	}

	pairsEqual(t, "out", out, labels(0, 1, 2, 3, 4, 5, 6, 7))
}

// TestInterleaverBurst checks the queue: pairs arrive two samples per tick
// but leave one per tick, so half the block is still pending when the input
// burst ends.
func TestInterleaverBurst(t *testing.T) {
	t.Parallel()

	il := NewInterleaver(16)

	var out []fixed.Complex
	for tick := 0; tick < 24 && len(out) < 16; tick++ {
		var a, b fixed.Complex
		valid := tick < 8
		if valid {
			a, b = label(2*tick), label(2*tick+1)
		}

		o, ok := il.Step(a, b, valid)
		if ok {
			out = append(out, o)
		}

		// One sample per tick from the first pair onward.
		if want := min(tick+1, 16); len(out) != want {
			t.Fatalf("tick %d: drained %d samples, want %d", tick, len(out), want)
		}
	}

	pairsEqual(t, "out", out, sequentialBlock(16))
}

// sequentialBlock returns one block of sequential labels.
func sequentialBlock(n int) []fixed.Complex {
	out := make([]fixed.Complex, n)
	for i := range out {
		out[i] = label(i)
	}

	return out
}

func TestDeinterleaver(t *testing.T) {
	t.Parallel()

	di := NewDeinterleaver()

	var outA, outB []fixed.Complex
	fed := 0
	for tick := 0; fed < 8; tick++ {
		valid := tick%3 != 2 // gaps must not break the pairing

		var a, b fixed.Complex
		var ok bool
		if valid {
			a, b, ok = di.Step(label(fed), true)
			fed++
		} else {
			a, b, ok = di.Step(fixed.Complex{}, false)
		}

		if ok {
			outA = append(outA, a)
			outB = append(outB, b)
		}
	}

	pairsEqual(t, "A", outA, labels(0, 2, 4, 6))
	pairsEqual(t, "B", outB, labels(1, 3, 5, 7))
}

func TestMerger(t *testing.T) {
	t.Parallel()

	mg := NewMerger(8)

	// Two blocks of (first-half, second-half) pairs.
	inA := labels(0, 1, 2, 3, 8, 9, 10, 11)
	inB := labels(4, 5, 6, 7, 12, 13, 14, 15)

	var out []fixed.Complex
	for tick := 0; tick < 32 && len(out) < 16; tick++ {
		var a, b fixed.Complex
		valid := tick < len(inA)
		if valid {
			a, b = inA[tick], inB[tick]
		}

		o, ok := mg.Step(a, b, valid)
		if ok {
			out = append(out, o)
		}
	}

	if len(out) != 16 {
		t.Fatalf("collected %d samples, want 16", len(out))
	}

	for i := range out {
		if out[i] != label(i) {
			t.Errorf("sample %d: got %v, want %v", i, out[i], label(i))
		}
	}
}

func TestMergerNoEarlyOutput(t *testing.T) {
	t.Parallel()

	mg := NewMerger(8)

	// Nothing may leave before the first block is complete.
	for tick := 0; tick < 3; tick++ {
		if _, ok := mg.Step(label(tick), label(tick+4), true); ok {
			t.Fatalf("tick %d: output asserted before block complete", tick)
		}
	}
}

func TestAdapterReset(t *testing.T) {
	t.Parallel()

	sp := NewSplitter(8)
	sp.Step(label(1), true)
	sp.Reset()
	if a, b, ok := sp.Step(label(2), true); ok {
		t.Errorf("splitter after reset: unexpected output (%v, %v)", a, b)
	}

	di := NewDeinterleaver()
	di.Step(label(1), true)
	di.Reset()
	if _, _, ok := di.Step(label(2), true); ok {
		t.Error("deinterleaver after reset: pair completed from stale register")
	}

	il := NewInterleaver(8)
	il.Step(label(0), label(1), true)
	il.Reset()
	if _, ok := il.Step(fixed.Complex{}, fixed.Complex{}, false); ok {
		t.Error("interleaver after reset: stale pending sample")
	}

	mg := NewMerger(8)
	for i := 0; i < 4; i++ {
		mg.Step(label(i), label(i+4), true)
	}
	mg.Reset()
	if _, ok := mg.Step(fixed.Complex{}, fixed.Complex{}, false); ok {
		t.Error("merger after reset: stale completed block")
	}
}
