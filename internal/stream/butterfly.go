package stream

import (
	"github.com/cwbudde/algo-pipefft/internal/fixed"
	"github.com/cwbudde/algo-pipefft/internal/fxmath"
)

// butterfly structural variants, selected by the stage's pairing distance.
type variant int

const (
	// variantTrivial is the distance-1 stage: twiddle identically one,
	// pure add/subtract, no multiplier.
	variantTrivial variant = iota

	// variantUnitRotation is the distance-2 stage: twiddles {1, -j}
	// forward or {1, +j} inverse, realized as swap-and-negate.
	variantUnitRotation

	// variantGeneral multiplies through the CMAC.
	variantGeneral
)

// addLatency is the register delay of the add/subtract path.
const addLatency = 1

type bflyReg struct {
	a, b  fixed.Complex
	valid bool
}

// Butterfly is one radix-2 stage of the pipeline. It combines the pair of
// lane samples that are dist positions apart in the stage's working order
// with the stage's twiddle schedule and emits the transformed pair after a
// fixed latency. The valid token travels through the same delay pipe, so
// its offset always equals the stage latency.
type Butterfly struct {
	n       int
	dist    int
	dir     Direction
	policy  fixed.Policy
	shrink  fixed.Policy
	variant variant
	bypass  bool

	mult       fixed.Multiplier
	scaleShift int
	twiddles   []fixed.Complex // per-slot schedule, period dist

	slot int // valid-driven twiddle counter, [0, dist)
	pipe []bflyReg
	head int
}

// NewButterfly builds the stage for pairing distance dist of a size-n
// transform. rom holds the direction's n/2 quantized twiddles and
// scaleShift the number of scale bits they carry. mult is consumed only by
// the general variant. The policy's width reduction runs on forward stages
// only; inverse stages always emit full-scale sums, so a forward
// Rounding/Truncate spectrum inverts back to the input magnitude. A
// bypassed stage passes samples through unchanged but keeps the add-path
// latency so chain timing is preserved.
func NewButterfly(n, dist int, dir Direction, policy fixed.Policy,
	rom []fixed.Complex, scaleShift int, mult fixed.Multiplier, bypass bool,
) *Butterfly {
	bf := &Butterfly{
		n:          n,
		dist:       dist,
		dir:        dir,
		policy:     policy,
		shrink:     policy,
		bypass:     bypass,
		mult:       mult,
		scaleShift: scaleShift,
	}

	if dir == Inverse {
		bf.shrink = fixed.Unscaled
	}

	switch {
	case dist == 1:
		bf.variant = variantTrivial
	case dist == 2:
		bf.variant = variantUnitRotation
	default:
		bf.variant = variantGeneral
	}

	latency := addLatency
	if bf.variant == variantGeneral && !bypass {
		latency += mult.Latency()

		indices := fxmath.StageTwiddleIndices(n, dist)
		bf.twiddles = make([]fixed.Complex, dist)
		for t, k := range indices {
			bf.twiddles[t] = rom[k]
		}
	}

	bf.pipe = make([]bflyReg, latency)

	return bf
}

// Latency returns the stage's pipeline depth in ticks.
func (bf *Butterfly) Latency() int {
	return len(bf.pipe)
}

// Dist returns the stage's input pairing distance.
func (bf *Butterfly) Dist() int {
	return bf.dist
}

// Step advances the stage by one clock tick. The delay pipe shifts every
// tick whether or not the input is valid, so gaps in the strobe propagate
// through unchanged.
func (bf *Butterfly) Step(a, b fixed.Complex, valid bool) (fixed.Complex, fixed.Complex, bool) {
	var next bflyReg

	if valid {
		next.valid = true

		if bf.bypass {
			next.a, next.b = a, b
		} else {
			next.a, next.b = bf.compute(a, b)
		}

		bf.slot++
		if bf.slot == bf.dist {
			bf.slot = 0
		}
	}

	out := bf.pipe[bf.head]
	bf.pipe[bf.head] = next
	bf.head++
	if bf.head == len(bf.pipe) {
		bf.head = 0
	}

	return out.a, out.b, out.valid
}

func (bf *Butterfly) compute(a, b fixed.Complex) (fixed.Complex, fixed.Complex) {
	if bf.dir == Forward {
		return bf.computeForward(a, b)
	}

	return bf.computeInverse(a, b)
}

// computeForward is the decimation-in-frequency operation:
// (A+B, (A-B)*W), with the width reduction applied to both outputs.
func (bf *Butterfly) computeForward(a, b fixed.Complex) (fixed.Complex, fixed.Complex) {
	sum := a.Add(b)
	diff := a.Sub(b)

	diff = bf.rotate(diff)

	return bf.shrink.Shrink(sum), bf.shrink.Shrink(diff)
}

// computeInverse is the decimation-in-time operation:
// (A + B*W, A - B*W). The shrink policy is Unscaled on inverse chains, so
// the sums pass through at full scale.
func (bf *Butterfly) computeInverse(a, b fixed.Complex) (fixed.Complex, fixed.Complex) {
	p := bf.rotate(b)

	even := a.Add(p)
	odd := a.Sub(p)

	return bf.shrink.Shrink(even), bf.shrink.Shrink(odd)
}

// rotate applies the stage's twiddle for the current slot. The trivial and
// unit-rotation variants never touch the multiplier.
func (bf *Butterfly) rotate(x fixed.Complex) fixed.Complex {
	switch bf.variant {
	case variantTrivial:
		return x

	case variantUnitRotation:
		if bf.slot == 0 {
			return x
		}

		if bf.dir == Forward {
			return x.MulNegJ()
		}

		return x.MulJ()

	default:
		w := bf.twiddles[bf.slot]
		if bf.slot == 0 {
			// W^0 carries only scale bits; skip the multiplier so
			// the identity path stays exact under every policy.
			return x
		}

		return bf.policy.Descale(bf.mult.Multiply(x, w), bf.scaleShift)
	}
}

// Reset clears the delay pipe, the valid tokens in flight, and the twiddle
// slot counter.
func (bf *Butterfly) Reset() {
	clear(bf.pipe)
	bf.head = 0
	bf.slot = 0
}
