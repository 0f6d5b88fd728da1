// Package pipefft implements a streaming, fixed-point, radix-2 FFT/IFFT
// pipeline: a clock-synchronous dataflow engine with bounded memory and a
// fixed, computable latency, rather than an offline batch transform. Data
// enters one complex sample per clock tick accompanied by a valid token,
// flows through log2(N) butterfly stages separated by cross-commutation
// buffers, and leaves in natural order through a bit-reversal reorderer.
//
// There is no backpressure and no run-time error path: every configuration
// violation is rejected by Config.Validate before the pipeline exists, and
// an input cycle without a valid token simply produces no output token.
// The forward transform is unscaled (or scaled by 1/N under the Rounding
// and Truncate policies, which halve every forward stage output); the
// inverse always runs at full scale, so an Unscaled round trip yields N
// times the input and a Rounding or Truncate round trip returns the input
// magnitude.
package pipefft

import (
	"fmt"

	"github.com/cwbudde/algo-pipefft/internal/stream"
)

// State is the composer's streaming state, derived from the valid-token
// flow.
type State int

const (
	// StateIdle: no tokens in flight.
	StateIdle State = iota

	// StateLoading: input tokens accepted, none emitted yet.
	StateLoading

	// StateStreaming: steady state, outputs following inputs at the
	// pipeline latency.
	StateStreaming

	// StateDraining: input strobe idle while tokens remain in flight.
	StateDraining
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateStreaming:
		return "streaming"
	case StateDraining:
		return "draining"
	default:
		return "unknown"
	}
}

// Pipeline is the single-stream composer: the half-path I/O buffers, the
// butterfly/commutator Core, and the bit-reversal reorderer wired for the
// active direction. One Step call is one clock tick.
type Pipeline struct {
	cfg Config
	dir Direction

	chain chainFn

	split *stream.Splitter
	inter *stream.Interleaver
	deint *stream.Deinterleaver
	merge *stream.Merger
	rev   *stream.BitReverser
	bcore *Core

	state     State
	inTokens  int64
	outTokens int64

	latency int // measured lazily; -1 = not yet measured
}

type chainFn func(s Sample, valid bool) (Sample, bool)

// New builds a pipeline from cfg. The configuration is validated first and
// never consulted again at run time.
func New(cfg Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{cfg: cfg}
	p.build(cfg.Direction)

	return p, nil
}

// build wires the chain for dir. Must only be called with a validated
// configuration and an allowed direction.
func (p *Pipeline) build(dir Direction) {
	n := p.cfg.N

	p.dir = dir
	p.bcore = newCore(p.cfg, dir)
	p.latency = -1

	if dir == Forward {
		p.split = stream.NewSplitter(n)
		p.inter = stream.NewInterleaver(n)
		p.deint = nil
		p.merge = nil
		p.rev = stream.NewBitReverser(n)
		p.chain = p.stepForward
	} else {
		p.split = nil
		p.inter = nil
		p.deint = stream.NewDeinterleaver()
		p.merge = stream.NewMerger(n)
		p.rev = stream.NewBitReverser(n)
		p.chain = p.stepInverse
	}

	p.state = StateIdle
	p.inTokens = 0
	p.outTokens = 0
}

// stepForward: split into half-path lanes, transform, interleave back,
// reorder bit-reversed positions into natural frequency order.
func (p *Pipeline) stepForward(s Sample, valid bool) (Sample, bool) {
	a, b, ok := p.split.Step(s, valid)
	a, b, ok = p.bcore.Step(a, b, ok)
	s2, ok2 := p.inter.Step(a, b, ok)

	return p.rev.Step(s2, ok2)
}

// stepInverse: reorder natural input into decimation-in-time order, pair
// adjacent samples, transform, merge the half blocks back into one
// natural-order stream.
func (p *Pipeline) stepInverse(s Sample, valid bool) (Sample, bool) {
	s2, ok2 := p.rev.Step(s, valid)
	a, b, ok := p.deint.Step(s2, ok2)
	a, b, ok = p.bcore.Step(a, b, ok)

	return p.merge.Step(a, b, ok)
}

// Step advances the whole pipeline by one clock tick. It accepts at most
// one sample (when valid is true) and emits at most one, with ok marking
// the output valid token.
func (p *Pipeline) Step(s Sample, valid bool) (Sample, bool) {
	if valid {
		p.inTokens++

		switch p.state {
		case StateIdle:
			p.state = StateLoading
		case StateDraining:
			p.state = StateStreaming
		}
	}

	out, ok := p.chain(s, valid)

	if ok {
		p.outTokens++

		if p.state == StateLoading {
			p.state = StateStreaming
		}
	}

	if !valid {
		if p.Pending() == 0 {
			p.state = StateIdle
		} else if p.state == StateStreaming {
			p.state = StateDraining
		}
	}

	return out, ok
}

// Reset synchronously clears all address counters, first-block latches,
// and samples in flight. After Reset the pipeline needs a full refill
// before the next valid output.
func (p *Pipeline) Reset() {
	p.bcore.Reset()
	p.rev.Reset()

	if p.dir == Forward {
		p.split.Reset()
		p.inter.Reset()
	} else {
		p.deint.Reset()
		p.merge.Reset()
	}

	p.state = StateIdle
	p.inTokens = 0
	p.outTokens = 0
}

// SetDirection flushes the pipeline and switches the active direction.
// Only pipelines configured with BothDirections may switch.
func (p *Pipeline) SetDirection(dir Direction) error {
	if !dir.Valid() || !p.cfg.Capability.Allows(dir) {
		return fmt.Errorf("%w: %s not allowed by %s capability",
			ErrInvalidDirection, dir, p.cfg.Capability)
	}

	if dir == p.dir {
		p.Reset()
		return nil
	}

	p.build(dir)

	return nil
}

// Direction returns the active transform direction.
func (p *Pipeline) Direction() Direction {
	return p.dir
}

// N returns the transform length.
func (p *Pipeline) N() int {
	return p.cfg.N
}

// Stages returns log2(N).
func (p *Pipeline) Stages() int {
	return p.cfg.Stages()
}

// State returns the composer's streaming state.
func (p *Pipeline) State() State {
	return p.state
}

// Pending returns the number of valid tokens in flight: inputs accepted
// minus outputs emitted. Tokens of a partially fed block remain in flight
// until the block completes.
func (p *Pipeline) Pending() int64 {
	return p.inTokens - p.outTokens
}

// Latency returns the pipeline's fill latency in clock ticks: the number
// of ticks from the first valid input of a continuous stream to the first
// valid output. The value is fixed for a configuration and direction; it
// is measured once on a shadow instance and cached.
func (p *Pipeline) Latency() int {
	if p.latency < 0 {
		p.latency = measureFill(p.cfg, p.dir)
	}

	return p.latency
}

// measureFill streams valid samples into a fresh instance and counts the
// ticks to the first valid output.
func measureFill(cfg Config, dir Direction) int {
	probe := &Pipeline{cfg: cfg}
	probe.build(dir)

	limit := fillBound(cfg)
	for t := 0; t < limit; t++ {
		if _, ok := probe.Step(Sample{Re: 1}, true); ok {
			return t
		}
	}

	return -1
}

// fillBound is a safe upper bound on the fill latency of a validated
// configuration: the I/O buffers and reorderer hold at most 3N samples
// between them, the commutators N/2, and each stage a few multiplier
// depths.
func fillBound(cfg Config) int {
	return 4*cfg.N + cfg.Stages()*(cfg.multLatency()+2) + 16
}
