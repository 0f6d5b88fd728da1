package pipefft

import (
	"github.com/cwbudde/algo-pipefft/internal/fixed"
	"github.com/cwbudde/algo-pipefft/internal/fxmath"
	"github.com/cwbudde/algo-pipefft/internal/stream"
)

// Core is the half-path-native butterfly/commutator chain: log2(N) stages
// with a cross-commutation buffer between each consecutive pair. It
// consumes and produces two samples per cycle and performs no reordering
// at its boundary, so the caller owns the lane discipline:
//
//   - Forward: lane A carries sample t of a block, lane B sample t+N/2;
//     the output pairs are adjacent positions (2t, 2t+1) of the
//     bit-reverse-ordered result.
//   - Inverse: lanes carry adjacent pairs (2t, 2t+1) of the
//     decimation-in-time (bit-reverse-ordered) input; output lane A
//     carries sample t of the natural-order result, lane B sample t+N/2.
//
// Pipeline wraps Core with the half-path I/O buffers and the bit-reversal
// reorderer for the single-stream interface; Core itself is the entry
// point for compositions that already run two lanes, one transform per
// buffer set.
type Core struct {
	n      int
	stages int
	dir    Direction

	bfly []*stream.Butterfly
	comm []*stream.Commutator
}

// NewCore builds the chain for cfg's active direction.
func NewCore(cfg Config) (*Core, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return newCore(cfg, cfg.Direction), nil
}

// newCore builds the chain for an already validated configuration.
func newCore(cfg Config, dir Direction) *Core {
	n := cfg.N
	stages := cfg.Stages()

	mult := cfg.Multiplier
	if mult == nil {
		mult = fixed.NewExactMultiplier(cfg.multLatency())
	}

	rom := fxmath.ComputeTwiddleROM(n, cfg.TwiddleWidth, dir == Inverse)
	shift := fxmath.TwiddleScaleShift(cfg.TwiddleWidth)

	c := &Core{
		n:      n,
		stages: stages,
		dir:    dir,
		bfly:   make([]*stream.Butterfly, stages),
		comm:   make([]*stream.Commutator, stages-1),
	}

	for i := 0; i < stages; i++ {
		dist := n >> (i + 1) // decimation-in-frequency: N/2 down to 1
		if dir == Inverse {
			dist = 1 << i // decimation-in-time: 1 up to N/2
		}

		c.bfly[i] = stream.NewButterfly(n, dist, dir, cfg.Policy,
			rom, shift, mult, cfg.Bypass)

		if i < stages-1 {
			// The buffer between stage i and i+1 is as deep as the
			// smaller of the two pairing distances.
			depth := dist / 2
			if dir == Inverse {
				depth = dist
			}

			c.comm[i] = stream.NewCommutator(n, depth, cfg.Mode)
		}
	}

	return c
}

// N returns the transform length.
func (c *Core) N() int {
	return c.n
}

// Stages returns log2(N).
func (c *Core) Stages() int {
	return c.stages
}

// Direction returns the chain's transform direction.
func (c *Core) Direction() Direction {
	return c.dir
}

// Step advances every stage and buffer by one clock tick, in dataflow
// order.
func (c *Core) Step(a, b Sample, valid bool) (Sample, Sample, bool) {
	for i, bf := range c.bfly {
		a, b, valid = bf.Step(a, b, valid)

		if i < len(c.comm) {
			a, b, valid = c.comm[i].Step(a, b, valid)
		}
	}

	return a, b, valid
}

// Reset returns every stage and buffer to its post-reset state.
func (c *Core) Reset() {
	for _, bf := range c.bfly {
		bf.Reset()
	}

	for _, cm := range c.comm {
		cm.Reset()
	}
}
