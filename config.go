package pipefft

import (
	"fmt"

	"github.com/cwbudde/algo-pipefft/internal/fxmath"
)

// DefaultMultLatency is the declared CMAC pipeline depth used when the
// configuration leaves MultLatency at zero.
const DefaultMultLatency = 3

// maxContainerBits is the widest intermediate value the int64 sample
// container can hold with a sign bit to spare.
const maxContainerBits = 62

// Config fixes every parameter of one compiled pipeline. All fields are
// build-time constants for the lifetime of the instance; only the transform
// direction can change at run time, and only when Capability is
// BothDirections and the pipeline is flushed first.
type Config struct {
	// N is the transform length; a power of two, at least 4.
	N int

	// DataWidth is the bit width of the input real and imaginary parts,
	// sign included.
	DataWidth int

	// TwiddleWidth is the bit width of the quantized rotation constants,
	// sign included.
	TwiddleWidth int

	// Policy selects the per-stage scaling/rounding behavior. Applied
	// identically at every stage.
	Policy Policy

	// Mode selects continuous or bursting commutation counters.
	Mode Mode

	// Capability restricts the transform directions the instance can run.
	Capability Capability

	// Direction is the initially active direction. Must be within
	// Capability.
	Direction Direction

	// MultLatency is the declared CMAC pipeline depth in cycles. Zero
	// selects DefaultMultLatency. Ignored when Multiplier is set.
	MultLatency int

	// Multiplier optionally substitutes a custom CMAC implementation.
	// Nil selects the exact integer multiplier.
	Multiplier Multiplier

	// Bypass passes samples through the butterflies unchanged while
	// keeping every buffer in place. Bypassed general stages keep only
	// the add-path register, so the chain latency drops by the
	// multiplier latency per general stage. Used for permutation
	// testing and for chaining.
	Bypass bool
}

// Stages returns log2(N).
func (cfg Config) Stages() int {
	return fxmath.Log2(cfg.N)
}

// Validate rejects every configuration the pipeline cannot be built from.
// All violations surface here, before construction; the running pipeline
// has no error path.
func (cfg Config) Validate() error {
	if cfg.N < 4 || !fxmath.IsPowerOf2(cfg.N) {
		return fmt.Errorf("%w: N=%d", ErrInvalidLength, cfg.N)
	}

	if cfg.DataWidth < 2 {
		return fmt.Errorf("%w: data width %d", ErrInvalidWidth, cfg.DataWidth)
	}

	if cfg.TwiddleWidth < 2 {
		return fmt.Errorf("%w: twiddle width %d", ErrInvalidWidth, cfg.TwiddleWidth)
	}

	if !cfg.Policy.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPolicy, int(cfg.Policy))
	}

	if !cfg.Mode.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(cfg.Mode))
	}

	if !cfg.Capability.Valid() {
		return fmt.Errorf("%w: capability %d", ErrInvalidDirection, int(cfg.Capability))
	}

	if !cfg.Direction.Valid() || !cfg.Capability.Allows(cfg.Direction) {
		return fmt.Errorf("%w: %s not allowed by %s capability",
			ErrInvalidDirection, cfg.Direction, cfg.Capability)
	}

	if cfg.MultLatency < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLatency, cfg.MultLatency)
	}

	// Inverse chains never reduce width, so any configuration that can
	// run one must fit the full per-stage growth.
	growth := 0
	if cfg.Policy == Unscaled || cfg.Capability.Allows(Inverse) {
		growth = cfg.Stages()
	}

	// Widest intermediate: the grown difference term times a twiddle,
	// before descaling.
	if cfg.DataWidth+growth+cfg.TwiddleWidth > maxContainerBits {
		return fmt.Errorf("%w: data %d + growth %d + twiddle %d bits",
			ErrWidthOverflow, cfg.DataWidth, growth, cfg.TwiddleWidth)
	}

	return nil
}

// OutputWidth returns the bit width of the output samples for the active
// direction: the input width plus one bit per stage when the chain grows
// (Unscaled, or any inverse chain), the input width otherwise.
func (cfg Config) OutputWidth() int {
	if cfg.Policy == Unscaled || cfg.Direction == Inverse {
		return cfg.DataWidth + cfg.Stages()
	}

	return cfg.DataWidth
}

// multLatency resolves the effective CMAC latency.
func (cfg Config) multLatency() int {
	if cfg.Multiplier != nil {
		return cfg.Multiplier.Latency()
	}

	if cfg.MultLatency == 0 {
		return DefaultMultLatency
	}

	return cfg.MultLatency
}
