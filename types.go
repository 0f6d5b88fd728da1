package pipefft

import (
	"github.com/cwbudde/algo-pipefft/internal/fixed"
	"github.com/cwbudde/algo-pipefft/internal/stream"
)

// Sample is a fixed-point complex sample.
// The canonical definition is in internal/fixed.
type Sample = fixed.Complex

// Policy selects the per-stage scaling/rounding behavior.
// The canonical definition is in internal/fixed.
type Policy = fixed.Policy

// Rounding policies. Unscaled grows one bit per stage and discards
// nothing; Rounding and Truncate keep the forward data width constant by
// halving every forward stage. Inverse chains grow regardless of policy.
const (
	Unscaled = fixed.Unscaled
	Rounding = fixed.Rounding
	Truncate = fixed.Truncate
)

// Multiplier is the complex multiply-accumulate capability consumed by the
// general butterfly stages. The canonical definition is in internal/fixed.
type Multiplier = fixed.Multiplier

// NewExactMultiplier returns the stock exact integer CMAC with the given
// declared pipeline latency. This is also what a Config with a nil
// Multiplier gets.
func NewExactMultiplier(latency int) Multiplier {
	return fixed.NewExactMultiplier(latency)
}

// Direction selects forward or inverse transform.
// The canonical definition is in internal/stream.
type Direction = stream.Direction

// Transform directions.
const (
	Forward = stream.Forward
	Inverse = stream.Inverse
)

// Mode selects how commutation counters advance.
// The canonical definition is in internal/stream.
type Mode = stream.Mode

// Commutation modes. Continuous requires the valid strobe to span exactly
// N/2 contiguous cycles per block; Bursting tolerates arbitrary gaps.
const (
	Continuous = stream.Continuous
	Bursting   = stream.Bursting
)

// Capability restricts which transform directions a pipeline instance can
// run. With BothDirections the direction is a run-time select, but
// switching requires a pipeline flush.
type Capability int

const (
	ForwardOnly Capability = iota
	InverseOnly
	BothDirections
)

// String returns the capability name.
func (c Capability) String() string {
	switch c {
	case ForwardOnly:
		return "forward-only"
	case InverseOnly:
		return "inverse-only"
	case BothDirections:
		return "both"
	default:
		return "unknown"
	}
}

// Valid reports whether c is a defined capability.
func (c Capability) Valid() bool {
	return c == ForwardOnly || c == InverseOnly || c == BothDirections
}

// Allows reports whether direction d is within the capability.
func (c Capability) Allows(d Direction) bool {
	switch c {
	case ForwardOnly:
		return d == Forward
	case InverseOnly:
		return d == Inverse
	case BothDirections:
		return d.Valid()
	default:
		return false
	}
}
