// Package stream implements the cycle-accurate components of the streaming
// radix-2 FFT pipeline: the butterfly stages, the cross-commutation buffers
// that reorder the two half-rate lanes between stages, the bit-reversal
// reorderer, and the half-path I/O adapters.
//
// Every component advances exactly one pipeline step per call to its Step
// method. The composer calls the components in topological order within one
// clock tick, so a value can traverse several components per tick; all real
// latency is carried by explicit delay state (shift registers and memory
// banks). A valid token accompanies every sample; a component that has
// nothing meaningful to emit on a tick returns ok == false.
package stream

// Direction selects the transform factorization: Forward runs the
// decimation-in-frequency chain with negative-angle twiddles, Inverse the
// decimation-in-time dual with positive-angle twiddles.
type Direction int

const (
	Forward Direction = iota
	Inverse
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return "unknown"
	}
}

// Valid reports whether d is a defined direction.
func (d Direction) Valid() bool {
	return d == Forward || d == Inverse
}

// Mode selects how cross-commutation counters advance. Bursting counters
// are driven by the valid strobe and tolerate arbitrary gaps. Continuous
// counters free-run within a block once it has started, which is cheaper in
// hardware but requires the strobe to span exactly N/2 contiguous cycles
// per block; feeding a continuous buffer a non-contiguous strobe violates
// the caller contract and corrupts the output ordering.
type Mode int

const (
	Continuous Mode = iota
	Bursting
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Continuous:
		return "continuous"
	case Bursting:
		return "bursting"
	default:
		return "unknown"
	}
}

// Valid reports whether m is a defined mode.
func (m Mode) Valid() bool {
	return m == Continuous || m == Bursting
}
