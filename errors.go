package pipefft

import "errors"

// Sentinel errors returned when a pipeline configuration is rejected or a
// transform call is malformed. The data path itself has no recoverable
// run-time errors: a sample that never carried a valid token simply does
// not appear at the output.
var (
	// ErrInvalidLength is returned when the transform size is not valid.
	// The size must be a power of 2 of at least 4.
	ErrInvalidLength = errors.New("pipefft: invalid transform length")

	// ErrInvalidWidth is returned when the data or twiddle width is too
	// small for the configured pipeline.
	ErrInvalidWidth = errors.New("pipefft: invalid fixed-point width")

	// ErrWidthOverflow is returned when the configured widths cannot grow
	// through all stages without exceeding the 64-bit sample container.
	ErrWidthOverflow = errors.New("pipefft: width growth exceeds container")

	// ErrInvalidPolicy is returned for an unknown rounding policy.
	ErrInvalidPolicy = errors.New("pipefft: invalid rounding policy")

	// ErrInvalidMode is returned for an unknown commutation mode.
	ErrInvalidMode = errors.New("pipefft: invalid commutation mode")

	// ErrInvalidDirection is returned when the requested transform
	// direction is unknown or outside the configured capability.
	ErrInvalidDirection = errors.New("pipefft: invalid transform direction")

	// ErrInvalidLatency is returned for a negative multiplier latency.
	ErrInvalidLatency = errors.New("pipefft: invalid multiplier latency")

	// ErrNilSlice is returned when a nil slice is passed to a transform
	// method.
	ErrNilSlice = errors.New("pipefft: nil slice")

	// ErrLengthMismatch is returned when transform slice lengths don't
	// match each other or aren't a whole number of blocks.
	ErrLengthMismatch = errors.New("pipefft: slice length mismatch")

	// ErrStalled is returned if a transform fails to drain within its
	// computed latency bound. It indicates an internal invariant
	// violation, not a caller error.
	ErrStalled = errors.New("pipefft: pipeline failed to drain")
)
