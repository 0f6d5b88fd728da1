package fixed

// Policy selects how each butterfly stage disposes of the one bit of growth
// introduced by its add/subtract, and how twiddle scale bits are removed
// after a multiply. The policy is uniform across all stages of a pipeline.
type Policy int

const (
	// Unscaled keeps the full result: the data path grows one bit per
	// stage and no information is discarded. Twiddle scale bits are
	// removed with round-to-nearest.
	Unscaled Policy = iota

	// Rounding halves the stage output back to the input width using
	// round-to-nearest (half-LSB added before the shift).
	Rounding

	// Truncate halves the stage output back to the input width with an
	// arithmetic right shift, discarding the low bit without bias
	// correction.
	Truncate
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Unscaled:
		return "unscaled"
	case Rounding:
		return "rounding"
	case Truncate:
		return "truncate"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the defined policies.
func (p Policy) Valid() bool {
	return p == Unscaled || p == Rounding || p == Truncate
}

// RoundShift shifts x right by shift bits with round-to-nearest, adding a
// half-LSB before the shift so ties round away from the floor.
func RoundShift(x int64, shift int) int64 {
	if shift <= 0 {
		return x
	}

	return (x + (1 << (shift - 1))) >> shift
}

// TruncShift shifts x right by shift bits, discarding the low bits. For
// negative values this floors toward negative infinity, matching a
// hardware arithmetic shift.
func TruncShift(x int64, shift int) int64 {
	if shift <= 0 {
		return x
	}

	return x >> shift
}

// ShrinkScalar applies the policy's one-bit width reduction to a scalar.
// Unscaled keeps the value as is.
func (p Policy) ShrinkScalar(x int64) int64 {
	switch p {
	case Rounding:
		return RoundShift(x, 1)
	case Truncate:
		return TruncShift(x, 1)
	default:
		return x
	}
}

// Shrink applies the policy's one-bit width reduction to both components.
func (p Policy) Shrink(a Complex) Complex {
	return Complex{Re: p.ShrinkScalar(a.Re), Im: p.ShrinkScalar(a.Im)}
}

// Descale removes shift twiddle scale bits from a full-width product.
// Unscaled and Rounding use round-to-nearest; Truncate floors.
func (p Policy) Descale(a Complex, shift int) Complex {
	if p == Truncate {
		return Complex{Re: TruncShift(a.Re, shift), Im: TruncShift(a.Im, shift)}
	}

	return Complex{Re: RoundShift(a.Re, shift), Im: RoundShift(a.Im, shift)}
}
