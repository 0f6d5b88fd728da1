package fixed

// Multiplier is the complex multiply-accumulate capability consumed by the
// general butterfly variant. Implementations return the exact full-width
// product (output width = sum of the operand widths, no rounding) and
// declare a fixed pipeline latency in clock cycles. Rounding is the
// butterfly's responsibility, which keeps the multiplier implementation
// interchangeable with a hardware-specific one.
type Multiplier interface {
	// Multiply returns the exact complex product a*b.
	Multiply(a, b Complex) Complex

	// Latency returns the multiplier's pipeline depth in cycles.
	Latency() int
}

// ExactMultiplier is the stock Multiplier: a four-multiply integer
// implementation with a configurable declared latency.
type ExactMultiplier struct {
	latency int
}

// NewExactMultiplier returns a Multiplier with the given declared latency.
// Latencies below one cycle are clamped to one.
func NewExactMultiplier(latency int) *ExactMultiplier {
	if latency < 1 {
		latency = 1
	}

	return &ExactMultiplier{latency: latency}
}

// Multiply returns the exact complex product a*b.
func (m *ExactMultiplier) Multiply(a, b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Latency returns the declared pipeline depth.
func (m *ExactMultiplier) Latency() int {
	return m.latency
}
