// Package fixed implements the fixed-point complex arithmetic used by the
// streaming FFT pipeline: the sample type, the rounding policies that bound
// bit growth across butterfly stages, and the complex multiply-accumulate
// contract consumed by the general butterfly variant.
package fixed

// Complex is a fixed-point complex sample. Re and Im hold signed two's
// complement values; the nominal bit width is carried by the pipeline
// configuration, not the sample itself.
type Complex struct {
	Re int64
	Im int64
}

// Add returns a + b. The result is one bit wider than the operands.
func (a Complex) Add(b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Sub returns a - b. The result is one bit wider than the operands.
func (a Complex) Sub(b Complex) Complex {
	return Complex{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

// MulNegJ returns a * (-j): a 90 degree clockwise rotation realized as a
// swap-and-negate, never a multiply.
func (a Complex) MulNegJ() Complex {
	return Complex{Re: a.Im, Im: -a.Re}
}

// MulJ returns a * (+j): a 90 degree counter-clockwise rotation realized as
// a swap-and-negate.
func (a Complex) MulJ() Complex {
	return Complex{Re: -a.Im, Im: a.Re}
}

// IsZero reports whether both components are zero.
func (a Complex) IsZero() bool {
	return a.Re == 0 && a.Im == 0
}
