package fxmath

import (
	"math"

	"github.com/cwbudde/algo-pipefft/internal/fixed"
)

// TwiddleScaleShift returns the number of scale bits carried by a quantized
// twiddle of the given width: unity is represented as 1 << (width-1).
func TwiddleScaleShift(width int) int {
	return width - 1
}

// ComputeTwiddleROM returns the n/2 quantized rotation constants
// W_n^k = exp(-2*pi*i*k/n) for k = 0..n/2-1, scaled by 1 << (width-1) and
// rounded to nearest. Pass inverse=true for the positive-angle constants.
func ComputeTwiddleROM(n, width int, inverse bool) []fixed.Complex {
	if n <= 0 {
		return nil
	}

	one := float64(int64(1) << TwiddleScaleShift(width))
	sign := -1.0
	if inverse {
		sign = 1.0
	}

	rom := make([]fixed.Complex, n/2)
	for k := range rom {
		angle := sign * 2.0 * math.Pi * float64(k) / float64(n)
		rom[k] = fixed.Complex{
			Re: int64(math.RoundToEven(math.Cos(angle) * one)),
			Im: int64(math.RoundToEven(math.Sin(angle) * one)),
		}
	}

	return rom
}

// StageTwiddleIndices returns the per-cycle twiddle ROM indices consumed by
// a butterfly stage whose input pairing distance is dist, for a size-n
// transform. The schedule has period dist: cycle t uses exponent
// (t mod dist) * n/(2*dist), so the dist base indices repeat n/(2*dist)
// times per block of n/2 valid cycles. The same schedule serves the
// decimation-in-frequency forward order and its decimation-in-time dual.
func StageTwiddleIndices(n, dist int) []int {
	if n <= 0 || dist <= 0 || dist > n/2 {
		return nil
	}

	stride := n / (2 * dist)

	idx := make([]int, dist)
	for t := range idx {
		idx[t] = t * stride
	}

	return idx
}
