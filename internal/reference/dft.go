// Package reference provides a straightforward O(n^2) float64 DFT used by
// tests to bound the fixed-point pipeline's numeric error. It is not part
// of the data path.
package reference

import "math"

// DFT returns the unscaled discrete Fourier transform of x: negative
// rotation sign for the forward transform, positive for the inverse. No
// 1/n scaling is applied in either direction, matching the pipeline's
// unscaled convention.
func DFT(x []complex128, inverse bool) []complex128 {
	n := len(x)
	out := make([]complex128, n)

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	for k := 0; k < n; k++ {
		var acc complex128

		for t := 0; t < n; t++ {
			angle := sign * 2.0 * math.Pi * float64(k) * float64(t) / float64(n)
			acc += x[t] * complex(math.Cos(angle), math.Sin(angle))
		}

		out[k] = acc
	}

	return out
}
