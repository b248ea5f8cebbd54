// Package reference provides a direct O(N²) DFT used to check the
// recursive transform.
package reference

import (
	"math"

	m "github.com/cwbudde/algo-fft-radix2/internal/math"
)

// NaiveDFT computes the DFT of a complex64 slice by direct summation,
// accumulating in float64.
func NaiveDFT(src []complex64) []complex64 {
	wide := make([]complex128, len(src))
	for i, v := range src {
		wide[i] = complex128(v)
	}

	sum := NaiveDFT128(wide)

	dst := make([]complex64, len(sum))
	for i, v := range sum {
		dst[i] = complex64(v)
	}

	return dst
}

// NaiveDFT128 computes X[k] = Σ x[n]·exp(-2πi·k·n/N) by direct summation.
// Works for any length, not only powers of two.
func NaiveDFT128(src []complex128) []complex128 {
	n := len(src)
	dst := make([]complex128, n)

	for k := range n {
		var sum complex128

		for t := range n {
			// k*t mod n keeps the angle in [0, 2π) for large n.
			angle := -m.TwoPi * float64((k*t)%n) / float64(n)
			sum += src[t] * complex(math.Cos(angle), math.Sin(angle))
		}

		dst[k] = sum
	}

	return dst
}

// MaxAbsError returns max_i |got[i] - want[i]|. Slices must have equal length.
func MaxAbsError(got, want []complex128) float64 {
	var worst float64

	for i := range got {
		d := got[i] - want[i]
		if e := math.Hypot(real(d), imag(d)); e > worst {
			worst = e
		}
	}

	return worst
}
