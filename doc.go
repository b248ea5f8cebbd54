// Package radix2fft computes the Discrete Fourier Transform of
// power-of-two length complex sequences with the recursive Cooley-Tukey
// radix-2 decimation-in-time algorithm.
//
// A sequence is held in split form, one slice of real parts and one of
// imaginary parts:
//
//	in := radix2fft.Sequence[float64]{
//	    Real: []float64{1, 0, 0, 0},
//	    Imag: []float64{0, 0, 0, 0},
//	}
//
//	out, err := radix2fft.Transform(in)
//	if err != nil {
//	    // errors.Is(err, radix2fft.ErrInvalidLength) for bad sizes
//	}
//
// Transform never writes into the caller's slices. Each level of the
// recursion allocates its own even and odd halves and its own result,
// so concurrent calls need no coordination.
//
// Lengths 0 and 1 are their own transforms. Any other length must be a
// power of two; it is checked once, before the recursion starts.
package radix2fft
