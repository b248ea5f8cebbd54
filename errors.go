package radix2fft

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by FFT operations.
var (
	// ErrInvalidLength is returned when the FFT size is not valid.
	// The length must be 0, 1 or a power of 2.
	ErrInvalidLength = errors.New("radix2fft: invalid FFT length")

	// ErrLengthMismatch is returned when the real and imaginary parts of a
	// sequence differ in length, or when a sequence does not match the
	// Plan's expected length.
	ErrLengthMismatch = errors.New("radix2fft: slice length mismatch")
)

func invalidLength(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidLength, n)
	}

	return fmt.Errorf("%w: %d is not a power of two", ErrInvalidLength, n)
}

func componentMismatch(nReal, nImag int) error {
	return fmt.Errorf("%w: real has %d elements, imag has %d", ErrLengthMismatch, nReal, nImag)
}

func planMismatch(what string, got, want int) error {
	return fmt.Errorf("%w: %s has %d elements, plan expects %d", ErrLengthMismatch, what, got, want)
}
