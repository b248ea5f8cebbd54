// Package fftypes holds the numeric type constraints shared by the
// transform engine and its internal helpers.
package fftypes

// Complex is a type constraint for complex number types supported by the FFT.
type Complex interface {
	~complex64 | ~complex128
}

// Float is a type constraint for the component type of a split
// real/imaginary sequence.
type Float interface {
	~float32 | ~float64
}
