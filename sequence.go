package radix2fft

// Sequence is a complex sequence in split form: element i is
// (Real[i], Imag[i]). Both slices must have the same length.
type Sequence[F Float] struct {
	Real []F
	Imag []F
}

// NewSequence returns a zero-valued sequence of length n.
func NewSequence[F Float](n int) Sequence[F] {
	return Sequence[F]{
		Real: make([]F, n),
		Imag: make([]F, n),
	}
}

// FromComplex64 splits x into a single-precision sequence.
func FromComplex64(x []complex64) Sequence[float32] {
	seq := NewSequence[float32](len(x))
	for i, v := range x {
		seq.Real[i] = real(v)
		seq.Imag[i] = imag(v)
	}

	return seq
}

// FromComplex128 splits x into a double-precision sequence.
func FromComplex128(x []complex128) Sequence[float64] {
	seq := NewSequence[float64](len(x))
	for i, v := range x {
		seq.Real[i] = real(v)
		seq.Imag[i] = imag(v)
	}

	return seq
}

// Len returns the number of elements. It is only meaningful when
// Validate returns nil.
func (s Sequence[F]) Len() int {
	return len(s.Real)
}

// Validate returns ErrLengthMismatch if the real and imaginary parts
// differ in length.
func (s Sequence[F]) Validate() error {
	if len(s.Real) != len(s.Imag) {
		return componentMismatch(len(s.Real), len(s.Imag))
	}

	return nil
}

// Clone returns a deep copy of s.
func (s Sequence[F]) Clone() Sequence[F] {
	return Sequence[F]{
		Real: append([]F(nil), s.Real...),
		Imag: append([]F(nil), s.Imag...),
	}
}

// At returns element i widened to complex128.
func (s Sequence[F]) At(i int) complex128 {
	return complex(float64(s.Real[i]), float64(s.Imag[i]))
}

// Complex128 returns the sequence as a freshly allocated complex slice.
func (s Sequence[F]) Complex128() []complex128 {
	out := make([]complex128, len(s.Real))
	for i := range out {
		out[i] = s.At(i)
	}

	return out
}
