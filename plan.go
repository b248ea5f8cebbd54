package radix2fft

import (
	m "github.com/cwbudde/algo-fft-radix2/internal/math"
)

// Plan is a transform bound to one validated length. A Plan holds no
// mutable state and is safe for concurrent use.
type Plan[F Float] struct {
	n int
}

// NewPlan creates a plan for length-n transforms.
// Returns ErrInvalidLength if n is not 0, 1 or a power of 2.
func NewPlan[F Float](n int) (*Plan[F], error) {
	if !m.IsTransformLength(n) {
		return nil, invalidLength(n)
	}

	return &Plan[F]{n: n}, nil
}

// NewPlan32 creates a single-precision plan.
func NewPlan32(n int) (*Plan[float32], error) {
	return NewPlan[float32](n)
}

// NewPlan64 creates a double-precision plan.
func NewPlan64(n int) (*Plan[float64], error) {
	return NewPlan[float64](n)
}

// Len returns the FFT size.
func (p *Plan[F]) Len() int {
	return p.n
}

// Stages returns the number of radix-2 combine levels, log2(Len()).
func (p *Plan[F]) Stages() int {
	return m.Log2(p.n)
}

// Forward computes the forward FFT of src into dst.
// dst and src may be the same sequence; src is otherwise left untouched.
//
// Returns ErrLengthMismatch if either sequence has mismatched parts or a
// length other than Len().
func (p *Plan[F]) Forward(dst, src Sequence[F]) error {
	if err := p.validateSequence("src", src); err != nil {
		return err
	}

	if err := p.validateSequence("dst", dst); err != nil {
		return err
	}

	if p.n <= 1 {
		copy(dst.Real, src.Real)
		copy(dst.Imag, src.Imag)

		return nil
	}

	re, im := recursiveForward(src.Real, src.Imag)
	copy(dst.Real, re)
	copy(dst.Imag, im)

	return nil
}

func (p *Plan[F]) validateSequence(what string, s Sequence[F]) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if s.Len() != p.n {
		return planMismatch(what, s.Len(), p.n)
	}

	return nil
}
