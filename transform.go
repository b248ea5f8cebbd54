package radix2fft

import (
	"math"

	m "github.com/cwbudde/algo-fft-radix2/internal/math"
)

// Transform returns the forward DFT of seq,
// X[k] = Σ x[n]·exp(-2πi·k·n/N), in natural bin order.
//
// Returns ErrLengthMismatch if seq.Real and seq.Imag differ in length.
// Returns ErrInvalidLength if the length is not 0, 1 or a power of 2.
// The input is never modified and the result never shares storage
// with it.
func Transform[F Float](seq Sequence[F]) (Sequence[F], error) {
	if err := validate(seq); err != nil {
		return Sequence[F]{}, err
	}

	if seq.Len() <= 1 {
		return seq.Clone(), nil
	}

	re, im := recursiveForward(seq.Real, seq.Imag)

	return Sequence[F]{Real: re, Imag: im}, nil
}

// TransformComplex is Transform for an interleaved complex sequence.
// complex64 input runs in single precision; any other element type runs
// in double precision.
// Returns ErrInvalidLength if len(x) is not 0, 1 or a power of 2.
func TransformComplex[C Complex](x []C) ([]C, error) {
	var zero C
	if _, single := any(zero).(complex64); single {
		return transformComplexAs[float32](x)
	}

	return transformComplexAs[float64](x)
}

// TransformComplex64 is TransformComplex for []complex64.
func TransformComplex64(x []complex64) ([]complex64, error) {
	return TransformComplex(x)
}

// TransformComplex128 is TransformComplex for []complex128.
func TransformComplex128(x []complex128) ([]complex128, error) {
	return TransformComplex(x)
}

func transformComplexAs[F Float, C Complex](x []C) ([]C, error) {
	seq := NewSequence[F](len(x))
	for i, v := range x {
		w := complex128(v)
		seq.Real[i] = F(real(w))
		seq.Imag[i] = F(imag(w))
	}

	out, err := Transform(seq)
	if err != nil {
		return nil, err
	}

	dst := make([]C, out.Len())
	for i := range dst {
		dst[i] = C(out.At(i))
	}

	return dst, nil
}

func validate[F Float](seq Sequence[F]) error {
	if err := seq.Validate(); err != nil {
		return err
	}

	if n := seq.Len(); !m.IsTransformLength(n) {
		return invalidLength(n)
	}

	return nil
}

// recursiveForward transforms a validated power-of-two sequence of
// length >= 1. A length-1 input is returned as is, so callers must
// own re and im.
func recursiveForward[F Float](re, im []F) ([]F, []F) {
	n := len(re)
	if n <= 1 {
		return re, im
	}

	evenRe, evenIm, oddRe, oddIm := split(re, im)

	evenRe, evenIm = recursiveForward(evenRe, evenIm)
	oddRe, oddIm = recursiveForward(oddRe, oddIm)

	return combine(evenRe, evenIm, oddRe, oddIm)
}

// split copies the even- and odd-indexed elements into fresh halves,
// preserving order within each.
func split[F Float](re, im []F) (evenRe, evenIm, oddRe, oddIm []F) {
	half := len(re) / 2

	evenRe = make([]F, half)
	evenIm = make([]F, half)
	oddRe = make([]F, half)
	oddIm = make([]F, half)

	for i := range half {
		evenRe[i] = re[2*i]
		evenIm[i] = im[2*i]
		oddRe[i] = re[2*i+1]
		oddIm[i] = im[2*i+1]
	}

	return evenRe, evenIm, oddRe, oddIm
}

// combine merges two half-length transforms with radix-2 butterflies:
//
//	X[k]       = E[k] + W^k·O[k]
//	X[k + N/2] = E[k] - W^k·O[k]
//
// where W = exp(-2πi/N) and N is the combined length. Butterflies are
// evaluated in float64 and rounded to F on store.
func combine[F Float](evenRe, evenIm, oddRe, oddIm []F) ([]F, []F) {
	half := len(evenRe)
	n := 2 * half

	outRe := make([]F, n)
	outIm := make([]F, n)

	for k := range half {
		angle := -m.TwoPi * float64(k) / float64(n)
		wr, wi := math.Cos(angle), math.Sin(angle)

		or, oi := float64(oddRe[k]), float64(oddIm[k])
		tr := wr*or - wi*oi
		ti := wi*or + wr*oi

		er, ei := float64(evenRe[k]), float64(evenIm[k])
		outRe[k] = F(er + tr)
		outIm[k] = F(ei + ti)
		outRe[k+half] = F(er - tr)
		outIm[k+half] = F(ei - ti)
	}

	return outRe, outIm
}
