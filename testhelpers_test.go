package radix2fft

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-fft-radix2/internal/signal"
)

// Shared test helper functions used across multiple test files

const (
	testTol32 = 1e-4
	testTol64 = 1e-9
)

func tolFor[F Float]() float64 {
	var zero F
	if _, ok := any(zero).(float32); ok {
		return testTol32
	}

	return testTol64
}

func randomSequence[F Float](n int, seed uint64) Sequence[F] {
	re, im := signal.Random[F](n, seed)
	return Sequence[F]{Real: re, Imag: im}
}

// assertSequenceClose fails if any element of got differs from want by
// more than tol·max(1, |want|).
func assertSequenceClose[F Float](t *testing.T, got Sequence[F], want []complex128, tol float64) {
	t.Helper()

	if got.Len() != len(want) {
		t.Fatalf("length = %d, want %d", got.Len(), len(want))
	}

	for i := range want {
		diff := cmplx.Abs(got.At(i) - want[i])
		if diff > tol*math.Max(1, cmplx.Abs(want[i])) {
			t.Fatalf("index %d: got %v want %v (diff=%v)", i, got.At(i), want[i], diff)
		}
	}
}

func assertApproxComplex128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}
