// Package signal builds test and demonstration inputs in split
// real/imaginary form.
package signal

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-fft-radix2/internal/fftypes"
	m "github.com/cwbudde/algo-fft-radix2/internal/math"
)

// Kind names a built-in signal shape.
type Kind string

const (
	KindImpulse Kind = "impulse"
	KindOnes    Kind = "ones"
	KindTone    Kind = "tone"
	KindRandom  Kind = "random"
)

// Kinds lists the accepted signal names in display order.
var Kinds = []Kind{KindImpulse, KindOnes, KindTone, KindRandom}

// ParseKind resolves a signal name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}

	return "", fmt.Errorf("unknown signal %q (want one of %v)", s, Kinds)
}

// Component is one sinusoid of a Tone, at a frequency measured in bins
// (cycles per n samples).
type Component struct {
	Bin       float64
	Amplitude float64
}

// Impulse returns a unit impulse at index 0.
func Impulse[F fftypes.Float](n int) (re, im []F) {
	re = make([]F, n)
	im = make([]F, n)

	if n > 0 {
		re[0] = 1
	}

	return re, im
}

// Constant returns a real sequence with every element equal to v.
func Constant[F fftypes.Float](n int, v F) (re, im []F) {
	re = make([]F, n)
	im = make([]F, n)

	for i := range re {
		re[i] = v
	}

	return re, im
}

// Tone returns a real sum of sines.
func Tone[F fftypes.Float](n int, components ...Component) (re, im []F) {
	re = make([]F, n)
	im = make([]F, n)

	for i := range re {
		var v float64
		for _, c := range components {
			v += c.Amplitude * math.Sin(m.TwoPi*c.Bin*float64(i)/float64(n))
		}

		re[i] = F(v)
	}

	return re, im
}

// Random returns a complex sequence with components uniform in [-1, 1).
// The same seed always produces the same sequence.
func Random[F fftypes.Float](n int, seed uint64) (re, im []F) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	re = make([]F, n)
	im = make([]F, n)

	for i := range re {
		re[i] = F(2*rng.Float64() - 1)
		im[i] = F(2*rng.Float64() - 1)
	}

	return re, im
}

// Build returns the named signal. Tone uses two components at n/8 and
// n/4 bins so its peaks land on exact bins.
func Build[F fftypes.Float](kind Kind, n int, seed uint64) (re, im []F) {
	switch kind {
	case KindOnes:
		return Constant[F](n, 1)
	case KindTone:
		return Tone[F](n,
			Component{Bin: float64(n / 8), Amplitude: 1},
			Component{Bin: float64(n / 4), Amplitude: 0.5},
		)
	case KindRandom:
		return Random[F](n, seed)
	default:
		return Impulse[F](n)
	}
}
