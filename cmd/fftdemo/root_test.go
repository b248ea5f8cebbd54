package main

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	radix2fft "github.com/cwbudde/algo-fft-radix2"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	// A nil slice makes cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestRoot_DefaultImpulse(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	want := "FFT Result:\n" +
		"Index 0: Real = 1.00, Imaginary = 0.00\n" +
		"Index 1: Real = 1.00, Imaginary = 0.00\n" +
		"Index 2: Real = 1.00, Imaginary = 0.00\n" +
		"Index 3: Real = 1.00, Imaginary = 0.00\n"
	assert.Equal(t, want, out)
}

func TestRoot_ExplicitInput(t *testing.T) {
	out, err := execute(t, "--real", "1,1,1,1", "--precision", "64", "--decimals", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Index 0: Real = 4.000, Imaginary = 0.000\n")
	assert.Contains(t, out, "Index 3: Real = 0.000, Imaginary = 0.000\n")
	assert.NotContains(t, out, "-0.000")
}

func TestRoot_ComplexInput(t *testing.T) {
	// x = [0, 1] → X = [1, -1]
	out, err := execute(t, "--real", "0,1", "--imag", "0,0")
	require.NoError(t, err)

	assert.Contains(t, out, "Index 0: Real = 1.00, Imaginary = 0.00\n")
	assert.Contains(t, out, "Index 1: Real = -1.00, Imaginary = 0.00\n")
}

func TestRoot_SignalFromEnv(t *testing.T) {
	t.Setenv("FFTDEMO_SIGNAL", "ones")
	t.Setenv("FFTDEMO_SIZE", "8")

	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Index 0: Real = 8.00, Imaginary = 0.00\n")
	assert.Contains(t, out, "Index 7: Real = 0.00, Imaginary = 0.00\n")
}

func TestRoot_FlagOverridesEnv(t *testing.T) {
	t.Setenv("FFTDEMO_SIGNAL", "ones")

	out, err := execute(t, "--signal", "impulse")
	require.NoError(t, err)
	assert.Contains(t, out, "Index 0: Real = 1.00, Imaginary = 0.00\n")
}

func TestRoot_Verify(t *testing.T) {
	out, err := execute(t, "--signal", "random", "--size", "64", "--precision", "64", "--verify")
	require.NoError(t, err)
	assert.Contains(t, out, "Index 63:")
	assert.Contains(t, out, "Max deviation from direct DFT:")
}

func TestRoot_InvalidLength(t *testing.T) {
	_, err := execute(t, "--signal", "ones", "--size", "6")
	require.ErrorIs(t, err, radix2fft.ErrInvalidLength)
	assert.Contains(t, err.Error(), "6 is not a power of two")
}

func TestRoot_LengthMismatch(t *testing.T) {
	_, err := execute(t, "--real", "1,0,0,0", "--imag", "0,0")
	require.ErrorIs(t, err, radix2fft.ErrLengthMismatch)
}

func TestRoot_BadOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"precision", []string{"--precision", "16"}, "unsupported precision 16"},
		{"signal", []string{"--signal", "square"}, `unknown signal "square"`},
		{"decimals", []string{"--decimals", "-1"}, "decimals must be non-negative"},
		{"size", []string{"--size", "-2"}, "size must be non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestRoundZero(t *testing.T) {
	assert.Equal(t, 0.0, roundZero(-1e-17, 2))
	assert.False(t, math.Signbit(roundZero(-0.004, 2)))
	assert.Equal(t, -0.006, roundZero(-0.006, 2))
	assert.Equal(t, 0.0, roundZero(-0.4, 0))
	assert.Equal(t, -0.6, roundZero(-0.6, 0))
	assert.Equal(t, 0.0, roundZero(-0.00004, 4))
}
