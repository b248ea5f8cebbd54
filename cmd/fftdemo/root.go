package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	radix2fft "github.com/cwbudde/algo-fft-radix2"
	m "github.com/cwbudde/algo-fft-radix2/internal/math"
	"github.com/cwbudde/algo-fft-radix2/internal/reference"
	"github.com/cwbudde/algo-fft-radix2/internal/signal"
)

const envPrefix = "FFTDEMO"

type options struct {
	signal    signal.Kind
	size      int
	real      []float64
	imag      []float64
	precision int
	decimals  int
	verify    bool
	seed      uint64
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "fftdemo",
		Short: "Compute the radix-2 FFT of a sample sequence",
		Long: `fftdemo builds a complex sequence, runs the recursive radix-2 FFT on it
and prints each coefficient.

Scalar flags can also be set from the environment with the FFTDEMO_
prefix, for example FFTDEMO_SIGNAL=ones or FFTDEMO_PRECISION=64.
Flags given on the command line win over the environment.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := loadOptions(cmd, v)
			if err != nil {
				return err
			}

			return run(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	addFlags(flags)

	goflags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(goflags)
	cmd.PersistentFlags().AddGoFlagSet(goflags)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	cobra.CheckErr(v.BindPFlags(flags))

	return cmd
}

func addFlags(flags *pflag.FlagSet) {
	flags.String("signal", string(signal.KindImpulse), fmt.Sprintf("built-in input signal %v", signal.Kinds))
	flags.Int("size", 4, "length of the built-in signal (power of two)")
	flags.Float64Slice("real", nil, "explicit real parts, overrides --signal")
	flags.Float64Slice("imag", nil, "explicit imaginary parts (default all zero)")
	flags.Int("precision", 32, "floating-point precision in bits: 32 or 64")
	flags.Int("decimals", 2, "decimal places in the printed result")
	flags.Bool("verify", false, "report the max deviation from a direct O(N²) DFT")
	flags.Uint64("seed", 1, "seed for --signal random")
}

func loadOptions(cmd *cobra.Command, v *viper.Viper) (options, error) {
	kind, err := signal.ParseKind(v.GetString("signal"))
	if err != nil {
		return options{}, err
	}

	re, err := cmd.Flags().GetFloat64Slice("real")
	if err != nil {
		return options{}, err
	}

	im, err := cmd.Flags().GetFloat64Slice("imag")
	if err != nil {
		return options{}, err
	}

	opts := options{
		signal:    kind,
		size:      v.GetInt("size"),
		real:      re,
		imag:      im,
		precision: v.GetInt("precision"),
		decimals:  v.GetInt("decimals"),
		verify:    v.GetBool("verify"),
		seed:      v.GetUint64("seed"),
	}

	if opts.decimals < 0 {
		return options{}, fmt.Errorf("decimals must be non-negative, got %d", opts.decimals)
	}

	if len(opts.real) == 0 && opts.size < 0 {
		return options{}, fmt.Errorf("size must be non-negative, got %d", opts.size)
	}

	return opts, nil
}

func run(out io.Writer, opts options) error {
	switch opts.precision {
	case 32:
		return runTransform[float32](out, opts)
	case 64:
		return runTransform[float64](out, opts)
	default:
		return fmt.Errorf("unsupported precision %d (want 32 or 64)", opts.precision)
	}
}

func runTransform[F radix2fft.Float](out io.Writer, opts options) error {
	in := buildInput[F](opts)
	klog.V(2).InfoS("Input sequence", "real", in.Real, "imag", in.Imag)

	start := time.Now()

	res, err := radix2fft.Transform(in)
	if err != nil {
		return fmt.Errorf("transform: %w", err)
	}

	klog.V(1).InfoS("Transform complete",
		"n", res.Len(),
		"stages", m.Log2(res.Len()),
		"precision", opts.precision,
		"elapsed", time.Since(start))

	if err := writeResult(out, res, opts.decimals); err != nil {
		return err
	}

	if opts.verify {
		want := reference.NaiveDFT128(in.Complex128())
		maxErr := reference.MaxAbsError(res.Complex128(), want)
		klog.V(2).InfoS("Verification", "maxAbsError", maxErr)

		if _, err := fmt.Fprintf(out, "Max deviation from direct DFT: %.3g\n", maxErr); err != nil {
			return err
		}
	}

	return nil
}

func buildInput[F radix2fft.Float](opts options) radix2fft.Sequence[F] {
	if len(opts.real) == 0 && len(opts.imag) == 0 {
		re, im := signal.Build[F](opts.signal, opts.size, opts.seed)
		return radix2fft.Sequence[F]{Real: re, Imag: im}
	}

	im := opts.imag
	if len(im) == 0 {
		im = make([]float64, len(opts.real))
	}

	return radix2fft.Sequence[F]{
		Real: convert[F](opts.real),
		Imag: convert[F](im),
	}
}

func convert[F radix2fft.Float](src []float64) []F {
	dst := make([]F, len(src))
	for i, v := range src {
		dst[i] = F(v)
	}

	return dst
}

func writeResult[F radix2fft.Float](out io.Writer, res radix2fft.Sequence[F], decimals int) error {
	if _, err := fmt.Fprintln(out, "FFT Result:"); err != nil {
		return err
	}

	for i := range res.Len() {
		re := roundZero(float64(res.Real[i]), decimals)
		im := roundZero(float64(res.Imag[i]), decimals)

		if _, err := fmt.Fprintf(out, "Index %d: Real = %.*f, Imaginary = %.*f\n", i, decimals, re, decimals, im); err != nil {
			return err
		}
	}

	return nil
}

// roundZero maps values that print as zero to +0 so the output never
// shows "-0.00". The original demo printed through toFixed, which does
// show "-0.00" for tiny negative values; this output differs there.
func roundZero(v float64, decimals int) float64 {
	if math.Abs(v) < 0.5*math.Pow10(-decimals) {
		return 0
	}

	return v
}
