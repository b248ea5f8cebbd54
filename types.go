package radix2fft

import "github.com/cwbudde/algo-fft-radix2/internal/fftypes"

// Complex is a type constraint for complex number types supported by the FFT.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is a type constraint for the component type of a Sequence.
// The canonical definition is in internal/fftypes.
type Float = fftypes.Float
