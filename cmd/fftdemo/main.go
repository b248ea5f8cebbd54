// Command fftdemo transforms one sample sequence and prints its DFT
// coefficients.
//
//	fftdemo                          # unit impulse [1,0,0,0]
//	fftdemo --signal ones --size 8
//	fftdemo --real 1,2,3,4 --imag 0,0,0,0 --precision 64 --verify
//	FFTDEMO_SIGNAL=tone fftdemo --size 32 -v 1
package main

import (
	"os"

	"k8s.io/klog/v2"
)

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		klog.ErrorS(err, "fftdemo failed")
	}

	klog.Flush()

	if err != nil {
		os.Exit(1)
	}
}
