package fsamp

import (
	"math"

	"github.com/cwbudde/algo-fir/dsp/core"
	"github.com/cwbudde/algo-fir/dsp/window"
)

// ApplyWindow multiplies taps by coeffs in place.
func ApplyWindow(taps, coeffs []float64) error {
	return window.ApplyCoefficientsInPlace(taps, coeffs)
}

// Center returns taps rotated by len(taps)/2 so that tap 0 of the
// zero-phase response lands at the middle.
func Center(taps []float64) []float64 {
	n := len(taps)
	out := make([]float64, n)
	for i, v := range taps {
		out[(i+n/2)%n] = v
	}
	return out
}

// LowPass returns a spec passing DC and bins 1..bins-1 at unity gain. bins
// less than 1 passes nothing.
func LowPass(n, bins int) Spec {
	s := Spec{TransformSize: n}
	if bins < 1 {
		return s
	}

	s.DCMagnitude = float64(n) / 2
	if bins > 1 {
		s.Bands = []Band{{StartBin: 1, Length: bins - 1}}
	}
	return s
}

// BinToFrequency returns the centre frequency in Hz of design bin k.
func BinToFrequency(k int, cfg core.ProcessorConfig) float64 {
	return float64(k) * cfg.BinWidth()
}

// FrequencyToBin returns the design bin nearest to freqHz, or -1 when the
// configuration has no bin width.
func FrequencyToBin(freqHz float64, cfg core.ProcessorConfig) int {
	w := cfg.BinWidth()
	if w <= 0 {
		return -1
	}
	return int(math.Round(freqHz / w))
}
