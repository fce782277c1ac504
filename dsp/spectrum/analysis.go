package spectrum

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-fir/dsp/core"
	"github.com/cwbudde/algo-fir/dsp/fourier"
)

// ErrInvalidRange is returned for bin ranges outside the spectrum.
var ErrInvalidRange = fmt.Errorf("spectrum: invalid bin range: %w", core.ErrInvalidArgument)

// MagnitudeSpectrum returns |DFT(x)| over all len(x) bins.
func MagnitudeSpectrum(x []float64) ([]float64, error) {
	bins, err := fourier.ForwardReal(x)
	if err != nil {
		return nil, err
	}
	return Magnitude(bins), nil
}

// NormalizeRange maps values linearly onto [0, 1] using their minimum and
// maximum. A constant input maps to all zeros.
func NormalizeRange(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	lo := floats.Min(values)
	span := floats.Max(values) - lo

	out := make([]float64, len(values))
	if span == 0 {
		return out
	}

	floats.AddConst(-lo, floats.ScaleTo(out, 1, values))
	floats.Scale(1/span, out)
	return out
}

// FrequencyAxis returns the centre frequency of each of n bins of an
// n-point transform at sampleRate.
func FrequencyAxis(n int, sampleRate float64) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{0}
	}
	out := make([]float64, n)
	floats.Span(out, 0, sampleRate*float64(n-1)/float64(n))
	return out
}

// DominantBin returns the index and value of the largest entry of mag in
// bins [0, len(mag)/2], the non-redundant half of a real signal's
// spectrum.
func DominantBin(mag []float64) (int, float64) {
	if len(mag) == 0 {
		return -1, 0
	}
	half := mag[:len(mag)/2+1]
	idx := floats.MaxIdx(half)
	return idx, half[idx]
}

// PeakInRange returns the largest value of mag in bins [lo, hi).
func PeakInRange(mag []float64, lo, hi int) (float64, error) {
	if lo < 0 || hi > len(mag) || lo >= hi {
		return 0, fmt.Errorf("%w: [%d, %d) of %d bins", ErrInvalidRange, lo, hi, len(mag))
	}
	return floats.Max(mag[lo:hi]), nil
}

// BandEnergy returns the summed power of bins [lo, hi).
func BandEnergy(power []float64, lo, hi int) (float64, error) {
	if lo < 0 || hi > len(power) || lo >= hi {
		return 0, fmt.Errorf("%w: [%d, %d) of %d bins", ErrInvalidRange, lo, hi, len(power))
	}
	return floats.Sum(power[lo:hi]), nil
}
