package window

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Metadata holds spectral properties of a window type.
type Metadata struct {
	Name          string
	ENBW          float64 // equivalent noise bandwidth in bins
	CoherentGain  float64 // sum(w) / N
	ScallopLossdB float64 // amplitude error half a bin off centre
}

// infoLength is the periodic window length Info evaluates.
const infoLength = 4096

// Info returns spectral metadata for a window type, computed from its
// periodic form.
func Info(t Type) Metadata {
	w := Generate(t, infoLength, WithPeriodic())

	enbw, _ := EquivalentNoiseBandwidth(w)

	return Metadata{
		Name:          t.String(),
		ENBW:          enbw,
		CoherentGain:  CoherentGain(w),
		ScallopLossdB: ScallopLoss(w),
	}
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, ErrEmptyCoeffs
	}

	sum := floats.Sum(coeffs)
	if sum == 0 {
		return 0, ErrZeroCoherentGain
	}

	sumSquares := floats.Dot(coeffs, coeffs)

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// CoherentGain returns sum(w) / N, the DC gain of the window. It returns 0
// for an empty window.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	return floats.Sum(coeffs) / float64(len(coeffs))
}

// ScallopLoss returns the level in dB of a tone half a bin off centre
// relative to an on-bin tone.
func ScallopLoss(coeffs []float64) float64 {
	n := len(coeffs)
	if n == 0 {
		return 0
	}

	dc := floats.Sum(coeffs)
	if dc == 0 {
		return 0
	}

	var re, im float64
	for i, c := range coeffs {
		phase := -math.Pi * float64(i) / float64(n)
		re += c * math.Cos(phase)
		im += c * math.Sin(phase)
	}

	return 20 * math.Log10(math.Hypot(re, im)/math.Abs(dc))
}
