package fsamp

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fir/dsp/core"
	"github.com/cwbudde/algo-fir/dsp/fourier"
)

// Errors for malformed specifications. Each wraps core.ErrInvalidArgument.
var (
	ErrInvalidTransformSize = fmt.Errorf("fsamp: transform size must be > 0: %w", core.ErrInvalidArgument)
	ErrBandOutOfRange       = fmt.Errorf("fsamp: band outside half-spectrum: %w", core.ErrInvalidArgument)
	ErrNegativeMagnitude    = fmt.Errorf("fsamp: magnitude must be finite and >= 0: %w", core.ErrInvalidArgument)
	ErrLengthMismatch       = fmt.Errorf("fsamp: length mismatch: %w", core.ErrInvalidArgument)
)

// Spec is a frequency-sampling filter specification.
type Spec struct {
	// TransformSize is the DFT length N and the number of taps.
	TransformSize int
	// Bands are applied in order; later bands overwrite earlier ones.
	Bands []Band
	// DCMagnitude is the value of bin 0. It defaults to zero, which makes
	// the taps sum to zero.
	DCMagnitude float64
}

// HalfBins returns N/2+1, the length of the half-spectrum.
func (s Spec) HalfBins() int {
	return s.TransformSize/2 + 1
}

// Validate runs [Validate] on the bands and then checks sizes, ranges and
// signs against the transform size.
func (s Spec) Validate() error {
	if err := Validate(s.Bands); err != nil {
		return err
	}
	if s.TransformSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTransformSize, s.TransformSize)
	}
	if !validMagnitude(s.DCMagnitude) {
		return fmt.Errorf("%w: DC %v", ErrNegativeMagnitude, s.DCMagnitude)
	}

	nyquist := s.TransformSize / 2
	for i, b := range s.Bands {
		if b.StartBin < 0 || b.Length < 0 || b.End() > nyquist {
			return fmt.Errorf("%w: band %d covers [%d, %d), half-spectrum ends at %d",
				ErrBandOutOfRange, i, b.StartBin, b.End(), nyquist)
		}
		if !validMagnitude(b.Magnitude) {
			return fmt.Errorf("%w: band %d: %v", ErrNegativeMagnitude, i, b.Magnitude)
		}
	}
	return nil
}

func validMagnitude(m float64) bool {
	return m >= 0 && !math.IsInf(m, 1)
}

// HalfSpectrum returns the N/2+1 magnitudes described by s. Bin 0 holds
// DCMagnitude and each band writes its bins in order.
func HalfSpectrum(s Spec) ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	half := make([]float64, s.HalfBins())
	half[0] = s.DCMagnitude

	gain := float64(s.TransformSize) / 2
	for _, b := range s.Bands {
		m := b.Magnitude
		switch {
		case b.Stop:
			m = 0
		case m == 0:
			m = gain
		}
		for k := b.StartBin; k < b.End(); k++ {
			half[k] = m
		}
	}
	return half, nil
}

// MirrorSpectrum expands a half-spectrum of length n/2+1 into a full
// spectrum of length n with full[n-k] = half[k] for 1 <= k < n-k. Bin 0 and,
// for even n, bin n/2 appear once.
func MirrorSpectrum(half []float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTransformSize, n)
	}
	if len(half) != n/2+1 {
		return nil, fmt.Errorf("%w: half-spectrum has %d bins, want %d", ErrLengthMismatch, len(half), n/2+1)
	}

	full := make([]float64, n)
	copy(full, half)
	for k := 1; k < n-k; k++ {
		full[n-k] = half[k]
	}
	return full, nil
}

// Result holds a synthesized filter and its intermediate spectra.
type Result struct {
	Taps []float64
	Half []float64
	Full []float64
	// MaxImag is the largest imaginary magnitude discarded from the
	// inverse transform.
	MaxImag float64
}

// Design synthesizes the taps for s and returns them with the spectra they
// were built from.
func Design(s Spec, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts)

	half, err := HalfSpectrum(s)
	if err != nil {
		return nil, err
	}

	n := s.TransformSize
	if cfg.window != nil && len(cfg.window) != n {
		return nil, fmt.Errorf("%w: window has %d coefficients, want %d", ErrLengthMismatch, len(cfg.window), n)
	}

	full, err := MirrorSpectrum(half, n)
	if err != nil {
		return nil, err
	}

	t, err := cfg.transform(n)
	if err != nil {
		return nil, fmt.Errorf("fsamp: transform: %w", err)
	}

	bins := fourier.ToComplex(full)
	if err := t.Inverse(bins, bins); err != nil {
		return nil, fmt.Errorf("fsamp: inverse transform: %w", err)
	}

	taps, maxImag := fourier.SplitReal(bins)

	if cfg.window != nil {
		if err := ApplyWindow(taps, cfg.window); err != nil {
			return nil, err
		}
	}

	return &Result{Taps: taps, Half: half, Full: full, MaxImag: maxImag}, nil
}

// Synthesize returns the N filter taps described by s.
func Synthesize(s Spec, opts ...Option) ([]float64, error) {
	r, err := Design(s, opts...)
	if err != nil {
		return nil, err
	}
	return r.Taps, nil
}
