package fir

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-fir/dsp/core"
)

// ErrNoTaps is returned when a filter is built from an empty tap set.
var ErrNoTaps = fmt.Errorf("fir: filter needs at least one tap: %w", core.ErrInvalidArgument)

// Filter is a direct-form FIR filter with a circular-buffer delay line.
// A Filter is stateful and not safe for concurrent use.
type Filter struct {
	taps  []float64
	delay []float64
	pos   int
}

// New creates a filter from taps. The taps are copied.
func New(taps []float64) (*Filter, error) {
	if len(taps) == 0 {
		return nil, ErrNoTaps
	}
	return &Filter{
		taps:  append([]float64(nil), taps...),
		delay: make([]float64, len(taps)),
	}, nil
}

// ProcessSample pushes x into the delay line and returns
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) ProcessSample(x float64) float64 {
	f.delay[f.pos] = x
	var y float64
	n := len(f.taps)
	p := f.pos
	for k := range n {
		y += f.taps[k] * f.delay[p]
		p--
		if p < 0 {
			p = n - 1
		}
	}
	f.pos++
	if f.pos >= n {
		f.pos = 0
	}
	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst, which must be at least as long as src.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1]
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Apply resets the filter, runs signal through it and flushes the delay
// line. The result has len(signal)+Len()-1 samples.
func (f *Filter) Apply(signal []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("fir: empty signal: %w", core.ErrInvalidArgument)
	}

	f.Reset()
	out := make([]float64, len(signal)+len(f.taps)-1)
	f.ProcessBlockTo(out, signal)
	for i := len(signal); i < len(out); i++ {
		out[i] = f.ProcessSample(0)
	}
	return out, nil
}

// Reset clears the delay line.
func (f *Filter) Reset() {
	clear(f.delay)
	f.pos = 0
}

// Len returns the number of taps.
func (f *Filter) Len() int {
	return len(f.taps)
}

// Order returns the filter order, Len()-1.
func (f *Filter) Order() int {
	return len(f.taps) - 1
}

// Taps returns a copy of the filter taps.
func (f *Filter) Taps() []float64 {
	return append([]float64(nil), f.taps...)
}

// Response evaluates H(e^{jw}) at freqHz for the given sample rate.
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	return f.responseAt(2 * math.Pi * freqHz / sampleRate)
}

// ResponseAtBin evaluates H at bin k of an n-point DFT grid.
func (f *Filter) ResponseAtBin(k, n int) complex128 {
	return f.responseAt(2 * math.Pi * float64(k) / float64(n))
}

func (f *Filter) responseAt(w float64) complex128 {
	var h complex128
	for k, c := range f.taps {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at freqHz.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
