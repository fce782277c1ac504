// Package signal generates deterministic test signals for filter design and
// verification.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-fir/dsp/core"
)

// ErrInvalidParams is returned for malformed generator parameters.
var ErrInvalidParams = fmt.Errorf("signal: invalid parameters: %w", core.ErrInvalidArgument)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SinusoidParams describes a sampled sinusoid. Exactly one of Samples and
// Seconds must be set.
type SinusoidParams struct {
	Frequency float64 // Hz
	Amplitude float64
	Phase     float64 // radians
	Samples   int
	Seconds   float64
	Cosine    bool
}

// Sinusoid samples amplitude * sin(2 pi f n / fs + phase), or the cosine
// when p.Cosine is set. A duration is converted to round(Seconds * fs)
// samples.
func (g *Generator) Sinusoid(p SinusoidParams) ([]float64, error) {
	n, err := g.sampleCount(p.Samples, p.Seconds)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(p.Frequency) || math.IsInf(p.Frequency, 0) {
		return nil, fmt.Errorf("%w: frequency %v", ErrInvalidParams, p.Frequency)
	}

	wave := math.Sin
	if p.Cosine {
		wave = math.Cos
	}

	out := make([]float64, n)
	step := 2 * math.Pi * p.Frequency / g.cfg.SampleRate
	for i := range out {
		out[i] = p.Amplitude * wave(step*float64(i)+p.Phase)
	}
	return out, nil
}

// Sine generates a zero-phase sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: sine samples must be > 0: %d", ErrInvalidParams, samples)
	}
	return g.Sinusoid(SinusoidParams{Frequency: freqHz, Amplitude: amplitude, Samples: samples})
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: noise samples must be > 0: %d", ErrInvalidParams, samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("%w: noise amplitude must be >= 0: %f", ErrInvalidParams, amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// WidebandNoise generates seconds of white noise at the configured sample
// rate.
func (g *Generator) WidebandNoise(amplitude, seconds float64) ([]float64, error) {
	n, err := g.sampleCount(0, seconds)
	if err != nil {
		return nil, err
	}
	return g.WhiteNoise(amplitude, n)
}

func (g *Generator) sampleCount(samples int, seconds float64) (int, error) {
	if g.cfg.SampleRate <= 0 {
		return 0, fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidParams, g.cfg.SampleRate)
	}

	switch {
	case samples != 0 && seconds != 0:
		return 0, fmt.Errorf("%w: samples and seconds are mutually exclusive", ErrInvalidParams)
	case samples < 0:
		return 0, fmt.Errorf("%w: samples must be > 0: %d", ErrInvalidParams, samples)
	case samples > 0:
		return samples, nil
	case seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0):
		return 0, fmt.Errorf("%w: seconds must be > 0: %f", ErrInvalidParams, seconds)
	}

	n := int(math.Round(seconds * g.cfg.SampleRate))
	if n <= 0 {
		return 0, fmt.Errorf("%w: duration %gs yields no samples at %g Hz", ErrInvalidParams, seconds, g.cfg.SampleRate)
	}
	return n, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("%w: normalize target peak must be >= 0: %f", ErrInvalidParams, targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: normalize input must not be empty", ErrInvalidParams)
	}

	maxAbs := math.Max(math.Abs(floats.Max(data)), math.Abs(floats.Min(data)))

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	floats.ScaleTo(out, targetPeak/maxAbs, data)
	return out, nil
}
