package fsamp

import "github.com/cwbudde/algo-fir/dsp/fourier"

// Option configures synthesis.
type Option func(*config)

type config struct {
	window    []float64
	transform fourier.Factory
}

func defaultConfig() config {
	return config{transform: fourier.New}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithWindow multiplies the synthesized taps by coeffs, which must have the
// transform size as length. The slice is copied.
func WithWindow(coeffs []float64) Option {
	w := append([]float64(nil), coeffs...)
	return func(c *config) {
		c.window = w
	}
}

// WithTransform selects the DFT backend. A nil factory is ignored.
func WithTransform(f fourier.Factory) Option {
	return func(c *config) {
		if f != nil {
			c.transform = f
		}
	}
}
