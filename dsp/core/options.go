package core

// ProcessorConfig carries the settings shared by signal generation, filter
// design and spectrum inspection.
type ProcessorConfig struct {
	// SampleRate in Hz. Only used to convert between bins and frequencies.
	SampleRate float64
	// TransformSize is the DFT length N used for filter design.
	TransformSize int
	// BlockSize is the segment length for block convolution. Zero selects
	// an automatic size.
	BlockSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns a 1 kHz sample rate and a 256-point transform.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:    1000,
		TransformSize: 256,
	}
}

// WithSampleRate sets the sample rate. Non-positive values are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithTransformSize sets the design transform size. Non-positive values are ignored.
func WithTransformSize(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if n > 0 {
			cfg.TransformSize = n
		}
	}
}

// WithBlockSize sets the block convolution segment length. Non-positive values are ignored.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// BinWidth returns the frequency spacing between adjacent design bins in Hz.
func (c ProcessorConfig) BinWidth() float64 {
	if c.TransformSize <= 0 {
		return 0
	}
	return c.SampleRate / float64(c.TransformSize)
}
