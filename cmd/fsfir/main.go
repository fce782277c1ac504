// Command fsfir designs a frequency-sampling FIR filter and reports on it.
//
// Usage:
//
//	fsfir [flags]
//
// Bands are given as start:length[:magnitude] bin ranges in the half
// spectrum, separated by commas. A magnitude of 0 or an omitted magnitude
// selects unity passband gain.
//
// Examples:
//
//	fsfir -size 256 -bands 32:25
//	fsfir -size 256 -bands 1:24 -dc 128 -window blackman -center -taps
//	fsfir -bands 32:25 -window nuttall -out filtered.wav -seconds 2
//	fsfir -bands 1:24 -dc 128 -in speech.wav -out lowpassed.wav
//	fsfir -bands 32:25 -compare -block 512
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/cwbudde/algo-fir/dsp/conv"
	"github.com/cwbudde/algo-fir/dsp/core"
	"github.com/cwbudde/algo-fir/dsp/filter/fir"
	"github.com/cwbudde/algo-fir/dsp/filter/fsamp"
	"github.com/cwbudde/algo-fir/dsp/signal"
	"github.com/cwbudde/algo-fir/dsp/window"
)

const (
	defaultSize    = 256
	defaultRate    = 1000
	defaultSeconds = 2.0
	outputPeak     = 0.9
)

type options struct {
	size    int
	bands   []fsamp.Band
	dc      float64
	window  window.Type
	rate    int
	center  bool
	taps    bool
	in      string
	out     string
	seconds float64
	seed    int64
	block   int
	compare bool
	verbose bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("fsfir", flag.ContinueOnError)
	fs.IntVar(&opts.size, "size", defaultSize, "transform size N (number of taps)")
	bands := fs.String("bands", "32:25", "comma-separated start:length[:magnitude] bin ranges")
	fs.Float64Var(&opts.dc, "dc", 0, "magnitude of the DC bin")
	win := fs.String("window", "rect", "window applied to the taps: rect, hann, hamming, blackman, nuttall")
	fs.IntVar(&opts.rate, "rate", defaultRate, "sample rate in Hz")
	fs.BoolVar(&opts.center, "center", false, "rotate taps by N/2 into a causal linear-phase filter")
	fs.BoolVar(&opts.taps, "taps", false, "print the taps")
	fs.StringVar(&opts.in, "in", "", "WAV file to filter (first channel); wideband noise when empty")
	fs.StringVar(&opts.out, "out", "", "write the filtered signal to this WAV file")
	fs.Float64Var(&opts.seconds, "seconds", defaultSeconds, "duration of generated noise in seconds")
	fs.Int64Var(&opts.seed, "seed", 1, "noise seed")
	fs.BoolVar(&opts.compare, "compare", false, "time direct against FFT convolution")
	fs.IntVar(&opts.block, "block", 0, "overlap-add block size for -compare (0 = automatic)")
	fs.BoolVar(&opts.verbose, "v", false, "verbose output")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: fsfir [flags]\n\n")
		fmt.Fprintf(fs.Output(), "Designs a frequency-sampling FIR filter and prints its response.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	var err error
	if opts.bands, err = parseBands(*bands); err != nil {
		return options{}, err
	}
	if opts.window, err = window.Parse(*win); err != nil {
		return options{}, err
	}
	if opts.rate <= 0 {
		return options{}, fmt.Errorf("sample rate must be > 0: %d", opts.rate)
	}
	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(float64(opts.rate)),
		core.WithTransformSize(opts.size),
		core.WithBlockSize(opts.block),
	)

	spec := fsamp.Spec{
		TransformSize: opts.size,
		Bands:         opts.bands,
		DCMagnitude:   opts.dc,
	}

	if opts.verbose {
		log.Printf("Transform size: %d (bin width %.4f Hz)", spec.TransformSize, cfg.BinWidth())
		log.Printf("Bands: %v", spec.Bands)
		log.Printf("Window: %s", opts.window)
	}

	result, err := fsamp.Design(spec)
	if err != nil {
		return fmt.Errorf("design failed: %w", err)
	}

	taps := result.Taps
	if opts.center {
		taps = fsamp.Center(taps)
	}
	if opts.window != window.TypeRectangular {
		if err := fsamp.ApplyWindow(taps, window.Generate(opts.window, len(taps))); err != nil {
			return err
		}
	}

	filter, err := fir.New(taps)
	if err != nil {
		return err
	}

	if err := printReport(stdout, spec, cfg, opts, result, filter); err != nil {
		return err
	}

	if opts.out == "" && !opts.compare {
		return nil
	}

	x, err := loadSignal(opts)
	if err != nil {
		return err
	}

	if opts.compare {
		if err := compareConvolution(stdout, taps, x, cfg); err != nil {
			return err
		}
	}

	if opts.out != "" {
		y, err := conv.Convolve(taps, x)
		if err != nil {
			return err
		}
		y, err = signal.Normalize(y, outputPeak)
		if err != nil {
			return err
		}
		if err := writeWAV(opts.out, y, opts.rate); err != nil {
			return err
		}
		if opts.verbose {
			log.Printf("Wrote %d samples to %s", len(y), opts.out)
		}
	}

	return nil
}

// loadSignal reads the input WAV or generates wideband noise.
func loadSignal(opts options) ([]float64, error) {
	if opts.in == "" {
		g := signal.NewGeneratorWithOptions(
			[]core.ProcessorOption{core.WithSampleRate(float64(opts.rate))},
			signal.WithSeed(opts.seed),
		)
		return g.WidebandNoise(1, opts.seconds)
	}

	x, rate, err := readWAV(opts.in)
	if err != nil {
		return nil, err
	}
	if rate != opts.rate && opts.verbose {
		log.Printf("Input rate %d Hz differs from -rate %d Hz; bins are interpreted at -rate", rate, opts.rate)
	}
	return x, nil
}

func compareConvolution(w io.Writer, taps, x []float64, cfg core.ProcessorConfig) error {
	start := time.Now()
	direct, err := conv.Direct(taps, x)
	if err != nil {
		return err
	}
	directTime := time.Since(start)

	start = time.Now()
	auto, err := conv.Convolve(taps, x)
	if err != nil {
		return err
	}
	autoTime := time.Since(start)

	oa, err := conv.NewOverlapAdd(taps, cfg.BlockSize)
	if err != nil {
		return err
	}
	start = time.Now()
	blocked, err := oa.Process(x)
	if err != nil {
		return err
	}
	blockedTime := time.Since(start)

	maxDiff := 0.0
	for i := range direct {
		maxDiff = max(maxDiff, math.Abs(direct[i]-auto[i]), math.Abs(direct[i]-blocked[i]))
	}

	_, err = fmt.Fprintf(w, "\nConvolution of %d taps with %d samples\n"+
		"  direct:      %v\n  auto:        %v\n  overlap-add: %v (block %d, FFT %d)\n  max difference: %.3g\n",
		len(taps), len(x), directTime, autoTime, blockedTime, oa.BlockSize(), oa.FFTSize(), maxDiff)
	return err
}

