package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-fir/dsp/core"
	"github.com/cwbudde/algo-fir/dsp/filter/fir"
	"github.com/cwbudde/algo-fir/dsp/filter/fsamp"
	"github.com/cwbudde/algo-fir/dsp/spectrum"
	"github.com/cwbudde/algo-fir/dsp/window"
)

const (
	// responseRows is the number of evenly spaced bins in the response table.
	responseRows = 16
	barWidth     = 20
)

func printReport(w io.Writer, spec fsamp.Spec, cfg core.ProcessorConfig, opts options,
	result *fsamp.Result, filter *fir.Filter,
) error {
	info := window.Info(opts.window)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Transform size\t%d\n", spec.TransformSize)
	fmt.Fprintf(tw, "Bin width\t%.4f Hz\n", cfg.BinWidth())
	fmt.Fprintf(tw, "DC magnitude\t%g\n", spec.DCMagnitude)
	for i, b := range spec.Bands {
		fmt.Fprintf(tw, "Band %d\tbins [%d, %d)\t%.3f - %.3f Hz\n", i, b.StartBin, b.End(),
			fsamp.BinToFrequency(b.StartBin, cfg), fsamp.BinToFrequency(b.End(), cfg))
	}
	fmt.Fprintf(tw, "Window\t%s\tENBW %.4f bins\tscallop %.2f dB\n", info.Name, info.ENBW, info.ScallopLossdB)
	fmt.Fprintf(tw, "Centred\t%t\n", opts.center)
	fmt.Fprintf(tw, "Max imaginary residue\t%.3g\n", result.MaxImag)
	if err := tw.Flush(); err != nil {
		return err
	}

	if err := printResponse(w, spec, cfg, result, filter); err != nil {
		return err
	}

	summary, err := analyzeResponse(filter.Taps(), result.Half, cfg)
	if err != nil {
		return err
	}
	if err := printSummary(w, summary); err != nil {
		return err
	}

	if opts.taps {
		if _, err := fmt.Fprintln(w, "\nTaps:"); err != nil {
			return err
		}
		for i, v := range filter.Taps() {
			if _, err := fmt.Fprintf(w, "%4d  % .10f\n", i, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func printResponse(w io.Writer, spec fsamp.Spec, cfg core.ProcessorConfig, result *fsamp.Result, filter *fir.Filter) error {
	n := spec.TransformSize
	gain := float64(n) / 2
	step := max(1, (n/2)/responseRows)

	var bins []int
	var h []complex128
	for k := 0; k <= n/2; k += step {
		bins = append(bins, k)
		h = append(h, filter.ResponseAtBin(k, n))
	}
	mag := spectrum.Magnitude(h)
	phase := spectrum.PhaseDegrees(h)
	level := spectrum.NormalizeRange(mag)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\nBin\tFreq [Hz]\tTarget [dB]\tActual [dB]\tPhase [deg]\t\t\n")
	for i, k := range bins {
		target := core.LinearToDB(result.Half[k] / gain)
		actual := core.LinearToDB(mag[i] / gain)
		bar := strings.Repeat("#", int(math.Round(level[i]*barWidth)))
		fmt.Fprintf(tw, "%d\t%.3f\t%.2f\t%.2f\t%.1f\t%-*s\t\n",
			k, fsamp.BinToFrequency(k, cfg), target, actual, phase[i], barWidth, bar)
	}
	return tw.Flush()
}
