package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-fir/dsp/core"
	"github.com/cwbudde/algo-fir/dsp/fourier"
	"github.com/cwbudde/algo-fir/dsp/spectrum"
)

// padFactor zero-pads the taps so the response is also sampled between
// design bins.
const padFactor = 4

type responseSummary struct {
	PeakBin     float64 // in design bins
	PeakFreq    float64
	PassEnergy  float64
	StopEnergy  float64
	RejectionDB float64 // NaN unless both energies are positive
	GroupDelay  float64 // samples at the middle of the first passband; NaN without one
}

// passbandRuns returns the half-open bin ranges where half is nonzero.
func passbandRuns(half []float64) [][2]int {
	var runs [][2]int
	start := -1
	for k, v := range half {
		switch {
		case v > 0 && start < 0:
			start = k
		case v <= 0 && start >= 0:
			runs = append(runs, [2]int{start, k})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, [2]int{start, len(half)})
	}
	return runs
}

// rejectionDB returns the passband-to-stopband energy ratio in dB, or NaN
// when either side carries no energy.
func rejectionDB(pass, stop float64) float64 {
	if pass <= 0 || stop <= 0 {
		return math.NaN()
	}
	return 10 * math.Log10(pass/stop)
}

func analyzeResponse(taps, half []float64, cfg core.ProcessorConfig) (responseSummary, error) {
	n := len(taps)
	m := padFactor * n
	padded := make([]float64, m)
	copy(padded, taps)

	x, err := fourier.ForwardReal(padded)
	if err != nil {
		return responseSummary{}, err
	}

	// Every padFactor-th bin lies on the design grid.
	grid := make([]complex128, len(half))
	for k := range grid {
		grid[k] = x[padFactor*k]
	}
	power := spectrum.Power(grid)

	s := responseSummary{GroupDelay: math.NaN()}
	total, err := spectrum.BandEnergy(power, 0, len(power))
	if err != nil {
		return s, err
	}
	runs := passbandRuns(half)
	for _, r := range runs {
		e, err := spectrum.BandEnergy(power, r[0], r[1])
		if err != nil {
			return s, err
		}
		s.PassEnergy += e
	}
	s.StopEnergy = math.Max(0, total-s.PassEnergy)
	s.RejectionDB = rejectionDB(s.PassEnergy, s.StopEnergy)

	peak, _ := spectrum.DominantBin(spectrum.Magnitude(x))
	s.PeakBin = float64(peak) / padFactor
	s.PeakFreq = spectrum.FrequencyAxis(m, cfg.SampleRate)[peak]

	if len(runs) > 0 {
		lo, hi := padFactor*runs[0][0], padFactor*(runs[0][1]-1)+1
		if hi-lo >= 2 {
			phase := spectrum.UnwrapPhase(spectrum.Phase(x[lo:hi]))
			gd, err := spectrum.GroupDelayFromPhase(phase, m)
			if err != nil {
				return s, err
			}
			s.GroupDelay = gd[len(gd)/2]
		}
	}
	return s, nil
}

func printSummary(w io.Writer, s responseSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nPeak response\t%.2f bins\t%.3f Hz\n", s.PeakBin, s.PeakFreq)
	if math.IsNaN(s.RejectionDB) {
		fmt.Fprintf(tw, "Passband/stopband energy\t%.4g / %.4g\tn/a\n", s.PassEnergy, s.StopEnergy)
	} else {
		fmt.Fprintf(tw, "Passband/stopband energy\t%.4g / %.4g\t%.1f dB\n", s.PassEnergy, s.StopEnergy, s.RejectionDB)
	}
	if math.IsNaN(s.GroupDelay) {
		fmt.Fprintf(tw, "Group delay\tn/a\n")
	} else {
		fmt.Fprintf(tw, "Group delay\t%.2f samples\n", s.GroupDelay)
	}
	return tw.Flush()
}
