package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fir/dsp/core"
	"github.com/cwbudde/algo-fir/dsp/filter/fsamp"
	"github.com/cwbudde/algo-fir/dsp/window"
)

func TestParseBands(t *testing.T) {
	tests := []struct {
		in      string
		want    []fsamp.Band
		wantErr string
	}{
		{in: "", want: nil},
		{in: "32:25", want: []fsamp.Band{{StartBin: 32, Length: 25}}},
		{in: "1:10:64, 60:20", want: []fsamp.Band{{StartBin: 1, Length: 10, Magnitude: 64}, {StartBin: 60, Length: 20}}},
		{in: "0:5", want: []fsamp.Band{{StartBin: 0, Length: 5}}},
		{in: "2:8,4:2:stop", want: []fsamp.Band{{StartBin: 2, Length: 8}, {StartBin: 4, Length: 2, Stop: true}}},
		{in: "32", wantErr: "want start:length"},
		{in: "1:2:3:4", wantErr: "want start:length"},
		{in: "a:2", wantErr: "start"},
		{in: "1:b", wantErr: "length"},
		{in: "1:2:c", wantErr: "magnitude"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseBands(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-size", "128", "-bands", "4:8", "-window", "hanning", "-center"})
	require.NoError(t, err)
	assert.Equal(t, 128, opts.size)
	assert.Equal(t, []fsamp.Band{{StartBin: 4, Length: 8}}, opts.bands)
	assert.Equal(t, window.TypeHann, opts.window)
	assert.True(t, opts.center)
	assert.Equal(t, defaultRate, opts.rate)

	_, err = parseFlags([]string{"-window", "kaiser"})
	require.ErrorIs(t, err, window.ErrUnknownType)

	_, err = parseFlags([]string{"-rate", "0"})
	require.Error(t, err)

	_, err = parseFlags([]string{"extra"})
	require.Error(t, err)
}

func TestWAVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.wav")
	in := []float64{0, 0.5, -0.5, 1, -1, 0.25}

	require.NoError(t, writeWAV(path, in, 8000))

	out, rate, err := readWAV(path)
	require.NoError(t, err)
	assert.Equal(t, 8000, rate)
	require.Len(t, out, len(in))
	for i := range in {
		assert.InDelta(t, in[i], out[i], 1e-4, "sample %d", i)
	}
}

func TestReadWAVErrors(t *testing.T) {
	_, _, err := readWAV("/nonexistent/file.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")

	invalid := filepath.Join(t.TempDir(), "invalid.wav")
	require.NoError(t, os.WriteFile(invalid, []byte("not a wav file"), 0o644))
	_, _, err = readWAV(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestWriteWAVInvalidDirectory(t *testing.T) {
	err := writeWAV("/nonexistent/dir/out.wav", []float64{0}, 1000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestRunReportAndExport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "filtered.wav")

	var stdout bytes.Buffer
	err := run([]string{
		"-size", "64", "-bands", "4:8", "-window", "blackman", "-center", "-taps",
		"-seconds", "0.1", "-out", out, "-compare", "-block", "32",
	}, &stdout)
	require.NoError(t, err)

	report := stdout.String()
	assert.Contains(t, report, "Transform size")
	assert.Contains(t, report, "Blackman")
	assert.Contains(t, report, "Taps:")
	assert.Contains(t, report, "Group delay")
	assert.Contains(t, report, "Convolution of 64 taps with 100 samples")
	assert.Contains(t, report, "(block 32, FFT 128)")

	y, rate, err := readWAV(out)
	require.NoError(t, err)
	assert.Equal(t, defaultRate, rate)
	require.Len(t, y, 64+100-1)

	peak := 0.0
	for _, v := range y {
		peak = math.Max(peak, math.Abs(v))
	}
	assert.InDelta(t, outputPeak, peak, 1e-3)
}

func TestRunFiltersInputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")

	x := make([]float64, 500)
	for i := range x {
		x[i] = 0.5 * math.Sin(2*math.Pi*50*float64(i)/1000)
	}
	require.NoError(t, writeWAV(in, x, 1000))

	var stdout bytes.Buffer
	require.NoError(t, run([]string{"-size", "32", "-bands", "1:3", "-dc", "16", "-in", in, "-out", out}, &stdout))

	y, _, err := readWAV(out)
	require.NoError(t, err)
	assert.Len(t, y, 500+32-1)
}

func TestRunRejectsDegenerateBand(t *testing.T) {
	var stdout bytes.Buffer
	err := run([]string{"-bands", "0:5"}, &stdout)
	require.ErrorIs(t, err, fsamp.ErrInvalidBandSpec)
	assert.Empty(t, stdout.String())
}

func TestPassbandRuns(t *testing.T) {
	tests := []struct {
		half []float64
		want [][2]int
	}{
		{[]float64{0, 0, 0}, nil},
		{[]float64{1, 1, 0, 0}, [][2]int{{0, 2}}},
		{[]float64{0, 2, 0, 3, 3}, [][2]int{{1, 2}, {3, 5}}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, passbandRuns(tt.half), "half=%v", tt.half)
	}
}

func TestAnalyzeResponseCentredIsLinearPhase(t *testing.T) {
	const n = 64
	r, err := fsamp.Design(fsamp.Spec{TransformSize: n, Bands: []fsamp.Band{{StartBin: 4, Length: 10}}})
	require.NoError(t, err)

	cfg := core.ApplyProcessorOptions(core.WithSampleRate(1000), core.WithTransformSize(n))
	s, err := analyzeResponse(fsamp.Center(r.Taps), r.Half, cfg)
	require.NoError(t, err)

	assert.InDelta(t, n/2, s.GroupDelay, 1e-6)
	assert.InDelta(t, 10*32*32, s.PassEnergy, 1e-6)
	assert.True(t, math.IsNaN(s.RejectionDB) || s.RejectionDB > 100, "rejection %v dB", s.RejectionDB)
	assert.GreaterOrEqual(t, s.PeakBin, 4.0)
	assert.Less(t, s.PeakBin, 14.0)
	assert.InDelta(t, s.PeakBin*cfg.BinWidth(), s.PeakFreq, 1e-9)
}

func TestAnalyzeResponseSingleBin(t *testing.T) {
	r, err := fsamp.Design(fsamp.Spec{TransformSize: 32, Bands: []fsamp.Band{{StartBin: 5, Length: 1}}})
	require.NoError(t, err)

	s, err := analyzeResponse(r.Taps, r.Half, core.ApplyProcessorOptions(core.WithTransformSize(32)))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(s.GroupDelay))
	assert.InDelta(t, 5, s.PeakBin, 1e-9)

	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, s))
	assert.Contains(t, buf.String(), "n/a")
}

func TestRejectionDB(t *testing.T) {
	assert.InDelta(t, 20.0, rejectionDB(100, 1), 1e-12)
	assert.InDelta(t, -10.0, rejectionDB(1, 10), 1e-12)
	for _, e := range [][2]float64{{0, 0}, {5, 0}, {0, 5}} {
		assert.True(t, math.IsNaN(rejectionDB(e[0], e[1])), "pass=%v stop=%v", e[0], e[1])
	}
}

func TestAnalyzeResponseWithoutPassband(t *testing.T) {
	// Only a stop band: no passband and no DC.
	r, err := fsamp.Design(fsamp.Spec{TransformSize: 16, Bands: []fsamp.Band{{StartBin: 2, Length: 3, Stop: true}}})
	require.NoError(t, err)

	s, err := analyzeResponse(r.Taps, r.Half, core.ApplyProcessorOptions(core.WithTransformSize(16)))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(s.RejectionDB))

	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, s))
	assert.NotContains(t, buf.String(), "NaN")
	assert.NotContains(t, buf.String(), "Inf")
	assert.Contains(t, buf.String(), "n/a")
}
