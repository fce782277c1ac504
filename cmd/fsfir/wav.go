package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	wavBitDepth  = 16
	wavPCMFormat = 1
	maxInt16     = 32767.0
)

// writeWAV writes samples in [-1, 1] as mono 16-bit PCM.
func writeWAV(path string, samples []float64, sampleRate int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	data := make([]int, len(samples))
	for i, v := range samples {
		v = math.Max(-1, math.Min(1, v))
		data[i] = int(math.Round(v * maxInt16))
	}

	enc := wav.NewEncoder(f, sampleRate, wavBitDepth, 1, wavPCMFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: wavBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// readWAV returns the first channel of a PCM WAV file scaled to [-1, 1]
// and its sample rate.
func readWAV(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	channels := buf.Format.NumChannels
	if channels <= 0 {
		return nil, 0, fmt.Errorf("invalid channel count %d in %s", channels, path)
	}
	bitDepth := int(dec.BitDepth)
	if bitDepth <= 0 {
		bitDepth = wavBitDepth
	}
	scale := 1 / math.Pow(2, float64(bitDepth-1))

	out := make([]float64, 0, len(buf.Data)/channels)
	for i := 0; i < len(buf.Data); i += channels {
		out = append(out, float64(buf.Data[i])*scale)
	}
	if len(out) == 0 {
		return nil, 0, fmt.Errorf("no samples in %s", path)
	}
	return out, buf.Format.SampleRate, nil
}
