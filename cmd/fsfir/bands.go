package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-fir/dsp/filter/fsamp"
)

// parseBands parses "start:length[:magnitude],..." into bands. A magnitude
// of "stop" writes zeros. An empty string yields no bands.
func parseBands(s string) ([]fsamp.Band, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var bands []fsamp.Band
	for i, item := range strings.Split(s, ",") {
		parts := strings.Split(strings.TrimSpace(item), ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("band %d: %q: want start:length[:magnitude]", i, item)
		}

		start, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("band %d: start: %w", i, err)
		}
		length, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("band %d: length: %w", i, err)
		}

		b := fsamp.Band{StartBin: start, Length: length}
		switch {
		case len(parts) == 3 && parts[2] == "stop":
			b.Stop = true
		case len(parts) == 3:
			if b.Magnitude, err = strconv.ParseFloat(parts[2], 64); err != nil {
				return nil, fmt.Errorf("band %d: magnitude: %w", i, err)
			}
		}
		bands = append(bands, b)
	}
	return bands, nil
}
