package fsamp

import (
	"errors"
	"fmt"
)

// ErrInvalidBandSpec reports a degenerate band. Errors returned by
// [Validate] match it under errors.Is.
var ErrInvalidBandSpec = errors.New("fsamp: invalid band specification")

// Band covers the half-spectrum bins [StartBin, StartBin+Length).
type Band struct {
	StartBin int
	Length   int
	// Magnitude is the value written to each covered bin. Zero selects N/2,
	// which gives a passband gain of one.
	Magnitude float64
	// Stop writes zero to the covered bins and ignores Magnitude. A later
	// stop band notches an earlier passband.
	Stop bool
}

// End returns the first bin past the band.
func (b Band) End() int {
	return b.StartBin + b.Length
}

// BandError identifies the band and field that failed validation.
type BandError struct {
	Index int
	Field string
}

func (e *BandError) Error() string {
	return fmt.Sprintf("fsamp: band %d: %s must be non-zero", e.Index, e.Field)
}

// Is reports whether target is [ErrInvalidBandSpec].
func (e *BandError) Is(target error) bool {
	return target == ErrInvalidBandSpec
}

// Validate checks each band in order and returns a *BandError for the first
// band with a zero Length or a zero StartBin. Length is checked first. A
// band starting at bin 0 would overwrite the DC bin, which is set through
// [Spec.DCMagnitude] instead.
//
// Validate does not check ranges, signs, ordering or overlap.
func Validate(bands []Band) error {
	for i, b := range bands {
		if b.Length == 0 {
			return &BandError{Index: i, Field: "Length"}
		}
		if b.StartBin == 0 {
			return &BandError{Index: i, Field: "StartBin"}
		}
	}
	return nil
}
