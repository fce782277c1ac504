package window

import (
	"fmt"

	"github.com/cwbudde/algo-fir/dsp/core"
)

var (
	ErrUnknownType      = fmt.Errorf("window: unknown type: %w", core.ErrInvalidArgument)
	ErrEmptyCoeffs      = fmt.Errorf("window: coefficients must not be empty: %w", core.ErrInvalidArgument)
	ErrZeroCoherentGain = fmt.Errorf("window: coherent gain is zero: %w", core.ErrInvalidArgument)
	ErrMismatchedLength = fmt.Errorf("window: samples and coefficients must have same length: %w", core.ErrInvalidArgument)
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window: size must be > 0: %d: %w", size, core.ErrInvalidArgument)
	}
	return nil
}
