package conv

import (
	"fmt"

	"github.com/cwbudde/algo-fir/dsp/core"
)

// Errors returned by convolution functions. Each wraps core.ErrInvalidArgument.
var (
	ErrEmptyInput       = fmt.Errorf("conv: empty input: %w", core.ErrInvalidArgument)
	ErrEmptyKernel      = fmt.Errorf("conv: empty kernel: %w", core.ErrInvalidArgument)
	ErrLengthMismatch   = fmt.Errorf("conv: buffer length mismatch: %w", core.ErrInvalidArgument)
	ErrInvalidBlockSize = fmt.Errorf("conv: invalid block size: %w", core.ErrInvalidArgument)
)

// directThreshold is the largest short-operand length [Convolve] handles directly.
const directThreshold = 64

// Mode specifies the output mode for convolution.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the signal operand.
	ModeSame

	// ModeValid returns only the portion where the operands fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

// OutputLen returns the full linear convolution length for operands of
// lengths n and m, or 0 if either is empty.
func OutputLen(n, m int) int {
	if n <= 0 || m <= 0 {
		return 0
	}
	return n + m - 1
}

// Direct returns the linear convolution of kernel and signal:
//
//	y[n] = sum_k kernel[k] * signal[n-k]
//
// with samples outside either operand treated as zero. The result has
// length len(kernel) + len(signal) - 1.
func Direct(kernel, signal []float64) ([]float64, error) {
	if err := checkOperands(kernel, signal); err != nil {
		return nil, err
	}

	out := make([]float64, OutputLen(len(kernel), len(signal)))
	directTo(out, kernel, signal)
	return out, nil
}

// DirectTo is [Direct] writing into dst, which must have length
// len(kernel) + len(signal) - 1. dst must not alias either operand.
func DirectTo(dst, kernel, signal []float64) error {
	if err := checkOperands(kernel, signal); err != nil {
		return err
	}
	if want := OutputLen(len(kernel), len(signal)); len(dst) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(dst))
	}

	directTo(dst, kernel, signal)
	return nil
}

// directTo evaluates each output sample independently over the valid k range.
func directTo(dst, kernel, signal []float64) {
	m := len(kernel)
	s := len(signal)

	for n := range dst {
		kLo := max(0, n-s+1)
		kHi := min(n, m-1)

		var acc float64
		for k := kLo; k <= kHi; k++ {
			acc += kernel[k] * signal[n-k]
		}
		dst[n] = acc
	}
}

// Convolve returns the linear convolution of kernel and signal, choosing
// direct evaluation for short operands and overlap-add otherwise.
func Convolve(kernel, signal []float64) ([]float64, error) {
	if err := checkOperands(kernel, signal); err != nil {
		return nil, err
	}

	if min(len(kernel), len(signal)) <= directThreshold {
		return Direct(kernel, signal)
	}

	// Convolution commutes, so the shorter operand becomes the FFT kernel.
	if len(kernel) > len(signal) {
		kernel, signal = signal, kernel
	}
	return OverlapAddConvolve(kernel, signal)
}

// ConvolveMode performs convolution and trims the result to mode. The
// signal operand sets the ModeSame length.
func ConvolveMode(kernel, signal []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(kernel, signal)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(signal), len(kernel), mode), nil
}

// trimToMode extracts the appropriate portion of a full convolution result.
func trimToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	default:
		return full
	}
}

func checkOperands(kernel, signal []float64) error {
	if len(kernel) == 0 {
		return ErrEmptyKernel
	}
	if len(signal) == 0 {
		return ErrEmptyInput
	}
	return nil
}
