package conv

import (
	"fmt"

	"github.com/cwbudde/algo-fir/dsp/core"
	"github.com/cwbudde/algo-fir/dsp/fourier"
)

// minBlockSize is the smallest automatically chosen overlap-add block.
const minBlockSize = 256

// OverlapAdd implements FFT-based convolution using the overlap-add method.
//
// The algorithm:
//  1. Divide the input signal into non-overlapping blocks
//  2. Zero-pad each block and the kernel to the transform size
//  3. Multiply the spectra
//  4. Overlap-add the inverse-transformed blocks into the output
//
// An OverlapAdd keeps scratch buffers and is not safe for concurrent use.
type OverlapAdd struct {
	kernelFFT []complex128

	kernelLen int
	blockSize int
	fftSize   int // blockSize + kernelLen - 1, rounded up to a power of two

	transform fourier.Transform

	inputPadded  []complex128
	outputPadded []complex128
}

// NewOverlapAdd creates an overlap-add convolver for kernel.
// If blockSize is 0, a size is chosen from the kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if blockSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}

	kernelLen := len(kernel)
	if blockSize == 0 {
		blockSize = max(core.NextPowerOfTwo(kernelLen), minBlockSize)
	}

	fftSize := core.NextPowerOfTwo(blockSize + kernelLen - 1)

	transform, err := fourier.New(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create transform: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT:    make([]complex128, fftSize),
		kernelLen:    kernelLen,
		blockSize:    blockSize,
		fftSize:      fftSize,
		transform:    transform,
		inputPadded:  make([]complex128, fftSize),
		outputPadded: make([]complex128, fftSize),
	}

	kernelPadded := make([]complex128, fftSize)
	for i, v := range kernel {
		kernelPadded[i] = complex(v, 0)
	}

	if err := transform.Forward(oa.kernelFFT, kernelPadded); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel spectrum: %w", err)
	}

	return oa, nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd) BlockSize() int {
	return oa.blockSize
}

// FFTSize returns the transform size used internally.
func (oa *OverlapAdd) FFTSize() int {
	return oa.fftSize
}

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int {
	return oa.kernelLen
}

// Process returns the full linear convolution of input with the kernel.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	output := make([]float64, OutputLen(len(input), oa.kernelLen))
	if err := oa.accumulate(output, input); err != nil {
		return nil, err
	}
	return output, nil
}

// ProcessTo convolves input into output, which must have length
// len(input) + KernelLen() - 1.
func (oa *OverlapAdd) ProcessTo(output, input []float64) error {
	if len(input) == 0 {
		return ErrEmptyInput
	}
	if want := OutputLen(len(input), oa.kernelLen); len(output) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(output))
	}

	for i := range output {
		output[i] = 0
	}
	return oa.accumulate(output, input)
}

func (oa *OverlapAdd) accumulate(output, input []float64) error {
	outputLen := len(output)
	numBlocks := (len(input) + oa.blockSize - 1) / oa.blockSize

	for blockIdx := range numBlocks {
		start := blockIdx * oa.blockSize
		end := min(start+oa.blockSize, len(input))
		blockLen := end - start

		for i := range oa.inputPadded {
			oa.inputPadded[i] = 0
		}
		for i := range blockLen {
			oa.inputPadded[i] = complex(input[start+i], 0)
		}

		if err := oa.transform.Forward(oa.inputPadded, oa.inputPadded); err != nil {
			return fmt.Errorf("conv: forward transform failed: %w", err)
		}

		for i := range oa.outputPadded {
			oa.outputPadded[i] = oa.inputPadded[i] * oa.kernelFFT[i]
		}

		if err := oa.transform.Inverse(oa.outputPadded, oa.outputPadded); err != nil {
			return fmt.Errorf("conv: inverse transform failed: %w", err)
		}

		// A block of length L convolved with M taps spans L + M - 1 samples.
		resultLen := blockLen + oa.kernelLen - 1
		for i := 0; i < resultLen && start+i < outputLen; i++ {
			output[start+i] += real(oa.outputPadded[i])
		}
	}

	return nil
}

// OverlapAddConvolve performs one-shot overlap-add convolution of kernel and signal.
func OverlapAddConvolve(kernel, signal []float64) ([]float64, error) {
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}
	return oa.Process(signal)
}
