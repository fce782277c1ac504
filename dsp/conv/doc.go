// Package conv provides linear convolution of finite real sequences.
//
// Two strategies are offered:
//
//   - Direct: the textbook O(N*M) double sum. Every output sample is
//     accumulated from the lowest kernel index to the highest, so results are
//     bit-for-bit reproducible. It serves as the correctness oracle.
//   - Overlap-add: FFT-based block convolution, used as the fast reference
//     for long kernels.
//
// # Usage
//
//	y, err := conv.Direct(kernel, signal)   // textbook oracle
//	y, err := conv.Convolve(kernel, signal) // picks direct or overlap-add
//
// For repeated convolution with the same kernel, create a reusable convolver:
//
//	c, err := conv.NewOverlapAdd(kernel, blockSize)
//	y, err := c.Process(signal)
//
// Both operands must be non-empty. Empty operands fail with an error that
// wraps core.ErrInvalidArgument. All functions return freshly allocated
// output and never retain their inputs.
//
// # Algorithm Selection
//
// [Convolve] uses direct convolution when the shorter operand has at most 64
// samples and overlap-add otherwise. Run the package benchmarks to compare
// the two on a given machine:
//
//	go test -bench 'Direct|Convolve' ./dsp/conv
package conv
