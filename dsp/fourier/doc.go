// Package fourier adapts external FFT libraries to the one DFT primitive the
// rest of the module consumes.
//
// The package does not implement a transform itself. [New] prefers an
// algo-fft plan and falls back to gonum's complex FFT for sizes algo-fft
// does not plan. Both backends follow the same convention:
//
//	X[k] = sum_n x[n] * exp(-2*pi*i*k*n/N)     (Forward)
//	x[n] = 1/N * sum_k X[k] * exp(2*pi*i*k*n/N) (Inverse)
package fourier
