package testutil

import "math"

// ReferenceConvolve is the textbook input-side convolution: every input
// sample scatters a scaled copy of the kernel into the output. It sums in a
// different order than the output-side engine and serves as an oracle.
func ReferenceConvolve(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]float64, len(a)+len(b)-1)
	for i, x := range a {
		for j, h := range b {
			out[i+j] += x * h
		}
	}
	return out
}

// ReferenceIDFT evaluates the O(N^2) inverse DFT of a real, Hermitian
// spectrum and returns the real part scaled by 1/N.
func ReferenceIDFT(full []float64) []float64 {
	n := len(full)
	out := make([]float64, n)
	for t := range out {
		var acc float64
		for k, v := range full {
			acc += v * math.Cos(2*math.Pi*float64(k*t%n)/float64(n))
		}
		out[t] = acc / float64(n)
	}
	return out
}
