package fourier

// Forward returns the DFT of x using a one-shot [New] transform.
func Forward(x []complex128) ([]complex128, error) {
	t, err := New(len(x))
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(x))
	if err := t.Forward(out, x); err != nil {
		return nil, err
	}
	return out, nil
}

// Inverse returns the normalised inverse DFT of x using a one-shot [New] transform.
func Inverse(x []complex128) ([]complex128, error) {
	t, err := New(len(x))
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(x))
	if err := t.Inverse(out, x); err != nil {
		return nil, err
	}
	return out, nil
}

// ForwardReal returns the DFT of a real sequence.
func ForwardReal(x []float64) ([]complex128, error) {
	return Forward(ToComplex(x))
}

// ToComplex widens a real sequence to complex with zero imaginary parts.
func ToComplex(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}

// SplitReal returns the real parts of x and the largest absolute imaginary part.
func SplitReal(x []complex128) (re []float64, maxImag float64) {
	re = make([]float64, len(x))
	for i, c := range x {
		re[i] = real(c)
		if im := imag(c); im > maxImag {
			maxImag = im
		} else if -im > maxImag {
			maxImag = -im
		}
	}
	return re, maxImag
}
