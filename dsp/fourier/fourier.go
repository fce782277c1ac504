package fourier

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	gonumfourier "gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-fir/dsp/core"
)

// Errors returned by transform construction and execution.
var (
	ErrInvalidSize    = fmt.Errorf("fourier: invalid transform size: %w", core.ErrInvalidArgument)
	ErrLengthMismatch = fmt.Errorf("fourier: buffer length mismatch: %w", core.ErrInvalidArgument)
)

// Transform is a length-preserving complex DFT of fixed size.
//
// Inverse applies the 1/N normalisation. dst and src may alias.
type Transform interface {
	Len() int
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

// Factory builds a Transform of size n.
type Factory func(n int) (Transform, error)

// New returns a Transform of size n backed by algo-fft, or by gonum when
// algo-fft cannot plan the size.
func New(n int) (Transform, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return NewGonum(n)
	}

	return &planTransform{plan: plan, n: n}, nil
}

// NewGonum returns a Transform of size n backed by gonum's CmplxFFT.
func NewGonum(n int) (Transform, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	return &gonumTransform{
		fft:  gonumfourier.NewCmplxFFT(n),
		n:    n,
		work: make([]complex128, n),
	}, nil
}

type planTransform struct {
	plan *algofft.Plan[complex128]
	n    int
}

func (t *planTransform) Len() int { return t.n }

func (t *planTransform) Forward(dst, src []complex128) error {
	if err := checkLen(t.n, dst, src); err != nil {
		return err
	}
	if err := t.plan.Forward(dst, src); err != nil {
		return fmt.Errorf("fourier: forward transform failed: %w", err)
	}
	return nil
}

func (t *planTransform) Inverse(dst, src []complex128) error {
	if err := checkLen(t.n, dst, src); err != nil {
		return err
	}
	if err := t.plan.Inverse(dst, src); err != nil {
		return fmt.Errorf("fourier: inverse transform failed: %w", err)
	}
	return nil
}

// gonumTransform copies src into a scratch buffer first, so dst and src may
// alias. gonum does not normalise its inverse.
type gonumTransform struct {
	fft  *gonumfourier.CmplxFFT
	n    int
	work []complex128
}

func (t *gonumTransform) Len() int { return t.n }

func (t *gonumTransform) Forward(dst, src []complex128) error {
	if err := checkLen(t.n, dst, src); err != nil {
		return err
	}
	copy(t.work, src)
	t.fft.Coefficients(dst, t.work)
	return nil
}

func (t *gonumTransform) Inverse(dst, src []complex128) error {
	if err := checkLen(t.n, dst, src); err != nil {
		return err
	}
	copy(t.work, src)
	t.fft.Sequence(dst, t.work)

	scale := complex(1/float64(t.n), 0)
	for i := range dst {
		dst[i] *= scale
	}
	return nil
}

func checkLen(n int, dst, src []complex128) error {
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: want %d, got dst=%d src=%d", ErrLengthMismatch, n, len(dst), len(src))
	}
	return nil
}
