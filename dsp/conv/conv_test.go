package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fir/dsp/core"
	"github.com/cwbudde/algo-fir/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		kernel   []float64
		signal   []float64
		expected []float64
	}{
		{
			name:     "lyons moving sum",
			kernel:   []float64{1, 1, 1, 1},
			signal:   []float64{1, 2, 3},
			expected: []float64{1, 3, 6, 6, 5, 3},
		},
		{
			name:     "simple 3x3",
			kernel:   []float64{1, 1, 1},
			signal:   []float64{1, 2, 3},
			expected: []float64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			kernel:   []float64{1},
			signal:   []float64{1, 2, 3, 4, 5},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			kernel:   []float64{0, 0, 1},
			signal:   []float64{1, 2, 3, 4, 5},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			kernel:   []float64{1, 2, 1},
			signal:   []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
		{
			name:     "single samples",
			kernel:   []float64{-2},
			signal:   []float64{3},
			expected: []float64{-6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.kernel, tt.signal)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.RequireSliceNearlyEqual(t, result, tt.expected, 1e-12)
		})
	}
}

func TestDirectErrors(t *testing.T) {
	_, err := Direct([]float64{1, 2}, []float64{})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	_, err = Direct(nil, []float64{1, 2})
	if !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}

	if !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("expected error to wrap core.ErrInvalidArgument, got %v", err)
	}

	err = DirectTo(make([]float64, 3), []float64{1, 2}, []float64{1, 2, 3})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestDirectTo(t *testing.T) {
	dst := []float64{9, 9, 9, 9, 9, 9}
	if err := DirectTo(dst, []float64{1, 1, 1, 1}, []float64{1, 2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, dst, []float64{1, 3, 6, 6, 5, 3}, 0)
}

func TestDirectDoesNotModifyInputs(t *testing.T) {
	kernel := []float64{0.5, -1, 2}
	signal := []float64{3, 1, 4, 1, 5}
	kernelCopy := append([]float64(nil), kernel...)
	signalCopy := append([]float64(nil), signal...)

	out, err := Direct(kernel, signal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out[0] = 1000

	testutil.RequireSliceNearlyEqual(t, kernel, kernelCopy, 0)
	testutil.RequireSliceNearlyEqual(t, signal, signalCopy, 0)
}

func TestDirectLengthLaw(t *testing.T) {
	for n := 1; n <= 9; n++ {
		for m := 1; m <= 9; m++ {
			out, err := Direct(testutil.Ones(n), testutil.Ones(m))
			if err != nil {
				t.Fatalf("n=%d m=%d: unexpected error: %v", n, m, err)
			}
			if len(out) != n+m-1 {
				t.Fatalf("n=%d m=%d: len = %d, want %d", n, m, len(out), n+m-1)
			}
		}
	}
}

func TestDirectMatchesReference(t *testing.T) {
	for _, sizes := range [][2]int{{1, 1}, {3, 17}, {17, 3}, {64, 200}, {257, 31}} {
		a := testutil.DeterministicNoise(int64(sizes[0]), 1, sizes[0])
		b := testutil.DeterministicNoise(int64(sizes[1])+100, 1, sizes[1])
		got, err := Direct(a, b)
		if err != nil {
			t.Fatalf("Direct(%d, %d): %v", sizes[0], sizes[1], err)
		}
		testutil.RequireSliceNearlyEqual(t, got, testutil.ReferenceConvolve(a, b), 1e-12)
	}
}

func TestDirectCommutative(t *testing.T) {
	a := testutil.DeterministicNoise(1, 1, 37)
	b := testutil.DeterministicNoise(2, 1, 11)

	ab, err := Direct(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ba, err := Direct(b, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, ab, ba, 1e-12)
}

func TestDirectLinear(t *testing.T) {
	a := testutil.DeterministicNoise(3, 1, 16)
	b1 := testutil.DeterministicNoise(4, 1, 24)
	b2 := testutil.DeterministicNoise(5, 1, 9)

	// Zero-pad b2 to the length of b1 so the sum is defined sample by sample.
	sum := make([]float64, len(b1))
	copy(sum, b1)
	for i, v := range b2 {
		sum[i] += v
	}

	lhs, _ := Direct(a, sum)
	y1, _ := Direct(a, b1)
	y2, _ := Direct(a, b2)

	rhs := make([]float64, len(lhs))
	copy(rhs, y1)
	for i, v := range y2 {
		rhs[i] += v
	}

	testutil.RequireSliceNearlyEqual(t, lhs, rhs, 1e-12)
}

func TestDirectIdentity(t *testing.T) {
	x := testutil.DeterministicSine(50, 1000, 0.8, 64)

	out, err := Direct([]float64{1}, x)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, out, x, 0)

	// A delayed impulse shifts the signal by its position.
	out, err = Direct(testutil.Impulse(4, 3), x)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out[3:], x, 0)
	testutil.RequireSliceNearlyEqual(t, out[:3], make([]float64, 3), 0)
}

func TestDirectAccumulationOrder(t *testing.T) {
	// With k ascending, 1e16 + 1 - 1e16 rounds the 1 away.
	kernel := []float64{1e16, 1, -1e16}
	out, err := Direct(kernel, []float64{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, kernel, 0)

	out, err = Direct(kernel, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[2] != 0 {
		t.Fatalf("out[2] = %v, want 0 from low-to-high accumulation", out[2])
	}
}

func TestOverlapAddConvolve(t *testing.T) {
	signal := testutil.DeterministicSine(10, 1000, 1, 1000)
	kernel := []float64{0.25, 0.5, 0.25}

	directResult, err := Direct(kernel, signal)
	if err != nil {
		t.Fatalf("direct convolution failed: %v", err)
	}

	oaResult, err := OverlapAddConvolve(kernel, signal)
	if err != nil {
		t.Fatalf("overlap-add convolution failed: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, oaResult, directResult, 1e-10)
}

func TestOverlapAddBlockSizes(t *testing.T) {
	signal := testutil.DeterministicNoise(7, 1, 700)
	kernel := testutil.DeterministicNoise(8, 1, 45)

	want, err := Direct(kernel, signal)
	if err != nil {
		t.Fatalf("direct convolution failed: %v", err)
	}

	for _, blockSize := range []int{0, 1, 17, 64, 1024} {
		oa, err := NewOverlapAdd(kernel, blockSize)
		if err != nil {
			t.Fatalf("blockSize=%d: NewOverlapAdd failed: %v", blockSize, err)
		}

		got, err := oa.Process(signal)
		if err != nil {
			t.Fatalf("blockSize=%d: Process failed: %v", blockSize, err)
		}
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)

		dst := make([]float64, len(want))
		if err := oa.ProcessTo(dst, signal); err != nil {
			t.Fatalf("blockSize=%d: ProcessTo failed: %v", blockSize, err)
		}
		testutil.RequireSliceNearlyEqual(t, dst, want, 1e-9)
	}
}

func TestOverlapAddErrors(t *testing.T) {
	if _, err := NewOverlapAdd(nil, 0); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
	if _, err := NewOverlapAdd([]float64{1}, -1); !errors.Is(err, ErrInvalidBlockSize) {
		t.Errorf("expected ErrInvalidBlockSize, got %v", err)
	}

	oa, err := NewOverlapAdd([]float64{1, 2}, 0)
	if err != nil {
		t.Fatalf("NewOverlapAdd failed: %v", err)
	}
	if oa.KernelLen() != 2 || oa.BlockSize() != minBlockSize || oa.FFTSize() != 512 {
		t.Fatalf("unexpected geometry: kernel=%d block=%d fft=%d", oa.KernelLen(), oa.BlockSize(), oa.FFTSize())
	}
	if _, err := oa.Process(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if err := oa.ProcessTo(make([]float64, 2), []float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestConvolveAutoSelection(t *testing.T) {
	signal := make([]float64, 1000)
	for i := range signal {
		signal[i] = float64(i % 10)
	}

	shortKernel := []float64{1, 2, 1}
	longKernel := make([]float64, 100)
	for i := range longKernel {
		longKernel[i] = math.Exp(-float64(i) / 20)
	}

	for _, kernel := range [][]float64{shortKernel, longKernel} {
		got, err := Convolve(kernel, signal)
		if err != nil {
			t.Fatalf("convolution failed: %v", err)
		}

		want, _ := Direct(kernel, signal)

		maxDiff, err := testutil.MaxAbsDiff(got, want)
		if err != nil {
			t.Fatalf("MaxAbsDiff: %v", err)
		}
		if maxDiff > 1e-8 {
			t.Errorf("kernel len %d: max difference %v exceeds tolerance", len(kernel), maxDiff)
		}
	}

	// Operand order must not matter when the kernel is the longer sequence.
	swapped, err := Convolve(signal, longKernel)
	if err != nil {
		t.Fatalf("convolution failed: %v", err)
	}
	want, _ := Direct(longKernel, signal)
	testutil.RequireSliceNearlyEqual(t, swapped, want, 1e-8)
}

func TestConvolveMode(t *testing.T) {
	kernel := []float64{1, 2, 3}
	signal := []float64{1, 2, 3, 4, 5}

	full, err := ConvolveMode(kernel, signal, ModeFull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, full, []float64{1, 4, 10, 16, 22, 22, 15}, 1e-12)

	same, _ := ConvolveMode(kernel, signal, ModeSame)
	testutil.RequireSliceNearlyEqual(t, same, []float64{4, 10, 16, 22, 22}, 1e-12)

	valid, _ := ConvolveMode(kernel, signal, ModeValid)
	testutil.RequireSliceNearlyEqual(t, valid, []float64{10, 16, 22}, 1e-12)

	if _, err := ConvolveMode(nil, signal, ModeFull); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}

func TestOutputLen(t *testing.T) {
	if OutputLen(4, 3) != 6 || OutputLen(0, 3) != 0 || OutputLen(3, -1) != 0 {
		t.Fatal("OutputLen returned unexpected values")
	}
}
