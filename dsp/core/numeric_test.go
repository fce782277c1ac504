package core

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		eps  float64
		want bool
	}{
		{name: "identical", a: 1, b: 1, eps: 1e-12, want: true},
		{name: "absolute", a: 1.0, b: 1.0 + 1e-13, eps: 1e-12, want: true},
		{name: "relative", a: 1e6, b: 1e6 + 1e-4, eps: 1e-9, want: true},
		{name: "different", a: 1.0, b: 1.1, eps: 1e-3, want: false},
		{name: "default eps", a: 0, b: 1e-13, eps: 0, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearlyEqual(tt.a, tt.b, tt.eps); got != tt.want {
				t.Fatalf("NearlyEqual(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.eps, got, tt.want)
			}
		})
	}
}

func TestDBConversions(t *testing.T) {
	linear := DBToLinear(-6)
	db := LinearToDB(linear)
	if !NearlyEqual(db, -6, 1e-10) {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestPowerOfTwo(t *testing.T) {
	cases := map[int]int{-3: 1, 0: 1, 1: 1, 2: 2, 3: 4, 255: 256, 256: 256, 257: 512}
	for in, want := range cases {
		if got := NextPowerOfTwo(in); got != want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", in, got, want)
		}
	}

	if !IsPowerOfTwo(256) || IsPowerOfTwo(305) || IsPowerOfTwo(0) {
		t.Fatal("IsPowerOfTwo gave wrong classification")
	}
}
