package sdf

import (
	"errors"
	"testing"
)

func TestNormalize_MinMax(t *testing.T) {
	g := mustGrid(t, 64, 64, circle(20, 40, 13))
	f := mustCompute(t, g)

	nf, err := f.Normalize(nil)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	lo, hi := f.Range()
	sawLo, sawHi := false, false
	for i, d := range f.Values() {
		v := nf.Values()[i]
		if v < 0 || v > 1 {
			t.Fatalf("index %d: %v outside [0, 1]", i, v)
		}
		if d == lo {
			sawLo = true
			if v != 0 {
				t.Errorf("minimum %v mapped to %v, want 0", d, v)
			}
		}
		if d == hi {
			sawHi = true
			if v != 1 {
				t.Errorf("maximum %v mapped to %v, want 1", d, v)
			}
		}
	}
	if !sawLo || !sawHi {
		t.Error("Range returned values not present in the field")
	}
}

func TestNormalize_ConstantField(t *testing.T) {
	g := mustGrid(t, 8, 8, func(x, y int) bool { return false })
	f := mustCompute(t, g)

	nf, err := f.Normalize(nil)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	for i, v := range nf.Values() {
		if v != 0.5 {
			t.Fatalf("index %d: got %v, want 0.5", i, v)
		}
	}
}

func TestNormalize_Half(t *testing.T) {
	g := mustGrid(t, 32, 32, rectangle(16, 16, 5, 9))
	f, err := ComputeF16(g)
	if err != nil {
		t.Fatalf("ComputeF16 failed: %v", err)
	}
	nf, err := f.Normalize(nil)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	lo, hi := f.Range()
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			switch f.At(x, y) {
			case lo:
				if nf.At(x, y) != 0 {
					t.Errorf("(%d,%d): minimum mapped to %v", x, y, nf.At(x, y))
				}
			case hi:
				if nf.At(x, y) != 1 {
					t.Errorf("(%d,%d): maximum mapped to %v", x, y, nf.At(x, y))
				}
			}
		}
	}
}

func TestNormalize_DimensionMismatch(t *testing.T) {
	f := mustCompute(t, mustGrid(t, 5, 5, circle(2, 2, 1.5)))

	dst := []float32{9, 9, 9}
	if _, err := f.Normalize(dst); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("got %v, want ErrDimensionMismatch", err)
	}
	for i, v := range dst {
		if v != 9 {
			t.Errorf("dst[%d] modified to %v", i, v)
		}
	}

	ok := make([]float32, 25)
	nf, err := f.Normalize(ok)
	if err != nil {
		t.Fatalf("Normalize with exact buffer failed: %v", err)
	}
	if &nf.Values()[0] != &ok[0] {
		t.Error("result does not alias the supplied buffer")
	}
}

func TestNormalizeClamped_InvalidRange(t *testing.T) {
	f := mustCompute(t, mustGrid(t, 5, 5, circle(2, 2, 1.5)))

	tests := []struct {
		name      string
		low, high float64
	}{
		{"equal", 1, 1},
		{"reversed", 2, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]float32, 25)
			for i := range dst {
				dst[i] = -1
			}
			nf, err := f.NormalizeClamped(tt.low, tt.high, dst)
			if !errors.Is(err, ErrInvalidRange) {
				t.Fatalf("got %v, want ErrInvalidRange", err)
			}
			if nf != nil {
				t.Error("returned a field alongside the error")
			}
			for i, v := range dst {
				if v != -1 {
					t.Fatalf("dst[%d] modified to %v", i, v)
				}
			}
		})
	}
}

func TestNormalizeClamped_Mapping(t *testing.T) {
	// Center is -0.5, its 4-neighbors 0.5 and the corners 2.5.
	f := mustCompute(t, mustGrid(t, 5, 5, func(x, y int) bool { return x == 2 && y == 2 }))

	tests := []struct {
		name      string
		low, high float64
		x, y      int
		want      float32
	}{
		{"at low", -0.5, 2.5, 2, 2, 0},
		{"below low", 0.5, 2.5, 2, 2, 0},
		{"at high", -0.5, 0.5, 3, 2, 1},
		{"above high", -0.5, 0.5, 0, 0, 1},
		{"midpoint", -0.5, 1.5, 3, 2, 0.5},
		{"midpoint of symmetric range", -1.5, 2.5, 3, 2, 0.5},
		{"quarter", -0.5, 3.5, 3, 2, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nf, err := f.NormalizeClamped(tt.low, tt.high, nil)
			if err != nil {
				t.Fatalf("NormalizeClamped failed: %v", err)
			}
			if got := nf.At(tt.x, tt.y); got != tt.want {
				t.Errorf("value %v in [%v, %v]: got %v, want %v", f.At(tt.x, tt.y), tt.low, tt.high, got, tt.want)
			}
		})
	}
}

func TestNormalizeClamped_DimensionMismatch(t *testing.T) {
	f := mustCompute(t, mustGrid(t, 4, 4, circle(2, 2, 1)))
	if _, err := f.NormalizeClamped(-1, 1, make([]float32, 17)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}
}

func TestNormalizedField_Gray8(t *testing.T) {
	nf := &NormalizedField{width: 2, height: 2, values: []float32{0, 0.5, 1, 0.25}}

	got, err := nf.Gray8(nil)
	if err != nil {
		t.Fatalf("Gray8 failed: %v", err)
	}
	want := []uint8{0, 128, 255, 64}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}

	short := []uint8{1, 2, 3}
	if _, err := nf.Gray8(short); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}
	if short[0] != 1 || short[1] != 2 || short[2] != 3 {
		t.Error("short buffer modified")
	}
}
