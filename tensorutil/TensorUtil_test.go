package tensorutil

import (
	"math"
	"testing"

	"gorgonia.org/tensor"
)

func TestToInt32(t *testing.T) {
	cases := []struct {
		in   float64
		want int32
	}{
		{0, 0},
		{1.9, 1},
		{-1.9, -1},
		{2147483647.0, 2147483647},
		{2147483647.7, 2147483647},
		{2147483648.0, math.MinInt32},
		{-2147483648.0, -2147483648},
		{-2147483648.9, -2147483648},
		{-2147483649.0, math.MinInt32},
		{math.NaN(), math.MinInt32},
		{math.Inf(1), math.MinInt32},
		{math.Inf(-1), math.MinInt32},
	}
	for _, c := range cases {
		if got := ToInt32(c.in); got != c.want {
			t.Errorf("ToInt32(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestInt32ScalarSpec(t *testing.T) {
	s := Int32ScalarSpec("function", 540)
	if s.Min != 0 || s.Max != 539 {
		t.Errorf("bounds [%d, %d], want [0, 539]", s.Min, s.Max)
	}
	if len(s.Shape) != 1 || s.Shape[0] != 1 {
		t.Errorf("shape %v, want [1]", s.Shape)
	}
	if err := s.Check(Scalar(539)); err != nil {
		t.Errorf("Check(539): %v", err)
	}
	if err := s.Check(Scalar(540)); err == nil {
		t.Error("Check(540) passed, want out of bounds error")
	}
}

func TestSpecMake(t *testing.T) {
	s := Uint8Spec("minimap_height_map", 255, 64, 64)
	made := s.Make()
	if made.Dtype() != tensor.Uint8 {
		t.Errorf("dtype %v, want uint8", made.Dtype())
	}
	if err := s.Check(made); err != nil {
		t.Errorf("Check(Make()): %v", err)
	}
	if n := s.NumElements(); n != 64*64 {
		t.Errorf("NumElements() = %d, want %d", n, 64*64)
	}
}

func TestRowIsMutableView(t *testing.T) {
	m := ZeroMatrix(3, 4)
	Row(m, 1)[2] = 7
	if got := Int32s(m)[1*4+2]; got != 7 {
		t.Errorf("backing element = %d, want 7", got)
	}
}

func TestScalarValue(t *testing.T) {
	if v := ScalarValue(Scalar(-3)); v != -3 {
		t.Errorf("ScalarValue = %d, want -3", v)
	}
}

func TestVectorSharesBacking(t *testing.T) {
	backing := []int32{1, 2, 3}
	v := Vector(backing)
	backing[0] = 9
	if got := Int32s(v)[0]; got != 9 {
		t.Errorf("element 0 = %d, want 9", got)
	}
}
