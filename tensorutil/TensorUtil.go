// Package tensorutil provides the fixed-shape numeric tensors exchanged
// with agents, together with the specs that describe them.
//
// Tensors are gorgonia dense tensors of dtype int32 or uint8. A Spec
// pairs a tensor's name and shape with the inclusive bounds of the
// values it may hold. Observations and actions are maps from field name
// to tensor, described field by field by a map of specs.
package tensorutil

import (
	"fmt"
	"math"

	"gorgonia.org/tensor"
)

// Tensors is a named collection of dense tensors, the unit of exchange
// for both observations and actions.
type Tensors map[string]*tensor.Dense

// Specs describes a Tensors value field by field.
type Specs map[string]Spec

// Spec describes a single named tensor: its dtype, its shape, and the
// inclusive range of values it may hold. A rank-2 spec may bound each
// column separately through ColMax, which then overrides Max.
type Spec struct {
	Name   string
	Dtype  tensor.Dtype
	Shape  []int
	Min    int32
	Max    int32
	ColMax []int32
}

// Int32ScalarSpec describes a length-1 int32 tensor holding one of n
// values, 0 through n-1.
func Int32ScalarSpec(name string, n int32) Spec {
	return Spec{Name: name, Dtype: tensor.Int32, Shape: []int{1}, Min: 0, Max: n - 1}
}

// Int32Spec describes an int32 tensor with values in [0, max].
func Int32Spec(name string, max int32, shape ...int) Spec {
	return Spec{Name: name, Dtype: tensor.Int32, Shape: shape, Min: 0, Max: max}
}

// RangedInt32Spec describes an int32 tensor with values in [min, max].
func RangedInt32Spec(name string, min, max int32, shape ...int) Spec {
	return Spec{Name: name, Dtype: tensor.Int32, Shape: shape, Min: min, Max: max}
}

// Uint8Spec describes a uint8 tensor with values in [0, max].
func Uint8Spec(name string, max int32, shape ...int) Spec {
	return Spec{Name: name, Dtype: tensor.Uint8, Shape: shape, Min: 0, Max: max}
}

// Make returns a zero-valued tensor matching the spec.
func (s Spec) Make() *tensor.Dense {
	return tensor.New(tensor.Of(s.Dtype), tensor.WithShape(s.Shape...))
}

// NumElements returns the total element count of the spec's shape.
func (s Spec) NumElements() int {
	n := 1
	for _, d := range s.Shape {
		n *= d
	}
	return n
}

// Check validates that t has the spec's dtype and shape, and for int32
// tensors that every element lies within the spec's bounds.
func (s Spec) Check(t *tensor.Dense) error {
	if t.Dtype() != s.Dtype {
		return fmt.Errorf("%v: dtype %v, want %v", s.Name, t.Dtype(), s.Dtype)
	}
	if !t.Shape().Eq(tensor.Shape(s.Shape)) {
		return fmt.Errorf("%v: shape %v, want %v", s.Name, t.Shape(), s.Shape)
	}
	if s.Dtype == tensor.Int32 {
		for i, v := range Int32s(t) {
			max := s.Max
			if s.ColMax != nil {
				max = s.ColMax[i%len(s.ColMax)]
			}
			if v < s.Min || v > max {
				return fmt.Errorf("%v: element %d is %d, outside [%d, %d]",
					s.Name, i, v, s.Min, max)
			}
		}
	}
	return nil
}

// Scalar returns a length-1 int32 tensor holding v.
func Scalar(v int32) *tensor.Dense {
	return tensor.New(tensor.WithShape(1), tensor.WithBacking([]int32{v}))
}

// Vector wraps vals in a one dimensional int32 tensor. The tensor
// shares vals' backing array.
func Vector(vals []int32) *tensor.Dense {
	return tensor.New(tensor.WithShape(len(vals)), tensor.WithBacking(vals))
}

// ZeroVector returns an n-element int32 tensor of zeros.
func ZeroVector(n int) *tensor.Dense {
	return tensor.New(tensor.Of(tensor.Int32), tensor.WithShape(n))
}

// ZeroMatrix returns a rows x cols int32 tensor of zeros.
func ZeroMatrix(rows, cols int) *tensor.Dense {
	return tensor.New(tensor.Of(tensor.Int32), tensor.WithShape(rows, cols))
}

// Uint8Matrix wraps vals in a rows x cols uint8 tensor.
func Uint8Matrix(vals []uint8, rows, cols int) *tensor.Dense {
	return tensor.New(tensor.WithShape(rows, cols), tensor.WithBacking(vals))
}

// ScalarValue extracts the single element of a length-1 int32 tensor.
func ScalarValue(t *tensor.Dense) int32 {
	data := Int32s(t)
	if len(data) != 1 {
		panic(fmt.Sprintf("scalar tensor has %d elements", len(data)))
	}
	return data[0]
}

// Int32s returns the backing slice of an int32 tensor. Mutations write
// through to the tensor.
func Int32s(t *tensor.Dense) []int32 {
	return t.Data().([]int32)
}

// Uint8s returns the backing slice of a uint8 tensor. Mutations write
// through to the tensor.
func Uint8s(t *tensor.Dense) []uint8 {
	return t.Data().([]uint8)
}

// Row returns a mutable view of row i of a two dimensional int32 tensor.
func Row(t *tensor.Dense, i int) []int32 {
	cols := t.Shape()[1]
	return Int32s(t)[i*cols : (i+1)*cols]
}

// ToInt32 truncates v toward zero with x86 conversion semantics: values
// whose truncation falls outside the int32 range, NaN and the infinities
// all map to math.MinInt32.
func ToInt32(v float64) int32 {
	t := math.Trunc(v)
	if math.IsNaN(t) || t < math.MinInt32 || t > math.MaxInt32 {
		return math.MinInt32
	}
	return int32(t)
}
