/*
Copyright © 2019 the Koppen authors.
This file is part of Koppen.

Koppen is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Koppen is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Koppen.  If not, see <http://www.gnu.org/licenses/>.
*/

package koppen

import (
	"fmt"

	"github.com/ctessum/sparse"
)

// Mask is a boolean grid with an arbitrary number of dimensions, laid
// out the same way as a sparse.DenseArray.
type Mask struct {
	Elements []bool
	Shape    []int
}

// NewMask initializes a new all-false mask.
func NewMask(dims ...int) *Mask {
	m := &Mask{Shape: dims}
	size := 1
	for _, d := range dims {
		size *= d
	}
	m.Elements = make([]bool, size)
	return m
}

// Index1d converts an n-dimensional index to a one-dimensional index.
func (m *Mask) Index1d(index ...int) int {
	if len(index) != len(m.Shape) {
		panic(fmt.Errorf("koppen: index number of dimensions (%d) does not match "+
			"mask number of dimensions (%d)", len(index), len(m.Shape)))
	}
	index1d := 0
	for i := 0; i < len(index); i++ {
		mul := 1
		for j := i + 1; j < len(index); j++ {
			mul *= m.Shape[j]
		}
		index1d += index[i] * mul
	}
	return index1d
}

// Get returns the mask value at index.
func (m *Mask) Get(index ...int) bool {
	return m.Elements[m.Index1d(index...)]
}

// Set sets the mask value at index.
func (m *Mask) Set(val bool, index ...int) {
	m.Elements[m.Index1d(index...)] = val
}

// Copy copies the mask.
func (m *Mask) Copy() *Mask {
	o := NewMask(m.Shape...)
	copy(o.Elements, m.Elements)
	return o
}

// checkMasks panics unless all of the given masks share one shape.
func checkMasks(masks []*Mask) {
	if len(masks) == 0 {
		panic(fmt.Errorf("koppen: no masks to combine"))
	}
	for _, m := range masks[1:] {
		if !shapeEqual(m.Shape, masks[0].Shape) {
			panic(fmt.Errorf("koppen: mask shape %v does not match %v", m.Shape, masks[0].Shape))
		}
	}
}

// And returns a mask that is true only where every condition is true.
func And(conditions ...*Mask) *Mask {
	checkMasks(conditions)
	o := NewMask(conditions[0].Shape...)
	for i := range o.Elements {
		v := true
		for _, c := range conditions {
			v = v && c.Elements[i]
		}
		o.Elements[i] = v
	}
	return o
}

// AndNot returns a mask that is true where every condition is true and
// excluding is false.
func AndNot(excluding *Mask, conditions ...*Mask) *Mask {
	checkMasks(append([]*Mask{excluding}, conditions...))
	o := NewMask(excluding.Shape...)
	for i := range o.Elements {
		v := !excluding.Elements[i]
		for _, c := range conditions {
			v = v && c.Elements[i]
		}
		o.Elements[i] = v
	}
	return o
}

// Nor returns a mask that is true where every condition is false.
func Nor(conditions ...*Mask) *Mask {
	checkMasks(conditions)
	o := NewMask(conditions[0].Shape...)
	for i := range o.Elements {
		v := true
		for _, c := range conditions {
			v = v && !c.Elements[i]
		}
		o.Elements[i] = v
	}
	return o
}

// The mask builders below turn elementwise comparisons into masks.
// Comparisons involving NaN are false, so missing cells propagate as
// "false" through the And/AndNot/Nor primitives rather than raising.

// maskGE returns a mask that is true where a >= val.
func maskGE(a *sparse.DenseArray, val float64) *Mask {
	o := NewMask(a.Shape...)
	for i, v := range a.Elements {
		o.Elements[i] = v >= val
	}
	return o
}

// maskGT returns a mask that is true where a > val.
func maskGT(a *sparse.DenseArray, val float64) *Mask {
	o := NewMask(a.Shape...)
	for i, v := range a.Elements {
		o.Elements[i] = v > val
	}
	return o
}

// maskLE returns a mask that is true where a <= val.
func maskLE(a *sparse.DenseArray, val float64) *Mask {
	o := NewMask(a.Shape...)
	for i, v := range a.Elements {
		o.Elements[i] = v <= val
	}
	return o
}

// maskLT returns a mask that is true where a < val.
func maskLT(a *sparse.DenseArray, val float64) *Mask {
	o := NewMask(a.Shape...)
	for i, v := range a.Elements {
		o.Elements[i] = v < val
	}
	return o
}

func checkArrays(a, b *sparse.DenseArray) {
	if !shapeEqual(a.Shape, b.Shape) {
		panic(fmt.Errorf("koppen: array shape %v does not match %v", a.Shape, b.Shape))
	}
}

// maskGEArr returns a mask that is true where a >= b.
func maskGEArr(a, b *sparse.DenseArray) *Mask {
	checkArrays(a, b)
	o := NewMask(a.Shape...)
	for i, v := range a.Elements {
		o.Elements[i] = v >= b.Elements[i]
	}
	return o
}

// maskGTArr returns a mask that is true where a > b.
func maskGTArr(a, b *sparse.DenseArray) *Mask {
	checkArrays(a, b)
	o := NewMask(a.Shape...)
	for i, v := range a.Elements {
		o.Elements[i] = v > b.Elements[i]
	}
	return o
}

// maskLEArr returns a mask that is true where a <= b.
func maskLEArr(a, b *sparse.DenseArray) *Mask {
	checkArrays(a, b)
	o := NewMask(a.Shape...)
	for i, v := range a.Elements {
		o.Elements[i] = v <= b.Elements[i]
	}
	return o
}

// maskLTArr returns a mask that is true where a < b.
func maskLTArr(a, b *sparse.DenseArray) *Mask {
	checkArrays(a, b)
	o := NewMask(a.Shape...)
	for i, v := range a.Elements {
		o.Elements[i] = v < b.Elements[i]
	}
	return o
}

func shapeEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
