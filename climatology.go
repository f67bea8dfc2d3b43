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
	"math"

	"github.com/ctessum/sparse"
)

// Climatology holds long-term averaged values of one physical variable
// on a spatial grid: twelve monthly grids, an annual aggregate, and
// aggregates over the two fixed six-month halves of the calendar year
// (April–September and October–March). For temperature the aggregates
// are means; for precipitation they are totals.
//
// Missing or invalid cells are marked NaN. A Climatology is constructed
// once by the data-loading collaborator and treated as immutable by the
// classification engine.
type Climatology struct {
	// Monthly has shape [12, spatial...], with January at month index 0.
	Monthly *sparse.DenseArray

	// Annual, AprSep, and OctMar have the spatial shape.
	Annual *sparse.DenseArray
	AprSep *sparse.DenseArray
	OctMar *sparse.DenseArray
}

// NewClimatology creates a Climatology from the given grids after
// validating that monthly has exactly 12 entries along its leading time
// axis and that the aggregate grids share the monthly grids' spatial
// shape.
func NewClimatology(monthly, annual, aprSep, octMar *sparse.DenseArray) (*Climatology, error) {
	if monthly == nil || annual == nil || aprSep == nil || octMar == nil {
		return nil, fmt.Errorf("koppen: climatology grids must not be nil")
	}
	if len(monthly.Shape) < 2 {
		return nil, fmt.Errorf("koppen: monthly climatology must have a leading month axis "+
			"and at least one spatial axis; got shape %v", monthly.Shape)
	}
	if monthly.Shape[0] != 12 {
		return nil, fmt.Errorf("koppen: monthly climatology must have 12 months; got %d", monthly.Shape[0])
	}
	spatial := monthly.Shape[1:]
	for _, g := range []struct {
		name string
		arr  *sparse.DenseArray
	}{{"annual", annual}, {"apr_sep", aprSep}, {"oct_mar", octMar}} {
		if !shapeEqual(g.arr.Shape, spatial) {
			return nil, &ShapeMismatchError{Context: g.name + " climatology", Got: g.arr.Shape, Want: spatial}
		}
	}
	return &Climatology{Monthly: monthly, Annual: annual, AprSep: aprSep, OctMar: octMar}, nil
}

// spatialShape returns the shape of the spatial axes.
func (c *Climatology) spatialShape() []int {
	return c.Annual.Shape
}

// missing returns a mask that is true where the annual grid holds
// missing data.
func (c *Climatology) missing() *Mask {
	m := NewMask(c.Annual.Shape...)
	for i, v := range c.Annual.Elements {
		m.Elements[i] = math.IsNaN(v)
	}
	return m
}
