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
	"gonum.org/v1/gonum/floats"
)

// derivedStats holds the per-cell statistics the classification rules
// are evaluated against. Every field shares the spatial shape of the
// input climatologies. A derivedStats is owned by a single
// classification run and recomputed for each run.
type derivedStats struct {
	PAnn *sparse.DenseArray // annual precipitation [mm]
	TAnn *sparse.DenseArray // annual mean temperature [°C]

	TMax  *sparse.DenseArray // warmest-month mean temperature [°C]
	TMin  *sparse.DenseArray // coldest-month mean temperature [°C]
	NWarm *sparse.DenseArray // number of months with mean temperature > 10°C

	PMin  *sparse.DenseArray // driest-month precipitation [mm]
	PSMin *sparse.DenseArray // driest summer month precipitation [mm]
	PWMin *sparse.DenseArray // driest winter month precipitation [mm]
	PSMax *sparse.DenseArray // wettest summer month precipitation [mm]
	PWMax *sparse.DenseArray // wettest winter month precipitation [mm]

	// PThresh is the precipitation threshold [mm], a function of annual
	// temperature and the seasonal concentration of precipitation.
	PThresh *sparse.DenseArray

	summerIsAprSep *Mask
	inputMask      *Mask
	allTrue        *Mask
	shape          []int
}

// newDerivedStats computes the statistics used for classification from
// temperature and precipitation climatologies. summerIsAprSep may be
// nil for conventions that do not require hemisphere information; those
// conventions take "summer" to be the six-month half with the higher
// mean temperature at each cell.
func newDerivedStats(tas, pr *Climatology, summerIsAprSep *Mask, p params) (*derivedStats, error) {
	if !shapeEqual(tas.spatialShape(), pr.spatialShape()) {
		return nil, &ShapeMismatchError{Context: "temperature climatology", Got: tas.spatialShape(), Want: pr.spatialShape()}
	}
	aprSep, err := halfYearMonths()
	if err != nil {
		return nil, err
	}

	shape := pr.spatialShape()
	if summerIsAprSep != nil && !shapeEqual(summerIsAprSep.Shape, shape) {
		return nil, &ShapeMismatchError{Context: "summer flag", Got: summerIsAprSep.Shape, Want: shape}
	}
	if !p.hemisphereSeasons {
		// Hemisphere-agnostic conventions always derive the summer
		// half from temperature.
		summerIsAprSep = maskGEArr(tas.AprSep, tas.OctMar)
	} else if summerIsAprSep == nil {
		return nil, &ConfigurationError{Message: "need to provide N/S hemisphere information for this convention"}
	}

	s := &derivedStats{
		PAnn:           pr.Annual,
		TAnn:           tas.Annual,
		TMax:           sparse.ZerosDense(shape...),
		TMin:           sparse.ZerosDense(shape...),
		NWarm:          sparse.ZerosDense(shape...),
		PMin:           sparse.ZerosDense(shape...),
		PSMin:          sparse.ZerosDense(shape...),
		PWMin:          sparse.ZerosDense(shape...),
		PSMax:          sparse.ZerosDense(shape...),
		PWMax:          sparse.ZerosDense(shape...),
		summerIsAprSep: summerIsAprSep,
		shape:          shape,
	}

	size := len(pr.Annual.Elements)
	tMonths := make([]float64, 12)
	pMonths := make([]float64, 12)
	pHalf := make([]float64, 6)
	for i := 0; i < size; i++ {
		for m := 0; m < 12; m++ {
			tMonths[m] = tas.Monthly.Elements[m*size+i]
			pMonths[m] = pr.Monthly.Elements[m*size+i]
		}

		// floats.Max and floats.Min skip NaN entries, matching masked
		// reduction over the month axis.
		s.TMax.Elements[i] = floats.Max(tMonths)
		s.TMin.Elements[i] = floats.Min(tMonths)
		s.PMin.Elements[i] = floats.Min(pMonths)

		nWarm := 0
		for _, v := range tMonths {
			if v > 10 {
				nWarm++
			}
		}
		s.NWarm.Elements[i] = float64(nWarm)

		pASMin, pASMax := halfMinMax(pMonths, aprSep, true, pHalf)
		pOMMin, pOMMax := halfMinMax(pMonths, aprSep, false, pHalf)
		if summerIsAprSep.Elements[i] {
			s.PSMin.Elements[i], s.PSMax.Elements[i] = pASMin, pASMax
			s.PWMin.Elements[i], s.PWMax.Elements[i] = pOMMin, pOMMax
		} else {
			s.PSMin.Elements[i], s.PSMax.Elements[i] = pOMMin, pOMMax
			s.PWMin.Elements[i], s.PWMax.Elements[i] = pASMin, pASMax
		}
	}

	s.PThresh = pThresh(tas, pr, summerIsAprSep, p.pThreshCutoff)

	s.inputMask = NewMask(shape...)
	tasMissing := tas.missing()
	prMissing := pr.missing()
	for i := range s.inputMask.Elements {
		s.inputMask.Elements[i] = tasMissing.Elements[i] || prMissing.Elements[i]
	}

	s.allTrue = NewMask(shape...)
	for i := range s.allTrue.Elements {
		s.allTrue.Elements[i] = true
	}
	return s, nil
}

// pThresh computes the precipitation threshold. The default value is
// 2*T_ann + 14; it becomes 2*T_ann + 28 where summer precipitation
// reaches the cutoff fraction of the annual total and 2*T_ann where
// winter precipitation does. The winter rule is evaluated second and
// takes precedence on cells satisfying both.
func pThresh(tas, pr *Climatology, summerIsAprSep *Mask, cutoff float64) *sparse.DenseArray {
	out := sparse.ZerosDense(pr.Annual.Shape...)
	for i := range out.Elements {
		pSummer, pWinter := pr.AprSep.Elements[i], pr.OctMar.Elements[i]
		if !summerIsAprSep.Elements[i] {
			pSummer, pWinter = pWinter, pSummer
		}
		tAnn, pAnn := tas.Annual.Elements[i], pr.Annual.Elements[i]
		v := 2*tAnn + 14
		if pSummer >= cutoff*pAnn {
			v = 2*tAnn + 28
		}
		if pWinter >= cutoff*pAnn {
			v = 2 * tAnn
		}
		out.Elements[i] = v
	}
	return out
}

// halfYearMonths returns which months (January == 0) belong to the
// April–September half year. The calendar partition is fixed; the
// complementary half is October–March.
func halfYearMonths() ([]bool, error) {
	aprSep := make([]bool, 12)
	n := 0
	for m := 1; m <= 12; m++ {
		if m >= 4 && m <= 9 {
			aprSep[m-1] = true
			n++
		}
	}
	if n != 6 || len(aprSep)-n != 6 {
		return nil, fmt.Errorf("koppen: calendar halves must hold 6 months each; got %d and %d", n, len(aprSep)-n)
	}
	return aprSep, nil
}

// halfMinMax returns the minimum and maximum over the months selected
// (aprSep half if wantAprSep, otherwise the October–March half),
// using scratch as scratch space.
func halfMinMax(months []float64, aprSep []bool, wantAprSep bool, scratch []float64) (min, max float64) {
	scratch = scratch[:0]
	for m, v := range months {
		if aprSep[m] == wantAprSep {
			scratch = append(scratch, v)
		}
	}
	return floats.Min(scratch), floats.Max(scratch)
}
