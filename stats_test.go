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
	"errors"
	"math"
	"testing"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats/scalar"
)

// seasonal returns twelve monthly values: aprSep for April–September
// and octMar for the other months.
func seasonal(aprSep, octMar float64) []float64 {
	out := months12(octMar)
	for m := 3; m <= 8; m++ {
		out[m] = aprSep
	}
	return out
}

func TestDerivedStats(t *testing.T) {
	tas := testClimatology(t, [][]float64{
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	}, false)
	pr := testClimatology(t, [][]float64{
		{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120},
	}, true)

	p, err := Kottek06.params()
	if err != nil {
		t.Fatal(err)
	}
	s, err := newDerivedStats(tas, pr, allAprSep(1), p)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		arr  *sparse.DenseArray
		want float64
	}{
		{"TMax", s.TMax, 12},
		{"TMin", s.TMin, 1},
		{"NWarm", s.NWarm, 2},
		{"PAnn", s.PAnn, 780},
		{"PMin", s.PMin, 10},
		{"PSMin", s.PSMin, 40},
		{"PSMax", s.PSMax, 90},
		{"PWMin", s.PWMin, 10},
		{"PWMax", s.PWMax, 120},
	}
	for _, test := range tests {
		if got := test.arr.Elements[0]; got != test.want {
			t.Errorf("%s = %g; want %g", test.name, got, test.want)
		}
	}
	if got := s.TAnn.Elements[0]; !scalar.EqualWithinAbs(got, 6.5, 1e-12) {
		t.Errorf("TAnn = %g; want 6.5", got)
	}
	// P_thresh = 2*T_ann + 14 with evenly split precipitation.
	if got := s.PThresh.Elements[0]; !scalar.EqualWithinAbs(got, 27, 1e-12) {
		t.Errorf("PThresh = %g; want 27", got)
	}
}

// A southern-hemisphere cell swaps which calendar half supplies the
// summer statistics.
func TestDerivedStatsSouthernHemisphere(t *testing.T) {
	tas := testClimatology(t, [][]float64{seasonal(5, 20)}, false)
	pr := testClimatology(t, [][]float64{
		{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120},
	}, true)

	p, err := GFDL.params()
	if err != nil {
		t.Fatal(err)
	}
	flag := NewMask(1) // summer is October–March
	s, err := newDerivedStats(tas, pr, flag, p)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.PSMin.Elements[0]; got != 10 {
		t.Errorf("PSMin = %g; want 10", got)
	}
	if got := s.PSMax.Elements[0]; got != 120 {
		t.Errorf("PSMax = %g; want 120", got)
	}
	if got := s.PWMin.Elements[0]; got != 40 {
		t.Errorf("PWMin = %g; want 40", got)
	}
	if got := s.PWMax.Elements[0]; got != 90 {
		t.Errorf("PWMax = %g; want 90", got)
	}
}

// Hemisphere-agnostic conventions take summer to be the warmer
// half-year at each cell, even when a flag grid is supplied.
func TestDerivedStatsSummerFromTemperature(t *testing.T) {
	tas := testClimatology(t, [][]float64{
		seasonal(20, 0), // northern: April–September is warmer
		seasonal(0, 20), // southern: October–March is warmer
	}, false)
	pr := testClimatology(t, [][]float64{
		seasonal(100, 10),
		seasonal(100, 10),
	}, true)

	p, err := Peel07.params()
	if err != nil {
		t.Fatal(err)
	}
	s, err := newDerivedStats(tas, pr, nil, p)
	if err != nil {
		t.Fatal(err)
	}
	if !s.summerIsAprSep.Elements[0] || s.summerIsAprSep.Elements[1] {
		t.Errorf("summerIsAprSep = %v; want [true false]", s.summerIsAprSep.Elements)
	}
	if got := s.PSMin.Elements[0]; got != 100 {
		t.Errorf("cell 0: PSMin = %g; want 100", got)
	}
	if got := s.PSMin.Elements[1]; got != 10 {
		t.Errorf("cell 1: PSMin = %g; want 10", got)
	}
}

func TestDerivedStatsHemisphereRequired(t *testing.T) {
	tas := testClimatology(t, [][]float64{months12(10)}, false)
	pr := testClimatology(t, [][]float64{months12(50)}, true)

	for _, conv := range []Convention{Kottek06, GFDL} {
		p, err := conv.params()
		if err != nil {
			t.Fatal(err)
		}
		var cfgErr *ConfigurationError
		if _, err := newDerivedStats(tas, pr, nil, p); !errors.As(err, &cfgErr) {
			t.Errorf("%v: expected a ConfigurationError without a summer flag; got %v", conv, err)
		}
	}
}

func TestDerivedStatsShapeChecks(t *testing.T) {
	tas := testClimatology(t, [][]float64{months12(10), months12(10)}, false)
	pr := testClimatology(t, [][]float64{months12(50), months12(50)}, true)
	prSmall := testClimatology(t, [][]float64{months12(50)}, true)

	p, err := Kottek06.params()
	if err != nil {
		t.Fatal(err)
	}
	var shapeErr *ShapeMismatchError
	if _, err := newDerivedStats(tas, prSmall, allAprSep(2), p); !errors.As(err, &shapeErr) {
		t.Errorf("expected a ShapeMismatchError for mismatched climatologies; got %v", err)
	}
	if _, err := newDerivedStats(tas, pr, allAprSep(3), p); !errors.As(err, &shapeErr) {
		t.Errorf("expected a ShapeMismatchError for a mismatched summer flag; got %v", err)
	}
}

func TestPrecipThreshold(t *testing.T) {
	clim := func(annual, aprSep, octMar float64) *Climatology {
		c := &Climatology{
			Annual: sparse.ZerosDense(1),
			AprSep: sparse.ZerosDense(1),
			OctMar: sparse.ZerosDense(1),
		}
		c.Annual.Elements[0] = annual
		c.AprSep.Elements[0] = aprSep
		c.OctMar.Elements[0] = octMar
		return c
	}
	tas := clim(10, 0, 0)

	tests := []struct {
		name           string
		pr             *Climatology
		summerIsAprSep bool
		cutoff         float64
		want           float64
	}{
		{"even", clim(100, 50, 50), true, 0.7, 34},
		{"summerWet", clim(100, 80, 20), true, 0.7, 48},
		{"winterWet", clim(100, 20, 80), true, 0.7, 20},
		// Summer is October–March here, so the wet half is winter.
		{"summerWetSouthern", clim(100, 80, 20), false, 0.7, 20},
		// Both rules hold at once; the winter rule takes precedence.
		{"bothSeasonsWet", clim(100, 50, 50), true, 0.4, 20},
	}
	for _, test := range tests {
		flag := NewMask(1)
		flag.Elements[0] = test.summerIsAprSep
		got := pThresh(tas, test.pr, flag, test.cutoff).Elements[0]
		if got != test.want {
			t.Errorf("%s: pThresh = %g; want %g", test.name, got, test.want)
		}
	}
}

func TestDerivedStatsMissingCell(t *testing.T) {
	nan := math.NaN()
	tas := testClimatology(t, [][]float64{months12(10), months12(nan)}, false)
	pr := testClimatology(t, [][]float64{months12(50), months12(50)}, true)

	p, err := Kottek06.params()
	if err != nil {
		t.Fatal(err)
	}
	s, err := newDerivedStats(tas, pr, allAprSep(2), p)
	if err != nil {
		t.Fatal(err)
	}
	if s.inputMask.Elements[0] {
		t.Error("cell 0 has complete data but is masked")
	}
	if !s.inputMask.Elements[1] {
		t.Error("cell 1 has missing temperature data but is not masked")
	}
	if !math.IsNaN(s.TMax.Elements[1]) {
		t.Errorf("TMax over all-missing months = %g; want NaN", s.TMax.Elements[1])
	}
}
