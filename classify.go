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

import "fmt"

// ClassGrid is the classification output: an integer grid with the
// spatial shape of the inputs. Each cell holds the class code of
// exactly one (major, precipitation subtype, temperature subtype)
// triple, or 0 where the input data is masked or invalid.
type ClassGrid struct {
	Elements []uint8
	Shape    []int
}

func newClassGrid(dims ...int) *ClassGrid {
	g := &ClassGrid{Shape: dims}
	size := 1
	for _, d := range dims {
		size *= d
	}
	g.Elements = make([]uint8, size)
	return g
}

// Index1d converts an n-dimensional index to a one-dimensional index.
func (g *ClassGrid) Index1d(index ...int) int {
	if len(index) != len(g.Shape) {
		panic(fmt.Errorf("koppen: index number of dimensions (%d) does not match "+
			"grid number of dimensions (%d)", len(index), len(g.Shape)))
	}
	index1d := 0
	for i := 0; i < len(index); i++ {
		mul := 1
		for j := i + 1; j < len(index); j++ {
			mul *= g.Shape[j]
		}
		index1d += index[i] * mul
	}
	return index1d
}

// Get returns the class code at index.
func (g *ClassGrid) Get(index ...int) uint8 {
	return g.Elements[g.Index1d(index...)]
}

// categoryMasks accumulates the per-category boolean grids computed by
// the predicate stages, one named field per category. Unused categories
// (for example Tropical SavannaDrySummer under Peel07) hold explicit
// all-false masks rather than nil.
type categoryMasks struct {
	// major zones
	Tropical    *Mask
	Arid        *Mask
	Temperate   *Mask
	Continental *Mask
	Polar       *Mask

	// precipitation subtypes
	TropicalRainforest          *Mask
	TropicalMonsoon             *Mask
	TropicalSavannaDryWinter    *Mask
	TropicalSavannaDrySummer    *Mask
	AridDesert                  *Mask
	AridSteppe                  *Mask
	TemperateDrySummer          *Mask
	TemperateDryWinter          *Mask
	TemperateWithoutDrySeason   *Mask
	ContinentalDrySummer        *Mask
	ContinentalDryWinter        *Mask
	ContinentalWithoutDrySeason *Mask
	PolarNone                   *Mask

	// temperature subtypes
	TropicalNone              *Mask
	AridHot                   *Mask
	AridCold                  *Mask
	TemperateHotSummer        *Mask
	TemperateWarmSummer       *Mask
	TemperateColdSummer       *Mask
	ContinentalHotSummer      *Mask
	ContinentalWarmSummer     *Mask
	ContinentalColdSummer     *Mask
	ContinentalVeryColdWinter *Mask
	PolarTundra               *Mask
	PolarEternalFrost         *Mask
}

// byName returns the category mask for a taxonomy category name such as
// "Tropical" or "ContinentalColdSummer".
func (d *categoryMasks) byName(name string) *Mask {
	switch name {
	case "Tropical":
		return d.Tropical
	case "Arid":
		return d.Arid
	case "Temperate":
		return d.Temperate
	case "Continental":
		return d.Continental
	case "Polar":
		return d.Polar
	case "TropicalRainforest":
		return d.TropicalRainforest
	case "TropicalMonsoon":
		return d.TropicalMonsoon
	case "TropicalSavannaDryWinter":
		return d.TropicalSavannaDryWinter
	case "TropicalSavannaDrySummer":
		return d.TropicalSavannaDrySummer
	case "TropicalNone":
		return d.TropicalNone
	case "AridDesert":
		return d.AridDesert
	case "AridSteppe":
		return d.AridSteppe
	case "AridHot":
		return d.AridHot
	case "AridCold":
		return d.AridCold
	case "TemperateDrySummer":
		return d.TemperateDrySummer
	case "TemperateDryWinter":
		return d.TemperateDryWinter
	case "TemperateWithoutDrySeason":
		return d.TemperateWithoutDrySeason
	case "TemperateHotSummer":
		return d.TemperateHotSummer
	case "TemperateWarmSummer":
		return d.TemperateWarmSummer
	case "TemperateColdSummer":
		return d.TemperateColdSummer
	case "ContinentalDrySummer":
		return d.ContinentalDrySummer
	case "ContinentalDryWinter":
		return d.ContinentalDryWinter
	case "ContinentalWithoutDrySeason":
		return d.ContinentalWithoutDrySeason
	case "ContinentalHotSummer":
		return d.ContinentalHotSummer
	case "ContinentalWarmSummer":
		return d.ContinentalWarmSummer
	case "ContinentalColdSummer":
		return d.ContinentalColdSummer
	case "ContinentalVeryColdWinter":
		return d.ContinentalVeryColdWinter
	case "PolarNone":
		return d.PolarNone
	case "PolarTundra":
		return d.PolarTundra
	case "PolarEternalFrost":
		return d.PolarEternalFrost
	default:
		panic(fmt.Errorf("koppen: unknown category %q", name))
	}
}

// evalCategories computes the derived statistics and the per-category
// masks for one convention.
func evalCategories(conv Convention, tas, pr *Climatology, summerIsAprSep *Mask) (*derivedStats, *categoryMasks, error) {
	p, err := conv.params()
	if err != nil {
		return nil, nil, err
	}
	rules, err := conv.rules()
	if err != nil {
		return nil, nil, err
	}

	s, err := newDerivedStats(tas, pr, summerIsAprSep, p)
	if err != nil {
		return nil, nil, err
	}

	// The Continental precipitation and Temperate temperature stages
	// alias masks computed by the Temperate precipitation and
	// Continental temperature stages, so they run last.
	d := new(categoryMasks)
	stages := []func(*derivedStats, *categoryMasks) error{
		rules.major,
		rules.precipTropical,
		rules.precipArid,
		rules.precipTemperate,
		rules.precipPolar,
		rules.tempTropical,
		rules.tempArid,
		rules.tempContinental,
		rules.tempPolar,
		rules.precipContinental,
		rules.tempTemperate,
	}
	for _, stage := range stages {
		if err := stage(s, d); err != nil {
			return nil, nil, err
		}
	}
	return s, d, nil
}

// Classify classifies the given temperature and precipitation
// climatologies into Köppen-Geiger climate zones under the given
// convention.
//
// summerIsAprSep, if non-nil, marks the cells where "summer" means
// April–September (otherwise summer is October–March); its shape must
// match the spatial shape of the climatologies. It is required for
// hemisphere-aware conventions (Kottek06, GFDL), which cannot safely
// infer summer and winter from temperature alone in both hemispheres.
// Hemisphere-agnostic conventions (Peel07) derive the summer half as
// the one with the higher mean temperature at each cell.
//
// The returned grid holds, at each cell, the class code of exactly one
// taxonomy triple, or 0 where either input is masked.
func Classify(conv Convention, tas, pr *Climatology, summerIsAprSep *Mask) (*ClassGrid, error) {
	s, d, err := evalCategories(conv, tas, pr, summerIsAprSep)
	if err != nil {
		return nil, err
	}

	// Stamp class codes in taxonomy order. The per-axis masks should
	// partition each reachable cell, so the triples should never
	// overlap; if they do, the last-assigned triple wins.
	out := newClassGrid(s.shape...)
	for _, lt := range taxonomy {
		m := And(d.byName(lt.Major), d.byName(lt.Major+lt.Precip), d.byName(lt.Major+lt.Temp))
		code := classCodes[lt.Code]
		for i, ok := range m.Elements {
			if ok {
				out.Elements[i] = code
			}
		}
	}

	// Masked input overrides any class assignment.
	for i, masked := range s.inputMask.Elements {
		if masked {
			out.Elements[i] = 0
		}
	}
	return out, nil
}
