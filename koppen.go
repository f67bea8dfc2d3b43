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

// Package koppen classifies gridded climate data into Köppen-Geiger
// climate zones from monthly temperature and precipitation
// climatologies. Three published conventions are supported, which share
// a common decision structure (major climate zone, then precipitation
// sub-type, then temperature sub-type) but differ in their numeric
// thresholds and rule composition.
//
// The engine is a pure function of its inputs: each call to Classify
// allocates its own intermediate state and returns a new output grid,
// so independent grids can be classified concurrently without
// synchronization.
package koppen

import "fmt"

// Version gives the version number of this package.
const Version = "0.3.0"

// Convention selects one of the supported Köppen classification
// conventions.
type Convention int

const (
	// Kottek06 is the convention of Kottek et al., "World Map of the
	// Köppen-Geiger climate classification updated", Meteorologische
	// Zeitschrift 15 (3): 259–263 (2006);
	// https://doi.org/10.1127/0941-2948/2006/0130.
	Kottek06 Convention = iota

	// Peel07 is the convention of Peel, Finlayson & McMahon, "Updated
	// world map of the Köppen-Geiger climate classification", Hydrol.
	// Earth Syst. Sci. 11 (5): 1633–1644 (2007);
	// https://doi.org/10.5194/hess-11-1633-2007. This is also the
	// convention of Beck et al., Scientific Data 5: 180214 (2018).
	Peel07

	// GFDL is the convention defined in previous diagnostic code. It
	// keeps that code's divergences from the published conventions,
	// including the Arid temperature split on minimum temperature and
	// the strict warm-month count.
	GFDL
)

func (c Convention) String() string {
	switch c {
	case Kottek06:
		return "kottek06"
	case Peel07:
		return "peel07"
	case GFDL:
		return "gfdl"
	default:
		return fmt.Sprintf("Convention(%d)", int(c))
	}
}

// ParseConvention returns the Convention named by s.
func ParseConvention(s string) (Convention, error) {
	switch s {
	case "kottek06":
		return Kottek06, nil
	case "peel07":
		return Peel07, nil
	case "gfdl":
		return GFDL, nil
	default:
		return -1, fmt.Errorf("koppen: unknown convention %q (want kottek06, peel07, or gfdl)", s)
	}
}

// params holds the per-convention constants.
type params struct {
	// polarTminCutoff is the minimum-temperature boundary [°C] between
	// the Temperate and Continental major zones.
	polarTminCutoff float64

	// pThreshCutoff is the fraction of annual precipitation beyond
	// which precipitation counts as concentrated in one season when
	// computing the precipitation threshold.
	pThreshCutoff float64

	// hemisphereSeasons reports whether the convention requires
	// hemisphere information to assign summer and winter.
	hemisphereSeasons bool
}

var conventionParams = map[Convention]params{
	Kottek06: {polarTminCutoff: -3, pThreshCutoff: 2.0 / 3.0, hemisphereSeasons: true},
	Peel07:   {polarTminCutoff: 0, pThreshCutoff: 0.7, hemisphereSeasons: false},
	GFDL:     {polarTminCutoff: -3, pThreshCutoff: 0.7, hemisphereSeasons: true},
}

func (c Convention) params() (params, error) {
	p, ok := conventionParams[c]
	if !ok {
		return params{}, fmt.Errorf("koppen: unknown convention %d", int(c))
	}
	return p, nil
}

func (c Convention) rules() (conventionRules, error) {
	switch c {
	case Kottek06:
		return kottek06Rules{}, nil
	case Peel07:
		return peel07Rules{}, nil
	case GFDL:
		return gfdlRules{}, nil
	default:
		return nil, fmt.Errorf("koppen: unknown convention %d", int(c))
	}
}
