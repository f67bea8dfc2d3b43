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

// gfdlRules implements the legacy GFDL convention. It keeps the legacy
// code's divergences from the published conventions: the Polar zone is
// nested inside the Continental/Temperate boundary, the Arid
// temperature split keys off minimum temperature against the polar
// cutoff instead of annual temperature against 18°C, Steppe is a
// closed interval of the precipitation threshold, and the Continental
// warm-month count is strict (> 4 rather than >= 4).
type gfdlRules struct {
	baseRules
}

func (gfdlRules) major(s *derivedStats, d *categoryMasks) error {
	cutoff := conventionParams[GFDL].polarTminCutoff
	d.Arid = maskLTArr(s.PAnn, s.PThresh.ScaleCopy(10))
	notArid := Nor(d.Arid)
	d.Tropical = And(maskGT(s.TMin, 18), notArid)
	d.Temperate = And(maskLE(s.TMin, 18), maskGT(s.TMin, cutoff), notArid)
	d.Polar = And(maskLE(s.TMin, cutoff), maskLT(s.TMax, 10), notArid)
	d.Continental = And(maskLE(s.TMin, cutoff), maskGE(s.TMax, 10), notArid)
	return nil
}

func (gfdlRules) precipTropical(s *derivedStats, d *categoryMasks) error {
	monsoon := maskGEArr(s.PMin, monsoonCutoff(s.PAnn))
	notRainforest := maskLT(s.PMin, 60)
	d.TropicalMonsoon = And(notRainforest, monsoon)
	d.TropicalSavannaDryWinter = And(notRainforest, Nor(monsoon))
	d.TropicalSavannaDrySummer = Nor(s.allTrue) // category not used in this convention
	d.TropicalRainforest = Nor(notRainforest)
	return nil
}

// precipTemperate computes DryWinter first and excludes it from
// DrySummer, with a 30mm dry-summer bound instead of Kottek06's 40mm.
func (gfdlRules) precipTemperate(s *derivedStats, d *categoryMasks) error {
	d.TemperateDryWinter = maskGTArr(s.PSMax, s.PWMin.ScaleCopy(10))
	d.TemperateDrySummer = AndNot(d.TemperateDryWinter,
		maskGTArr(s.PWMax, s.PSMin.ScaleCopy(3)),
		maskLT(s.PSMin, 30),
	)
	d.TemperateWithoutDrySeason = Nor(d.TemperateDrySummer, d.TemperateDryWinter)
	return nil
}

func (gfdlRules) precipArid(s *derivedStats, d *categoryMasks) error {
	d.AridDesert = maskLTArr(s.PAnn, s.PThresh.ScaleCopy(5))
	d.AridSteppe = And(
		maskGEArr(s.PAnn, s.PThresh.ScaleCopy(5)),
		maskLEArr(s.PAnn, s.PThresh.ScaleCopy(10)),
	)
	return nil
}

// tempArid splits on minimum temperature against the polar cutoff; the
// other conventions use annual temperature against 18°C.
func (gfdlRules) tempArid(s *derivedStats, d *categoryMasks) error {
	cutoff := conventionParams[GFDL].polarTminCutoff
	d.AridHot = maskGT(s.TMin, cutoff)
	d.AridCold = maskLE(s.TMin, cutoff)
	return nil
}

func (gfdlRules) tempContinental(s *derivedStats, d *categoryMasks) error {
	d.ContinentalHotSummer = And(maskGT(s.NWarm, 4), maskGT(s.TMax, 22))
	d.ContinentalWarmSummer = And(maskGT(s.NWarm, 4), maskLE(s.TMax, 22))
	d.ContinentalVeryColdWinter = And(maskLE(s.NWarm, 4), maskLT(s.TMin, -38))
	d.ContinentalColdSummer = Nor(d.ContinentalHotSummer, d.ContinentalWarmSummer, d.ContinentalVeryColdWinter)
	return nil
}
