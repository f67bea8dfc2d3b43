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

// peel07Rules implements the Peel07 convention. The major zones are
// tested independently rather than nested by exclusion; the conditions
// are mutually exclusive by construction.
type peel07Rules struct {
	baseRules
}

func (peel07Rules) major(s *derivedStats, d *categoryMasks) error {
	cutoff := conventionParams[Peel07].polarTminCutoff
	d.Arid = maskLTArr(s.PAnn, s.PThresh.ScaleCopy(10))
	notArid := Nor(d.Arid)
	d.Tropical = And(maskGE(s.TMin, 18), notArid)
	d.Temperate = And(maskGT(s.TMax, 10), maskLT(s.TMin, 18), maskGE(s.TMin, cutoff), notArid)
	d.Continental = And(maskGT(s.TMax, 10), maskLT(s.TMin, cutoff), notArid)
	d.Polar = And(maskLE(s.TMax, 10), notArid)
	return nil
}

// precipTropical gives Rainforest priority over Monsoon, the reverse
// of Kottek06.
func (peel07Rules) precipTropical(s *derivedStats, d *categoryMasks) error {
	d.TropicalRainforest = maskGE(s.PMin, 60)
	monsoon := maskGEArr(s.PMin, monsoonCutoff(s.PAnn))
	d.TropicalMonsoon = AndNot(d.TropicalRainforest, monsoon)
	d.TropicalSavannaDryWinter = AndNot(d.TropicalRainforest, Nor(monsoon))
	d.TropicalSavannaDrySummer = Nor(s.allTrue) // category not used in this convention
	return nil
}

func (peel07Rules) precipTemperate(s *derivedStats, d *categoryMasks) error {
	d.TemperateDrySummer = And(
		maskLT(s.PSMin, 40),
		maskLTArr(s.PSMin, s.PWMax.ScaleCopy(1.0/3.0)),
	)
	d.TemperateDryWinter = maskLTArr(s.PWMin, s.PSMax.ScaleCopy(1.0/10.0))
	d.TemperateWithoutDrySeason = Nor(d.TemperateDrySummer, d.TemperateDryWinter)
	return nil
}
