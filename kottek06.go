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

// kottek06Rules implements the Kottek06 convention. The major zones
// are tested in priority order, each zone excluding the zones already
// assigned before it.
type kottek06Rules struct {
	baseRules
}

func (kottek06Rules) major(s *derivedStats, d *categoryMasks) error {
	cutoff := conventionParams[Kottek06].polarTminCutoff
	d.Arid = maskLTArr(s.PAnn, s.PThresh.ScaleCopy(10))
	d.Polar = AndNot(d.Arid, maskLE(s.TMax, 10))
	notAridOrPolar := Nor(d.Arid, d.Polar)
	d.Tropical = And(maskGE(s.TMin, 18), notAridOrPolar)
	d.Temperate = And(maskGT(s.TMin, cutoff), maskLT(s.TMin, 18), notAridOrPolar)
	d.Continental = And(maskLE(s.TMin, cutoff), notAridOrPolar)
	return nil
}

// precipTropical gives Monsoon priority over Rainforest. The two
// Savanna tests are independent and may both hold at a cell.
func (kottek06Rules) precipTropical(s *derivedStats, d *categoryMasks) error {
	d.TropicalMonsoon = maskGEArr(s.PMin, monsoonCutoff(s.PAnn))
	notMonsoon := Nor(d.TropicalMonsoon)
	d.TropicalRainforest = And(maskGE(s.PMin, 60), notMonsoon)
	d.TropicalSavannaDryWinter = And(maskLT(s.PSMin, 60), notMonsoon)
	d.TropicalSavannaDrySummer = And(maskLT(s.PWMin, 60), notMonsoon)
	return nil
}

func (kottek06Rules) precipTemperate(s *derivedStats, d *categoryMasks) error {
	d.TemperateDrySummer = And(
		maskLTArr(s.PSMin, s.PWMin),
		maskLT(s.PSMin, 40),
		maskLTArr(s.PSMin, s.PWMax.ScaleCopy(1.0/3.0)),
	)
	d.TemperateDryWinter = And(
		maskLTArr(s.PWMin, s.PSMin),
		maskLTArr(s.PWMin, s.PSMax.ScaleCopy(1.0/10.0)),
	)
	d.TemperateWithoutDrySeason = Nor(d.TemperateDrySummer, d.TemperateDryWinter)
	return nil
}
