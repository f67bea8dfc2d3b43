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

import "github.com/ctessum/sparse"

// conventionRules is the capability interface a classification
// convention implements. Each stage is a pure function of the derived
// statistics and the category masks computed by earlier stages; the
// driver runs the stages in a fixed order.
type conventionRules interface {
	major(s *derivedStats, d *categoryMasks) error
	precipTropical(s *derivedStats, d *categoryMasks) error
	precipArid(s *derivedStats, d *categoryMasks) error
	precipTemperate(s *derivedStats, d *categoryMasks) error
	precipContinental(s *derivedStats, d *categoryMasks) error
	precipPolar(s *derivedStats, d *categoryMasks) error
	tempTropical(s *derivedStats, d *categoryMasks) error
	tempArid(s *derivedStats, d *categoryMasks) error
	tempTemperate(s *derivedStats, d *categoryMasks) error
	tempContinental(s *derivedStats, d *categoryMasks) error
	tempPolar(s *derivedStats, d *categoryMasks) error
}

// baseRules supplies the predicate stages that are identical across
// the conventions. The stages that every convention defines for itself
// (major, precipTropical, precipTemperate) report an
// UnimplementedConventionError so that an incomplete convention fails
// on first use instead of silently classifying nothing.
type baseRules struct {
	convention Convention
}

func (b baseRules) major(s *derivedStats, d *categoryMasks) error {
	return &UnimplementedConventionError{Convention: b.convention.String(), Stage: "major"}
}

func (b baseRules) precipTropical(s *derivedStats, d *categoryMasks) error {
	return &UnimplementedConventionError{Convention: b.convention.String(), Stage: "precipTropical"}
}

func (b baseRules) precipTemperate(s *derivedStats, d *categoryMasks) error {
	return &UnimplementedConventionError{Convention: b.convention.String(), Stage: "precipTemperate"}
}

func (baseRules) precipArid(s *derivedStats, d *categoryMasks) error {
	d.AridDesert = maskLTArr(s.PAnn, s.PThresh.ScaleCopy(5))
	d.AridSteppe = Nor(d.AridDesert)
	return nil
}

// precipContinental aliases the Temperate precipitation subtypes; the
// two major zones use the same precipitation thresholds in every
// convention. It must run after precipTemperate.
func (baseRules) precipContinental(s *derivedStats, d *categoryMasks) error {
	d.ContinentalDrySummer = d.TemperateDrySummer
	d.ContinentalDryWinter = d.TemperateDryWinter
	d.ContinentalWithoutDrySeason = d.TemperateWithoutDrySeason
	return nil
}

func (baseRules) precipPolar(s *derivedStats, d *categoryMasks) error {
	d.PolarNone = s.allTrue
	return nil
}

func (baseRules) tempTropical(s *derivedStats, d *categoryMasks) error {
	d.TropicalNone = s.allTrue
	return nil
}

func (baseRules) tempArid(s *derivedStats, d *categoryMasks) error {
	d.AridHot = maskGE(s.TAnn, 18)
	d.AridCold = Nor(d.AridHot)
	return nil
}

// tempTemperate aliases the Continental temperature subtypes, folding
// Continental's very-cold-winter class into Temperate's cold summer.
// It must run after tempContinental.
func (baseRules) tempTemperate(s *derivedStats, d *categoryMasks) error {
	d.TemperateHotSummer = d.ContinentalHotSummer
	d.TemperateWarmSummer = d.ContinentalWarmSummer
	d.TemperateColdSummer = Nor(Nor(d.ContinentalColdSummer, d.ContinentalVeryColdWinter))
	return nil
}

func (baseRules) tempContinental(s *derivedStats, d *categoryMasks) error {
	d.ContinentalHotSummer = maskGE(s.TMax, 22)
	d.ContinentalWarmSummer = AndNot(d.ContinentalHotSummer, maskGE(s.NWarm, 4))
	notHotOrWarm := Nor(d.ContinentalHotSummer, d.ContinentalWarmSummer)
	d.ContinentalVeryColdWinter = And(maskLT(s.TMin, -38), notHotOrWarm)
	d.ContinentalColdSummer = Nor(d.ContinentalHotSummer, d.ContinentalWarmSummer, d.ContinentalVeryColdWinter)
	return nil
}

func (baseRules) tempPolar(s *derivedStats, d *categoryMasks) error {
	d.PolarTundra = maskGE(s.TMax, 0)
	d.PolarEternalFrost = Nor(d.PolarTundra)
	return nil
}

// monsoonCutoff returns the monsoon precipitation cutoff
// 100 - P_ann/25 [mm].
func monsoonCutoff(pAnn *sparse.DenseArray) *sparse.DenseArray {
	out := pAnn.ScaleCopy(-1.0 / 25.0)
	for i := range out.Elements {
		out.Elements[i] += 100
	}
	return out
}
