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

import "sort"

// labelEntry pairs a category name with its single-letter Köppen code.
// The empty code marks an axis a major zone does not subdivide.
type labelEntry struct {
	name, code string
}

// labelGroup declares one major zone's label taxonomy.
type labelGroup struct {
	major, code  string
	precip, temp []labelEntry
}

// koppenLabels is the label taxonomy shared by all three conventions.
// Major zones appear in declaration order; within each zone the
// precipitation and temperature sub-codes are sorted alphabetically at
// init so that every Köppen code always maps to the same integer.
var koppenLabels = []labelGroup{
	{
		major: "Tropical", code: "A",
		precip: []labelEntry{
			{"Rainforest", "f"},
			{"Monsoon", "m"},
			{"SavannaDryWinter", "w"},
			{"SavannaDrySummer", "s"},
		},
		temp: []labelEntry{{"None", ""}},
	},
	{
		major: "Arid", code: "B",
		precip: []labelEntry{
			{"Desert", "W"},
			{"Steppe", "S"},
		},
		temp: []labelEntry{
			{"Hot", "h"},
			{"Cold", "k"},
		},
	},
	{
		major: "Temperate", code: "C",
		precip: []labelEntry{
			{"DrySummer", "s"},
			{"DryWinter", "w"},
			{"WithoutDrySeason", "f"},
		},
		temp: []labelEntry{
			{"HotSummer", "a"},
			{"WarmSummer", "b"},
			{"ColdSummer", "c"},
		},
	},
	{
		major: "Continental", code: "D",
		precip: []labelEntry{
			{"DrySummer", "s"},
			{"DryWinter", "w"},
			{"WithoutDrySeason", "f"},
		},
		temp: []labelEntry{
			{"HotSummer", "a"},
			{"WarmSummer", "b"},
			{"ColdSummer", "c"},
			{"VeryColdWinter", "d"},
		},
	},
	{
		major: "Polar", code: "E",
		precip: []labelEntry{{"None", ""}},
		temp: []labelEntry{
			{"Tundra", "T"},
			{"EternalFrost", "F"},
		},
	},
}

// A LabelTriple names one full three-axis classification and its
// Köppen letter code.
type LabelTriple struct {
	Major  string
	Precip string
	Temp   string
	Code   string
}

var (
	// taxonomy lists every defined class in integer-assignment order,
	// so taxonomy[i] has class code i+1.
	taxonomy []LabelTriple

	classCodes  map[string]uint8
	classLabels []string
)

func init() {
	for gi := range koppenLabels {
		g := &koppenLabels[gi]
		sort.Slice(g.precip, func(i, j int) bool { return g.precip[i].code < g.precip[j].code })
		sort.Slice(g.temp, func(i, j int) bool { return g.temp[i].code < g.temp[j].code })
	}
	classCodes = make(map[string]uint8)
	next := uint8(1) // 0 is reserved for masked or invalid cells
	for _, g := range koppenLabels {
		for _, p := range g.precip {
			for _, t := range g.temp {
				code := g.code + p.code + t.code
				taxonomy = append(taxonomy, LabelTriple{Major: g.major, Precip: p.name, Temp: t.name, Code: code})
				classCodes[code] = next
				classLabels = append(classLabels, code)
				next++
			}
		}
	}
}

// Taxonomy returns the ordered list of (major, precipitation subtype,
// temperature subtype) label triples with their Köppen letter codes.
// The triple at index i classifies as integer class i+1.
func Taxonomy() []LabelTriple {
	out := make([]LabelTriple, len(taxonomy))
	copy(out, taxonomy)
	return out
}

// ClassCode returns the integer class assigned to a Köppen letter code
// such as "Csc". The codes are strictly positive; 0 is reserved for
// masked or invalid cells.
func ClassCode(code string) (uint8, bool) {
	v, ok := classCodes[code]
	return v, ok
}

// ClassLabel returns the Köppen letter code for integer class v.
func ClassLabel(v uint8) (string, bool) {
	if v == 0 || int(v) > len(classLabels) {
		return "", false
	}
	return classLabels[v-1], true
}

// NumClasses returns the number of defined classes.
func NumClasses() int {
	return len(taxonomy)
}
