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

package koppenutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ctessum/sparse"
	"github.com/spatialmodel/koppen"
	"gonum.org/v1/gonum/floats"
)

// monthPlaceholder is replaced with the two-digit month number (01–12)
// in monthly file patterns.
const monthPlaceholder = "[MONTH]"

// ReadGrid reads a two-dimensional grid from a CSV file, one row per
// grid row. Empty fields and the strings "NA" and "NaN" become NaN,
// marking missing cells.
func ReadGrid(path string) (*sparse.DenseArray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("koppenutil: opening grid file: %w", err)
	}
	defer f.Close()
	return readGrid(f, path)
}

func readGrid(r io.Reader, path string) (*sparse.DenseArray, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("koppenutil: reading grid file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("koppenutil: grid file %s is empty", path)
	}
	out := sparse.ZerosDense(len(records), len(records[0]))
	for j, row := range records {
		for i, field := range row {
			field = strings.TrimSpace(field)
			if field == "" || field == "NA" || field == "NaN" {
				out.Elements[j*len(row)+i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("koppenutil: grid file %s row %d column %d: %w", path, j+1, i+1, err)
			}
			out.Elements[j*len(row)+i] = v
		}
	}
	return out, nil
}

// readMonthly reads twelve monthly grids named by replacing
// "[MONTH]" in pattern with the month number and stacks them into an
// array of shape [12, ny, nx].
func readMonthly(pattern string) (*sparse.DenseArray, error) {
	if !strings.Contains(pattern, monthPlaceholder) {
		return nil, fmt.Errorf("koppenutil: monthly file pattern %q does not contain %s", pattern, monthPlaceholder)
	}
	var out *sparse.DenseArray
	var size int
	for m := 0; m < 12; m++ {
		path := strings.Replace(pattern, monthPlaceholder, fmt.Sprintf("%02d", m+1), -1)
		g, err := ReadGrid(path)
		if err != nil {
			return nil, err
		}
		if out == nil {
			out = sparse.ZerosDense(12, g.Shape[0], g.Shape[1])
			size = len(g.Elements)
		} else if g.Shape[0] != out.Shape[1] || g.Shape[1] != out.Shape[2] {
			return nil, fmt.Errorf("koppenutil: monthly grid %s has shape %v; want %v",
				path, g.Shape, out.Shape[1:])
		}
		copy(out.Elements[m*size:(m+1)*size], g.Elements)
	}
	return out, nil
}

// LoadClimatology reads a monthly climatology from the twelve CSV
// grids matching pattern and computes its annual and half-year
// aggregates. The aggregates are totals if cumulative is true (as for
// precipitation) and means otherwise (as for temperature). A cell is
// missing from an aggregate if any contributing month is missing.
func LoadClimatology(pattern string, cumulative bool) (*koppen.Climatology, error) {
	monthly, err := readMonthly(pattern)
	if err != nil {
		return nil, err
	}
	size := monthly.Shape[1] * monthly.Shape[2]
	annual := sparse.ZerosDense(monthly.Shape[1:]...)
	aprSep := sparse.ZerosDense(monthly.Shape[1:]...)
	octMar := sparse.ZerosDense(monthly.Shape[1:]...)

	all := make([]float64, 12)
	half := make([]float64, 6)
	for i := 0; i < size; i++ {
		for m := 0; m < 12; m++ {
			all[m] = monthly.Elements[m*size+i]
		}
		annual.Elements[i] = aggregate(all, cumulative)

		for m := 0; m < 6; m++ { // April–September is months 3–8.
			half[m] = all[m+3]
		}
		aprSep.Elements[i] = aggregate(half, cumulative)

		for m := 0; m < 6; m++ {
			half[m] = all[(m+9)%12]
		}
		octMar.Elements[i] = aggregate(half, cumulative)
	}
	return koppen.NewClimatology(monthly, annual, aprSep, octMar)
}

// aggregate sums vals, or averages them if cumulative is false. NaN
// inputs propagate to the result.
func aggregate(vals []float64, cumulative bool) float64 {
	s := floats.Sum(vals)
	if cumulative {
		return s
	}
	return s / float64(len(vals))
}

// ReadSummerFlag reads a per-cell summer flag grid: cells with nonzero
// values take "summer" to be April–September.
func ReadSummerFlag(path string) (*koppen.Mask, error) {
	g, err := ReadGrid(path)
	if err != nil {
		return nil, err
	}
	m := koppen.NewMask(g.Shape...)
	for i, v := range g.Elements {
		m.Elements[i] = v != 0 && !math.IsNaN(v)
	}
	return m, nil
}

// WriteClassGrid writes a classification grid as CSV, one row per grid
// row.
func WriteClassGrid(w io.Writer, g *koppen.ClassGrid) error {
	if len(g.Shape) != 2 {
		return fmt.Errorf("koppenutil: can only write 2-dimensional grids; got shape %v", g.Shape)
	}
	cw := csv.NewWriter(w)
	row := make([]string, g.Shape[1])
	for j := 0; j < g.Shape[0]; j++ {
		for i := 0; i < g.Shape[1]; i++ {
			row[i] = strconv.Itoa(int(g.Elements[j*g.Shape[1]+i]))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("koppenutil: writing classification grid: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
