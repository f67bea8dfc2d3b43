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
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spatialmodel/koppen"
)

func TestReadGrid(t *testing.T) {
	in := "1,2.5,NA\n,NaN,-3\n"
	g, err := readGrid(strings.NewReader(in), "test.csv")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(g.Shape, []int{2, 3}) {
		t.Fatalf("shape = %v; want [2 3]", g.Shape)
	}
	want := []float64{1, 2.5, math.NaN(), math.NaN(), math.NaN(), -3}
	for i, w := range want {
		got := g.Elements[i]
		if math.IsNaN(w) {
			if !math.IsNaN(got) {
				t.Errorf("element %d = %g; want NaN", i, got)
			}
		} else if got != w {
			t.Errorf("element %d = %g; want %g", i, got, w)
		}
	}
}

func TestReadGridErrors(t *testing.T) {
	if _, err := readGrid(strings.NewReader(""), "empty.csv"); err == nil {
		t.Error("expected an error for an empty file")
	}
	if _, err := readGrid(strings.NewReader("1,x\n"), "bad.csv"); err == nil {
		t.Error("expected an error for a non-numeric field")
	}
}

// writeMonthlyGrids writes twelve CSV grids into dir and returns the
// file pattern. value gives the cell value for each month (January is
// month 0).
func writeMonthlyGrids(t *testing.T, dir string, value func(month int) string) string {
	t.Helper()
	pattern := filepath.Join(dir, "clim_[MONTH].csv")
	for m := 0; m < 12; m++ {
		path := strings.Replace(pattern, monthPlaceholder, fmt.Sprintf("%02d", m+1), -1)
		if err := os.WriteFile(path, []byte(value(m)+"\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return pattern
}

func TestLoadClimatology(t *testing.T) {
	pattern := writeMonthlyGrids(t, t.TempDir(), func(m int) string {
		// Two cells: a quadratic ramp and one missing month.
		v := (m + 1) * (m + 1)
		if m == 5 {
			return fmt.Sprintf("%d,NA", v)
		}
		return fmt.Sprintf("%d,%d", v, v)
	})

	c, err := LoadClimatology(pattern, true)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(c.Monthly.Shape, []int{12, 1, 2}) {
		t.Fatalf("monthly shape = %v; want [12 1 2]", c.Monthly.Shape)
	}
	if got := c.Annual.Get(0, 0); got != 650 {
		t.Errorf("annual total = %g; want 650", got)
	}
	if got := c.AprSep.Get(0, 0); got != 271 {
		t.Errorf("April–September total = %g; want 271", got)
	}
	if got := c.OctMar.Get(0, 0); got != 379 {
		t.Errorf("October–March total = %g; want 379", got)
	}
	// A missing month masks every aggregate that includes it.
	if got := c.Annual.Get(0, 1); !math.IsNaN(got) {
		t.Errorf("annual total with a missing month = %g; want NaN", got)
	}
	if got := c.AprSep.Get(0, 1); !math.IsNaN(got) {
		t.Errorf("April–September total with a missing month = %g; want NaN", got)
	}
	if got := c.OctMar.Get(0, 1); math.IsNaN(got) {
		t.Error("October–March total should not include the missing June")
	}

	// Means instead of totals.
	cm, err := LoadClimatology(pattern, false)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cm.Annual.Get(0, 0), 650.0/12; got != want {
		t.Errorf("annual mean = %g; want %g", got, want)
	}
}

func TestLoadClimatologyErrors(t *testing.T) {
	if _, err := LoadClimatology(filepath.Join(t.TempDir(), "clim.csv"), true); err == nil {
		t.Error("expected an error for a pattern without the month placeholder")
	}

	// Grids whose shapes disagree across months are rejected.
	pattern := writeMonthlyGrids(t, t.TempDir(), func(m int) string {
		if m == 3 {
			return "1,2,3"
		}
		return "1,2"
	})
	if _, err := LoadClimatology(pattern, true); err == nil {
		t.Error("expected an error for mismatched monthly grid shapes")
	}
}

func TestReadSummerFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summer.csv")
	if err := os.WriteFile(path, []byte("1,0\nNaN,2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := ReadSummerFlag(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := []bool{true, false, false, true}; !reflect.DeepEqual(m.Elements, want) {
		t.Errorf("summer flag = %v; want %v", m.Elements, want)
	}
}

func TestWriteClassGrid(t *testing.T) {
	g := &koppen.ClassGrid{
		Elements: []uint8{1, 2, 3, 4, 5, 6},
		Shape:    []int{2, 3},
	}
	var buf bytes.Buffer
	if err := WriteClassGrid(&buf, g); err != nil {
		t.Fatal(err)
	}
	if want := "1,2,3\n4,5,6\n"; buf.String() != want {
		t.Errorf("got %q; want %q", buf.String(), want)
	}

	bad := &koppen.ClassGrid{Elements: []uint8{1}, Shape: []int{1}}
	if err := WriteClassGrid(&buf, bad); err == nil {
		t.Error("expected an error for a non-2-dimensional grid")
	}
}
