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
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/koppen"
)

func TestCheckConventions(t *testing.T) {
	tests := []struct {
		name    string
		val     interface{}
		want    []koppen.Convention
		wantErr bool
	}{
		{"slice", []string{"kottek06", "gfdl"}, []koppen.Convention{koppen.Kottek06, koppen.GFDL}, false},
		// Command-line flags arrive as a comma-joined string.
		{"commaJoined", "peel07,kottek06", []koppen.Convention{koppen.Peel07, koppen.Kottek06}, false},
		{"single", "peel07", []koppen.Convention{koppen.Peel07}, false},
		{"unknown", "peel2007", nil, true},
		{"empty", []string{}, nil, true},
	}
	for _, test := range tests {
		cfg := viper.New()
		cfg.Set("conventions", test.val)
		got, err := checkConventions(cfg)
		if test.wantErr {
			if err == nil {
				t.Errorf("%s: expected an error", test.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: got %v; want %v", test.name, got, test.want)
		}
	}
}

func TestCheckInputPattern(t *testing.T) {
	if _, err := checkInputPattern("", "TemperatureFile"); err == nil {
		t.Error("expected an error for an unset input pattern")
	}
	t.Setenv("KOPPEN_TEST_DIR", "/data")
	got, err := checkInputPattern("${KOPPEN_TEST_DIR}/tas_[MONTH].csv", "TemperatureFile")
	if err != nil {
		t.Fatal(err)
	}
	if want := "/data/tas_[MONTH].csv"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestCheckOutputFile(t *testing.T) {
	dir := t.TempDir()

	if _, err := checkOutputFile("", 1); err == nil {
		t.Error("expected an error for an unset output file")
	}
	if _, err := checkOutputFile(filepath.Join(dir, "no", "such", "dir", "out.csv"), 1); err == nil {
		t.Error("expected an error for a missing output directory")
	}
	if _, err := checkOutputFile(filepath.Join(dir, "out.csv"), 2); err == nil {
		t.Error("expected an error for several conventions without the convention placeholder")
	}
	if _, err := checkOutputFile(filepath.Join(dir, "out_[CONVENTION].csv"), 2); err != nil {
		t.Error(err)
	}
	if _, err := checkOutputFile(filepath.Join(dir, "out.csv"), 1); err != nil {
		t.Error(err)
	}
}

func TestOutputFileName(t *testing.T) {
	got := outputFileName("out_[CONVENTION].csv", koppen.GFDL)
	if want := "out_gfdl.csv"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	// Without the placeholder the name is used as-is.
	if got := outputFileName("out.csv", koppen.GFDL); got != "out.csv" {
		t.Errorf("got %q; want \"out.csv\"", got)
	}
}
