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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/koppen"
	"github.com/spf13/cast"
)

// checkConventions parses the "conventions" configuration variable
// into Convention values, accounting for the fact that it may be a
// comma-joined string if it was set from a command line argument.
func checkConventions(cfg *viper.Viper) ([]koppen.Convention, error) {
	names, err := cast.ToStringSliceE(cfg.Get("conventions"))
	if err != nil {
		return nil, fmt.Errorf("koppenutil: parsing config variable conventions: %v", err)
	}
	if len(names) == 1 && strings.Contains(names[0], ",") {
		names = strings.Split(names[0], ",")
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("koppenutil: no classification conventions specified")
	}
	var out []koppen.Convention
	for _, name := range names {
		c, err := koppen.ParseConvention(strings.TrimSpace(os.ExpandEnv(name)))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// checkInputPattern makes sure an input file pattern is specified, and
// expands any environment variables in it.
func checkInputPattern(pattern, option string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("koppenutil: you need to specify the %s configuration variable", option)
	}
	return os.ExpandEnv(pattern), nil
}

// checkOutputFile makes sure that the output file is specified and its
// directory exists, and expands any environment variables. When
// several conventions are classified at once the file name must
// contain the "[CONVENTION]" placeholder.
func checkOutputFile(f string, nConventions int) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`koppenutil: you need to specify an output file configuration variable (for example: OutputFile="classes.csv")`)
	}
	f = os.ExpandEnv(f)
	if nConventions > 1 && !strings.Contains(f, conventionPlaceholder) {
		return f, fmt.Errorf("koppenutil: OutputFile must contain %s when classifying %d conventions",
			conventionPlaceholder, nConventions)
	}
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("koppenutil: the OutputFile directory doesn't exist: %v", err)
	}
	return f, nil
}

// conventionPlaceholder is replaced with the convention name in output
// file names.
const conventionPlaceholder = "[CONVENTION]"

// outputFileName returns the output file for one convention.
func outputFileName(f string, conv koppen.Convention) string {
	return strings.Replace(f, conventionPlaceholder, conv.String(), -1)
}
