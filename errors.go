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

import "fmt"

// A ConfigurationError reports that classification was requested with
// an invalid or incomplete configuration, for example a
// hemisphere-aware convention invoked without hemisphere information.
// Missing or invalid per-cell data is not a ConfigurationError; it is
// tracked through the input mask and resolves to class 0.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "koppen: " + e.Message
}

// A ShapeMismatchError reports that the shape of a supplied grid
// disagrees with the spatial shape of the primary grids.
type ShapeMismatchError struct {
	Context   string
	Got, Want []int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("koppen: %s: grid shape %v does not match %v", e.Context, e.Got, e.Want)
}

// An UnimplementedConventionError reports that a convention does not
// supply one of the predicate stages it is required to define. It
// signals an incomplete convention definition rather than bad input
// data.
type UnimplementedConventionError struct {
	Convention string
	Stage      string
}

func (e *UnimplementedConventionError) Error() string {
	return fmt.Sprintf("koppen: convention %s does not implement required stage %s", e.Convention, e.Stage)
}
