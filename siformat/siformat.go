/*
 * This file is part of Go Value Label.
 *
 * Go Value Label is free software: you can redistribute it and/or modify it under
 * the terms of the GNU General Public License as published by the Free Software Foundation,
 * either version 2 of the License, or (at your option) any later version.
 * Go Value Label is distributed in the hope that it will be useful, but WITHOUT ANY
 * WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A
 * PARTICULAR PURPOSE. See the GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License along
 * with Go Value Label. If not, see <https://www.gnu.org/licenses/>.
 */

// Package siformat renders numbers in engineering notation: the value is
// scaled into [1, 1000) and the matching SI prefix is glued onto the unit
// suffix ("0.00123 V" becomes "1.23 mV").
package siformat

import (
	"fmt"
	"math"
)

// Thousands-exponents -8 through +8. Exponents beyond the table fall back to
// plain e-notation.
var prefixes = [17]string{
	"y", "z", "a", "f", "p", "n", "µ", "m", "", "k", "M", "G", "T", "P", "E", "Z", "Y",
}

const defaultPrecision = 3

// Scale returns the multiplier that brings x into the range of its SI
// prefix, together with that prefix. Zero and non-finite values scale by 1
// with no prefix.
func Scale(x float64) (scale float64, prefix string) {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 1, ""
	}
	m := int(math.Floor(math.Log10(math.Abs(x)) / 3))
	if m < -9 {
		m = -9
	} else if m > 9 {
		m = 9
	}
	if m != 0 {
		if m < -8 || m > 8 {
			prefix = fmt.Sprintf("e%d", m*3)
		} else {
			prefix = prefixes[m+8]
		}
	}
	return math.Pow(10, float64(-3*m)), prefix
}

type Options struct {
	Suffix string
	// Significant digits to display. Values below 1 select the default of 3.
	Precision int
	// NoSpace drops the separator between the number and the prefixed
	// suffix (and around the ± when an error is shown).
	NoSpace bool
	// Error is the uncertainty to display alongside x when ShowError is
	// set. With GroupedError the uncertainty shares the prefix of x itself
	// ("1.2345 (±0.0025) kV"); without it the uncertainty is scaled
	// independently ("1.23 kV ± 5 V").
	Error        float64
	ShowError    bool
	GroupedError bool
}

// Format renders x per opts.
func Format(x float64, opts Options) string {
	precision := opts.Precision
	if precision < 1 {
		precision = defaultPrecision
	}
	space := " "
	if opts.NoSpace {
		space = ""
	}

	scale, prefix := Scale(x)
	unit := prefix + opts.Suffix
	plain := fmt.Sprintf("%.*g", precision, x*scale)

	if !opts.ShowError {
		if unit == "" {
			return plain
		}
		return plain + space + unit
	}

	if opts.GroupedError {
		grouped := fmt.Sprintf("%s%s(±%.*g)", plain, space, precision, opts.Error*scale)
		if unit == "" {
			return grouped
		}
		return grouped + space + unit
	}

	errText := Format(opts.Error, Options{
		Suffix:    opts.Suffix,
		Precision: precision,
		NoSpace:   opts.NoSpace,
	})
	if unit == "" {
		return plain + space + "±" + space + errText
	}
	return plain + space + unit + space + "±" + space + errText
}
