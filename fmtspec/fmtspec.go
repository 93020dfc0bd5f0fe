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

// Package fmtspec renders display templates of the form
//
//	{avgValue:.3g} ± {avgError:.1g} {suffix}
//
// against a fixed set of named fields. The format specs are the subset of
// the usual significant-digit mini-language that display templates need:
// an optional leading 0, an optional .N precision and one of the g, f or e
// verbs. Anything the renderer cannot make sense of is left in the output
// as a visible %! marker rather than reported early; templates are only
// ever validated by rendering them.
package fmtspec

import (
	"io"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"
)

// Fields carries the named values a display template can reference.
type Fields struct {
	Value     float64
	AvgValue  float64
	Suffix    string
	Error     float64
	AvgError  float64
	Precision int
}

// Render substitutes every {name} and {name:spec} tag in template with the
// matching field.
func Render(template string, fields Fields) string {
	// The stock error template nests {precision} inside another tag's
	// format spec ("{avgValue:.{precision}g}"). Substitute it up front so
	// that every tag the template engine sees is flat.
	template = strings.ReplaceAll(template, "{precision}", strconv.Itoa(fields.Precision))

	t, err := fasttemplate.NewTemplate(template, "{", "}")
	if err != nil {
		return "%!(" + err.Error() + ")"
	}
	return t.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		name, spec := tag, ""
		if colon := strings.IndexByte(tag, ':'); colon >= 0 {
			name, spec = tag[:colon], tag[colon+1:]
		}
		switch name {
		case "suffix":
			return io.WriteString(w, fields.Suffix)
		case "value":
			return writeNumber(w, fields.Value, spec, tag)
		case "avgValue":
			return writeNumber(w, fields.AvgValue, spec, tag)
		case "error":
			return writeNumber(w, fields.Error, spec, tag)
		case "avgError":
			return writeNumber(w, fields.AvgError, spec, tag)
		case "precision":
			return io.WriteString(w, strconv.Itoa(fields.Precision))
		}
		return io.WriteString(w, "%!{"+tag+"}")
	})
}

func writeNumber(w io.Writer, v float64, spec string, tag string) (int, error) {
	text, ok := formatNumber(v, spec)
	if !ok {
		return io.WriteString(w, "%!{"+tag+"}")
	}
	return io.WriteString(w, text)
}

// formatNumber applies a [0][.N](g|f|e) spec to v. An empty spec renders the
// shortest exact representation.
func formatNumber(v float64, spec string) (string, bool) {
	if spec == "" {
		return strconv.FormatFloat(v, 'g', -1, 64), true
	}
	rest := spec
	if rest[0] == '0' {
		// A leading zero-fill flag; display templates never use field
		// widths so there is nothing else to do with it.
		rest = rest[1:]
	}
	precision := -1
	if len(rest) > 0 && rest[0] == '.' {
		rest = rest[1:]
		digits := 0
		precision = 0
		for len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
			precision = precision*10 + int(rest[0]-'0')
			rest = rest[1:]
			digits++
		}
		if digits == 0 {
			return "", false
		}
	}
	if len(rest) != 1 {
		return "", false
	}
	switch verb := rest[0]; verb {
	case 'g', 'f', 'e':
		return strconv.FormatFloat(v, verb, precision, 64), true
	}
	return "", false
}
