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

// Package label implements a display label for live numeric values: it keeps
// a time-windowed buffer of (timestamp, value, error) samples, averages them,
// and renders the result -- with an SI unit prefix or through a display
// template -- every time the host asks for a repaint.
package label

import (
	"io"
	"math"
	"strings"
	"time"

	"github.com/value-label/govaluelabel/dist"
	"github.com/value-label/govaluelabel/fmtspec"
	"github.com/value-label/govaluelabel/sample"
	"github.com/value-label/govaluelabel/siformat"
	"github.com/value-label/govaluelabel/stats"
)

// ErrorType selects the statistic behind the displayed uncertainty.
type ErrorType int

const (
	// ErrorAvg displays the mean of the per-sample errors.
	ErrorAvg ErrorType = iota
	// ErrorStdDev displays the population standard deviation of the values.
	ErrorStdDev
	// ErrorStdErr displays the standard deviation of the values divided by
	// the square root of the sample count.
	ErrorStdErr
	// ErrorMax displays the largest of the per-sample errors.
	ErrorMax
)

// ParseErrorType maps a selector string to its ErrorType. Anything it does
// not recognize behaves as "avg" -- an unknown selector degrades the display,
// it never fails it.
func ParseErrorType(selector string) ErrorType {
	switch selector {
	case "stdDev":
		return ErrorStdDev
	case "stdErr":
		return ErrorStdErr
	case "max":
		return ErrorMax
	}
	return ErrorAvg
}

func (t ErrorType) String() string {
	switch t {
	case ErrorStdDev:
		return "stdDev"
	case ErrorStdErr:
		return "stdErr"
	case ErrorMax:
		return "max"
	}
	return "avg"
}

// Default display templates, selected at construction when Options carries
// no explicit template.
const (
	DefaultFormatStr      = "{avgValue:0.2g} {suffix}"
	DefaultErrorFormatStr = "{avgValue:.{precision}g} ± {avgError:.1g} {suffix}"
)

// Spaces in SI-formatted output become non-breaking so the host never wraps
// a line in the middle of a number.
const nonBreakingSpace = "\u00a0"

type Options struct {
	// Suffix is the unit text appended to the displayed value.
	Suffix string
	// SIPrefix scales the displayed value into engineering notation. It is
	// not compatible with an explicit FormatStr; the template path ignores
	// SI scaling.
	SIPrefix bool
	// AverageTime is the sliding window over which samples contribute to
	// the displayed average. Zero places the eviction cutoff at the newest
	// sample's own timestamp; a negative duration keeps every sample ever
	// set (the buffer then grows without bound).
	AverageTime time.Duration
	// FormatStr is the display template (see package fmtspec). Empty
	// selects DefaultFormatStr or DefaultErrorFormatStr per ShowError.
	FormatStr string
	// ShowError displays the uncertainty alongside the value.
	ShowError bool
	// ErrorType selects the uncertainty statistic.
	ErrorType ErrorType
}

// ValueLabel is the display component itself. It is owned by a single
// goroutine (the host's render loop) and performs no locking of its own;
// feed it through a thread-marshaled entry point if samples originate
// elsewhere.
type ValueLabel struct {
	suffix      string
	siPrefix    bool
	averageTime time.Duration
	formatStr   string
	showError   bool
	errorType   ErrorType

	buffer  *sample.Buffer
	summary *dist.Summary

	// text is the literal label text as of the last Paint.
	text string

	now            func() time.Time
	requestRepaint func()
}

func New(opts Options) *ValueLabel {
	formatStr := opts.FormatStr
	if formatStr == "" {
		if opts.ShowError {
			formatStr = DefaultErrorFormatStr
		} else {
			formatStr = DefaultFormatStr
		}
	}
	return &ValueLabel{
		suffix:      opts.Suffix,
		siPrefix:    opts.SIPrefix,
		averageTime: opts.AverageTime,
		formatStr:   formatStr,
		showError:   opts.ShowError,
		errorType:   opts.ErrorType,
		buffer:      sample.NewBuffer(),
		now:         time.Now,
	}
}

// OnRepaintRequest registers the host callback that marks the label dirty.
// Setters that change what the label would render invoke it.
func (l *ValueLabel) OnRepaintRequest(request func()) {
	l.requestRepaint = request
}

// SetClock replaces the label's time source. Tests use this to drive the
// averaging window deterministically.
func (l *ValueLabel) SetClock(now func() time.Time) {
	l.now = now
}

// TrackDistribution attaches a session summary that receives every value
// fed to the label, regardless of the averaging window.
func (l *ValueLabel) TrackDistribution(summary *dist.Summary) {
	l.summary = summary
}

// SetValue records a new value with no per-sample uncertainty.
func (l *ValueLabel) SetValue(value float64) {
	l.SetValueError(value, 0)
}

// SetValueError records a new value together with its uncertainty, prunes
// the buffer against the averaging window and requests a repaint.
func (l *ValueLabel) SetValueError(value float64, err float64) {
	l.buffer.Append(sample.Sample{At: l.now(), Value: value, Error: err}, l.averageTime)
	if l.summary != nil {
		l.summary.AddSample(value)
	}
	l.update()
}

// SetFormatStr replaces the display template. The new template is not
// validated here; a malformed one shows up as a marker in the rendered text.
func (l *ValueLabel) SetFormatStr(text string) {
	l.formatStr = text
	l.update()
}

// SetAverageTime replaces the averaging window. The buffer is not pruned
// retroactively; the next SetValue observes the new window.
func (l *ValueLabel) SetAverageTime(d time.Duration) {
	l.averageTime = d
}

func (l *ValueLabel) SetError(show bool) {
	l.showError = show
	l.update()
}

func (l *ValueLabel) Error() bool {
	return l.showError
}

func (l *ValueLabel) SetErrorType(t ErrorType) {
	l.errorType = t
}

func (l *ValueLabel) ErrorType() ErrorType {
	return l.errorType
}

func (l *ValueLabel) SampleCount() int {
	return l.buffer.Len()
}

// AverageValue is the arithmetic mean of the retained values. It is NaN on
// an empty buffer; the render path short-circuits before calling it, direct
// callers must guard themselves.
func (l *ValueLabel) AverageValue() float64 {
	return stats.Average(l.buffer.Values())
}

// AverageError computes the displayed uncertainty per the selected
// ErrorType. Same empty-buffer caveat as AverageValue.
func (l *ValueLabel) AverageError() float64 {
	switch l.errorType {
	case ErrorMax:
		return stats.Maximum(l.buffer.Errors())
	case ErrorStdDev:
		return stats.StandardDeviation(l.buffer.Values())
	case ErrorStdErr:
		return stats.StandardError(l.buffer.Values())
	default:
		return stats.Average(l.buffer.Errors())
	}
}

// GenerateText derives the display string from the current buffer and
// options. It is pure: calling it repeatedly without an intervening SetValue
// returns the identical string, and the host may call it far more often than
// values arrive.
func (l *ValueLabel) GenerateText() string {
	if l.buffer.Empty() {
		return ""
	}
	avg := l.AverageValue()
	newest := l.buffer.Newest()

	if l.showError {
		avgErr := l.AverageError()
		if l.siPrefix {
			text := siformat.Format(avg, siformat.Options{
				Suffix:       l.suffix,
				Precision:    6,
				NoSpace:      true,
				Error:        avgErr,
				ShowError:    true,
				GroupedError: true,
			})
			return strings.ReplaceAll(text, " ", nonBreakingSpace)
		}
		return strings.Trim(fmtspec.Render(l.formatStr, fmtspec.Fields{
			Value:     newest.Value,
			AvgValue:  avg,
			Suffix:    l.suffix,
			Error:     newest.Error,
			AvgError:  avgErr,
			Precision: displayPrecision(avg, avgErr),
		}), " ")
	}

	if l.siPrefix {
		return siformat.Format(avg, siformat.Options{Suffix: l.suffix})
	}
	return strings.Trim(fmtspec.Render(l.formatStr, fmtspec.Fields{
		Value:    newest.Value,
		AvgValue: avg,
		Suffix:   l.suffix,
	}), " ")
}

// displayPrecision is the number of significant digits of avg implied by the
// magnitude of its error: floor(log10|avg|) - floor(log10|err|) + 1. Either
// quantity being zero would put a zero through the logarithm, so that case
// pins the precision at 2.
func displayPrecision(avg float64, avgErr float64) int {
	if avg == 0 || avgErr == 0 {
		return 2
	}
	prec := math.Floor(math.Log10(math.Abs(avg))) - math.Floor(math.Log10(math.Abs(avgErr))) + 1
	if math.IsNaN(prec) || prec < 1 {
		return 1
	}
	return int(prec)
}

// Paint recomputes the display text, stores it as the label's literal text
// and writes it to the host surface. The host calls this on every repaint,
// so the text always reflects the buffer at paint time rather than at the
// last SetValue.
func (l *ValueLabel) Paint(w io.Writer) error {
	l.text = l.GenerateText()
	_, err := io.WriteString(w, l.text)
	return err
}

// Text is the literal label text as of the last Paint.
func (l *ValueLabel) Text() string {
	return l.text
}

func (l *ValueLabel) update() {
	if l.requestRepaint != nil {
		l.requestRepaint()
	}
}
