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

package sample

import (
	"time"

	"github.com/gammazero/deque"
)

// Sample is a single measurement instant handed to a display label. It is
// never modified after it enters a Buffer.
type Sample struct {
	At    time.Time
	Value float64
	Error float64
}

// Buffer holds samples in insertion order and prunes them against a time
// window as new samples arrive. Timestamps are assumed monotonically
// non-decreasing; Append does not enforce that, it only relies on it when
// evicting from the front.
//
// A Buffer is not safe for concurrent use. It is owned by exactly one label
// and mutated from the goroutine that drives that label.
type Buffer struct {
	samples deque.Deque[Sample]
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append adds s to the back of the buffer and then evicts every sample whose
// timestamp is strictly older than s.At.Add(-window). A negative window
// disables eviction entirely. A zero window places the cutoff at s.At itself,
// so only samples stamped at exactly that instant survive.
func (b *Buffer) Append(s Sample, window time.Duration) {
	b.samples.PushBack(s)
	if window < 0 {
		return
	}
	cutoff := s.At.Add(-window)
	for b.samples.Len() > 0 && b.samples.Front().At.Before(cutoff) {
		b.samples.PopFront()
	}
}

func (b *Buffer) Len() int {
	return b.samples.Len()
}

func (b *Buffer) Empty() bool {
	return b.samples.Len() == 0
}

// Newest returns the most recently appended sample. The buffer must not be
// empty.
func (b *Buffer) Newest() Sample {
	return b.samples.Back()
}

// Oldest returns the least recently appended retained sample. The buffer
// must not be empty.
func (b *Buffer) Oldest() Sample {
	return b.samples.Front()
}

// Values returns the retained values in insertion order.
func (b *Buffer) Values() []float64 {
	values := make([]float64, b.samples.Len())
	for i := 0; i < b.samples.Len(); i++ {
		values[i] = b.samples.At(i).Value
	}
	return values
}

// Errors returns the retained per-sample errors in insertion order.
func (b *Buffer) Errors() []float64 {
	errors := make([]float64, b.samples.Len())
	for i := 0; i < b.samples.Len(); i++ {
		errors[i] = b.samples.At(i).Error
	}
	return errors
}

func (b *Buffer) ForEach(eacher func(s Sample)) {
	for i := 0; i < b.samples.Len(); i++ {
		eacher(b.samples.At(i))
	}
}
