package sample

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var base = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func TestWindowRetainsOnlyRecentSamples(t *testing.T) {
	buffer := NewBuffer()
	window := 1500 * time.Millisecond

	buffer.Append(Sample{At: base, Value: 1}, window)
	buffer.Append(Sample{At: base.Add(1 * time.Second), Value: 2}, window)
	buffer.Append(Sample{At: base.Add(2 * time.Second), Value: 3}, window)

	// The cutoff after the third append is base+0.5s: the first sample is
	// strictly older and must be gone, the other two retained in order.
	assert.Equal(t, 2, buffer.Len())
	assert.Equal(t, []float64{2, 3}, buffer.Values())
	assert.Equal(t, 3.0, buffer.Newest().Value)
	assert.Equal(t, 2.0, buffer.Oldest().Value)
}

func TestWindowBoundaryIsInclusive(t *testing.T) {
	buffer := NewBuffer()
	window := 1 * time.Second

	buffer.Append(Sample{At: base, Value: 1}, window)
	buffer.Append(Sample{At: base.Add(1 * time.Second), Value: 2}, window)

	// base is exactly at the cutoff, not strictly older than it.
	assert.Equal(t, 2, buffer.Len())
}

func TestNegativeWindowNeverEvicts(t *testing.T) {
	buffer := NewBuffer()
	for i := 0; i < 100; i++ {
		buffer.Append(Sample{At: base.Add(time.Duration(i) * time.Hour)}, -1*time.Second)
	}
	assert.Equal(t, 100, buffer.Len())
}

func TestZeroWindowKeepsOnlySimultaneousSamples(t *testing.T) {
	buffer := NewBuffer()

	buffer.Append(Sample{At: base, Value: 1}, 0)
	buffer.Append(Sample{At: base, Value: 2}, 0)
	assert.Equal(t, 2, buffer.Len())

	// A later timestamp moves the cutoff to itself and flushes the rest.
	buffer.Append(Sample{At: base.Add(time.Nanosecond), Value: 3}, 0)
	assert.Equal(t, 1, buffer.Len())
	assert.Equal(t, 3.0, buffer.Newest().Value)
}

func TestValuesAndErrorsPreserveInsertionOrder(t *testing.T) {
	buffer := NewBuffer()
	buffer.Append(Sample{At: base, Value: 1, Error: 0.1}, -1)
	buffer.Append(Sample{At: base.Add(time.Second), Value: 2, Error: 0.5}, -1)
	buffer.Append(Sample{At: base.Add(2 * time.Second), Value: 3, Error: 0.2}, -1)

	assert.Equal(t, []float64{1, 2, 3}, buffer.Values())
	assert.Equal(t, []float64{0.1, 0.5, 0.2}, buffer.Errors())

	seen := 0
	buffer.ForEach(func(s Sample) {
		seen++
	})
	assert.Equal(t, 3, seen)
}
