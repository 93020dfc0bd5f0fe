package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicSummary(t *testing.T) {
	s := NewSummary()
	s.AddSample(1.0)
	s.AddSample(2.0)
	s.AddSample(3.0)
	assert.Equal(t, int64(3), s.Count())
	assert.InEpsilon(t, 2.0, s.Average(), 0.000001)
	assert.InEpsilon(t, 1.0, s.Variance(), 0.000001)
	assert.InEpsilon(t, 1.0, s.StandardDeviation(), 0.000001)
	assert.InEpsilon(t, 1.0, s.Minimum(), 0.000001)
	assert.InEpsilon(t, 3.0, s.Maximum(), 0.000001)
	assert.InEpsilon(t, 2.0, s.Median(), 0.000001)
	assert.InEpsilon(t, 1.0, s.Percentile(10.0), 0.000001)
	assert.InEpsilon(t, 3.0, s.Percentile(90.0), 0.000001)
}

func TestSummaryTracksNegativeMinimum(t *testing.T) {
	s := NewSummary()
	s.AddSample(-2.0)
	s.AddSample(-1.0)
	assert.InEpsilon(t, -2.0, s.Minimum(), 0.000001)
	assert.InEpsilon(t, -1.0, s.Maximum(), 0.000001)
}

func TestMergeSummaries(t *testing.T) {
	left := NewSummary()
	right := NewSummary()
	for i := 1; i <= 5; i++ {
		left.AddSample(float64(i))
	}
	for i := 6; i <= 10; i++ {
		right.AddSample(float64(i))
	}
	left.Merge(right)
	assert.Equal(t, int64(10), left.Count())
	assert.InEpsilon(t, 5.5, left.Average(), 0.000001)
	assert.InEpsilon(t, 1.0, left.Minimum(), 0.000001)
	assert.InEpsilon(t, 10.0, left.Maximum(), 0.000001)
}

func TestSingleSampleSummaryHasNoSpread(t *testing.T) {
	s := NewSummary()
	s.AddSample(2.5)
	assert.Equal(t, 0.0, s.Variance())
	assert.Equal(t, 0.0, s.StandardDeviation())
	assert.NotContains(t, s.String(), "NaN")
}

func TestEmptySummaryString(t *testing.T) {
	assert.Equal(t, "no samples", NewSummary().String())
}
