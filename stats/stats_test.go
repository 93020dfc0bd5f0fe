package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverage(t *testing.T) {
	assert.Equal(t, 2.0, Average([]float64{1, 2, 3}))
	assert.Equal(t, 2.5, Average([]int{2, 3}))
}

func TestAverageOfNothingIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(Average([]float64{})))
}

func TestStandardDeviation(t *testing.T) {
	// Population standard deviation of 1, 2, 3 is sqrt(2/3).
	assert.InEpsilon(t, 0.816496580927726, StandardDeviation([]float64{1, 2, 3}), 0.000001)
}

func TestStandardDeviationOfConstantIsZero(t *testing.T) {
	assert.Equal(t, 0.0, StandardDeviation([]float64{4, 4, 4, 4}))
}

func TestStandardError(t *testing.T) {
	assert.InEpsilon(t, 0.4714045207910317, StandardError([]float64{1, 2, 3}), 0.000001)
}

func TestMaximum(t *testing.T) {
	assert.Equal(t, 0.5, Maximum([]float64{0.1, 0.5, 0.2}))
	assert.Equal(t, -1.0, Maximum([]float64{-3, -1, -2}))
	assert.Equal(t, 0.0, Maximum([]float64{}))
}
