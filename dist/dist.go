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

// Package dist summarizes every value a label has ever displayed,
// independent of the label's averaging window.
package dist

import (
	"fmt"
	"math"

	"github.com/influxdata/tdigest"
)

// Summary is a running sketch of a full display session: exact count, sum
// and sum of squares plus a t-digest for the quantiles. Unlike the label's
// sample buffer it never forgets.
type Summary struct {
	empiricalDistribution *tdigest.TDigest
	numberOfSamples       int64
	sum                   float64
	sumOfSquares          float64
	minimum               float64
	maximum               float64
}

func NewSummary() *Summary {
	return &Summary{
		empiricalDistribution: tdigest.NewWithCompression(50),
	}
}

func (s *Summary) AddSample(value float64) {
	s.numberOfSamples++
	if s.numberOfSamples == 1 || value < s.minimum {
		s.minimum = value
	}
	if s.numberOfSamples == 1 || value > s.maximum {
		s.maximum = value
	}
	s.sum += value
	s.sumOfSquares += value * value
	s.empiricalDistribution.Add(value, 1)
}

func (s *Summary) Count() int64 {
	return s.numberOfSamples
}

func (s *Summary) Average() float64 {
	return s.sum / float64(s.numberOfSamples)
}

// Variance is the sample variance. Fewer than two samples have no spread to
// estimate, so the variance is 0 rather than a division by n-1 == 0.
func (s *Summary) Variance() float64 {
	if s.numberOfSamples < 2 {
		return 0
	}
	n := float64(s.numberOfSamples)
	return (s.sumOfSquares - (s.sum * s.sum / n)) / (n - 1)
}

func (s *Summary) StandardDeviation() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Summary) Percentile(percentile float64) float64 {
	return s.empiricalDistribution.Quantile(percentile / 100)
}

func (s *Summary) Median() float64 {
	return s.Percentile(50.0)
}

func (s *Summary) Minimum() float64 {
	return s.minimum
}

func (s *Summary) Maximum() float64 {
	return s.maximum
}

// Merge folds other into s. Both summaries must describe the same quantity
// for the result to mean anything.
func (s *Summary) Merge(other *Summary) {
	for _, centroid := range other.empiricalDistribution.Centroids(nil) {
		s.empiricalDistribution.Add(centroid.Mean, centroid.Weight)
	}
	if other.numberOfSamples > 0 {
		if s.numberOfSamples == 0 || other.minimum < s.minimum {
			s.minimum = other.minimum
		}
		if s.numberOfSamples == 0 || other.maximum > s.maximum {
			s.maximum = other.maximum
		}
	}
	s.numberOfSamples += other.numberOfSamples
	s.sum += other.sum
	s.sumOfSquares += other.sumOfSquares
}

func (s *Summary) String() string {
	if s.numberOfSamples == 0 {
		return "no samples"
	}
	return fmt.Sprintf(
		"n: %d, average: %.6g, stddev: %.6g, median: %.6g, p95: %.6g, minimum: %.6g, maximum: %.6g",
		s.numberOfSamples,
		s.Average(),
		s.StandardDeviation(),
		s.Median(),
		s.Percentile(95.0),
		s.minimum,
		s.maximum,
	)
}
