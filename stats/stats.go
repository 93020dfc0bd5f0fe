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

package stats

import (
	"math"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Float | constraints.Integer
}

// Average of elements. An empty slice yields NaN (0/0) -- callers that
// cannot tolerate NaN must check for emptiness themselves.
func Average[T Number](elements []T) float64 {
	total := T(0)
	for i := 0; i < len(elements); i++ {
		total += elements[i]
	}
	return float64(total) / float64(len(elements))
}

// StandardDeviation calculates the population standard deviation of elements.
func StandardDeviation[T Number](elements []T) float64 {
	// From https://www.mathsisfun.com/data/standard-deviation-calculator.html
	// Yes, for real!

	// Calculate the average of the numbers ...
	average := Average(elements)

	// Accumulate the squares of each of the elements' differences from
	// the mean.
	sds := float64(0)
	for _, value := range elements {
		sds += math.Pow(float64(value)-average, 2)
	}

	// The variance is the average of the squared differences ...
	variance := sds / float64(len(elements))

	// ... and the standard deviation is the square root of the variance.
	return math.Sqrt(variance)
}

// StandardError is the population standard deviation scaled by the square
// root of the number of elements.
func StandardError[T Number](elements []T) float64 {
	return StandardDeviation(elements) / math.Sqrt(float64(len(elements)))
}

// Maximum of elements; the zero value of T when elements is empty.
func Maximum[T Number](elements []T) T {
	maximum := T(0)
	for i, value := range elements {
		if i == 0 || value > maximum {
			maximum = value
		}
	}
	return maximum
}
