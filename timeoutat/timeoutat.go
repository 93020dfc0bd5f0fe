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

package timeoutat

import (
	"context"
	"fmt"
	"time"

	"github.com/value-label/govaluelabel/debug"
)

// TimeoutAt signals on the returned channel when the wall clock reaches
// when, or earlier if ctx is cancelled.
func TimeoutAt(
	ctx context.Context,
	when time.Time,
	debugLevel debug.DebugLevel,
) (response chan interface{}) {
	response = make(chan interface{})
	go func() {
		if debug.IsDebug(debugLevel) {
			fmt.Printf("Timeout expected to end at %v\n", when)
		}
		select {
		case <-time.After(time.Until(when)):
		case <-ctx.Done():
		}
		response <- struct{}{}
		if debug.IsDebug(debugLevel) {
			fmt.Printf("Timeout ended at %v\n", time.Now())
		}
	}()
	return
}
