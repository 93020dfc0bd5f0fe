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

package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/value-label/govaluelabel/config"
	"github.com/value-label/govaluelabel/datalogger"
	"github.com/value-label/govaluelabel/debug"
	"github.com/value-label/govaluelabel/dist"
	"github.com/value-label/govaluelabel/label"
	"github.com/value-label/govaluelabel/timeoutat"
)

var (
	// Variables to hold CLI arguments.
	configFileName = flag.String("config", "", "path to a display configuration file; built-in defaults are used when empty.")
	sessionLength  = flag.Int("duration", 10, "length of the display session in seconds.")
	debugCliFlag   = flag.Bool("debug", false, "Enable debugging.")
	recordFileName = flag.String("record", "", "record every displayed sample in this CSV file (overrides the configuration file).")

	// The terminal repaints at a fixed cadence, independent of how often
	// samples arrive.
	repaintInterval = 50 * time.Millisecond
)

type displayRecord struct {
	Elapsed string  `Description:"time"`
	Value   float64 `Description:"value"`
	Error   float64 `Description:"error"`
	Text    string  `Description:"text"`
}

func main() {
	flag.Parse()

	debugLevel := debug.Error
	if *debugCliFlag {
		debugLevel = debug.Debug
	}
	feederDebug := debug.NewDebugWithPrefix(debugLevel, "feeder")

	cfg := config.Default()
	if *configFileName != "" {
		loaded, err := config.Load(*configFileName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if debug.IsDebug(debugLevel) {
		fmt.Printf("Using the following display configuration:\n%v", cfg)
	}

	summary := dist.NewSummary()
	valueLabel := label.New(cfg.Display.LabelOptions())
	valueLabel.TrackDistribution(summary)

	dirty := false
	valueLabel.OnRepaintRequest(func() { dirty = true })

	recorder := datalogger.CreateNullDataLogger[displayRecord]()
	recordPath := cfg.Log.RecordFile
	if *recordFileName != "" {
		recordPath = *recordFileName
	}
	if recordPath != "" {
		created, err := datalogger.CreateCSVDataLogger[displayRecord](recordPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		recorder = created
	}

	ctx, cancel := context.WithCancel(context.Background())
	sessionStart := time.Now()
	timeoutChannel := timeoutat.TimeoutAt(
		ctx,
		sessionStart.Add(time.Duration(*sessionLength)*time.Second),
		debugLevel,
	)

	feedTicker := time.NewTicker(cfg.Feed.FeedInterval())
	repaintTicker := time.NewTicker(repaintInterval)

session:
	for {
		select {
		case <-timeoutChannel:
			break session
		case <-feedTicker.C:
			value := cfg.Feed.Base + cfg.Feed.Noise*(2*rand.Float64()-1)
			uncertainty := cfg.Feed.Noise * rand.Float64()
			valueLabel.SetValueError(value, uncertainty)
			recorder.LogRecord(displayRecord{
				Elapsed: fmt.Sprintf("%.3f", time.Since(sessionStart).Seconds()),
				Value:   value,
				Error:   uncertainty,
				Text:    valueLabel.Text(),
			})
			feederDebug.Printf(os.Stdout, "fed %v (±%v) at %v\n", value, uncertainty, time.Since(sessionStart))
		case <-repaintTicker.C:
			if !dirty {
				continue
			}
			// Clear the line and repaint; the label recomputes its text
			// from the buffer as part of the paint itself.
			fmt.Printf("\r\033[K")
			if err := valueLabel.Paint(os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to paint the label: %v\n", err)
				break session
			}
			dirty = false
		}
	}
	cancel()
	feedTicker.Stop()
	repaintTicker.Stop()

	fmt.Printf("\nSession summary: %v\n", summary)

	if err := recorder.Export(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to export the session records: %v\n", err)
	}
	if err := recorder.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to close the session recorder: %v\n", err)
	}
}
