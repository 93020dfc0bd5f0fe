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

// Package config loads the display session configuration for the demo
// binary. Durations are plain float seconds in the file, matching the
// label's averaging-window convention (0 = cutoff at now, negative =
// infinite window).
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/value-label/govaluelabel/label"
)

type DisplayConfig struct {
	Suffix      string  `yaml:"suffix"`
	SIPrefix    bool    `yaml:"si_prefix"`
	AverageTime float64 `yaml:"average_time"`
	Format      string  `yaml:"format"`
	Error       bool    `yaml:"error"`
	ErrorType   string  `yaml:"error_type"`
}

type FeedConfig struct {
	// Interval between synthetic measurements, in seconds.
	Interval float64 `yaml:"interval"`
	// Base value around which the feed oscillates.
	Base float64 `yaml:"base"`
	// Noise is the peak amplitude added to Base.
	Noise float64 `yaml:"noise"`
}

type LogConfig struct {
	RecordFile string `yaml:"record_file"`
}

type Config struct {
	Display DisplayConfig `yaml:"display"`
	Feed    FeedConfig    `yaml:"feed"`
	Log     LogConfig     `yaml:"log"`
}

const (
	DefaultFeedInterval = 0.1
	DefaultFeedBase     = 1.0
)

// Default is the configuration used when no file is given: a volt readout
// with a one-second averaging window and a 10 Hz feed.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{Suffix: "V", SIPrefix: true, AverageTime: 1},
		Feed:    FeedConfig{Interval: DefaultFeedInterval, Base: DefaultFeedBase, Noise: 0.05},
	}
}

// Load reads and validates a configuration file, filling in feed defaults
// for omitted fields.
func Load(path string) (*Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read the configuration file %s: %v", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("could not parse the configuration file %s: %v", path, err)
	}
	if cfg.Feed.Interval == 0 {
		cfg.Feed.Interval = DefaultFeedInterval
	}
	if cfg.Feed.Base == 0 {
		cfg.Feed.Base = DefaultFeedBase
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Display.SIPrefix && c.Display.Format != "" {
		return fmt.Errorf("display: format is not compatible with si_prefix")
	}
	if c.Feed.Interval <= 0 {
		return fmt.Errorf("feed: interval (%v) must be positive", c.Feed.Interval)
	}
	if c.Feed.Noise < 0 {
		return fmt.Errorf("feed: noise (%v) must not be negative", c.Feed.Noise)
	}
	return nil
}

// LabelOptions maps the display section onto label construction options.
func (c *DisplayConfig) LabelOptions() label.Options {
	return label.Options{
		Suffix:      c.Suffix,
		SIPrefix:    c.SIPrefix,
		AverageTime: time.Duration(c.AverageTime * float64(time.Second)),
		FormatStr:   c.Format,
		ShowError:   c.Error,
		ErrorType:   label.ParseErrorType(c.ErrorType),
	}
}

// FeedInterval is the measurement cadence as a duration.
func (c *FeedConfig) FeedInterval() time.Duration {
	return time.Duration(c.Interval * float64(time.Second))
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Suffix: %s\nSI prefix: %v\nAverage time: %gs\nFormat: %s\nError: %v (%s)\nFeed: %g ± %g every %gs\n",
		c.Display.Suffix,
		c.Display.SIPrefix,
		c.Display.AverageTime,
		c.Display.Format,
		c.Display.Error,
		c.Display.ErrorType,
		c.Feed.Base,
		c.Feed.Noise,
		c.Feed.Interval,
	)
}
