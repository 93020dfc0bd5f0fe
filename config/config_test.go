package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/value-label/govaluelabel/label"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "display.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
display:
  suffix: V
  average_time: 2.5
  error: true
  error_type: stdDev
feed:
  interval: 0.25
  base: 3.3
  noise: 0.1
log:
  record_file: session.csv
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "V", cfg.Display.Suffix)
	assert.Equal(t, 2.5, cfg.Display.AverageTime)
	assert.True(t, cfg.Display.Error)
	assert.Equal(t, "session.csv", cfg.Log.RecordFile)
	assert.Equal(t, 250*time.Millisecond, cfg.Feed.FeedInterval())

	opts := cfg.Display.LabelOptions()
	assert.Equal(t, 2500*time.Millisecond, opts.AverageTime)
	assert.Equal(t, label.ErrorStdDev, opts.ErrorType)
}

func TestLoadFillsFeedDefaults(t *testing.T) {
	path := writeConfig(t, `
display:
  suffix: A
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultFeedInterval, cfg.Feed.Interval)
	assert.Equal(t, DefaultFeedBase, cfg.Feed.Base)
}

func TestLoadRejectsFormatWithSIPrefix(t *testing.T) {
	path := writeConfig(t, `
display:
  si_prefix: true
  format: "{avgValue:.3g} {suffix}"
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "not compatible")
}

func TestLoadRejectsNegativeNoise(t *testing.T) {
	path := writeConfig(t, `
feed:
  noise: -1
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "noise")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestNegativeAverageTimeMeansInfiniteWindow(t *testing.T) {
	cfg := Default()
	cfg.Display.AverageTime = -1
	assert.Equal(t, -1*time.Second, cfg.Display.LabelOptions().AverageTime)
}

func TestUnknownErrorTypeFallsBackToAvg(t *testing.T) {
	cfg := Default()
	cfg.Display.ErrorType = "median"
	assert.Equal(t, label.ErrorAvg, cfg.Display.LabelOptions().ErrorType)
}
