package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/gokatas/katas/internal/config"
	"github.com/gokatas/katas/internal/menu"
)

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "katas.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRoot_CookingThenQuit(t *testing.T) {
	out, err := execute(t, "1\n0\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Lasagna\nTime: 10\npreparationTime: 4\ntotal time: 26\n")
}

func TestRoot_ImmediateQuitPrintsNoResults(t *testing.T) {
	out, err := execute(t, "99\n")
	require.NoError(t, err)
	assert.NotContains(t, out, "Lasagna\n")
	assert.NotContains(t, out, "canSpy")
}

func TestRoot_MalformedSelectionFails(t *testing.T) {
	_, err := execute(t, "two\n")
	require.ErrorIs(t, err, menu.ErrMalformedSelection)
}

func TestRoot_ConfigFixtures(t *testing.T) {
	path := writeConfig(t, `
log_level: error
cooking:
  remaining_elapsed_minutes: 35
infiltration:
  free_prisoner:
    dog_present: true
`)
	out, err := execute(t, "1 2 0", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Time: 5\n")
	assert.Contains(t, out, "canFreePrisoner: true\n")
}

func TestRoot_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "log_level: loud\n")
	_, err := execute(t, "0", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestRoot_WatchWithoutConfigIsIgnored(t *testing.T) {
	_, err := execute(t, "0", "--watch")
	require.NoError(t, err)
}

func TestRoot_WatchWithConfigStopsOnQuit(t *testing.T) {
	path := writeConfig(t, "log_level: error\n")
	out, err := execute(t, "1 0", "--config", path, "--watch")
	require.NoError(t, err)
	assert.Contains(t, out, "Time: 10\n")
}

func TestMetricsOutThenStats(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "session.prom")

	_, err := execute(t, "1 2 2 0", "--metrics-out", metricsPath)
	require.NoError(t, err)

	out, err := execute(t, "", "stats", metricsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "session ")
	assert.Contains(t, out, "selections cooking: 1\n")
	assert.Contains(t, out, "selections infiltration: 2\n")
	assert.Contains(t, out, "selections quit: 1\n")
	assert.Contains(t, out, "canSpy: true=2 false=0\n")
	assert.Contains(t, out, "canFastAttack: true=0 false=2\n")
	assert.Contains(t, out, "last total minutes: 26\n")
}

func TestMetricsWrittenOnMalformedInput(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "session.prom")
	path := writeConfig(t, "metrics_path: "+metricsPath+"\n")

	_, err := execute(t, "1 x", "--config", path)
	require.ErrorIs(t, err, menu.ErrMalformedSelection)

	_, statErr := os.Stat(metricsPath)
	assert.NoError(t, statErr)
}

func TestStats_MissingFile(t *testing.T) {
	_, err := execute(t, "", "stats", filepath.Join(t.TempDir(), "absent.prom"))
	assert.Error(t, err)
}

func TestStats_RequiresOneArg(t *testing.T) {
	_, err := execute(t, "", "stats")
	assert.Error(t, err)
}

func TestFixturesCmd_PrintsEffectiveYAML(t *testing.T) {
	path := writeConfig(t, "cooking:\n  total_layers: 7\n")
	out, err := execute(t, "", "fixtures", "--config", path)
	require.NoError(t, err)

	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Fixtures.Cooking.TotalLayers)
	assert.Equal(t, config.DefaultPreparationLayers, cfg.Fixtures.Cooking.PreparationLayers)
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger("bogus", false)
	assert.Error(t, err)

	l, err := newLogger("error", true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel), "verbose enables debug")
}
