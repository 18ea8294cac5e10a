package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/complabel/config"
)

// execute runs the root command with args and returns stdout and log output.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetIn(strings.NewReader(stdin))

	err := root.ExecuteContext(context.Background())

	return out.String(), logs.String(), err
}

func TestRoot_SeededRun(t *testing.T) {
	out, logs, err := execute(t, "", "--seed", "7", "--dimension", "6", "--no-color", "--verify")
	require.NoError(t, err)

	for _, want := range []string{
		"Depth First Search Grid:",
		"Breadth First Search Grid:",
		"Running Depth First Search . . .",
		"Resulting Grid (dfs):",
		"Resulting Grid (bfs):",
		"Verified:",
	} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, logs, "seed=7")
	assert.Contains(t, logs, "dimension=6")
}

func TestRoot_Deterministic(t *testing.T) {
	a, _, err := execute(t, "", "--seed", "99", "--no-color")
	require.NoError(t, err)
	b, _, err := execute(t, "", "--seed", "99", "--no-color")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// Two generated and two labeled grids, one line per interior row.
	rows := 0
	for _, line := range strings.Split(a, "\n") {
		if strings.Count(line, ",") == config.DefaultDimension {
			rows++
		}
	}
	assert.Equal(t, 4*config.DefaultDimension, rows)
}

func TestRoot_OutOfRangeFallsBack(t *testing.T) {
	_, logs, err := execute(t, "", "--seed", "1", "--dimension", "50", "--density", "1.5", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, logs, "field=dimension")
	assert.Contains(t, logs, "field=density")
	assert.Contains(t, logs, "dimension=15")
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, os.WriteFile(path, []byte("dimension = 5\nseed = 3\ncolor = false\n"), 0o600))

	out, logs, err := execute(t, "", "--config", path, "--density", "0.5")
	require.NoError(t, err)
	assert.Contains(t, logs, "dimension=5")
	assert.Contains(t, logs, "density=0.5")
	assert.Contains(t, logs, "seed=3")
	assert.NotContains(t, out, "\x1b[")

	_, _, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestRoot_Interactive(t *testing.T) {
	out, logs, err := execute(t, "maybe\nn\n3\n8\nabc\n0.4\n", "-i", "--seed", "5", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Accepted Values\nDimension: 8\nDensity: 0.40\n")
	assert.Contains(t, logs, "dimension=8")
}

func TestRoot_Verbose(t *testing.T) {
	_, logs, err := execute(t, "", "-v", "--seed", "11", "--density", "0.5", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, logs, "component seed")
	assert.Contains(t, logs, "strategy=dfs")
	assert.Contains(t, logs, "strategy=bfs")
}

func TestRoot_Version(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "complabel dev\n", out)

	_, _, err = execute(t, "", "extra-arg")
	assert.Error(t, err)
}

func TestRun_Canceled(t *testing.T) {
	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	ctx, cancel := context.WithCancel(withLogger(context.Background(), c.Logger))
	cancel()

	cfg := config.Default()
	cfg.Seed = 2
	cfg.Density = 0.5
	err := c.run(ctx, cfg, &out)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoggerFromContext(t *testing.T) {
	assert.Equal(t, log.Default(), loggerFromContext(context.Background()))

	var buf bytes.Buffer
	l := newLogger(&buf, log.DebugLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))

	sw := startStopwatch(l)
	time.Sleep(time.Millisecond)
	elapsed := sw.stop("finished", 500, "k", 1)
	assert.GreaterOrEqual(t, elapsed, time.Millisecond)
	assert.Contains(t, buf.String(), "finished")
	assert.Contains(t, buf.String(), "cells=500")
	assert.Contains(t, buf.String(), "elapsed=")
	assert.Contains(t, buf.String(), "cells_per_ms=")
}
