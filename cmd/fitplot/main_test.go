package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bensuk23/Optimisation/internal/chart"
	"github.com/bensuk23/Optimisation/internal/fitlog"
)

// layout creates root/project/plots as the installation directory; logs are
// expected in root.
func layout(t *testing.T) (root, base string) {
	t.Helper()
	root = t.TempDir()
	base = filepath.Join(root, "project", "plots")
	require.NoError(t, os.MkdirAll(base, 0o755))
	return root, base
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func converging(n int) string {
	var b strings.Builder
	b.WriteString("Generation,MaxFitness,AvgFitness\n")
	best := 0.05
	for i := 0; i < n; i++ {
		best = min(best*1.08, 4)
		fmt.Fprintf(&b, "%d,%.6f,%.6f\n", i%7, best, best/2)
	}
	return b.String()
}

func TestRunRendersChart(t *testing.T) {
	root, base := layout(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "ga_progression_log.csv"), []byte(converging(50)), 0o644))

	out, _, err := execute(t, "", "ga", "--base-dir", base)
	require.NoError(t, err)
	assert.Contains(t, out, "Visualizing results for GA")
	assert.Contains(t, out, "Chart saved")

	info, err := os.Stat(filepath.Join(base, "ga_fitness_progression_finale.png"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunPromptsForSolver(t *testing.T) {
	root, base := layout(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "neat_progression_log_complet.csv"), []byte(converging(10)), 0o644))

	out, _, err := execute(t, "maybe\nneat\n", "--base-dir", base, "--preview", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid choice")
	assert.Contains(t, out, "Last 3 generations")
	assert.FileExists(t, filepath.Join(base, "neat_fitness_progression_finale.png"))
}

func TestRunMissingLog(t *testing.T) {
	_, base := layout(t)

	_, _, err := execute(t, "", "neat", "--base-dir", base)
	var nf *fitlog.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, exitNotFound, exitCode(err))
	assert.NoFileExists(t, filepath.Join(base, "neat_fitness_progression_finale.png"))

	var msg bytes.Buffer
	report(&msg, err)
	lines := strings.Split(strings.TrimRight(msg.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "error: progression log not found"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "hint: run the NEAT"), lines[1])
	assert.Contains(t, lines[1], nf.Path)
}

func TestReportWithoutHint(t *testing.T) {
	var msg bytes.Buffer
	report(&msg, &fitlog.EmptyDatasetError{Path: "x.csv"})
	assert.NotContains(t, msg.String(), "hint")
	assert.True(t, strings.HasPrefix(msg.String(), "error: "))
}

func TestRunEmptyLog(t *testing.T) {
	root, base := layout(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "ga_progression_log.csv"), []byte("Generation,MaxFitness,AvgFitness\n"), 0o644))

	_, _, err := execute(t, "", "ga", "--base-dir", base)
	assert.Equal(t, exitEmpty, exitCode(err))
	assert.NoFileExists(t, filepath.Join(base, "ga_fitness_progression_finale.png"))
}

func TestRunOverridesAndExport(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "custom.csv")
	png := filepath.Join(dir, "custom.png")
	xlsx := filepath.Join(dir, "custom.xlsx")
	cfgPath := filepath.Join(dir, "fitplot.toml")
	require.NoError(t, os.WriteFile(in, []byte(converging(20)), 0o644))
	require.NoError(t, os.WriteFile(cfgPath, []byte("preview_rows = 0\n[chart]\nwidth_in = 5\nheight_in = 3\n"), 0o644))

	out, _, err := execute(t, "", "GA", "--config", cfgPath, "--base-dir", dir,
		"--input", in, "--output", png, "--xlsx", xlsx)
	require.NoError(t, err)
	assert.NotContains(t, out, "Last")
	assert.FileExists(t, png)
	assert.FileExists(t, xlsx)
}

func TestRunRenderFailure(t *testing.T) {
	root, base := layout(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "ga_progression_log.csv"), []byte(converging(5)), 0o644))

	_, _, err := execute(t, "", "ga", "--base-dir", base, "--output", filepath.Join(root, "nowhere", "c.png"))
	assert.Equal(t, exitRender, exitCode(err))
}

func TestRunNoSelection(t *testing.T) {
	_, base := layout(t)
	_, _, err := execute(t, "", "--base-dir", base)
	assert.Error(t, err)
	assert.Equal(t, exitUsage, exitCode(err))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, exitOK},
		{&fitlog.NotFoundError{Path: "x"}, exitNotFound},
		{fmt.Errorf("wrapped: %w", &fitlog.EmptyDatasetError{}), exitEmpty},
		{&fitlog.LoadError{Err: errors.New("bad")}, exitLoad},
		{&chart.RenderError{Err: errors.New("ro")}, exitRender},
		{&exportError{err: errors.New("disk")}, exitExport},
		{errors.New("flag"), exitUsage},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, exitCode(tt.err), "%v", tt.err)
	}
}
