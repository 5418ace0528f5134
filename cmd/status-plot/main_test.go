package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/status-plot/internal/apperr"
	"github.com/iwvelando/status-plot/internal/render"
	"github.com/iwvelando/status-plot/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cmdResult struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, stdin string, args ...string) cmdResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func decodePNGSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestPlotCommand(t *testing.T) {
	input := testutil.WriteLog(t, testutil.SampleLog)
	output := filepath.Join(t.TempDir(), "chart.png")

	res := execute(t, "", input, output, "-w", "320", "-h", "240", "-m", "5", "-r", "3")
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)

	w, h := decodePNGSize(t, output)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestPlotCommandDefaultsFromStdin(t *testing.T) {
	output := filepath.Join(t.TempDir(), "chart.png")

	res := execute(t, testutil.SampleLog, output)
	require.NoError(t, res.err)

	w, h := decodePNGSize(t, output)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestPlotCommandSVG(t *testing.T) {
	output := filepath.Join(t.TempDir(), "chart.svg")

	res := execute(t, "3.0,0\n", output)
	require.NoError(t, res.err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestPlotCommandUnknownExtension(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "status-plot.log")

	res := execute(t, "1.0,0\n", "chart.txt", "--log-file", logFile)
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, render.ErrUnknownExtension)

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "format")
}

func TestPlotCommandEmptyInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "chart.png")
	logFile := filepath.Join(dir, "status-plot.log")

	res := execute(t, "", output, "--log-file", logFile)
	require.NoError(t, res.err)

	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err))

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "given data log is empty: <stdin>")
}

func TestPlotCommandParseError(t *testing.T) {
	input := testutil.WriteLog(t, "1.0,0\n1.0,5\n")
	output := filepath.Join(t.TempDir(), "chart.png")

	res := execute(t, "", input, output, "--log-file", filepath.Join(t.TempDir(), "log"))
	require.Error(t, res.err)
	assert.True(t, apperr.IsKind(res.err, apperr.KindParse))
	assert.Contains(t, res.err.Error(), "unknown status value 5")
}

func TestPlotCommandConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("render:\n  width: 200\n  height: 150\n"), 0o644))
	output := filepath.Join(dir, "chart.png")

	res := execute(t, testutil.SampleLog, output, "--config", configPath, "-w", "180")
	require.NoError(t, res.err)

	w, h := decodePNGSize(t, output)
	assert.Equal(t, 180, w, "flag overrides config file")
	assert.Equal(t, 150, h)
}

func TestPlotCommandMissingConfig(t *testing.T) {
	res := execute(t, "", "chart.png", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, res.err)
	assert.True(t, apperr.IsKind(res.err, apperr.KindConfig))
	assert.Contains(t, res.stderr, "failed to load configuration")
}

func TestPlotCommandInvalidRenderConfig(t *testing.T) {
	res := execute(t, "1.0,0\n", filepath.Join(t.TempDir(), "chart.png"),
		"-w", "0", "--log-file", filepath.Join(t.TempDir(), "log"))
	require.Error(t, res.err)
	assert.True(t, apperr.IsKind(res.err, apperr.KindConfig))
}

func TestPlotCommandIgnoresStatsFormat(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output:\n  format: xml\n"), 0o644))
	output := filepath.Join(dir, "chart.png")

	res := execute(t, testutil.SampleLog, output, "--config", configPath)
	require.NoError(t, res.err)

	_, err := os.Stat(output)
	assert.NoError(t, err)
}

func TestPlotCommandUsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"No output", nil, "accepts between 1 and 2 arg(s)"},
		{"Too many positionals", []string{"a.csv", "b.png", "c.png"}, "accepts between 1 and 2 arg(s)"},
		{"Unknown flag", []string{"--bogus", "out.png"}, "unknown flag: --bogus"},
		{"Bad flag value", []string{"-w", "abc", "out.png"}, "invalid argument"},
		{"Stats extra positional", []string{"stats", "a.csv", "b.csv"}, "accepts at most 1 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, "", tt.args...)
			require.Error(t, res.err)
			assert.Contains(t, res.stderr, tt.message)
			assert.Contains(t, res.stderr, "Usage:")
		})
	}
}

func TestHelpFlag(t *testing.T) {
	res := execute(t, "", "--help")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "--height")
	assert.Contains(t, res.stdout, "stats")
}

func TestStatsCommand(t *testing.T) {
	input := testutil.WriteLog(t, testutil.SampleLog)

	res := execute(t, "", "stats", input, "-f", "csv")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `"Timeout","2","0.56"`)
	assert.Contains(t, res.stdout, `"total","7","0.8"`)
}

func TestStatsCommandStdinYAML(t *testing.T) {
	res := execute(t, "1.5,1\n", "stats", "--format", "yaml")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "records: 1")
}

func TestStatsCommandBadFormat(t *testing.T) {
	res := execute(t, "1.5,1\n", "stats", "--format", "xml", "--log-file", filepath.Join(t.TempDir(), "log"))
	require.Error(t, res.err)
	assert.True(t, apperr.IsKind(res.err, apperr.KindConfig))
}
