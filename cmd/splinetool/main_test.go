package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCurve(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestRun_Samples(t *testing.T) {
	path := writeCurve(t, "line.yaml", "points: [[0, 0], [3, 4], [3, 10]]\ncurvature: 0\n")
	var out bytes.Buffer
	require.NoError(t, run([]string{"-n", "1", path}, &out))
	assert.Equal(t, "0.0000 0.0000 0.0000\n11.0000 3.0000 10.0000\n", out.String())
}

func TestRun_Table(t *testing.T) {
	path := writeCurve(t, "line.toml", "points = [[0.0, 0.0], [4.0, 0.0]]\ncurvature = 0.0\nsamples_per_segment = 2\n")
	var out bytes.Buffer
	require.NoError(t, run([]string{"-format", "table", "-precision", "2", path}, &out))
	assert.Equal(t, "0.00 0.00\n0.50 2.00\n1.00 4.00\n", out.String())
}

func TestRun_SVG(t *testing.T) {
	path := writeCurve(t, "line.json", `{"points": [[0, 0], [3, 0]]}`)
	var out bytes.Buffer
	require.NoError(t, run([]string{"-format", "svg", path}, &out))
	assert.Equal(t, "M0,0 C0.5,0 2.5,0 3,0\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	path := writeCurve(t, "line.yaml", "points: [[0, 0], [3, 4]]\n")
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"no file", nil, "expected exactly one curve file"},
		{"unknown format", []string{"-format", "png", path}, "unknown output format"},
		{"bad sample count", []string{"-n", "0", path}, "at least 1"},
		{"negative precision", []string{"-precision", "-1", path}, "precision"},
		{"missing file", []string{"/nonexistent/curve.yaml"}, "failed to open curve file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestRun_ZeroPrecision(t *testing.T) {
	path := writeCurve(t, "line.yaml", "points: [[0, 0], [4, 0]]\ncurvature: 0.5\nsamples_per_segment: 2\n")

	var table bytes.Buffer
	require.NoError(t, run([]string{"-format", "table", "-precision", "0", path}, &table))
	assert.Equal(t, "0 0\n0.5 2\n1 4\n", table.String())

	var svg bytes.Buffer
	require.NoError(t, run([]string{"-format", "svg", "-precision", "0", path}, &svg))
	assert.Equal(t, "M0,0 C0.6666666666666666,0 3.3333333333333335,0 4,0\n", svg.String())
}
