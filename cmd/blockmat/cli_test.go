// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockmat/layout"
	"github.com/katalvlaran/blockmat/rawalloc"
)

// runCLI executes a fresh command tree and captures stdout and stderr.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()

	return out.String(), errOut.String(), err
}

func TestDemoCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
	}{
		{
			name: "default 3x2 int32",
			args: []string{"demo"},
			wantContain: []string{
				"matrix 3x2 int32 (backend heap)",
				"[0, 1]\n[10, 11]\n[20, 21]\n",
				"flat x2: 0 2 20 22 40 42",
				"round-trip: ok (6 elements)",
				"[0, 2]\n[20, 22]\n[40, 42]\n",
			},
		},
		{
			name:        "float64 with factor 3",
			args:        []string{"demo", "-r", "2", "-c", "2", "-t", "float64", "-f", "3"},
			wantContain: []string{"flat x3: 0 3 30 33", "round-trip: ok (4 elements)"},
		},
		{
			name:    "zero rows",
			args:    []string{"demo", "--rows", "0"},
			wantErr: true,
		},
		{
			name:    "unsupported type",
			args:    []string{"demo", "--type", "complex128"},
			wantErr: true,
		},
		{
			name:    "unknown backend",
			args:    []string{"demo", "--backend", "gpu"},
			wantErr: true,
		},
		{
			name:    "budget too small",
			args:    []string{"demo", "--budget", "16"},
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := runCLI(t, tc.args...)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tc.wantContain {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestDemoCommandJSON(t *testing.T) {
	out, _, err := runCLI(t, "demo", "--json", "--type", "uint8")
	require.NoError(t, err)

	var got struct {
		Rows int       `json:"rows"`
		Type string    `json:"type"`
		Flat []float64 `json:"flat"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, 3, got.Rows)
	require.Equal(t, "uint8", got.Type)
	require.Equal(t, []float64{0, 2, 20, 22, 40, 42}, got.Flat)
}

func TestDemoCommandVerbose(t *testing.T) {
	_, stderr, err := runCLI(t, "demo", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "matrix: region allocated")
	assert.Contains(t, stderr, "matrix: region released")
	assert.Contains(t, stderr, "releases=1")
}

func TestDemoCommandMmap(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" && runtime.GOOS != "freebsd" {
		t.Skip("mmap backend not available")
	}
	out, _, err := runCLI(t, "demo", "--backend", "mmap")
	require.NoError(t, err)
	assert.Contains(t, out, "flat x2: 0 2 20 22 40 42")
}

func TestPlanCommand(t *testing.T) {
	out, _, err := runCLI(t, "plan", "--rows", "1000", "--cols", "1000", "--type", "float64")
	require.NoError(t, err)

	p, err := layout.New(1000, 1000, 8, 8)
	require.NoError(t, err)
	assert.Contains(t, out, "layout 1000x1000 float64")
	assert.Contains(t, out, "data      : 8,000,000 bytes (1,000,000 elements)")
	assert.Contains(t, out, "base align: 8")
	assert.Equal(t, uintptr(8_000_000)+p.RowTableBytes, p.TotalBytes)
}

func TestPlanCommandJSON(t *testing.T) {
	out, _, err := runCLI(t, "plan", "--json", "-r", "3", "-c", "2", "-t", "complex128")
	require.NoError(t, err)

	var rep planReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 3, rep.Rows)
	assert.Equal(t, uintptr(6), rep.Elements)
	assert.Equal(t, uintptr(96), rep.DataBytes)
	assert.Equal(t, rep.RowTableBytes+rep.PaddingBytes, rep.DataOffset)
	assert.Equal(t, rep.DataOffset+rep.DataBytes, rep.TotalBytes)
}

func TestPlanCommandErrors(t *testing.T) {
	_, _, err := runCLI(t, "plan", "--type", "string")
	require.ErrorContains(t, err, "unknown element type")

	_, _, err = runCLI(t, "plan", "--cols", "0")
	require.ErrorIs(t, err, layout.ErrInvalidDimensions)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "blockmat dev")
}

var errStuckRelease = errors.New("release refused")

// stuckRelease allocates from the heap but refuses every Release.
type stuckRelease struct{}

func (stuckRelease) Allocate(size, align uintptr) ([]byte, error) {
	return rawalloc.Default().Allocate(size, align)
}

func (stuckRelease) Release([]byte) error { return errStuckRelease }

// TestDemoSurfacesReleaseError reports a failed Release even when the demo itself succeeded.
func TestDemoSurfacesReleaseError(t *testing.T) {
	g := &globalOptions{backend: backendHeap}
	o := &demoOptions{shapeOptions: shapeOptions{rows: 3, cols: 2, elem: "int32"}, factor: 2}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var out bytes.Buffer
	err := demo[int32](&out, g, o, stuckRelease{}, logger)
	require.ErrorIs(t, err, errStuckRelease)
	require.Contains(t, out.String(), "round-trip: ok (6 elements)")
}
