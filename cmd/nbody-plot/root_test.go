package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunRendersNonEmptyPNG(t *testing.T) {
	scenarioPath := filepath.Join(t.TempDir(), "scenario.json")
	const doc = `{"bodies":[
		{"id":0,"name":"A","mass":1e6,"position":[1,0],"velocity":[0,0.01],"type":"Star"},
		{"id":1,"name":"B","mass":1e6,"position":[-1,0],"velocity":[0,-0.01],"type":"Planet"}
	]}`
	require.NoError(t, os.WriteFile(scenarioPath, []byte(doc), 0o644))

	outPath := filepath.Join(t.TempDir(), "snapshot.png")
	opts := &plotOptions{
		file:       scenarioPath,
		out:        outPath,
		iterations: 5,
		delta:      1.0,
		theta:      0.5,
		twoD:       true,
		boxes:      true,
	}

	require.NoError(t, run(opts))

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestRunRejectsMissingFile(t *testing.T) {
	opts := &plotOptions{file: "/nonexistent/path.json", out: filepath.Join(t.TempDir(), "out.png"), twoD: true}
	err := run(opts)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "opening"))
}
