package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gravsim/nbody/body"
	"github.com/gravsim/nbody/simcore"
	"github.com/gravsim/nbody/vecn"
	"github.com/stretchr/testify/require"
)

func TestRunAndTraceWritesOneRowPerStep(t *testing.T) {
	w := simcore.New(2, simcore.WithTheta(0), simcore.WithCullFactor(0))
	b0 := body.New(0, 2)
	copy(b0.Position, vecn.Vec{1, 0})
	b0.Mass = 1
	require.NoError(t, w.Load([]*body.Body{b0}))

	var buf bytes.Buffer
	require.NoError(t, runAndTrace(w, 3, 1.0, 2, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		// time,x0,y0 for one body in 2D.
		require.Len(t, strings.Split(line, ","), 3)
	}
}
