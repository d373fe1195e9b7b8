package scenario

import (
	"errors"
	"strings"
	"testing"

	"github.com/gravsim/nbody/body"
	"github.com/stretchr/testify/require"
)

func TestLoadValidScenario(t *testing.T) {
	const doc = `{"bodies":[
		{"id":0,"name":"Earth","mass":5.972e24,"radius":6.371e6,
		 "position":[0,0,0],"velocity":[0,0,0],"type":"Planet"},
		{"id":1,"name":"Moon","mass":7.342e22,"radius":1.737e6,
		 "position":[3.84e8,0,0],"velocity":[0,1022,0],"type":"Comet",
		 "color":[0.5,0.5,0.5,1]}
	]}`

	bodies, err := Load(strings.NewReader(doc), 3)
	require.NoError(t, err)
	require.Len(t, bodies, 2)
	require.Equal(t, "Earth", bodies[0].Name)
	require.Equal(t, body.Planet, bodies[0].Kind)
	require.Equal(t, body.Comet, bodies[1].Kind)
	require.Equal(t, 1.0, bodies[1].Color.A)
}

func TestLoadUnknownKindFails(t *testing.T) {
	const doc = `{"bodies":[{"id":0,"mass":1,"position":[0,0],"velocity":[0,0],"type":"Spaceship"}]}`
	_, err := Load(strings.NewReader(doc), 2)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownKind))
}

func TestLoadDimensionMismatchFails(t *testing.T) {
	const doc = `{"bodies":[{"id":0,"mass":1,"position":[0,0,0],"velocity":[0,0,0]}]}`
	_, err := Load(strings.NewReader(doc), 2)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDimMismatch))
}

func TestLoadMalformedJSONFails(t *testing.T) {
	_, err := Load(strings.NewReader(`{not json`), 2)
	require.Error(t, err)
}

func TestLoadDefaultsColorAndKind(t *testing.T) {
	const doc = `{"bodies":[{"id":0,"mass":1,"position":[0,0],"velocity":[0,0]}]}`
	bodies, err := Load(strings.NewReader(doc), 2)
	require.NoError(t, err)
	require.Equal(t, body.Default, bodies[0].Kind)
	require.Equal(t, 1.0, bodies[0].Color.A)
}
