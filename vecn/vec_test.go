package vecn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	v1 := Vec{1, 2, 3}
	v2 := Vec{-1, -2, -3}
	require.Equal(t, Vec{0, 0, 0}, v1.Add(v2))
}

func TestSub(t *testing.T) {
	v := Vec{1, 2, 3}
	require.Equal(t, Vec{0, 0, 0}, v.Sub(v))
}

func TestScale(t *testing.T) {
	v := Vec{1, 2, 3}
	require.Equal(t, Vec{10, 20, 30}, v.Scale(10))
}

func TestDiv(t *testing.T) {
	v := Vec{10, 20, 30}
	require.Equal(t, Vec{1, 2, 3}, v.Div(10))
}

func TestDotAndLen(t *testing.T) {
	v := Vec{3, 4}
	require.Equal(t, 25.0, v.Dot(v))
	require.Equal(t, 5.0, v.Len())
}

func TestDim2And3(t *testing.T) {
	require.Equal(t, 2, Vec{1, 2}.Dim())
	require.Equal(t, 3, Vec{1, 2, 3}.Dim())
}

func TestCloneIsIndependent(t *testing.T) {
	v := Vec{1, 2, 3}
	c := v.Clone()
	c[0] = 99
	require.Equal(t, 1.0, v[0])
}
