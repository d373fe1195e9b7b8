package bhtree

import (
	"testing"

	"github.com/gravsim/nbody/body"
	"github.com/gravsim/nbody/vecn"
	"github.com/stretchr/testify/require"
)

func newLeafBody(id int, pos vecn.Vec, mass float64) *body.Body {
	b := body.New(id, pos.Dim())
	copy(b.Position, pos)
	b.Mass = mass
	return b
}

func TestInsertSingleBodyIsLeaf(t *testing.T) {
	r := NewRegion(vecn.NewBox(vecn.Vec{0, 0}, 10), 4)
	b := newLeafBody(0, vecn.Vec{1, 1}, 5)
	r.Insert(b)

	require.True(t, r.IsLeaf())
	require.Equal(t, 1, r.Descendants)
	require.Equal(t, 5.0, r.TotalMass)
	require.Equal(t, vecn.Vec{1, 1}, r.CenterOfMass)
}

func TestLeafCapacityTriggersSubdivide(t *testing.T) {
	r := NewRegion(vecn.NewBox(vecn.Vec{0, 0}, 10), 2)
	r.Insert(newLeafBody(0, vecn.Vec{1, 1}, 1))
	r.Insert(newLeafBody(1, vecn.Vec{2, 2}, 1))
	require.True(t, r.IsLeaf())

	r.Insert(newLeafBody(2, vecn.Vec{-1, -1}, 1))
	require.False(t, r.IsLeaf())
	require.Empty(t, r.Bucket, "internal node must hold no bucket bodies")
	require.Len(t, r.Children, 4)
	require.Equal(t, 3, r.Descendants)
}

func TestOutOfBoundsInsertIsNoOp(t *testing.T) {
	r := NewRegion(vecn.NewBox(vecn.Vec{0, 0}, 1), 4)
	r.Insert(newLeafBody(0, vecn.Vec{100, 100}, 1))
	require.Equal(t, 0, r.Descendants)
	require.Equal(t, 0.0, r.TotalMass)
}

func TestCenterPlanePointSortsLower(t *testing.T) {
	r := NewRegion(vecn.NewBox(vecn.Vec{0, 0}, 1), 1)
	r.Insert(newLeafBody(0, vecn.Vec{0, 0}, 1))
	// Second insert forces subdivision; a point exactly on both center
	// planes must land in the all-bits-clear (SW) child, index 0.
	r.Insert(newLeafBody(1, vecn.Vec{0.5, 0.5}, 1))

	idx := r.regionIndex(vecn.Vec{0, 0})
	require.Equal(t, 0, idx)
}

func TestMassConservationAcrossSubtree(t *testing.T) {
	r := NewRegion(vecn.NewBox(vecn.Vec{0, 0, 0}, 100), 2)
	total := 0.0
	for i := 0; i < 50; i++ {
		m := float64(i + 1)
		r.Insert(newLeafBody(i, vecn.Vec{float64(i % 7), float64(i % 5), float64(i % 3)}, m))
		total += m
	}
	require.InEpsilon(t, total, r.TotalMass, 1e-9)
	require.Equal(t, 50, r.Descendants)
}

func TestEveryLeafObeysBucketCapacity(t *testing.T) {
	const k = 4
	r := NewRegion(vecn.NewBox(vecn.Vec{0, 0}, 50), k)
	for i := 0; i < 200; i++ {
		x := float64(i%20) - 10
		y := float64((i*7)%20) - 10
		r.Insert(newLeafBody(i, vecn.Vec{x, y}, 1))
	}
	assertLeafInvariants(t, r, k)
}

func assertLeafInvariants(t *testing.T, r *Region, k int) {
	t.Helper()
	if r.IsLeaf() {
		require.LessOrEqual(t, len(r.Bucket), k)
		for _, b := range r.Bucket {
			require.True(t, r.Bounds.Contains(b.Position))
		}
		return
	}
	require.Empty(t, r.Bucket)
	for _, c := range r.Children {
		assertLeafInvariants(t, c, k)
	}
}
