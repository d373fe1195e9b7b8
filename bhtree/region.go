// Package bhtree implements the Barnes–Hut spatial subdivision tree: a
// recursive quadtree (D=2) or octree (D=3) of Region nodes, each an
// aggregate pseudo-body summarizing the mass and center of mass of its
// subtree. The tree is read-only once built; a simulation step discards
// it wholesale and builds a fresh one (see the simcore package).
package bhtree

import (
	"github.com/gravsim/nbody/body"
	"github.com/gravsim/nbody/vecn"
)

// DefaultMaxBucket is the leaf capacity K used when a Region is created
// without an explicit one. Spec default: 64.
const DefaultMaxBucket = 64

// Region is one node of the tree. A Region is a leaf iff Children is nil;
// an internal node's own Bucket is always empty. See package doc and
// spec.md §3/§4 for the tree-wide invariants this type must preserve.
type Region struct {
	Bounds vecn.Box

	// Children holds 2^D subregions when internal, nil when leaf.
	Children []*Region

	// Bucket holds up to MaxBucket resident bodies when this Region is a
	// leaf, in insertion order since the most recent rebuild.
	Bucket []*body.Body

	CenterOfMass vecn.Vec
	TotalMass    float64
	Descendants  int

	MaxBucket int
}

// NewRegion returns an empty leaf Region covering bounds, with leaf
// capacity maxBucket (DefaultMaxBucket if maxBucket <= 0).
func NewRegion(bounds vecn.Box, maxBucket int) *Region {
	if maxBucket <= 0 {
		maxBucket = DefaultMaxBucket
	}
	return &Region{
		Bounds:       bounds,
		CenterOfMass: vecn.New(bounds.Dim()),
		MaxBucket:    maxBucket,
	}
}

// IsLeaf reports whether r is a leaf. This is the canonical leaf test —
// Bucket being empty does not imply internal, since a fresh subdivide
// always re-inserts before returning (see subdivide).
func (r *Region) IsLeaf() bool {
	return r.Children == nil
}

// Insert adds b to the subtree rooted at r, per spec.md §4.1. A body
// outside r.Bounds is silently dropped; the World guarantees this never
// happens for the root, sizing it before every rebuild.
func (r *Region) Insert(b *body.Body) {
	if !r.Bounds.Contains(b.Position) {
		return
	}

	r.Descendants++
	newTotal := r.TotalMass + b.Mass
	if newTotal > 0 {
		weighted := r.CenterOfMass.Scale(r.TotalMass).Add(b.Position.Scale(b.Mass))
		r.CenterOfMass = weighted.Div(newTotal)
	}
	r.TotalMass = newTotal

	if r.IsLeaf() {
		if len(r.Bucket) < r.MaxBucket {
			r.Bucket = append(r.Bucket, b)
			return
		}
		r.subdivide()
		// fall through: r is now internal, bucket has been redistributed.
	}

	idx := r.regionIndex(b.Position)
	r.Children[idx].Insert(b)
}

// subdivide splits a full leaf into 2^D children and redistributes its
// bucket, per spec.md §4.1. It never returns with bodies still resident
// directly in r's own bucket.
func (r *Region) subdivide() {
	dim := r.Bounds.Dim()
	basis := vecn.Basis(dim)
	halfChild := r.Bounds.Half / 2

	children := make([]*Region, len(basis))
	col := startColor()
	for i, s := range basis {
		center := r.Bounds.Center.Add(s.Scale(halfChild))
		child := NewRegion(vecn.NewBox(center, halfChild), r.MaxBucket)
		child.Bounds.Color = col
		children[i] = child
		col = nextColor(col)
	}
	r.Children = children

	old := r.Bucket
	r.Bucket = nil
	for _, b := range old {
		idx := r.regionIndex(b.Position)
		r.Children[idx].Insert(b)
	}
}

// regionIndex returns which child octant/quadrant point belongs to: bit j
// is set iff point's j'th coordinate is strictly greater than r's center
// on that axis. Points exactly on the center plane take the lower side
// (bit cleared), per spec.md §4.1.
func (r *Region) regionIndex(point vecn.Vec) int {
	idx := 0
	for j := 0; j < r.Bounds.Dim(); j++ {
		if point[j] > r.Bounds.Center[j] {
			idx |= 1 << uint(j)
		}
	}
	return idx
}

// startColor and nextColor implement the diagnostic color wheel: each
// subdivide advances one step by decrementing R, wrapping into G, then B,
// when a component underflows. Purely cosmetic — spec.md §4.1/§9.
func startColor() vecn.Color {
	return vecn.Color{R: 1, G: 1, B: 1, A: 1}
}

func nextColor(c vecn.Color) vecn.Color {
	const step = 1.0 / 16
	c.R -= step
	if c.R < 0 {
		c.R = 1
		c.G -= step
		if c.G < 0 {
			c.G = 1
			c.B -= step
			if c.B < 0 {
				c.B = 1
			}
		}
	}
	return c
}
