package simcore

import (
	"github.com/gravsim/nbody/bhtree"
	"github.com/gravsim/nbody/body"
	"github.com/gravsim/nbody/vecn"
)

// RenderBody is one packed tuple a renderer batches by kind: position
// components, RGBA color, and radius, per spec.md §4.4.
type RenderBody struct {
	Position vecn.Vec
	Color    vecn.Color
	Radius   float64
}

// BodiesByKind groups the live population by body.Kind into the packed
// tuples a batched renderer draws, per spec.md §4.4. It never mutates the
// World and is safe to call between steps.
func (w *World) BodiesByKind() map[body.Kind][]RenderBody {
	out := make(map[body.Kind][]RenderBody)
	for _, b := range w.Bodies {
		out[b.Kind] = append(out[b.Kind], RenderBody{
			Position: b.Position,
			Color:    b.Color,
			Radius:   b.Radius,
		})
	}
	return out
}

// BoxEdge is one region's corner set paired with its diagnostic color, in
// Basis(D) order so a fixed index buffer forms the edge list, per
// spec.md §4.4.
type BoxEdge struct {
	Corners []vecn.Vec
	Color   vecn.Color
}

// TreeBoxVertices walks the live tree and emits, per region, the 2^D
// corners of its AABB paired with the region's diagnostic color.
func (w *World) TreeBoxVertices() []BoxEdge {
	var out []BoxEdge
	w.Root.Walk(func(r *bhtree.Region) {
		out = append(out, BoxEdge{Corners: r.Bounds.Corners(), Color: r.Bounds.Color})
	})
	return out
}
