package simcore

import (
	"log/slog"

	"github.com/gravsim/nbody/bhtree"
	"github.com/gravsim/nbody/body"
	"github.com/gravsim/nbody/vecn"
)

// accumulateForce adds to b.Force the gravitational contribution of the
// subtree rooted at r, per spec.md §4.3. It never zeroes b.Force; Step's
// Phase A does that once per body before calling accumulateForce.
func accumulateForce(b *body.Body, r *bhtree.Region, cfg Config) {
	if r == nil {
		return
	}
	if r.IsLeaf() && len(r.Bucket) == 0 {
		return
	}

	if r.IsLeaf() {
		accumulateLeafForce(b, r, cfg)
		return
	}

	d := b.Position.Sub(r.CenterOfMass)
	dist := d.Len()

	if !cfg.BruteForce && r.Bounds.Length()/dist < cfg.Theta {
		addPseudoBodyForce(b, r, d, dist, cfg)
		return
	}

	for _, child := range r.Children {
		if child.Descendants == 0 {
			continue
		}
		accumulateForce(b, child, cfg)
	}
}

// accumulateLeafForce applies the pairwise fallback of spec.md §4.3 step 5
// to every resident of a non-empty leaf other than b itself.
func accumulateLeafForce(b *body.Body, r *bhtree.Region, cfg Config) {
	for _, o := range r.Bucket {
		if o.ID == b.ID {
			continue
		}
		addPairwiseForce(b, o, cfg)
	}
}

// addPseudoBodyForce treats r as a single aggregate mass at r.CenterOfMass,
// the Barnes–Hut opening-criterion branch of spec.md §4.3 step 3.
func addPseudoBodyForce(b *body.Body, r *bhtree.Region, d vecn.Vec, dist float64, cfg Config) {
	if dist <= cfg.Epsilon {
		cfg.Logger.Warn("softened singularity against pseudo-body",
			slog.Int("body_id", b.ID), slog.String("body_name", b.Name), slog.Float64("dist", dist))
		return
	}
	r3 := dist * dist * dist
	scale := -cfg.G * b.Mass * r.TotalMass / r3
	force := d.Scale(scale)
	for i := range b.Force {
		b.Force[i] += force[i]
	}
}

// addPairwiseForce adds the classical two-body attractive gravitational
// force on b from o, per spec.md §4.3 step 5 and §4.3 Numerical notes:
// r^3 is computed as r*r*r, never pow(r,3), and the force on b points
// toward o.
func addPairwiseForce(b, o *body.Body, cfg Config) {
	d := b.Position.Sub(o.Position)
	dist := d.Len()
	if dist <= cfg.Epsilon {
		cfg.Logger.Warn("softened singularity between bodies",
			slog.Int("body_id", b.ID), slog.String("body_name", b.Name),
			slog.Int("other_id", o.ID), slog.String("other_name", o.Name),
			slog.Float64("dist", dist))
		return
	}
	r3 := dist * dist * dist
	scale := -cfg.G * b.Mass * o.Mass / r3
	force := d.Scale(scale)
	for i := range b.Force {
		b.Force[i] += force[i]
	}
}
