package simcore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gravsim/nbody/bhtree"
	"github.com/gravsim/nbody/body"
	"github.com/gravsim/nbody/vecn"
	"golang.org/x/sync/errgroup"
)

// World owns the flat body array and the current tree root, and drives
// the per-step pipeline of spec.md §4.2: Barnes–Hut traversal,
// velocity-Verlet integration, out-of-bounds culling, and adaptive
// rebuild.
type World struct {
	Dim    int
	Bodies []*body.Body
	Root   *bhtree.Region

	cfg Config
}

// New returns an empty World of dimension dim (2 or 3), configured by
// opts.
func New(dim int, opts ...Option) *World {
	cfg := newConfig(opts...)
	root := bhtree.NewRegion(vecn.NewBox(vecn.New(dim), 1), cfg.LeafK)
	return &World{Dim: dim, Root: root, cfg: cfg}
}

// Load replaces the live population with bodies, sizing the root to a
// cube of half-extent 2*R_max centered on the previous root's center, per
// spec.md §6, where R_max is the largest distance-from-origin among the
// loaded positions. Load fails if any body has non-positive mass or a
// duplicate id, per spec.md §3's invariants.
func (w *World) Load(bodies []*body.Body) error {
	seen := make(map[int]bool, len(bodies))
	rMax := 0.0
	for _, b := range bodies {
		if b.Mass <= 0 {
			return fmt.Errorf("simcore: body %d (%s): mass must be positive, got %v", b.ID, b.Name, b.Mass)
		}
		if seen[b.ID] {
			return fmt.Errorf("simcore: duplicate body id %d", b.ID)
		}
		seen[b.ID] = true
		if d := b.Position.Len(); d > rMax {
			rMax = d
		}
	}
	half := rMax * 2
	if half == 0 {
		half = 1
	}

	w.Bodies = bodies
	w.Root = bhtree.NewRegion(vecn.NewBox(w.Root.Bounds.Center, half), w.cfg.LeafK)
	for _, b := range w.Bodies {
		w.Root.Insert(b)
	}
	return nil
}

// Step advances the simulation by dt: Phase A integrates every body and
// accumulates Barnes–Hut force concurrently against the existing,
// read-only tree; Phase B sequentially rebuilds the tree around the
// surviving population, per spec.md §4.2 and §5.
func (w *World) Step(dt float64) error {
	oldHalf := w.Root.Bounds.Half
	culled := make([]bool, len(w.Bodies))
	newPositions := make([]vecn.Vec, len(w.Bodies))
	var maxSeen maxAccumulator

	g, _ := errgroup.WithContext(context.Background())
	workers := concurrency(len(w.Bodies))
	chunk := (len(w.Bodies) + workers - 1) / max(workers, 1)
	for start := 0; start < len(w.Bodies); start += chunk {
		end := min(start+chunk, len(w.Bodies))
		start, end := start, end // per-worker copy; each owns a disjoint index range
		g.Go(func() error {
			for i := start; i < end; i++ {
				w.integrateOne(i, dt, oldHalf, culled, newPositions, &maxSeen)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, p := range newPositions {
		if !culled[i] {
			w.Bodies[i].Position = p
		}
	}

	w.rebuild(culled, maxSeen.value(), oldHalf)
	return nil
}

// integrateOne performs the velocity-Verlet half-step, force traversal and
// velocity-Verlet completion for body index i, per spec.md §4.2 Phase A.
// Each worker calls this only for indices in its own disjoint range, and
// the new position goes to newPositions[i] rather than b.Position (Step
// copies it back after every worker has finished), so concurrent calls
// never race on a shared Body.
func (w *World) integrateOne(i int, dt, oldHalf float64, culled []bool, newPositions []vecn.Vec, maxSeen *maxAccumulator) {
	b := w.Bodies[i]

	accOld := b.Force.Div(b.Mass)
	newPos := b.Position.Add(b.Velocity.Scale(dt)).Add(accOld.Scale(dt * dt / 2))

	if w.cfg.CullFactor > 0 && newPos.Sub(w.Root.CenterOfMass).Len() > w.cfg.CullFactor*oldHalf {
		culled[i] = true
		w.cfg.Logger.Warn("body culled: left simulation domain",
			slog.Int("body_id", b.ID), slog.String("body_name", b.Name))
		return
	}

	b.ResetForce()
	accumulateForce(b, w.Root, w.cfg)
	accNew := b.Force.Div(b.Mass)

	b.Velocity = b.Velocity.Add(accOld.Add(accNew).Scale(dt / 2))
	newPositions[i] = newPos

	maxSeen.observe(newPos.Len())
}

// rebuild implements spec.md §4.2 Phase B: compute the new root half
// extent, construct a fresh root, and sequentially reinsert every
// surviving (non-culled) body.
func (w *World) rebuild(culled []bool, observedMax, oldHalf float64) {
	half := oldHalf
	if observedMax > oldHalf {
		half = 2 * observedMax
	}

	survivors := w.Bodies[:0:0]
	for i, b := range w.Bodies {
		if !culled[i] {
			survivors = append(survivors, b)
		}
	}
	w.Bodies = survivors

	center := w.Root.Bounds.Center
	w.Root = bhtree.NewRegion(vecn.NewBox(center, half), w.cfg.LeafK)
	for _, b := range w.Bodies {
		w.Root.Insert(b)
	}
}

// maxAccumulator is the guarded accumulator spec.md §5 requires for
// collecting the furthest-body observation across Phase A's workers
// without a race. float64 has no lock-free max in the standard library;
// observe takes the lock once per non-culled body.
type maxAccumulator struct {
	mu  sync.Mutex
	max float64
}

func (a *maxAccumulator) observe(v float64) {
	a.mu.Lock()
	if v > a.max {
		a.max = v
	}
	a.mu.Unlock()
}

func (a *maxAccumulator) value() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.max
}

// concurrency bounds the number of Phase A workers to something
// reasonable for n bodies; a handful of bodies isn't worth forking
// goroutines for.
func concurrency(n int) int {
	if n < 256 {
		return 1
	}
	return 8
}

