// Package body defines the mutable particle state the simulator evolves.
package body

import "github.com/gravsim/nbody/vecn"

// EmptyID is the reserved sentinel id for "no body"; loaded bodies carry
// ids >= 0.
const EmptyID = -1

// Body is one point mass. Position, Velocity and Force are mutated in
// place by the simulation's Step; every other field is set once at load
// time and only read afterward.
type Body struct {
	ID   int
	Name string

	Position vecn.Vec
	Velocity vecn.Vec
	Force    vecn.Vec

	Mass   float64
	Radius float64

	Kind  Kind
	Color vecn.Color
}

// New returns a Body with zeroed Position/Velocity/Force vectors of
// dimension d.
func New(id int, dim int) *Body {
	return &Body{
		ID:       id,
		Position: vecn.New(dim),
		Velocity: vecn.New(dim),
		Force:    vecn.New(dim),
	}
}

// ResetForce zeroes Force in place. Step calls this once per body at the
// start of every Phase A traversal; it is the only place Force is zeroed.
func (b *Body) ResetForce() {
	for i := range b.Force {
		b.Force[i] = 0
	}
}
