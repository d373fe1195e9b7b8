// Package vecn implements double-precision vector algebra for a runtime
// dimensionality D, so the same code serves both the 2D and 3D simulators.
package vecn

import "math"

// Vec is a D-dimensional vector. D is fixed by len(Vec) at construction
// and never changes across the vector's lifetime.
type Vec []float64

// New returns a zero vector of dimension d.
func New(d int) Vec {
	return make(Vec, d)
}

// Dim reports the dimensionality of p.
func (p Vec) Dim() int {
	return len(p)
}

// Clone returns an independent copy of p.
func (p Vec) Clone() Vec {
	q := make(Vec, len(p))
	copy(q, p)
	return q
}

// Add returns the vector sum of p and q. p and q must share a dimension.
func (p Vec) Add(q Vec) Vec {
	r := make(Vec, len(p))
	for i := range p {
		r[i] = p[i] + q[i]
	}
	return r
}

// Sub returns the vector sum of p and -q. p and q must share a dimension.
func (p Vec) Sub(q Vec) Vec {
	r := make(Vec, len(p))
	for i := range p {
		r[i] = p[i] - q[i]
	}
	return r
}

// Scale returns p scaled componentwise by f.
func (p Vec) Scale(f float64) Vec {
	r := make(Vec, len(p))
	for i := range p {
		r[i] = p[i] * f
	}
	return r
}

// Div returns p divided componentwise by f.
func (p Vec) Div(f float64) Vec {
	return p.Scale(1 / f)
}

// Dot returns the Euclidean inner product of p and q.
func (p Vec) Dot(q Vec) float64 {
	var s float64
	for i := range p {
		s += p[i] * q[i]
	}
	return s
}

// Len returns the Euclidean length (2-norm) of p.
func (p Vec) Len() float64 {
	return math.Sqrt(p.Dot(p))
}

// At returns the i'th component of p.
func (p Vec) At(i int) float64 {
	return p[i]
}
