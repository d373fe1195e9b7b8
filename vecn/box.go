package vecn

// Color is an RGBA diagnostic tint, read only by the query surface that
// feeds an external renderer. It has no effect on simulation results.
type Color struct {
	R, G, B, A float64
}

// Box is a D-dimensional axis-aligned cube: a center point and a single
// half-extent shared by every axis. Spec allows a scalar half-length
// because the simulator only ever constructs cubes centered on a point.
type Box struct {
	Center Vec
	Half   float64
	Color  Color
}

// NewBox returns a cube of the given half-extent centered at center.
func NewBox(center Vec, half float64) Box {
	return Box{Center: center.Clone(), Half: half}
}

// Dim reports the dimensionality of the box.
func (b Box) Dim() int {
	return b.Center.Dim()
}

// Contains reports whether p lies within b, inclusive on every axis.
func (b Box) Contains(p Vec) bool {
	for i := 0; i < b.Dim(); i++ {
		d := p[i] - b.Center[i]
		if d < -b.Half || d > b.Half {
			return false
		}
	}
	return true
}

// Length returns the side length of the cube, 2*Half.
func (b Box) Length() float64 {
	return 2 * b.Half
}

// Basis returns the 2^d sign vectors used both to offset child centers
// during subdivision and to enumerate corners for diagnostic rendering.
// Bit j of i selects +1 (set) or -1 (clear) along axis j, so for d=2 the
// order is {SW, SE, NW, NE} and for d=3 {bSW, bSE, bNW, bNE, tSW, tSE,
// tNW, tNE}.
func Basis(d int) []Vec {
	n := 1 << uint(d)
	out := make([]Vec, n)
	for i := 0; i < n; i++ {
		v := make(Vec, d)
		for j := 0; j < d; j++ {
			if i&(1<<uint(j)) != 0 {
				v[j] = 1
			} else {
				v[j] = -1
			}
		}
		out[i] = v
	}
	return out
}

// Corners returns the 2^d corners of b, in Basis(d) order, so a fixed
// index buffer can form the edge list a renderer draws.
func (b Box) Corners() []Vec {
	basis := Basis(b.Dim())
	out := make([]Vec, len(basis))
	for i, s := range basis {
		out[i] = b.Center.Add(s.Scale(b.Half))
	}
	return out
}
