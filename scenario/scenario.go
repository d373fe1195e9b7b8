// Package scenario loads the JSON body-list format spec.md §6 defines.
// It is an external collaborator: the core never imports this package,
// only the shape of what it produces (a []*body.Body).
package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gravsim/nbody/body"
	"github.com/gravsim/nbody/vecn"
)

// ErrUnknownKind is wrapped into the returned error when a scenario body's
// "type" field does not name a recognized body.Kind.
var ErrUnknownKind = errors.New("scenario: unknown body type")

// ErrDimMismatch is wrapped into the returned error when a body's
// position/velocity array length does not match the requested dimension.
var ErrDimMismatch = errors.New("scenario: position/velocity dimension mismatch")

// rawScenario mirrors the JSON shape of spec.md §6.
type rawScenario struct {
	Bodies []rawBody `json:"bodies"`
}

type rawBody struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Mass     float64   `json:"mass"`
	Radius   float64   `json:"radius"`
	Position []float64 `json:"position"`
	Velocity []float64 `json:"velocity"`
	Type     string    `json:"type"`
	Color    []float64 `json:"color"`
}

// Load decodes a scenario from r for a simulation of the given
// dimensionality (2 or 3), returning one body.Body per entry in load
// order. Unknown "type" strings or a position/velocity array of the wrong
// length are config errors and fail the whole load, per spec.md §7.
func Load(r io.Reader, dim int) ([]*body.Body, error) {
	var raw rawScenario
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}

	out := make([]*body.Body, 0, len(raw.Bodies))
	for _, rb := range raw.Bodies {
		b, err := rb.toBody(dim)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (rb rawBody) toBody(dim int) (*body.Body, error) {
	if len(rb.Position) != dim {
		return nil, fmt.Errorf("%w: body %d position has %d components, want %d",
			ErrDimMismatch, rb.ID, len(rb.Position), dim)
	}
	if len(rb.Velocity) != dim {
		return nil, fmt.Errorf("%w: body %d velocity has %d components, want %d",
			ErrDimMismatch, rb.ID, len(rb.Velocity), dim)
	}

	kind := body.Default
	if rb.Type != "" {
		k, ok := body.ParseKind(rb.Type)
		if !ok {
			return nil, fmt.Errorf("%w: %q (body %d)", ErrUnknownKind, rb.Type, rb.ID)
		}
		kind = k
	}

	b := body.New(rb.ID, dim)
	copy(b.Position, rb.Position)
	copy(b.Velocity, rb.Velocity)
	b.Name = rb.Name
	b.Mass = rb.Mass
	b.Radius = rb.Radius
	b.Kind = kind
	b.Color = parseColor(rb.Color)
	return b, nil
}

func parseColor(c []float64) vecn.Color {
	if len(c) != 4 {
		return vecn.Color{R: 1, G: 1, B: 1, A: 1}
	}
	return vecn.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}
