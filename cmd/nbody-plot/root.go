package main

import (
	"fmt"
	"image/color"
	"os"
	"sort"

	"github.com/gravsim/nbody/body"
	"github.com/gravsim/nbody/scenario"
	"github.com/gravsim/nbody/simcore"
	"github.com/gravsim/nbody/vecn"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// plotOptions holds the flag table for the snapshot renderer.
type plotOptions struct {
	file       string
	out        string
	iterations int
	delta      float64
	theta      float64
	twoD       bool
	boxes      bool
}

func newRootCmd() *cobra.Command {
	opts := &plotOptions{}

	cmd := &cobra.Command{
		Use:   "nbody-plot",
		Short: "Render a PNG snapshot of a Barnes-Hut simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.file, "file", "", "input scenario JSON path (required)")
	flags.StringVar(&opts.out, "out", "snapshot.png", "PNG output path")
	flags.IntVar(&opts.iterations, "iterations", 100, "number of steps to run before rendering")
	flags.Float64Var(&opts.delta, "delta", 1.0, "dt passed to each step")
	flags.Float64Var(&opts.theta, "theta", simcore.DefaultTheta, "Barnes-Hut opening angle")
	flags.BoolVar(&opts.twoD, "twoD", false, "select D=2 (otherwise D=3)")
	flags.BoolVar(&opts.boxes, "boxes", true, "overlay the tree's region wireframe")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func run(opts *plotOptions) error {
	f, err := os.Open(opts.file)
	if err != nil {
		return fmt.Errorf("nbody-plot: opening %s: %w", opts.file, err)
	}
	defer f.Close()

	dim := 3
	if opts.twoD {
		dim = 2
	}

	bodies, err := scenario.Load(f, dim)
	if err != nil {
		return fmt.Errorf("nbody-plot: loading scenario: %w", err)
	}

	world := simcore.New(dim, simcore.WithTheta(opts.theta))
	if err := world.Load(bodies); err != nil {
		return fmt.Errorf("nbody-plot: loading bodies: %w", err)
	}

	for i := 0; i < opts.iterations; i++ {
		if err := world.Step(opts.delta); err != nil {
			return fmt.Errorf("nbody-plot: step %d: %w", i, err)
		}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("nbody snapshot (t=%.3g, %d bodies)", float64(opts.iterations)*opts.delta, len(world.Bodies))
	p.X.Label.Text = "x0"
	p.Y.Label.Text = "x1"
	p.Add(plotter.NewGrid())

	if opts.boxes {
		for _, edge := range world.TreeBoxVertices() {
			if err := addBoxEdges(p, edge); err != nil {
				return fmt.Errorf("nbody-plot: drawing tree box: %w", err)
			}
		}
	}

	if err := addScatterByKind(p, world.BodiesByKind()); err != nil {
		return fmt.Errorf("nbody-plot: drawing bodies: %w", err)
	}

	if err := p.Save(12*vg.Centimeter, 12*vg.Centimeter, opts.out); err != nil {
		return fmt.Errorf("nbody-plot: saving %s: %w", opts.out, err)
	}
	return nil
}

// addScatterByKind adds one Scatter per populated body.Kind, sorted for
// deterministic output, so the legend and layer order never shuffle
// between otherwise-identical runs.
func addScatterByKind(p *plot.Plot, byKind map[body.Kind][]simcore.RenderBody) error {
	kinds := make([]body.Kind, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	for _, k := range kinds {
		group := byKind[k]
		xys := make(plotter.XYs, len(group))
		for i, rb := range group {
			xys[i] = plotter.XY{X: rb.Position.At(0), Y: rb.Position.At(1)}
		}

		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("kind %s: %w", k, err)
		}
		sc.GlyphStyle.Color = colorOf(group[0].Color)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(2.5)

		p.Add(sc)
		p.Legend.Add(k.String(), sc)
	}
	return nil
}

// addBoxEdges draws the wireframe of one tree region by connecting
// corner pairs that differ in exactly one Basis(D) bit, the cube-edge
// relation for any dimension.
func addBoxEdges(p *plot.Plot, edge simcore.BoxEdge) error {
	corners := edge.Corners
	style := colorOf(edge.Color)
	for i := 0; i < len(corners); i++ {
		for j := i + 1; j < len(corners); j++ {
			if !isPowerOfTwo(i ^ j) {
				continue
			}
			line, err := plotter.NewLine(plotter.XYs{
				{X: corners[i].At(0), Y: corners[i].At(1)},
				{X: corners[j].At(0), Y: corners[j].At(1)},
			})
			if err != nil {
				return err
			}
			line.LineStyle.Color = style
			line.LineStyle.Width = vg.Points(0.5)
			p.Add(line)
		}
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n != 0 && n&(n-1) == 0
}

func colorOf(c vecn.Color) color.Color {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
