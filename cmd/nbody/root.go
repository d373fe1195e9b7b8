package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/gravsim/nbody/scenario"
	"github.com/gravsim/nbody/simcore"
	"github.com/spf13/cobra"
)

// cliOptions holds the flag table spec.md §6 names.
type cliOptions struct {
	iterations   int
	delta        float64
	theta        float64
	file         string
	twoD         bool
	maxBodyCount int
	bruteForce   bool
	out          string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "nbody",
		Short: "Barnes-Hut gravitational N-body simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.iterations, "iterations", 1000, "number of steps to run")
	flags.Float64Var(&opts.delta, "delta", 1.0, "dt passed to each step")
	flags.Float64Var(&opts.theta, "theta", simcore.DefaultTheta, "Barnes-Hut opening angle")
	flags.StringVar(&opts.file, "file", "", "input scenario JSON path (required)")
	flags.BoolVar(&opts.twoD, "twoD", false, "select D=2 (otherwise D=3)")
	flags.IntVar(&opts.maxBodyCount, "max_body_count", simcore.DefaultLeafK, "leaf capacity K")
	flags.BoolVar(&opts.bruteForce, "brute_force", false, "disable the Barnes-Hut opening criterion")
	flags.StringVar(&opts.out, "out", "", "CSV trace output path (default stdout)")
	flags.BoolVar(&opts.verbose, "verbose", false, "emit debug-level diagnostics")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func run(opts *cliOptions) error {
	f, err := os.Open(opts.file)
	if err != nil {
		return fmt.Errorf("nbody: opening %s: %w", opts.file, err)
	}
	defer f.Close()

	dim := 3
	if opts.twoD {
		dim = 2
	}

	bodies, err := scenario.Load(f, dim)
	if err != nil {
		return fmt.Errorf("nbody: loading scenario: %w", err)
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	world := simcore.New(dim,
		simcore.WithTheta(opts.theta),
		simcore.WithLeafCapacity(opts.maxBodyCount),
		simcore.WithBruteForce(opts.bruteForce),
		simcore.WithLogger(logger),
	)
	if err := world.Load(bodies); err != nil {
		return fmt.Errorf("nbody: loading bodies: %w", err)
	}

	out := io.Writer(os.Stdout)
	if opts.out != "" {
		outFile, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("nbody: creating %s: %w", opts.out, err)
		}
		defer outFile.Close()
		out = outFile
	}

	return runAndTrace(world, opts.iterations, opts.delta, dim, out)
}

// runAndTrace steps world for n iterations, writing the CSV trace format
// spec.md §6 specifies: time,x0,y0[,z0],x1,y1[,z1],...
func runAndTrace(world *simcore.World, n int, dt float64, dim int, out io.Writer) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	t := 0.0
	for i := 0; i < n; i++ {
		if err := world.Step(dt); err != nil {
			return fmt.Errorf("nbody: step %d: %w", i, err)
		}
		t += dt

		row := make([]string, 0, 1+dim*len(world.Bodies))
		row = append(row, strconv.FormatFloat(t, 'g', -1, 64))
		for _, b := range world.Bodies {
			for _, c := range b.Position {
				row = append(row, strconv.FormatFloat(c, 'g', -1, 64))
			}
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("nbody: writing trace row: %w", err)
		}
	}
	return nil
}
