// Command nbody drives a Barnes-Hut N-body simulation from a JSON
// scenario file and streams a CSV position trace, per spec.md §6. It is
// an external collaborator: everything here talks to simcore only
// through scenario.Load, simcore.New, simcore.World.Load,
// simcore.World.Step and simcore.World.Bodies.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
