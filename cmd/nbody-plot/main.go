// Command nbody-plot steps a scenario forward and renders a single PNG
// snapshot of the live population and tree structure. It is an external
// collaborator: it only ever talks to simcore through scenario.Load,
// simcore.New, World.Load, World.Step, World.Bodies, World.BodiesByKind
// and World.TreeBoxVertices, the same query surface any other renderer
// would use.
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
