// Command packsat runs the strip-packing SAT encoder and optimizer
// described by spec.md against a generated instance, or the optional
// IP/MPS back-end (--ip). See package packctl for the flag surface.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/packsat/packctl"
)

func main() {
	if err := packctl.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "packsat:", err)
		os.Exit(1)
	}
}
