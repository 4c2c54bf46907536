// dawgset is a dictionary toolkit built on minimal acyclic word graphs.
// Build compact dictionaries from word lists, then query them by prefix,
// suffix, substring and range, scan texts against them, or export the
// automaton for rendering.
package main

import (
	"os"

	"github.com/corey/dawgset/cmd/dawgset/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
