package cmd

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/corey/dawgset/dawg"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the dictionary automaton as GraphViz DOT",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	dict, err := loadDictionary(store, cfg)
	if err != nil {
		return err
	}

	fmt.Print(toDot(dict.set.Transitions()))
	return nil
}

// toDot renders the transition iterable as a DOT digraph, accept states as
// double circles.
func toDot(transitions func(func(dawg.Transition) bool)) string {
	var b strings.Builder
	b.WriteString("digraph dawg {\n")
	b.WriteString("  graph [rankdir=LR];\n")
	b.WriteString("  node [shape=circle, fontsize=12];\n")

	accepting := map[int]bool{}
	var edges []dawg.Transition
	for t := range transitions {
		edges = append(edges, t)
		if t.FromAccept {
			accepting[t.FromID] = true
		}
		if t.ToAccept {
			accepting[t.ToID] = true
		}
	}
	for id := range accepting {
		fmt.Fprintf(&b, "  n%d [shape=doublecircle];\n", id)
	}
	for _, t := range edges {
		fmt.Fprintf(&b, "  n%d -> n%d [label=%q];\n", t.FromID, t.ToID, dotLabel(t.Label))
	}
	b.WriteString("}\n")
	return b.String()
}

func dotLabel(r rune) string {
	if unicode.IsPrint(r) {
		return string(r)
	}
	return fmt.Sprintf("U+%04X", r)
}
