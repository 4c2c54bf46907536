package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/dawgset/dawg"
)

var flagWithIncoming bool

var buildCmd = &cobra.Command{
	Use:   "build <words-file>",
	Short: "Build a dictionary from a newline-delimited word list",
	Long:  "Reads strings line by line, builds a minimal automaton, compresses it and stores it under the dictionary name.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&flagWithIncoming, "with-incoming", false, "maintain the incoming index (faster suffix queries on rebuild)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	set, err := buildFromFile(args[0], flagWithIncoming || cfg.WithIncoming)
	if err != nil {
		return err
	}
	compact := set.Compress()
	if err := store.Save(cfg.Dictionary, compact); err != nil {
		return err
	}
	fmt.Printf("%s: %d strings, %d nodes, %d transitions\n",
		cfg.Dictionary, compact.Size(), compact.NodeCount(), compact.TransitionCount())
	return nil
}

// buildFromFile ingests a word list into a fresh mutable set.
func buildFromFile(path string, withIncoming bool) (*dawg.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set := dawg.New()
	set.SetWithIncoming(withIncoming)
	if _, err := set.AddAllFrom(f); err != nil {
		return nil, err
	}
	return set, nil
}
