package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dictionary statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	dict, err := loadDictionary(store, cfg)
	if err != nil {
		return err
	}

	s := dict.set
	fmt.Printf("dictionary:   %s\n", dict.name)
	fmt.Printf("strings:      %d\n", s.Size())
	fmt.Printf("nodes:        %d\n", s.NodeCount())
	fmt.Printf("transitions:  %d\n", s.TransitionCount())
	fmt.Printf("max length:   %d\n", s.MaxLength())
	fmt.Printf("alphabet:     %d letters\n", len(s.Alphabet()))
	fmt.Printf("incoming idx: %v\n", s.WithIncoming())
	return nil
}
