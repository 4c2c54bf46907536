package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/corey/dawgset/internal/adapters/ahocorasick"
)

var scanCmd = &cobra.Command{
	Use:   "scan <text-file>",
	Short: "Report dictionary strings occurring in a text",
	Long:  "Compiles the dictionary into a multi-pattern matcher and lists every occurrence of a stored string in the text with its byte offset.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	dict, err := loadDictionary(store, cfg)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var scanner ahocorasick.Scanner
	scanner.Build(slices.Collect(dict.set.All()))
	for _, m := range scanner.Scan(string(text)) {
		fmt.Printf("%d\t%s\n", m.Start, m.Word)
	}
	return nil
}
