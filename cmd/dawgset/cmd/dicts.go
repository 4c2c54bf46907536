package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dictsCmd = &cobra.Command{
	Use:   "dicts",
	Short: "List stored dictionaries",
	Args:  cobra.NoArgs,
	RunE:  runDicts,
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete the named dictionary",
	Args:  cobra.NoArgs,
	RunE:  runRemove,
}

func runDicts(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	names, err := store.List()
	if err != nil {
		return err
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(cfg.Dictionary); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", cfg.Dictionary)
	return nil
}
