package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/dawgset/internal/adapters/bbolt"
	"github.com/corey/dawgset/internal/ports"
)

var rootCmd = &cobra.Command{
	Use:           "dawgset",
	Short:         "dawgset — minimal acyclic word graph dictionaries",
	Long:          "Build compact string dictionaries and query them by prefix, suffix, substring and range.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var (
	flagConfig string
	flagDB     string
	flagName   string
)

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default .dawgset.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "path to the dictionary database")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", "", "dictionary name")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dictsCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(watchCmd)
}

// openStore resolves the configuration and opens the dictionary database.
func openStore() (ports.DictionaryStore, *Config, error) {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	if flagName != "" {
		cfg.Dictionary = flagName
	}
	store, err := bbolt.NewStore(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

// loadDictionary fetches the configured dictionary or fails with a hint.
func loadDictionary(store ports.DictionaryStore, cfg *Config) (*dictHandle, error) {
	set, err := store.Load(cfg.Dictionary)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, fmt.Errorf("dictionary %q not found; create it with: dawgset build --name %s <words-file>", cfg.Dictionary, cfg.Dictionary)
	}
	return &dictHandle{name: cfg.Dictionary, set: set}, nil
}
