package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corey/dawgset/internal/adapters/fsnotify"
)

var watchCmd = &cobra.Command{
	Use:   "watch <words-file>",
	Short: "Rebuild the dictionary whenever the word list changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rebuild := func(path string) {
		set, err := buildFromFile(path, cfg.WithIncoming)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rebuild: %v\n", err)
			return
		}
		compact := set.Compress()
		if err := store.Save(cfg.Dictionary, compact); err != nil {
			fmt.Fprintf(os.Stderr, "save: %v\n", err)
			return
		}
		fmt.Printf("%s: rebuilt, %d strings\n", cfg.Dictionary, compact.Size())
	}

	// Build once up front so the watcher starts from a stored dictionary.
	rebuild(args[0])

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Stop()
	if err := w.Watch(args[0], rebuild); err != nil {
		return err
	}

	fmt.Printf("watching %s (ctrl-c to stop)\n", args[0])
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
