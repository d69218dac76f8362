package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bindery-labs/bindery-cli/internal/adapters/driving/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a folder and collect dropped PDFs",
	Long: `Watch a directory and add every PDF dropped into it to the merge
session. Without an argument the configured watch directory is used.
Stop with Ctrl-C; the collected files are listed on exit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		settings, err := settingsService.Get()
		if err != nil {
			return err
		}
		dir = settings.Watch.Directory
	}
	if dir == "" {
		return errors.New("no watch directory given or configured; run \"bindery settings watch on <dir>\"")
	}

	watcher := watch.New(sessionService, dir)
	if err := watcher.Start(cmd.Context()); err != nil {
		return err
	}
	defer watcher.Close()

	cmd.Printf("Watching %s (Ctrl-C to stop)\n", dir)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case <-cmd.Context().Done():
	case <-sig:
	}

	entries := sessionService.Entries()
	cmd.Printf("\nCollected %d file(s):\n", len(entries))
	for _, e := range entries {
		cmd.Printf("  %s\n", e.DisplayName)
	}
	return nil
}
