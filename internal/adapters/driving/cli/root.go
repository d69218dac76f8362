// Package cli implements the bindery command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/bindery-labs/bindery-cli/internal/core/ports/driving"
	"github.com/bindery-labs/bindery-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// verbose enables debug logging.
var verbose bool

// Services holds the wired driving services the commands run against.
type Services struct {
	Session  driving.SessionService
	Preview  driving.PreviewService
	Settings driving.SettingsService
	History  driving.HistoryService
}

var (
	sessionService  driving.SessionService
	previewService  driving.PreviewService
	settingsService driving.SettingsService
	historyService  driving.HistoryService
)

// SetServices wires the services into the command tree. Must be
// called before Execute.
func SetServices(s *Services) {
	sessionService = s.Session
	previewService = s.Preview
	settingsService = s.Settings
	historyService = s.History
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "bindery",
	Short: "Merge and split PDF documents",
	Long: `Bindery merges and splits PDF documents.

Collect files into an ordered set and merge them into one document, or
extract page ranges from a single document into separate files. The
actual PDF processing runs in the external bindery-worker binary; this
tool never touches document bytes itself.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
