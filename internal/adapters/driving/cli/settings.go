package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the output directory, output naming, worker
binary, and watch folder.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsOutputCmd = &cobra.Command{
	Use:   "output <directory>",
	Short: "Set the output directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsOutput,
}

var settingsAffixesCmd = &cobra.Command{
	Use:   "affixes <prefix> <suffix>",
	Short: "Set the default output name prefix and suffix",
	Long: `Set the prefix and suffix applied to merge output names. Pass empty
strings to clear them.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsAffixes,
}

var settingsWorkerCmd = &cobra.Command{
	Use:   "worker <path>",
	Short: "Set the worker binary path",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsWorker,
}

var settingsWatchCmd = &cobra.Command{
	Use:   "watch <on|off> [directory]",
	Short: "Enable or disable the watch folder",
	Long: `Enable or disable the watch folder. While enabled, PDFs dropped in
the directory are added to the merge session automatically.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsWatch,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsOutputCmd)
	settingsCmd.AddCommand(settingsAffixesCmd)
	settingsCmd.AddCommand(settingsWorkerCmd)
	settingsCmd.AddCommand(settingsWatchCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	cmd.Println("[Output]")
	cmd.Printf("  Directory: %s\n", settings.Output.Directory)
	cmd.Printf("  Name prefix: %s\n", orNone(settings.Output.NamePrefix))
	cmd.Printf("  Name suffix: %s\n", orNone(settings.Output.NameSuffix))
	cmd.Println()

	cmd.Println("[Worker]")
	cmd.Printf("  Binary: %s\n", settings.Worker.Binary)
	cmd.Printf("  Timeout: %ds\n", settings.Worker.TimeoutSeconds)
	cmd.Println()

	cmd.Println("[Watch]")
	if settings.Watch.Enabled {
		cmd.Printf("  Enabled: yes\n")
		cmd.Printf("  Directory: %s\n", settings.Watch.Directory)
	} else {
		cmd.Printf("  Enabled: no\n")
	}
	return nil
}

func runSettingsOutput(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.SetOutputDirectory(args[0]); err != nil {
		return err
	}
	cmd.Printf("Output directory set to %s\n", args[0])
	return nil
}

func runSettingsAffixes(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.SetNameAffixes(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Output names will use prefix %q and suffix %q\n", args[0], args[1])
	return nil
}

func runSettingsWorker(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.SetWorkerBinary(args[0]); err != nil {
		return err
	}
	cmd.Printf("Worker binary set to %s\n", args[0])
	return nil
}

func runSettingsWatch(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	enabled, err := parseOnOff(args[0])
	if err != nil {
		return err
	}
	dir := ""
	if len(args) > 1 {
		dir = args[1]
	}
	if dir == "" && enabled {
		// Keep the previously configured directory if there is one.
		if settings, err := settingsService.Get(); err == nil {
			dir = settings.Watch.Directory
		}
	}

	if err := settingsService.SetWatch(enabled, dir); err != nil {
		return err
	}
	if enabled {
		cmd.Printf("Watch folder enabled on %s\n", dir)
	} else {
		cmd.Println("Watch folder disabled")
	}
	return nil
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b, nil
	}
	return false, errors.New("expected \"on\" or \"off\"")
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
