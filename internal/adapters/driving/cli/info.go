package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
)

var infoCmd = &cobra.Command{
	Use:   "info <file.pdf> [more...]",
	Short: "Show page count and size for PDF files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}
	ctx := cmd.Context()

	ids := make([]string, 0, len(args))
	for _, path := range args {
		entry, err := sessionService.AddPath(ctx, path)
		if err != nil {
			return err
		}
		ids = append(ids, entry.ID)
	}

	waitForResolution(ctx, 30*time.Second)

	var failed bool
	for _, id := range ids {
		entry := sessionService.Get(id)
		if entry == nil {
			continue
		}
		switch {
		case entry.Status == domain.StatusError:
			cmd.Printf("%s: %s\n", entry.DisplayName, entry.ErrorDetail)
			failed = true
		case entry.HasPageCount():
			cmd.Printf("%s: %d pages, %s\n", entry.DisplayName,
				entry.PageCount, humanize.Bytes(uint64(entry.ByteSize)))
		default:
			cmd.Printf("%s: page count unavailable, %s\n", entry.DisplayName,
				humanize.Bytes(uint64(entry.ByteSize)))
		}
	}
	if failed {
		return fmt.Errorf("some files could not be read")
	}
	return nil
}
