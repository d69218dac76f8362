package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driving"
)

var (
	mergeOutput string
	mergePrefix string
	mergeSuffix string
)

var mergeCmd = &cobra.Command{
	Use:   "merge <file.pdf> <file.pdf> [more...]",
	Short: "Merge PDF files into one document",
	Long: `Merge two or more PDF files into a single document, in the order
given on the command line. Duplicate files (same name and size) are
rejected.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "merged", "output file name (extension added automatically)")
	mergeCmd.Flags().StringVar(&mergePrefix, "prefix", "", "prefix for the output name")
	mergeCmd.Flags().StringVar(&mergeSuffix, "suffix", "", "suffix for the output name")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}
	ctx := cmd.Context()

	for _, path := range args {
		entry, err := sessionService.AddPath(ctx, path)
		if err != nil {
			var dup *domain.DuplicateError
			if errors.As(err, &dup) {
				return fmt.Errorf("%s given twice", dup.DisplayName)
			}
			return err
		}
		cmd.Printf("  + %s\n", entry.DisplayName)
	}

	// Page counts are informational for a merge; wait briefly so the
	// preview can show a real total, but do not block on a slow file.
	waitForResolution(ctx, 2*time.Second)

	naming := driving.MergeNaming{Prefix: mergePrefix, BaseName: mergeOutput, Suffix: mergeSuffix}
	preview := previewService.Merge(naming)
	cmd.Printf("\nMerging %d files (%s", preview.FileCount, preview.EstimatedSizeHuman)
	if preview.EstimatedPages > 0 {
		pages := fmt.Sprintf("%d pages", preview.EstimatedPages)
		if preview.PagesLowerBound {
			pages = "at least " + pages
		}
		cmd.Printf(", %s", pages)
	}
	cmd.Printf(") into %s\n", preview.FinalName)

	result, err := sessionService.ExecuteMerge(ctx, naming)
	if err != nil {
		return err
	}
	cmd.Printf("Created %s\n", result.Output)
	return nil
}

// waitForResolution polls until no entry is still pending, or the
// timeout elapses.
func waitForResolution(ctx context.Context, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		pending := false
		for _, e := range sessionService.Entries() {
			if e.Status == domain.StatusPending || e.Status == domain.StatusProcessing {
				pending = true
				break
			}
		}
		if !pending {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(50 * time.Millisecond):
		}
	}
}
