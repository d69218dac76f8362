package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
)

var (
	splitRanges   string
	splitBaseName string
)

var splitCmd = &cobra.Command{
	Use:   "split <file.pdf>",
	Short: "Split a PDF into separate files by page ranges",
	Long: `Split a PDF document into one output file per page range.

Ranges are comma-separated single pages or start-end intervals, e.g.
"1-3,7,10-12". Each item produces its own output file, named after the
base name and the range: report_1-3.pdf, report_7.pdf.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().StringVarP(&splitRanges, "ranges", "r", "", "page ranges to extract, e.g. \"1-3,7\" (required)")
	splitCmd.Flags().StringVarP(&splitBaseName, "output", "o", "", "base name for output files (defaults to the input name)")
	_ = splitCmd.MarkFlagRequired("ranges")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}
	ctx := cmd.Context()
	path := args[0]

	baseName := splitBaseName
	if baseName == "" {
		baseName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	entry, err := sessionService.AddPath(ctx, path)
	if err != nil {
		return err
	}

	// Splitting needs the page count for bounds checking.
	waitForResolution(ctx, 30*time.Second)
	entry = sessionService.Get(entry.ID)
	if entry == nil {
		return domain.ErrNotFound
	}
	if entry.Status == domain.StatusError {
		return fmt.Errorf("reading %s: %s", entry.DisplayName, entry.ErrorDetail)
	}

	preview, err := previewService.Split(splitRanges, baseName, entry.PageCount)
	if err != nil {
		return fmt.Errorf("invalid ranges: %w", err)
	}
	if !preview.Validation.OK {
		return fmt.Errorf("invalid ranges: %s (%s, document has %d pages)",
			preview.Validation.Reason, preview.Validation.Interval, entry.PageCount)
	}

	cmd.Printf("Splitting %s (%d pages) into %d files:\n", entry.DisplayName, entry.PageCount, len(preview.Names))
	for _, name := range preview.Names {
		cmd.Printf("  %s\n", name)
	}

	result, err := sessionService.ExecuteSplit(ctx, entry.ID, preview.Spec, baseName)
	if err != nil {
		return err
	}
	cmd.Printf("Created %d files\n", len(result.Files))
	return nil
}
