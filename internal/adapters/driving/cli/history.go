package cli

import (
	"errors"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent merge and split jobs",
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded jobs",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of jobs to show")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	jobs, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		cmd.Println("No jobs recorded yet.")
		return nil
	}

	for _, job := range jobs {
		status := "ok"
		if !job.Success {
			status = "failed: " + job.Error
		}
		cmd.Printf("%s  %-5s  %d file(s) -> %d file(s)  %s  [%s]\n",
			job.FinishedAt.Local().Format("2006-01-02 15:04"),
			job.Kind,
			len(job.Inputs), len(job.Outputs),
			humanize.Bytes(uint64(job.SizeBytes)),
			status,
		)
		if verbose {
			cmd.Printf("    in:  %s\n", strings.Join(job.Inputs, ", "))
			if len(job.Outputs) > 0 {
				cmd.Printf("    out: %s\n", strings.Join(job.Outputs, ", "))
			}
		}
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}
	if err := historyService.Clear(cmd.Context()); err != nil {
		return err
	}
	cmd.Println("History cleared.")
	return nil
}
