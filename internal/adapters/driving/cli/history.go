package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/calendlam/calendlam/internal/core/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded booklet runs",
	Long: `List booklet runs recorded in the history database, most recent
first. Use "history show ID" to print the print order of a run.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show the print order of a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "maximum number of runs to list (0 = all)")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if bookletService == nil {
		return errors.New("booklet service not configured")
	}
	limit, _ := cmd.Flags().GetInt("limit")

	layouts, err := bookletService.History(cmd.Context(), limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(layouts) == 0 {
		fmt.Fprintln(out, "No recorded runs.")
		return nil
	}
	for _, l := range layouts {
		fmt.Fprintf(out, "%s  %s  %d  %d pages + %d blank, %d x %d, %d sheets\n",
			l.ID, l.CreatedAt.Local().Format(time.DateTime), l.Year,
			l.ContentPages, l.BlankPages, l.Signatures, l.PagesPerSignature, l.Sheets)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if bookletService == nil {
		return errors.New("booklet service not configured")
	}

	layout, err := bookletService.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no recorded run %q", args[0])
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s (%s)\n", layout.ID, layout.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprintf(out, "Year %d, %d pages per signature, %d signatures, %d sheets\n",
		layout.Year, layout.PagesPerSignature, layout.Signatures, layout.Sheets)
	for i := 0; i < layout.Signatures; i++ {
		start := i * layout.PagesPerSignature
		end := min(start+layout.PagesPerSignature, len(layout.PrintOrder))
		if start >= end {
			break
		}
		fmt.Fprintf(out, "  %2d: %s\n", i+1, formatPrintOrder(layout.PrintOrder[start:end]))
	}
	return nil
}

// formatPrintOrder lists 1-based page numbers, with "-" for blanks.
func formatPrintOrder(order []int) string {
	parts := make([]string, len(order))
	for i, idx := range order {
		if idx == domain.BlankIndex {
			parts[i] = "-"
			continue
		}
		parts[i] = fmt.Sprint(idx + 1)
	}
	return strings.Join(parts, " ")
}
