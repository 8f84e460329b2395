package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/calendlam/calendlam/internal/core/domain"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the imposition table without rendering pages",
	Long: `Build the booklet and print, for every printed page side, its
signature, sheet, side and the week it carries, in print order.

Examples:
  calendlam layout
  calendlam layout --signature 2
  calendlam layout --year 2027 -p 32`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	addBookletFlags(layoutCmd)
	layoutCmd.Flags().IntP("signature", "s", 0, "only print this signature (1-based)")
	rootCmd.AddCommand(layoutCmd)
}

func runLayout(cmd *cobra.Command, _ []string) error {
	settings, err := bookletSettings(cmd)
	if err != nil {
		return err
	}
	only, _ := cmd.Flags().GetInt("signature")

	if bookletService == nil {
		return errors.New("booklet service not configured")
	}
	booklet, err := bookletService.Build(cmd.Context(), settings)
	if err != nil {
		return err
	}
	if only < 0 || only > len(booklet.Signatures) {
		return fmt.Errorf("%w: signature %d out of range 1-%d",
			domain.ErrConfiguration, only, len(booklet.Signatures))
	}

	out := cmd.OutOrStdout()
	printSummary(out, booklet)
	writeLayoutTable(out, booklet, only, terminalWidth(out))
	return nil
}

// writeLayoutTable prints the print order, one row per page side.
// Rows are cut to width when width is positive.
func writeLayoutTable(w io.Writer, b *domain.Booklet, only, width int) {
	row := func(s string) {
		if width > 0 && len([]rune(s)) > width {
			s = string([]rune(s)[:width])
		}
		fmt.Fprintln(w, strings.TrimRight(s, " "))
	}

	row(fmt.Sprintf("%-5s %-4s %-6s %-6s %-18s %s", "SEQ", "SIG", "SHEET", "SIDE", "PAGE", "MONTH"))
	seq := 0
	for _, sig := range b.Signatures {
		for _, page := range sig.Pages {
			seq++
			if only > 0 && sig.Number != only {
				continue
			}
			sheet := fmt.Sprintf("%d/%d", page.SheetNumber, page.GlobalSheetNumber)
			row(fmt.Sprintf("%-5d %-4d %-6s %-6s %-18s %s",
				seq, sig.Number, sheet, page.Side, pageLabel(page.Page), page.MonthLabel()))
		}
	}
}

// terminalWidth returns the width of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
