package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/calendlam/calendlam/internal/core/domain"
)

var locateCmd = &cobra.Command{
	Use:   "locate DATE",
	Short: "Find the sheet and side a date is printed on",
	Long: `Find where the week containing DATE ends up in the printed booklet.
DATE is YYYY-MM-DD; the booklet is built for the year of DATE.

Example:
  calendlam locate 2026-03-31`,
	Args: cobra.ExactArgs(1),
	RunE: runLocate,
}

func init() {
	addBookletFlags(locateCmd)
	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, args []string) error {
	date, err := time.Parse(time.DateOnly, args[0])
	if err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD: %s", domain.ErrConfiguration, args[0])
	}

	settings, err := bookletSettings(cmd)
	if err != nil {
		return err
	}
	settings.Year = date.Year()

	if bookletService == nil {
		return errors.New("booklet service not configured")
	}
	booklet, err := bookletService.Build(cmd.Context(), settings)
	if err != nil {
		return err
	}

	page, err := bookletService.Locate(booklet, date)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", args[0], pageLabel(page.Page), page.MonthLabel())
	fmt.Fprintf(cmd.OutOrStdout(), "  signature %d, sheet %d (sheet %d of the booklet), %s\n",
		page.SignatureNumber, page.SheetNumber, page.GlobalSheetNumber, page.Side)
	return nil
}
