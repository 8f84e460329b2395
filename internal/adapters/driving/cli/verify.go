package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that folding the printed booklet restores reading order",
	Long: `Build the booklet and undo the imposition of every signature.
The check fails if any page is lost, duplicated or out of order, or if
a blank page appears anywhere but the end of the booklet.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	addBookletFlags(verifyCmd)
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, _ []string) error {
	settings, err := bookletSettings(cmd)
	if err != nil {
		return err
	}
	if bookletService == nil {
		return errors.New("booklet service not configured")
	}

	booklet, err := bookletService.Build(cmd.Context(), settings)
	if err != nil {
		return err
	}
	if err := bookletService.Verify(booklet); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSummary(out, booklet)
	fmt.Fprintf(out, "OK: %d signatures fold back into reading order\n", len(booklet.Signatures))
	return nil
}
