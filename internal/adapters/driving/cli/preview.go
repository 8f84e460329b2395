package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/calendlam/calendlam/internal/adapters/driving/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse the imposed booklet in the terminal",
	Long: `Launch an interactive view of the booklet: signatures, their
sheets, and the pages printed on each side.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Open
  Esc      - Back
  r        - Reload settings and rebuild
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	addBookletFlags(previewCmd)
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("preview needs an interactive terminal; use \"calendlam layout\" instead")
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in preview: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(&tui.Ports{
		Booklet:  bookletService,
		Settings: settingsService,
	})
	if err != nil {
		return fmt.Errorf("failed to create preview: %w", err)
	}
	app.WithContext(cmd.Context())

	if bookletFlagsChanged(cmd) {
		settings, err := bookletSettings(cmd)
		if err != nil {
			return err
		}
		app.WithSettings(settings)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview error: %w", err)
	}
	return nil
}
