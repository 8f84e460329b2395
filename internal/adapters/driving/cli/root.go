// Package cli provides the calendlam command line interface.
package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/calendlam/calendlam/internal/adapters/driven/config/file"
	"github.com/calendlam/calendlam/internal/adapters/driven/render/html"
	"github.com/calendlam/calendlam/internal/adapters/driven/storage/memory"
	"github.com/calendlam/calendlam/internal/adapters/driven/storage/sqlite"
	"github.com/calendlam/calendlam/internal/core/ports/driven"
	"github.com/calendlam/calendlam/internal/core/ports/driving"
	"github.com/calendlam/calendlam/internal/core/services"
	"github.com/calendlam/calendlam/internal/locale"
	"github.com/calendlam/calendlam/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Persistent flags.
var (
	verbose   bool
	configDir string
	noHistory bool
)

// Services used by the commands, wired by setupServices before any
// subcommand runs.
var (
	configStore     driven.ConfigStore
	settingsService driving.SettingsService
	bookletService  driving.BookletService
	pageRenderer    driven.PageRenderer
)

// setupServices wires the services for a command run.
// Tests replace it with in-memory wiring.
var setupServices = wireServices

// closeServices releases what setupServices opened.
var closeServices = func() error { return nil }

var rootCmd = &cobra.Command{
	Use:   "calendlam",
	Short: "Lay out wall-calendar booklets for printing",
	Long: `calendlam turns a calendar year into a printable booklet.

Every week of the year becomes one page. Pages are grouped into
signatures, padded with blank pages to a whole signature, and imposed
so that folding each printed stack yields pages in reading order.

Settings live in ~/.calendlam/config.toml; see "calendlam settings".`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return setupServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline details to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.calendlam)")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "do not record runs in the history database")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if cerr := closeServices(); err == nil {
		err = cerr
	}
	closeServices = func() error { return nil }
	return err
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// wireServices builds the production adapters: the TOML config store,
// the SQLite history and the HTML renderer.
func wireServices() error {
	dir := configDir
	if dir == "" {
		d, err := file.DefaultDir()
		if err != nil {
			return fmt.Errorf("locating config directory: %w", err)
		}
		dir = d
	}

	cfg, err := file.NewConfigStore(dir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var layouts driven.LayoutStore = memory.NewLayoutStore()
	closer := func() error { return nil }
	if !noHistory {
		store, err := sqlite.NewStore(filepath.Join(dir, "data"))
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		layouts = store.LayoutStore()
		closer = store.Close
	}

	renderer, err := html.NewRenderer()
	if err != nil {
		_ = closer()
		return err
	}

	catalog := locale.Default()
	configStore = cfg
	settingsService = services.NewSettingsService(cfg, catalog)
	bookletService = services.NewBookletService(catalog, layouts)
	pageRenderer = renderer
	closeServices = closer

	logger.Debug("config %s, history %t", cfg.Path(), !noHistory)
	return nil
}
