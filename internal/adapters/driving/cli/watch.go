package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/calendlam/calendlam/internal/logger"
)

// watchDebounce collapses the burst of events editors emit per save.
const watchDebounce = 250 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the booklet whenever the config file changes",
	Long: `Generate the booklet, then watch the configuration file and
generate again after every change until interrupted.

Flags given here stay in force across regenerations.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	addBookletFlags(watchCmd)
	watchCmd.Flags().StringP("output", "o", "", "output directory (default from settings)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if configStore == nil || configStore.Path() == "" {
		return errors.New("watch needs a configuration file")
	}
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	regenerate := func() error {
		settings, err := bookletSettings(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("output") {
			settings.OutputDir, _ = cmd.Flags().GetString("output")
		}
		booklet, dir, err := generate(cmd.Context(), settings)
		if err != nil {
			return err
		}
		printSummary(out, booklet)
		fmt.Fprintf(out, "Wrote %d pages to %s\n", len(booklet.PrintOrder()), dir)
		return nil
	}

	if err := regenerate(); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
	}
	fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", configStore.Path())

	return watchFile(cmd.Context(), configStore.Path(), watchDebounce, func() error {
		if err := configStore.Load(); err != nil {
			return err
		}
		return regenerate()
	}, errOut)
}

// watchFile calls onChange after path is written or recreated, once per
// burst of events within debounce. Errors from onChange are reported to
// errOut and watching continues. It returns when ctx is done.
func watchFile(ctx context.Context, path string, debounce time.Duration, onChange func() error, errOut io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory; editors often replace the file on save.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	name := filepath.Base(path)
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				logger.Debug("watch: %s", ev)
				pending = time.After(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(errOut, "watch error: %v\n", err)
		case <-pending:
			pending = nil
			if err := onChange(); err != nil {
				fmt.Fprintf(errOut, "Error: %v\n", err)
			}
		}
	}
}
