package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/calendlam/calendlam/internal/core/domain"
	"github.com/calendlam/calendlam/internal/core/ports/driven"
	"github.com/calendlam/calendlam/internal/logger"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Lay out the booklet and write its pages in print order",
	Long: `Build the booklet for the configured year and write one document
per printed page side, in the order the pages are fed to the printer.

Files are written to <output>/html and named by print sequence,
signature, sheet and side, so a plain directory listing is the print
order. The directory is replaced only after every page has been
written, and only complete runs are recorded in the history.

Examples:
  calendlam generate
  calendlam generate --year 2027 --pages-per-signature 32
  calendlam generate --week-mode continuous -o booklet`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addBookletFlags(generateCmd)
	generateCmd.Flags().StringP("output", "o", "", "output directory (default from settings)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
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

	out := cmd.OutOrStdout()
	printSummary(out, booklet)
	fmt.Fprintf(out, "Wrote %d pages to %s\n", len(booklet.PrintOrder()), dir)
	return nil
}

// generate builds the booklet, renders it into the output directory and
// records the run. Nothing is recorded unless every page was written.
func generate(ctx context.Context, settings domain.BookletSettings) (*domain.Booklet, string, error) {
	if bookletService == nil {
		return nil, "", errors.New("booklet service not configured")
	}
	if pageRenderer == nil {
		return nil, "", errors.New("page renderer not configured")
	}

	booklet, err := bookletService.Build(ctx, settings)
	if err != nil {
		return nil, "", err
	}

	dir := filepath.Join(settings.OutputDir, pageRenderer.Name())
	if err := writePages(ctx, pageRenderer, booklet, dir); err != nil {
		return nil, "", err
	}
	if err := bookletService.Record(ctx, booklet); err != nil {
		return nil, "", err
	}
	return booklet, dir, nil
}

// writePages renders every page of the booklet in print order into a
// temporary sibling of dir and swaps it in once all pages are written.
// On failure dir keeps its previous contents.
func writePages(ctx context.Context, r driven.PageRenderer, b *domain.Booklet, dir string) error {
	defer logger.Timed("Render")()

	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", parent, err)
	}
	tmp, err := os.MkdirTemp(parent, "."+filepath.Base(dir)+"-*")
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(tmp)

	for seq, page := range b.PrintOrder() {
		data, err := r.Render(ctx, page)
		if err != nil {
			return fmt.Errorf("rendering page %d: %w", seq+1, err)
		}
		path := filepath.Join(tmp, pageFileName(seq, page, r.Name()))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	if err := os.Chmod(tmp, 0o755); err != nil {
		return err
	}

	if err := replaceDir(tmp, dir); err != nil {
		return err
	}
	logger.Debug("render: wrote %d %s pages to %s", len(b.PrintOrder()), r.Name(), dir)
	return nil
}

// replaceDir moves src to dst, replacing whatever dst held. The old dst
// is restored if the move fails.
func replaceDir(src, dst string) error {
	old := src + ".old"
	_, err := os.Stat(dst)
	switch {
	case err == nil:
		if err := os.Rename(dst, old); err != nil {
			return fmt.Errorf("replacing %s: %w", dst, err)
		}
		defer os.RemoveAll(old)
	case !os.IsNotExist(err):
		return err
	}

	if err := os.Rename(src, dst); err != nil {
		if rerr := os.Rename(old, dst); rerr != nil && !os.IsNotExist(rerr) {
			return fmt.Errorf("replacing %s: %w (restore failed: %v)", dst, err, rerr)
		}
		return fmt.Errorf("replacing %s: %w", dst, err)
	}
	return nil
}

// pageFileName names a rendered page so that lexical order is print order.
func pageFileName(seq int, page domain.ImposedPage, ext string) string {
	return fmt.Sprintf("%04d-sig%02d-sheet%03d-%s.%s",
		seq+1, page.SignatureNumber, page.GlobalSheetNumber, page.Side, ext)
}

// printSummary writes the one-line booklet summary shared by commands.
func printSummary(w io.Writer, b *domain.Booklet) {
	fmt.Fprintf(w, "Booklet %d: %d week pages, %d blank, %d signatures of %d pages, %d sheets\n",
		b.Year, b.ContentPages, b.BlankPages, len(b.Signatures), b.PagesPerSignature, b.SheetCount)
}

// pageLabel describes a page as its 1-based reading number and date range.
func pageLabel(page domain.Page) string {
	content, ok := page.(domain.ContentPage)
	if !ok {
		return "blank"
	}
	first, last := content.Week.First(), content.Week.Last()
	return fmt.Sprintf("p%d %d.%d.-%d.%d.", content.Position+1,
		first.Number, int(first.Month()), last.Number, int(last.Month()))
}
