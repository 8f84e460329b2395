package driving

import (
	"context"
	"time"

	"github.com/calendlam/calendlam/internal/core/domain"
)

// BookletService lays out calendar years as printable booklets.
type BookletService interface {
	// Build runs the full pipeline for the given settings: calendar grid,
	// week pages, signatures and imposition. The result is verified
	// against the inverse imposition before it is returned. Build does
	// not record the run; see Record.
	Build(ctx context.Context, settings domain.BookletSettings) (*domain.Booklet, error)

	// Verify checks that undoing the imposition of every signature
	// restores reading order, and that no page is lost or duplicated.
	Verify(booklet *domain.Booklet) error

	// Locate finds where the week containing date is printed.
	// Returns domain.ErrNotFound if the date is not in the booklet.
	Locate(booklet *domain.Booklet, date time.Time) (*domain.ImposedPage, error)

	// Record stores the layout of a booklet in the run history.
	// Callers record a run once its pages have been written.
	Record(ctx context.Context, booklet *domain.Booklet) error

	// History returns recorded runs, most recent first.
	History(ctx context.Context, limit int) ([]domain.Layout, error)

	// Get retrieves a recorded run by ID.
	Get(ctx context.Context, id string) (*domain.Layout, error)
}
