package driven

import (
	"context"

	"github.com/calendlam/calendlam/internal/core/domain"
)

// LayoutStore persists summaries of booklet runs.
type LayoutStore interface {
	// Save stores a layout. Saving an existing ID replaces it.
	Save(ctx context.Context, layout domain.Layout) error

	// Get retrieves a layout by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Layout, error)

	// List returns the most recent layouts first, at most limit entries.
	// A limit of zero or less returns all layouts.
	List(ctx context.Context, limit int) ([]domain.Layout, error)

	// Delete removes a layout by ID.
	Delete(ctx context.Context, id string) error
}
