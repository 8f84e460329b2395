package driven

import (
	"context"

	"github.com/calendlam/calendlam/internal/core/domain"
)

// PageRenderer turns imposed pages into printable documents.
// Renderers must produce one document per imposed page and never reorder.
type PageRenderer interface {
	// Name returns the renderer name, also used as the file extension.
	Name() string

	// Render returns the document for a single imposed page.
	// Blank pages render as an empty placeholder.
	Render(ctx context.Context, page domain.ImposedPage) ([]byte, error)
}
