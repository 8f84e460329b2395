// Package tui provides an interactive booklet preview for calendlam.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/calendlam/calendlam/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the preview.
type Ports struct {
	// Booklet builds the booklet being previewed.
	Booklet driving.BookletService

	// Settings supplies stored settings on load and reload.
	// Optional when the app is given explicit settings.
	Settings driving.SettingsService
}

// Validate ensures the required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Booklet == nil {
		return ErrMissingBookletService
	}
	return nil
}
