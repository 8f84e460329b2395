package mcp

import (
	"github.com/calendlam/calendlam/internal/core/domain"
	"github.com/calendlam/calendlam/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Booklet builds booklets and reads run history.
	Booklet driving.BookletService

	// Settings supplies the stored settings that tool inputs override.
	// Optional; defaults are used when nil.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Booklet == nil {
		return ErrMissingBookletService
	}
	return nil
}

// settings returns the stored settings, or the defaults without a
// settings service.
func (p *Ports) settings() (domain.BookletSettings, error) {
	if p.Settings == nil {
		return domain.DefaultBookletSettings(), nil
	}
	s, err := p.Settings.Get()
	if err != nil {
		return domain.BookletSettings{}, err
	}
	return *s, nil
}
