// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/calendlam/calendlam/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSignatures lists the signatures of the booklet.
	ViewSignatures ViewType = iota
	// ViewSheets lists the sheets of one signature.
	ViewSheets
	// ViewSheet shows the front and back of one sheet.
	ViewSheet
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSignatures:
		return "signatures"
	case ViewSheets:
		return "sheets"
	case ViewSheet:
		return "sheet"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Parent returns the view reached by going back from v.
func (v ViewType) Parent() ViewType {
	switch v {
	case ViewSheet:
		return ViewSheets
	default:
		return ViewSignatures
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// BookletRequested asks the app to build the booklet from current settings.
type BookletRequested struct{}

// BookletLoaded carries a freshly built booklet.
type BookletLoaded struct {
	Booklet *domain.Booklet
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
