package tui

import "errors"

// ErrMissingBookletService is returned when the booklet service is not provided.
var ErrMissingBookletService = errors.New("tui: booklet service is required")

// ErrMissingSettings is returned when neither a settings service nor
// explicit settings are available to build the booklet.
var ErrMissingSettings = errors.New("tui: settings service or settings are required")
