// Package mcp provides an MCP (Model Context Protocol) server adapter for calendlam.
// It lets AI assistants lay out calendar booklets and read the stored run history.
package mcp

import "errors"

// ErrMissingBookletService is returned when the booklet service is not provided.
var ErrMissingBookletService = errors.New("mcp: booklet service is required")
