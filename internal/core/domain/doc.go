// Package domain defines the core business entities for calendlam.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Day, Week, Month, Grid: the calendar year as built for printing
//   - Page: one printable unit, either a ContentPage or a BlankPage
//   - Signature, Sheet: bookbinding groups and their physical leaves
//   - ImposedPage, Booklet: pages in physical print order with numbering
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
