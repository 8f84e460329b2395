package driven

import "github.com/calendlam/calendlam/internal/core/domain"

// LocaleCatalog resolves language tags to day and month name tables.
type LocaleCatalog interface {
	// Lookup returns the name table for a BCP 47 language tag.
	// Returns domain.ErrConfiguration if no table matches.
	Lookup(tag string) (domain.NameTable, error)

	// Tags returns the tags of all available tables.
	Tags() []string
}
