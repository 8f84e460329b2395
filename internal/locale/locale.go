// Package locale provides the built-in day and month name tables and
// resolves BCP 47 language tags to them.
package locale

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/calendlam/calendlam/internal/core/domain"
	"github.com/calendlam/calendlam/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.LocaleCatalog = (*Catalog)(nil)

var czechNames = domain.NameTable{
	Tag:      "cs",
	Weekdays: []string{"pondělí", "úterý", "středa", "čtvrtek", "pátek", "sobota", "neděle"},
	Months: []string{"leden", "únor", "březen", "duben", "květen", "červen",
		"červenec", "srpen", "září", "říjen", "listopad", "prosinec"},
}

var englishNames = domain.NameTable{
	Tag:      "en",
	Weekdays: []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
	Months: []string{"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december"},
}

// Czech returns the Czech name table with capitalised names.
func Czech() domain.NameTable {
	return Title(czechNames)
}

// English returns the English name table with capitalised names.
func English() domain.NameTable {
	return Title(englishNames)
}

// Title returns a copy of the table with every name title-cased using the
// casing rules of the table's language.
func Title(t domain.NameTable) domain.NameTable {
	tag, err := language.Parse(t.Tag)
	if err != nil {
		tag = language.Und
	}
	caser := cases.Title(tag)

	out := domain.NameTable{
		Tag:      t.Tag,
		Weekdays: make([]string, len(t.Weekdays)),
		Months:   make([]string, len(t.Months)),
	}
	for i, name := range t.Weekdays {
		out.Weekdays[i] = caser.String(name)
	}
	for i, name := range t.Months {
		out.Months[i] = caser.String(name)
	}
	return out
}

// Catalog resolves language tags to name tables.
// A Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	tables  []domain.NameTable
	matcher language.Matcher
}

// NewCatalog creates a catalog from the given tables.
// Every table must be valid and carry a parseable language tag.
func NewCatalog(tables ...domain.NameTable) (*Catalog, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: no name tables", domain.ErrConfiguration)
	}
	tags := make([]language.Tag, len(tables))
	for i, t := range tables {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		tag, err := language.Parse(t.Tag)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid language tag %q: %v", domain.ErrConfiguration, t.Tag, err)
		}
		tags[i] = tag
	}
	return &Catalog{
		tables:  tables,
		matcher: language.NewMatcher(tags),
	}, nil
}

// Default returns a catalog with the built-in Czech and English tables.
func Default() *Catalog {
	c, err := NewCatalog(Czech(), English())
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the table best matching tag, e.g. "cs-CZ" resolves to
// the Czech table. Tags without a close match fail with
// domain.ErrConfiguration.
func (c *Catalog) Lookup(tag string) (domain.NameTable, error) {
	want, err := language.Parse(tag)
	if err != nil {
		return domain.NameTable{}, fmt.Errorf("%w: invalid language tag %q", domain.ErrConfiguration, tag)
	}
	_, idx, conf := c.matcher.Match(want)
	if conf < language.High {
		return domain.NameTable{}, fmt.Errorf("%w: no name table for language %q", domain.ErrConfiguration, tag)
	}
	return c.tables[idx], nil
}

// Tags returns the tags of all available tables.
func (c *Catalog) Tags() []string {
	tags := make([]string, len(c.tables))
	for i, t := range c.tables {
		tags[i] = t.Tag
	}
	return tags
}
