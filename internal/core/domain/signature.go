package domain

import "time"

// Signature is a fixed-size group of pages in reading order, folded and
// stitched together as one bookbinding unit.
type Signature struct {
	// Number is the 1-based position of the signature in the booklet.
	Number int

	// Pages holds exactly Capacity() pages; the last signature of a
	// booklet is padded with BlankPages.
	Pages []Page
}

// Capacity returns the number of page sides in the signature.
func (s Signature) Capacity() int {
	return len(s.Pages)
}

// Blanks returns the number of padding pages in the signature.
func (s Signature) Blanks() int {
	n := 0
	for _, p := range s.Pages {
		if p.IsBlank() {
			n++
		}
	}
	return n
}

// Side identifies the printed side of a sheet.
type Side string

// Sheet sides.
const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

// String returns the string representation.
func (s Side) String() string {
	return string(s)
}

// Sheet is one physical piece of paper holding two page sides.
type Sheet struct {
	// Number is the 1-based sheet number within its signature.
	Number int

	// GlobalNumber is the 1-based sheet number across the booklet.
	GlobalNumber int

	Front Page
	Back  Page
}

// ImposedPage is a page placed at its physical print position.
// It is the record handed to renderers, which must keep the order.
type ImposedPage struct {
	// Page is the content or blank page printed at this position.
	Page Page

	// Position is the 0-based index within the signature's print order.
	Position int

	// Year is the calendar year of the booklet.
	Year int

	// Labels selects the locales printed on the page.
	Labels LabelMode

	// SignatureNumber is the 1-based signature the page belongs to.
	SignatureNumber int

	// SheetNumber is the 1-based sheet within the signature.
	SheetNumber int

	// GlobalSheetNumber is the 1-based sheet across the booklet.
	GlobalSheetNumber int

	// Side is the sheet side the page is printed on.
	Side Side
}

// IsBlank reports whether the imposed page is padding.
func (p ImposedPage) IsBlank() bool {
	return p.Page.IsBlank()
}

// Week returns the week printed on the page, or nil for blank pages.
func (p ImposedPage) Week() *Week {
	if c, ok := p.Page.(ContentPage); ok {
		return c.Week
	}
	return nil
}

// MonthLabel returns the month label of the page, or "" for blank pages.
func (p ImposedPage) MonthLabel() string {
	if c, ok := p.Page.(ContentPage); ok {
		return c.MonthLabel
	}
	return ""
}

// ImposedSignature is a signature in physical print order.
type ImposedSignature struct {
	Number int

	// Pages is the imposition order of the signature.
	Pages []ImposedPage

	// Sheets pairs consecutive print positions into front and back.
	Sheets []Sheet
}

// Booklet is the result of one pagination and imposition run.
type Booklet struct {
	// ID uniquely identifies the run.
	ID string

	Year              int
	PagesPerSignature int

	// ContentPages is the number of week pages.
	ContentPages int

	// BlankPages is the number of padding pages.
	BlankPages int

	// SheetCount is the total number of sheets across all signatures.
	SheetCount int

	Signatures []ImposedSignature

	CreatedAt time.Time
}

// PrintOrder returns every imposed page of the booklet in the order it is
// fed to the printer.
func (b *Booklet) PrintOrder() []ImposedPage {
	out := make([]ImposedPage, 0, len(b.Signatures)*b.PagesPerSignature)
	for _, sig := range b.Signatures {
		out = append(out, sig.Pages...)
	}
	return out
}
