package domain

// Page is one printable unit of a booklet.
//
// A Page is either a ContentPage wrapping a Week or a BlankPage used as
// signature padding. The set of implementations is closed; switch on the
// concrete type to handle each case.
type Page interface {
	// Index is the page's 0-based position in reading order across the
	// whole booklet. Blank padding continues the numbering.
	Index() int

	// IsBlank reports whether the page is padding.
	IsBlank() bool

	isPage()
}

// ContentPage is a page showing one week of the calendar.
type ContentPage struct {
	Position   int
	Week       *Week
	MonthLabel string
}

// Index implements Page.
func (p ContentPage) Index() int { return p.Position }

// IsBlank implements Page.
func (ContentPage) IsBlank() bool { return false }

func (ContentPage) isPage() {}

// BlankPage is padding appended to fill the last signature.
type BlankPage struct {
	Position int
}

// Index implements Page.
func (p BlankPage) Index() int { return p.Position }

// IsBlank implements Page.
func (BlankPage) IsBlank() bool { return true }

func (BlankPage) isPage() {}

// Ensure both variants implement Page.
var (
	_ Page = ContentPage{}
	_ Page = BlankPage{}
)
