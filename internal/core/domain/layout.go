package domain

import "time"

// BlankIndex marks a padding page in Layout.PrintOrder.
const BlankIndex = -1

// Layout is the persisted summary of a booklet run.
// It records enough to reprint the booklet in the same order.
type Layout struct {
	// ID is the booklet run id.
	ID string

	Year              int
	PagesPerSignature int
	ContentPages      int
	BlankPages        int
	Signatures        int
	Sheets            int

	// PrintOrder lists reading-order page indices in print order,
	// with BlankIndex for padding pages.
	PrintOrder []int

	CreatedAt time.Time
}

// NewLayout summarises a booklet.
func NewLayout(b *Booklet) Layout {
	order := b.PrintOrder()
	indices := make([]int, len(order))
	for i, p := range order {
		if p.IsBlank() {
			indices[i] = BlankIndex
			continue
		}
		indices[i] = p.Page.Index()
	}
	return Layout{
		ID:                b.ID,
		Year:              b.Year,
		PagesPerSignature: b.PagesPerSignature,
		ContentPages:      b.ContentPages,
		BlankPages:        b.BlankPages,
		Signatures:        len(b.Signatures),
		Sheets:            b.SheetCount,
		PrintOrder:        indices,
		CreatedAt:         b.CreatedAt,
	}
}
