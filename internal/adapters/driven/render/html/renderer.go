package html

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/calendlam/calendlam/internal/core/domain"
	"github.com/calendlam/calendlam/internal/core/ports/driven"
)

//go:embed page.html.tmpl
var templates embed.FS

// Ensure Renderer implements the interface.
var _ driven.PageRenderer = (*Renderer)(nil)

// Renderer renders pages with the embedded HTML template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded page template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templates, "page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Name returns "html".
func (r *Renderer) Name() string {
	return "html"
}

// Render returns the HTML document for a single imposed page.
func (r *Renderer) Render(ctx context.Context, page domain.ImposedPage) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, newPageView(page)); err != nil {
		return nil, fmt.Errorf("render page %d of signature %d: %w",
			page.Position, page.SignatureNumber, err)
	}
	return buf.Bytes(), nil
}

// pageView is the template data of one page.
type pageView struct {
	Blank      bool
	MonthLabel string
	Year       int
	Signature  int
	Sheet      int
	Side       string
	SideMark   string
	Days       []dayView
}

// dayView holds a day number and its weekday names. Secondary is empty
// when only one locale is printed.
type dayView struct {
	Number    int
	Primary   string
	Secondary string
}

// newDayView picks the weekday names for the label mode. The zero mode
// prints both, and identical names print once.
func newDayView(d domain.Day, labels domain.LabelMode) dayView {
	view := dayView{Number: d.Number, Primary: d.WeekdayPrimary, Secondary: d.WeekdaySecondary}
	switch labels {
	case domain.LabelPrimary:
		view.Secondary = ""
	case domain.LabelSecondary:
		view.Primary, view.Secondary = d.WeekdaySecondary, ""
	default:
		if view.Primary == view.Secondary {
			view.Secondary = ""
		}
	}
	return view
}

func newPageView(page domain.ImposedPage) pageView {
	view := pageView{
		Blank:      page.IsBlank(),
		MonthLabel: page.MonthLabel(),
		Year:       page.Year,
		Signature:  page.SignatureNumber,
		Sheet:      page.SheetNumber,
		Side:       page.Side.String(),
		SideMark:   "a",
	}
	if page.Side == domain.SideBack {
		view.SideMark = "b"
	}

	if week := page.Week(); week != nil {
		view.Days = make([]dayView, len(week.Days))
		for i, d := range week.Days {
			view.Days[i] = newDayView(d, page.Labels)
		}
	}
	return view
}
