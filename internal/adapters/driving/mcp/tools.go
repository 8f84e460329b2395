package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/calendlam/calendlam/internal/core/domain"
)

// dateLayout is the date format used in tool inputs and outputs.
const dateLayout = "2006-01-02"

// LayoutInput is the input schema for the layout_booklet tool.
// Zero values fall back to the stored settings.
type LayoutInput struct {
	Year              int    `json:"year,omitempty" jsonschema:"calendar year to lay out"`
	PagesPerSignature int    `json:"pages_per_signature,omitempty" jsonschema:"pages per signature, a positive even number"`
	Labels            string `json:"labels,omitempty" jsonschema:"month label locales: primary, secondary or both"`
	WeekMode          string `json:"week_mode,omitempty" jsonschema:"split breaks weeks at month ends, continuous does not"`
}

// LayoutOutput is the output schema for the layout_booklet tool.
type LayoutOutput struct {
	BookletID         string            `json:"booklet_id"`
	Year              int               `json:"year"`
	PagesPerSignature int               `json:"pages_per_signature"`
	ContentPages      int               `json:"content_pages"`
	BlankPages        int               `json:"blank_pages"`
	Sheets            int               `json:"sheets"`
	Signatures        []SignatureOutput `json:"signatures"`
}

// SignatureOutput is one signature in print order.
type SignatureOutput struct {
	Number int          `json:"number"`
	Pages  []PageOutput `json:"pages"`
}

// PageOutput is one imposed page.
type PageOutput struct {
	Position    int    `json:"position"`
	Page        int    `json:"page"`
	Blank       bool   `json:"blank"`
	Sheet       int    `json:"sheet"`
	GlobalSheet int    `json:"global_sheet"`
	Side        string `json:"side"`
	MonthLabel  string `json:"month_label,omitempty"`
	FirstDate   string `json:"first_date,omitempty"`
	LastDate    string `json:"last_date,omitempty"`
}

// LocateInput is the input schema for the locate_date tool.
type LocateInput struct {
	Date string `json:"date" jsonschema:"date to find, formatted YYYY-MM-DD"`
}

// LocateOutput is the output schema for the locate_date tool.
type LocateOutput struct {
	Signature int        `json:"signature"`
	Location  PageOutput `json:"location"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "layout_booklet",
		Description: "Lay out a wall-calendar booklet and return its pages in print order",
	}, s.handleLayout)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "locate_date",
		Description: "Find the signature, sheet and side on which a date is printed",
	}, s.handleLocate)
}

// handleLayout handles the layout_booklet tool invocation.
func (s *Server) handleLayout(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LayoutInput,
) (*mcp.CallToolResult, LayoutOutput, error) {
	settings, err := s.ports.settings()
	if err != nil {
		return nil, LayoutOutput{}, err
	}
	if input.Year != 0 {
		settings.Year = input.Year
	}
	if input.PagesPerSignature != 0 {
		settings.PagesPerSignature = input.PagesPerSignature
	}
	if input.Labels != "" {
		settings.Labels = domain.LabelMode(input.Labels)
	}
	if input.WeekMode != "" {
		settings.WeekMode = domain.WeekMode(input.WeekMode)
	}

	booklet, err := s.ports.Booklet.Build(ctx, settings)
	if err != nil {
		return nil, LayoutOutput{}, err
	}

	output := LayoutOutput{
		BookletID:         booklet.ID,
		Year:              booklet.Year,
		PagesPerSignature: booklet.PagesPerSignature,
		ContentPages:      booklet.ContentPages,
		BlankPages:        booklet.BlankPages,
		Sheets:            booklet.SheetCount,
		Signatures:        make([]SignatureOutput, len(booklet.Signatures)),
	}
	for i, sig := range booklet.Signatures {
		pages := make([]PageOutput, len(sig.Pages))
		for j, p := range sig.Pages {
			pages[j] = pageOutput(p)
		}
		output.Signatures[i] = SignatureOutput{Number: sig.Number, Pages: pages}
	}

	return nil, output, nil
}

// handleLocate handles the locate_date tool invocation.
// The booklet is built for the year of the requested date.
func (s *Server) handleLocate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LocateInput,
) (*mcp.CallToolResult, LocateOutput, error) {
	date, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		return nil, LocateOutput{}, fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD", domain.ErrConfiguration, input.Date)
	}

	settings, err := s.ports.settings()
	if err != nil {
		return nil, LocateOutput{}, err
	}
	settings.Year = date.Year()

	booklet, err := s.ports.Booklet.Build(ctx, settings)
	if err != nil {
		return nil, LocateOutput{}, err
	}
	page, err := s.ports.Booklet.Locate(booklet, date)
	if err != nil {
		return nil, LocateOutput{}, err
	}

	return nil, LocateOutput{
		Signature: page.SignatureNumber,
		Location:  pageOutput(*page),
	}, nil
}

func pageOutput(p domain.ImposedPage) PageOutput {
	out := PageOutput{
		Position:    p.Position,
		Page:        p.Page.Index() + 1,
		Blank:       p.IsBlank(),
		Sheet:       p.SheetNumber,
		GlobalSheet: p.GlobalSheetNumber,
		Side:        p.Side.String(),
		MonthLabel:  p.MonthLabel(),
	}
	if week := p.Week(); week != nil {
		out.FirstDate = week.First().Date.Format(dateLayout)
		out.LastDate = week.Last().Date.Format(dateLayout)
	}
	return out
}
