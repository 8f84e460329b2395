package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calendlam/calendlam/internal/adapters/driving/tui/components/list"
	"github.com/calendlam/calendlam/internal/adapters/driving/tui/components/status"
	"github.com/calendlam/calendlam/internal/adapters/driving/tui/keymap"
	"github.com/calendlam/calendlam/internal/adapters/driving/tui/messages"
	"github.com/calendlam/calendlam/internal/adapters/driving/tui/styles"
	"github.com/calendlam/calendlam/internal/core/domain"
)

// chrome is the number of lines taken by the header and status bar.
const chrome = 4

// App is the booklet preview following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports
	ctx   context.Context

	// settings overrides the stored settings when set.
	settings *domain.BookletSettings

	styles *styles.Styles
	keymap *keymap.KeyMap
	status *status.Bar

	signatures *list.List
	sheets     *list.List

	booklet *domain.Booklet

	// signature and sheet are the indices opened by the user.
	signature int
	sheet     int

	currentView messages.ViewType

	// helpReturn is the view shown when help is closed.
	helpReturn messages.ViewType

	err error

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new preview with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		status:      status.NewBar(s, km),
		signatures:  list.New(s, km),
		sheets:      list.New(s, km),
		currentView: messages.ViewSignatures,
		width:       80,
		height:      24,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithSettings makes the app build from settings instead of the
// settings service.
func (a *App) WithSettings(settings domain.BookletSettings) *App {
	a.settings = &settings
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("calendlam - booklet preview"),
		a.loadBooklet,
	)
}

// loadBooklet builds the booklet and reports it as a message.
func (a *App) loadBooklet() tea.Msg {
	settings := a.settings
	if settings == nil {
		if a.ports.Settings == nil {
			return messages.BookletLoaded{Err: ErrMissingSettings}
		}
		stored, err := a.ports.Settings.Get()
		if err != nil {
			return messages.BookletLoaded{Err: err}
		}
		settings = stored
	}

	booklet, err := a.ports.Booklet.Build(a.ctx, *settings)
	return messages.BookletLoaded{Booklet: booklet, Err: err}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.signatures.SetDimensions(msg.Width, msg.Height-chrome)
		a.sheets.SetDimensions(msg.Width, msg.Height-chrome)
		a.status.SetWidth(msg.Width)
		return a, nil

	case messages.BookletRequested:
		a.status.SetState(status.StateLoading)
		return a, a.loadBooklet

	case messages.BookletLoaded:
		a.setBooklet(msg.Booklet, msg.Err)
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.status.SetState(status.StateError)
		a.status.SetMessage(msg.Err.Error())
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit

	case keymap.Matches(k, a.keymap.Help):
		if a.currentView == messages.ViewHelp {
			a.currentView = a.helpReturn
			a.status.SetState(a.readyState())
		} else {
			a.helpReturn = a.currentView
			a.currentView = messages.ViewHelp
			a.status.SetState(status.StateHelp)
		}
		return a, nil

	case keymap.Matches(k, a.keymap.Reload):
		return a, func() tea.Msg { return messages.BookletRequested{} }
	}

	if a.currentView == messages.ViewHelp {
		if keymap.Matches(k, a.keymap.Back) {
			a.currentView = a.helpReturn
			a.status.SetState(a.readyState())
		}
		return a, nil
	}

	if keymap.Matches(k, a.keymap.Back) {
		a.currentView = a.currentView.Parent()
		return a, nil
	}

	if a.booklet == nil {
		return a, nil
	}

	switch a.currentView {
	case messages.ViewSignatures:
		if keymap.Matches(k, a.keymap.Select) {
			a.openSignature(a.signatures.Selected())
			return a, nil
		}
		a.signatures.Update(msg)

	case messages.ViewSheets:
		if keymap.Matches(k, a.keymap.Select) {
			a.sheet = a.sheets.Selected()
			a.currentView = messages.ViewSheet
			return a, nil
		}
		a.sheets.Update(msg)

	case messages.ViewSheet:
		sig := a.booklet.Signatures[a.signature]
		switch {
		case keymap.Matches(k, a.keymap.Up) && a.sheet > 0:
			a.sheet--
		case keymap.Matches(k, a.keymap.Down) && a.sheet < len(sig.Sheets)-1:
			a.sheet++
		}
		a.sheets.Select(a.sheet)

	case messages.ViewHelp:
	}
	return a, nil
}

func (a *App) readyState() status.State {
	if a.err != nil {
		return status.StateError
	}
	return status.StateReady
}

// setBooklet replaces the previewed booklet and returns to the signature list.
func (a *App) setBooklet(b *domain.Booklet, err error) {
	a.err = err
	if err != nil {
		a.booklet = nil
		a.signatures.SetRows(nil)
		a.sheets.SetRows(nil)
		a.status.SetState(status.StateError)
		a.status.SetMessage(err.Error())
		a.currentView = messages.ViewSignatures
		return
	}

	a.booklet = b
	rows := make([]string, len(b.Signatures))
	for i, sig := range b.Signatures {
		rows[i] = signatureRow(sig)
	}
	a.signatures.SetRows(rows)
	a.sheets.SetRows(nil)
	a.signature, a.sheet = 0, 0
	a.currentView = messages.ViewSignatures
	a.status.SetState(status.StateReady)
	a.status.SetMessage(fmt.Sprintf("%d: %d pages, %d blank, %d signatures, %d sheets",
		b.Year, b.ContentPages, b.BlankPages, len(b.Signatures), b.SheetCount))
}

func (a *App) openSignature(i int) {
	if i < 0 || i >= len(a.booklet.Signatures) {
		return
	}
	a.signature = i
	sig := a.booklet.Signatures[i]
	rows := make([]string, len(sig.Sheets))
	for k, sheet := range sig.Sheets {
		rows[k] = sheetRow(sheet)
	}
	a.sheets.SetRows(rows)
	a.sheet = 0
	a.currentView = messages.ViewSheets
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Booklet returns the booklet being previewed, or nil before it is built.
func (a *App) Booklet() *domain.Booklet {
	return a.booklet
}

// Err returns the last error.
func (a *App) Err() error {
	return a.err
}

// View implements tea.Model.
func (a *App) View() string {
	var body string
	switch a.currentView {
	case messages.ViewSignatures:
		body = a.signatures.View()
	case messages.ViewSheets:
		body = a.sheets.View()
	case messages.ViewSheet:
		body = a.sheetView()
	case messages.ViewHelp:
		body = a.helpView()
	}
	if a.err != nil && a.booklet == nil {
		body = a.styles.Error.Render("Error: " + a.err.Error())
	}

	return strings.Join([]string{a.header(), "", body, "", a.status.View()}, "\n")
}

func (a *App) header() string {
	title := "calendlam"
	if a.booklet != nil {
		title = fmt.Sprintf("calendlam · %d", a.booklet.Year)
	}
	crumbs := []string{a.styles.Title.Render(title)}

	view := a.currentView
	if view == messages.ViewHelp {
		view = a.helpReturn
	}
	if a.booklet != nil && (view == messages.ViewSheets || view == messages.ViewSheet) {
		crumbs = append(crumbs, a.styles.Subtitle.Render(
			fmt.Sprintf("signature %d", a.booklet.Signatures[a.signature].Number)))
	}
	if a.booklet != nil && view == messages.ViewSheet {
		crumbs = append(crumbs, a.styles.Subtitle.Render(fmt.Sprintf("sheet %d", a.sheet+1)))
	}
	return strings.Join(crumbs, a.styles.Muted.Render(" › "))
}

func (a *App) sheetView() string {
	if a.booklet == nil {
		return ""
	}
	sig := a.booklet.Signatures[a.signature]
	if a.sheet >= len(sig.Sheets) {
		return ""
	}
	sheet := sig.Sheets[a.sheet]

	front := a.sideBox(domain.SideFront, sheet.Front)
	back := a.sideBox(domain.SideBack, sheet.Back)
	info := a.styles.Muted.Render(fmt.Sprintf("sheet %d of %d in signature, #%d in booklet",
		sheet.Number, len(sig.Sheets), sheet.GlobalNumber))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, front, " ", back),
		info,
	)
}

func (a *App) sideBox(side domain.Side, page domain.Page) string {
	lines := []string{a.styles.Side(side.String()).Render(strings.ToUpper(side.String()))}

	content, ok := page.(domain.ContentPage)
	if !ok {
		lines = append(lines, a.styles.Blank.Render("blank page"))
		return a.styles.Sheet.Render(strings.Join(lines, "\n"))
	}

	lines = append(lines,
		a.styles.Subtitle.Render(content.MonthLabel),
		a.styles.Muted.Render(fmt.Sprintf("page %d", content.Position+1)),
	)
	for _, d := range content.Week.Days {
		lines = append(lines, a.styles.Normal.Render(
			fmt.Sprintf("%2d %s / %s", d.Number, d.WeekdayPrimary, d.WeekdaySecondary)))
	}
	return a.styles.Sheet.Render(strings.Join(lines, "\n"))
}

func (a *App) helpView() string {
	lines := []string{a.styles.Subtitle.Render("Keys"), ""}
	for _, group := range a.keymap.FullHelp() {
		for _, b := range group {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("  %-8s %s", h.Key, a.styles.Help.Render(h.Desc)))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// signatureRow summarises a signature as one list row.
func signatureRow(sig domain.ImposedSignature) string {
	first, last := -1, -1
	labels := make([]string, 0, 2)
	blanks := 0
	for _, p := range sig.Pages {
		if p.IsBlank() {
			blanks++
			continue
		}
		idx := p.Page.Index()
		if first == -1 || idx < first {
			first = idx
		}
		if idx > last {
			last = idx
		}
	}

	for _, p := range sig.Pages {
		if c, ok := p.Page.(domain.ContentPage); ok && (c.Position == first || c.Position == last) {
			if len(labels) == 0 || labels[len(labels)-1] != c.MonthLabel {
				labels = append(labels, c.MonthLabel)
			}
		}
	}

	row := fmt.Sprintf("Signature %d  sheets %d-%d", sig.Number,
		sig.Sheets[0].GlobalNumber, sig.Sheets[len(sig.Sheets)-1].GlobalNumber)
	if first >= 0 {
		row += fmt.Sprintf("  pages %d-%d  %s", first+1, last+1, strings.Join(labels, " … "))
	}
	if blanks > 0 {
		row += fmt.Sprintf("  (%d blank)", blanks)
	}
	return row
}

// sheetRow summarises a sheet as one list row.
func sheetRow(sheet domain.Sheet) string {
	return fmt.Sprintf("Sheet %d (#%d)  front: %s  back: %s",
		sheet.Number, sheet.GlobalNumber, pageLabel(sheet.Front), pageLabel(sheet.Back))
}

// pageLabel names a page by number and date range.
func pageLabel(page domain.Page) string {
	content, ok := page.(domain.ContentPage)
	if !ok {
		return "blank"
	}
	first, last := content.Week.First(), content.Week.Last()
	return fmt.Sprintf("p%d %d.%d.-%d.%d.", content.Position+1,
		first.Number, int(first.Month()), last.Number, int(last.Month()))
}
