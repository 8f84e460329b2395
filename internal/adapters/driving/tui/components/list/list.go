// Package list provides a scrolling cursor list for the TUI.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calendlam/calendlam/internal/adapters/driving/tui/keymap"
	"github.com/calendlam/calendlam/internal/adapters/driving/tui/styles"
)

// List displays pre-formatted rows with a cursor.
type List struct {
	rows     []string
	selected int
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	width    int
	height   int
}

// New creates an empty list.
func New(s *styles.Styles, km *keymap.KeyMap) *List {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &List{
		styles: s,
		keymap: km,
		width:  80,
		height: 10,
	}
}

// SetRows replaces the rows and moves the cursor to the top.
func (l *List) SetRows(rows []string) {
	l.rows = rows
	l.selected = 0
}

// Rows returns the current rows.
func (l *List) Rows() []string {
	return l.rows
}

// Selected returns the cursor index.
func (l *List) Selected() int {
	return l.selected
}

// Select moves the cursor to i, clamped to the rows.
func (l *List) Select(i int) {
	if i >= len(l.rows) {
		i = len(l.rows) - 1
	}
	if i < 0 {
		i = 0
	}
	l.selected = i
}

// SetDimensions sets the visible area.
func (l *List) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Update handles cursor movement keys.
func (l *List) Update(msg tea.Msg) (*List, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	k := keyMsg.String()
	switch {
	case keymap.Matches(k, l.keymap.Up):
		l.Select(l.selected - 1)
	case keymap.Matches(k, l.keymap.Down):
		l.Select(l.selected + 1)
	case keymap.Matches(k, l.keymap.Top):
		l.Select(0)
	case keymap.Matches(k, l.keymap.Bottom):
		l.Select(len(l.rows) - 1)
	}
	return l, nil
}

// View renders the visible window of rows.
func (l *List) View() string {
	if len(l.rows) == 0 {
		return l.styles.Muted.Render("Nothing to show")
	}

	visible := l.height
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.rows) {
		end = len(l.rows)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row := l.truncate(l.rows[i])
		if i == l.selected {
			lines = append(lines, l.styles.Selected.Render("> "+row))
		} else {
			lines = append(lines, l.styles.Normal.Render("  "+row))
		}
	}
	return strings.Join(lines, "\n")
}

func (l *List) truncate(row string) string {
	limit := l.width - 2
	if limit < 4 {
		limit = 4
	}
	r := []rune(row)
	if len(r) <= limit {
		return row
	}
	return string(r[:limit-3]) + "..."
}
