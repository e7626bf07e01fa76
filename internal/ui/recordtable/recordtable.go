// Package recordtable renders the monkey record set as a scrollable table
// with a cursor.
//
// The table keeps only presentation state (cursor, scroll offset, column
// visibility). The rows are replaced wholesale whenever a list response
// lands; the cursor follows the previously selected record if it is still
// present.
package recordtable

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/monkeyreg/internal/monkey"
	"github.com/zjrosen/monkeyreg/internal/ui/styles"
)

// zonePrefix namespaces row zone ids.
const zonePrefix = "monkey-row-"

// Column is one table column.
type Column struct {
	Header string
	// Width is a fixed width; 0 makes the column flex.
	Width    int
	MinWidth int
	// HideBelow hides the column when the table is narrower than this.
	HideBelow int
	Render    func(m monkey.Monkey, width int) string
}

// Columns returns the standard column set. The id column is included only
// when showIDs is set.
func Columns(showIDs bool) []Column {
	cols := []Column{}
	if showIDs {
		cols = append(cols, Column{Header: "ID", Width: 8, HideBelow: 60, Render: func(m monkey.Monkey, w int) string {
			return styles.TableIDStyle.Render(styles.PadRight(m.ShortID(), w))
		}})
	}
	return append(cols,
		Column{Header: "Name", MinWidth: 10, Render: func(m monkey.Monkey, w int) string {
			return styles.TableCellStyle.Render(styles.PadRight(m.Name, w))
		}},
		Column{Header: "Species", Width: 9, Render: func(m monkey.Monkey, w int) string {
			return styles.SpeciesStyle(m.Species).Render(styles.PadRight(m.Species.Label(), w))
		}},
		Column{Header: "Age", Width: 4, Render: func(m monkey.Monkey, w int) string {
			return fmt.Sprintf("%*d", w, m.AgeYears)
		}},
		Column{Header: "Favourite Fruit", MinWidth: 10, HideBelow: 50, Render: func(m monkey.Monkey, w int) string {
			return styles.TableCellStyle.Render(styles.PadRight(m.FavouriteFruit, w))
		}},
		Column{Header: "Last Checkup", Width: 12, HideBelow: 70, Render: func(m monkey.Monkey, w int) string {
			return styles.PadRight(m.LastCheckupLabel(), w)
		}},
	)
}

const columnGap = 2

// Model holds table state.
type Model struct {
	rows    []monkey.Monkey
	cursor  int
	offset  int
	width   int
	height  int
	showIDs bool
}

// New creates an empty table.
func New(showIDs bool) Model {
	return Model{showIDs: showIDs}
}

// SetRows replaces the rows. The cursor stays on the same record id when it
// survives the refresh and is clamped otherwise.
func (m Model) SetRows(rows []monkey.Monkey) Model {
	prev, hadPrev := m.Selected()
	m.rows = rows
	if hadPrev {
		for i, r := range rows {
			if r.ID == prev.ID {
				m.cursor = i
				return m.clamp()
			}
		}
	}
	return m.clamp()
}

// Rows returns the current rows.
func (m Model) Rows() []monkey.Monkey { return m.rows }

// SetSize sets the available dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m.clamp()
}

// ToggleIDs shows or hides the id column.
func (m Model) ToggleIDs() Model {
	m.showIDs = !m.showIDs
	return m
}

// ShowIDs reports whether the id column is shown.
func (m Model) ShowIDs() bool { return m.showIDs }

// Cursor returns the selected row index.
func (m Model) Cursor() int { return m.cursor }

// Selected returns the record under the cursor.
func (m Model) Selected() (monkey.Monkey, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return monkey.Monkey{}, false
	}
	return m.rows[m.cursor], true
}

// Move shifts the cursor by delta rows.
func (m Model) Move(delta int) Model {
	m.cursor += delta
	return m.clamp()
}

// Page shifts the cursor by a screen of rows in direction dir (+1 or -1).
func (m Model) Page(dir int) Model {
	return m.Move(dir * max(m.bodyHeight()-1, 1))
}

// Select moves the cursor to index i.
func (m Model) Select(i int) Model {
	m.cursor = i
	return m.clamp()
}

// bodyHeight is the number of visible data rows.
func (m Model) bodyHeight() int {
	return max(m.height-1, 1)
}

func (m Model) clamp() Model {
	if len(m.rows) == 0 {
		m.cursor, m.offset = 0, 0
		return m
	}
	m.cursor = min(max(m.cursor, 0), len(m.rows)-1)
	visible := m.bodyHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	m.offset = min(max(m.offset, 0), max(len(m.rows)-visible, 0))
	return m
}

// ZoneID is the bubblezone id of row i.
func ZoneID(i int) string {
	return fmt.Sprintf("%s%d", zonePrefix, i)
}

// RowAt returns the row index a mouse event landed on. Only rows currently
// on screen are considered.
func (m Model) RowAt(msg tea.MouseMsg) (int, bool) {
	end := min(m.offset+m.bodyHeight(), len(m.rows))
	for i := m.offset; i < end; i++ {
		if z := zone.Get(ZoneID(i)); z != nil && z.InBounds(msg) {
			return i, true
		}
	}
	return 0, false
}

// layout resolves visible columns and their widths for the current width.
func (m Model) layout() ([]Column, []int) {
	var cols []Column
	for _, c := range Columns(m.showIDs) {
		if c.HideBelow > 0 && m.width < c.HideBelow {
			continue
		}
		cols = append(cols, c)
	}

	// Two-cell cursor gutter plus gaps between columns.
	avail := m.width - 2 - columnGap*(len(cols)-1)
	widths := make([]int, len(cols))
	flex := 0
	for i, c := range cols {
		if c.Width > 0 {
			widths[i] = c.Width
			avail -= c.Width
		} else {
			flex++
		}
	}
	if flex > 0 {
		share := max(avail/flex, 0)
		extra := max(avail-share*flex, 0)
		for i, c := range cols {
			if c.Width > 0 {
				continue
			}
			widths[i] = max(share, c.MinWidth)
			if extra > 0 {
				widths[i] += extra
				extra = 0
			}
		}
	}
	return cols, widths
}

// View renders the header and visible rows.
func (m Model) View() string {
	cols, widths := m.layout()
	gap := strings.Repeat(" ", columnGap)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = styles.TableHeaderStyle.Render(styles.PadRight(c.Header, widths[i]))
	}
	lines := []string{"  " + strings.Join(headers, gap)}

	end := min(m.offset+m.bodyHeight(), len(m.rows))
	for i := m.offset; i < end; i++ {
		rec := m.rows[i]
		cells := make([]string, len(cols))
		for j, c := range cols {
			cells[j] = c.Render(rec, widths[j])
		}
		prefix := "  "
		line := strings.Join(cells, gap)
		if i == m.cursor {
			prefix = styles.SelectionIndicatorStyle.Render("> ")
			line = lipgloss.NewStyle().Background(styles.SelectedRowBgColor).Render(line)
		}
		lines = append(lines, zone.Mark(ZoneID(i), prefix+line))
	}
	return strings.Join(lines, "\n")
}
