package tui

import (
	"fmt"
	"strings"

	"github.com/spindash/spindash/internal/core"
)

// tableColumn is one All Songs column with a fixed minimum width. Title
// absorbs any leftover horizontal space.
type tableColumn struct {
	label  string
	width  int
	sortBy core.SortColumn
	sorts  bool
}

var songColumns = []tableColumn{
	{label: "Played At", width: 19, sortBy: core.SortPlayedAt, sorts: true},
	{label: "Title", width: 28, sortBy: core.SortTrack, sorts: true},
	{label: "Artist", width: 22, sortBy: core.SortArtist, sorts: true},
	{label: "Album", width: 20},
	{label: "Time Taken", width: 10},
}

// tableBodyHeight is the number of song rows that fit between the chrome
// above and below the table.
func (m Model) tableBodyHeight() int {
	// header + status + blanks + column header + show-more line + footer
	h := m.height - 9
	if h < 5 {
		h = 5
	}
	return h
}

func (m Model) renderSongTable() string {
	rows := m.session.Visible()
	if len(rows) == 0 {
		return "  " + dimStyle.Render("No songs recorded for "+m.mode.PeriodLabel(m.year, m.month)+".")
	}

	cols := m.songColumnWidths()

	var b strings.Builder
	b.WriteString("  " + m.renderTableHeader(cols) + "\n")

	body := m.tableBodyHeight()
	offset := m.tableOffset
	if offset > len(rows)-1 {
		offset = len(rows) - 1
	}
	end := offset + body
	if end > len(rows) {
		end = len(rows)
	}

	for i := offset; i < end; i++ {
		line := renderSongRow(rows[i], cols)
		if i%2 == 1 {
			line = tableRowAltStyle.Render(line)
		} else {
			line = tableRowStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}

	if bar := renderTableScrollBar(m.width-4, offset, body, len(rows)); bar != "" {
		b.WriteString(bar + "\n")
	}
	b.WriteString("\n  " + m.tableFooterLine())
	return b.String()
}

func (m Model) renderTableHeader(cols []tableColumn) string {
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		label := c.label
		if c.sorts && c.sortBy == m.sortColumn {
			if m.sortOrder == core.Descending {
				label += " ▼"
			} else {
				label += " ▲"
			}
		}
		parts = append(parts, fmt.Sprintf(" %-*s", c.width, truncate(label, c.width)))
	}
	return tableHeaderStyle.Render(strings.Join(parts, " "))
}

func renderSongRow(p core.Play, cols []tableColumn) string {
	playedAt := "—"
	if p.PlayedAt != nil {
		playedAt = p.PlayedAt.UTC().Format("2006-01-02 15:04:05")
	}
	cells := []string{playedAt, p.TrackName, p.ArtistDisplay, p.Album, p.TimeTaken}

	parts := make([]string, 0, len(cols))
	for i, c := range cols {
		parts = append(parts, fmt.Sprintf(" %-*s", c.width, truncate(cells[i], c.width)))
	}
	return strings.Join(parts, " ")
}

// songColumnWidths widens the Title column with whatever space the terminal
// leaves over after the fixed columns.
func (m Model) songColumnWidths() []tableColumn {
	cols := make([]tableColumn, len(songColumns))
	copy(cols, songColumns)

	fixed := 2 // left margin
	for _, c := range cols {
		fixed += c.width + 2
	}
	if extra := m.width - fixed; extra > 0 {
		cols[1].width += min(extra, 24)
	}
	return cols
}

func (m Model) tableFooterLine() string {
	shown := len(m.session.Visible())
	total := m.session.Total()

	switch {
	case m.session.Capped() && m.session.Exhausted():
		return statusWarnStyle.Render(fmt.Sprintf(
			"You've reached the %d-song limit for this view.", core.MaxTableRows))
	case m.session.Exhausted():
		return dimStyle.Render(fmt.Sprintf("All %s songs shown.", core.FormatCount(total)))
	default:
		return dimStyle.Render(fmt.Sprintf("Showing %s of %s songs.", core.FormatCount(shown), core.FormatCount(total))) +
			"  " + helpKeyStyle.Render("enter") + dimStyle.Render(fmt.Sprintf(" show %d more", core.TableRowStep))
	}
}
