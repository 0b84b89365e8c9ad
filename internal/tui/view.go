package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spindash/spindash/internal/core"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Starting spindash…"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString("  " + m.statusLine())
	b.WriteString("\n\n")

	switch m.tab {
	case TabTopArtists:
		b.WriteString(m.renderTopArtists())
	case TabTopSongs:
		b.WriteString(m.renderTopSongs())
	case TabAllSongs:
		b.WriteString(m.renderSongTable())
	case TabActivity:
		b.WriteString(m.renderActivity())
	default:
		b.WriteString(m.renderOverview())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	brand := headerBrandStyle.Render("spindash")

	var tabs []string
	for t := Tab(0); t < tabCount; t++ {
		if t == m.tab {
			tabs = append(tabs, tabActiveStyle.Render(t.Label()))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(t.Label()))
		}
	}

	mode := labelStyle.Render(m.mode.Label())
	switch m.mode {
	case core.ViewByYear:
		mode += valueStyle.Render(fmt.Sprintf(" · %d", m.year))
	case core.ViewByMonth:
		mode += valueStyle.Render(fmt.Sprintf(" · %s %d", m.month, m.year))
	}
	if m.refreshing {
		mode += " " + dimStyle.Render("⟳")
	}

	left := "  " + brand + "  " + strings.Join(tabs, " ")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(mode) - 2
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + mode
}

func (m Model) renderFooter() string {
	keys := []struct{ key, action string }{
		{"tab", "switch tab"},
		{"v", "view mode"},
		{"[ ]", "year"},
		{", .", "month"},
	}
	if m.tab == TabAllSongs {
		keys = append(keys,
			struct{ key, action string }{"s", "sort"},
			struct{ key, action string }{"o", "order"},
			struct{ key, action string }{"enter", "show more"},
		)
	}
	keys = append(keys,
		struct{ key, action string }{"r", "refresh"},
		struct{ key, action string }{"q", "quit"},
	)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, helpKeyStyle.Render(k.key)+" "+dimStyle.Render(k.action))
	}
	return "  " + strings.Join(parts, dimStyle.Render("  ·  "))
}

// ─── Overview ───────────────────────────────────────────────────────────────

func (m Model) renderOverview() string {
	if m.totals.Plays == 0 {
		return "  " + dimStyle.Render("No data available for the current selection.")
	}

	cards := []struct {
		label string
		value string
	}{
		{"Total Listening Time", core.FormatSecondsHMS(m.totals.DurationSec)},
		{"Total Songs Played", core.FormatCount(m.totals.Plays)},
		{"Total Artists", core.FormatCount(m.totals.UniqueArtists)},
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := metricValueStyle.Render(c.value) + "\n" + metricLabelStyle.Render(c.label)
		rendered = append(rendered, metricCardStyle.Render(body))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return "  " + strings.ReplaceAll(row, "\n", "\n  ")
}

// ─── Top Artists / Top Songs ────────────────────────────────────────────────

func (m Model) renderTopArtists() string {
	if len(m.topArtists) == 0 {
		return "  " + dimStyle.Render("No artist data available for "+m.mode.PeriodLabel(m.year, m.month)+".")
	}

	title := sectionHeaderStyle.Render(fmt.Sprintf("Top %d Artists", m.topN))
	maxCount := m.topArtists[0].PlayCount

	var b strings.Builder
	b.WriteString("  " + title + "\n\n")
	for i, stat := range m.topArtists {
		bar := renderCountBar(stat.PlayCount, maxCount, m.barWidth())
		b.WriteString(fmt.Sprintf("  %s %s %s %s %s\n",
			rankStyle.Render(fmt.Sprintf("%2d.", i+1)),
			valueStyle.Width(24).Render(truncate(stat.Name, 24)),
			bar,
			barValueStyle.Render(core.FormatCount(stat.PlayCount)),
			dimStyle.Render(core.FormatSecondsHMS(int(stat.TotalMinutes*60))),
		))
	}
	return b.String()
}

func (m Model) renderTopSongs() string {
	if len(m.topSongs) == 0 {
		return "  " + dimStyle.Render("No song data available for "+m.mode.PeriodLabel(m.year, m.month)+".")
	}

	title := sectionHeaderStyle.Render(fmt.Sprintf("Top %d Songs", m.topN))
	maxCount := m.topSongs[0].PlayCount

	var b strings.Builder
	b.WriteString("  " + title + "\n\n")
	for i, stat := range m.topSongs {
		bar := renderCountBar(stat.PlayCount, maxCount, m.barWidth())
		b.WriteString(fmt.Sprintf("  %s %s %s %s %s %s\n",
			rankStyle.Render(fmt.Sprintf("%2d.", i+1)),
			valueStyle.Width(26).Render(truncate(stat.TrackName, 26)),
			labelStyle.Width(20).Render(truncate(stat.ArtistDisplay, 20)),
			bar,
			barValueStyle.Render(core.FormatCount(stat.PlayCount)),
			dimStyle.Render(core.FormatSecondsHMS(int(stat.TotalMinutes*60))),
		))
	}
	return b.String()
}

func (m Model) barWidth() int {
	w := m.width/4 - 4
	if w < 8 {
		w = 8
	}
	if w > 36 {
		w = 36
	}
	return w
}

func renderCountBar(value, maxValue, width int) string {
	if maxValue <= 0 {
		maxValue = 1
	}
	filled := value * width / maxValue
	if filled < 1 && value > 0 {
		filled = 1
	}
	bar := lipgloss.NewStyle().Foreground(colorAccent).Render(strings.Repeat("█", filled))
	track := lipgloss.NewStyle().Foreground(colorSurface1).Render(strings.Repeat("░", width-filled))
	return bar + track
}

func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	runes := []rune(s)
	if w <= 1 {
		return string(runes[:1])
	}
	if len(runes) > w-1 {
		runes = runes[:w-1]
	}
	return string(runes) + "…"
}
