package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/spindash/spindash/internal/core"
)

func (m Model) renderActivity() string {
	if m.totals.Plays == 0 {
		return "  " + dimStyle.Render("No activity recorded for "+m.mode.PeriodLabel(m.year, m.month)+".")
	}

	hourly := m.renderHourHistogram()
	daily := m.renderDayOfWeek()
	cumulative := m.renderCumulativeTrend()

	gap := lipgloss.NewStyle().Width(4).Render("")
	top := lipgloss.JoinHorizontal(lipgloss.Top, hourly, gap, daily)

	return top + "\n\n" + cumulative
}

// renderHourHistogram draws play counts per hour of day as a vertical bar
// chart labelled 00 through 23.
func (m Model) renderHourHistogram() string {
	w := m.chartWidth()
	bc := barchart.New(w, m.chartHeight(),
		barchart.WithBarWidth(2),
		barchart.WithBarGap(1),
		barchart.WithNoAutoBarWidth(),
	)

	style := lipgloss.NewStyle().Foreground(colorAccent)
	for _, bucket := range m.hours {
		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("%02d", bucket.Hour),
			Values: []barchart.BarValue{
				{Name: core.FormatHour(bucket.Hour), Value: float64(bucket.PlayCount), Style: style},
			},
		})
	}
	bc.Draw()

	title := chartTitleStyle.Render("Plays by Hour of Day")
	return indentBlock(title + "\n" + bc.View())
}

// renderDayOfWeek draws the Sunday-first weekday histogram. Each bar takes
// its shade from the bucket intensity so busier days read brighter.
func (m Model) renderDayOfWeek() string {
	bc := barchart.New(7*4, m.chartHeight(),
		barchart.WithBarWidth(3),
		barchart.WithBarGap(1),
		barchart.WithNoAutoBarWidth(),
	)

	for _, bucket := range m.days {
		bc.Push(barchart.BarData{
			Label: bucket.Day.String()[:3],
			Values: []barchart.BarValue{
				{
					Name:  bucket.Day.String(),
					Value: float64(bucket.PlayCount),
					Style: lipgloss.NewStyle().Foreground(intensityColor(bucket.Intensity)),
				},
			},
		})
	}
	bc.Draw()

	title := chartTitleStyle.Render("Plays by Day of Week")
	return title + "\n" + bc.View()
}

// renderCumulativeTrend draws the running play total across the 24 hours of
// the day as a sparkline, with start and end annotations.
func (m Model) renderCumulativeTrend() string {
	w := m.width - 8
	if w < 24 {
		w = 24
	}
	if w > 96 {
		w = 96
	}

	sl := sparkline.New(w, 4,
		sparkline.WithStyle(lipgloss.NewStyle().Foreground(colorTeal)),
	)
	values := make([]float64, 0, len(m.hours))
	for _, bucket := range m.hours {
		values = append(values, float64(bucket.Cumulative))
	}
	sl.PushAll(values)
	sl.Draw()

	total := 0
	if len(m.hours) > 0 {
		total = m.hours[len(m.hours)-1].Cumulative
	}

	title := chartTitleStyle.Render("Cumulative Plays Through the Day")
	legend := dimStyle.Render("00:00") +
		strings.Repeat(" ", max(w-12, 1)) +
		dimStyle.Render("23:00") + "  " +
		barValueStyle.Render(core.FormatCount(total))

	return indentBlock(title + "\n" + sl.View() + "\n" + legend)
}

func (m Model) chartWidth() int {
	// 24 bars, 2 cells each, 1 cell gap
	return 24*3 - 1
}

func (m Model) chartHeight() int {
	h := m.height/2 - 4
	if h < 6 {
		h = 6
	}
	if h > 14 {
		h = 14
	}
	return h
}

func indentBlock(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
