package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spindash/spindash/internal/core"
)

// Tab identifies one dashboard tab.
type Tab int

const (
	TabOverview Tab = iota
	TabTopArtists
	TabTopSongs
	TabAllSongs
	TabActivity
)

var tabLabels = map[Tab]string{
	TabOverview:   "Overview",
	TabTopArtists: "Top Artists",
	TabTopSongs:   "Top Songs",
	TabAllSongs:   "All Songs",
	TabActivity:   "Activity",
}

const tabCount = 5

func (t Tab) Label() string {
	if label, ok := tabLabels[t]; ok {
		return label
	}
	return "Overview"
}

// PlaysMsg delivers a freshly fetched and normalized dataset.
type PlaysMsg []core.Play

// SourceErrorMsg reports a failed fetch. The dashboard degrades to an empty
// dataset with a warning instead of exiting.
type SourceErrorMsg struct{ Err error }

// RefreshStartedMsg flips the refresh indicator on until data arrives.
type RefreshStartedMsg struct{}

// Model is the bubbletea model for the dashboard.
type Model struct {
	plays []core.Play // full normalized dataset
	years []int

	mode  core.ViewMode
	year  int
	month time.Month

	tab         Tab
	sortColumn  core.SortColumn
	sortOrder   core.SortOrder
	session     core.TableSession
	tableOffset int

	topN       int
	width      int
	height     int
	hasData    bool
	refreshing bool
	sourceErr  string

	// Derived per filter change; stateless between interactions.
	filtered   []core.Play
	totals     core.Totals
	topArtists []core.ArtistStat
	topSongs   []core.SongStat
	hours      []core.HourBucket
	days       []core.DayBucket

	// onRefresh is called when the user requests a manual refresh.
	// Set from main to wire into the data source.
	onRefresh func()
}

func NewModel(topN int) Model {
	m := Model{
		topN:       topN,
		mode:       core.ViewAllTime,
		sortColumn: core.SortPlayedAt,
		sortOrder:  core.Descending,
	}
	m.refreshDerived()
	return m
}

// SetOnRefresh sets a callback invoked when the user requests a manual refresh.
func (m *Model) SetOnRefresh(fn func()) {
	m.onRefresh = fn
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case PlaysMsg:
		m.plays = []core.Play(msg)
		m.hasData = true
		m.refreshing = false
		m.sourceErr = ""
		m.years = core.AvailableYears(m.plays)
		if m.year == 0 {
			m.year, m.month = core.DefaultPeriod(m.plays, time.Now())
		}
		m.refreshDerived()
		return m, nil

	case SourceErrorMsg:
		m.plays = nil
		m.hasData = true
		m.refreshing = false
		if msg.Err != nil {
			m.sourceErr = msg.Err.Error()
		}
		m.years = nil
		m.refreshDerived()
		return m, nil

	case RefreshStartedMsg:
		m.refreshing = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab", "right":
		m.tab = Tab((int(m.tab) + 1) % tabCount)
		m.tableOffset = 0
	case "shift+tab", "left":
		m.tab = Tab((int(m.tab) + tabCount - 1) % tabCount)
		m.tableOffset = 0

	case "1", "2", "3", "4", "5":
		m.tab = Tab(int(msg.String()[0] - '1'))
		m.tableOffset = 0

	case "v":
		m.mode = core.NextViewMode(m.mode)
		m.refreshDerived()

	case "[":
		m.cycleYear(-1)
	case "]":
		m.cycleYear(1)

	case ",":
		m.cycleMonth(-1)
	case ".":
		m.cycleMonth(1)

	case "s":
		if m.tab == TabAllSongs {
			m.sortColumn = core.NextSortColumn(m.sortColumn)
			m.tableOffset = 0
			m.refreshDerived()
		}
	case "o":
		if m.tab == TabAllSongs {
			if m.sortOrder == core.Descending {
				m.sortOrder = core.Ascending
			} else {
				m.sortOrder = core.Descending
			}
			m.tableOffset = 0
			m.refreshDerived()
		}

	case "enter", "+":
		if m.tab == TabAllSongs && !m.session.Exhausted() {
			m.session.ShowMore()
		}

	case "up", "k":
		if m.tab == TabAllSongs && m.tableOffset > 0 {
			m.tableOffset--
		}
	case "down", "j":
		if m.tab == TabAllSongs {
			if maxOff := len(m.session.Visible()) - m.tableBodyHeight(); m.tableOffset < maxOff {
				m.tableOffset++
			}
		}

	case "r":
		if m.onRefresh != nil && !m.refreshing {
			m.refreshing = true
			m.onRefresh()
		}
	}
	return m, nil
}

// cycleYear moves through the available years (newest first) when a
// year-bounded view is active.
func (m *Model) cycleYear(step int) {
	if m.mode == core.ViewAllTime || len(m.years) == 0 {
		return
	}
	idx := 0
	for i, y := range m.years {
		if y == m.year {
			idx = i
			break
		}
	}
	idx = (idx + step + len(m.years)) % len(m.years)
	m.year = m.years[idx]
	m.clampMonth()
	m.refreshDerived()
}

// cycleMonth moves through the months that actually hold data for the
// selected year, or the full calendar when the year has none.
func (m *Model) cycleMonth(step int) {
	if m.mode != core.ViewByMonth {
		return
	}
	months := core.AvailableMonths(m.plays, m.year)
	if len(months) == 0 {
		months = allMonths()
	}
	idx := 0
	for i, mo := range months {
		if mo == m.month {
			idx = i
			break
		}
	}
	idx = (idx + step + len(months)) % len(months)
	m.month = months[idx]
	m.refreshDerived()
}

// clampMonth snaps the month selection onto a month with data after the
// year changes.
func (m *Model) clampMonth() {
	months := core.AvailableMonths(m.plays, m.year)
	if len(months) == 0 {
		return
	}
	for _, mo := range months {
		if mo == m.month {
			return
		}
	}
	m.month = months[len(months)-1]
}

func allMonths() []time.Month {
	months := make([]time.Month, 12)
	for i := range months {
		months[i] = time.Month(i + 1)
	}
	return months
}

// refreshDerived recomputes the filtered subset and every rollup. Each run
// is independent; aggregates are never persisted.
func (m *Model) refreshDerived() {
	m.filtered = core.Filter(m.plays, m.mode, m.year, m.month)
	m.totals = core.Overview(m.filtered)
	m.topArtists = core.TopArtists(m.filtered, m.topN)
	m.topSongs = core.TopSongs(m.filtered, m.topN)
	m.hours = core.HourHistogram(m.filtered)
	m.days = core.DayOfWeekHistogram(m.filtered)
	m.session.Sync(m.filtered, core.TableKey{
		Column: m.sortColumn,
		Order:  m.sortOrder,
		Mode:   m.mode,
		Year:   m.year,
		Month:  m.month,
	})
	if m.tableOffset > 0 {
		if maxOff := len(m.session.Visible()) - m.tableBodyHeight(); m.tableOffset > maxOff {
			m.tableOffset = max(maxOff, 0)
		}
	}
}

// statusLine mirrors the status messaging of the filter stage: a success
// summary, a "no data" notice, or the source failure.
func (m Model) statusLine() string {
	if m.sourceErr != "" {
		return statusErrStyle.Render("Source unavailable — showing empty dataset (" + m.sourceErr + ")")
	}
	if !m.hasData {
		return dimStyle.Render("Loading play history…")
	}
	period := m.mode.PeriodLabel(m.year, m.month)
	if len(m.filtered) == 0 {
		return statusWarnStyle.Render("No data found for " + period + ".")
	}
	count := core.FormatCount(len(m.filtered))
	if m.mode == core.ViewAllTime {
		return statusOKStyle.Render("Showing all available data (" + count + " songs total).")
	}
	return statusOKStyle.Render("Showing data for " + period + " with " + count + " songs.")
}
