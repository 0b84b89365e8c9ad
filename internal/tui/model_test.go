package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spindash/spindash/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testPlays(t *testing.T) []core.Play {
	t.Helper()
	at := func(v string) *time.Time {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			t.Fatalf("parse %q: %v", v, err)
		}
		ts = ts.UTC()
		return &ts
	}
	return []core.Play{
		{PlayedAt: at("2024-03-01T10:00:00Z"), TrackName: "One", Artists: []string{"a"}, ArtistDisplay: "a", DurationSec: 200},
		{PlayedAt: at("2024-03-02T11:00:00Z"), TrackName: "Two", Artists: []string{"b"}, ArtistDisplay: "b", DurationSec: 180},
		{PlayedAt: at("2023-07-05T20:00:00Z"), TrackName: "Old", Artists: []string{"a"}, ArtistDisplay: "a", DurationSec: 240},
	}
}

func TestTabLabels(t *testing.T) {
	want := []string{"Overview", "Top Artists", "Top Songs", "All Songs", "Activity"}
	for i, w := range want {
		if got := Tab(i).Label(); got != w {
			t.Errorf("Tab(%d).Label() = %q, want %q", i, got, w)
		}
	}
	if got := Tab(99).Label(); got != "Overview" {
		t.Errorf("out-of-range label = %q, want Overview", got)
	}
}

func TestTabCycling(t *testing.T) {
	m := NewModel(10)

	next, _ := m.Update(keyMsg("tab"))
	m = next.(Model)
	if m.tab != TabTopArtists {
		t.Fatalf("after tab, tab = %v, want TabTopArtists", m.tab)
	}

	next, _ = m.Update(keyMsg("shift+tab"))
	m = next.(Model)
	if m.tab != TabOverview {
		t.Fatalf("after shift+tab, tab = %v, want TabOverview", m.tab)
	}

	// shift+tab from the first tab wraps to the last.
	next, _ = m.Update(keyMsg("shift+tab"))
	m = next.(Model)
	if m.tab != TabActivity {
		t.Fatalf("wrap tab = %v, want TabActivity", m.tab)
	}

	next, _ = m.Update(keyMsg("4"))
	m = next.(Model)
	if m.tab != TabAllSongs {
		t.Fatalf("after '4', tab = %v, want TabAllSongs", m.tab)
	}
}

func TestPlaysMsgSeedsPeriod(t *testing.T) {
	m := NewModel(10)

	next, _ := m.Update(PlaysMsg(testPlays(t)))
	m = next.(Model)

	if !m.hasData {
		t.Fatal("hasData = false after PlaysMsg")
	}
	if m.year != 2024 {
		t.Errorf("year = %d, want 2024", m.year)
	}
	if m.month != time.March {
		t.Errorf("month = %v, want March", m.month)
	}
	if len(m.years) != 2 {
		t.Errorf("years = %v, want two entries", m.years)
	}
}

func TestSourceErrorDegradesToEmpty(t *testing.T) {
	m := NewModel(10)
	next, _ := m.Update(PlaysMsg(testPlays(t)))
	m = next.(Model)

	next, _ = m.Update(SourceErrorMsg{Err: errors.New("connection refused")})
	m = next.(Model)

	if len(m.plays) != 0 {
		t.Errorf("plays = %d, want empty dataset", len(m.plays))
	}
	if m.sourceErr == "" {
		t.Error("sourceErr empty, want connection error recorded")
	}
	if !m.hasData {
		t.Error("hasData = false, want true so the UI renders the empty state")
	}
}

func TestViewModeCycle(t *testing.T) {
	m := NewModel(10)
	next, _ := m.Update(PlaysMsg(testPlays(t)))
	m = next.(Model)

	if m.mode != core.ViewAllTime {
		t.Fatalf("initial mode = %v, want all time", m.mode)
	}

	next, _ = m.Update(keyMsg("v"))
	m = next.(Model)
	if m.mode != core.ViewByYear {
		t.Fatalf("after v, mode = %v, want by year", m.mode)
	}
	if len(m.filtered) != 2 {
		t.Errorf("filtered = %d plays for 2024, want 2", len(m.filtered))
	}

	next, _ = m.Update(keyMsg("v"))
	m = next.(Model)
	if m.mode != core.ViewByMonth {
		t.Fatalf("after second v, mode = %v, want by month", m.mode)
	}
}

func TestYearCycling(t *testing.T) {
	m := NewModel(10)
	next, _ := m.Update(PlaysMsg(testPlays(t)))
	m = next.(Model)
	next, _ = m.Update(keyMsg("v")) // by year
	m = next.(Model)

	next, _ = m.Update(keyMsg("]"))
	m = next.(Model)
	if m.year != 2023 {
		t.Fatalf("after ], year = %d, want 2023", m.year)
	}

	next, _ = m.Update(keyMsg("]"))
	m = next.(Model)
	if m.year != 2024 {
		t.Fatalf("year cycle should wrap, got %d", m.year)
	}
}

func TestSortKeysOnlyOnAllSongsTab(t *testing.T) {
	m := NewModel(10)
	next, _ := m.Update(PlaysMsg(testPlays(t)))
	m = next.(Model)

	next, _ = m.Update(keyMsg("s"))
	m = next.(Model)
	if m.sortColumn != core.SortPlayedAt {
		t.Fatal("sort column changed outside the All Songs tab")
	}

	next, _ = m.Update(keyMsg("4"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("s"))
	m = next.(Model)
	if m.sortColumn != core.SortTrack {
		t.Fatalf("sort column = %v, want track sort", m.sortColumn)
	}

	next, _ = m.Update(keyMsg("o"))
	m = next.(Model)
	if m.sortOrder != core.Ascending {
		t.Fatalf("sort order = %v, want ascending", m.sortOrder)
	}
}

func TestManualRefreshInvokesCallback(t *testing.T) {
	m := NewModel(10)
	calls := 0
	m.SetOnRefresh(func() { calls++ })

	next, _ := m.Update(keyMsg("r"))
	m = next.(Model)
	if !m.refreshing {
		t.Fatal("refreshing = false, want true")
	}
	if calls != 1 {
		t.Fatalf("refresh callback calls = %d, want 1", calls)
	}

	// A second press while a refresh is in flight is ignored.
	next, _ = m.Update(keyMsg("r"))
	m = next.(Model)
	if calls != 1 {
		t.Fatalf("refresh callback calls = %d, want still 1", calls)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"q"} {
		m := NewModel(10)
		_, cmd := m.Update(keyMsg(key))
		if cmd == nil {
			t.Errorf("key %q: cmd = nil, want tea.Quit", key)
		}
	}
}
