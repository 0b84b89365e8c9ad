package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spindash/spindash/internal/core"
)

func bulkPlays(t *testing.T, n int) []core.Play {
	t.Helper()
	base, err := time.Parse(time.RFC3339, "2024-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("parse base: %v", err)
	}
	plays := make([]core.Play, 0, n)
	for i := 0; i < n; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		plays = append(plays, core.Play{
			PlayedAt:      &ts,
			TrackName:     fmt.Sprintf("Track %03d", i),
			Artists:       []string{"someone"},
			ArtistDisplay: "someone",
			Album:         "Album",
			DurationSec:   180,
		})
	}
	return plays
}

func TestTableFooterShowMore(t *testing.T) {
	m := sizedModel(t, 120, 40)
	next, _ := m.Update(PlaysMsg(bulkPlays(t, 120)))
	m = next.(Model)

	got := m.tableFooterLine()
	if !strings.Contains(got, "Showing 50 of 120 songs.") {
		t.Errorf("footer = %q, want initial 50-row window", got)
	}
	if !strings.Contains(got, "show 50 more") {
		t.Errorf("footer = %q, want show-more hint", got)
	}
}

func TestTableFooterExhausted(t *testing.T) {
	m := sizedModel(t, 120, 40)
	next, _ := m.Update(PlaysMsg(bulkPlays(t, 30)))
	m = next.(Model)

	if got := m.tableFooterLine(); !strings.Contains(got, "All 30 songs shown.") {
		t.Errorf("footer = %q, want exhausted message", got)
	}
}

func TestTableFooterCapped(t *testing.T) {
	m := sizedModel(t, 120, 40)
	next, _ := m.Update(PlaysMsg(bulkPlays(t, 500)))
	m = next.(Model)

	m.tab = TabAllSongs
	for i := 0; i < 3; i++ {
		next, _ = m.Update(keyMsg("enter"))
		m = next.(Model)
	}

	got := m.tableFooterLine()
	if !strings.Contains(got, "200-song limit") {
		t.Errorf("footer = %q, want cap notice after paging to the limit", got)
	}
	if len(m.session.Visible()) != core.MaxTableRows {
		t.Errorf("visible rows = %d, want %d", len(m.session.Visible()), core.MaxTableRows)
	}
}

func TestShowMoreIgnoredWhenExhausted(t *testing.T) {
	m := sizedModel(t, 120, 40)
	next, _ := m.Update(PlaysMsg(bulkPlays(t, 30)))
	m = next.(Model)
	m.tab = TabAllSongs

	next, _ = m.Update(keyMsg("enter"))
	m = next.(Model)
	if got := len(m.session.Visible()); got != 30 {
		t.Errorf("visible rows = %d, want 30 after no-op show-more", got)
	}
}

func TestSongColumnWidthsAbsorbExtraIntoTitle(t *testing.T) {
	narrow := sizedModel(t, 80, 40).songColumnWidths()
	wide := sizedModel(t, 160, 40).songColumnWidths()

	if wide[1].width <= narrow[1].width {
		t.Errorf("wide title width = %d, narrow = %d; want wider title on larger terminal",
			wide[1].width, narrow[1].width)
	}
	for _, i := range []int{0, 2, 3, 4} {
		if wide[i].width != narrow[i].width {
			t.Errorf("column %d width changed with terminal size", i)
		}
	}
}

func TestTableScrollClamped(t *testing.T) {
	m := sizedModel(t, 120, 24)
	next, _ := m.Update(PlaysMsg(bulkPlays(t, 120)))
	m = next.(Model)
	m.tab = TabAllSongs

	for i := 0; i < 500; i++ {
		next, _ = m.Update(keyMsg("j"))
		m = next.(Model)
	}
	if maxOff := len(m.session.Visible()) - m.tableBodyHeight(); m.tableOffset > maxOff {
		t.Errorf("tableOffset = %d, beyond max %d", m.tableOffset, maxOff)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	m = next.(Model)
	out := m.View()
	if !strings.Contains(out, "Track") {
		t.Error("table view missing song rows")
	}
}
