package core

import (
	"sort"
	"time"
)

// Table display limits: the song table is capped at MaxTableRows, starts at
// InitialTableRows, and grows by TableRowStep per "show more" action.
const (
	MaxTableRows     = 200
	InitialTableRows = 50
	TableRowStep     = 50
)

// SortColumn identifies a sortable song-table column.
type SortColumn string

const (
	SortPlayedAt SortColumn = "played_at"
	SortTrack    SortColumn = "track_name"
	SortArtist   SortColumn = "artist_display"
)

var sortColumns = []SortColumn{SortPlayedAt, SortTrack, SortArtist}

func (c SortColumn) Label() string {
	switch c {
	case SortTrack:
		return "Title"
	case SortArtist:
		return "Artist"
	default:
		return "Played At"
	}
}

// NextSortColumn cycles Played At -> Title -> Artist -> Played At.
func NextSortColumn(current SortColumn) SortColumn {
	for i, c := range sortColumns {
		if c == current {
			return sortColumns[(i+1)%len(sortColumns)]
		}
	}
	return SortPlayedAt
}

// SortOrder is the song-table sort direction.
type SortOrder int

const (
	Descending SortOrder = iota
	Ascending
)

func (o SortOrder) Label() string {
	if o == Ascending {
		return "Ascending"
	}
	return "Descending"
}

// TableKey identifies one sorted-and-filtered table snapshot. Any change to
// it invalidates the cached rows.
type TableKey struct {
	Column SortColumn
	Order  SortOrder
	Mode   ViewMode
	Year   int
	Month  time.Month
}

// TableSession holds the per-view song-table state: the active sort, a
// cached sorted row snapshot, and how many rows are currently visible.
// "Show more" grows the visible count without recomputing the snapshot;
// any key change rebuilds it and resets the window.
type TableSession struct {
	key     TableKey
	rows    []Play
	visible int
	capped  bool
	primed  bool
}

// Sync rebuilds the cached snapshot when the key changed (or on first use)
// and leaves it untouched otherwise. The snapshot is sorted per the key and
// capped at MaxTableRows before pagination.
func (s *TableSession) Sync(plays []Play, key TableKey) {
	if s.primed && s.key == key {
		return
	}
	rows := sortForTable(plays, key.Column, key.Order)
	s.capped = len(rows) > MaxTableRows
	if s.capped {
		rows = rows[:MaxTableRows]
	}
	s.key = key
	s.rows = rows
	s.visible = InitialTableRows
	s.primed = true
}

// Visible returns the currently visible page of rows.
func (s *TableSession) Visible() []Play {
	n := min(s.visible, len(s.rows))
	return s.rows[:n]
}

// Total reports the size of the cached snapshot (post-cap).
func (s *TableSession) Total() int { return len(s.rows) }

// ShowMore grows the visible window by TableRowStep, bounded by the snapshot.
func (s *TableSession) ShowMore() {
	s.visible = min(s.visible+TableRowStep, len(s.rows))
	if s.visible < InitialTableRows {
		s.visible = InitialTableRows
	}
}

// Exhausted reports whether every cached row is already visible. This is
// the end-of-list signal.
func (s *TableSession) Exhausted() bool {
	return s.visible >= len(s.rows)
}

// Capped reports whether the snapshot was truncated at MaxTableRows.
func (s *TableSession) Capped() bool { return s.capped }

func sortForTable(plays []Play, column SortColumn, order SortOrder) []Play {
	rows := append([]Play(nil), plays...)
	asc := order == Ascending

	less := func(i, j int) bool {
		switch column {
		case SortTrack:
			if asc {
				return rows[i].TrackName < rows[j].TrackName
			}
			return rows[i].TrackName > rows[j].TrackName
		case SortArtist:
			if asc {
				return rows[i].ArtistDisplay < rows[j].ArtistDisplay
			}
			return rows[i].ArtistDisplay > rows[j].ArtistDisplay
		default:
			a, b := rows[i].PlayedAt, rows[j].PlayedAt
			// Missing timestamps sort last in either direction.
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			case asc:
				return a.Before(*b)
			default:
				return a.After(*b)
			}
		}
	}
	sort.SliceStable(rows, less)
	return rows
}
