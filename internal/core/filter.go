package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
)

// ViewMode selects the active time-window granularity. All date math is UTC.
type ViewMode int

const (
	ViewAllTime ViewMode = iota
	ViewByYear
	ViewByMonth
)

var viewModes = []ViewMode{ViewAllTime, ViewByYear, ViewByMonth}

func (m ViewMode) Label() string {
	switch m {
	case ViewByYear:
		return "By Year"
	case ViewByMonth:
		return "By Month"
	default:
		return "All Time"
	}
}

// PeriodLabel names the selected period for status messaging, e.g.
// "all time", "2025", "March 2025".
func (m ViewMode) PeriodLabel(year int, month time.Month) string {
	switch m {
	case ViewByYear:
		return fmt.Sprintf("%d", year)
	case ViewByMonth:
		return fmt.Sprintf("%s %d", month.String(), year)
	default:
		return "all time"
	}
}

// NextViewMode cycles All Time -> By Year -> By Month -> All Time.
func NextViewMode(current ViewMode) ViewMode {
	for i, m := range viewModes {
		if m == current {
			return viewModes[(i+1)%len(viewModes)]
		}
	}
	return ViewAllTime
}

// Filter returns the subset of plays matching the view mode and selected
// period, sorted by PlayedAt descending with nil timestamps last. The input
// slice is never mutated. Plays without a timestamp stay visible in All Time
// but are excluded from year- and month-bounded views. An empty result is a
// normal condition, not an error.
func Filter(plays []Play, mode ViewMode, year int, month time.Month) []Play {
	var out []Play
	switch mode {
	case ViewByYear:
		out = lo.Filter(plays, func(p Play, _ int) bool {
			y, ok := p.Year()
			return ok && y == year
		})
	case ViewByMonth:
		out = lo.Filter(plays, func(p Play, _ int) bool {
			y, ok := p.Year()
			if !ok || y != year {
				return false
			}
			m, _ := p.Month()
			return m == month
		})
	default:
		out = append([]Play(nil), plays...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].PlayedAt, out[j].PlayedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return out
}

// AvailableYears lists the distinct UTC years present in the dataset,
// newest first. Used to populate the year selector.
func AvailableYears(plays []Play) []int {
	years := lo.Uniq(lo.FilterMap(plays, func(p Play, _ int) (int, bool) {
		return p.Year()
	}))
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// AvailableMonths lists the distinct months with data in the given year,
// ascending. An empty result means the year has no dated plays.
func AvailableMonths(plays []Play, year int) []time.Month {
	months := lo.Uniq(lo.FilterMap(plays, func(p Play, _ int) (time.Month, bool) {
		y, ok := p.Year()
		if !ok || y != year {
			return 0, false
		}
		return p.Month()
	}))
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
	return months
}

// DefaultPeriod picks the initial year and month selection: the newest year
// with data and its latest month, falling back to the current UTC period
// when no plays carry a timestamp.
func DefaultPeriod(plays []Play, now time.Time) (int, time.Month) {
	years := AvailableYears(plays)
	if len(years) == 0 {
		return now.UTC().Year(), now.UTC().Month()
	}
	year := years[0]
	months := AvailableMonths(plays, year)
	if len(months) == 0 {
		return year, now.UTC().Month()
	}
	return year, months[len(months)-1]
}
