package core

import (
	"sort"
	"time"

	"github.com/samber/lo"
)

// intensityEpsilon keeps the day-of-week intensity division defined when
// every bucket holds the same count.
const intensityEpsilon = 1e-9

// Totals is the overview rollup for a filtered set of plays.
type Totals struct {
	DurationSec   int
	Plays         int
	UniqueArtists int
}

// ArtistStat is one row of the top-artists rollup. Name is title-cased for
// display; grouping happens on the raw artist name.
type ArtistStat struct {
	Name         string
	PlayCount    int
	TotalMinutes float64
}

// SongStat is one row of the top-songs rollup, keyed by title plus the full
// joined artist string so collaborations stay distinct from solo tracks with
// the same title.
type SongStat struct {
	TrackName     string
	ArtistDisplay string
	PlayCount     int
	TotalMinutes  float64
}

// HourBucket is one of the 24 hour-of-day histogram buckets. Cumulative is
// the running play count across hours 0 through this one.
type HourBucket struct {
	Hour       int
	PlayCount  int
	Cumulative int
}

// DayBucket is one of the 7 day-of-week histogram buckets. Intensity is the
// min-max normalized count in [0, 1] for visual weight mapping.
type DayBucket struct {
	Day       time.Weekday
	PlayCount int
	Intensity float64
}

// dayDisplayOrder is the fixed Sunday-first display order.
var dayDisplayOrder = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

// Overview computes the totals rollup. Empty input yields all-zero totals.
func Overview(plays []Play) Totals {
	t := Totals{Plays: len(plays)}
	unique := make(map[string]struct{})
	for _, p := range plays {
		t.DurationSec += p.DurationSec
		for _, a := range p.Artists {
			unique[a] = struct{}{}
		}
	}
	t.UniqueArtists = len(unique)
	return t
}

// TopArtists computes the top-n artists rollup. Each play is exploded into
// one virtual row per listed artist, so a three-artist collaboration credits
// a full play and its full duration to all three.
func TopArtists(plays []Play, n int) []ArtistStat {
	type group struct {
		count   int
		seconds int
	}
	groups := make(map[string]*group)
	for _, p := range plays {
		for _, name := range p.Artists {
			g := groups[name]
			if g == nil {
				g = &group{}
				groups[name] = g
			}
			g.count++
			g.seconds += p.DurationSec
		}
	}

	stats := make([]ArtistStat, 0, len(groups))
	for name, g := range groups {
		stats = append(stats, ArtistStat{
			Name:         TitleCase(name),
			PlayCount:    g.count,
			TotalMinutes: float64(g.seconds) / 60,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].PlayCount != stats[j].PlayCount {
			return stats[i].PlayCount > stats[j].PlayCount
		}
		if stats[i].TotalMinutes != stats[j].TotalMinutes {
			return stats[i].TotalMinutes > stats[j].TotalMinutes
		}
		return stats[i].Name < stats[j].Name
	})
	return lo.Subset(stats, 0, uint(max(n, 0)))
}

// TopSongs computes the top-n songs rollup, grouped by (track, artist
// display) without exploding multi-artist plays.
func TopSongs(plays []Play, n int) []SongStat {
	type key struct{ track, artists string }
	type group struct {
		count   int
		seconds int
	}
	groups := make(map[key]*group)
	for _, p := range plays {
		k := key{track: p.TrackName, artists: p.ArtistDisplay}
		g := groups[k]
		if g == nil {
			g = &group{}
			groups[k] = g
		}
		g.count++
		g.seconds += p.DurationSec
	}

	stats := make([]SongStat, 0, len(groups))
	for k, g := range groups {
		stats = append(stats, SongStat{
			TrackName:     k.track,
			ArtistDisplay: k.artists,
			PlayCount:     g.count,
			TotalMinutes:  float64(g.seconds) / 60,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].PlayCount != stats[j].PlayCount {
			return stats[i].PlayCount > stats[j].PlayCount
		}
		if stats[i].TotalMinutes != stats[j].TotalMinutes {
			return stats[i].TotalMinutes > stats[j].TotalMinutes
		}
		if stats[i].TrackName != stats[j].TrackName {
			return stats[i].TrackName < stats[j].TrackName
		}
		return stats[i].ArtistDisplay < stats[j].ArtistDisplay
	})
	return lo.Subset(stats, 0, uint(max(n, 0)))
}

// HourHistogram groups plays by UTC hour of day. All 24 buckets are always
// present, zero-filled, with the cumulative running sum across hours 0-23.
// Plays without a timestamp are excluded.
func HourHistogram(plays []Play) []HourBucket {
	counts := make([]int, 24)
	for _, p := range plays {
		if p.PlayedAt == nil {
			continue
		}
		counts[p.PlayedAt.UTC().Hour()]++
	}

	buckets := make([]HourBucket, 24)
	running := 0
	for hour, count := range counts {
		running += count
		buckets[hour] = HourBucket{Hour: hour, PlayCount: count, Cumulative: running}
	}
	return buckets
}

// DayOfWeekHistogram groups plays by UTC weekday, ordered Sunday-first for
// display. All 7 buckets are always present, zero-filled, each carrying a
// min-max normalized intensity.
func DayOfWeekHistogram(plays []Play) []DayBucket {
	counts := make(map[time.Weekday]int, 7)
	for _, p := range plays {
		if p.PlayedAt == nil {
			continue
		}
		counts[p.PlayedAt.UTC().Weekday()]++
	}

	minCount, maxCount := 0, 0
	for i, day := range dayDisplayOrder {
		c := counts[day]
		if i == 0 || c < minCount {
			minCount = c
		}
		if c > maxCount {
			maxCount = c
		}
	}

	buckets := make([]DayBucket, 0, 7)
	for _, day := range dayDisplayOrder {
		c := counts[day]
		buckets = append(buckets, DayBucket{
			Day:       day,
			PlayCount: c,
			Intensity: float64(c-minCount) / (float64(maxCount-minCount) + intensityEpsilon),
		})
	}
	return buckets
}
