package core

import (
	"strconv"
	"strings"
	"time"
)

// Normalize maps raw play documents into canonical Play records. It never
// fails: malformed fields degrade to safe defaults (nil timestamp, zero
// duration, sentinel artist) so one bad record cannot block the batch.
func Normalize(records []RawRecord) []Play {
	plays := make([]Play, 0, len(records))
	for _, rec := range records {
		plays = append(plays, normalizeRecord(rec))
	}
	return plays
}

func normalizeRecord(rec RawRecord) Play {
	artists := extractArtists(rec)
	p := Play{
		PlayedAt:      parseTimestamp(rec["played_at"]),
		TrackName:     trackName(rec),
		Artists:       artists,
		ArtistDisplay: strings.Join(artists, ", "),
		Album:         stringField(rec, "album"),
		DurationSec:   parseClockDuration(rec["time_taken"]),
	}
	if raw, ok := rec["time_taken"].(string); ok {
		p.TimeTaken = strings.TrimSpace(raw)
	}
	return p
}

// extractArtists resolves the artist list through an ordered fallback chain:
// the artists list (dicts with a name field or plain strings), then the
// scalar artist field, then the album as a pseudo-artist, then the sentinel.
// The result is always a non-empty list of trimmed, non-blank names.
func extractArtists(rec RawRecord) []string {
	var artists []string

	if raw, ok := rec["artists"].([]any); ok {
		for _, item := range raw {
			switch v := item.(type) {
			case map[string]any:
				if name := cleanName(v["name"]); name != "" {
					artists = append(artists, name)
				}
			case string:
				if name := strings.TrimSpace(v); name != "" {
					artists = append(artists, name)
				}
			}
		}
	}

	if len(artists) == 0 {
		if name := stringField(rec, "artist"); name != "" {
			artists = append(artists, name)
		}
	}

	if len(artists) == 0 {
		if album := stringField(rec, "album"); album != "" {
			artists = append(artists, album)
		}
	}

	if len(artists) == 0 {
		artists = []string{UnknownArtist}
	}
	return artists
}

func cleanName(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func stringField(rec RawRecord, key string) string {
	s, ok := rec[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// trackName prefers track_name and falls back to the legacy title field.
func trackName(rec RawRecord) string {
	if name := stringField(rec, "track_name"); name != "" {
		return name
	}
	return stringField(rec, "title")
}

// parseClockDuration converts a "M:SS" string into seconds. Anything else
// (wrong part count, non-integer parts, non-string values) yields 0.
func parseClockDuration(v any) int {
	s, ok := v.(string)
	if !ok {
		return 0
	}
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	seconds, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	total := minutes*60 + seconds
	if total < 0 {
		return 0
	}
	return total
}

// timestampLayouts are tried in order when played_at arrives as a string.
// Zone-less layouts are interpreted as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp coerces a raw played_at value into a UTC time. Unparseable
// values become nil, never an error; downstream stages treat nil as
// "excluded from time-bounded views".
func parseTimestamp(v any) *time.Time {
	switch t := v.(type) {
	case time.Time:
		u := t.UTC()
		return &u
	case *time.Time:
		if t == nil {
			return nil
		}
		u := t.UTC()
		return &u
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		for _, layout := range timestampLayouts {
			if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
				u := parsed.UTC()
				return &u
			}
		}
		return nil
	case int64:
		return epochToTime(t)
	case int:
		return epochToTime(int64(t))
	case float64:
		return epochToTime(int64(t))
	default:
		return nil
	}
}

// epochToTime treats values that look like milliseconds as milliseconds,
// everything else as seconds.
func epochToTime(v int64) *time.Time {
	if v <= 0 {
		return nil
	}
	var t time.Time
	if v > 1e12 {
		t = time.UnixMilli(v).UTC()
	} else {
		t = time.Unix(v, 0).UTC()
	}
	return &t
}
