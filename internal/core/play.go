package core

import "time"

// UnknownArtist is the sentinel used when no artist information can be
// resolved from a raw record.
const UnknownArtist = "Unknown Artist"

// RawRecord is one loosely-typed play document as returned by a source.
// Field shapes vary across schema generations; the normalizer reconciles them.
type RawRecord map[string]any

// Play is the canonical play record every downstream stage consumes.
type Play struct {
	PlayedAt      *time.Time // nil when the source value was unparseable
	TrackName     string
	Artists       []string // never empty
	ArtistDisplay string   // Artists joined with ", "
	Album         string
	DurationSec   int    // seconds actually listened, 0 when unknown
	TimeTaken     string // raw duration string, kept for table display
}

// Year reports the UTC year of the play, or false when PlayedAt is nil.
func (p Play) Year() (int, bool) {
	if p.PlayedAt == nil {
		return 0, false
	}
	return p.PlayedAt.UTC().Year(), true
}

// Month reports the UTC month of the play, or false when PlayedAt is nil.
func (p Play) Month() (time.Month, bool) {
	if p.PlayedAt == nil {
		return 0, false
	}
	return p.PlayedAt.UTC().Month(), true
}
