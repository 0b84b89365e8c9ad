package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/spindash/spindash/internal/core"
)

// sqliteSource reads a local play archive: a single `plays` table with the
// same loose field shapes the Mongo collection holds. Useful offline and as
// an export target for the hosted history.
type sqliteSource struct {
	db   *sql.DB
	path string
}

func openSQLite(path string) (Source, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open %s: %w", path, err)
	}
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite busy_timeout: %w", err)
	}
	return &sqliteSource{db: db, path: path}, nil
}

func (s *sqliteSource) Path() string { return s.path }

func (s *sqliteSource) Plays(ctx context.Context) ([]core.RawRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			COALESCE(played_at, ''),
			COALESCE(NULLIF(TRIM(track_name), ''), NULLIF(TRIM(title), ''), ''),
			COALESCE(artist, ''),
			COALESCE(artists, ''),
			COALESCE(album, ''),
			COALESCE(time_taken, '')
		FROM plays
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite query plays: %w", err)
	}
	defer rows.Close()

	var records []core.RawRecord
	for rows.Next() {
		var playedAt, track, artist, artistsJSON, album, timeTaken string
		if err := rows.Scan(&playedAt, &track, &artist, &artistsJSON, &album, &timeTaken); err != nil {
			return nil, fmt.Errorf("sqlite scan play: %w", err)
		}

		rec := core.RawRecord{}
		if playedAt != "" {
			rec["played_at"] = playedAt
		}
		if track != "" {
			rec["track_name"] = track
		}
		if artist != "" {
			rec["artist"] = artist
		}
		if album != "" {
			rec["album"] = album
		}
		if timeTaken != "" {
			rec["time_taken"] = timeTaken
		}
		if names := decodeArtistList(artistsJSON); names != nil {
			rec["artists"] = names
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite iterate plays: %w", err)
	}
	log.Debug().Int("records", len(records)).Str("path", s.path).Msg("fetched play records from sqlite archive")
	return records, nil
}

func (s *sqliteSource) Close(context.Context) error {
	return s.db.Close()
}

// decodeArtistList accepts either a JSON array (of strings or {name} objects)
// or a plain comma-separated string. Anything undecodable yields nil so the
// normalizer falls through its artist chain.
func decodeArtistList(raw string) []any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var items []any
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil
		}
		return items
	}
	parts := strings.Split(raw, ",")
	items := make([]any, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}
