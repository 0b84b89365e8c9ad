// Package store provides the play-record data source collaborators. A source
// exposes exactly one read: fetch every stored play record as a loosely-typed
// document. All filtering happens in memory downstream.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/spindash/spindash/internal/core"
)

// Source is a play-history backend.
type Source interface {
	// Plays returns every stored play record. The record shape is whatever
	// the backend holds; the normalizer reconciles it.
	Plays(ctx context.Context) ([]core.RawRecord, error)
	Close(ctx context.Context) error
}

// FileSource is implemented by sources backed by a local file that can be
// watched for changes.
type FileSource interface {
	Source
	Path() string
}

// Config selects and parameterizes a source.
type Config struct {
	URI        string // mongodb:// URI or a path to a local sqlite archive
	Database   string
	Collection string
}

// Open dispatches on the connection string: mongodb:// and mongodb+srv://
// URIs open a MongoDB source, anything else is treated as a path to a local
// sqlite play archive.
func Open(ctx context.Context, cfg Config) (Source, error) {
	uri := strings.TrimSpace(cfg.URI)
	if uri == "" {
		return nil, fmt.Errorf("store: empty source URI")
	}
	if strings.HasPrefix(uri, "mongodb://") || strings.HasPrefix(uri, "mongodb+srv://") {
		return openMongo(ctx, cfg)
	}
	return openSQLite(uri)
}
