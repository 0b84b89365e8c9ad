package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spindash/spindash/internal/core"
)

type mongoSource struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func openMongo(ctx context.Context, cfg Config) (Source, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	return &mongoSource{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

func (s *mongoSource) Plays(ctx context.Context) ([]core.RawRecord, error) {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo decode: %w", err)
	}

	records := make([]core.RawRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, core.RawRecord(plainValue(map[string]any(doc)).(map[string]any)))
	}
	log.Debug().Int("records", len(records)).Msg("fetched play records from mongo")
	return records, nil
}

func (s *mongoSource) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// plainValue rewrites BSON container and scalar types into plain Go values
// so the normalizer only ever sees map[string]any, []any, string, numbers,
// and time.Time.
func plainValue(v any) any {
	switch t := v.(type) {
	case bson.M:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = plainValue(val)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = plainValue(val)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = plainValue(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plainValue(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plainValue(item)
		}
		return out
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.ObjectID:
		return t.Hex()
	case primitive.Decimal128:
		return t.String()
	case int32:
		return int(t)
	default:
		return v
	}
}
