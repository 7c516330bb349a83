package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"lifelog/internal/core"

	"github.com/redis/go-redis/v9"
)

// ErrNotRecorded is returned by Fetch when no snapshot exists for a key.
var ErrNotRecorded = errors.New("generation not recorded")

// Redis stores each snapshot as JSON under Key(namespace, id, generation).
type Redis struct {
	client    *redis.Client
	namespace string
	log       *slog.Logger
}

// DialRedis connects to the server at url (redis://host:port/db) and checks
// it with a PING.
func DialRedis(ctx context.Context, url, namespace string, log *slog.Logger) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	r := NewRedis(redis.NewClient(opts), namespace, log)
	if err := r.client.Ping(ctx).Err(); err != nil {
		r.client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", opts.Addr, err)
	}
	return r, nil
}

// NewRedis wraps an existing client. An empty namespace selects
// DefaultNamespace.
func NewRedis(client *redis.Client, namespace string, log *slog.Logger) *Redis {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if log == nil {
		log = slog.Default()
	}
	return &Redis{client: client, namespace: namespace, log: log}
}

// Namespace returns the key prefix in use.
func (r *Redis) Namespace() string { return r.namespace }

// Record serializes snapshot and SETs it, overwriting any previous value.
func (r *Redis) Record(ctx context.Context, generation uint64, snapshot *core.Grid) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode generation %d: %w", generation, err)
	}
	key := Key(r.namespace, snapshot.ID(), generation)
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	r.log.Debug("recorded generation", "key", key, "bytes", len(data))
	return nil
}

// Fetch loads a previously recorded generation.
func (r *Redis) Fetch(ctx context.Context, gridID string, generation uint64) (*core.Grid, error) {
	key := Key(r.namespace, gridID, generation)
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s: %w", key, ErrNotRecorded)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	g := new(core.Grid)
	if err := json.Unmarshal(data, g); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return g, nil
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error { return r.client.Close() }
