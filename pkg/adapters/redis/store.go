// Package redis caches flattened node records in Redis and exposes them as
// traversable nodes. It suits crawl pipelines that hydrate a tree once and
// walk it repeatedly without hitting the origin.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/canopyhq/canopy/pkg/content"
	backend "github.com/redis/go-redis/v9"
)

// Store keeps node records in Redis, one JSON value per path, plus a ZSET
// index of known paths.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the expiration for cached records. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for records.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Store connected to the given Redis address.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "canopy:node:",
		ttl:    0,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(path string) string {
	return s.prefix + path
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Put caches a record under its path.
func (s *Store) Put(ctx context.Context, rec content.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record %s: %w", rec.Path, err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(rec.Path), data, s.ttl)

	// Index score tracks expiry so stale paths can be pruned.
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: rec.Path,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache record %s: %w", rec.Path, err)
	}
	return nil
}

// Seed caches a batch of records.
func (s *Store) Seed(ctx context.Context, records ...content.Record) error {
	for _, rec := range records {
		if err := s.Put(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// Record resolves a cached record by path. It satisfies the rest.Source
// contract so a cached tree can be served over HTTP directly.
func (s *Store) Record(ctx context.Context, path string) (*content.Record, error) {
	val, err := s.client.Get(ctx, s.key(path)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, fmt.Errorf("%s: %w", path, content.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load record %s: %w", path, err)
	}
	var rec content.Record
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record %s: %w", path, err)
	}
	return &rec, nil
}

// Paths lists all cached paths in lexical ZSET order.
func (s *Store) Paths(ctx context.Context) ([]string, error) {
	paths, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list cached paths: %w", err)
	}
	return paths, nil
}

// Node resolves a cached record and wraps it as a traversable node with
// lazy child resolution against the store.
func (s *Store) Node(ctx context.Context, path string) (content.Node, error) {
	rec, err := s.Record(ctx, path)
	if err != nil {
		return nil, err
	}
	return &cachedNode{store: s, rec: rec}, nil
}

type cachedNode struct {
	store *Store
	rec   *content.Record
}

func (n *cachedNode) Path() string           { return n.rec.Path }
func (n *cachedNode) PrimaryType() string    { return n.rec.PrimaryType }
func (n *cachedNode) Record() content.Record { return *n.rec }

func (n *cachedNode) Children(_ context.Context) (content.Cursor, error) {
	return &cachedCursor{store: n.store, paths: n.rec.Children}, nil
}

type cachedCursor struct {
	store *Store
	paths []string
	pos   int
}

func (c *cachedCursor) HasNext() bool {
	return c.pos < len(c.paths)
}

func (c *cachedCursor) Next(ctx context.Context) (content.Node, error) {
	if c.pos >= len(c.paths) {
		return nil, content.ErrCursorExhausted
	}
	path := c.paths[c.pos]
	c.pos++
	return c.store.Node(ctx, path)
}
