package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/logger"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/model"
)

// Package content persists the three admin-editable JSON blobs (map, faq,
// site). Redis is the primary backend when configured; otherwise reads fall
// back to local JSON files, and writes do too outside production. Last
// write wins; admin edits are low-frequency and single-operator.

// ErrUnknownKey is returned for keys outside the fixed blob set.
var ErrUnknownKey = errors.New("unknown content key")

// ErrNotConfigured is returned for writes in production without a Redis
// backend; the caller is told persistence is unavailable instead of
// silently dropping the edit.
var ErrNotConfigured = errors.New(
	"No database configured. In production, set REDIS_ADDR for persistent storage.")

var fileMap = map[string]string{
	model.ContentKeyMap:  "map.json",
	model.ContentKeyFAQ:  "faq.json",
	model.ContentKeySite: "site-content.json",
}

// Store reads and writes content blobs.
type Store struct {
	rdb        *redis.Client
	dir        string
	production bool
	log        logger.Logger
}

// NewStore creates a Store. rdb may be nil, in which case only the
// filesystem backend is used.
func NewStore(rdb *redis.Client, dir string, production bool, log logger.Logger) *Store {
	return &Store{rdb: rdb, dir: dir, production: production, log: log}
}

// Configured reports whether writes can currently be persisted.
func (s *Store) Configured() bool {
	return s.rdb != nil || !s.production
}

func redisKey(key string) string {
	return "content:" + key
}

// Get returns the blob for key, or nil when absent. Redis errors degrade to
// the filesystem fallback rather than failing the read.
func (s *Store) Get(ctx context.Context, key string) (json.RawMessage, error) {
	filename, ok := fileMap[key]
	if !ok {
		return nil, ErrUnknownKey
	}

	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, redisKey(key)).Result()
		switch {
		case err == nil:
			if json.Valid([]byte(raw)) {
				return json.RawMessage(raw), nil
			}
			s.log.Warn("content blob in redis is not valid JSON, falling back to file",
				map[string]interface{}{"key": key})
		case errors.Is(err, redis.Nil):
			// fall through to file
		default:
			s.log.WithError(err).Warn("redis read failed, falling back to file",
				map[string]interface{}{"key": key})
		}
	}

	return s.readFile(filename), nil
}

// Set persists the blob for key. With Redis it writes through; otherwise it
// writes the local JSON file in non-production, and refuses in production.
func (s *Store) Set(ctx context.Context, key string, data json.RawMessage) error {
	filename, ok := fileMap[key]
	if !ok {
		return ErrUnknownKey
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, redisKey(key), string(data), 0).Err(); err != nil {
			return fmt.Errorf("redis write: %w", err)
		}
		return nil
	}

	if !s.production {
		return s.writeFile(filename, data)
	}

	return ErrNotConfigured
}

func (s *Store) readFile(filename string) json.RawMessage {
	raw, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil || !json.Valid(raw) {
		return nil
	}
	return json.RawMessage(raw)
}

func (s *Store) writeFile(filename string, data json.RawMessage) error {
	var buf any
	if err := json.Unmarshal(data, &buf); err != nil {
		return fmt.Errorf("invalid content JSON: %w", err)
	}
	pretty, err := json.MarshalIndent(buf, "", "  ")
	if err != nil {
		return err
	}
	pretty = append(pretty, '\n')

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, filename), pretty, 0o644)
}
