package content

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/logger"
)

func newRedisStore(t *testing.T, production bool) (*Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewStore(rdb, t.TempDir(), production, logger.NewTest(t)), mr
}

func TestStore_RedisRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newRedisStore(t, true)

	blob := json.RawMessage(`{"questions":[{"q":"How fast?","a":"Up to 6000 ft/day"}]}`)
	require.NoError(t, s.Set(ctx, "faq", blob))

	got, err := s.Get(ctx, "faq")
	require.NoError(t, err)
	assert.JSONEq(t, string(blob), string(got))
}

func TestStore_FileRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil, t.TempDir(), false, logger.NewTest(t))

	blob := json.RawMessage(`{"headline":"Nationwide Fiber Jetting"}`)
	require.NoError(t, s.Set(ctx, "site", blob))

	got, err := s.Get(ctx, "site")
	require.NoError(t, err)
	assert.JSONEq(t, string(blob), string(got))

	// The file lands under the key's mapped filename.
	_, statErr := os.Stat(filepath.Join(s.dir, "site-content.json"))
	assert.NoError(t, statErr)
}

func TestStore_GetMissingReturnsNil(t *testing.T) {
	ctx := context.Background()
	s, _ := newRedisStore(t, true)

	got, err := s.Get(ctx, "map")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_GetUnknownKey(t *testing.T) {
	s := NewStore(nil, t.TempDir(), false, logger.NewTest(t))

	_, err := s.Get(context.Background(), "nav")
	assert.ErrorIs(t, err, ErrUnknownKey)

	err = s.Set(context.Background(), "nav", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestStore_RedisDownFallsBackToFile(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t, true)

	// Seed the fallback file, then kill redis.
	fileStore := NewStore(nil, s.dir, false, logger.NewNop())
	require.NoError(t, fileStore.Set(ctx, "faq", json.RawMessage(`{"from":"file"}`)))
	mr.Close()

	got, err := s.Get(ctx, "faq")
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"file"}`, string(got))
}

func TestStore_ProductionWriteWithoutRedisFailsClosed(t *testing.T) {
	s := NewStore(nil, t.TempDir(), true, logger.NewTest(t))

	err := s.Set(context.Background(), "faq", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, s.Configured())
}

func TestStore_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	s, _ := newRedisStore(t, true)

	require.NoError(t, s.Set(ctx, "map", json.RawMessage(`{"v":1}`)))
	require.NoError(t, s.Set(ctx, "map", json.RawMessage(`{"v":2}`)))

	got, err := s.Get(ctx, "map")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(got))
}
