package revalidate

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/logger"
)

func TestPathsFor(t *testing.T) {
	assert.Equal(t, []string{"/gallery"}, PathsFor("galleryImage"))
	assert.Equal(t, []string{"/careers"}, PathsFor("jobPosting"))
	assert.Equal(t, AllPaths, PathsFor("somethingNew"), "unknown types purge everything")
	assert.Equal(t, AllPaths, PathsFor(""))
}

func TestBroadcasterPublishes(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	sub := rdb.Subscribe(context.Background(), Channel)
	t.Cleanup(func() { sub.Close() })
	_, err := sub.Receive(context.Background())
	require.NoError(t, err)

	b := NewBroadcaster(rdb, logger.NewTest(t))
	b.Invalidate(context.Background(), "/gallery", "/careers")

	select {
	case msg := <-sub.Channel():
		var ev struct {
			Paths []string `json:"paths"`
			At    int64    `json:"at"`
		}
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &ev))
		assert.Equal(t, []string{"/gallery", "/careers"}, ev.Paths)
		assert.NotZero(t, ev.At)
	case <-time.After(2 * time.Second):
		t.Fatal("no invalidation event received")
	}
}

func TestBroadcasterWithoutRedis(t *testing.T) {
	b := NewBroadcaster(nil, logger.NewTest(t))

	// Logging-only fallback must not panic.
	b.Invalidate(context.Background(), "/")
	b.Invalidate(context.Background())
}
