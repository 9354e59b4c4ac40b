package revalidate

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/logger"
)

// Package revalidate broadcasts page-cache invalidations. The rendering
// tier subscribes to a Redis channel and purges the listed paths; without
// Redis the invalidation is logged and otherwise dropped.

// Channel is the Redis pub/sub channel invalidation events go out on.
const Channel = "cache:invalidate"

// AllPaths is the invalidate-everything set used when a content type is
// unrecognized.
var AllPaths = []string{"/", "/about", "/contact", "/gallery", "/careers"}

// pathsByType maps a published content type to the pages it feeds.
var pathsByType = map[string][]string{
	"galleryImage": {"/gallery"},
	"jobPosting":   {"/careers"},
	"map":          {"/", "/contact"},
	"faq":          {"/", "/about"},
	"site":         {"/", "/about", "/contact"},
}

// PathsFor returns the pages to purge for a content type. Unknown types
// purge everything.
func PathsFor(contentType string) []string {
	if paths, ok := pathsByType[contentType]; ok {
		return paths
	}
	return AllPaths
}

// Invalidator purges cached pages.
type Invalidator interface {
	Invalidate(ctx context.Context, paths ...string)
}

type event struct {
	Paths []string `json:"paths"`
	At    int64    `json:"at"`
}

// Broadcaster publishes invalidation events over Redis. A nil client
// degrades to logging only.
type Broadcaster struct {
	rdb *redis.Client
	log logger.Logger
}

// NewBroadcaster creates a Broadcaster. rdb may be nil.
func NewBroadcaster(rdb *redis.Client, log logger.Logger) *Broadcaster {
	return &Broadcaster{rdb: rdb, log: log}
}

func (b *Broadcaster) Invalidate(ctx context.Context, paths ...string) {
	if len(paths) == 0 {
		paths = AllPaths
	}

	if b.rdb == nil {
		b.log.Info("cache invalidation skipped, no redis", map[string]interface{}{"paths": paths})
		return
	}

	payload, err := json.Marshal(event{Paths: paths, At: time.Now().UnixMilli()})
	if err != nil {
		b.log.WithError(err).Error("invalidation event marshal failed", nil)
		return
	}
	if err := b.rdb.Publish(ctx, Channel, payload).Err(); err != nil {
		b.log.WithError(err).Error("invalidation publish failed", map[string]interface{}{"paths": paths})
		return
	}
	b.log.Info("cache invalidation published", map[string]interface{}{"paths": paths})
}
