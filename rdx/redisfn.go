package rdx

import (
	"context"
	"log"
	"time"

	"tripwise/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	Conn = redis.NewClient(&redis.Options{
		Addr: globals.Getenv("REDIS_ADDR", "localhost:6379"),
	})
	if err := Conn.Ping(globals.Ctx).Err(); err != nil {
		log.Printf("Redis unavailable (%v); fill locks degrade to unlocked mode", err)
	}
}

const fillLockTTL = 45 * time.Second

// AcquireFillLock takes a short-lived advisory lock for one
// (destination slug, entity kind) cache fill. Concurrent misses for the
// same key collapse into one generation call; losers re-read the store.
// When redis is down the lock is granted unconditionally.
func AcquireFillLock(ctx context.Context, slug, kind string) (bool, func()) {
	key := "fill:" + slug + ":" + kind
	ok, err := Conn.SetNX(ctx, key, "1", fillLockTTL).Result()
	if err != nil {
		return true, func() {}
	}
	if !ok {
		return false, func() {}
	}
	return true, func() {
		if err := Conn.Del(context.Background(), key).Err(); err != nil {
			log.Printf("Failed to release fill lock %s: %v", key, err)
		}
	}
}

// WaitForFill polls until the holder of the fill lock releases it or the
// wait budget runs out. Callers re-read the store afterwards.
func WaitForFill(ctx context.Context, slug, kind string, maxWait time.Duration) {
	key := "fill:" + slug + ":" + kind
	deadline := time.Now().Add(maxWait)
	for time.Now().Before(deadline) {
		n, err := Conn.Exists(ctx, key).Result()
		if err != nil || n == 0 {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(500 * time.Millisecond):
		}
	}
}
