package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a client backed by a process-wide miniredis instance.
// The cache layer treats redis failures as misses, so tests that want cold
// caches only need ClearRedis between scenarios.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisConn = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisConn
}

// ClearRedis flushes every key so cached month snapshots from one scenario
// never leak into the next.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
