package config

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	Ctx         = context.Background()
)

// InitRedis connects the listing cache. Returns nil when REDIS_ADDR is not
// configured; the cache is optional and callers treat a nil client as
// cache-off.
func InitRedis() *redis.Client {
	redisOnce.Do(func() {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			log.Println("REDIS_ADDR not set, listing cache disabled")
			return
		}

		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASS"),
			DB:       0,
		})

		if _, err := client.Ping(Ctx).Result(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Println("Connected to Redis")
		redisClient = client
	})
	return redisClient
}
