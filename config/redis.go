package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis holds the rate limit counters and per-user alert configs.
var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis() {
	opt, err := redis.ParseURL(redisURL())
	if err != nil {
		panic(fmt.Sprintf("❌ invalid REDIS_URL: %v", err))
	}

	RedisClient = redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(Ctx, 5*time.Second)
	defer cancel()
	res, err := RedisClient.Ping(pingCtx).Result()
	if err != nil {
		panic(fmt.Sprintf("❌ failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis:", res)
}

func redisURL() string {
	if url := os.Getenv("REDIS_URL"); url != "" {
		return url
	}
	url := "redis://localhost:6379"
	log.Println("⚠️  REDIS_URL not set, using local Redis:", url)
	return url
}
