package config

import (
	"github.com/redis/go-redis/v9"
)

// ConnectRedis builds the shared client used by the cart store and the
// sale notification channel.
func ConnectRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: getenv("REDIS_ADDR", "localhost:6379"),
	})
}
