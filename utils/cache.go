// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"allservices/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces cached auth-token hashes.
const AuthCachePrefix = "auth:"

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// LockClient is the dedicated client for per-entity locks.
	LockClient *redis.Client
)

// InitRedis initializes all Redis clients up front so connection
// problems surface at startup rather than on first use.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "Auth Cache")
	LockClient = newRedisClient(config.AppConfig.RedisLockDB, "Lock")
}

func newRedisClient(db int, label string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", label, err)
	}
	return client
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
	}
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "Auth Cache")
	}
	return AuthCacheClient
}

// GetLockClient returns the Redis client used for per-entity locks.
func GetLockClient() *redis.Client {
	if LockClient == nil {
		LockClient = newRedisClient(config.AppConfig.RedisLockDB, "Lock")
	}
	return LockClient
}
