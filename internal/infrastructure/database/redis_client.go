package database

import (
	"buscador_cep/pkg"
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	CacheBackendDynamoDB = "dynamodb"
	CacheBackendRedis    = "redis"
)

// ConnectRedis creates the Redis client backing the CEP lookup cache when
// CEP_CACHE_BACKEND=redis.
//
// Supported env vars:
//   - REDIS_URL (default: redis://localhost:6379/0)
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	opt, err := redis.ParseURL(pkg.GetenvDefault("REDIS_URL", "redis://localhost:6379/0"))
	if err != nil {
		log.Printf("[cep][redis] invalid REDIS_URL err=%v", err)
		return nil, err
	}

	client := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		log.Printf("[cep][redis] ping failed addr=%s err=%v", opt.Addr, err)
		return nil, err
	}

	log.Printf("[cep][redis] client initialized addr=%s db=%d", opt.Addr, opt.DB)
	return client, nil
}

// AddressCacheBackend reads CEP_CACHE_BACKEND; anything but "redis" means
// DynamoDB.
func AddressCacheBackend() string {
	if strings.EqualFold(strings.TrimSpace(os.Getenv("CEP_CACHE_BACKEND")), CacheBackendRedis) {
		return CacheBackendRedis
	}
	return CacheBackendDynamoDB
}
