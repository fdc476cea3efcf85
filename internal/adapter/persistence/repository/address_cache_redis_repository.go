package repository

import (
	"buscador_cep/internal/domain/entities"
	"buscador_cep/internal/usecase/interfaces"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const addressCacheKeyPrefix = "cep:lookup:"

// AddressCacheRedisRepository caches resolved lookups in Redis. Expiration is
// delegated to the key TTL.
type AddressCacheRedisRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
	now func() time.Time
}

var _ interfaces.IAddressCacheRepository = (*AddressCacheRedisRepository)(nil)

func NewAddressCacheRedisRepository(rdb redis.Cmdable, ttl time.Duration) *AddressCacheRedisRepository {
	if ttl <= 0 {
		ttl = defaultAddressCacheTTL
	}
	return &AddressCacheRedisRepository{rdb: rdb, ttl: ttl, now: time.Now}
}

func (r *AddressCacheRedisRepository) Get(ctx context.Context, cep string) (entities.LookupResult, error) {
	raw, err := r.rdb.Get(ctx, addressCacheKeyPrefix+cep).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.LookupResult{}, nil
	}
	if err != nil {
		return entities.LookupResult{}, err
	}

	var it addressCacheItem
	if err := json.Unmarshal(raw, &it); err != nil {
		return entities.LookupResult{}, err
	}
	return fromAddressCacheItem(it), nil
}

func (r *AddressCacheRedisRepository) Put(ctx context.Context, cep string, result entities.LookupResult) error {
	raw, err := json.Marshal(toAddressCacheItem(cep, result, r.now().UTC(), r.ttl))
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, addressCacheKeyPrefix+cep, raw, r.ttl).Err()
}
