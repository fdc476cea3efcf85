package interfaces

import (
	"buscador_cep/internal/domain/entities"
	"context"
)

// IAddressCacheRepository abstracts the cache of resolved lookups (DynamoDB or Redis).
//
// Get returns a zero LookupResult (status "") on a miss or an expired entry.

type IAddressCacheRepository interface {
	Get(ctx context.Context, cep string) (entities.LookupResult, error)
	Put(ctx context.Context, cep string, result entities.LookupResult) error
}
