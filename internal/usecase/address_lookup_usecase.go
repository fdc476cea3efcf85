package usecase

import (
	"buscador_cep/internal/domain/entities"
	"buscador_cep/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"log"
)

var (
	ErrCEPNotFound       = errors.New("cep not found")
	ErrLookupUnavailable = errors.New("address lookup unavailable")
)

// IAddressLookupUseCase resolves a CEP without any form state.
//
// Used by GET /v1/cep/:cep. Unlike the form, it may answer from the cache.

type IAddressLookupUseCase interface {
	LookupByCEP(ctx context.Context, cep string) (entities.Address, error)
}

type AddressLookupUseCase struct {
	gateway interfaces.IAddressLookupGateway
	cache   interfaces.IAddressCacheRepository
}

var _ IAddressLookupUseCase = (*AddressLookupUseCase)(nil)

// NewAddressLookupUseCase builds the use case; cache may be nil.
func NewAddressLookupUseCase(gateway interfaces.IAddressLookupGateway, cache interfaces.IAddressCacheRepository) *AddressLookupUseCase {
	return &AddressLookupUseCase{gateway: gateway, cache: cache}
}

func (u *AddressLookupUseCase) LookupByCEP(ctx context.Context, cep string) (entities.Address, error) {
	if err := entities.ValidateCEP(cep); err != nil {
		return entities.Address{}, err
	}

	if cached, ok := u.fromCache(ctx, cep); ok {
		return resultToAddress(cached)
	}

	result, err := u.gateway.Lookup(ctx, cep)
	if err != nil {
		return entities.Address{}, fmt.Errorf("%w: %w", ErrLookupUnavailable, err)
	}
	if result.Status != entities.LookupStatusFound && result.Status != entities.LookupStatusNotFound {
		return entities.Address{}, fmt.Errorf("%w: unexpected lookup status %q", ErrLookupUnavailable, result.Status)
	}

	u.toCache(ctx, cep, result)
	return resultToAddress(result)
}

func (u *AddressLookupUseCase) fromCache(ctx context.Context, cep string) (entities.LookupResult, bool) {
	if u.cache == nil {
		return entities.LookupResult{}, false
	}
	cached, err := u.cache.Get(ctx, cep)
	if err != nil {
		log.Printf("[cep][cache] get failed cep=%s err=%v", cep, err)
		return entities.LookupResult{}, false
	}
	switch cached.Status {
	case entities.LookupStatusFound, entities.LookupStatusNotFound:
		log.Printf("[cep][cache] hit cep=%s status=%s", cep, cached.Status)
		return cached, true
	default:
		return entities.LookupResult{}, false
	}
}

func (u *AddressLookupUseCase) toCache(ctx context.Context, cep string, result entities.LookupResult) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Put(ctx, cep, result); err != nil {
		log.Printf("[cep][cache] put failed cep=%s err=%v", cep, err)
	}
}

func resultToAddress(r entities.LookupResult) (entities.Address, error) {
	if !r.IsFound() {
		return entities.Address{}, ErrCEPNotFound
	}
	return r.Address, nil
}
