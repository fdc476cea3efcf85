package interfaces

import (
	"buscador_cep/internal/domain/entities"
	"context"
)

// IAddressLookupGateway abstracts the external address-lookup collaborator
// (e.g. ViaCEP).
//
// A domain "not found" answer comes back as entities.NotFoundResult().
// A returned error always means the request could not complete.
type IAddressLookupGateway interface {
	Lookup(ctx context.Context, cep string) (entities.LookupResult, error)
}
