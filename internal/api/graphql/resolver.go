package graphql

import (
	"github.com/dropforge/nft-hub/internal/adapter"
	"github.com/dropforge/nft-hub/internal/mutations"
	"github.com/dropforge/nft-hub/internal/store"
)

// Resolver is the root resolver; queries read through the request-scoped
// dataloaders, mutations go through the service. The clock feeds drop status
// derivation.
type Resolver struct {
	store     store.Store
	mutations *mutations.Service
	clock     adapter.Clock
}

// NewResolver creates a new root resolver
func NewResolver(st store.Store, svc *mutations.Service, clock adapter.Clock) *Resolver {
	return &Resolver{
		store:     st,
		mutations: svc,
		clock:     clock,
	}
}
