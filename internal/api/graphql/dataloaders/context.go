package dataloaders

import (
	"context"

	"github.com/dropforge/nft-hub/internal/store"
)

type contextKey string

const loadersKey contextKey = "dataloaders"

// Inject stores a fresh loader bundle in the context; called once per
// GraphQL operation.
func Inject(ctx context.Context, st store.Store) context.Context {
	return context.WithValue(ctx, loadersKey, New(st))
}

// For returns the request-scoped loader bundle. It panics when the context
// was not prepared by Inject; the GraphQL handler always injects.
func For(ctx context.Context) *Loaders {
	loaders, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok {
		panic("dataloaders missing from context")
	}
	return loaders
}
