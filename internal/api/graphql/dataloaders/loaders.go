// Package dataloaders provides the request-scoped batching layer of the read
// path. Every per-entity fetch a GraphQL request fans out into is coalesced
// here into a single IN query per loader type.
package dataloaders

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/store"
	"github.com/dropforge/nft-hub/internal/store/schema"
)

// MaxPageSize clamps connection page sizes.
const MaxPageSize = 32

// PageKey keys a paged listing loader; keys sharing the same page bounds are
// batched into one query.
type PageKey struct {
	ID     uuid.UUID
	Limit  int
	Offset int
}

// OwnerKey keys the mints-by-owner loader.
type OwnerKey struct {
	Owner  string
	Limit  int
	Offset int
}

// Loaders bundles one loader per relation. A Loaders value is built per
// GraphQL request and never shared across requests.
type Loaders struct {
	CollectionByID              *dataloader.Loader[uuid.UUID, *schema.Collection]
	DropByID                    *dataloader.Loader[uuid.UUID, *schema.Drop]
	MintByID                    *dataloader.Loader[uuid.UUID, *schema.CollectionMint]
	MetadataJsonByID            *dataloader.Loader[uuid.UUID, *schema.MetadataJson]
	CollectionsByProjectID      *dataloader.Loader[PageKey, []schema.Collection]
	DropsByProjectID            *dataloader.Loader[PageKey, []schema.Drop]
	MintsByCollectionID         *dataloader.Loader[PageKey, []schema.CollectionMint]
	MintsByOwner                *dataloader.Loader[OwnerKey, []schema.CollectionMint]
	QueuedMintsByCollection     *dataloader.Loader[uuid.UUID, []schema.CollectionMint]
	CreatorsByCollectionID      *dataloader.Loader[uuid.UUID, []schema.Creator]
	MintCreatorsByMintID        *dataloader.Loader[uuid.UUID, []schema.MintCreator]
	AttributesByJsonID          *dataloader.Loader[uuid.UUID, []schema.MetadataJsonAttribute]
	FilesByJsonID               *dataloader.Loader[uuid.UUID, []schema.MetadataJsonFile]
	HoldersByCollectionID       *dataloader.Loader[uuid.UUID, []store.HolderRow]
	MintHistoriesByCollection   *dataloader.Loader[uuid.UUID, []schema.MintHistory]
	MintHistoriesByDrop         *dataloader.Loader[uuid.UUID, []schema.MintHistory]
	UpdateHistoriesByMint       *dataloader.Loader[uuid.UUID, []schema.UpdateHistory]
	TransfersByMint             *dataloader.Loader[uuid.UUID, []schema.NftTransfer]
	SwitchHistoriesByMint       *dataloader.Loader[uuid.UUID, []schema.SwitchCollectionHistory]
	ProjectWalletsByProjectID   *dataloader.Loader[uuid.UUID, []schema.ProjectWallet]
	CustomerWalletsByCustomerID *dataloader.Loader[uuid.UUID, []schema.CustomerWallet]
}

// ClampFirst bounds a requested page size into [1, MaxPageSize].
func ClampFirst(first *int) int {
	if first == nil || *first <= 0 || *first > MaxPageSize {
		return MaxPageSize
	}
	return *first
}

// New builds the per-request loader bundle over the store.
func New(st store.Store) *Loaders {
	return &Loaders{
		CollectionByID:   pointLoader(st.GetCollectionsByIDs, func(c schema.Collection) uuid.UUID { return c.ID }),
		DropByID:         pointLoader(st.GetDropsByIDs, func(d schema.Drop) uuid.UUID { return d.ID }),
		MintByID:         pointLoader(st.GetMintsByIDs, func(m schema.CollectionMint) uuid.UUID { return m.ID }),
		MetadataJsonByID: pointLoader(st.GetMetadataJsonsByIDs, func(j schema.MetadataJson) uuid.UUID { return j.ID }),

		CollectionsByProjectID: pagedLoader(st.GetCollectionsByProjectIDs, func(c schema.Collection) uuid.UUID { return c.ProjectID }),
		DropsByProjectID:       pagedLoader(st.GetDropsByProjectIDs, func(d schema.Drop) uuid.UUID { return d.ProjectID }),
		MintsByCollectionID:    pagedLoader(st.GetMintsByCollectionIDs, func(m schema.CollectionMint) uuid.UUID { return m.CollectionID }),
		MintsByOwner:           ownerLoader(st),

		QueuedMintsByCollection:   groupLoader(st.GetQueuedMintsByCollectionIDs, func(m schema.CollectionMint) uuid.UUID { return m.CollectionID }),
		CreatorsByCollectionID:    groupLoader(st.GetCreatorsByCollectionIDs, func(c schema.Creator) uuid.UUID { return c.CollectionID }),
		MintCreatorsByMintID:      groupLoader(st.GetMintCreatorsByMintIDs, func(c schema.MintCreator) uuid.UUID { return c.MintID }),
		AttributesByJsonID:        groupLoader(st.GetAttributesByMetadataJsonIDs, func(a schema.MetadataJsonAttribute) uuid.UUID { return a.MetadataJsonID }),
		FilesByJsonID:             groupLoader(st.GetFilesByMetadataJsonIDs, func(f schema.MetadataJsonFile) uuid.UUID { return f.MetadataJsonID }),
		HoldersByCollectionID:     groupLoader(st.GetHoldersByCollectionIDs, func(h store.HolderRow) uuid.UUID { return h.CollectionID }),
		MintHistoriesByCollection: groupLoader(st.GetMintHistoriesByCollectionIDs, func(h schema.MintHistory) uuid.UUID { return h.CollectionID }),
		MintHistoriesByDrop: groupLoader(st.GetMintHistoriesByDropIDs, func(h schema.MintHistory) uuid.UUID {
			if h.DropID != nil {
				return *h.DropID
			}
			return uuid.Nil
		}),
		UpdateHistoriesByMint:       groupLoader(st.GetUpdateHistoriesByMintIDs, func(h schema.UpdateHistory) uuid.UUID { return h.MintID }),
		TransfersByMint:             groupLoader(st.GetTransfersByMintIDs, func(t schema.NftTransfer) uuid.UUID { return t.CollectionMintID }),
		SwitchHistoriesByMint:       groupLoader(st.GetSwitchHistoriesByMintIDs, func(h schema.SwitchCollectionHistory) uuid.UUID { return h.MintID }),
		ProjectWalletsByProjectID:   groupLoader(st.GetProjectWalletsByProjectIDs, func(w schema.ProjectWallet) uuid.UUID { return w.ProjectID }),
		CustomerWalletsByCustomerID: groupLoader(st.GetCustomerWalletsByCustomerIDs, func(w schema.CustomerWallet) uuid.UUID { return w.CustomerID }),
	}
}

// pointLoader batches point lookups; missing keys resolve to nil without an
// error.
func pointLoader[V any](fetch func(context.Context, []uuid.UUID) ([]V, error), key func(V) uuid.UUID) *dataloader.Loader[uuid.UUID, *V] {
	batch := func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*V] {
		results := make([]*dataloader.Result[*V], len(keys))
		rows, err := fetch(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[*V]{Error: err}
			}
			return results
		}
		byID := make(map[uuid.UUID]*V, len(rows))
		for i := range rows {
			row := rows[i]
			byID[key(row)] = &row
		}
		for i, k := range keys {
			results[i] = &dataloader.Result[*V]{Data: byID[k]}
		}
		return results
	}
	return dataloader.NewBatchedLoader(batch, dataloader.WithClearCacheOnBatch[uuid.UUID, *V]())
}

// groupLoader batches one-to-many lookups; missing keys resolve to empty
// slices.
func groupLoader[V any](fetch func(context.Context, []uuid.UUID) ([]V, error), key func(V) uuid.UUID) *dataloader.Loader[uuid.UUID, []V] {
	batch := func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]V] {
		results := make([]*dataloader.Result[[]V], len(keys))
		rows, err := fetch(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[[]V]{Error: err}
			}
			return results
		}
		grouped := make(map[uuid.UUID][]V, len(keys))
		for _, row := range rows {
			grouped[key(row)] = append(grouped[key(row)], row)
		}
		for i, k := range keys {
			results[i] = &dataloader.Result[[]V]{Data: grouped[k]}
		}
		return results
	}
	return dataloader.NewBatchedLoader(batch, dataloader.WithClearCacheOnBatch[uuid.UUID, []V]())
}

// pagedLoader batches paged listings; keys sharing the same page bounds go
// out as one query.
func pagedLoader[V any](fetch func(context.Context, []uuid.UUID, store.Page) ([]V, error), key func(V) uuid.UUID) *dataloader.Loader[PageKey, []V] {
	batch := func(ctx context.Context, keys []PageKey) []*dataloader.Result[[]V] {
		results := make([]*dataloader.Result[[]V], len(keys))

		type page struct{ limit, offset int }
		groups := make(map[page][]int)
		for i, k := range keys {
			p := page{limit: k.Limit, offset: k.Offset}
			groups[p] = append(groups[p], i)
		}

		for p, indexes := range groups {
			ids := make([]uuid.UUID, 0, len(indexes))
			for _, i := range indexes {
				ids = append(ids, keys[i].ID)
			}
			rows, err := fetch(ctx, ids, store.Page{Limit: p.limit, Offset: p.offset})
			if err != nil {
				for _, i := range indexes {
					results[i] = &dataloader.Result[[]V]{Error: err}
				}
				continue
			}
			grouped := make(map[uuid.UUID][]V, len(ids))
			for _, row := range rows {
				grouped[key(row)] = append(grouped[key(row)], row)
			}
			for _, i := range indexes {
				results[i] = &dataloader.Result[[]V]{Data: grouped[keys[i].ID]}
			}
		}
		return results
	}
	return dataloader.NewBatchedLoader(batch, dataloader.WithClearCacheOnBatch[PageKey, []V]())
}

// ownerLoader batches mints-by-owner listings keyed by normalized address.
func ownerLoader(st store.Store) *dataloader.Loader[OwnerKey, []schema.CollectionMint] {
	return dataloader.NewBatchedLoader(func(ctx context.Context, keys []OwnerKey) []*dataloader.Result[[]schema.CollectionMint] {
		results := make([]*dataloader.Result[[]schema.CollectionMint], len(keys))

		type page struct{ limit, offset int }
		groups := make(map[page][]int)
		for i, k := range keys {
			p := page{limit: k.Limit, offset: k.Offset}
			groups[p] = append(groups[p], i)
		}

		for p, indexes := range groups {
			owners := make([]string, 0, len(indexes))
			for _, i := range indexes {
				owners = append(owners, keys[i].Owner)
			}
			rows, err := st.GetMintsByOwners(ctx, owners, store.Page{Limit: p.limit, Offset: p.offset})
			if err != nil {
				for _, i := range indexes {
					results[i] = &dataloader.Result[[]schema.CollectionMint]{Error: err}
				}
				continue
			}
			grouped := make(map[string][]schema.CollectionMint)
			for _, row := range rows {
				if row.Owner == nil {
					continue
				}
				grouped[domain.NormalizeAddress(*row.Owner)] = append(grouped[domain.NormalizeAddress(*row.Owner)], row)
			}
			for _, i := range indexes {
				results[i] = &dataloader.Result[[]schema.CollectionMint]{Data: grouped[keys[i].Owner]}
			}
		}
		return results
	}, dataloader.WithClearCacheOnBatch[OwnerKey, []schema.CollectionMint]())
}

// NewOwnerKey normalizes the owner address so mixed-case EVM inputs coalesce
// onto one key.
func NewOwnerKey(owner string, limit, offset int) OwnerKey {
	return OwnerKey{Owner: domain.NormalizeAddress(owner), Limit: limit, Offset: offset}
}
