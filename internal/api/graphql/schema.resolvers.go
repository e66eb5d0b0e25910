package graphql

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.81

import (
	"context"

	"github.com/dropforge/nft-hub/internal/api/graphql/dataloaders"
	"github.com/dropforge/nft-hub/internal/api/middleware"
	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/mutations"
	"github.com/dropforge/nft-hub/internal/store"
	"github.com/dropforge/nft-hub/internal/store/schema"
	"github.com/google/uuid"
)

// SellerFeeBasisPoints is the resolver for the sellerFeeBasisPoints field.
func (r *collectionResolver) SellerFeeBasisPoints(ctx context.Context, obj *schema.Collection) (int, error) {
	return int(obj.SellerFeeBasisPoints), nil
}

// MetadataJson is the resolver for the metadataJson field.
func (r *collectionResolver) MetadataJson(ctx context.Context, obj *schema.Collection) (*schema.MetadataJson, error) {
	return dataloaders.For(ctx).MetadataJsonByID.Load(ctx, obj.ID)()
}

// Creators is the resolver for the creators field.
func (r *collectionResolver) Creators(ctx context.Context, obj *schema.Collection) ([]*schema.Creator, error) {
	creators, err := dataloaders.For(ctx).CreatorsByCollectionID.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}
	return ptrSlice(creators), nil
}

// Mints is the resolver for the mints field.
func (r *collectionResolver) Mints(ctx context.Context, obj *schema.Collection, first *int, after *string) (*MintConnection, error) {
	limit, offset, err := pageBounds(first, after)
	if err != nil {
		return nil, err
	}
	key := dataloaders.PageKey{ID: obj.ID, Limit: limit + 1, Offset: offset}
	mints, err := dataloaders.For(ctx).MintsByCollectionID.Load(ctx, key)()
	if err != nil {
		return nil, err
	}
	return mintConnection(mints, limit, offset), nil
}

// Holders is the resolver for the holders field.
func (r *collectionResolver) Holders(ctx context.Context, obj *schema.Collection) ([]*store.HolderRow, error) {
	holders, err := dataloaders.For(ctx).HoldersByCollectionID.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}
	return ptrSlice(holders), nil
}

// PurchaseHistories is the resolver for the purchaseHistories field.
func (r *collectionResolver) PurchaseHistories(ctx context.Context, obj *schema.Collection) ([]*schema.MintHistory, error) {
	histories, err := dataloaders.For(ctx).MintHistoriesByCollection.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}
	return ptrSlice(histories), nil
}

// SellerFeeBasisPoints is the resolver for the sellerFeeBasisPoints field.
func (r *collectionMintResolver) SellerFeeBasisPoints(ctx context.Context, obj *schema.CollectionMint) (int, error) {
	return int(obj.SellerFeeBasisPoints), nil
}

// Collection is the resolver for the collection field.
func (r *collectionMintResolver) Collection(ctx context.Context, obj *schema.CollectionMint) (*schema.Collection, error) {
	return dataloaders.For(ctx).CollectionByID.Load(ctx, obj.CollectionID)()
}

// MetadataJson is the resolver for the metadataJson field.
func (r *collectionMintResolver) MetadataJson(ctx context.Context, obj *schema.CollectionMint) (*schema.MetadataJson, error) {
	return dataloaders.For(ctx).MetadataJsonByID.Load(ctx, obj.ID)()
}

// Creators is the resolver for the creators field.
func (r *collectionMintResolver) Creators(ctx context.Context, obj *schema.CollectionMint) ([]*schema.Creator, error) {
	creators, err := dataloaders.For(ctx).MintCreatorsByMintID.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}
	out := make([]*schema.Creator, 0, len(creators))
	for _, c := range creators {
		out = append(out, &schema.Creator{Address: c.Address, Verified: c.Verified, Share: c.Share})
	}
	return out, nil
}

// MintHistories is the resolver for the mintHistories field.
func (r *collectionMintResolver) MintHistories(ctx context.Context, obj *schema.CollectionMint) ([]*schema.MintHistory, error) {
	histories, err := dataloaders.For(ctx).MintHistoriesByCollection.Load(ctx, obj.CollectionID)()
	if err != nil {
		return nil, err
	}
	out := make([]*schema.MintHistory, 0, len(histories))
	for i := range histories {
		if histories[i].MintID == obj.ID {
			out = append(out, &histories[i])
		}
	}
	return out, nil
}

// UpdateHistories is the resolver for the updateHistories field.
func (r *collectionMintResolver) UpdateHistories(ctx context.Context, obj *schema.CollectionMint) ([]*schema.UpdateHistory, error) {
	histories, err := dataloaders.For(ctx).UpdateHistoriesByMint.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}
	return ptrSlice(histories), nil
}

// Transfers is the resolver for the transfers field.
func (r *collectionMintResolver) Transfers(ctx context.Context, obj *schema.CollectionMint) ([]*schema.NftTransfer, error) {
	transfers, err := dataloaders.For(ctx).TransfersByMint.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}
	return ptrSlice(transfers), nil
}

// SwitchHistories is the resolver for the switchHistories field.
func (r *collectionMintResolver) SwitchHistories(ctx context.Context, obj *schema.CollectionMint) ([]*schema.SwitchCollectionHistory, error) {
	histories, err := dataloaders.For(ctx).SwitchHistoriesByMint.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}
	return ptrSlice(histories), nil
}

// Share is the resolver for the share field.
func (r *creatorResolver) Share(ctx context.Context, obj *schema.Creator) (int, error) {
	return int(obj.Share), nil
}

// Mints is the resolver for the mints field.
func (r *customerResolver) Mints(ctx context.Context, obj *Customer, first *int, after *string) (*MintConnection, error) {
	limit, offset, err := pageBounds(first, after)
	if err != nil {
		return nil, err
	}
	wallets, err := dataloaders.For(ctx).CustomerWalletsByCustomerID.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}

	// one thunk per wallet; same page bounds batch into one query
	thunks := make([]func() ([]schema.CollectionMint, error), 0, len(wallets))
	for _, w := range wallets {
		key := dataloaders.NewOwnerKey(w.Address, limit+1, offset)
		thunks = append(thunks, dataloaders.For(ctx).MintsByOwner.Load(ctx, key))
	}
	var mints []schema.CollectionMint
	for _, thunk := range thunks {
		rows, err := thunk()
		if err != nil {
			return nil, err
		}
		mints = append(mints, rows...)
	}
	return mintConnection(mints, limit, offset), nil
}

// Status is the resolver for the status field.
func (r *dropResolver) Status(ctx context.Context, obj *schema.Drop) (domain.DropStatus, error) {
	drop := *obj
	if drop.Collection == nil {
		collection, err := dataloaders.For(ctx).CollectionByID.Load(ctx, obj.CollectionID)()
		if err != nil {
			return "", err
		}
		drop.Collection = collection
	}
	return DropStatus(&drop, r.clock.Now()), nil
}

// Price is the resolver for the price field.
func (r *dropResolver) Price(ctx context.Context, obj *schema.Drop) (uint64, error) {
	return uint64(obj.Price), nil
}

// Collection is the resolver for the collection field.
func (r *dropResolver) Collection(ctx context.Context, obj *schema.Drop) (*schema.Collection, error) {
	if obj.Collection != nil {
		return obj.Collection, nil
	}
	return dataloaders.For(ctx).CollectionByID.Load(ctx, obj.CollectionID)()
}

// QueuedMints is the resolver for the queuedMints field.
func (r *dropResolver) QueuedMints(ctx context.Context, obj *schema.Drop) ([]*schema.CollectionMint, error) {
	mints, err := dataloaders.For(ctx).QueuedMintsByCollection.Load(ctx, obj.CollectionID)()
	if err != nil {
		return nil, err
	}
	return ptrSlice(mints), nil
}

// PurchaseHistories is the resolver for the purchaseHistories field.
func (r *dropResolver) PurchaseHistories(ctx context.Context, obj *schema.Drop) ([]*schema.MintHistory, error) {
	histories, err := dataloaders.For(ctx).MintHistoriesByDrop.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}
	return ptrSlice(histories), nil
}

// Attributes is the resolver for the attributes field.
func (r *metadataJsonResolver) Attributes(ctx context.Context, obj *schema.MetadataJson) ([]*schema.MetadataJsonAttribute, error) {
	attributes, err := dataloaders.For(ctx).AttributesByJsonID.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}
	return ptrSlice(attributes), nil
}

// Files is the resolver for the files field.
func (r *metadataJsonResolver) Files(ctx context.Context, obj *schema.MetadataJson) ([]*schema.MetadataJsonFile, error) {
	files, err := dataloaders.For(ctx).FilesByJsonID.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}
	return ptrSlice(files), nil
}

// CreateCollection is the resolver for the createCollection field.
func (r *mutationResolver) CreateCollection(ctx context.Context, input CreateCollectionInput) (*schema.Collection, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.CreateCollection(ctx, ident, mutations.CreateCollectionInput{
		ProjectID:            input.ProjectID,
		Blockchain:           input.Blockchain,
		Supply:               toInt64Ptr(input.Supply),
		SellerFeeBasisPoints: uint16(input.SellerFeeBasisPoints),
		Creators:             toCreators(input.Creators),
		Metadata:             toDocument(input.MetadataJson),
	})
}

// RetryCollection is the resolver for the retryCollection field.
func (r *mutationResolver) RetryCollection(ctx context.Context, id uuid.UUID) (*schema.Collection, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.RetryCollection(ctx, ident, id)
}

// PatchCollection is the resolver for the patchCollection field.
func (r *mutationResolver) PatchCollection(ctx context.Context, input PatchCollectionInput) (*schema.Collection, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.PatchCollection(ctx, ident, mutations.PatchCollectionInput{
		ID:       input.ID,
		Metadata: toDocumentPtr(input.MetadataJson),
		Creators: toCreators(input.Creators),
	})
}

// ImportCollection is the resolver for the importCollection field.
func (r *mutationResolver) ImportCollection(ctx context.Context, input ImportCollectionInput) (*schema.Collection, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.ImportCollection(ctx, ident, mutations.ImportCollectionInput{
		ProjectID:         input.ProjectID,
		Blockchain:        input.Blockchain,
		CollectionAddress: input.CollectionAddress,
	})
}

// SwitchCollection is the resolver for the switchCollection field.
func (r *mutationResolver) SwitchCollection(ctx context.Context, input SwitchCollectionInput) (*schema.CollectionMint, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.SwitchMintCollection(ctx, ident, input.MintID, input.NewCollectionID)
}

// CreateDrop is the resolver for the createDrop field.
func (r *mutationResolver) CreateDrop(ctx context.Context, input CreateDropInput) (*schema.Drop, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	var price int64
	if input.Price != nil {
		price = int64(*input.Price)
	}
	return r.mutations.CreateDrop(ctx, ident, mutations.CreateDropInput{
		ProjectID:            input.ProjectID,
		Blockchain:           input.Blockchain,
		DropType:             input.DropType,
		Price:                price,
		StartTime:            input.StartTime,
		EndTime:              input.EndTime,
		Supply:               toInt64Ptr(input.Supply),
		SellerFeeBasisPoints: uint16(input.SellerFeeBasisPoints),
		Creators:             toCreators(input.Creators),
		Metadata:             toDocument(input.MetadataJson),
	})
}

// RetryDrop is the resolver for the retryDrop field.
func (r *mutationResolver) RetryDrop(ctx context.Context, id uuid.UUID) (*schema.Drop, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.RetryDrop(ctx, ident, id)
}

// PatchDrop is the resolver for the patchDrop field.
func (r *mutationResolver) PatchDrop(ctx context.Context, input PatchDropInput) (*schema.Drop, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.PatchDrop(ctx, ident, mutations.PatchDropInput{
		ID:             input.ID,
		Metadata:       toDocumentPtr(input.MetadataJson),
		Creators:       toCreators(input.Creators),
		Supply:         toInt64Ptr(input.Supply),
		UpdateSchedule: input.UpdateSchedule != nil && *input.UpdateSchedule,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
	})
}

// PauseDrop is the resolver for the pauseDrop field.
func (r *mutationResolver) PauseDrop(ctx context.Context, id uuid.UUID) (*schema.Drop, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.PauseDrop(ctx, ident, id)
}

// ResumeDrop is the resolver for the resumeDrop field.
func (r *mutationResolver) ResumeDrop(ctx context.Context, id uuid.UUID) (*schema.Drop, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.ResumeDrop(ctx, ident, id)
}

// ShutdownDrop is the resolver for the shutdownDrop field.
func (r *mutationResolver) ShutdownDrop(ctx context.Context, id uuid.UUID) (*schema.Drop, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.ShutdownDrop(ctx, ident, id)
}

// MintEdition is the resolver for the mintEdition field.
func (r *mutationResolver) MintEdition(ctx context.Context, input MintEditionInput) (*schema.CollectionMint, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.MintDrop(ctx, ident, mutations.MintDropInput{
		DropID:    input.DropID,
		Recipient: input.Recipient,
	})
}

// MintQueued is the resolver for the mintQueued field.
func (r *mutationResolver) MintQueued(ctx context.Context, input MintQueuedInput) (*schema.CollectionMint, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.MintDrop(ctx, ident, mutations.MintDropInput{
		DropID:    input.DropID,
		Recipient: input.Recipient,
		Metadata:  toDocumentPtr(input.MetadataJson),
	})
}

// MintToCollection is the resolver for the mintToCollection field.
func (r *mutationResolver) MintToCollection(ctx context.Context, input MintToCollectionInput) (*schema.CollectionMint, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.MintToCollection(ctx, ident, mutations.MintToCollectionInput{
		CollectionID: input.CollectionID,
		Recipient:    input.Recipient,
		Compressed:   input.Compressed != nil && *input.Compressed,
		Creators:     toCreators(input.Creators),
		Metadata:     toDocument(input.MetadataJson),
	})
}

// RetryMintEdition is the resolver for the retryMintEdition field.
func (r *mutationResolver) RetryMintEdition(ctx context.Context, id uuid.UUID) (*schema.CollectionMint, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.RetryMint(ctx, ident, id)
}

// RetryMintToCollection is the resolver for the retryMintToCollection field.
func (r *mutationResolver) RetryMintToCollection(ctx context.Context, id uuid.UUID) (*schema.CollectionMint, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.RetryMint(ctx, ident, id)
}

// ProcessDropQueue is the resolver for the processDropQueue field.
func (r *mutationResolver) ProcessDropQueue(ctx context.Context, dropID uuid.UUID) (*schema.CollectionMint, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.ProcessDropQueue(ctx, ident, dropID)
}

// UpdateMint is the resolver for the updateMint field.
func (r *mutationResolver) UpdateMint(ctx context.Context, input UpdateMintInput) (*schema.CollectionMint, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.UpdateMint(ctx, ident, mutations.UpdateMintInput{
		MintID:   input.MintID,
		Metadata: toDocumentPtr(input.MetadataJson),
		Creators: toCreators(input.Creators),
	})
}

// RetryUpdateMint is the resolver for the retryUpdateMint field.
func (r *mutationResolver) RetryUpdateMint(ctx context.Context, id uuid.UUID) (*schema.CollectionMint, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.RetryUpdateMint(ctx, ident, id)
}

// TransferAsset is the resolver for the transferAsset field.
func (r *mutationResolver) TransferAsset(ctx context.Context, input TransferAssetInput) (*schema.NftTransfer, error) {
	ident, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.mutations.TransferAsset(ctx, ident, mutations.TransferAssetInput{
		MintID:    input.MintID,
		Recipient: input.Recipient,
	})
}

// Collections is the resolver for the collections field.
func (r *projectResolver) Collections(ctx context.Context, obj *Project, first *int, after *string) (*CollectionConnection, error) {
	limit, offset, err := pageBounds(first, after)
	if err != nil {
		return nil, err
	}
	key := dataloaders.PageKey{ID: obj.ID, Limit: limit + 1, Offset: offset}
	collections, err := dataloaders.For(ctx).CollectionsByProjectID.Load(ctx, key)()
	if err != nil {
		return nil, err
	}
	return collectionConnection(collections, limit, offset), nil
}

// Drops is the resolver for the drops field.
func (r *projectResolver) Drops(ctx context.Context, obj *Project, first *int, after *string) (*DropConnection, error) {
	limit, offset, err := pageBounds(first, after)
	if err != nil {
		return nil, err
	}
	key := dataloaders.PageKey{ID: obj.ID, Limit: limit + 1, Offset: offset}
	drops, err := dataloaders.For(ctx).DropsByProjectID.Load(ctx, key)()
	if err != nil {
		return nil, err
	}
	return dropConnection(drops, limit, offset), nil
}

// Wallets is the resolver for the wallets field.
func (r *projectResolver) Wallets(ctx context.Context, obj *Project) ([]*schema.ProjectWallet, error) {
	wallets, err := dataloaders.For(ctx).ProjectWalletsByProjectID.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}
	return ptrSlice(wallets), nil
}

// Collection is the resolver for the collection field.
func (r *queryResolver) Collection(ctx context.Context, id uuid.UUID) (*schema.Collection, error) {
	return dataloaders.For(ctx).CollectionByID.Load(ctx, id)()
}

// Drop is the resolver for the drop field.
func (r *queryResolver) Drop(ctx context.Context, id uuid.UUID) (*schema.Drop, error) {
	return dataloaders.For(ctx).DropByID.Load(ctx, id)()
}

// Mint is the resolver for the mint field.
func (r *queryResolver) Mint(ctx context.Context, id uuid.UUID) (*schema.CollectionMint, error) {
	return dataloaders.For(ctx).MintByID.Load(ctx, id)()
}

// Collections is the resolver for the collections field.
func (r *queryResolver) Collections(ctx context.Context, projectID uuid.UUID, first *int, after *string) (*CollectionConnection, error) {
	limit, offset, err := pageBounds(first, after)
	if err != nil {
		return nil, err
	}
	key := dataloaders.PageKey{ID: projectID, Limit: limit + 1, Offset: offset}
	collections, err := dataloaders.For(ctx).CollectionsByProjectID.Load(ctx, key)()
	if err != nil {
		return nil, err
	}
	return collectionConnection(collections, limit, offset), nil
}

// Drops is the resolver for the drops field.
func (r *queryResolver) Drops(ctx context.Context, projectID uuid.UUID, first *int, after *string) (*DropConnection, error) {
	limit, offset, err := pageBounds(first, after)
	if err != nil {
		return nil, err
	}
	key := dataloaders.PageKey{ID: projectID, Limit: limit + 1, Offset: offset}
	drops, err := dataloaders.For(ctx).DropsByProjectID.Load(ctx, key)()
	if err != nil {
		return nil, err
	}
	return dropConnection(drops, limit, offset), nil
}

// Mints is the resolver for the mints field.
func (r *queryResolver) Mints(ctx context.Context, collectionID uuid.UUID, first *int, after *string) (*MintConnection, error) {
	limit, offset, err := pageBounds(first, after)
	if err != nil {
		return nil, err
	}
	key := dataloaders.PageKey{ID: collectionID, Limit: limit + 1, Offset: offset}
	mints, err := dataloaders.For(ctx).MintsByCollectionID.Load(ctx, key)()
	if err != nil {
		return nil, err
	}
	return mintConnection(mints, limit, offset), nil
}

// MintsByOwner is the resolver for the mintsByOwner field.
func (r *queryResolver) MintsByOwner(ctx context.Context, owner string, first *int, after *string) (*MintConnection, error) {
	limit, offset, err := pageBounds(first, after)
	if err != nil {
		return nil, err
	}
	key := dataloaders.NewOwnerKey(owner, limit+1, offset)
	mints, err := dataloaders.For(ctx).MintsByOwner.Load(ctx, key)()
	if err != nil {
		return nil, err
	}
	return mintConnection(mints, limit, offset), nil
}

// Collection returns CollectionResolver implementation.
func (r *Resolver) Collection() CollectionResolver { return &collectionResolver{r} }

// CollectionMint returns CollectionMintResolver implementation.
func (r *Resolver) CollectionMint() CollectionMintResolver { return &collectionMintResolver{r} }

// Creator returns CreatorResolver implementation.
func (r *Resolver) Creator() CreatorResolver { return &creatorResolver{r} }

// Customer returns CustomerResolver implementation.
func (r *Resolver) Customer() CustomerResolver { return &customerResolver{r} }

// Drop returns DropResolver implementation.
func (r *Resolver) Drop() DropResolver { return &dropResolver{r} }

// MetadataJson returns MetadataJsonResolver implementation.
func (r *Resolver) MetadataJson() MetadataJsonResolver { return &metadataJsonResolver{r} }

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Project returns ProjectResolver implementation.
func (r *Resolver) Project() ProjectResolver { return &projectResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

type collectionResolver struct{ *Resolver }
type collectionMintResolver struct{ *Resolver }
type creatorResolver struct{ *Resolver }
type customerResolver struct{ *Resolver }
type dropResolver struct{ *Resolver }
type metadataJsonResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type projectResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
