package mutations

import (
	"context"

	"github.com/google/uuid"

	"github.com/dropforge/nft-hub/internal/blockchains"
	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/metadatajson"
	"github.com/dropforge/nft-hub/internal/store"
	"github.com/dropforge/nft-hub/internal/store/schema"
)

// CreateCollectionInput is the payload of the createCollection mutation.
type CreateCollectionInput struct {
	ProjectID            uuid.UUID
	Blockchain           domain.Blockchain
	Supply               *int64
	SellerFeeBasisPoints uint16
	Creators             []domain.Creator
	Metadata             metadatajson.Document
}

// CreateCollection persists a pending collection with its creators and
// metadata document, then hands the upload/credits/event tail to the job
// pipeline.
func (s *Service) CreateCollection(ctx context.Context, ident Identity, in CreateCollectionInput) (*schema.Collection, error) {
	if err := ident.validate(); err != nil {
		return nil, err
	}
	if !in.Blockchain.Valid() {
		return nil, domain.ErrBlockchainNotSupported
	}
	if err := domain.ValidateCreators(in.Blockchain, in.Creators); err != nil {
		return nil, err
	}
	if err := metadatajson.Validate(in.Blockchain, in.Metadata); err != nil {
		return nil, err
	}
	wallet, err := s.projectWallet(ctx, in.ProjectID, in.Blockchain)
	if err != nil {
		return nil, err
	}
	if in.Blockchain == domain.BlockchainSolana {
		if err := domain.ValidateSolanaCreatorVerification(wallet.WalletAddress, in.Creators); err != nil {
			return nil, err
		}
	}

	collection := &schema.Collection{
		ID:                   uuid.New(),
		Blockchain:           in.Blockchain,
		Supply:               in.Supply,
		ProjectID:            in.ProjectID,
		CreationStatus:       domain.CreationStatusPending,
		SellerFeeBasisPoints: in.SellerFeeBasisPoints,
		CreatedBy:            ident.UserID,
	}
	json := metadatajson.Rows(collection.ID, in.Metadata)
	if err := s.store.CreateCollection(ctx, collection, creatorRows(collection.ID, in.Creators), json); err != nil {
		return nil, err
	}

	if err := s.jobs.EnqueueUpload(ctx, json, metadatajson.Continuation{
		Caller:         metadatajson.CallerCreateCollection,
		EntityID:       collection.ID,
		OrganizationID: ident.OrganizationID,
		UserID:         ident.UserID,
		Balance:        ident.Balance,
	}); err != nil {
		return nil, err
	}
	return collection, nil
}

// RetryCollection moves a stuck collection back to pending and re-runs the
// tail of the pipeline. A retry never duplicates rows and never re-charges a
// collection that already carries a deduction.
func (s *Service) RetryCollection(ctx context.Context, ident Identity, collectionID uuid.UUID) (*schema.Collection, error) {
	if err := ident.validate(); err != nil {
		return nil, err
	}
	collection, err := s.store.GetCollectionByID(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, domain.ErrEntityNotFound
	}
	if err := s.store.TransitionCollection(ctx, store.FinalizeInput{
		ID:     collection.ID,
		Status: domain.CreationStatusPending,
	}); err != nil {
		return nil, err
	}
	collection.CreationStatus = domain.CreationStatusPending

	json, err := s.store.GetMetadataJsonByID(ctx, collection.ID)
	if err != nil {
		return nil, err
	}
	if json == nil {
		return nil, domain.ErrMetadataURIMissing
	}
	if json.URI == nil {
		// the document never landed, rerun the whole upload tail
		if err := s.jobs.EnqueueUpload(ctx, json, metadatajson.Continuation{
			Caller:         metadatajson.CallerCreateCollection,
			EntityID:       collection.ID,
			OrganizationID: ident.OrganizationID,
			UserID:         ident.UserID,
			Balance:        ident.Balance,
			Retry:          true,
		}); err != nil {
			return nil, err
		}
		return collection, nil
	}

	if err := s.finishCollection(ctx, ident, collection, blockchains.OpRetryCollection, domain.ActionRetryCollection); err != nil {
		return nil, err
	}
	return collection, nil
}

// PatchCollectionInput carries the optional pieces of a collection update.
type PatchCollectionInput struct {
	ID       uuid.UUID
	Metadata *metadatajson.Document
	Creators []domain.Creator
}

// PatchCollection rewrites the collection's creators and/or metadata and
// publishes an update event. Metadata rewrites go through the upload
// pipeline; creator-only patches publish immediately.
func (s *Service) PatchCollection(ctx context.Context, ident Identity, in PatchCollectionInput) (*schema.Collection, error) {
	if err := ident.validate(); err != nil {
		return nil, err
	}
	collection, err := s.store.GetCollectionByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, domain.ErrEntityNotFound
	}

	if in.Creators != nil {
		if err := domain.ValidateCreators(collection.Blockchain, in.Creators); err != nil {
			return nil, err
		}
		if collection.Blockchain == domain.BlockchainSolana {
			wallet, err := s.projectWallet(ctx, collection.ProjectID, collection.Blockchain)
			if err != nil {
				return nil, err
			}
			if err := domain.ValidateSolanaCreatorVerification(wallet.WalletAddress, in.Creators); err != nil {
				return nil, err
			}
		}
		rows := creatorRows(collection.ID, in.Creators)
		if err := s.store.ReplaceCollectionCreators(ctx, collection.ID, rows); err != nil {
			return nil, err
		}
		collection.Creators = rows
	}

	if in.Metadata != nil {
		if err := metadatajson.Validate(collection.Blockchain, *in.Metadata); err != nil {
			return nil, err
		}
		json := metadatajson.Rows(collection.ID, *in.Metadata)
		if err := s.store.ReplaceMetadataJson(ctx, json); err != nil {
			return nil, err
		}
		if err := s.jobs.EnqueueUpload(ctx, json, metadatajson.Continuation{
			Caller:         metadatajson.CallerPatchCollection,
			EntityID:       collection.ID,
			OrganizationID: ident.OrganizationID,
			UserID:         ident.UserID,
			Balance:        ident.Balance,
		}); err != nil {
			return nil, err
		}
		return collection, nil
	}

	if err := s.finishCollection(ctx, ident, collection, blockchains.OpUpdateCollection, ""); err != nil {
		return nil, err
	}
	return collection, nil
}

// ImportCollectionInput identifies an existing on-chain collection to pull
// into the hub.
type ImportCollectionInput struct {
	ProjectID         uuid.UUID
	Blockchain        domain.Blockchain
	CollectionAddress string
}

// ImportCollection registers a pending collection for an address that already
// exists on chain and asks the downstream worker to import it. Solana only.
func (s *Service) ImportCollection(ctx context.Context, ident Identity, in ImportCollectionInput) (*schema.Collection, error) {
	if err := ident.validate(); err != nil {
		return nil, err
	}
	if in.Blockchain != domain.BlockchainSolana {
		return nil, domain.ErrBlockchainNotSupported
	}
	if err := domain.ValidateSolanaAddress(in.CollectionAddress); err != nil {
		return nil, err
	}
	if _, err := s.projectWallet(ctx, in.ProjectID, in.Blockchain); err != nil {
		return nil, err
	}

	address := domain.NormalizeAddress(in.CollectionAddress)
	collection := &schema.Collection{
		ID:             uuid.New(),
		Blockchain:     in.Blockchain,
		ProjectID:      in.ProjectID,
		CreationStatus: domain.CreationStatusPending,
		Address:        &address,
		CreatedBy:      ident.UserID,
	}
	if err := s.store.CreateCollection(ctx, collection, nil, nil); err != nil {
		return nil, err
	}

	err := s.events.Emit(ctx, collection.Blockchain, blockchains.OpImportCollection, "",
		eventKey(collection.ID, collection.ProjectID, ident.UserID),
		domain.ImportCollectionTransaction{CollectionAddress: address})
	if err != nil {
		return nil, err
	}
	return collection, nil
}

// SwitchMintCollection reparents a mint under another collection of the same
// chain, charging the switch and asking the chain worker to re-verify.
func (s *Service) SwitchMintCollection(ctx context.Context, ident Identity, mintID, newCollectionID uuid.UUID) (*schema.CollectionMint, error) {
	if err := ident.validate(); err != nil {
		return nil, err
	}
	mint, err := s.store.GetMintByID(ctx, mintID)
	if err != nil {
		return nil, err
	}
	if mint == nil {
		return nil, domain.ErrEntityNotFound
	}
	oldCollection, err := s.store.GetCollectionByID(ctx, mint.CollectionID)
	if err != nil {
		return nil, err
	}
	newCollection, err := s.store.GetCollectionByID(ctx, newCollectionID)
	if err != nil {
		return nil, err
	}
	if oldCollection == nil || newCollection == nil {
		return nil, domain.ErrEntityNotFound
	}
	if newCollection.Blockchain != domain.BlockchainSolana ||
		oldCollection.Blockchain != newCollection.Blockchain {
		return nil, domain.ErrBlockchainNotSupported
	}

	if err := s.store.SwitchMintCollection(ctx, mint.ID, newCollection.ID); err != nil {
		return nil, err
	}
	mint.CollectionID = newCollection.ID

	if err := s.reserveMintDeduction(ctx, ident, mint, newCollection.Blockchain, domain.ActionSwitchCollection); err != nil {
		return nil, err
	}

	err = s.events.Emit(ctx, newCollection.Blockchain, blockchains.OpSwitchCollection, "",
		eventKey(mint.ID, newCollection.ProjectID, ident.UserID),
		domain.SwitchCollectionTransaction{
			MintID:       mint.ID.String(),
			CollectionID: newCollection.ID.String(),
		})
	if err != nil {
		return nil, err
	}
	return mint, nil
}

// finishCollection runs the post-upload tail for a collection: reserve the
// deduction (when the operation is chargeable) and publish the event. The
// empty action skips charging.
func (s *Service) finishCollection(ctx context.Context, ident Identity, collection *schema.Collection, op blockchains.Operation, action domain.Action) error {
	metadata, err := s.collectionMetadata(ctx, collection)
	if err != nil {
		return err
	}
	if action != "" {
		if err := s.reserveCollectionDeduction(ctx, ident, collection, action); err != nil {
			return err
		}
	}
	return s.events.Emit(ctx, collection.Blockchain, op, "",
		eventKey(collection.ID, collection.ProjectID, ident.UserID),
		domain.CreateCollectionTransaction{Metadata: metadata})
}

// collectionMetadata assembles the chain-agnostic metadata block for
// collection events; the document must already be uploaded.
func (s *Service) collectionMetadata(ctx context.Context, collection *schema.Collection) (domain.MetaplexMetadata, error) {
	json, err := s.store.GetMetadataJsonByID(ctx, collection.ID)
	if err != nil {
		return domain.MetaplexMetadata{}, err
	}
	uri, err := metadataURI(json)
	if err != nil {
		return domain.MetaplexMetadata{}, err
	}
	wallet, err := s.projectWallet(ctx, collection.ProjectID, collection.Blockchain)
	if err != nil {
		return domain.MetaplexMetadata{}, err
	}
	return domain.MetaplexMetadata{
		Name:                 json.Name,
		Symbol:               json.Symbol,
		MetadataURI:          uri,
		SellerFeeBasisPoints: collection.SellerFeeBasisPoints,
		OwnerAddress:         wallet.WalletAddress,
		Creators:             domainCreators(collection.Creators),
	}, nil
}
