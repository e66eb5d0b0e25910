package mutations

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dropforge/nft-hub/internal/blockchains"
	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/metadatajson"
	"github.com/dropforge/nft-hub/internal/metrics"
	"github.com/dropforge/nft-hub/internal/store"
	"github.com/dropforge/nft-hub/internal/store/schema"
)

// MintDropInput is the payload of the mintEdition mutation. Metadata is
// required for open drops, whose items carry distinct documents; edition
// drops reuse the master edition metadata.
type MintDropInput struct {
	DropID    uuid.UUID
	Recipient string
	Metadata  *metadatajson.Document
}

// MintDrop mints one item out of a drop. Edition mints publish immediately;
// open-drop mints with their own document are parked as queued until the
// upload lands.
func (s *Service) MintDrop(ctx context.Context, ident Identity, in MintDropInput) (*schema.CollectionMint, error) {
	timer := prometheus.NewTimer(metrics.MintDuration)
	defer timer.ObserveDuration()

	if err := ident.validate(); err != nil {
		return nil, err
	}
	drop, err := s.loadDrop(ctx, in.DropID)
	if err != nil {
		return nil, err
	}
	collection := drop.Collection
	if err := domain.ValidateAddress(collection.Blockchain, in.Recipient); err != nil {
		return nil, err
	}
	status := domain.DeriveDropStatus(drop.State(), time.Now().UTC())
	if status != domain.DropStatusMinting {
		return nil, fmt.Errorf("drop is %s: %w", status, domain.ErrInvalidTransition)
	}
	recipient := domain.NormalizeAddress(in.Recipient)

	if drop.DropType == domain.DropTypeOpen && in.Metadata != nil {
		return s.queueOpenDropMint(ctx, ident, drop, recipient, *in.Metadata)
	}

	edition := int64(0) // assigned from the supply counter at insert
	if drop.DropType == domain.DropTypeOpen {
		edition = domain.OpenDropEdition
	}
	mint := &schema.CollectionMint{
		ID:                   uuid.New(),
		CollectionID:         collection.ID,
		Owner:                &recipient,
		CreationStatus:       domain.CreationStatusPending,
		Edition:              edition,
		SellerFeeBasisPoints: collection.SellerFeeBasisPoints,
		CreatedBy:            ident.UserID,
		RandomPick:           rand.Int63(),
	}
	history := &schema.MintHistory{
		ID:           uuid.New(),
		MintID:       mint.ID,
		CollectionID: collection.ID,
		DropID:       &drop.ID,
		Wallet:       recipient,
		Status:       domain.CreationStatusPending,
		CreatedBy:    ident.UserID,
	}
	if err := s.store.CreateMint(ctx, mint, nil, nil, history); err != nil {
		return nil, err
	}

	if err := s.reserveMintDeduction(ctx, ident, mint, collection.Blockchain, domain.ActionMint); err != nil {
		return nil, err
	}
	if err := s.emitDropMint(ctx, ident, drop, mint, recipient, blockchains.OpMintDrop); err != nil {
		return nil, err
	}
	return mint, nil
}

// queueOpenDropMint parks the mint as queued with its own document; the queue
// drains it into pending once the upload lands.
func (s *Service) queueOpenDropMint(ctx context.Context, ident Identity, drop *schema.Drop, recipient string, doc metadatajson.Document) (*schema.CollectionMint, error) {
	collection := drop.Collection
	if err := metadatajson.Validate(collection.Blockchain, doc); err != nil {
		return nil, err
	}
	mint := &schema.CollectionMint{
		ID:                   uuid.New(),
		CollectionID:         collection.ID,
		Owner:                &recipient,
		CreationStatus:       domain.CreationStatusQueued,
		Edition:              domain.OpenDropEdition,
		SellerFeeBasisPoints: collection.SellerFeeBasisPoints,
		CreatedBy:            ident.UserID,
		RandomPick:           rand.Int63(),
	}
	json := metadatajson.Rows(mint.ID, doc)
	history := &schema.MintHistory{
		ID:           uuid.New(),
		MintID:       mint.ID,
		CollectionID: collection.ID,
		DropID:       &drop.ID,
		Wallet:       recipient,
		Status:       domain.CreationStatusQueued,
		CreatedBy:    ident.UserID,
	}
	if err := s.store.CreateMint(ctx, mint, nil, json, history); err != nil {
		return nil, err
	}

	if err := s.jobs.EnqueueUpload(ctx, json, metadatajson.Continuation{
		Caller:         metadatajson.CallerQueueMintToDrop,
		EntityID:       mint.ID,
		OrganizationID: ident.OrganizationID,
		UserID:         ident.UserID,
		Balance:        ident.Balance,
		Recipient:      recipient,
		DropID:         drop.ID,
	}); err != nil {
		return nil, err
	}
	return mint, nil
}

// ProcessDropQueue drains one queued mint of the drop's collection, pushing
// it through the credits/event tail. Returns nil when the queue is empty.
// Useful to recover mints whose pipeline died between upload and publish.
func (s *Service) ProcessDropQueue(ctx context.Context, ident Identity, dropID uuid.UUID) (*schema.CollectionMint, error) {
	if err := ident.validate(); err != nil {
		return nil, err
	}
	drop, err := s.loadDrop(ctx, dropID)
	if err != nil {
		return nil, err
	}
	mint, err := s.store.PopQueuedMint(ctx, drop.CollectionID)
	if err != nil {
		return nil, err
	}
	if mint == nil {
		return nil, nil
	}

	recipient := ""
	if mint.Owner != nil {
		recipient = *mint.Owner
	}
	if err := s.reserveMintDeduction(ctx, ident, mint, drop.Collection.Blockchain, domain.ActionMint); err != nil {
		return nil, err
	}
	if err := s.store.UpdateMintHistoryStatus(ctx, mint.ID, domain.CreationStatusPending, nil); err != nil {
		return nil, err
	}
	if err := s.emitDropMint(ctx, ident, drop, mint, recipient, blockchains.OpMintDrop); err != nil {
		return nil, err
	}
	return mint, nil
}

// MintToCollectionInput is the payload of the mintToCollection mutation.
type MintToCollectionInput struct {
	CollectionID uuid.UUID
	Recipient    string
	Compressed   bool
	Creators     []domain.Creator
	Metadata     metadatajson.Document
}

// MintToCollection mints a standalone NFT with its own document into a
// collection; the upload/credits/event tail runs in the job pipeline.
func (s *Service) MintToCollection(ctx context.Context, ident Identity, in MintToCollectionInput) (*schema.CollectionMint, error) {
	timer := prometheus.NewTimer(metrics.MintDuration)
	defer timer.ObserveDuration()

	if err := ident.validate(); err != nil {
		return nil, err
	}
	collection, err := s.store.GetCollectionByID(ctx, in.CollectionID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, domain.ErrEntityNotFound
	}
	if err := domain.ValidateAddress(collection.Blockchain, in.Recipient); err != nil {
		return nil, err
	}
	if err := metadatajson.Validate(collection.Blockchain, in.Metadata); err != nil {
		return nil, err
	}
	if len(in.Creators) > 0 {
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
	}
	recipient := domain.NormalizeAddress(in.Recipient)

	mint := &schema.CollectionMint{
		ID:                   uuid.New(),
		CollectionID:         collection.ID,
		Owner:                &recipient,
		CreationStatus:       domain.CreationStatusPending,
		Edition:              domain.OpenDropEdition,
		SellerFeeBasisPoints: collection.SellerFeeBasisPoints,
		Compressed:           in.Compressed,
		CreatedBy:            ident.UserID,
		RandomPick:           rand.Int63(),
	}
	json := metadatajson.Rows(mint.ID, in.Metadata)
	history := &schema.MintHistory{
		ID:           uuid.New(),
		MintID:       mint.ID,
		CollectionID: collection.ID,
		Wallet:       recipient,
		Status:       domain.CreationStatusPending,
		CreatedBy:    ident.UserID,
	}
	if err := s.store.CreateMint(ctx, mint, mintCreatorRows(mint.ID, in.Creators), json, history); err != nil {
		return nil, err
	}

	if err := s.jobs.EnqueueUpload(ctx, json, metadatajson.Continuation{
		Caller:         metadatajson.CallerMintToCollection,
		EntityID:       mint.ID,
		OrganizationID: ident.OrganizationID,
		UserID:         ident.UserID,
		Balance:        ident.Balance,
		Recipient:      recipient,
	}); err != nil {
		return nil, err
	}
	return mint, nil
}

// RetryMint moves a stuck mint back to pending and re-runs its tail, picking
// the drop or collection path from the mint's history.
func (s *Service) RetryMint(ctx context.Context, ident Identity, mintID uuid.UUID) (*schema.CollectionMint, error) {
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
	collection, err := s.store.GetCollectionByID(ctx, mint.CollectionID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, domain.ErrEntityNotFound
	}
	if err := s.store.TransitionMint(ctx, store.FinalizeInput{
		ID:     mint.ID,
		Status: domain.CreationStatusPending,
	}); err != nil {
		return nil, err
	}
	mint.CreationStatus = domain.CreationStatusPending
	if err := s.store.UpdateMintHistoryStatus(ctx, mint.ID, domain.CreationStatusPending, nil); err != nil {
		return nil, err
	}

	recipient := ""
	if mint.Owner != nil {
		recipient = *mint.Owner
	}

	history, err := s.store.GetLatestMintHistory(ctx, mint.ID)
	if err != nil {
		return nil, err
	}
	if history != nil && history.DropID != nil {
		drop, err := s.loadDrop(ctx, *history.DropID)
		if err != nil {
			return nil, err
		}
		if err := s.reserveMintDeduction(ctx, ident, mint, collection.Blockchain, domain.ActionRetryMint); err != nil {
			return nil, err
		}
		if err := s.emitDropMint(ctx, ident, drop, mint, recipient, blockchains.OpRetryMintDrop); err != nil {
			return nil, err
		}
		return mint, nil
	}

	// collection mint; the tail depends on the uploaded document
	json, err := s.store.GetMetadataJsonByID(ctx, mint.ID)
	if err != nil {
		return nil, err
	}
	if json == nil {
		return nil, domain.ErrMetadataURIMissing
	}
	if json.URI == nil {
		if err := s.jobs.EnqueueUpload(ctx, json, metadatajson.Continuation{
			Caller:         metadatajson.CallerMintToCollection,
			EntityID:       mint.ID,
			OrganizationID: ident.OrganizationID,
			UserID:         ident.UserID,
			Balance:        ident.Balance,
			Recipient:      recipient,
			Retry:          true,
		}); err != nil {
			return nil, err
		}
		return mint, nil
	}

	if err := s.finishMintToCollection(ctx, ident, mint, collection, recipient, blockchains.OpRetryMintToCollection, domain.ActionRetryMint); err != nil {
		return nil, err
	}
	return mint, nil
}

// UpdateMintInput carries the optional pieces of a mint metadata update.
type UpdateMintInput struct {
	MintID   uuid.UUID
	Metadata *metadatajson.Document
	Creators []domain.Creator
}

// UpdateMint rewrites a mint's creators and/or document and asks the chain
// worker to update the on-chain metadata.
func (s *Service) UpdateMint(ctx context.Context, ident Identity, in UpdateMintInput) (*schema.CollectionMint, error) {
	if err := ident.validate(); err != nil {
		return nil, err
	}
	mint, err := s.store.GetMintByID(ctx, in.MintID)
	if err != nil {
		return nil, err
	}
	if mint == nil {
		return nil, domain.ErrEntityNotFound
	}
	collection, err := s.store.GetCollectionByID(ctx, mint.CollectionID)
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
		rows := mintCreatorRows(mint.ID, in.Creators)
		if err := s.store.ReplaceMintCreators(ctx, mint.ID, rows); err != nil {
			return nil, err
		}
		mint.Creators = rows
	}

	if in.Metadata != nil {
		if err := metadatajson.Validate(collection.Blockchain, *in.Metadata); err != nil {
			return nil, err
		}
		json := metadatajson.Rows(mint.ID, *in.Metadata)
		if err := s.store.ReplaceMetadataJson(ctx, json); err != nil {
			return nil, err
		}
		if err := s.jobs.EnqueueUpload(ctx, json, metadatajson.Continuation{
			Caller:         metadatajson.CallerUpdateMint,
			EntityID:       mint.ID,
			OrganizationID: ident.OrganizationID,
			UserID:         ident.UserID,
			Balance:        ident.Balance,
		}); err != nil {
			return nil, err
		}
		return mint, nil
	}

	if err := s.finishUpdateMint(ctx, ident, mint, collection, blockchains.OpUpdateMint); err != nil {
		return nil, err
	}
	return mint, nil
}

// RetryUpdateMint republishes a mint metadata update that failed downstream.
func (s *Service) RetryUpdateMint(ctx context.Context, ident Identity, mintID uuid.UUID) (*schema.CollectionMint, error) {
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
	collection, err := s.store.GetCollectionByID(ctx, mint.CollectionID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, domain.ErrEntityNotFound
	}

	json, err := s.store.GetMetadataJsonByID(ctx, mint.ID)
	if err != nil {
		return nil, err
	}
	if json == nil {
		return nil, domain.ErrMetadataURIMissing
	}
	if json.URI == nil {
		if err := s.jobs.EnqueueUpload(ctx, json, metadatajson.Continuation{
			Caller:         metadatajson.CallerUpdateMint,
			EntityID:       mint.ID,
			OrganizationID: ident.OrganizationID,
			UserID:         ident.UserID,
			Balance:        ident.Balance,
			Retry:          true,
		}); err != nil {
			return nil, err
		}
		return mint, nil
	}

	if err := s.finishUpdateMint(ctx, ident, mint, collection, blockchains.OpRetryUpdateMint); err != nil {
		return nil, err
	}
	return mint, nil
}

// emitDropMint publishes the mint event for a drop mint.
func (s *Service) emitDropMint(ctx context.Context, ident Identity, drop *schema.Drop, mint *schema.CollectionMint, recipient string, op blockchains.Operation) error {
	wallet, err := s.projectWallet(ctx, drop.ProjectID, drop.Collection.Blockchain)
	if err != nil {
		return err
	}
	payload := domain.MintEditionTransaction{
		RecipientAddress: recipient,
		OwnerAddress:     wallet.WalletAddress,
		DropID:           drop.ID.String(),
		CollectionID:     drop.CollectionID.String(),
		Edition:          mint.Edition,
	}
	return s.events.Emit(ctx, drop.Collection.Blockchain, op, drop.DropType,
		eventKey(mint.ID, drop.ProjectID, ident.UserID), payload)
}

// finishMintToCollection runs the post-upload tail for a collection mint.
func (s *Service) finishMintToCollection(ctx context.Context, ident Identity, mint *schema.CollectionMint, collection *schema.Collection, recipient string, op blockchains.Operation, action domain.Action) error {
	metadata, err := s.mintMetadata(ctx, mint, collection)
	if err != nil {
		return err
	}
	if err := s.reserveMintDeduction(ctx, ident, mint, collection.Blockchain, action); err != nil {
		return err
	}
	payload := domain.MintToCollectionTransaction{
		Metadata:         metadata,
		RecipientAddress: recipient,
		CollectionID:     collection.ID.String(),
		Compressed:       mint.Compressed,
	}
	return s.events.Emit(ctx, collection.Blockchain, op, "",
		eventKey(mint.ID, collection.ProjectID, ident.UserID), payload)
}

// finishUpdateMint runs the post-upload tail for a mint metadata update.
func (s *Service) finishUpdateMint(ctx context.Context, ident Identity, mint *schema.CollectionMint, collection *schema.Collection, op blockchains.Operation) error {
	metadata, err := s.mintMetadata(ctx, mint, collection)
	if err != nil {
		return err
	}
	if err := s.store.CreateUpdateHistory(ctx, &schema.UpdateHistory{
		ID:        uuid.New(),
		MintID:    mint.ID,
		Status:    domain.CreationStatusPending,
		CreatedBy: ident.UserID,
	}); err != nil {
		return err
	}
	if err := s.reserveMintDeduction(ctx, ident, mint, collection.Blockchain, domain.ActionUpdateMint); err != nil {
		return err
	}
	payload := domain.UpdateMintTransaction{
		Metadata:     metadata,
		MintID:       mint.ID.String(),
		CollectionID: collection.ID.String(),
	}
	return s.events.Emit(ctx, collection.Blockchain, op, "",
		eventKey(mint.ID, collection.ProjectID, ident.UserID), payload)
}

// mintMetadata assembles the metadata block for mint events from the mint's
// own uploaded document.
func (s *Service) mintMetadata(ctx context.Context, mint *schema.CollectionMint, collection *schema.Collection) (domain.MetaplexMetadata, error) {
	json, err := s.store.GetMetadataJsonByID(ctx, mint.ID)
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
		SellerFeeBasisPoints: mint.SellerFeeBasisPoints,
		OwnerAddress:         wallet.WalletAddress,
		Creators:             domainMintCreators(mint.Creators),
		CollectionID:         collection.ID.String(),
	}, nil
}
