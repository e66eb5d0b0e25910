package mutations

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dropforge/nft-hub/internal/blockchains"
	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/metadatajson"
	"github.com/dropforge/nft-hub/internal/store"
	"github.com/dropforge/nft-hub/internal/store/schema"
)

// CreateDropInput is the payload of the createDrop mutation.
type CreateDropInput struct {
	ProjectID            uuid.UUID
	Blockchain           domain.Blockchain
	DropType             domain.DropType
	Price                int64
	StartTime            *time.Time
	EndTime              *time.Time
	Supply               *int64
	SellerFeeBasisPoints uint16
	Creators             []domain.Creator
	Metadata             metadatajson.Document
}

func (in CreateDropInput) validate() error {
	if !in.Blockchain.Valid() {
		return domain.ErrBlockchainNotSupported
	}
	switch in.DropType {
	case domain.DropTypeEdition:
		if in.Supply == nil {
			return fmt.Errorf("edition drops require a supply")
		}
	case domain.DropTypeOpen:
	default:
		return fmt.Errorf("unknown drop type %q", in.DropType)
	}
	if in.StartTime != nil && in.EndTime != nil && in.EndTime.Before(*in.StartTime) {
		return fmt.Errorf("drop ends before it starts")
	}
	if in.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	return nil
}

// CreateDrop persists the backing collection and the pending drop in one
// transaction, then hands the upload/credits/event tail to the job pipeline.
func (s *Service) CreateDrop(ctx context.Context, ident Identity, in CreateDropInput) (*schema.Drop, error) {
	if err := ident.validate(); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
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
	drop := &schema.Drop{
		ID:             uuid.New(),
		ProjectID:      in.ProjectID,
		CollectionID:   collection.ID,
		DropType:       in.DropType,
		CreationStatus: domain.CreationStatusPending,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		Price:          in.Price,
		CreatedBy:      ident.UserID,
	}
	json := metadatajson.Rows(collection.ID, in.Metadata)
	if err := s.store.CreateDrop(ctx, collection, drop, creatorRows(collection.ID, in.Creators), json); err != nil {
		return nil, err
	}
	drop.Collection = collection

	if err := s.jobs.EnqueueUpload(ctx, json, metadatajson.Continuation{
		Caller:         metadatajson.CallerCreateDrop,
		EntityID:       drop.ID,
		OrganizationID: ident.OrganizationID,
		UserID:         ident.UserID,
		Balance:        ident.Balance,
	}); err != nil {
		return nil, err
	}
	return drop, nil
}

// RetryDrop moves a stuck drop back to pending and re-runs the tail.
func (s *Service) RetryDrop(ctx context.Context, ident Identity, dropID uuid.UUID) (*schema.Drop, error) {
	if err := ident.validate(); err != nil {
		return nil, err
	}
	drop, err := s.loadDrop(ctx, dropID)
	if err != nil {
		return nil, err
	}
	if err := s.store.TransitionDrop(ctx, store.FinalizeInput{
		ID:     drop.ID,
		Status: domain.CreationStatusPending,
	}); err != nil {
		return nil, err
	}
	drop.CreationStatus = domain.CreationStatusPending

	json, err := s.store.GetMetadataJsonByID(ctx, drop.CollectionID)
	if err != nil {
		return nil, err
	}
	if json == nil {
		return nil, domain.ErrMetadataURIMissing
	}
	if json.URI == nil {
		if err := s.jobs.EnqueueUpload(ctx, json, metadatajson.Continuation{
			Caller:         metadatajson.CallerCreateDrop,
			EntityID:       drop.ID,
			OrganizationID: ident.OrganizationID,
			UserID:         ident.UserID,
			Balance:        ident.Balance,
			Retry:          true,
		}); err != nil {
			return nil, err
		}
		return drop, nil
	}

	if err := s.finishDrop(ctx, ident, drop, blockchains.OpRetryDrop, domain.ActionRetryDrop); err != nil {
		return nil, err
	}
	return drop, nil
}

// PatchDropInput carries the optional pieces of a drop update. A nil field
// leaves the corresponding state untouched; UpdateSchedule rewrites both
// bounds together.
type PatchDropInput struct {
	ID             uuid.UUID
	Metadata       *metadatajson.Document
	Creators       []domain.Creator
	Supply         *int64
	UpdateSchedule bool
	StartTime      *time.Time
	EndTime        *time.Time
}

// PatchDrop applies the requested changes and publishes an update event.
// Metadata rewrites go through the upload pipeline first.
func (s *Service) PatchDrop(ctx context.Context, ident Identity, in PatchDropInput) (*schema.Drop, error) {
	if err := ident.validate(); err != nil {
		return nil, err
	}
	drop, err := s.loadDrop(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Creators != nil {
		if err := domain.ValidateCreators(drop.Collection.Blockchain, in.Creators); err != nil {
			return nil, err
		}
		if drop.Collection.Blockchain == domain.BlockchainSolana {
			wallet, err := s.projectWallet(ctx, drop.ProjectID, drop.Collection.Blockchain)
			if err != nil {
				return nil, err
			}
			if err := domain.ValidateSolanaCreatorVerification(wallet.WalletAddress, in.Creators); err != nil {
				return nil, err
			}
		}
		rows := creatorRows(drop.CollectionID, in.Creators)
		if err := s.store.ReplaceCollectionCreators(ctx, drop.CollectionID, rows); err != nil {
			return nil, err
		}
		drop.Collection.Creators = rows
	}

	if in.Supply != nil {
		if err := s.store.UpdateCollectionSupply(ctx, drop.CollectionID, in.Supply); err != nil {
			return nil, err
		}
		drop.Collection.Supply = in.Supply
	}

	if in.UpdateSchedule {
		if in.StartTime != nil && in.EndTime != nil && in.EndTime.Before(*in.StartTime) {
			return nil, fmt.Errorf("drop ends before it starts")
		}
		if err := s.store.UpdateDropSchedule(ctx, drop.ID, in.StartTime, in.EndTime); err != nil {
			return nil, err
		}
		drop.StartTime = in.StartTime
		drop.EndTime = in.EndTime
	}

	if in.Metadata != nil {
		if err := metadatajson.Validate(drop.Collection.Blockchain, *in.Metadata); err != nil {
			return nil, err
		}
		json := metadatajson.Rows(drop.CollectionID, *in.Metadata)
		if err := s.store.ReplaceMetadataJson(ctx, json); err != nil {
			return nil, err
		}
		if err := s.jobs.EnqueueUpload(ctx, json, metadatajson.Continuation{
			Caller:         metadatajson.CallerPatchDrop,
			EntityID:       drop.ID,
			OrganizationID: ident.OrganizationID,
			UserID:         ident.UserID,
			Balance:        ident.Balance,
		}); err != nil {
			return nil, err
		}
		return drop, nil
	}

	if err := s.finishDrop(ctx, ident, drop, blockchains.OpUpdateDrop, ""); err != nil {
		return nil, err
	}
	return drop, nil
}

// PauseDrop sets paused_at; the derived status flips to paused immediately.
func (s *Service) PauseDrop(ctx context.Context, ident Identity, dropID uuid.UUID) (*schema.Drop, error) {
	if err := ident.validate(); err != nil {
		return nil, err
	}
	drop, err := s.loadDrop(ctx, dropID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if err := s.store.SetDropPause(ctx, drop.ID, &now); err != nil {
		return nil, err
	}
	drop.PausedAt = &now
	return drop, nil
}

// ResumeDrop clears paused_at.
func (s *Service) ResumeDrop(ctx context.Context, ident Identity, dropID uuid.UUID) (*schema.Drop, error) {
	if err := ident.validate(); err != nil {
		return nil, err
	}
	drop, err := s.loadDrop(ctx, dropID)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetDropPause(ctx, drop.ID, nil); err != nil {
		return nil, err
	}
	drop.PausedAt = nil
	return drop, nil
}

// ShutdownDrop permanently closes the drop to minting.
func (s *Service) ShutdownDrop(ctx context.Context, ident Identity, dropID uuid.UUID) (*schema.Drop, error) {
	if err := ident.validate(); err != nil {
		return nil, err
	}
	drop, err := s.loadDrop(ctx, dropID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if err := s.store.SetDropShutdown(ctx, drop.ID, now); err != nil {
		return nil, err
	}
	drop.ShutdownAt = &now
	return drop, nil
}

func (s *Service) loadDrop(ctx context.Context, dropID uuid.UUID) (*schema.Drop, error) {
	drop, err := s.store.GetDropByID(ctx, dropID)
	if err != nil {
		return nil, err
	}
	if drop == nil || drop.Collection == nil {
		return nil, domain.ErrEntityNotFound
	}
	return drop, nil
}

// finishDrop runs the post-upload tail for a drop: build the master edition
// payload, reserve the deduction when chargeable, publish the event.
func (s *Service) finishDrop(ctx context.Context, ident Identity, drop *schema.Drop, op blockchains.Operation, action domain.Action) error {
	collection := drop.Collection
	json, err := s.store.GetMetadataJsonByID(ctx, collection.ID)
	if err != nil {
		return err
	}
	uri, err := metadataURI(json)
	if err != nil {
		return err
	}
	wallet, err := s.projectWallet(ctx, collection.ProjectID, collection.Blockchain)
	if err != nil {
		return err
	}

	if action != "" {
		if err := s.reserveCollectionDeduction(ctx, ident, collection, action); err != nil {
			return err
		}
	}

	payload := domain.CreateDropTransaction{
		MasterEdition: domain.MasterEdition{
			Name:                 json.Name,
			Symbol:               json.Symbol,
			MetadataURI:          uri,
			SellerFeeBasisPoints: collection.SellerFeeBasisPoints,
			Supply:               collection.Supply,
			OwnerAddress:         wallet.WalletAddress,
			Creators:             domainCreators(collection.Creators),
		},
		CollectionID: collection.ID.String(),
		StartTime:    drop.StartTime,
		EndTime:      drop.EndTime,
		Price:        drop.Price,
	}
	return s.events.Emit(ctx, collection.Blockchain, op, drop.DropType,
		eventKey(drop.ID, drop.ProjectID, ident.UserID), payload)
}
