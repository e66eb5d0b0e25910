package mutations

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dropforge/nft-hub/internal/blockchains"
	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/store/schema"
)

// TransferAssetInput is the payload of the transferAsset mutation.
type TransferAssetInput struct {
	MintID    uuid.UUID
	Recipient string
}

// TransferAsset records a pending transfer of a created mint and asks the
// chain worker to move it. The sender must be a hub-managed customer wallet.
func (s *Service) TransferAsset(ctx context.Context, ident Identity, in TransferAssetInput) (*schema.NftTransfer, error) {
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
	if mint.CreationStatus != domain.CreationStatusCreated || mint.Owner == nil {
		return nil, fmt.Errorf("mint is %s: %w", mint.CreationStatus, domain.ErrInvalidTransition)
	}
	collection, err := s.store.GetCollectionByID(ctx, mint.CollectionID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, domain.ErrEntityNotFound
	}
	if err := domain.ValidateAddress(collection.Blockchain, in.Recipient); err != nil {
		return nil, err
	}

	sender := *mint.Owner
	wallet, err := s.store.GetCustomerWalletByAddress(ctx, sender)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, domain.ErrCustomerWalletNotFound
	}

	transfer := &schema.NftTransfer{
		ID:               uuid.New(),
		CollectionMintID: mint.ID,
		Sender:           sender,
		Recipient:        domain.NormalizeAddress(in.Recipient),
	}
	if err := s.store.CreateTransfer(ctx, transfer); err != nil {
		return nil, err
	}

	if err := s.reserveTransferDeduction(ctx, ident, transfer, collection.Blockchain); err != nil {
		return nil, err
	}

	err = s.events.Emit(ctx, collection.Blockchain, blockchains.OpTransfer, "",
		eventKey(transfer.ID, collection.ProjectID, ident.UserID),
		domain.TransferAssetTransaction{
			OwnerAddress:     sender,
			RecipientAddress: transfer.Recipient,
			CollectionMintID: mint.ID.String(),
		})
	if err != nil {
		return nil, err
	}
	return transfer, nil
}
