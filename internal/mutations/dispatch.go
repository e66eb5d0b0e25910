package mutations

import (
	"context"
	"errors"
	"fmt"

	"github.com/dropforge/nft-hub/internal/blockchains"
	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/metadatajson"
	"github.com/dropforge/nft-hub/internal/store"
	"github.com/dropforge/nft-hub/internal/store/schema"
	"github.com/dropforge/nft-hub/internal/uploads"
)

// Dispatch resumes the credits/event tail of the mutation that enqueued an
// upload job. It implements metadatajson.Dispatcher; the runner calls it
// after the document's uri and identifier are persisted.
func (s *Service) Dispatch(ctx context.Context, cont *metadatajson.Continuation, _ *uploads.Result) error {
	ident := Identity{
		UserID:         cont.UserID,
		OrganizationID: cont.OrganizationID,
		Balance:        cont.Balance,
	}

	switch cont.Caller {
	case metadatajson.CallerCreateCollection:
		collection, err := s.loadCollection(ctx, cont)
		if err != nil {
			return err
		}
		op, action := blockchains.OpCreateCollection, domain.ActionCreateCollection
		if cont.Retry {
			op, action = blockchains.OpRetryCollection, domain.ActionRetryCollection
		}
		return s.finishCollection(ctx, ident, collection, op, action)

	case metadatajson.CallerPatchCollection:
		collection, err := s.loadCollection(ctx, cont)
		if err != nil {
			return err
		}
		return s.finishCollection(ctx, ident, collection, blockchains.OpUpdateCollection, "")

	case metadatajson.CallerCreateDrop:
		drop, err := s.loadDrop(ctx, cont.EntityID)
		if err != nil {
			return err
		}
		op, action := blockchains.OpCreateDrop, domain.ActionCreateDrop
		if cont.Retry {
			op, action = blockchains.OpRetryDrop, domain.ActionRetryDrop
		}
		return s.finishDrop(ctx, ident, drop, op, action)

	case metadatajson.CallerPatchDrop:
		drop, err := s.loadDrop(ctx, cont.EntityID)
		if err != nil {
			return err
		}
		return s.finishDrop(ctx, ident, drop, blockchains.OpUpdateDrop, "")

	case metadatajson.CallerMintToCollection:
		mint, collection, err := s.loadMint(ctx, cont)
		if err != nil {
			return err
		}
		op, action := blockchains.OpMintToCollection, domain.ActionMint
		if cont.Retry {
			op, action = blockchains.OpRetryMintToCollection, domain.ActionRetryMint
		}
		return s.finishMintToCollection(ctx, ident, mint, collection, dispatchRecipient(cont, mint), op, action)

	case metadatajson.CallerQueueMintToDrop:
		return s.dispatchQueuedMint(ctx, ident, cont)

	case metadatajson.CallerUpdateMint:
		mint, collection, err := s.loadMint(ctx, cont)
		if err != nil {
			return err
		}
		op := blockchains.OpUpdateMint
		if cont.Retry {
			op = blockchains.OpRetryUpdateMint
		}
		return s.finishUpdateMint(ctx, ident, mint, collection, op)
	}
	return fmt.Errorf("unknown continuation caller %q", cont.Caller)
}

// dispatchQueuedMint drains a queued open-drop mint once its document landed:
// queued moves to pending, the mint is charged and the event goes out.
func (s *Service) dispatchQueuedMint(ctx context.Context, ident Identity, cont *metadatajson.Continuation) error {
	mint, collection, err := s.loadMint(ctx, cont)
	if err != nil {
		return err
	}
	drop, err := s.loadDrop(ctx, cont.DropID)
	if err != nil {
		return err
	}

	// ErrInvalidTransition means a queue drain moved the mint to pending first
	err = s.store.TransitionMint(ctx, store.FinalizeInput{
		ID:     mint.ID,
		Status: domain.CreationStatusPending,
	})
	if err != nil && !errors.Is(err, domain.ErrInvalidTransition) {
		return err
	}
	mint.CreationStatus = domain.CreationStatusPending
	if err := s.store.UpdateMintHistoryStatus(ctx, mint.ID, domain.CreationStatusPending, nil); err != nil {
		return err
	}

	if err := s.reserveMintDeduction(ctx, ident, mint, collection.Blockchain, domain.ActionMint); err != nil {
		return err
	}
	op := blockchains.OpMintDrop
	if cont.Retry {
		op = blockchains.OpRetryMintDrop
	}
	return s.emitDropMint(ctx, ident, drop, mint, dispatchRecipient(cont, mint), op)
}

func (s *Service) loadCollection(ctx context.Context, cont *metadatajson.Continuation) (*schema.Collection, error) {
	collection, err := s.store.GetCollectionByID(ctx, cont.EntityID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, fmt.Errorf("collection %s: %w", cont.EntityID, domain.ErrEntityNotFound)
	}
	return collection, nil
}

func (s *Service) loadMint(ctx context.Context, cont *metadatajson.Continuation) (*schema.CollectionMint, *schema.Collection, error) {
	mint, err := s.store.GetMintByID(ctx, cont.EntityID)
	if err != nil {
		return nil, nil, err
	}
	if mint == nil {
		return nil, nil, fmt.Errorf("mint %s: %w", cont.EntityID, domain.ErrEntityNotFound)
	}
	collection, err := s.store.GetCollectionByID(ctx, mint.CollectionID)
	if err != nil {
		return nil, nil, err
	}
	if collection == nil {
		return nil, nil, fmt.Errorf("collection %s: %w", mint.CollectionID, domain.ErrEntityNotFound)
	}
	return mint, collection, nil
}

func dispatchRecipient(cont *metadatajson.Continuation, mint *schema.CollectionMint) string {
	if cont.Recipient != "" {
		return cont.Recipient
	}
	if mint.Owner != nil {
		return *mint.Owner
	}
	return ""
}
