// Package processor finalizes persisted entities from inbound treasury
// events: status transitions, chain signatures and addresses, history rows,
// wallet registrations and credit confirmations.
package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dropforge/nft-hub/internal/credits"
	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/logger"
	"github.com/dropforge/nft-hub/internal/metrics"
	"github.com/dropforge/nft-hub/internal/store"
	"github.com/dropforge/nft-hub/internal/store/schema"
)

// Processor correlates chain-completion events back to the originating rows.
type Processor struct {
	store   store.Store
	credits credits.Client
}

// New creates the treasury event processor.
func New(st store.Store, creditsClient credits.Client) *Processor {
	return &Processor{store: st, credits: creditsClient}
}

// Handle processes one inbound event. It satisfies
// messaging.TreasuryEventHandler: ErrEntityNotFound terminates redelivery,
// other errors redeliver. Each status change commits in a single round trip
// so per-key bus ordering carries through to the rows.
func (p *Processor) Handle(ctx context.Context, event *domain.TreasuryEvent) error {
	metrics.EventsConsumed.WithLabelValues(string(event.Type)).Inc()

	switch event.Type {
	case domain.TreasuryEventCollectionCreated:
		return p.finalizeCollection(ctx, event)
	case domain.TreasuryEventDropCreated:
		return p.finalizeDrop(ctx, event)
	case domain.TreasuryEventDropMinted, domain.TreasuryEventMintedToCollection:
		return p.finalizeMint(ctx, event)
	case domain.TreasuryEventMintUpdated:
		return p.finalizeMintUpdate(ctx, event)
	case domain.TreasuryEventMintTransferred:
		return p.finalizeTransfer(ctx, event)
	case domain.TreasuryEventCollectionSwitched:
		return p.finalizeSwitch(ctx, event)
	case domain.TreasuryEventProjectWalletCreated:
		return p.registerProjectWallet(ctx, event)
	case domain.TreasuryEventCustomerWalletCreated:
		return p.registerCustomerWallet(ctx, event)
	}

	logger.WarnCtx(ctx, "ignoring unknown treasury event", zap.String("type", string(event.Type)))
	return nil
}

// entityID parses the event key; malformed ids can never resolve, so they
// surface as ErrEntityNotFound and stop redelivery.
func entityID(event *domain.TreasuryEvent) (uuid.UUID, error) {
	id, err := uuid.Parse(event.Key.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("malformed entity id %q: %w", event.Key.ID, domain.ErrEntityNotFound)
	}
	return id, nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (p *Processor) finalizeCollection(ctx context.Context, event *domain.TreasuryEvent) error {
	id, err := entityID(event)
	if err != nil {
		return err
	}
	status := domain.StatusFromCode(event.StatusCode)
	if status == domain.CreationStatusPending {
		return nil
	}

	err = p.store.TransitionCollection(ctx, store.FinalizeInput{
		ID:        id,
		Status:    status,
		Signature: strPtr(event.Signature),
		Address:   strPtr(event.Address),
	})
	if errors.Is(err, domain.ErrInvalidTransition) {
		// redelivered after an earlier finalize; nothing left to do
		return nil
	}
	if err != nil {
		return err
	}

	collection, err := p.store.GetCollectionByID(ctx, id)
	if err != nil {
		return err
	}
	if collection != nil && collection.CreditsDeductionID != nil {
		return p.credits.ConfirmDeduction(ctx, *collection.CreditsDeductionID)
	}
	return nil
}

func (p *Processor) finalizeDrop(ctx context.Context, event *domain.TreasuryEvent) error {
	id, err := entityID(event)
	if err != nil {
		return err
	}
	status := domain.StatusFromCode(event.StatusCode)
	if status == domain.CreationStatusPending {
		return nil
	}

	err = p.store.TransitionDrop(ctx, store.FinalizeInput{
		ID:        id,
		Status:    status,
		Signature: strPtr(event.Signature),
		Address:   strPtr(event.Address),
	})
	if errors.Is(err, domain.ErrInvalidTransition) {
		return nil
	}
	if err != nil {
		return err
	}

	// the deduction for a drop rides on its backing collection
	drop, err := p.store.GetDropByID(ctx, id)
	if err != nil {
		return err
	}
	if drop != nil && drop.Collection != nil && drop.Collection.CreditsDeductionID != nil {
		return p.credits.ConfirmDeduction(ctx, *drop.Collection.CreditsDeductionID)
	}
	return nil
}

func (p *Processor) finalizeMint(ctx context.Context, event *domain.TreasuryEvent) error {
	id, err := entityID(event)
	if err != nil {
		return err
	}
	status := domain.StatusFromCode(event.StatusCode)
	if status == domain.CreationStatusPending {
		return nil
	}

	err = p.store.TransitionMint(ctx, store.FinalizeInput{
		ID:        id,
		Status:    status,
		Signature: strPtr(event.Signature),
		Address:   strPtr(event.Address),
	})
	if errors.Is(err, domain.ErrInvalidTransition) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := p.store.UpdateMintHistoryStatus(ctx, id, status, strPtr(event.Signature)); err != nil {
		return err
	}

	mint, err := p.store.GetMintByID(ctx, id)
	if err != nil {
		return err
	}
	if mint != nil && mint.CreditsDeductionID != nil {
		return p.credits.ConfirmDeduction(ctx, *mint.CreditsDeductionID)
	}
	return nil
}

func (p *Processor) finalizeMintUpdate(ctx context.Context, event *domain.TreasuryEvent) error {
	id, err := entityID(event)
	if err != nil {
		return err
	}
	status := domain.StatusFromCode(event.StatusCode)
	if status == domain.CreationStatusPending {
		return nil
	}
	return p.store.UpdateUpdateHistoryStatus(ctx, id, status, strPtr(event.Signature))
}

func (p *Processor) finalizeTransfer(ctx context.Context, event *domain.TreasuryEvent) error {
	id, err := entityID(event)
	if err != nil {
		return err
	}
	if domain.StatusFromCode(event.StatusCode) == domain.CreationStatusPending {
		return nil
	}

	if err := p.store.FinalizeTransfer(ctx, id, event.Signature, strPtr(event.Address)); err != nil {
		return err
	}

	transfer, err := p.store.GetTransferByID(ctx, id)
	if err != nil {
		return err
	}
	if transfer != nil && transfer.CreditsDeductionID != nil {
		return p.credits.ConfirmDeduction(ctx, *transfer.CreditsDeductionID)
	}
	return nil
}

// finalizeSwitch confirms the charge for a collection switch; the reparenting
// itself was applied when the mutation ran.
func (p *Processor) finalizeSwitch(ctx context.Context, event *domain.TreasuryEvent) error {
	id, err := entityID(event)
	if err != nil {
		return err
	}
	if domain.StatusFromCode(event.StatusCode) == domain.CreationStatusPending {
		return nil
	}

	mint, err := p.store.GetMintByID(ctx, id)
	if err != nil {
		return err
	}
	if mint == nil {
		return fmt.Errorf("mint %s: %w", id, domain.ErrEntityNotFound)
	}
	if mint.CreditsDeductionID != nil {
		return p.credits.ConfirmDeduction(ctx, *mint.CreditsDeductionID)
	}
	return nil
}

func (p *Processor) registerProjectWallet(ctx context.Context, event *domain.TreasuryEvent) error {
	projectID, err := uuid.Parse(event.ProjectID)
	if err != nil {
		return fmt.Errorf("malformed project id %q: %w", event.ProjectID, domain.ErrEntityNotFound)
	}
	if !event.Blockchain.Valid() || event.WalletAddress == "" {
		return fmt.Errorf("incomplete wallet event: %w", domain.ErrEntityNotFound)
	}
	return p.store.UpsertProjectWallet(ctx, &schema.ProjectWallet{
		ID:            uuid.New(),
		ProjectID:     projectID,
		Blockchain:    event.Blockchain,
		WalletAddress: event.WalletAddress,
	})
}

func (p *Processor) registerCustomerWallet(ctx context.Context, event *domain.TreasuryEvent) error {
	customerID, err := uuid.Parse(event.CustomerID)
	if err != nil {
		return fmt.Errorf("malformed customer id %q: %w", event.CustomerID, domain.ErrEntityNotFound)
	}
	if !event.Blockchain.Valid() || event.WalletAddress == "" {
		return fmt.Errorf("incomplete wallet event: %w", domain.ErrEntityNotFound)
	}
	return p.store.UpsertCustomerWallet(ctx, &schema.CustomerWallet{
		ID:         uuid.New(),
		CustomerID: customerID,
		Blockchain: event.Blockchain,
		Address:    event.WalletAddress,
	})
}
