// Package blockchains holds the per-chain adapters that map a validated
// operation onto the typed event variant a downstream chain worker consumes.
package blockchains

import (
	"context"
	"fmt"

	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/messaging"
	"github.com/dropforge/nft-hub/internal/metrics"
)

// Operation names a chain-bound action independent of the chain.
type Operation string

const (
	OpCreateDrop            Operation = "create_drop"
	OpRetryDrop             Operation = "retry_drop"
	OpUpdateDrop            Operation = "update_drop"
	OpMintDrop              Operation = "mint_drop"
	OpRetryMintDrop         Operation = "retry_mint_drop"
	OpCreateCollection      Operation = "create_collection"
	OpRetryCollection       Operation = "retry_collection"
	OpUpdateCollection      Operation = "update_collection"
	OpMintToCollection      Operation = "mint_to_collection"
	OpRetryMintToCollection Operation = "retry_mint_to_collection"
	OpUpdateMint            Operation = "update_mint"
	OpRetryUpdateMint       Operation = "retry_update_mint"
	OpTransfer              Operation = "transfer"
	OpSwitchCollection      Operation = "switch_collection"
	OpImportCollection      Operation = "import_collection"
)

// Adapter resolves the event variant for an operation on one chain.
// Adapters are stateless and safe for concurrent use; callers must treat an
// error as an unsupported (blockchain, operation) pair.
type Adapter interface {
	EventType(op Operation, dropType domain.DropType) (domain.EventType, error)
}

// Registry selects adapters by chain and publishes through the shared bus
// producer.
type Registry struct {
	publisher messaging.Publisher
	adapters  map[domain.Blockchain]Adapter
}

// NewRegistry wires the supported chains.
func NewRegistry(publisher messaging.Publisher) *Registry {
	return &Registry{
		publisher: publisher,
		adapters: map[domain.Blockchain]Adapter{
			domain.BlockchainSolana:  solanaAdapter{},
			domain.BlockchainPolygon: polygonAdapter{},
		},
	}
}

// Emit resolves the event variant and publishes the payload keyed by key.
func (r *Registry) Emit(ctx context.Context, blockchain domain.Blockchain, op Operation, dropType domain.DropType, key domain.NftEventKey, payload any) error {
	adapter, ok := r.adapters[blockchain]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrBlockchainNotSupported, blockchain)
	}

	eventType, err := adapter.EventType(op, dropType)
	if err != nil {
		return err
	}

	event := &domain.NftEvent{
		Blockchain: blockchain,
		Type:       eventType,
		Key:        key,
		Payload:    payload,
	}
	if err := r.publisher.PublishNftEvent(ctx, event); err != nil {
		return err
	}
	metrics.EventsPublished.WithLabelValues(string(blockchain), string(eventType)).Inc()
	return nil
}

// EventType exposes variant resolution without publishing.
func (r *Registry) EventType(blockchain domain.Blockchain, op Operation, dropType domain.DropType) (domain.EventType, error) {
	adapter, ok := r.adapters[blockchain]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrBlockchainNotSupported, blockchain)
	}
	return adapter.EventType(op, dropType)
}
