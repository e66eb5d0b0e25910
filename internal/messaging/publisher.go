package messaging

import (
	"context"

	"github.com/dropforge/nft-hub/internal/domain"
)

// Publisher defines the interface for publishing NFT events to the message bus
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishNftEvent publishes a typed chain event keyed by the entity id
	PublishNftEvent(ctx context.Context, event *domain.NftEvent) error
	// Close closes the connection
	Close()
}
