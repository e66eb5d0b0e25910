package messaging

import (
	"context"

	"github.com/dropforge/nft-hub/internal/domain"
)

// TreasuryEventHandler is called for each inbound chain-status event. A nil
// return acks the message; domain.ErrEntityNotFound terminates redelivery;
// any other error triggers redelivery.
type TreasuryEventHandler func(ctx context.Context, event *domain.TreasuryEvent) error

// Subscriber defines the interface for consuming treasury events
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeTreasuryEvents consumes treasury events until ctx is cancelled
	SubscribeTreasuryEvents(ctx context.Context, handler TreasuryEventHandler) error

	// Close closes the connection and cleans up resources
	Close()
}
