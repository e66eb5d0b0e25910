package jetstream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/dropforge/nft-hub/internal/adapter"
	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/logger"
	"github.com/dropforge/nft-hub/internal/messaging"
)

// SubscriberConfig extends the connection config with consumer settings.
type SubscriberConfig struct {
	Config
	DurableName   string
	FilterSubject string
	MaxDeliver    int
	AckWait       time.Duration
}

type subscriber struct {
	nc   adapter.NatsConn
	js   adapter.JetStream
	cfg  SubscriberConfig
	json adapter.JSON
}

// NewSubscriber creates a durable JetStream consumer over the treasury
// stream.
func NewSubscriber(cfg SubscriberConfig, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Subscriber, error) {
	nc, js, err := connect(cfg.Config, natsJS)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	subjects := cfg.Subjects
	if len(subjects) == 0 {
		subjects = []string{"treasury.>"}
	}
	if _, err := js.CreateOrUpdateStream(ctx, streamConfig(cfg.StreamName, subjects)); err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}

	return &subscriber{nc: nc, js: js, cfg: cfg, json: jsonAdapter}, nil
}

// SubscribeTreasuryEvents consumes treasury events until ctx is cancelled.
// Unparseable payloads are terminated, handler failures are redelivered, and
// missing entities are terminated after logging.
func (s *subscriber) SubscribeTreasuryEvents(ctx context.Context, handler messaging.TreasuryEventHandler) error {
	maxDeliver := s.cfg.MaxDeliver
	if maxDeliver == 0 {
		maxDeliver = 5
	}
	ackWait := s.cfg.AckWait
	if ackWait == 0 {
		ackWait = 30 * time.Second
	}

	consumer, err := s.js.CreateOrUpdateConsumer(ctx, s.cfg.StreamName, jetstream.ConsumerConfig{
		Durable:       s.cfg.DurableName,
		FilterSubject: s.cfg.FilterSubject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		MaxDeliver:    maxDeliver,
		AckWait:       ackWait,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	cc, err := consumer.Consume(func(msg adapter.Message) {
		s.handleMessage(ctx, msg, handler)
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	select {
	case <-ctx.Done():
		cc.Drain()
		return ctx.Err()
	case <-cc.Closed():
		return errors.New("consume context closed")
	}
}

func (s *subscriber) handleMessage(ctx context.Context, msg adapter.Message, handler messaging.TreasuryEventHandler) {
	var event domain.TreasuryEvent
	if err := s.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("subject", msg.Subject()))
		// malformed payloads never become parseable; stop redelivery
		if err := msg.Term(); err != nil {
			logger.ErrorCtx(ctx, err)
		}
		return
	}

	if err := handler(ctx, &event); err != nil {
		if errors.Is(err, domain.ErrEntityNotFound) {
			logger.WarnCtx(ctx, "dropping event for unknown entity",
				zap.String("id", event.Key.ID), zap.String("type", string(event.Type)))
			if err := msg.Term(); err != nil {
				logger.ErrorCtx(ctx, err)
			}
			return
		}
		logger.ErrorCtx(ctx, err, zap.String("id", event.Key.ID))
		if err := msg.Nak(); err != nil {
			logger.ErrorCtx(ctx, err)
		}
		return
	}

	if err := msg.Ack(); err != nil {
		logger.ErrorCtx(ctx, err)
	}
}

// Close closes the NATS connection
func (s *subscriber) Close() {
	if s.nc == nil {
		return
	}

	s.nc.Close()
}
