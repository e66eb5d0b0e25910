package jetstream

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/dropforge/nft-hub/internal/adapter"
	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/logger"
	"github.com/dropforge/nft-hub/internal/messaging"
)

// Header names carrying the event key alongside the payload.
const (
	HeaderEntityID  = "Nft-Entity-Id"
	HeaderUserID    = "Nft-User-Id"
	HeaderProjectID = "Nft-Project-Id"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	Subjects       []string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type publisher struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	streamName string
	json       adapter.JSON
	// entropy is shared by request handlers and the job pool; the locked
	// reader keeps concurrent ULID generation safe and monotonic
	entropy *ulid.LockedMonotonicReader
}

// connect dials NATS with the shared reconnect handlers.
func connect(cfg Config, natsJS adapter.NatsJetStream) (adapter.NatsConn, adapter.JetStream, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}
	return nc, js, nil
}

// NewPublisher creates a new NATS JetStream publisher for outbound NFT
// events, creating the stream when it does not exist yet.
func NewPublisher(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	nc, js, err := connect(cfg, natsJS)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	subjects := cfg.Subjects
	if len(subjects) == 0 {
		subjects = []string{"nfts.>"}
	}
	if _, err := js.CreateOrUpdateStream(ctx, streamConfig(cfg.StreamName, subjects)); err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}

	return &publisher{
		nc:         nc,
		js:         js,
		streamName: cfg.StreamName,
		json:       jsonAdapter,
		entropy: &ulid.LockedMonotonicReader{
			MonotonicReader: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0), //nolint:gosec
		},
	}, nil
}

// PublishNftEvent publishes a typed chain event. The entity id is the final
// subject token so JetStream preserves per-entity ordering, and the full key
// travels in headers. The ULID message id lets JetStream dedupe resends.
func (p *publisher) PublishNftEvent(ctx context.Context, event *domain.NftEvent) error {
	logger.Debug("Publishing Nats event", zap.Any("event", event))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := nats.NewMsg(p.buildSubject(event))
	msg.Data = data
	msg.Header.Set(nats.MsgIdHdr, ulid.MustNew(ulid.Timestamp(time.Now()), p.entropy).String())
	msg.Header.Set(HeaderEntityID, event.Key.ID)
	msg.Header.Set(HeaderUserID, event.Key.UserID)
	msg.Header.Set(HeaderProjectID, event.Key.ProjectID)

	if _, err := p.js.PublishMsg(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// buildSubject constructs the NATS subject based on the event.
// Format: nfts.{chain}.{event_type}.{entity_id}
func (p *publisher) buildSubject(event *domain.NftEvent) string {
	return fmt.Sprintf("nfts.%s.%s.%s", event.Blockchain, event.Type, event.Key.ID)
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
