package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropforge/nft-hub/internal/adapter"
	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/logger"
	"github.com/dropforge/nft-hub/internal/mocks"
	"github.com/dropforge/nft-hub/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testBusMocks contains all the mocks needed for testing the providers
type testBusMocks struct {
	ctrl   *gomock.Controller
	natsJS *mocks.MockNatsJetStream
	nc     *mocks.MockNatsConn
	js     *mocks.MockJetStream
}

func setupTestBus(t *testing.T) *testBusMocks {
	ctrl := gomock.NewController(t)

	tm := &testBusMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		nc:     mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
	}
	tm.natsJS.
		EXPECT().
		Connect("nats://bus.internal:4222", gomock.Any()).
		Return(tm.nc, tm.js, nil)
	return tm
}

func busConfig() jetstream.Config {
	return jetstream.Config{
		URL:            "nats://bus.internal:4222",
		StreamName:     "NFT_EVENTS",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "test",
	}
}

func TestPublishNftEvent(t *testing.T) {
	tm := setupTestBus(t)
	defer tm.ctrl.Finish()

	tm.js.
		EXPECT().
		CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg natsjs.StreamConfig) (natsjs.Stream, error) {
			assert.Equal(t, "NFT_EVENTS", cfg.Name)
			assert.Equal(t, []string{"nfts.>"}, cfg.Subjects)
			return nil, nil
		})

	publisher, err := jetstream.NewPublisher(busConfig(), tm.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	event := &domain.NftEvent{
		Blockchain: domain.BlockchainSolana,
		Type:       domain.EventSolanaMintEditionDrop,
		Key: domain.NftEventKey{
			ID:        uuid.New().String(),
			UserID:    uuid.New().String(),
			ProjectID: uuid.New().String(),
		},
		Payload: domain.MintEditionTransaction{RecipientAddress: "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"},
	}

	tm.js.
		EXPECT().
		PublishMsg(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *nats.Msg, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			assert.Equal(t, "nfts.solana.SolanaMintEditionDrop."+event.Key.ID, msg.Subject)
			assert.NotEmpty(t, msg.Header.Get(nats.MsgIdHdr))
			assert.Equal(t, event.Key.ID, msg.Header.Get(jetstream.HeaderEntityID))
			assert.Equal(t, event.Key.UserID, msg.Header.Get(jetstream.HeaderUserID))
			assert.Equal(t, event.Key.ProjectID, msg.Header.Get(jetstream.HeaderProjectID))

			var decoded domain.NftEvent
			require.NoError(t, json.Unmarshal(msg.Data, &decoded))
			assert.Equal(t, event.Type, decoded.Type)
			return &natsjs.PubAck{}, nil
		})

	require.NoError(t, publisher.PublishNftEvent(context.Background(), event))
}

func TestPublishNftEventConcurrentMsgIDs(t *testing.T) {
	tm := setupTestBus(t)
	defer tm.ctrl.Finish()

	tm.js.
		EXPECT().
		CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	publisher, err := jetstream.NewPublisher(busConfig(), tm.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	const goroutines = 8
	const publishes = 50

	var mu sync.Mutex
	seen := make(map[string]struct{}, goroutines*publishes)

	tm.js.
		EXPECT().
		PublishMsg(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *nats.Msg, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			mu.Lock()
			defer mu.Unlock()
			seen[msg.Header.Get(nats.MsgIdHdr)] = struct{}{}
			return &natsjs.PubAck{}, nil
		}).
		Times(goroutines * publishes)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < publishes; i++ {
				event := &domain.NftEvent{
					Blockchain: domain.BlockchainSolana,
					Type:       domain.EventSolanaMintEditionDrop,
					Key:        domain.NftEventKey{ID: uuid.New().String()},
				}
				assert.NoError(t, publisher.PublishNftEvent(context.Background(), event))
			}
		}()
	}
	wg.Wait()

	// a duplicated message id would make JetStream dedupe drop an event
	assert.Len(t, seen, goroutines*publishes)
}

func TestSubscribeTreasuryEvents(t *testing.T) {
	tm := setupTestBus(t)
	defer tm.ctrl.Finish()

	consumer := mocks.NewMockNatsConsumer(tm.ctrl)
	cc := mocks.NewMockConsumeContext(tm.ctrl)

	tm.js.
		EXPECT().
		CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg natsjs.StreamConfig) (natsjs.Stream, error) {
			assert.Equal(t, []string{"treasury.>"}, cfg.Subjects)
			return nil, nil
		})

	cfg := busConfig()
	cfg.StreamName = "TREASURY_EVENTS"
	subscriber, err := jetstream.NewSubscriber(jetstream.SubscriberConfig{
		Config:      cfg,
		DurableName: "nft-hub-event-processor",
		MaxDeliver:  5,
		AckWait:     30 * time.Second,
	}, tm.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	good := domain.TreasuryEvent{
		Type:       domain.TreasuryEventCollectionCreated,
		Key:        domain.TreasuryEventKey{ID: uuid.New().String()},
		StatusCode: domain.TreasuryEventStatusCreated,
	}
	goodData, err := json.Marshal(good)
	require.NoError(t, err)

	acked := mocks.NewMockJetStreamMessage(tm.ctrl)
	acked.EXPECT().Data().Return(goodData)
	acked.EXPECT().Ack().Return(nil)

	// handler failures other than missing entities redeliver
	naked := mocks.NewMockJetStreamMessage(tm.ctrl)
	naked.EXPECT().Data().Return(goodData)
	naked.EXPECT().Nak().Return(nil)

	// malformed payloads terminate
	termed := mocks.NewMockJetStreamMessage(tm.ctrl)
	termed.EXPECT().Data().Return([]byte("{not json"))
	termed.EXPECT().Subject().Return("treasury.solana.CollectionCreated")
	termed.EXPECT().Term().Return(nil)

	closed := make(chan struct{})
	close(closed)

	tm.js.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), "TREASURY_EVENTS", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, cfg natsjs.ConsumerConfig) (adapter.Consumer, error) {
			assert.Equal(t, "nft-hub-event-processor", cfg.Durable)
			assert.Equal(t, natsjs.AckExplicitPolicy, cfg.AckPolicy)
			return consumer, nil
		})
	consumer.
		EXPECT().
		Consume(gomock.Any()).
		DoAndReturn(func(handler adapter.MessageHandler, _ ...natsjs.PullConsumeOpt) (adapter.ConsumeContext, error) {
			handler(acked)
			handler(naked)
			handler(termed)
			return cc, nil
		})
	cc.EXPECT().Closed().Return(closed)

	calls := 0
	err = subscriber.SubscribeTreasuryEvents(context.Background(), func(_ context.Context, event *domain.TreasuryEvent) error {
		calls++
		if calls == 2 {
			return errors.New("database unavailable")
		}
		assert.Equal(t, good.Type, event.Type)
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}
