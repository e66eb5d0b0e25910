package mutations_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropforge/nft-hub/internal/blockchains"
	"github.com/dropforge/nft-hub/internal/credits"
	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/logger"
	"github.com/dropforge/nft-hub/internal/metadatajson"
	"github.com/dropforge/nft-hub/internal/mocks"
	"github.com/dropforge/nft-hub/internal/mutations"
	"github.com/dropforge/nft-hub/internal/store"
	"github.com/dropforge/nft-hub/internal/store/schema"
)

const (
	solanaWallet    = "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"
	solanaRecipient = "7S3P4HxJpyyigGzodYwHtCxZyUQe9JiBMHyRWXArAaKv"
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

// recordingEnqueuer captures continuations instead of persisting jobs.
type recordingEnqueuer struct {
	jsons []*schema.MetadataJson
	conts []metadatajson.Continuation
}

func (r *recordingEnqueuer) EnqueueUpload(_ context.Context, json *schema.MetadataJson, cont metadatajson.Continuation) error {
	r.jsons = append(r.jsons, json)
	r.conts = append(r.conts, cont)
	return nil
}

// testServiceMocks contains all the mocks needed for testing the orchestrators
type testServiceMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	credits   *mocks.MockCreditsClient
	publisher *mocks.MockPublisher
	jobs      *recordingEnqueuer
	service   *mutations.Service
}

func setupTestService(t *testing.T) *testServiceMocks {
	ctrl := gomock.NewController(t)

	tm := &testServiceMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		credits:   mocks.NewMockCreditsClient(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		jobs:      &recordingEnqueuer{},
	}
	tm.service = mutations.NewService(tm.store, tm.credits, blockchains.NewRegistry(tm.publisher))
	tm.service.BindJobs(tm.jobs)
	return tm
}

func testIdentity() mutations.Identity {
	return mutations.Identity{
		UserID:         uuid.New(),
		OrganizationID: uuid.New(),
		Balance:        100,
	}
}

func testDocument() metadatajson.Document {
	return metadatajson.Document{
		Name:        "Genesis",
		Symbol:      "GEN",
		Description: "first collection",
		Image:       "https://assets.example.com/genesis.png",
	}
}

func mintingDrop(blockchain domain.Blockchain, dropType domain.DropType) *schema.Drop {
	start := time.Now().Add(-time.Hour)
	supply := int64(10)
	collectionID := uuid.New()
	return &schema.Drop{
		ID:             uuid.New(),
		ProjectID:      uuid.New(),
		CollectionID:   collectionID,
		DropType:       dropType,
		CreationStatus: domain.CreationStatusCreated,
		StartTime:      &start,
		Collection: &schema.Collection{
			ID:             collectionID,
			Blockchain:     blockchain,
			Supply:         &supply,
			TotalMints:     3,
			CreationStatus: domain.CreationStatusCreated,
		},
	}
}

func TestCreateCollection(t *testing.T) {
	tm := setupTestService(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	ident := testIdentity()
	projectID := uuid.New()

	tm.store.
		EXPECT().
		GetProjectWallet(ctx, projectID, domain.BlockchainSolana).
		Return(&schema.ProjectWallet{WalletAddress: solanaWallet}, nil)

	var created *schema.Collection
	tm.store.
		EXPECT().
		CreateCollection(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, col *schema.Collection, creators []schema.Creator, json *schema.MetadataJson) error {
			created = col
			assert.Equal(t, domain.CreationStatusPending, col.CreationStatus)
			assert.Len(t, creators, 1)
			require.NotNil(t, json)
			assert.Equal(t, col.ID, json.ID)
			return nil
		})

	col, err := tm.service.CreateCollection(ctx, ident, mutations.CreateCollectionInput{
		ProjectID:            projectID,
		Blockchain:           domain.BlockchainSolana,
		SellerFeeBasisPoints: 500,
		Creators: []domain.Creator{
			{Address: solanaWallet, Verified: true, Share: 100},
		},
		Metadata: testDocument(),
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID, col.ID)

	// the upload/credits/event tail rides on the job pipeline
	require.Len(t, tm.jobs.conts, 1)
	assert.Equal(t, metadatajson.CallerCreateCollection, tm.jobs.conts[0].Caller)
	assert.Equal(t, col.ID, tm.jobs.conts[0].EntityID)
	assert.Equal(t, ident.OrganizationID, tm.jobs.conts[0].OrganizationID)
}

func TestCreateCollectionRequiresIdentity(t *testing.T) {
	tm := setupTestService(t)
	defer tm.ctrl.Finish()

	_, err := tm.service.CreateCollection(context.Background(), mutations.Identity{}, mutations.CreateCollectionInput{
		ProjectID:  uuid.New(),
		Blockchain: domain.BlockchainSolana,
		Metadata:   testDocument(),
	})
	assert.ErrorIs(t, err, domain.ErrIdentityMissing)
}

func TestCreateCollectionRejectsBadShares(t *testing.T) {
	tm := setupTestService(t)
	defer tm.ctrl.Finish()

	_, err := tm.service.CreateCollection(context.Background(), testIdentity(), mutations.CreateCollectionInput{
		ProjectID:  uuid.New(),
		Blockchain: domain.BlockchainSolana,
		Creators: []domain.Creator{
			{Address: solanaWallet, Share: 60},
		},
		Metadata: testDocument(),
	})
	assert.ErrorIs(t, err, domain.ErrShareSumMismatch)
}

func TestMintDropEdition(t *testing.T) {
	tm := setupTestService(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	ident := testIdentity()
	drop := mintingDrop(domain.BlockchainSolana, domain.DropTypeEdition)
	deductionID := uuid.New()

	tm.store.EXPECT().GetDropByID(ctx, drop.ID).Return(drop, nil)
	tm.store.
		EXPECT().
		CreateMint(ctx, gomock.Any(), nil, nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, mint *schema.CollectionMint, _ []schema.MintCreator, _ *schema.MetadataJson, history *schema.MintHistory) error {
			assert.Equal(t, domain.CreationStatusPending, mint.CreationStatus)
			assert.Equal(t, drop.CollectionID, mint.CollectionID)
			require.NotNil(t, history.DropID)
			assert.Equal(t, drop.ID, *history.DropID)
			return nil
		})
	tm.credits.
		EXPECT().
		SubmitPendingDeduction(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input credits.DeductionInput) (uuid.UUID, error) {
			assert.Equal(t, domain.ActionMint, input.Action)
			assert.Equal(t, domain.BlockchainSolana, input.Blockchain)
			return deductionID, nil
		})
	tm.store.EXPECT().SetMintDeduction(ctx, gomock.Any(), deductionID).Return(nil)
	tm.store.
		EXPECT().
		GetProjectWallet(ctx, drop.ProjectID, domain.BlockchainSolana).
		Return(&schema.ProjectWallet{WalletAddress: solanaWallet}, nil)
	tm.publisher.
		EXPECT().
		PublishNftEvent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.NftEvent) error {
			assert.Equal(t, domain.EventSolanaMintEditionDrop, event.Type)
			assert.Equal(t, domain.BlockchainSolana, event.Blockchain)
			payload, ok := event.Payload.(domain.MintEditionTransaction)
			require.True(t, ok)
			assert.Equal(t, solanaRecipient, payload.RecipientAddress)
			assert.Equal(t, drop.ID.String(), payload.DropID)
			return nil
		})

	mint, err := tm.service.MintDrop(ctx, ident, mutations.MintDropInput{
		DropID:    drop.ID,
		Recipient: solanaRecipient,
	})
	require.NoError(t, err)
	require.NotNil(t, mint.CreditsDeductionID)
	assert.Equal(t, deductionID, *mint.CreditsDeductionID)
	assert.Empty(t, tm.jobs.conts)
}

func TestMintDropRejectedWhenScheduled(t *testing.T) {
	tm := setupTestService(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	drop := mintingDrop(domain.BlockchainSolana, domain.DropTypeEdition)
	start := time.Now().Add(time.Hour)
	drop.StartTime = &start

	tm.store.EXPECT().GetDropByID(ctx, drop.ID).Return(drop, nil)

	_, err := tm.service.MintDrop(ctx, testIdentity(), mutations.MintDropInput{
		DropID:    drop.ID,
		Recipient: solanaRecipient,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestMintOpenDropWithDocumentIsQueued(t *testing.T) {
	tm := setupTestService(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	ident := testIdentity()
	drop := mintingDrop(domain.BlockchainSolana, domain.DropTypeOpen)
	doc := testDocument()

	tm.store.EXPECT().GetDropByID(ctx, drop.ID).Return(drop, nil)
	tm.store.
		EXPECT().
		CreateMint(ctx, gomock.Any(), nil, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mint *schema.CollectionMint, _ []schema.MintCreator, json *schema.MetadataJson, history *schema.MintHistory) error {
			assert.Equal(t, domain.CreationStatusQueued, mint.CreationStatus)
			assert.Equal(t, domain.OpenDropEdition, mint.Edition)
			require.NotNil(t, json)
			assert.Equal(t, mint.ID, json.ID)
			assert.Equal(t, domain.CreationStatusQueued, history.Status)
			return nil
		})

	mint, err := tm.service.MintDrop(ctx, ident, mutations.MintDropInput{
		DropID:    drop.ID,
		Recipient: solanaRecipient,
		Metadata:  &doc,
	})
	require.NoError(t, err)

	// no charge and no event until the queued mint's upload lands
	require.Len(t, tm.jobs.conts, 1)
	cont := tm.jobs.conts[0]
	assert.Equal(t, metadatajson.CallerQueueMintToDrop, cont.Caller)
	assert.Equal(t, mint.ID, cont.EntityID)
	assert.Equal(t, drop.ID, cont.DropID)
	assert.Equal(t, solanaRecipient, cont.Recipient)
}

func TestRetryMintSkipsReservedDeduction(t *testing.T) {
	tm := setupTestService(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	ident := testIdentity()
	drop := mintingDrop(domain.BlockchainSolana, domain.DropTypeEdition)
	deductionID := uuid.New()
	owner := solanaRecipient
	mint := &schema.CollectionMint{
		ID:                 uuid.New(),
		CollectionID:       drop.CollectionID,
		Owner:              &owner,
		CreationStatus:     domain.CreationStatusFailed,
		Edition:            4,
		CreditsDeductionID: &deductionID,
	}

	tm.store.EXPECT().GetMintByID(ctx, mint.ID).Return(mint, nil)
	tm.store.EXPECT().GetCollectionByID(ctx, drop.CollectionID).Return(drop.Collection, nil)
	tm.store.
		EXPECT().
		TransitionMint(ctx, store.FinalizeInput{ID: mint.ID, Status: domain.CreationStatusPending}).
		Return(nil)
	tm.store.
		EXPECT().
		UpdateMintHistoryStatus(ctx, mint.ID, domain.CreationStatusPending, nil).
		Return(nil)
	tm.store.
		EXPECT().
		GetLatestMintHistory(ctx, mint.ID).
		Return(&schema.MintHistory{MintID: mint.ID, DropID: &drop.ID}, nil)
	tm.store.EXPECT().GetDropByID(ctx, drop.ID).Return(drop, nil)
	tm.store.
		EXPECT().
		GetProjectWallet(ctx, drop.ProjectID, domain.BlockchainSolana).
		Return(&schema.ProjectWallet{WalletAddress: solanaWallet}, nil)
	tm.publisher.
		EXPECT().
		PublishNftEvent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.NftEvent) error {
			assert.Equal(t, domain.EventSolanaRetryMintEditionDrop, event.Type)
			return nil
		})

	// no SubmitPendingDeduction expectation: the earlier reservation carries over
	got, err := tm.service.RetryMint(ctx, ident, mint.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CreationStatusPending, got.CreationStatus)
}

func TestTransferAsset(t *testing.T) {
	tm := setupTestService(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	ident := testIdentity()
	owner := solanaWallet
	collection := &schema.Collection{
		ID:         uuid.New(),
		ProjectID:  uuid.New(),
		Blockchain: domain.BlockchainSolana,
	}
	mint := &schema.CollectionMint{
		ID:             uuid.New(),
		CollectionID:   collection.ID,
		Owner:          &owner,
		CreationStatus: domain.CreationStatusCreated,
	}
	deductionID := uuid.New()

	tm.store.EXPECT().GetMintByID(ctx, mint.ID).Return(mint, nil)
	tm.store.EXPECT().GetCollectionByID(ctx, collection.ID).Return(collection, nil)
	tm.store.
		EXPECT().
		GetCustomerWalletByAddress(ctx, owner).
		Return(&schema.CustomerWallet{Address: owner}, nil)
	tm.store.
		EXPECT().
		CreateTransfer(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, transfer *schema.NftTransfer) error {
			assert.Equal(t, mint.ID, transfer.CollectionMintID)
			assert.Equal(t, owner, transfer.Sender)
			return nil
		})
	tm.credits.
		EXPECT().
		SubmitPendingDeduction(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input credits.DeductionInput) (uuid.UUID, error) {
			assert.Equal(t, domain.ActionTransfer, input.Action)
			assert.Equal(t, ident.OrganizationID, input.OrganizationID)
			return deductionID, nil
		})
	tm.store.EXPECT().SetTransferDeduction(ctx, gomock.Any(), deductionID).Return(nil)
	tm.publisher.
		EXPECT().
		PublishNftEvent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.NftEvent) error {
			assert.Equal(t, domain.EventSolanaTransferAsset, event.Type)
			payload, ok := event.Payload.(domain.TransferAssetTransaction)
			require.True(t, ok)
			assert.Equal(t, owner, payload.OwnerAddress)
			assert.Equal(t, solanaRecipient, payload.RecipientAddress)
			return nil
		})

	transfer, err := tm.service.TransferAsset(ctx, ident, mutations.TransferAssetInput{
		MintID:    mint.ID,
		Recipient: solanaRecipient,
	})
	require.NoError(t, err)
	assert.Equal(t, deductionID, *transfer.CreditsDeductionID)
}

func TestTransferAssetRequiresManagedSender(t *testing.T) {
	tm := setupTestService(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	owner := solanaWallet
	collection := &schema.Collection{
		ID:         uuid.New(),
		Blockchain: domain.BlockchainSolana,
	}
	mint := &schema.CollectionMint{
		ID:             uuid.New(),
		CollectionID:   collection.ID,
		Owner:          &owner,
		CreationStatus: domain.CreationStatusCreated,
	}

	tm.store.EXPECT().GetMintByID(ctx, mint.ID).Return(mint, nil)
	tm.store.EXPECT().GetCollectionByID(ctx, collection.ID).Return(collection, nil)
	tm.store.EXPECT().GetCustomerWalletByAddress(ctx, owner).Return(nil, nil)

	_, err := tm.service.TransferAsset(ctx, testIdentity(), mutations.TransferAssetInput{
		MintID:    mint.ID,
		Recipient: solanaRecipient,
	})
	assert.ErrorIs(t, err, domain.ErrCustomerWalletNotFound)
}

func TestTransferAssetRejectsPendingMint(t *testing.T) {
	tm := setupTestService(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	owner := solanaWallet
	mint := &schema.CollectionMint{
		ID:             uuid.New(),
		CollectionID:   uuid.New(),
		Owner:          &owner,
		CreationStatus: domain.CreationStatusPending,
	}
	tm.store.EXPECT().GetMintByID(ctx, mint.ID).Return(mint, nil)

	_, err := tm.service.TransferAsset(ctx, testIdentity(), mutations.TransferAssetInput{
		MintID:    mint.ID,
		Recipient: solanaRecipient,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestDispatchQueuedMintToleratesDrainedQueue(t *testing.T) {
	tm := setupTestService(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	drop := mintingDrop(domain.BlockchainSolana, domain.DropTypeOpen)
	owner := solanaRecipient
	mint := &schema.CollectionMint{
		ID:             uuid.New(),
		CollectionID:   drop.CollectionID,
		Owner:          &owner,
		CreationStatus: domain.CreationStatusQueued,
		Edition:        domain.OpenDropEdition,
	}
	cont := &metadatajson.Continuation{
		Caller:         metadatajson.CallerQueueMintToDrop,
		EntityID:       mint.ID,
		OrganizationID: uuid.New(),
		UserID:         uuid.New(),
		Balance:        50,
		Recipient:      owner,
		DropID:         drop.ID,
	}
	deductionID := uuid.New()

	tm.store.EXPECT().GetMintByID(ctx, mint.ID).Return(mint, nil)
	tm.store.EXPECT().GetCollectionByID(ctx, drop.CollectionID).Return(drop.Collection, nil)
	tm.store.EXPECT().GetDropByID(ctx, drop.ID).Return(drop, nil)
	// a concurrent queue drain already moved the mint to pending
	tm.store.
		EXPECT().
		TransitionMint(ctx, gomock.Any()).
		Return(domain.ErrInvalidTransition)
	tm.store.
		EXPECT().
		UpdateMintHistoryStatus(ctx, mint.ID, domain.CreationStatusPending, nil).
		Return(nil)
	tm.credits.EXPECT().SubmitPendingDeduction(ctx, gomock.Any()).Return(deductionID, nil)
	tm.store.EXPECT().SetMintDeduction(ctx, mint.ID, deductionID).Return(nil)
	tm.store.
		EXPECT().
		GetProjectWallet(ctx, drop.ProjectID, domain.BlockchainSolana).
		Return(&schema.ProjectWallet{WalletAddress: solanaWallet}, nil)
	tm.publisher.
		EXPECT().
		PublishNftEvent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.NftEvent) error {
			assert.Equal(t, domain.EventSolanaMintOpenDrop, event.Type)
			return nil
		})

	err := tm.service.Dispatch(ctx, cont, nil)
	require.NoError(t, err)
}

func TestDispatchUnknownCaller(t *testing.T) {
	tm := setupTestService(t)
	defer tm.ctrl.Finish()

	err := tm.service.Dispatch(context.Background(), &metadatajson.Continuation{Caller: "no_such_caller"}, nil)
	assert.Error(t, err)
}
