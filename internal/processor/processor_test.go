package processor_test

import (
	"context"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/logger"
	"github.com/dropforge/nft-hub/internal/mocks"
	"github.com/dropforge/nft-hub/internal/processor"
	"github.com/dropforge/nft-hub/internal/store"
	"github.com/dropforge/nft-hub/internal/store/schema"
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

// testProcessorMocks contains all the mocks needed for testing the processor
type testProcessorMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	credits   *mocks.MockCreditsClient
	processor *processor.Processor
}

func setupTestProcessor(t *testing.T) *testProcessorMocks {
	ctrl := gomock.NewController(t)

	tm := &testProcessorMocks{
		ctrl:    ctrl,
		store:   mocks.NewMockStore(ctrl),
		credits: mocks.NewMockCreditsClient(ctrl),
	}
	tm.processor = processor.New(tm.store, tm.credits)
	return tm
}

func TestFinalizeMintConfirmsDeduction(t *testing.T) {
	tm := setupTestProcessor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	mintID := uuid.New()
	deductionID := uuid.New()
	signature := "5wHu1qwD4kfY"
	address := "mintAddr111"

	tm.store.
		EXPECT().
		TransitionMint(ctx, store.FinalizeInput{
			ID:        mintID,
			Status:    domain.CreationStatusCreated,
			Signature: &signature,
			Address:   &address,
		}).
		Return(nil)
	tm.store.
		EXPECT().
		UpdateMintHistoryStatus(ctx, mintID, domain.CreationStatusCreated, &signature).
		Return(nil)
	tm.store.
		EXPECT().
		GetMintByID(ctx, mintID).
		Return(&schema.CollectionMint{ID: mintID, CreditsDeductionID: &deductionID}, nil)
	tm.credits.EXPECT().ConfirmDeduction(ctx, deductionID).Return(nil)

	err := tm.processor.Handle(ctx, &domain.TreasuryEvent{
		Type:       domain.TreasuryEventDropMinted,
		Key:        domain.TreasuryEventKey{ID: mintID.String()},
		StatusCode: domain.TreasuryEventStatusCreated,
		Signature:  signature,
		Address:    address,
	})
	require.NoError(t, err)
}

func TestFinalizeMintWithoutDeduction(t *testing.T) {
	tm := setupTestProcessor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	mintID := uuid.New()

	tm.store.EXPECT().TransitionMint(ctx, gomock.Any()).Return(nil)
	tm.store.
		EXPECT().
		UpdateMintHistoryStatus(ctx, mintID, domain.CreationStatusCreated, gomock.Any()).
		Return(nil)
	tm.store.EXPECT().GetMintByID(ctx, mintID).Return(&schema.CollectionMint{ID: mintID}, nil)

	// no ConfirmDeduction expectation: nothing was reserved
	err := tm.processor.Handle(ctx, &domain.TreasuryEvent{
		Type:       domain.TreasuryEventMintedToCollection,
		Key:        domain.TreasuryEventKey{ID: mintID.String()},
		StatusCode: domain.TreasuryEventStatusCreated,
	})
	require.NoError(t, err)
}

func TestPendingStatusIsNoOp(t *testing.T) {
	tm := setupTestProcessor(t)
	defer tm.ctrl.Finish()

	err := tm.processor.Handle(context.Background(), &domain.TreasuryEvent{
		Type:       domain.TreasuryEventCollectionCreated,
		Key:        domain.TreasuryEventKey{ID: uuid.New().String()},
		StatusCode: 0,
	})
	require.NoError(t, err)
}

func TestMalformedKeyStopsRedelivery(t *testing.T) {
	tm := setupTestProcessor(t)
	defer tm.ctrl.Finish()

	err := tm.processor.Handle(context.Background(), &domain.TreasuryEvent{
		Type:       domain.TreasuryEventCollectionCreated,
		Key:        domain.TreasuryEventKey{ID: "not-a-uuid"},
		StatusCode: domain.TreasuryEventStatusCreated,
	})
	assert.ErrorIs(t, err, domain.ErrEntityNotFound)
}

func TestRedeliveredFinalizeIsIdempotent(t *testing.T) {
	tm := setupTestProcessor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	collectionID := uuid.New()

	// the first delivery already moved the row out of pending
	tm.store.
		EXPECT().
		TransitionCollection(ctx, gomock.Any()).
		Return(domain.ErrInvalidTransition)

	err := tm.processor.Handle(ctx, &domain.TreasuryEvent{
		Type:       domain.TreasuryEventCollectionCreated,
		Key:        domain.TreasuryEventKey{ID: collectionID.String()},
		StatusCode: domain.TreasuryEventStatusCreated,
	})
	require.NoError(t, err)
}

func TestFinalizeDropConfirmsCollectionDeduction(t *testing.T) {
	tm := setupTestProcessor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	dropID := uuid.New()
	deductionID := uuid.New()
	signature := "3xPq9f"

	tm.store.
		EXPECT().
		TransitionDrop(ctx, store.FinalizeInput{
			ID:        dropID,
			Status:    domain.CreationStatusCreated,
			Signature: &signature,
		}).
		Return(nil)
	tm.store.
		EXPECT().
		GetDropByID(ctx, dropID).
		Return(&schema.Drop{
			ID: dropID,
			Collection: &schema.Collection{
				CreditsDeductionID: &deductionID,
			},
		}, nil)
	tm.credits.EXPECT().ConfirmDeduction(ctx, deductionID).Return(nil)

	err := tm.processor.Handle(ctx, &domain.TreasuryEvent{
		Type:       domain.TreasuryEventDropCreated,
		Key:        domain.TreasuryEventKey{ID: dropID.String()},
		StatusCode: domain.TreasuryEventStatusCreated,
		Signature:  signature,
	})
	require.NoError(t, err)
}

func TestFinalizeTransfer(t *testing.T) {
	tm := setupTestProcessor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	transferID := uuid.New()
	deductionID := uuid.New()
	signature := "2aBcD"

	tm.store.EXPECT().FinalizeTransfer(ctx, transferID, signature, gomock.Nil()).Return(nil)
	tm.store.
		EXPECT().
		GetTransferByID(ctx, transferID).
		Return(&schema.NftTransfer{ID: transferID, CreditsDeductionID: &deductionID}, nil)
	tm.credits.EXPECT().ConfirmDeduction(ctx, deductionID).Return(nil)

	err := tm.processor.Handle(ctx, &domain.TreasuryEvent{
		Type:       domain.TreasuryEventMintTransferred,
		Key:        domain.TreasuryEventKey{ID: transferID.String()},
		StatusCode: domain.TreasuryEventStatusCreated,
		Signature:  signature,
	})
	require.NoError(t, err)
}

func TestFinalizeMintUpdate(t *testing.T) {
	tm := setupTestProcessor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	mintID := uuid.New()
	signature := "9zYxW"

	tm.store.
		EXPECT().
		UpdateUpdateHistoryStatus(ctx, mintID, domain.CreationStatusCreated, &signature).
		Return(nil)

	err := tm.processor.Handle(ctx, &domain.TreasuryEvent{
		Type:       domain.TreasuryEventMintUpdated,
		Key:        domain.TreasuryEventKey{ID: mintID.String()},
		StatusCode: domain.TreasuryEventStatusCreated,
		Signature:  signature,
	})
	require.NoError(t, err)
}

func TestFinalizeSwitchConfirmsDeduction(t *testing.T) {
	tm := setupTestProcessor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	mintID := uuid.New()
	deductionID := uuid.New()

	tm.store.
		EXPECT().
		GetMintByID(ctx, mintID).
		Return(&schema.CollectionMint{ID: mintID, CreditsDeductionID: &deductionID}, nil)
	tm.credits.EXPECT().ConfirmDeduction(ctx, deductionID).Return(nil)

	err := tm.processor.Handle(ctx, &domain.TreasuryEvent{
		Type:       domain.TreasuryEventCollectionSwitched,
		Key:        domain.TreasuryEventKey{ID: mintID.String()},
		StatusCode: domain.TreasuryEventStatusCreated,
	})
	require.NoError(t, err)
}

func TestRegisterProjectWallet(t *testing.T) {
	tm := setupTestProcessor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	projectID := uuid.New()
	address := "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"

	tm.store.
		EXPECT().
		UpsertProjectWallet(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, wallet *schema.ProjectWallet) error {
			assert.Equal(t, projectID, wallet.ProjectID)
			assert.Equal(t, domain.BlockchainSolana, wallet.Blockchain)
			assert.Equal(t, address, wallet.WalletAddress)
			return nil
		})

	err := tm.processor.Handle(ctx, &domain.TreasuryEvent{
		Type:          domain.TreasuryEventProjectWalletCreated,
		ProjectID:     projectID.String(),
		Blockchain:    domain.BlockchainSolana,
		WalletAddress: address,
	})
	require.NoError(t, err)
}

func TestRegisterCustomerWallet(t *testing.T) {
	tm := setupTestProcessor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	customerID := uuid.New()
	address := "0x00000000219ab540356cbb839cbe05303d7705fa"

	tm.store.
		EXPECT().
		UpsertCustomerWallet(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, wallet *schema.CustomerWallet) error {
			assert.Equal(t, customerID, wallet.CustomerID)
			assert.Equal(t, domain.BlockchainPolygon, wallet.Blockchain)
			assert.Equal(t, address, wallet.Address)
			return nil
		})

	err := tm.processor.Handle(ctx, &domain.TreasuryEvent{
		Type:          domain.TreasuryEventCustomerWalletCreated,
		CustomerID:    customerID.String(),
		Blockchain:    domain.BlockchainPolygon,
		WalletAddress: address,
	})
	require.NoError(t, err)
}

func TestRegisterWalletRejectsIncompleteEvent(t *testing.T) {
	tm := setupTestProcessor(t)
	defer tm.ctrl.Finish()

	err := tm.processor.Handle(context.Background(), &domain.TreasuryEvent{
		Type:       domain.TreasuryEventProjectWalletCreated,
		ProjectID:  uuid.New().String(),
		Blockchain: domain.BlockchainSolana,
	})
	assert.ErrorIs(t, err, domain.ErrEntityNotFound)
}

func TestUnknownEventIsIgnored(t *testing.T) {
	tm := setupTestProcessor(t)
	defer tm.ctrl.Finish()

	err := tm.processor.Handle(context.Background(), &domain.TreasuryEvent{
		Type: "SomethingElse",
		Key:  domain.TreasuryEventKey{ID: uuid.New().String()},
	})
	require.NoError(t, err)
}
