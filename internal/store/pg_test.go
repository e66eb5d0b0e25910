package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/store/migrations"
	"github.com/dropforge/nft-hub/internal/store/schema"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	var dsn string
	var err error

	if host := os.Getenv("TEST_DB_HOST"); host != "" {
		port := os.Getenv("TEST_DB_PORT")
		if port == "" {
			port = "5432"
		}
		dsn = fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=test_db sslmode=disable", host, port)
	} else {
		pgContainer, err = postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}
		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			os.Exit(1)
		}
	}

	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}

	if err := migrations.Run(testDB); err != nil {
		fmt.Printf("Failed to migrate database: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}
	os.Exit(code)
}

func newTestCollection(t *testing.T, s Store, supply *int64) *schema.Collection {
	t.Helper()
	collection := &schema.Collection{
		ID:                   uuid.New(),
		Blockchain:           domain.BlockchainSolana,
		Supply:               supply,
		ProjectID:            uuid.New(),
		CreationStatus:       domain.CreationStatusPending,
		SellerFeeBasisPoints: 500,
		CreatedBy:            uuid.New(),
	}
	creators := []schema.Creator{{
		CollectionID: collection.ID,
		Address:      "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T",
		Verified:     true,
		Share:        100,
	}}
	json := &schema.MetadataJson{
		ID:     collection.ID,
		Name:   "test collection",
		Symbol: "TEST",
		Image:  "https://example.com/image.png",
		Attributes: []schema.MetadataJsonAttribute{
			{ID: uuid.New(), MetadataJsonID: collection.ID, TraitType: "background", Value: "blue"},
		},
	}
	require.NoError(t, s.CreateCollection(context.Background(), collection, creators, json))
	return collection
}

func TestCreateCollectionRoundTrip(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()

	collection := newTestCollection(t, s, nil)

	got, err := s.GetCollectionByID(ctx, collection.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.CreationStatusPending, got.CreationStatus)
	assert.Len(t, got.Creators, 1)

	json, err := s.GetMetadataJsonByID(ctx, collection.ID)
	require.NoError(t, err)
	require.NotNil(t, json)
	assert.Equal(t, "test collection", json.Name)
	assert.Len(t, json.Attributes, 1)
	assert.Nil(t, json.URI)
}

func TestGetCollectionByIDNotFound(t *testing.T) {
	s := NewPGStore(testDB)

	got, err := s.GetCollectionByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreateMintEnforcesSupply(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()

	supply := int64(1)
	collection := newTestCollection(t, s, &supply)

	mint := &schema.CollectionMint{
		ID:             uuid.New(),
		CollectionID:   collection.ID,
		CreationStatus: domain.CreationStatusPending,
		CreatedBy:      uuid.New(),
		RandomPick:     42,
	}
	require.NoError(t, s.CreateMint(ctx, mint, nil, nil, nil))
	assert.Equal(t, int64(1), mint.Edition)

	second := &schema.CollectionMint{
		ID:             uuid.New(),
		CollectionID:   collection.ID,
		CreationStatus: domain.CreationStatusPending,
		CreatedBy:      uuid.New(),
		RandomPick:     43,
	}
	err := s.CreateMint(ctx, second, nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrSupplyExhausted)
}

func TestUpdateCollectionSupplyRejectsShrinkBelowMints(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()

	supply := int64(5)
	collection := newTestCollection(t, s, &supply)

	for i := 0; i < 2; i++ {
		mint := &schema.CollectionMint{
			ID:             uuid.New(),
			CollectionID:   collection.ID,
			CreationStatus: domain.CreationStatusPending,
			CreatedBy:      uuid.New(),
			RandomPick:     int64(i),
		}
		require.NoError(t, s.CreateMint(ctx, mint, nil, nil, nil))
	}

	tooSmall := int64(1)
	err := s.UpdateCollectionSupply(ctx, collection.ID, &tooSmall)
	assert.ErrorIs(t, err, domain.ErrSupplyBelowMints)

	got, err := s.GetCollectionByID(ctx, collection.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Supply)
	assert.Equal(t, supply, *got.Supply)

	larger := int64(10)
	require.NoError(t, s.UpdateCollectionSupply(ctx, collection.ID, &larger))

	err = s.UpdateCollectionSupply(ctx, uuid.New(), &larger)
	assert.ErrorIs(t, err, domain.ErrEntityNotFound)
}

func TestEVMAddressesLowerCasedOnSave(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()

	collection := newTestCollection(t, s, nil)
	mint := &schema.CollectionMint{
		ID:             uuid.New(),
		CollectionID:   collection.ID,
		CreationStatus: domain.CreationStatusPending,
		CreatedBy:      uuid.New(),
		Edition:        domain.OpenDropEdition,
		RandomPick:     7,
	}
	require.NoError(t, s.CreateMint(ctx, mint, nil, nil, nil))

	transfer := &schema.NftTransfer{
		ID:               uuid.New(),
		CollectionMintID: mint.ID,
		Sender:           "0x00000000219AB540356cBB839Cbe05303d7705Fa",
		Recipient:        "0xDE0B295669a9FD93d5F28D9Ec85E40f4cb697BAe",
	}
	require.NoError(t, s.CreateTransfer(ctx, transfer))

	got, err := s.GetTransferByID(ctx, transfer.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "0x00000000219ab540356cbb839cbe05303d7705fa", got.Sender)
	assert.Equal(t, "0xde0b295669a9fd93d5f28d9ec85e40f4cb697bae", got.Recipient)
}

func TestTransitionEnforcesStateMachine(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()

	collection := newTestCollection(t, s, nil)
	sig := "5wHu1qwD4kF"
	addr := "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"

	err := s.TransitionCollection(ctx, FinalizeInput{
		ID: collection.ID, Status: domain.CreationStatusCreated, Signature: &sig, Address: &addr,
	})
	require.NoError(t, err)

	got, err := s.GetCollectionByID(ctx, collection.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CreationStatusCreated, got.CreationStatus)
	require.NotNil(t, got.Signature)
	assert.Equal(t, sig, *got.Signature)

	// created -> created is not a legal step
	err = s.TransitionCollection(ctx, FinalizeInput{ID: collection.ID, Status: domain.CreationStatusCreated})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	err = s.TransitionCollection(ctx, FinalizeInput{ID: uuid.New(), Status: domain.CreationStatusCreated})
	assert.ErrorIs(t, err, domain.ErrEntityNotFound)
}

func TestSetDeductionIsIdempotent(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()

	collection := newTestCollection(t, s, nil)
	first := uuid.New()
	require.NoError(t, s.SetCollectionDeduction(ctx, collection.ID, first))

	// second write must not overwrite the stored id
	require.NoError(t, s.SetCollectionDeduction(ctx, collection.ID, uuid.New()))

	got, err := s.GetCollectionByID(ctx, collection.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CreditsDeductionID)
	assert.Equal(t, first, *got.CreditsDeductionID)
}

func TestPopQueuedMint(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()

	collection := newTestCollection(t, s, nil)
	for i, pick := range []int64{30, 10, 20} {
		mint := &schema.CollectionMint{
			ID:             uuid.New(),
			CollectionID:   collection.ID,
			CreationStatus: domain.CreationStatusQueued,
			Edition:        domain.OpenDropEdition,
			CreatedBy:      uuid.New(),
			RandomPick:     pick,
		}
		require.NoError(t, s.CreateMint(ctx, mint, nil, nil, nil), "mint %d", i)
	}

	popped, err := s.PopQueuedMint(ctx, collection.ID)
	require.NoError(t, err)
	require.NotNil(t, popped)
	assert.Equal(t, int64(10), popped.RandomPick)
	assert.Equal(t, domain.CreationStatusPending, popped.CreationStatus)

	queued, err := s.GetQueuedMintsByCollectionIDs(ctx, []uuid.UUID{collection.ID})
	require.NoError(t, err)
	assert.Len(t, queued, 2)
}

func TestMetadataJobLifecycle(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()

	jsonID := uuid.New()
	job := &schema.MetadataJsonJob{
		JobType:        schema.MetadataJsonJobUpload,
		MetadataJsonID: &jsonID,
	}
	require.NoError(t, s.CreateMetadataJsonJob(ctx, job))
	require.NotZero(t, job.ID)

	jobs, err := s.GetUnstartedJobs(ctx, 16)
	require.NoError(t, err)
	found := false
	for _, j := range jobs {
		if j.ID == job.ID {
			found = true
		}
	}
	assert.True(t, found)

	require.NoError(t, s.SetJobTrackingStatus(ctx, job.ID, schema.JobTrackingProcessing))
	jobs, err = s.GetUnstartedJobs(ctx, 1000)
	require.NoError(t, err)
	for _, j := range jobs {
		assert.NotEqual(t, job.ID, j.ID)
	}

	require.NoError(t, s.MarkJobFailed(ctx, job.ID))
}

func TestUpsertProjectWallet(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()

	projectID := uuid.New()
	wallet := &schema.ProjectWallet{
		ID:            uuid.New(),
		ProjectID:     projectID,
		Blockchain:    domain.BlockchainPolygon,
		WalletAddress: "0x00000000219AB540356cBB839Cbe05303d7705Fa",
	}
	require.NoError(t, s.UpsertProjectWallet(ctx, wallet))

	got, err := s.GetProjectWallet(ctx, projectID, domain.BlockchainPolygon)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "0x00000000219ab540356cbb839cbe05303d7705fa", got.WalletAddress)

	replacement := &schema.ProjectWallet{
		ID:            uuid.New(),
		ProjectID:     projectID,
		Blockchain:    domain.BlockchainPolygon,
		WalletAddress: "0xDE0B295669a9FD93d5F28D9Ec85E40f4cb697BAe",
	}
	require.NoError(t, s.UpsertProjectWallet(ctx, replacement))

	got, err = s.GetProjectWallet(ctx, projectID, domain.BlockchainPolygon)
	require.NoError(t, err)
	assert.Equal(t, "0xde0b295669a9fd93d5f28d9ec85e40f4cb697bae", got.WalletAddress)
}
