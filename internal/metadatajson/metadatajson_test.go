package metadatajson_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/logger"
	"github.com/dropforge/nft-hub/internal/metadatajson"
	"github.com/dropforge/nft-hub/internal/mocks"
	"github.com/dropforge/nft-hub/internal/store/schema"
	"github.com/dropforge/nft-hub/internal/uploads"
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

func validDocument() metadatajson.Document {
	return metadatajson.Document{
		Name:        "Genesis",
		Symbol:      "GEN",
		Description: "first item",
		Image:       "https://assets.example.com/genesis.png",
	}
}

func TestValidate(t *testing.T) {
	t.Run("accepts a well formed document", func(t *testing.T) {
		assert.NoError(t, metadatajson.Validate(domain.BlockchainSolana, validDocument()))
	})

	t.Run("rejects a relative image url", func(t *testing.T) {
		doc := validDocument()
		doc.Image = "/genesis.png"
		assert.ErrorIs(t, metadatajson.Validate(domain.BlockchainSolana, doc), domain.ErrInvalidURL)
	})

	t.Run("rejects a bad animation url", func(t *testing.T) {
		doc := validDocument()
		bad := "not a url"
		doc.AnimationURL = &bad
		assert.ErrorIs(t, metadatajson.Validate(domain.BlockchainSolana, doc), domain.ErrInvalidURL)
	})

	t.Run("rejects a bad file uri", func(t *testing.T) {
		doc := validDocument()
		doc.Files = []metadatajson.File{{URI: "genesis.glb"}}
		assert.ErrorIs(t, metadatajson.Validate(domain.BlockchainSolana, doc), domain.ErrInvalidURL)
	})

	t.Run("solana caps the name at 32 bytes", func(t *testing.T) {
		doc := validDocument()
		doc.Name = strings.Repeat("x", 33)
		assert.ErrorIs(t, metadatajson.Validate(domain.BlockchainSolana, doc), domain.ErrNameTooLong)
	})

	t.Run("solana caps the symbol at 10 bytes", func(t *testing.T) {
		doc := validDocument()
		doc.Symbol = strings.Repeat("x", 11)
		assert.ErrorIs(t, metadatajson.Validate(domain.BlockchainSolana, doc), domain.ErrSymbolTooLong)
	})

	t.Run("polygon has no name cap", func(t *testing.T) {
		doc := validDocument()
		doc.Name = strings.Repeat("x", 64)
		assert.NoError(t, metadatajson.Validate(domain.BlockchainPolygon, doc))
	})
}

func TestRows(t *testing.T) {
	id := uuid.New()
	fileType := "model/gltf-binary"
	doc := validDocument()
	doc.Attributes = []metadatajson.Attribute{{TraitType: "Background", Value: "Blue"}}
	doc.Files = []metadatajson.File{{URI: "https://assets.example.com/genesis.glb", FileType: &fileType}}

	row := metadatajson.Rows(id, doc)
	assert.Equal(t, id, row.ID)
	assert.Equal(t, doc.Name, row.Name)
	require.Len(t, row.Attributes, 1)
	assert.Equal(t, id, row.Attributes[0].MetadataJsonID)
	assert.Equal(t, "Background", row.Attributes[0].TraitType)
	require.Len(t, row.Files, 1)
	assert.Equal(t, id, row.Files[0].MetadataJsonID)
	assert.Equal(t, &fileType, row.Files[0].FileType)
}

func TestContinuationSurvivesTheJobRow(t *testing.T) {
	cont := metadatajson.Continuation{
		Caller:         metadatajson.CallerQueueMintToDrop,
		EntityID:       uuid.New(),
		OrganizationID: uuid.New(),
		UserID:         uuid.New(),
		Balance:        42,
		Recipient:      "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T",
		DropID:         uuid.New(),
		Retry:          true,
	}

	raw, err := cont.Marshal()
	require.NoError(t, err)

	parsed, err := metadatajson.ParseContinuation(&schema.MetadataJsonJob{
		ID:           7,
		JobType:      schema.MetadataJsonJobUpload,
		Continuation: raw,
	})
	require.NoError(t, err)
	assert.Equal(t, cont, *parsed)
}

func TestParseContinuationRejectsEmptyColumn(t *testing.T) {
	_, err := metadatajson.ParseContinuation(&schema.MetadataJsonJob{ID: 9})
	assert.Error(t, err)
}

func TestEnqueueUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	uploader := mocks.NewMockUploadClient(ctrl)
	redis := mocks.NewMockRedisClient(ctrl)
	runner := metadatajson.NewRunner(st, uploader, nopDispatcher{}, redis, 2)

	ctx := context.Background()
	jsonID := uuid.New()
	cont := metadatajson.Continuation{
		Caller:   metadatajson.CallerCreateCollection,
		EntityID: jsonID,
		UserID:   uuid.New(),
	}

	st.
		EXPECT().
		CreateMetadataJsonJob(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, job *schema.MetadataJsonJob) error {
			assert.Equal(t, schema.MetadataJsonJobUpload, job.JobType)
			require.NotNil(t, job.MetadataJsonID)
			assert.Equal(t, jsonID, *job.MetadataJsonID)

			parsed, err := metadatajson.ParseContinuation(job)
			require.NoError(t, err)
			assert.Equal(t, cont, *parsed)
			return nil
		})
	redis.EXPECT().Publish(ctx, "metadata_json_jobs:wake", "refresh").Return(nil)

	err := runner.EnqueueUpload(ctx, &schema.MetadataJson{ID: jsonID}, cont)
	require.NoError(t, err)
}

type nopDispatcher struct{}

func (nopDispatcher) Dispatch(context.Context, *metadatajson.Continuation, *uploads.Result) error {
	return nil
}
