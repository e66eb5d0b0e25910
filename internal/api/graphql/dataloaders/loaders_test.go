package dataloaders_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropforge/nft-hub/internal/api/graphql/dataloaders"
	"github.com/dropforge/nft-hub/internal/mocks"
	"github.com/dropforge/nft-hub/internal/store"
	"github.com/dropforge/nft-hub/internal/store/schema"
)

func TestPointLoaderBatchesIntoOneQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	ctx := context.Background()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	st.
		EXPECT().
		GetCollectionsByIDs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, keys []uuid.UUID) ([]schema.Collection, error) {
			assert.ElementsMatch(t, ids, keys)
			// the middle id is missing on purpose
			return []schema.Collection{{ID: ids[0]}, {ID: ids[2]}}, nil
		}).
		Times(1)

	loaders := dataloaders.New(st)
	thunks := make([]func() (*schema.Collection, error), len(ids))
	for i, id := range ids {
		thunks[i] = loaders.CollectionByID.Load(ctx, id)
	}

	first, err := thunks[0]()
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, ids[0], first.ID)

	missing, err := thunks[1]()
	require.NoError(t, err)
	assert.Nil(t, missing)

	third, err := thunks[2]()
	require.NoError(t, err)
	require.NotNil(t, third)
	assert.Equal(t, ids[2], third.ID)
}

func TestGroupLoaderGroupsRowsByKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	ctx := context.Background()

	first, second := uuid.New(), uuid.New()
	st.
		EXPECT().
		GetCreatorsByCollectionIDs(gomock.Any(), gomock.Any()).
		Return([]schema.Creator{
			{CollectionID: first, Address: "a"},
			{CollectionID: first, Address: "b"},
			{CollectionID: second, Address: "c"},
		}, nil).
		Times(1)

	loaders := dataloaders.New(st)
	thunkFirst := loaders.CreatorsByCollectionID.Load(ctx, first)
	thunkSecond := loaders.CreatorsByCollectionID.Load(ctx, second)

	creators, err := thunkFirst()
	require.NoError(t, err)
	assert.Len(t, creators, 2)

	creators, err = thunkSecond()
	require.NoError(t, err)
	assert.Len(t, creators, 1)
	assert.Equal(t, "c", creators[0].Address)
}

func TestPagedLoaderGroupsByPageBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	ctx := context.Background()

	projectA, projectB := uuid.New(), uuid.New()

	// both keys share the page bounds, so one query covers them
	st.
		EXPECT().
		GetDropsByProjectIDs(gomock.Any(), gomock.Any(), store.Page{Limit: 10, Offset: 0}).
		DoAndReturn(func(_ context.Context, ids []uuid.UUID, _ store.Page) ([]schema.Drop, error) {
			assert.ElementsMatch(t, []uuid.UUID{projectA, projectB}, ids)
			return []schema.Drop{
				{ID: uuid.New(), ProjectID: projectA},
				{ID: uuid.New(), ProjectID: projectB},
			}, nil
		}).
		Times(1)

	loaders := dataloaders.New(st)
	thunkA := loaders.DropsByProjectID.Load(ctx, dataloaders.PageKey{ID: projectA, Limit: 10})
	thunkB := loaders.DropsByProjectID.Load(ctx, dataloaders.PageKey{ID: projectB, Limit: 10})

	drops, err := thunkA()
	require.NoError(t, err)
	require.Len(t, drops, 1)
	assert.Equal(t, projectA, drops[0].ProjectID)

	drops, err = thunkB()
	require.NoError(t, err)
	require.Len(t, drops, 1)
	assert.Equal(t, projectB, drops[0].ProjectID)
}

func TestOwnerLoaderKeysByNormalizedAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	ctx := context.Background()

	checksummed := "0x00000000219AB540356cBB839Cbe05303d7705Fa"
	normalized := "0x00000000219ab540356cbb839cbe05303d7705fa"

	st.
		EXPECT().
		GetMintsByOwners(gomock.Any(), []string{normalized}, gomock.Any()).
		Return([]schema.CollectionMint{
			{ID: uuid.New(), Owner: &normalized},
		}, nil).
		Times(1)

	loaders := dataloaders.New(st)
	thunk := loaders.MintsByOwner.Load(ctx, dataloaders.NewOwnerKey(checksummed, 10, 0))

	mints, err := thunk()
	require.NoError(t, err)
	assert.Len(t, mints, 1)
}

func TestPointLoaderPropagatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	ctx := context.Background()

	st.
		EXPECT().
		GetMintsByIDs(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	loaders := dataloaders.New(st)
	_, err := loaders.MintByID.Load(ctx, uuid.New())()
	assert.ErrorIs(t, err, assert.AnError)
}

func TestClampFirst(t *testing.T) {
	ten := 10
	zero := 0
	huge := 1000

	assert.Equal(t, dataloaders.MaxPageSize, dataloaders.ClampFirst(nil))
	assert.Equal(t, dataloaders.MaxPageSize, dataloaders.ClampFirst(&zero))
	assert.Equal(t, dataloaders.MaxPageSize, dataloaders.ClampFirst(&huge))
	assert.Equal(t, ten, dataloaders.ClampFirst(&ten))
}
