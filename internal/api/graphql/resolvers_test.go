package graphql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropforge/nft-hub/internal/api/graphql/dataloaders"
	"github.com/dropforge/nft-hub/internal/api/middleware"
	"github.com/dropforge/nft-hub/internal/blockchains"
	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/logger"
	"github.com/dropforge/nft-hub/internal/mocks"
	"github.com/dropforge/nft-hub/internal/mutations"
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

// testResolverMocks bundles the fakes behind a root resolver plus a context
// carrying a fresh loader bundle.
type testResolverMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	clock    *mocks.MockClock
	resolver *Resolver
	ctx      context.Context
}

func setupTestResolver(t *testing.T) *testResolverMocks {
	ctrl := gomock.NewController(t)

	tm := &testResolverMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}
	credits := mocks.NewMockCreditsClient(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	svc := mutations.NewService(tm.store, credits, blockchains.NewRegistry(publisher))
	tm.resolver = NewResolver(tm.store, svc, tm.clock)
	tm.ctx = dataloaders.Inject(context.Background(), tm.store)
	return tm
}

func intp(v int) *int { return &v }

func strp(v string) *string { return &v }

func TestQueryCollectionReadsThroughLoaders(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	id := uuid.New()
	tm.store.EXPECT().
		GetCollectionsByIDs(gomock.Any(), []uuid.UUID{id}).
		Return([]schema.Collection{{ID: id, Blockchain: domain.BlockchainSolana}}, nil)

	got, err := tm.resolver.Query().Collection(tm.ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)

	// unknown ids resolve to null, not an error
	unknown := uuid.New()
	tm.store.EXPECT().
		GetCollectionsByIDs(gomock.Any(), []uuid.UUID{unknown}).
		Return(nil, nil)

	missing, err := tm.resolver.Query().Collection(tm.ctx, unknown)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestQueryCollectionsPaginatesWithCursors(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	projectID := uuid.New()
	rows := []schema.Collection{
		{ID: uuid.New(), ProjectID: projectID},
		{ID: uuid.New(), ProjectID: projectID},
		{ID: uuid.New(), ProjectID: projectID},
	}

	// one extra row is requested to detect the next page
	tm.store.EXPECT().
		GetCollectionsByProjectIDs(gomock.Any(), []uuid.UUID{projectID}, store.Page{Limit: 3, Offset: 0}).
		Return(rows, nil)

	conn, err := tm.resolver.Query().Collections(tm.ctx, projectID, intp(2), nil)
	require.NoError(t, err)
	require.Len(t, conn.Edges, 2)
	assert.True(t, conn.PageInfo.HasNextPage)
	assert.Equal(t, rows[0].ID, conn.Edges[0].Node.ID)
	assert.Equal(t, rows[1].ID, conn.Edges[1].Node.ID)
	require.NotNil(t, conn.PageInfo.EndCursor)
	assert.Equal(t, EncodeCursor(2), *conn.PageInfo.EndCursor)

	tm.store.EXPECT().
		GetCollectionsByProjectIDs(gomock.Any(), []uuid.UUID{projectID}, store.Page{Limit: 3, Offset: 2}).
		Return(rows[2:], nil)

	next, err := tm.resolver.Query().Collections(tm.ctx, projectID, intp(2), conn.PageInfo.EndCursor)
	require.NoError(t, err)
	require.Len(t, next.Edges, 1)
	assert.False(t, next.PageInfo.HasNextPage)
	assert.Equal(t, rows[2].ID, next.Edges[0].Node.ID)
	assert.Equal(t, EncodeCursor(3), next.Edges[0].Cursor)
}

func TestQueryCollectionsRejectsMalformedCursor(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	_, err := tm.resolver.Query().Collections(tm.ctx, uuid.New(), intp(2), strp("not-a-cursor"))
	assert.Error(t, err)
}

func TestDropStatusDerivedFromClock(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(time.Hour)
	collectionID := uuid.New()
	drop := &schema.Drop{
		ID:             uuid.New(),
		CollectionID:   collectionID,
		CreationStatus: domain.CreationStatusCreated,
		StartTime:      &start,
	}

	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().
		GetCollectionsByIDs(gomock.Any(), []uuid.UUID{collectionID}).
		Return([]schema.Collection{{ID: collectionID}}, nil)

	status, err := tm.resolver.Drop().Status(tm.ctx, drop)
	require.NoError(t, err)
	assert.Equal(t, domain.DropStatusScheduled, status)

	// derivation works on a copy; sibling field resolvers may read the
	// drop concurrently
	assert.Nil(t, drop.Collection)

	// past the end time the same drop reads as expired
	end := now.Add(-time.Minute)
	drop.StartTime = nil
	drop.EndTime = &end
	drop.Collection = &schema.Collection{ID: collectionID}

	tm.clock.EXPECT().Now().Return(now)

	status, err = tm.resolver.Drop().Status(tm.ctx, drop)
	require.NoError(t, err)
	assert.Equal(t, domain.DropStatusExpired, status)
}

func TestMutationsRequireIdentity(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	_, err := tm.resolver.Mutation().RetryDrop(tm.ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrIdentityMissing)

	_, err = tm.resolver.Mutation().CreateCollection(tm.ctx, CreateCollectionInput{})
	assert.ErrorIs(t, err, domain.ErrIdentityMissing)
}

func TestPauseDropDelegatesToService(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	ident := mutations.Identity{UserID: uuid.New(), OrganizationID: uuid.New(), Balance: 100}
	ctx := middleware.WithIdentity(tm.ctx, ident)

	dropID := uuid.New()
	drop := &schema.Drop{ID: dropID, Collection: &schema.Collection{ID: uuid.New()}}

	tm.store.EXPECT().GetDropByID(gomock.Any(), dropID).Return(drop, nil)
	tm.store.EXPECT().SetDropPause(gomock.Any(), dropID, gomock.Any()).Return(nil)

	got, err := tm.resolver.Mutation().PauseDrop(ctx, dropID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotNil(t, got.PausedAt)
}
