// Code generated by MockGen. DO NOT EDIT.
// Source: store.go

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	time "time"

	domain "github.com/dropforge/nft-hub/internal/domain"
	store "github.com/dropforge/nft-hub/internal/store"
	schema "github.com/dropforge/nft-hub/internal/store/schema"
	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
)

// MockStore is a mock of Store interface.
type MockStore struct {
	ctrl     *gomock.Controller
	recorder *MockStoreMockRecorder
}

// MockStoreMockRecorder is the mock recorder for MockStore.
type MockStoreMockRecorder struct {
	mock *MockStore
}

// NewMockStore creates a new mock instance.
func NewMockStore(ctrl *gomock.Controller) *MockStore {
	mock := &MockStore{ctrl: ctrl}
	mock.recorder = &MockStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStore) EXPECT() *MockStoreMockRecorder {
	return m.recorder
}

// CreateCollection mocks base method.
func (m *MockStore) CreateCollection(ctx context.Context, collection *schema.Collection, creators []schema.Creator, json *schema.MetadataJson) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCollection", ctx, collection, creators, json)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateCollection indicates an expected call of CreateCollection.
func (mr *MockStoreMockRecorder) CreateCollection(ctx, collection, creators, json interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCollection", reflect.TypeOf((*MockStore)(nil).CreateCollection), ctx, collection, creators, json)
}

// CreateDrop mocks base method.
func (m *MockStore) CreateDrop(ctx context.Context, collection *schema.Collection, drop *schema.Drop, creators []schema.Creator, json *schema.MetadataJson) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateDrop", ctx, collection, drop, creators, json)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateDrop indicates an expected call of CreateDrop.
func (mr *MockStoreMockRecorder) CreateDrop(ctx, collection, drop, creators, json interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateDrop", reflect.TypeOf((*MockStore)(nil).CreateDrop), ctx, collection, drop, creators, json)
}

// CreateMetadataJsonJob mocks base method.
func (m *MockStore) CreateMetadataJsonJob(ctx context.Context, job *schema.MetadataJsonJob) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateMetadataJsonJob", ctx, job)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateMetadataJsonJob indicates an expected call of CreateMetadataJsonJob.
func (mr *MockStoreMockRecorder) CreateMetadataJsonJob(ctx, job interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateMetadataJsonJob", reflect.TypeOf((*MockStore)(nil).CreateMetadataJsonJob), ctx, job)
}

// CreateMint mocks base method.
func (m *MockStore) CreateMint(ctx context.Context, mint *schema.CollectionMint, creators []schema.MintCreator, json *schema.MetadataJson, history *schema.MintHistory) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateMint", ctx, mint, creators, json, history)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateMint indicates an expected call of CreateMint.
func (mr *MockStoreMockRecorder) CreateMint(ctx, mint, creators, json, history interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateMint", reflect.TypeOf((*MockStore)(nil).CreateMint), ctx, mint, creators, json, history)
}

// CreateTransfer mocks base method.
func (m *MockStore) CreateTransfer(ctx context.Context, transfer *schema.NftTransfer) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTransfer", ctx, transfer)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateTransfer indicates an expected call of CreateTransfer.
func (mr *MockStoreMockRecorder) CreateTransfer(ctx, transfer interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTransfer", reflect.TypeOf((*MockStore)(nil).CreateTransfer), ctx, transfer)
}

// CreateUpdateHistory mocks base method.
func (m *MockStore) CreateUpdateHistory(ctx context.Context, history *schema.UpdateHistory) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateUpdateHistory", ctx, history)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateUpdateHistory indicates an expected call of CreateUpdateHistory.
func (mr *MockStoreMockRecorder) CreateUpdateHistory(ctx, history interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateUpdateHistory", reflect.TypeOf((*MockStore)(nil).CreateUpdateHistory), ctx, history)
}

// FinalizeTransfer mocks base method.
func (m *MockStore) FinalizeTransfer(ctx context.Context, transferID uuid.UUID, signature string, newOwner *string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FinalizeTransfer", ctx, transferID, signature, newOwner)
	ret0, _ := ret[0].(error)
	return ret0
}

// FinalizeTransfer indicates an expected call of FinalizeTransfer.
func (mr *MockStoreMockRecorder) FinalizeTransfer(ctx, transferID, signature, newOwner interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FinalizeTransfer", reflect.TypeOf((*MockStore)(nil).FinalizeTransfer), ctx, transferID, signature, newOwner)
}

// GetAttributesByMetadataJsonIDs mocks base method.
func (m *MockStore) GetAttributesByMetadataJsonIDs(ctx context.Context, jsonIDs []uuid.UUID) ([]schema.MetadataJsonAttribute, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAttributesByMetadataJsonIDs", ctx, jsonIDs)
	ret0, _ := ret[0].([]schema.MetadataJsonAttribute)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAttributesByMetadataJsonIDs indicates an expected call of GetAttributesByMetadataJsonIDs.
func (mr *MockStoreMockRecorder) GetAttributesByMetadataJsonIDs(ctx, jsonIDs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAttributesByMetadataJsonIDs", reflect.TypeOf((*MockStore)(nil).GetAttributesByMetadataJsonIDs), ctx, jsonIDs)
}

// GetCollectionByID mocks base method.
func (m *MockStore) GetCollectionByID(ctx context.Context, id uuid.UUID) (*schema.Collection, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCollectionByID", ctx, id)
	ret0, _ := ret[0].(*schema.Collection)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCollectionByID indicates an expected call of GetCollectionByID.
func (mr *MockStoreMockRecorder) GetCollectionByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCollectionByID", reflect.TypeOf((*MockStore)(nil).GetCollectionByID), ctx, id)
}

// GetCollectionsByIDs mocks base method.
func (m *MockStore) GetCollectionsByIDs(ctx context.Context, ids []uuid.UUID) ([]schema.Collection, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCollectionsByIDs", ctx, ids)
	ret0, _ := ret[0].([]schema.Collection)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCollectionsByIDs indicates an expected call of GetCollectionsByIDs.
func (mr *MockStoreMockRecorder) GetCollectionsByIDs(ctx, ids interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCollectionsByIDs", reflect.TypeOf((*MockStore)(nil).GetCollectionsByIDs), ctx, ids)
}

// GetCollectionsByProjectIDs mocks base method.
func (m *MockStore) GetCollectionsByProjectIDs(ctx context.Context, projectIDs []uuid.UUID, page store.Page) ([]schema.Collection, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCollectionsByProjectIDs", ctx, projectIDs, page)
	ret0, _ := ret[0].([]schema.Collection)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCollectionsByProjectIDs indicates an expected call of GetCollectionsByProjectIDs.
func (mr *MockStoreMockRecorder) GetCollectionsByProjectIDs(ctx, projectIDs, page interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCollectionsByProjectIDs", reflect.TypeOf((*MockStore)(nil).GetCollectionsByProjectIDs), ctx, projectIDs, page)
}

// GetCreatorsByCollectionIDs mocks base method.
func (m *MockStore) GetCreatorsByCollectionIDs(ctx context.Context, collectionIDs []uuid.UUID) ([]schema.Creator, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCreatorsByCollectionIDs", ctx, collectionIDs)
	ret0, _ := ret[0].([]schema.Creator)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCreatorsByCollectionIDs indicates an expected call of GetCreatorsByCollectionIDs.
func (mr *MockStoreMockRecorder) GetCreatorsByCollectionIDs(ctx, collectionIDs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCreatorsByCollectionIDs", reflect.TypeOf((*MockStore)(nil).GetCreatorsByCollectionIDs), ctx, collectionIDs)
}

// GetCustomerWalletByAddress mocks base method.
func (m *MockStore) GetCustomerWalletByAddress(ctx context.Context, address string) (*schema.CustomerWallet, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCustomerWalletByAddress", ctx, address)
	ret0, _ := ret[0].(*schema.CustomerWallet)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCustomerWalletByAddress indicates an expected call of GetCustomerWalletByAddress.
func (mr *MockStoreMockRecorder) GetCustomerWalletByAddress(ctx, address interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCustomerWalletByAddress", reflect.TypeOf((*MockStore)(nil).GetCustomerWalletByAddress), ctx, address)
}

// GetCustomerWalletsByCustomerIDs mocks base method.
func (m *MockStore) GetCustomerWalletsByCustomerIDs(ctx context.Context, customerIDs []uuid.UUID) ([]schema.CustomerWallet, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCustomerWalletsByCustomerIDs", ctx, customerIDs)
	ret0, _ := ret[0].([]schema.CustomerWallet)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCustomerWalletsByCustomerIDs indicates an expected call of GetCustomerWalletsByCustomerIDs.
func (mr *MockStoreMockRecorder) GetCustomerWalletsByCustomerIDs(ctx, customerIDs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCustomerWalletsByCustomerIDs", reflect.TypeOf((*MockStore)(nil).GetCustomerWalletsByCustomerIDs), ctx, customerIDs)
}

// GetDropByID mocks base method.
func (m *MockStore) GetDropByID(ctx context.Context, id uuid.UUID) (*schema.Drop, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDropByID", ctx, id)
	ret0, _ := ret[0].(*schema.Drop)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDropByID indicates an expected call of GetDropByID.
func (mr *MockStoreMockRecorder) GetDropByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDropByID", reflect.TypeOf((*MockStore)(nil).GetDropByID), ctx, id)
}

// GetDropsByIDs mocks base method.
func (m *MockStore) GetDropsByIDs(ctx context.Context, ids []uuid.UUID) ([]schema.Drop, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDropsByIDs", ctx, ids)
	ret0, _ := ret[0].([]schema.Drop)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDropsByIDs indicates an expected call of GetDropsByIDs.
func (mr *MockStoreMockRecorder) GetDropsByIDs(ctx, ids interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDropsByIDs", reflect.TypeOf((*MockStore)(nil).GetDropsByIDs), ctx, ids)
}

// GetDropsByProjectIDs mocks base method.
func (m *MockStore) GetDropsByProjectIDs(ctx context.Context, projectIDs []uuid.UUID, page store.Page) ([]schema.Drop, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDropsByProjectIDs", ctx, projectIDs, page)
	ret0, _ := ret[0].([]schema.Drop)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDropsByProjectIDs indicates an expected call of GetDropsByProjectIDs.
func (mr *MockStoreMockRecorder) GetDropsByProjectIDs(ctx, projectIDs, page interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDropsByProjectIDs", reflect.TypeOf((*MockStore)(nil).GetDropsByProjectIDs), ctx, projectIDs, page)
}

// GetFilesByMetadataJsonIDs mocks base method.
func (m *MockStore) GetFilesByMetadataJsonIDs(ctx context.Context, jsonIDs []uuid.UUID) ([]schema.MetadataJsonFile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetFilesByMetadataJsonIDs", ctx, jsonIDs)
	ret0, _ := ret[0].([]schema.MetadataJsonFile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetFilesByMetadataJsonIDs indicates an expected call of GetFilesByMetadataJsonIDs.
func (mr *MockStoreMockRecorder) GetFilesByMetadataJsonIDs(ctx, jsonIDs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetFilesByMetadataJsonIDs", reflect.TypeOf((*MockStore)(nil).GetFilesByMetadataJsonIDs), ctx, jsonIDs)
}

// GetHoldersByCollectionIDs mocks base method.
func (m *MockStore) GetHoldersByCollectionIDs(ctx context.Context, collectionIDs []uuid.UUID) ([]store.HolderRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetHoldersByCollectionIDs", ctx, collectionIDs)
	ret0, _ := ret[0].([]store.HolderRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetHoldersByCollectionIDs indicates an expected call of GetHoldersByCollectionIDs.
func (mr *MockStoreMockRecorder) GetHoldersByCollectionIDs(ctx, collectionIDs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHoldersByCollectionIDs", reflect.TypeOf((*MockStore)(nil).GetHoldersByCollectionIDs), ctx, collectionIDs)
}

// GetLatestMintHistory mocks base method.
func (m *MockStore) GetLatestMintHistory(ctx context.Context, mintID uuid.UUID) (*schema.MintHistory, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetLatestMintHistory", ctx, mintID)
	ret0, _ := ret[0].(*schema.MintHistory)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetLatestMintHistory indicates an expected call of GetLatestMintHistory.
func (mr *MockStoreMockRecorder) GetLatestMintHistory(ctx, mintID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLatestMintHistory", reflect.TypeOf((*MockStore)(nil).GetLatestMintHistory), ctx, mintID)
}

// GetMetadataJsonByID mocks base method.
func (m *MockStore) GetMetadataJsonByID(ctx context.Context, id uuid.UUID) (*schema.MetadataJson, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMetadataJsonByID", ctx, id)
	ret0, _ := ret[0].(*schema.MetadataJson)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMetadataJsonByID indicates an expected call of GetMetadataJsonByID.
func (mr *MockStoreMockRecorder) GetMetadataJsonByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMetadataJsonByID", reflect.TypeOf((*MockStore)(nil).GetMetadataJsonByID), ctx, id)
}

// GetMetadataJsonsByIDs mocks base method.
func (m *MockStore) GetMetadataJsonsByIDs(ctx context.Context, ids []uuid.UUID) ([]schema.MetadataJson, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMetadataJsonsByIDs", ctx, ids)
	ret0, _ := ret[0].([]schema.MetadataJson)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMetadataJsonsByIDs indicates an expected call of GetMetadataJsonsByIDs.
func (mr *MockStoreMockRecorder) GetMetadataJsonsByIDs(ctx, ids interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMetadataJsonsByIDs", reflect.TypeOf((*MockStore)(nil).GetMetadataJsonsByIDs), ctx, ids)
}

// GetMintByID mocks base method.
func (m *MockStore) GetMintByID(ctx context.Context, id uuid.UUID) (*schema.CollectionMint, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMintByID", ctx, id)
	ret0, _ := ret[0].(*schema.CollectionMint)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMintByID indicates an expected call of GetMintByID.
func (mr *MockStoreMockRecorder) GetMintByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMintByID", reflect.TypeOf((*MockStore)(nil).GetMintByID), ctx, id)
}

// GetMintCreatorsByMintIDs mocks base method.
func (m *MockStore) GetMintCreatorsByMintIDs(ctx context.Context, mintIDs []uuid.UUID) ([]schema.MintCreator, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMintCreatorsByMintIDs", ctx, mintIDs)
	ret0, _ := ret[0].([]schema.MintCreator)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMintCreatorsByMintIDs indicates an expected call of GetMintCreatorsByMintIDs.
func (mr *MockStoreMockRecorder) GetMintCreatorsByMintIDs(ctx, mintIDs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMintCreatorsByMintIDs", reflect.TypeOf((*MockStore)(nil).GetMintCreatorsByMintIDs), ctx, mintIDs)
}

// GetMintHistoriesByCollectionIDs mocks base method.
func (m *MockStore) GetMintHistoriesByCollectionIDs(ctx context.Context, collectionIDs []uuid.UUID) ([]schema.MintHistory, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMintHistoriesByCollectionIDs", ctx, collectionIDs)
	ret0, _ := ret[0].([]schema.MintHistory)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMintHistoriesByCollectionIDs indicates an expected call of GetMintHistoriesByCollectionIDs.
func (mr *MockStoreMockRecorder) GetMintHistoriesByCollectionIDs(ctx, collectionIDs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMintHistoriesByCollectionIDs", reflect.TypeOf((*MockStore)(nil).GetMintHistoriesByCollectionIDs), ctx, collectionIDs)
}

// GetMintHistoriesByDropIDs mocks base method.
func (m *MockStore) GetMintHistoriesByDropIDs(ctx context.Context, dropIDs []uuid.UUID) ([]schema.MintHistory, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMintHistoriesByDropIDs", ctx, dropIDs)
	ret0, _ := ret[0].([]schema.MintHistory)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMintHistoriesByDropIDs indicates an expected call of GetMintHistoriesByDropIDs.
func (mr *MockStoreMockRecorder) GetMintHistoriesByDropIDs(ctx, dropIDs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMintHistoriesByDropIDs", reflect.TypeOf((*MockStore)(nil).GetMintHistoriesByDropIDs), ctx, dropIDs)
}

// GetMintsByCollectionIDs mocks base method.
func (m *MockStore) GetMintsByCollectionIDs(ctx context.Context, collectionIDs []uuid.UUID, page store.Page) ([]schema.CollectionMint, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMintsByCollectionIDs", ctx, collectionIDs, page)
	ret0, _ := ret[0].([]schema.CollectionMint)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMintsByCollectionIDs indicates an expected call of GetMintsByCollectionIDs.
func (mr *MockStoreMockRecorder) GetMintsByCollectionIDs(ctx, collectionIDs, page interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMintsByCollectionIDs", reflect.TypeOf((*MockStore)(nil).GetMintsByCollectionIDs), ctx, collectionIDs, page)
}

// GetMintsByIDs mocks base method.
func (m *MockStore) GetMintsByIDs(ctx context.Context, ids []uuid.UUID) ([]schema.CollectionMint, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMintsByIDs", ctx, ids)
	ret0, _ := ret[0].([]schema.CollectionMint)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMintsByIDs indicates an expected call of GetMintsByIDs.
func (mr *MockStoreMockRecorder) GetMintsByIDs(ctx, ids interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMintsByIDs", reflect.TypeOf((*MockStore)(nil).GetMintsByIDs), ctx, ids)
}

// GetMintsByOwners mocks base method.
func (m *MockStore) GetMintsByOwners(ctx context.Context, owners []string, page store.Page) ([]schema.CollectionMint, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMintsByOwners", ctx, owners, page)
	ret0, _ := ret[0].([]schema.CollectionMint)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMintsByOwners indicates an expected call of GetMintsByOwners.
func (mr *MockStoreMockRecorder) GetMintsByOwners(ctx, owners, page interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMintsByOwners", reflect.TypeOf((*MockStore)(nil).GetMintsByOwners), ctx, owners, page)
}

// GetProjectWallet mocks base method.
func (m *MockStore) GetProjectWallet(ctx context.Context, projectID uuid.UUID, blockchain domain.Blockchain) (*schema.ProjectWallet, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProjectWallet", ctx, projectID, blockchain)
	ret0, _ := ret[0].(*schema.ProjectWallet)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProjectWallet indicates an expected call of GetProjectWallet.
func (mr *MockStoreMockRecorder) GetProjectWallet(ctx, projectID, blockchain interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProjectWallet", reflect.TypeOf((*MockStore)(nil).GetProjectWallet), ctx, projectID, blockchain)
}

// GetProjectWalletsByProjectIDs mocks base method.
func (m *MockStore) GetProjectWalletsByProjectIDs(ctx context.Context, projectIDs []uuid.UUID) ([]schema.ProjectWallet, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProjectWalletsByProjectIDs", ctx, projectIDs)
	ret0, _ := ret[0].([]schema.ProjectWallet)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProjectWalletsByProjectIDs indicates an expected call of GetProjectWalletsByProjectIDs.
func (mr *MockStoreMockRecorder) GetProjectWalletsByProjectIDs(ctx, projectIDs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProjectWalletsByProjectIDs", reflect.TypeOf((*MockStore)(nil).GetProjectWalletsByProjectIDs), ctx, projectIDs)
}

// GetQueuedMintsByCollectionIDs mocks base method.
func (m *MockStore) GetQueuedMintsByCollectionIDs(ctx context.Context, collectionIDs []uuid.UUID) ([]schema.CollectionMint, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetQueuedMintsByCollectionIDs", ctx, collectionIDs)
	ret0, _ := ret[0].([]schema.CollectionMint)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetQueuedMintsByCollectionIDs indicates an expected call of GetQueuedMintsByCollectionIDs.
func (mr *MockStoreMockRecorder) GetQueuedMintsByCollectionIDs(ctx, collectionIDs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetQueuedMintsByCollectionIDs", reflect.TypeOf((*MockStore)(nil).GetQueuedMintsByCollectionIDs), ctx, collectionIDs)
}

// GetSwitchHistoriesByMintIDs mocks base method.
func (m *MockStore) GetSwitchHistoriesByMintIDs(ctx context.Context, mintIDs []uuid.UUID) ([]schema.SwitchCollectionHistory, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSwitchHistoriesByMintIDs", ctx, mintIDs)
	ret0, _ := ret[0].([]schema.SwitchCollectionHistory)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSwitchHistoriesByMintIDs indicates an expected call of GetSwitchHistoriesByMintIDs.
func (mr *MockStoreMockRecorder) GetSwitchHistoriesByMintIDs(ctx, mintIDs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSwitchHistoriesByMintIDs", reflect.TypeOf((*MockStore)(nil).GetSwitchHistoriesByMintIDs), ctx, mintIDs)
}

// GetTransferByID mocks base method.
func (m *MockStore) GetTransferByID(ctx context.Context, id uuid.UUID) (*schema.NftTransfer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTransferByID", ctx, id)
	ret0, _ := ret[0].(*schema.NftTransfer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTransferByID indicates an expected call of GetTransferByID.
func (mr *MockStoreMockRecorder) GetTransferByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTransferByID", reflect.TypeOf((*MockStore)(nil).GetTransferByID), ctx, id)
}

// GetTransfersByMintIDs mocks base method.
func (m *MockStore) GetTransfersByMintIDs(ctx context.Context, mintIDs []uuid.UUID) ([]schema.NftTransfer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTransfersByMintIDs", ctx, mintIDs)
	ret0, _ := ret[0].([]schema.NftTransfer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTransfersByMintIDs indicates an expected call of GetTransfersByMintIDs.
func (mr *MockStoreMockRecorder) GetTransfersByMintIDs(ctx, mintIDs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTransfersByMintIDs", reflect.TypeOf((*MockStore)(nil).GetTransfersByMintIDs), ctx, mintIDs)
}

// GetUnstartedJobs mocks base method.
func (m *MockStore) GetUnstartedJobs(ctx context.Context, limit int) ([]schema.MetadataJsonJob, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUnstartedJobs", ctx, limit)
	ret0, _ := ret[0].([]schema.MetadataJsonJob)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUnstartedJobs indicates an expected call of GetUnstartedJobs.
func (mr *MockStoreMockRecorder) GetUnstartedJobs(ctx, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUnstartedJobs", reflect.TypeOf((*MockStore)(nil).GetUnstartedJobs), ctx, limit)
}

// GetUpdateHistoriesByMintIDs mocks base method.
func (m *MockStore) GetUpdateHistoriesByMintIDs(ctx context.Context, mintIDs []uuid.UUID) ([]schema.UpdateHistory, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUpdateHistoriesByMintIDs", ctx, mintIDs)
	ret0, _ := ret[0].([]schema.UpdateHistory)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUpdateHistoriesByMintIDs indicates an expected call of GetUpdateHistoriesByMintIDs.
func (mr *MockStoreMockRecorder) GetUpdateHistoriesByMintIDs(ctx, mintIDs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUpdateHistoriesByMintIDs", reflect.TypeOf((*MockStore)(nil).GetUpdateHistoriesByMintIDs), ctx, mintIDs)
}

// MarkJobFailed mocks base method.
func (m *MockStore) MarkJobFailed(ctx context.Context, jobID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkJobFailed", ctx, jobID)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkJobFailed indicates an expected call of MarkJobFailed.
func (mr *MockStoreMockRecorder) MarkJobFailed(ctx, jobID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkJobFailed", reflect.TypeOf((*MockStore)(nil).MarkJobFailed), ctx, jobID)
}

// PopQueuedMint mocks base method.
func (m *MockStore) PopQueuedMint(ctx context.Context, collectionID uuid.UUID) (*schema.CollectionMint, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PopQueuedMint", ctx, collectionID)
	ret0, _ := ret[0].(*schema.CollectionMint)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PopQueuedMint indicates an expected call of PopQueuedMint.
func (mr *MockStoreMockRecorder) PopQueuedMint(ctx, collectionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PopQueuedMint", reflect.TypeOf((*MockStore)(nil).PopQueuedMint), ctx, collectionID)
}

// ReplaceCollectionCreators mocks base method.
func (m *MockStore) ReplaceCollectionCreators(ctx context.Context, collectionID uuid.UUID, creators []schema.Creator) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReplaceCollectionCreators", ctx, collectionID, creators)
	ret0, _ := ret[0].(error)
	return ret0
}

// ReplaceCollectionCreators indicates an expected call of ReplaceCollectionCreators.
func (mr *MockStoreMockRecorder) ReplaceCollectionCreators(ctx, collectionID, creators interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReplaceCollectionCreators", reflect.TypeOf((*MockStore)(nil).ReplaceCollectionCreators), ctx, collectionID, creators)
}

// ReplaceMetadataJson mocks base method.
func (m *MockStore) ReplaceMetadataJson(ctx context.Context, json *schema.MetadataJson) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReplaceMetadataJson", ctx, json)
	ret0, _ := ret[0].(error)
	return ret0
}

// ReplaceMetadataJson indicates an expected call of ReplaceMetadataJson.
func (mr *MockStoreMockRecorder) ReplaceMetadataJson(ctx, json interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReplaceMetadataJson", reflect.TypeOf((*MockStore)(nil).ReplaceMetadataJson), ctx, json)
}

// ReplaceMintCreators mocks base method.
func (m *MockStore) ReplaceMintCreators(ctx context.Context, mintID uuid.UUID, creators []schema.MintCreator) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReplaceMintCreators", ctx, mintID, creators)
	ret0, _ := ret[0].(error)
	return ret0
}

// ReplaceMintCreators indicates an expected call of ReplaceMintCreators.
func (mr *MockStoreMockRecorder) ReplaceMintCreators(ctx, mintID, creators interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReplaceMintCreators", reflect.TypeOf((*MockStore)(nil).ReplaceMintCreators), ctx, mintID, creators)
}

// SetCollectionDeduction mocks base method.
func (m *MockStore) SetCollectionDeduction(ctx context.Context, collectionID, deductionID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetCollectionDeduction", ctx, collectionID, deductionID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetCollectionDeduction indicates an expected call of SetCollectionDeduction.
func (mr *MockStoreMockRecorder) SetCollectionDeduction(ctx, collectionID, deductionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetCollectionDeduction", reflect.TypeOf((*MockStore)(nil).SetCollectionDeduction), ctx, collectionID, deductionID)
}

// SetDropPause mocks base method.
func (m *MockStore) SetDropPause(ctx context.Context, dropID uuid.UUID, pausedAt *time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetDropPause", ctx, dropID, pausedAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetDropPause indicates an expected call of SetDropPause.
func (mr *MockStoreMockRecorder) SetDropPause(ctx, dropID, pausedAt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetDropPause", reflect.TypeOf((*MockStore)(nil).SetDropPause), ctx, dropID, pausedAt)
}

// SetDropShutdown mocks base method.
func (m *MockStore) SetDropShutdown(ctx context.Context, dropID uuid.UUID, shutdownAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetDropShutdown", ctx, dropID, shutdownAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetDropShutdown indicates an expected call of SetDropShutdown.
func (mr *MockStoreMockRecorder) SetDropShutdown(ctx, dropID, shutdownAt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetDropShutdown", reflect.TypeOf((*MockStore)(nil).SetDropShutdown), ctx, dropID, shutdownAt)
}

// SetJobTrackingStatus mocks base method.
func (m *MockStore) SetJobTrackingStatus(ctx context.Context, jobID int64, status schema.JobTrackingStatus) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetJobTrackingStatus", ctx, jobID, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetJobTrackingStatus indicates an expected call of SetJobTrackingStatus.
func (mr *MockStoreMockRecorder) SetJobTrackingStatus(ctx, jobID, status interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetJobTrackingStatus", reflect.TypeOf((*MockStore)(nil).SetJobTrackingStatus), ctx, jobID, status)
}

// SetMetadataUploadResult mocks base method.
func (m *MockStore) SetMetadataUploadResult(ctx context.Context, metadataJsonID uuid.UUID, uri, identifier string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetMetadataUploadResult", ctx, metadataJsonID, uri, identifier)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetMetadataUploadResult indicates an expected call of SetMetadataUploadResult.
func (mr *MockStoreMockRecorder) SetMetadataUploadResult(ctx, metadataJsonID, uri, identifier interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetMetadataUploadResult", reflect.TypeOf((*MockStore)(nil).SetMetadataUploadResult), ctx, metadataJsonID, uri, identifier)
}

// SetMintDeduction mocks base method.
func (m *MockStore) SetMintDeduction(ctx context.Context, mintID, deductionID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetMintDeduction", ctx, mintID, deductionID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetMintDeduction indicates an expected call of SetMintDeduction.
func (mr *MockStoreMockRecorder) SetMintDeduction(ctx, mintID, deductionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetMintDeduction", reflect.TypeOf((*MockStore)(nil).SetMintDeduction), ctx, mintID, deductionID)
}

// SetTransferDeduction mocks base method.
func (m *MockStore) SetTransferDeduction(ctx context.Context, transferID, deductionID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetTransferDeduction", ctx, transferID, deductionID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetTransferDeduction indicates an expected call of SetTransferDeduction.
func (mr *MockStoreMockRecorder) SetTransferDeduction(ctx, transferID, deductionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetTransferDeduction", reflect.TypeOf((*MockStore)(nil).SetTransferDeduction), ctx, transferID, deductionID)
}

// SwitchMintCollection mocks base method.
func (m *MockStore) SwitchMintCollection(ctx context.Context, mintID, newCollectionID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SwitchMintCollection", ctx, mintID, newCollectionID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SwitchMintCollection indicates an expected call of SwitchMintCollection.
func (mr *MockStoreMockRecorder) SwitchMintCollection(ctx, mintID, newCollectionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SwitchMintCollection", reflect.TypeOf((*MockStore)(nil).SwitchMintCollection), ctx, mintID, newCollectionID)
}

// TransitionCollection mocks base method.
func (m *MockStore) TransitionCollection(ctx context.Context, input store.FinalizeInput) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TransitionCollection", ctx, input)
	ret0, _ := ret[0].(error)
	return ret0
}

// TransitionCollection indicates an expected call of TransitionCollection.
func (mr *MockStoreMockRecorder) TransitionCollection(ctx, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TransitionCollection", reflect.TypeOf((*MockStore)(nil).TransitionCollection), ctx, input)
}

// TransitionDrop mocks base method.
func (m *MockStore) TransitionDrop(ctx context.Context, input store.FinalizeInput) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TransitionDrop", ctx, input)
	ret0, _ := ret[0].(error)
	return ret0
}

// TransitionDrop indicates an expected call of TransitionDrop.
func (mr *MockStoreMockRecorder) TransitionDrop(ctx, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TransitionDrop", reflect.TypeOf((*MockStore)(nil).TransitionDrop), ctx, input)
}

// TransitionMint mocks base method.
func (m *MockStore) TransitionMint(ctx context.Context, input store.FinalizeInput) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TransitionMint", ctx, input)
	ret0, _ := ret[0].(error)
	return ret0
}

// TransitionMint indicates an expected call of TransitionMint.
func (mr *MockStoreMockRecorder) TransitionMint(ctx, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TransitionMint", reflect.TypeOf((*MockStore)(nil).TransitionMint), ctx, input)
}

// UpdateCollectionSupply mocks base method.
func (m *MockStore) UpdateCollectionSupply(ctx context.Context, collectionID uuid.UUID, supply *int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateCollectionSupply", ctx, collectionID, supply)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateCollectionSupply indicates an expected call of UpdateCollectionSupply.
func (mr *MockStoreMockRecorder) UpdateCollectionSupply(ctx, collectionID, supply interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateCollectionSupply", reflect.TypeOf((*MockStore)(nil).UpdateCollectionSupply), ctx, collectionID, supply)
}

// UpdateDropSchedule mocks base method.
func (m *MockStore) UpdateDropSchedule(ctx context.Context, dropID uuid.UUID, start, end *time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateDropSchedule", ctx, dropID, start, end)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateDropSchedule indicates an expected call of UpdateDropSchedule.
func (mr *MockStoreMockRecorder) UpdateDropSchedule(ctx, dropID, start, end interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateDropSchedule", reflect.TypeOf((*MockStore)(nil).UpdateDropSchedule), ctx, dropID, start, end)
}

// UpdateMintHistoryStatus mocks base method.
func (m *MockStore) UpdateMintHistoryStatus(ctx context.Context, mintID uuid.UUID, status domain.CreationStatus, signature *string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateMintHistoryStatus", ctx, mintID, status, signature)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateMintHistoryStatus indicates an expected call of UpdateMintHistoryStatus.
func (mr *MockStoreMockRecorder) UpdateMintHistoryStatus(ctx, mintID, status, signature interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateMintHistoryStatus", reflect.TypeOf((*MockStore)(nil).UpdateMintHistoryStatus), ctx, mintID, status, signature)
}

// UpdateUpdateHistoryStatus mocks base method.
func (m *MockStore) UpdateUpdateHistoryStatus(ctx context.Context, mintID uuid.UUID, status domain.CreationStatus, signature *string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateUpdateHistoryStatus", ctx, mintID, status, signature)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateUpdateHistoryStatus indicates an expected call of UpdateUpdateHistoryStatus.
func (mr *MockStoreMockRecorder) UpdateUpdateHistoryStatus(ctx, mintID, status, signature interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateUpdateHistoryStatus", reflect.TypeOf((*MockStore)(nil).UpdateUpdateHistoryStatus), ctx, mintID, status, signature)
}

// UpsertCustomerWallet mocks base method.
func (m *MockStore) UpsertCustomerWallet(ctx context.Context, wallet *schema.CustomerWallet) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertCustomerWallet", ctx, wallet)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertCustomerWallet indicates an expected call of UpsertCustomerWallet.
func (mr *MockStoreMockRecorder) UpsertCustomerWallet(ctx, wallet interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertCustomerWallet", reflect.TypeOf((*MockStore)(nil).UpsertCustomerWallet), ctx, wallet)
}

// UpsertProjectWallet mocks base method.
func (m *MockStore) UpsertProjectWallet(ctx context.Context, wallet *schema.ProjectWallet) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertProjectWallet", ctx, wallet)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertProjectWallet indicates an expected call of UpsertProjectWallet.
func (mr *MockStoreMockRecorder) UpsertProjectWallet(ctx, wallet interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertProjectWallet", reflect.TypeOf((*MockStore)(nil).UpsertProjectWallet), ctx, wallet)
}
