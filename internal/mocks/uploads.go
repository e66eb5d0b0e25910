// Code generated by MockGen. DO NOT EDIT.
// Source: uploads.go

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	uploads "github.com/dropforge/nft-hub/internal/uploads"
	gomock "github.com/golang/mock/gomock"
)

// MockUploadClient is a mock of Client interface.
type MockUploadClient struct {
	ctrl     *gomock.Controller
	recorder *MockUploadClientMockRecorder
}

// MockUploadClientMockRecorder is the mock recorder for MockUploadClient.
type MockUploadClientMockRecorder struct {
	mock *MockUploadClient
}

// NewMockUploadClient creates a new mock instance.
func NewMockUploadClient(ctrl *gomock.Controller) *MockUploadClient {
	mock := &MockUploadClient{ctrl: ctrl}
	mock.recorder = &MockUploadClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUploadClient) EXPECT() *MockUploadClientMockRecorder {
	return m.recorder
}

// UploadJSON mocks base method.
func (m *MockUploadClient) UploadJSON(ctx context.Context, filename string, document any) (*uploads.Result, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UploadJSON", ctx, filename, document)
	ret0, _ := ret[0].(*uploads.Result)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UploadJSON indicates an expected call of UploadJSON.
func (mr *MockUploadClientMockRecorder) UploadJSON(ctx, filename, document interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UploadJSON", reflect.TypeOf((*MockUploadClient)(nil).UploadJSON), ctx, filename, document)
}
