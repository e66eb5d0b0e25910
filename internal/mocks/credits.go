// Code generated by MockGen. DO NOT EDIT.
// Source: credits.go

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	credits "github.com/dropforge/nft-hub/internal/credits"
	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
)

// MockCreditsClient is a mock of Client interface.
type MockCreditsClient struct {
	ctrl     *gomock.Controller
	recorder *MockCreditsClientMockRecorder
}

// MockCreditsClientMockRecorder is the mock recorder for MockCreditsClient.
type MockCreditsClientMockRecorder struct {
	mock *MockCreditsClient
}

// NewMockCreditsClient creates a new mock instance.
func NewMockCreditsClient(ctrl *gomock.Controller) *MockCreditsClient {
	mock := &MockCreditsClient{ctrl: ctrl}
	mock.recorder = &MockCreditsClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCreditsClient) EXPECT() *MockCreditsClientMockRecorder {
	return m.recorder
}

// ConfirmDeduction mocks base method.
func (m *MockCreditsClient) ConfirmDeduction(ctx context.Context, deductionID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ConfirmDeduction", ctx, deductionID)
	ret0, _ := ret[0].(error)
	return ret0
}

// ConfirmDeduction indicates an expected call of ConfirmDeduction.
func (mr *MockCreditsClientMockRecorder) ConfirmDeduction(ctx, deductionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ConfirmDeduction", reflect.TypeOf((*MockCreditsClient)(nil).ConfirmDeduction), ctx, deductionID)
}

// SubmitPendingDeduction mocks base method.
func (m *MockCreditsClient) SubmitPendingDeduction(ctx context.Context, input credits.DeductionInput) (uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SubmitPendingDeduction", ctx, input)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SubmitPendingDeduction indicates an expected call of SubmitPendingDeduction.
func (mr *MockCreditsClientMockRecorder) SubmitPendingDeduction(ctx, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SubmitPendingDeduction", reflect.TypeOf((*MockCreditsClient)(nil).SubmitPendingDeduction), ctx, input)
}
