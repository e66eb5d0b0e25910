// Code generated by MockGen. DO NOT EDIT.
// Source: subscriber.go

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	messaging "github.com/dropforge/nft-hub/internal/messaging"
	gomock "github.com/golang/mock/gomock"
)

// MockSubscriber is a mock of Subscriber interface.
type MockSubscriber struct {
	ctrl     *gomock.Controller
	recorder *MockSubscriberMockRecorder
}

// MockSubscriberMockRecorder is the mock recorder for MockSubscriber.
type MockSubscriberMockRecorder struct {
	mock *MockSubscriber
}

// NewMockSubscriber creates a new mock instance.
func NewMockSubscriber(ctrl *gomock.Controller) *MockSubscriber {
	mock := &MockSubscriber{ctrl: ctrl}
	mock.recorder = &MockSubscriberMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSubscriber) EXPECT() *MockSubscriberMockRecorder {
	return m.recorder
}

// Close mocks base method.
func (m *MockSubscriber) Close() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Close")
}

// Close indicates an expected call of Close.
func (mr *MockSubscriberMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockSubscriber)(nil).Close))
}

// SubscribeTreasuryEvents mocks base method.
func (m *MockSubscriber) SubscribeTreasuryEvents(ctx context.Context, handler messaging.TreasuryEventHandler) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SubscribeTreasuryEvents", ctx, handler)
	ret0, _ := ret[0].(error)
	return ret0
}

// SubscribeTreasuryEvents indicates an expected call of SubscribeTreasuryEvents.
func (mr *MockSubscriberMockRecorder) SubscribeTreasuryEvents(ctx, handler interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SubscribeTreasuryEvents", reflect.TypeOf((*MockSubscriber)(nil).SubscribeTreasuryEvents), ctx, handler)
}
