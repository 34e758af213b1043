package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// ContextManager is a mock type for the model.ContextManager type.
type ContextManager struct {
	mock.Mock
}

func (_m *ContextManager) SetRequestIDToContext(ctx context.Context, requestID string) context.Context {
	ret := _m.Called(ctx, requestID)
	if rf, ok := ret.Get(0).(func(context.Context, string) context.Context); ok {
		return rf(ctx, requestID)
	}
	return ret.Get(0).(context.Context)
}

func (_m *ContextManager) GetRequestIDFromContext(ctx context.Context) (string, bool) {
	ret := _m.Called(ctx)
	return ret.String(0), ret.Bool(1)
}

// NewContextManager creates a new instance of ContextManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewContextManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContextManager {
	m := &ContextManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
