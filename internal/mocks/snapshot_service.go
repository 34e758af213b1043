package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/contactbook/internal/model"
)

// SnapshotService is a mock type for the SnapshotService type.
type SnapshotService struct {
	mock.Mock
}

func (_m *SnapshotService) Export(ctx context.Context) (model.SnapshotInfo, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(model.SnapshotInfo), ret.Error(1)
}

func (_m *SnapshotService) Read(ctx context.Context, id string) ([]model.Contact, error) {
	ret := _m.Called(ctx, id)
	contacts, _ := ret.Get(0).([]model.Contact)
	return contacts, ret.Error(1)
}

func (_m *SnapshotService) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewSnapshotService creates a new instance of SnapshotService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSnapshotService(t interface {
	mock.TestingT
	Cleanup(func())
}) *SnapshotService {
	m := &SnapshotService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
