package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/contactbook/internal/model"
)

// DirectoryAPI is a mock type for the client.API type.
type DirectoryAPI struct {
	mock.Mock
}

func (_m *DirectoryAPI) List(ctx context.Context) ([]model.Contact, error) {
	ret := _m.Called(ctx)
	contacts, _ := ret.Get(0).([]model.Contact)
	return contacts, ret.Error(1)
}

func (_m *DirectoryAPI) Create(ctx context.Context, fields model.ContactFields) (model.Contact, error) {
	ret := _m.Called(ctx, fields)
	return ret.Get(0).(model.Contact), ret.Error(1)
}

func (_m *DirectoryAPI) Update(ctx context.Context, id model.ContactID, fields model.ContactFields) (model.Contact, error) {
	ret := _m.Called(ctx, id, fields)
	return ret.Get(0).(model.Contact), ret.Error(1)
}

func (_m *DirectoryAPI) Delete(ctx context.Context, id model.ContactID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewDirectoryAPI creates a new instance of DirectoryAPI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewDirectoryAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *DirectoryAPI {
	m := &DirectoryAPI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
