package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/contactbook/internal/model"
)

// ContactStore is a mock type for the model.ContactStore type.
type ContactStore struct {
	mock.Mock
}

func (_m *ContactStore) Create(ctx context.Context, fields model.ContactFields) (model.Contact, error) {
	ret := _m.Called(ctx, fields)
	return ret.Get(0).(model.Contact), ret.Error(1)
}

func (_m *ContactStore) List(ctx context.Context) ([]model.Contact, error) {
	ret := _m.Called(ctx)
	contacts, _ := ret.Get(0).([]model.Contact)
	return contacts, ret.Error(1)
}

func (_m *ContactStore) GetByID(ctx context.Context, id model.ContactID) (model.Contact, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.Contact), ret.Error(1)
}

func (_m *ContactStore) Update(ctx context.Context, id model.ContactID, fields model.ContactFields) (model.Contact, error) {
	ret := _m.Called(ctx, id, fields)
	return ret.Get(0).(model.Contact), ret.Error(1)
}

func (_m *ContactStore) Delete(ctx context.Context, id model.ContactID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewContactStore creates a new instance of ContactStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewContactStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContactStore {
	m := &ContactStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
