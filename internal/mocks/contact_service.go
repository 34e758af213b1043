package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/contactbook/internal/model"
)

// ContactService is a mock type for the ContactService type used by the REST and gRPC handlers.
type ContactService struct {
	mock.Mock
}

func (_m *ContactService) CreateContact(ctx context.Context, fields model.ContactFields) (model.Contact, error) {
	ret := _m.Called(ctx, fields)
	return ret.Get(0).(model.Contact), ret.Error(1)
}

func (_m *ContactService) ListContacts(ctx context.Context) ([]model.Contact, error) {
	ret := _m.Called(ctx)
	contacts, _ := ret.Get(0).([]model.Contact)
	return contacts, ret.Error(1)
}

func (_m *ContactService) GetContact(ctx context.Context, id model.ContactID) (model.Contact, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.Contact), ret.Error(1)
}

func (_m *ContactService) UpdateContact(ctx context.Context, id model.ContactID, patch model.ContactPatch) (model.Contact, error) {
	ret := _m.Called(ctx, id, patch)
	return ret.Get(0).(model.Contact), ret.Error(1)
}

func (_m *ContactService) DeleteContact(ctx context.Context, id model.ContactID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewContactService creates a new instance of ContactService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewContactService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContactService {
	m := &ContactService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
