package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/contactbook/internal/logger"
	"github.com/dtroode/contactbook/internal/model"
)

// Contact implements the directory operations. It is the trust boundary:
// every write is validated here and every store error is translated into a
// *model.Error before it leaves.
type Contact struct {
	contactStore model.ContactStore
	logger       *logger.Logger
}

func NewContact(contactStore model.ContactStore, logger *logger.Logger) *Contact {
	return &Contact{
		contactStore: contactStore,
		logger:       logger,
	}
}

func (s *Contact) CreateContact(ctx context.Context, fields model.ContactFields) (model.Contact, error) {
	s.logger.Debug("Contact service: creating contact", "email", fields.Email)

	if err := fields.Validate(); err != nil {
		s.logger.Info("Contact service: invalid contact", "email", fields.Email, "error", err.Error())
		return model.Contact{}, err
	}
	if err := ctx.Err(); err != nil {
		return model.Contact{}, s.internal("create contact", err)
	}

	contact, err := s.contactStore.Create(ctx, fields)
	if errors.Is(err, model.ErrEmailTaken) {
		s.logger.Info("Contact service: email already exists", "email", fields.Email)
		return model.Contact{}, model.NewConflictError(fields.Email)
	}
	if err != nil {
		return model.Contact{}, s.internal("create contact", err)
	}

	s.logger.Info("Contact service: contact created", "contact_id", contact.ID)
	return contact, nil
}

func (s *Contact) ListContacts(ctx context.Context) ([]model.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, s.internal("list contacts", err)
	}

	contacts, err := s.contactStore.List(ctx)
	if err != nil {
		return nil, s.internal("list contacts", err)
	}

	return contacts, nil
}

func (s *Contact) GetContact(ctx context.Context, id model.ContactID) (model.Contact, error) {
	if err := ctx.Err(); err != nil {
		return model.Contact{}, s.internal("get contact", err)
	}

	contact, err := s.contactStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Contact{}, model.NewNotFoundError(id)
	}
	if err != nil {
		return model.Contact{}, s.internal("get contact", err)
	}

	return contact, nil
}

// UpdateContact applies patch to the contact and re-validates the result
// with the same rules as CreateContact.
func (s *Contact) UpdateContact(ctx context.Context, id model.ContactID, patch model.ContactPatch) (model.Contact, error) {
	s.logger.Debug("Contact service: updating contact", "contact_id", id)

	current, err := s.GetContact(ctx, id)
	if err != nil {
		return model.Contact{}, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	fields := patch.Apply(current.Fields())
	if err := fields.Validate(); err != nil {
		s.logger.Info("Contact service: invalid contact update", "contact_id", id, "error", err.Error())
		return model.Contact{}, err
	}

	contact, err := s.contactStore.Update(ctx, id, fields)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.Contact{}, model.NewNotFoundError(id)
	case errors.Is(err, model.ErrEmailTaken):
		s.logger.Info("Contact service: email already exists", "contact_id", id, "email", fields.Email)
		return model.Contact{}, model.NewConflictError(fields.Email)
	case err != nil:
		return model.Contact{}, s.internal("update contact", err)
	}

	s.logger.Info("Contact service: contact updated", "contact_id", id)
	return contact, nil
}

// DeleteContact removes the contact. Deleting a missing id succeeds.
func (s *Contact) DeleteContact(ctx context.Context, id model.ContactID) error {
	if err := ctx.Err(); err != nil {
		return s.internal("delete contact", err)
	}

	err := s.contactStore.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Debug("Contact service: contact already absent", "contact_id", id)
		return nil
	}
	if err != nil {
		return s.internal("delete contact", err)
	}

	s.logger.Info("Contact service: contact deleted", "contact_id", id)
	return nil
}

func (s *Contact) internal(op string, err error) error {
	err = fmt.Errorf("failed to %s: %w", op, err)
	s.logger.Error("Contact service: "+op+" failed", "error", err.Error())
	return model.NewInternalError(err)
}
