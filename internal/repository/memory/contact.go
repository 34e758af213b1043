// Package memory is an in-process contact store, used when no database is
// configured and as a lightweight store in tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dtroode/contactbook/internal/model"
)

var _ model.ContactStore = (*ContactRepository)(nil)

// ContactRepository keeps contacts in insertion order. The email index is
// checked and written under the same lock as the contact itself.
type ContactRepository struct {
	mu       sync.Mutex
	lastID   model.ContactID
	index    map[model.ContactID]int
	byEmail  map[string]model.ContactID
	contacts []model.Contact
	now      func() time.Time
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{
		index:   make(map[model.ContactID]int),
		byEmail: make(map[string]model.ContactID),
		now:     time.Now,
	}
}

func (r *ContactRepository) Create(_ context.Context, fields model.ContactFields) (model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[fields.Email]; taken {
		return model.Contact{}, model.ErrEmailTaken
	}

	r.lastID++
	now := r.now()
	contact := model.Contact{
		ID:        r.lastID,
		Name:      fields.Name,
		Email:     fields.Email,
		Phone:     fields.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.index[contact.ID] = len(r.contacts)
	r.byEmail[contact.Email] = contact.ID
	r.contacts = append(r.contacts, contact)

	return contact, nil
}

func (r *ContactRepository) List(_ context.Context) ([]model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.contacts), nil
}

func (r *ContactRepository) GetByID(_ context.Context, id model.ContactID) (model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return model.Contact{}, model.ErrNotFound
	}
	return r.contacts[i], nil
}

func (r *ContactRepository) Update(_ context.Context, id model.ContactID, fields model.ContactFields) (model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return model.Contact{}, model.ErrNotFound
	}
	if owner, taken := r.byEmail[fields.Email]; taken && owner != id {
		return model.Contact{}, model.ErrEmailTaken
	}

	contact := r.contacts[i]
	delete(r.byEmail, contact.Email)
	contact.Name = fields.Name
	contact.Email = fields.Email
	contact.Phone = fields.Phone
	contact.UpdatedAt = r.now()
	r.contacts[i] = contact
	r.byEmail[contact.Email] = id

	return contact, nil
}

func (r *ContactRepository) Delete(_ context.Context, id model.ContactID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return model.ErrNotFound
	}
	delete(r.byEmail, r.contacts[i].Email)
	delete(r.index, id)
	r.contacts = slices.Delete(r.contacts, i, i+1)
	for j := i; j < len(r.contacts); j++ {
		r.index[r.contacts[j].ID] = j
	}
	return nil
}
