// Package client is the stateful front end of the contact directory: it
// keeps the last fetched list, the edit form and the last error, and talks
// to the service through an API.
package client

import (
	"context"
	"errors"
	"iter"
	"slices"
	"strings"
	"sync"

	"github.com/dtroode/contactbook/internal/logger"
	"github.com/dtroode/contactbook/internal/model"
)

// Messages shown to the user in LastError.
const (
	MsgLoadFailed  = "Failed to load contacts"
	MsgFallback    = "Something went wrong"
	MsgServerError = "Server error"
)

// API is the remote directory.
type API interface {
	List(ctx context.Context) ([]model.Contact, error)
	Create(ctx context.Context, fields model.ContactFields) (model.Contact, error)
	Update(ctx context.Context, id model.ContactID, fields model.ContactFields) (model.Contact, error)
	Delete(ctx context.Context, id model.ContactID) error
}

// Directory holds the client state. Every operation takes the same lock, so
// one instance has at most one request in flight.
type Directory struct {
	api    API
	logger *logger.Logger

	mu         sync.Mutex
	contacts   []model.Contact
	searchTerm string
	draft      model.ContactFields
	editingID  model.ContactID
	editing    bool
	lastError  string
}

func NewDirectory(api API, logger *logger.Logger) *Directory {
	return &Directory{api: api, logger: logger}
}

// Refresh replaces the contact list with the server's. On failure the
// previous list is kept and LastError is set.
func (d *Directory) Refresh(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.refresh(ctx)
}

func (d *Directory) refresh(ctx context.Context) error {
	contacts, err := d.api.List(ctx)
	if err != nil {
		d.logger.Warn("Directory client: refresh failed", "error", err.Error())
		d.lastError = MsgLoadFailed
		return err
	}
	d.contacts = contacts
	return nil
}

// Submit validates draft and creates a contact, or updates the contact being
// edited. The draft and edit mode are kept when anything fails.
func (d *Directory) Submit(ctx context.Context, draft model.ContactFields) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.draft = draft
	d.lastError = ""

	if err := draft.ValidateDraft(); err != nil {
		d.lastError = messageOf(err)
		return err
	}

	var err error
	if d.editing {
		_, err = d.api.Update(ctx, d.editingID, draft)
	} else {
		_, err = d.api.Create(ctx, draft)
	}
	if err != nil {
		d.lastError = describe(err)
		d.logger.Info("Directory client: submit rejected", "editing", d.editing, "error", err.Error())
		return err
	}

	d.draft = model.ContactFields{}
	d.editing, d.editingID = false, 0
	return d.refresh(ctx)
}

// BeginEdit loads contact into the draft and enters edit mode.
func (d *Directory) BeginEdit(contact model.Contact) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.draft = contact.Fields()
	d.editingID = contact.ID
	d.editing = true
}

// CancelEdit clears the draft and leaves edit mode.
func (d *Directory) CancelEdit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.draft = model.ContactFields{}
	d.editing, d.editingID = false, 0
}

// Delete removes the contact and refreshes whatever the outcome.
func (d *Directory) Delete(ctx context.Context, id model.ContactID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	deleteErr := d.api.Delete(ctx, id)
	if deleteErr != nil {
		d.logger.Warn("Directory client: delete failed", "contact_id", id, "error", deleteErr.Error())
		d.lastError = describe(deleteErr)
	}
	return errors.Join(deleteErr, d.refresh(ctx))
}

func (d *Directory) SetSearchTerm(term string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.searchTerm = term
}

// View yields the contacts matching the current search term. The state is
// read when iteration starts, so a stored View reflects later changes.
func (d *Directory) View() iter.Seq[model.Contact] {
	return func(yield func(model.Contact) bool) {
		d.mu.Lock()
		contacts, term := d.contacts, d.searchTerm
		d.mu.Unlock()

		Filter(contacts, term)(yield)
	}
}

// FilteredView is View with an explicit term.
func (d *Directory) FilteredView(term string) iter.Seq[model.Contact] {
	return func(yield func(model.Contact) bool) {
		d.mu.Lock()
		contacts := d.contacts
		d.mu.Unlock()

		Filter(contacts, term)(yield)
	}
}

// Contacts returns a copy of the last fetched list.
func (d *Directory) Contacts() []model.Contact {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.contacts)
}

func (d *Directory) Draft() model.ContactFields {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draft
}

// EditingID returns the id being edited, if any.
func (d *Directory) EditingID() (model.ContactID, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.editingID, d.editing
}

func (d *Directory) SearchTerm() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.searchTerm
}

func (d *Directory) LastError() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastError
}

// Filter yields the contacts whose name or email contains term, ignoring
// case. An empty term matches every contact.
func Filter(contacts []model.Contact, term string) iter.Seq[model.Contact] {
	term = strings.ToLower(term)
	return func(yield func(model.Contact) bool) {
		for _, c := range contacts {
			if term != "" &&
				!strings.Contains(strings.ToLower(c.Name), term) &&
				!strings.Contains(strings.ToLower(c.Email), term) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

func messageOf(err error) string {
	var e *model.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// describe maps a failed request to the message shown to the user.
func describe(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		if respErr.Message != "" {
			return respErr.Message
		}
		return MsgFallback
	}
	return MsgServerError
}
