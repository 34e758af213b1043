package model

import (
	"context"
	"time"
)

// ContactStore defines persistence operations for contacts.
//
// Implementations must enforce email uniqueness atomically with the write:
// Create and Update return ErrEmailTaken instead of storing a duplicate.
type ContactStore interface {
	Create(ctx context.Context, fields ContactFields) (Contact, error)
	List(ctx context.Context) ([]Contact, error)
	GetByID(ctx context.Context, id ContactID) (Contact, error)
	Update(ctx context.Context, id ContactID, fields ContactFields) (Contact, error)
	Delete(ctx context.Context, id ContactID) error
}

// ContactID identifies a stored contact. IDs start at 1 and are never reused.
type ContactID int64

// Contact represents a stored contact entity.
type Contact struct {
	ID        ContactID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fields returns the user-editable part of the contact.
func (c Contact) Fields() ContactFields {
	return ContactFields{Name: c.Name, Email: c.Email, Phone: c.Phone}
}

// ContactFields contains the user-editable fields of a contact.
type ContactFields struct {
	Name  string
	Email string
	Phone string
}

// ContactPatch is a partial update. Nil fields are left unchanged.
type ContactPatch struct {
	Name  *string
	Email *string
	Phone *string
}

// Apply returns fields with every non-nil patch value replaced.
func (p ContactPatch) Apply(fields ContactFields) ContactFields {
	if p.Name != nil {
		fields.Name = *p.Name
	}
	if p.Email != nil {
		fields.Email = *p.Email
	}
	if p.Phone != nil {
		fields.Phone = *p.Phone
	}
	return fields
}

// IsEmpty reports whether the patch changes nothing.
func (p ContactPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil
}
