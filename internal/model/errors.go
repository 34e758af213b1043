package model

import (
	"errors"
	"fmt"
)

// Store-level sentinel errors.
var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email is taken")
)

// Messages shared by the service and the client.
const (
	MsgFieldsRequired  = "All fields are required"
	MsgInvalidEmail    = "Invalid email format"
	MsgPhoneTooShort   = "Phone number must be at least 10 digits"
	MsgEmailExists     = "Email already exists"
	MsgContactNotFound = "Contact not found"
	MsgContactDeleted  = "Contact deleted"

	MsgSnapshotNotFound = "Snapshot not found"
	MsgSnapshotDeleted  = "Snapshot deleted"
)

// ErrorKind classifies errors returned by the directory service.
type ErrorKind int

const (
	// KindInternal is a persistence or transport failure the caller cannot fix.
	KindInternal ErrorKind = iota
	// KindValidation is missing or malformed input.
	KindValidation
	// KindConflict is a duplicate email.
	KindConflict
	// KindNotFound is an operation on a non-existent id.
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is a classified service error. Message is safe to show to the caller.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError returns a KindValidation error.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewConflictError returns a KindConflict error for a duplicate email.
func NewConflictError(email string) *Error {
	return &Error{Kind: KindConflict, Message: MsgEmailExists, Err: fmt.Errorf("%w: %s", ErrEmailTaken, email)}
}

// NewNotFoundError returns a KindNotFound error for the contact id.
func NewNotFoundError(id ContactID) *Error {
	return &Error{Kind: KindNotFound, Message: MsgContactNotFound, Err: fmt.Errorf("%w: contact %d", ErrNotFound, id)}
}

// NewInternalError wraps cause. The cause message is surfaced verbatim.
func NewInternalError(cause error) *Error {
	return &Error{Kind: KindInternal, Message: cause.Error(), Err: cause}
}

// KindOf returns the kind of err, or KindInternal when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// NewSnapshotNotFoundError returns a KindNotFound error for the snapshot id.
func NewSnapshotNotFoundError(id string) *Error {
	return &Error{Kind: KindNotFound, Message: MsgSnapshotNotFound, Err: fmt.Errorf("%w: snapshot %s", ErrNotFound, id)}
}
