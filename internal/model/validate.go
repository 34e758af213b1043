package model

import "strings"

// MinPhoneLength is the shortest phone number a draft may carry.
const MinPhoneLength = 10

// Validate applies the rules enforced by the service on every write.
// Rules are evaluated in order and the first failure is returned.
func (f ContactFields) Validate() error {
	if f.Name == "" || f.Email == "" || f.Phone == "" {
		return NewValidationError(MsgFieldsRequired)
	}
	if !strings.Contains(f.Email, "@") {
		return NewValidationError(MsgInvalidEmail)
	}
	return nil
}

// ValidateDraft applies Validate plus the stricter form rules checked
// before a draft is submitted.
func (f ContactFields) ValidateDraft() error {
	if err := f.Validate(); err != nil {
		return err
	}
	if len(f.Phone) < MinPhoneLength {
		return NewValidationError(MsgPhoneTooShort)
	}
	return nil
}
