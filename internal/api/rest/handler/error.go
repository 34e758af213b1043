package handler

import (
	"errors"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dtroode/contactbook/internal/model"
)

// MsgInternal is returned for errors that carry no classification.
const MsgInternal = "internal server error"

// ErrorModel is the body of every error response.
type ErrorModel struct {
	Status  int    `json:"-"`
	Message string `json:"message" example:"Contact not found" doc:"Human readable error message"`
}

func (e *ErrorModel) Error() string {
	return e.Message
}

func (e *ErrorModel) GetStatus() int {
	return e.Status
}

func (e *ErrorModel) ContentType(string) string {
	return "application/json"
}

var configureErrors sync.Once

// ConfigureErrors makes huma render its own errors (request validation,
// unknown routes, panics) with the same body as handler errors. Requests
// huma rejects as unprocessable are reported as 400 with the first detail.
func ConfigureErrors() {
	configureErrors.Do(func() {
		huma.NewError = newError
	})
}

func newError(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}
	return &ErrorModel{Status: status, Message: detailMessage(msg, errs)}
}

// detailMessage returns the first error's message prefixed with its
// location, such as "body.phone: expected string", or msg when there is none.
func detailMessage(msg string, errs []error) string {
	for _, err := range errs {
		if err == nil {
			continue
		}
		var d huma.ErrorDetailer
		if !errors.As(err, &d) {
			return err.Error()
		}
		detail := d.ErrorDetail()
		if detail.Location == "" {
			return detail.Message
		}
		return detail.Location + ": " + detail.Message
	}
	return msg
}

func handleError(err error) *ErrorModel {
	var e *model.Error
	if !errors.As(err, &e) {
		return &ErrorModel{Status: http.StatusInternalServerError, Message: MsgInternal}
	}

	switch e.Kind {
	case model.KindValidation, model.KindConflict:
		return &ErrorModel{Status: http.StatusBadRequest, Message: e.Message}
	case model.KindNotFound:
		return &ErrorModel{Status: http.StatusNotFound, Message: e.Message}
	default:
		return &ErrorModel{Status: http.StatusInternalServerError, Message: e.Message}
	}
}
