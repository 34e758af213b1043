package handler

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dtroode/contactbook/internal/logger"
	"github.com/dtroode/contactbook/internal/model"
)

// ContactService is the directory as seen by the transport.
type ContactService interface {
	CreateContact(ctx context.Context, fields model.ContactFields) (model.Contact, error)
	ListContacts(ctx context.Context) ([]model.Contact, error)
	GetContact(ctx context.Context, id model.ContactID) (model.Contact, error)
	UpdateContact(ctx context.Context, id model.ContactID, patch model.ContactPatch) (model.Contact, error)
	DeleteContact(ctx context.Context, id model.ContactID) error
}

// Contact serves /contacts.
type Contact struct {
	service ContactService
	logger  *logger.Logger
}

func NewContact(service ContactService, logger *logger.Logger) *Contact {
	return &Contact{service: service, logger: logger}
}

type ContactModel struct {
	ID    int64  `json:"id" example:"1" readOnly:"true"`
	Name  string `json:"name" example:"Jane Doe"`
	Email string `json:"email" example:"jane@example.com"`
	Phone string `json:"phone" example:"5551234567"`
}

func toContactModel(c model.Contact) ContactModel {
	return ContactModel{
		ID:    int64(c.ID),
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}

// ContactInput is the create body. Fields are optional in the schema so that
// missing values reach the service and get its error message.
type ContactInput struct {
	Name  string `json:"name,omitempty" example:"Jane Doe"`
	Email string `json:"email,omitempty" example:"jane@example.com"`
	Phone string `json:"phone,omitempty" example:"5551234567"`
}

type ContactPatchInput struct {
	Name  *string `json:"name,omitempty" example:"Jane Doe"`
	Email *string `json:"email,omitempty" example:"jane@example.com"`
	Phone *string `json:"phone,omitempty" example:"5551234567"`
}

type contactIDPath struct {
	ID int64 `path:"id" example:"1" doc:"ID of the contact"`
}

type ContactOutput struct {
	Body ContactModel
}

type ContactListOutput struct {
	Body []ContactModel
}

type MessageOutput struct {
	Body struct {
		Message string `json:"message" example:"Contact deleted"`
	}
}

// Register mounts the contact operations under /contacts.
func (h *Contact) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-contact",
		Method:        http.MethodPost,
		Path:          "/contacts",
		Summary:       "Create a contact",
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, withErrors(h.logger, h.create))

	huma.Register(api, huma.Operation{
		OperationID: "list-contacts",
		Method:      http.MethodGet,
		Path:        "/contacts",
		Summary:     "List contacts",
		Errors:      []int{http.StatusInternalServerError},
	}, withErrors(h.logger, h.list))

	huma.Register(api, huma.Operation{
		OperationID: "get-contact",
		Method:      http.MethodGet,
		Path:        "/contacts/{id}",
		Summary:     "Get a contact",
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, withErrors(h.logger, h.get))

	huma.Register(api, huma.Operation{
		OperationID: "update-contact",
		Method:      http.MethodPut,
		Path:        "/contacts/{id}",
		Summary:     "Update some fields of a contact",
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, withErrors(h.logger, h.update))

	huma.Register(api, huma.Operation{
		OperationID: "delete-contact",
		Method:      http.MethodDelete,
		Path:        "/contacts/{id}",
		Summary:     "Delete a contact",
		Errors:      []int{http.StatusInternalServerError},
	}, withErrors(h.logger, h.delete))
}

func (h *Contact) create(ctx context.Context, input *struct {
	Body ContactInput
}) (*ContactOutput, error) {
	contact, err := h.service.CreateContact(ctx, model.ContactFields{
		Name:  input.Body.Name,
		Email: input.Body.Email,
		Phone: input.Body.Phone,
	})
	if err != nil {
		return nil, err
	}
	return &ContactOutput{Body: toContactModel(contact)}, nil
}

func (h *Contact) list(ctx context.Context, _ *struct{}) (*ContactListOutput, error) {
	contacts, err := h.service.ListContacts(ctx)
	if err != nil {
		return nil, err
	}

	body := make([]ContactModel, 0, len(contacts))
	for _, c := range contacts {
		body = append(body, toContactModel(c))
	}
	return &ContactListOutput{Body: body}, nil
}

func (h *Contact) get(ctx context.Context, input *contactIDPath) (*ContactOutput, error) {
	contact, err := h.service.GetContact(ctx, model.ContactID(input.ID))
	if err != nil {
		return nil, err
	}
	return &ContactOutput{Body: toContactModel(contact)}, nil
}

func (h *Contact) update(ctx context.Context, input *struct {
	ID   int64 `path:"id" example:"1" doc:"ID of the contact"`
	Body ContactPatchInput
}) (*ContactOutput, error) {
	contact, err := h.service.UpdateContact(ctx, model.ContactID(input.ID), model.ContactPatch{
		Name:  input.Body.Name,
		Email: input.Body.Email,
		Phone: input.Body.Phone,
	})
	if err != nil {
		return nil, err
	}
	return &ContactOutput{Body: toContactModel(contact)}, nil
}

func (h *Contact) delete(ctx context.Context, input *contactIDPath) (*MessageOutput, error) {
	if err := h.service.DeleteContact(ctx, model.ContactID(input.ID)); err != nil {
		return nil, err
	}
	out := &MessageOutput{}
	out.Body.Message = model.MsgContactDeleted
	return out, nil
}
