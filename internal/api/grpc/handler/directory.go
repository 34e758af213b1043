package handler

import (
	"context"
	"fmt"
	"math"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dtroode/contactbook/internal/logger"
	"github.com/dtroode/contactbook/internal/model"
)

// ContactService defines the directory operations served over gRPC.
type ContactService interface {
	CreateContact(ctx context.Context, fields model.ContactFields) (model.Contact, error)
	ListContacts(ctx context.Context) ([]model.Contact, error)
	GetContact(ctx context.Context, id model.ContactID) (model.Contact, error)
	UpdateContact(ctx context.Context, id model.ContactID, patch model.ContactPatch) (model.Contact, error)
	DeleteContact(ctx context.Context, id model.ContactID) error
}

var _ DirectoryServer = (*Directory)(nil)

// Directory handles gRPC endpoints for contacts.
type Directory struct {
	contactService ContactService
	logger         *logger.Logger
}

// NewDirectory creates a new Directory handler.
func NewDirectory(contactService ContactService, logger *logger.Logger) *Directory {
	return &Directory{
		contactService: contactService,
		logger:         logger,
	}
}

// CreateContact expects a struct with string fields name, email and phone.
func (h *Directory) CreateContact(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	patch, err := patchFromStruct(req)
	if err != nil {
		return nil, err
	}

	contact, err := h.contactService.CreateContact(ctx, patch.Apply(model.ContactFields{}))
	if err != nil {
		h.logger.Debug("Directory handler: create contact failed", "error", err.Error())
		return nil, handleError(err)
	}
	return contactToStruct(contact), nil
}

func (h *Directory) ListContacts(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	contacts, err := h.contactService.ListContacts(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	values := make([]*structpb.Value, 0, len(contacts))
	for _, c := range contacts {
		values = append(values, structpb.NewStructValue(contactToStruct(c)))
	}
	return &structpb.ListValue{Values: values}, nil
}

func (h *Directory) GetContact(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	contact, err := h.contactService.GetContact(ctx, model.ContactID(req.GetValue()))
	if err != nil {
		return nil, handleError(err)
	}
	return contactToStruct(contact), nil
}

// UpdateContact expects a numeric id and any subset of name, email and phone.
func (h *Directory) UpdateContact(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := idFromStruct(req)
	if err != nil {
		return nil, err
	}
	patch, err := patchFromStruct(req)
	if err != nil {
		return nil, err
	}

	contact, err := h.contactService.UpdateContact(ctx, id, patch)
	if err != nil {
		h.logger.Debug("Directory handler: update contact failed", "contact_id", id, "error", err.Error())
		return nil, handleError(err)
	}
	return contactToStruct(contact), nil
}

func (h *Directory) DeleteContact(ctx context.Context, req *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	if err := h.contactService.DeleteContact(ctx, model.ContactID(req.GetValue())); err != nil {
		return nil, handleError(err)
	}
	return &emptypb.Empty{}, nil
}

func contactToStruct(c model.Contact) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":    structpb.NewNumberValue(float64(c.ID)),
		"name":  structpb.NewStringValue(c.Name),
		"email": structpb.NewStringValue(c.Email),
		"phone": structpb.NewStringValue(c.Phone),
	}}
}

// ContactFromStruct converts a response struct back to a contact.
func ContactFromStruct(s *structpb.Struct) model.Contact {
	f := s.GetFields()
	return model.Contact{
		ID:    model.ContactID(f["id"].GetNumberValue()),
		Name:  f["name"].GetStringValue(),
		Email: f["email"].GetStringValue(),
		Phone: f["phone"].GetStringValue(),
	}
}

func patchFromStruct(s *structpb.Struct) (model.ContactPatch, error) {
	var patch model.ContactPatch
	for name, dst := range map[string]**string{
		"name":  &patch.Name,
		"email": &patch.Email,
		"phone": &patch.Phone,
	} {
		v, ok := s.GetFields()[name]
		if !ok {
			continue
		}
		sv, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return model.ContactPatch{}, status.Errorf(codes.InvalidArgument, "field %s must be a string", name)
		}
		*dst = &sv.StringValue
	}
	return patch, nil
}

func idFromStruct(s *structpb.Struct) (model.ContactID, error) {
	v, ok := s.GetFields()["id"]
	if !ok {
		return 0, status.Error(codes.InvalidArgument, "id is required")
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) {
		return 0, status.Error(codes.InvalidArgument, fmt.Sprintf("id must be an integer, got %v", v.AsInterface()))
	}
	return model.ContactID(n.NumberValue), nil
}
