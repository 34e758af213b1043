package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dtroode/contactbook/internal/logger"
	"github.com/dtroode/contactbook/internal/model"
)

type SnapshotService interface {
	Export(ctx context.Context) (model.SnapshotInfo, error)
	Read(ctx context.Context, id string) ([]model.Contact, error)
	Delete(ctx context.Context, id string) error
}

// Snapshot serves /snapshots.
type Snapshot struct {
	service SnapshotService
	logger  *logger.Logger
}

func NewSnapshot(service SnapshotService, logger *logger.Logger) *Snapshot {
	return &Snapshot{service: service, logger: logger}
}

type SnapshotModel struct {
	Key       string    `json:"key" example:"0b6f3c1e-6d1f-4a53-9d1e-2f0f3b7e8a11"`
	Count     int       `json:"count" example:"2"`
	CreatedAt time.Time `json:"created_at"`
}

type SnapshotOutput struct {
	Body SnapshotModel
}

func (h *Snapshot) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "export-snapshot",
		Method:        http.MethodPost,
		Path:          "/snapshots",
		Summary:       "Export all contacts to object storage",
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusInternalServerError},
	}, withErrors(h.logger, h.export))

	huma.Register(api, huma.Operation{
		OperationID: "read-snapshot",
		Method:      http.MethodGet,
		Path:        "/snapshots/{key}",
		Summary:     "Read the contacts stored in a snapshot",
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, withErrors(h.logger, h.read))

	huma.Register(api, huma.Operation{
		OperationID: "delete-snapshot",
		Method:      http.MethodDelete,
		Path:        "/snapshots/{key}",
		Summary:     "Delete a snapshot",
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, withErrors(h.logger, h.delete))
}

func (h *Snapshot) export(ctx context.Context, _ *struct{}) (*SnapshotOutput, error) {
	info, err := h.service.Export(ctx)
	if err != nil {
		return nil, err
	}
	return &SnapshotOutput{Body: SnapshotModel{
		Key:       info.Key,
		Count:     info.Count,
		CreatedAt: info.CreatedAt,
	}}, nil
}

type snapshotKeyPath struct {
	Key string `path:"key" doc:"Key returned by the export"`
}

func (h *Snapshot) read(ctx context.Context, input *snapshotKeyPath) (*ContactListOutput, error) {
	contacts, err := h.service.Read(ctx, input.Key)
	if err != nil {
		return nil, err
	}

	body := make([]ContactModel, 0, len(contacts))
	for _, c := range contacts {
		body = append(body, toContactModel(c))
	}
	return &ContactListOutput{Body: body}, nil
}

func (h *Snapshot) delete(ctx context.Context, input *snapshotKeyPath) (*MessageOutput, error) {
	if err := h.service.Delete(ctx, input.Key); err != nil {
		return nil, err
	}
	out := &MessageOutput{}
	out.Body.Message = model.MsgSnapshotDeleted
	return out, nil
}
