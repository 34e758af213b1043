package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/contactbook/internal/logger"
	"github.com/dtroode/contactbook/internal/model"
)

const snapshotPrefix = "snapshots/"

type snapshotContact struct {
	ID        model.ContactID `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Snapshot exports the directory to object storage and reads exports back.
type Snapshot struct {
	contactStore model.ContactStore
	storage      model.ObjectStorage
	logger       *logger.Logger
	now          func() time.Time
}

func NewSnapshot(contactStore model.ContactStore, storage model.ObjectStorage, logger *logger.Logger) *Snapshot {
	return &Snapshot{
		contactStore: contactStore,
		storage:      storage,
		logger:       logger,
		now:          time.Now,
	}
}

func snapshotKey(id string) string {
	return snapshotPrefix + id + ".json"
}

// Export uploads every contact as a JSON array and returns the snapshot id.
func (s *Snapshot) Export(ctx context.Context) (model.SnapshotInfo, error) {
	contacts, err := s.contactStore.List(ctx)
	if err != nil {
		return model.SnapshotInfo{}, s.internal("list contacts", err)
	}

	out := make([]snapshotContact, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, snapshotContact(c))
	}
	data, err := json.Marshal(out)
	if err != nil {
		return model.SnapshotInfo{}, s.internal("encode snapshot", err)
	}

	info := model.SnapshotInfo{
		Key:       uuid.NewString(),
		Count:     len(contacts),
		CreatedAt: s.now().UTC(),
	}
	if err := s.storage.Upload(ctx, snapshotKey(info.Key), bytes.NewReader(data), int64(len(data))); err != nil {
		return model.SnapshotInfo{}, s.internal("upload snapshot", err)
	}

	s.logger.Info("Snapshot service: snapshot exported", "snapshot_id", info.Key, "count", info.Count)
	return info, nil
}

// Read returns the contacts stored in the snapshot with the given id.
func (s *Snapshot) Read(ctx context.Context, id string) ([]model.Contact, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, model.NewSnapshotNotFoundError(id)
	}

	key := snapshotKey(id)
	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return nil, s.internal("check snapshot", err)
	}
	if !exists {
		return nil, model.NewSnapshotNotFoundError(id)
	}

	rc, err := s.storage.Download(ctx, key)
	if err != nil {
		return nil, s.internal("download snapshot", err)
	}
	defer rc.Close()

	var in []snapshotContact
	if err := json.NewDecoder(rc).Decode(&in); err != nil {
		return nil, s.internal("decode snapshot", err)
	}

	contacts := make([]model.Contact, 0, len(in))
	for _, c := range in {
		contacts = append(contacts, model.Contact(c))
	}
	return contacts, nil
}

// Delete removes the snapshot with the given id.
func (s *Snapshot) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return model.NewSnapshotNotFoundError(id)
	}

	key := snapshotKey(id)
	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return s.internal("check snapshot", err)
	}
	if !exists {
		return model.NewSnapshotNotFoundError(id)
	}

	if err := s.storage.Delete(ctx, key); err != nil {
		return s.internal("delete snapshot", err)
	}

	s.logger.Info("Snapshot service: snapshot deleted", "key", id)
	return nil
}

func (s *Snapshot) internal(op string, err error) error {
	err = fmt.Errorf("failed to %s: %w", op, err)
	s.logger.Error("Snapshot service: "+op+" failed", "error", err.Error())
	return model.NewInternalError(err)
}
