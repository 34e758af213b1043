package model

import (
	"context"
	"io"
	"time"
)

// ObjectStorage stores opaque objects by key.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// SnapshotInfo describes an exported directory snapshot.
type SnapshotInfo struct {
	Key       string
	Count     int
	CreatedAt time.Time
}
