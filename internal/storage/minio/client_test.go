package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBucket implements bucketAPI in memory.
type fakeBucket struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      string

	putErr  error
	putKey  string
	putSize int64
	putOpts minioLib.PutObjectOptions
	putData []byte

	getRC  io.ReadCloser
	getErr error

	removeErr error

	statErr error
}

func (f *fakeBucket) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeBucket) MakeBucket(_ context.Context, bucket string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = bucket
	return f.makeBucketErr
}

func (f *fakeBucket) PutObject(_ context.Context, _ string, key string, r io.Reader, size int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	if f.putErr != nil {
		return minioLib.UploadInfo{}, f.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return minioLib.UploadInfo{}, err
	}
	f.putKey, f.putSize, f.putOpts, f.putData = key, size, opts, data
	return minioLib.UploadInfo{Key: key, Size: int64(len(data))}, nil
}

func (f *fakeBucket) GetObject(_ context.Context, _ string, _ string, _ minioLib.GetObjectOptions) (io.ReadCloser, error) {
	return f.getRC, f.getErr
}

func (f *fakeBucket) RemoveObject(_ context.Context, _ string, _ string, _ minioLib.RemoveObjectOptions) error {
	return f.removeErr
}

func (f *fakeBucket) StatObject(_ context.Context, _ string, _ string, _ minioLib.StatObjectOptions) (minioLib.ObjectInfo, error) {
	return minioLib.ObjectInfo{}, f.statErr
}

func TestNewStore(t *testing.T) {
	tests := []struct {
		name        string
		api         *fakeBucket
		wantCreated bool
		wantErr     string
	}{
		{name: "bucket exists", api: &fakeBucket{bucketExists: true}},
		{name: "bucket created", api: &fakeBucket{}, wantCreated: true},
		{name: "check fails", api: &fakeBucket{bucketExistsErr: errors.New("boom")}, wantErr: "failed to check bucket"},
		{name: "create fails", api: &fakeBucket{makeBucketErr: errors.New("fail")}, wantErr: "failed to create bucket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := newStore(context.Background(), tt.api, "snapshots")
			if tt.wantErr != "" {
				assert.Nil(t, s)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "snapshots", s.bucket)
			if tt.wantCreated {
				assert.Equal(t, "snapshots", tt.api.madeBucket)
			} else {
				assert.Empty(t, tt.api.madeBucket)
			}
		})
	}
}

func TestStore_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("json object", func(t *testing.T) {
		api := &fakeBucket{}
		s := &Store{api: api, bucket: "b"}
		err := s.Upload(ctx, "snapshots/x.json", bytes.NewReader([]byte("[]")), 2)
		require.NoError(t, err)
		assert.Equal(t, "snapshots/x.json", api.putKey)
		assert.Equal(t, int64(2), api.putSize)
		assert.Equal(t, "application/json", api.putOpts.ContentType)
		assert.Equal(t, []byte("[]"), api.putData)
	})

	t.Run("other object", func(t *testing.T) {
		api := &fakeBucket{}
		s := &Store{api: api, bucket: "b"}
		require.NoError(t, s.Upload(ctx, "blob", bytes.NewReader([]byte("x")), -1))
		assert.Equal(t, "application/octet-stream", api.putOpts.ContentType)
		assert.Equal(t, int64(-1), api.putSize)
	})

	t.Run("error", func(t *testing.T) {
		s := &Store{api: &fakeBucket{putErr: errors.New("put-fail")}, bucket: "b"}
		err := s.Upload(ctx, "k", bytes.NewReader([]byte("data")), 4)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upload object k")
	})
}

func TestStore_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s := &Store{api: &fakeBucket{getRC: io.NopCloser(bytes.NewReader([]byte("abc")))}, bucket: "b"}
		rc, err := s.Download(ctx, "k")
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), data)
	})

	t.Run("error", func(t *testing.T) {
		s := &Store{api: &fakeBucket{getErr: errors.New("get-fail")}, bucket: "b"}
		rc, err := s.Download(ctx, "k")
		assert.Nil(t, rc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get object")
	})
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()

	s := &Store{api: &fakeBucket{}, bucket: "b"}
	assert.NoError(t, s.Delete(ctx, "k"))

	s = &Store{api: &fakeBucket{removeErr: errors.New("remove-fail")}, bucket: "b"}
	err := s.Delete(ctx, "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete object")
}

func TestStore_Exists(t *testing.T) {
	tests := []struct {
		name    string
		statErr error
		want    bool
		wantErr bool
	}{
		{name: "exists", want: true},
		{name: "missing", statErr: minioLib.ErrorResponse{Code: "NoSuchKey"}},
		{name: "other error", statErr: errors.New("stat-fail"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Store{api: &fakeBucket{statErr: tt.statErr}, bucket: "b"}
			ok, err := s.Exists(context.Background(), "k")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to stat object")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, ok)
		})
	}
}
