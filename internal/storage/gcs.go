package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	gcsstorage "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSStore keeps documents as objects in a Cloud Storage bucket under an optional prefix.
type GCSStore struct {
	client *gcsstorage.Client
	bucket *gcsstorage.BucketHandle
	name   string
	prefix string
}

var _ Store = (*GCSStore)(nil)

// NewGCSStore dials Cloud Storage. credentialsFile may be empty to use
// application default credentials.
func NewGCSStore(ctx context.Context, bucket, prefix, credentialsFile string) (*GCSStore, error) {
	if bucket == "" {
		return nil, errors.New("gcs bucket is required")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := gcsstorage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSStore{
		client: client,
		bucket: client.Bucket(bucket),
		name:   bucket,
		prefix: prefix,
	}, nil
}

func (s *GCSStore) Location() string {
	return "gs://" + path.Join(s.name, s.prefix)
}

func (s *GCSStore) object(name string) (*gcsstorage.ObjectHandle, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return s.bucket.Object(path.Join(s.prefix, name)), nil
}

func (s *GCSStore) Write(ctx context.Context, name string, data []byte) error {
	obj, err := s.object(name)
	if err != nil {
		return err
	}
	w := obj.NewWriter(ctx)
	w.ContentType = "application/pdf"
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("write object %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize object %s: %w", name, err)
	}
	return nil
}

func (s *GCSStore) Read(ctx context.Context, name string) ([]byte, error) {
	obj, err := s.object(name)
	if err != nil {
		return nil, err
	}
	r, err := obj.NewReader(ctx)
	if errors.Is(err, gcsstorage.ErrObjectNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("open object %s: %w", name, err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", name, err)
	}
	return data, nil
}

func (s *GCSStore) Delete(ctx context.Context, name string) error {
	obj, err := s.object(name)
	if err != nil {
		return err
	}
	err = obj.Delete(ctx)
	if errors.Is(err, gcsstorage.ErrObjectNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("delete object %s: %w", name, err)
	}
	return nil
}

func (s *GCSStore) Exists(ctx context.Context, name string) (bool, error) {
	obj, err := s.object(name)
	if err != nil {
		return false, err
	}
	_, err = obj.Attrs(ctx)
	if errors.Is(err, gcsstorage.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat object %s: %w", name, err)
	}
	return true, nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
