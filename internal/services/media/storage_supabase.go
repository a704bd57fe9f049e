package media

import (
	"context"
	"fmt"
	"io"

	storage_go "github.com/supabase-community/storage-go"
)

// SupabaseStore implements ObjectStore backed by Supabase Storage.
type SupabaseStore struct {
	client *storage_go.Client
}

// NewSupabaseStore creates an object store client for a Supabase project.
func NewSupabaseStore(url, serviceKey string) *SupabaseStore {
	return &SupabaseStore{
		client: storage_go.NewClient(url, serviceKey, nil),
	}
}

// Upload stores an object in the bucket at the given path.
func (s *SupabaseStore) Upload(ctx context.Context, bucket, path string, data io.Reader, contentType string) error {
	upsert := true
	_, err := s.client.UploadFile(bucket, path, data, storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("uploading %s/%s: %w", bucket, path, err)
	}
	return nil
}

// PublicURL returns the public download URL for an object.
func (s *SupabaseStore) PublicURL(bucket, path string) string {
	return s.client.GetPublicUrl(bucket, path).SignedURL
}

// SignedURL returns a time-limited download URL for an object.
func (s *SupabaseStore) SignedURL(ctx context.Context, bucket, path string, expiresInSecs int) (string, error) {
	resp, err := s.client.CreateSignedUrl(bucket, path, expiresInSecs)
	if err != nil {
		return "", fmt.Errorf("signing %s/%s: %w", bucket, path, err)
	}
	return resp.SignedURL, nil
}

// Remove deletes objects from a bucket.
func (s *SupabaseStore) Remove(ctx context.Context, bucket string, paths []string) error {
	if _, err := s.client.RemoveFile(bucket, paths); err != nil {
		return fmt.Errorf("removing objects from %s: %w", bucket, err)
	}
	return nil
}
