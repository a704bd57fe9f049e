package media

import (
	"context"
	"io"

	"github.com/voicelab/coach-api/internal/models"
)

// ObjectStore abstracts the external object storage used for audio files.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, path string, data io.Reader, contentType string) error
	PublicURL(bucket, path string) string
	SignedURL(ctx context.Context, bucket, path string, expiresInSecs int) (string, error)
	Remove(ctx context.Context, bucket string, paths []string) error
}

// AudioUpload describes an incoming audio object.
type AudioUpload struct {
	Filename    string
	ContentType string
	SizeBytes   int64
	Data        io.Reader
}

// Repository defines the interface for media data access
type Repository interface {
	// Create operations
	CreateMedia(ctx context.Context, media *models.Media) error

	// Read operations
	GetMediaByID(ctx context.Context, id uint) (*models.Media, error)
	GetMediaByUUID(ctx context.Context, uuid string) (*models.Media, error)
	ListMedia(ctx context.Context, limit, offset int) ([]models.Media, int64, error)

	// Update operations
	UpdateMedia(ctx context.Context, media *models.Media) error

	// Delete operations
	DeleteMedia(ctx context.Context, id uint) error
}

// Service defines the interface for media business logic
type Service interface {
	// Create operations
	CreateMedia(ctx context.Context, media *models.Media, actorID string) error

	// Read operations
	GetMediaByID(ctx context.Context, id uint) (*models.Media, error)
	GetMediaByUUID(ctx context.Context, uuid string) (*models.Media, error)
	ListMedia(ctx context.Context, limit, offset int) ([]models.Media, int64, error)

	// Update operations
	UpdateLyrics(ctx context.Context, id uint, lyrics string, actorID string) (*models.Media, error)
	AttachAudio(ctx context.Context, id uint, upload AudioUpload, actorID string) (*models.Media, error)

	// Delete operations
	DeleteMedia(ctx context.Context, id uint, actorID string) error
}
