package recordings

import (
	"context"
	"io"

	"github.com/voicelab/coach-api/internal/models"
)

// ObjectStore abstracts the external object storage used for practice audio.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, path string, data io.Reader, contentType string) error
	PublicURL(bucket, path string) string
	SignedURL(ctx context.Context, bucket, path string, expiresInSecs int) (string, error)
	Remove(ctx context.Context, bucket string, paths []string) error
}

// AssignmentSource resolves assignments so sharing can notify the teacher.
type AssignmentSource interface {
	GetAssignmentByID(ctx context.Context, id uint) (*models.Assignment, error)
}

// Notifier delivers feed entries when recordings are shared.
type Notifier interface {
	Notify(ctx context.Context, userID, kind, title, body, refType, refID string) error
}

// AudioUpload describes an incoming practice recording.
type AudioUpload struct {
	Filename     string
	ContentType  string
	SizeBytes    int64
	DurationSecs float64
	Data         io.Reader
}

// Repository defines the interface for recording data access
type Repository interface {
	CreateRecording(ctx context.Context, recording *models.Recording) error
	GetRecordingByID(ctx context.Context, id uint) (*models.Recording, error)
	ListForStudent(ctx context.Context, studentID string, limit, offset int) ([]models.Recording, int64, error)
	ListSharedForAssignment(ctx context.Context, assignmentID uint) ([]models.Recording, error)
	UpdateRecording(ctx context.Context, recording *models.Recording) error
	DeleteRecording(ctx context.Context, id uint) error
}

// Service defines the interface for recording business logic
type Service interface {
	UploadRecording(ctx context.Context, recording *models.Recording, upload AudioUpload, actorID string) error
	GetRecordingByID(ctx context.Context, id uint, actorID string) (*models.Recording, error)
	DownloadURL(ctx context.Context, id uint, actorID string) (string, error)
	ListForStudent(ctx context.Context, studentID string, actorID string, limit, offset int) ([]models.Recording, int64, error)
	ListSharedForAssignment(ctx context.Context, assignmentID uint, actorID string) ([]models.Recording, error)
	SetShared(ctx context.Context, id uint, shared bool, actorID string) (*models.Recording, error)
	DeleteRecording(ctx context.Context, id uint, actorID string) error
}
