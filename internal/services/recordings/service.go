package recordings

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/voicelab/coach-api/internal/models"
	apperrors "github.com/voicelab/coach-api/pkg/errors"
	"github.com/voicelab/coach-api/pkg/logger"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository     Repository
	store          ObjectStore
	assignments    AssignmentSource
	notifier       Notifier
	bucket         string
	maxUploadBytes int64
	log            *logger.Logger
}

// NewService creates a new recording service
func NewService(repository Repository, store ObjectStore, assignments AssignmentSource, notifier Notifier, bucket string, maxUploadBytes int64, log *logger.Logger) Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &ServiceImpl{
		repository:     repository,
		store:          store,
		assignments:    assignments,
		notifier:       notifier,
		bucket:         bucket,
		maxUploadBytes: maxUploadBytes,
		log:            log,
	}
}

// UploadRecording stores a practice recording's audio and persists the row.
// The recording always belongs to the uploading student.
func (s *ServiceImpl) UploadRecording(ctx context.Context, recording *models.Recording, upload AudioUpload, actorID string) error {
	if s.store == nil {
		return apperrors.New(apperrors.ErrCodeConfigInvalid, "object storage is not configured")
	}
	if !strings.HasPrefix(upload.ContentType, "audio/") {
		return apperrors.ValidationError("content_type", "must be an audio type")
	}
	if s.maxUploadBytes > 0 && upload.SizeBytes > s.maxUploadBytes {
		return apperrors.ValidationError("file", fmt.Sprintf("exceeds maximum upload size of %d bytes", s.maxUploadBytes))
	}

	if recording.AssignmentID != nil && s.assignments != nil {
		assignment, err := s.assignments.GetAssignmentByID(ctx, *recording.AssignmentID)
		if err != nil {
			return apperrors.NotFound("assignment", *recording.AssignmentID)
		}
		if assignment.StudentID != actorID {
			return apperrors.Forbidden("record against another student's assignment")
		}
	}

	recording.StudentID = actorID
	recording.SharedWithTeacher = false

	objectPath := fmt.Sprintf("recordings/%s/%s%s", actorID, uuid.New().String(), path.Ext(upload.Filename))
	if err := s.store.Upload(ctx, s.bucket, objectPath, upload.Data, upload.ContentType); err != nil {
		return apperrors.ExternalServiceError("storage", err)
	}

	recording.Bucket = s.bucket
	recording.Path = objectPath
	recording.AudioURL = s.store.PublicURL(s.bucket, objectPath)
	recording.ContentType = upload.ContentType
	recording.SizeBytes = upload.SizeBytes
	recording.DurationSecs = upload.DurationSecs

	if err := s.repository.CreateRecording(ctx, recording); err != nil {
		return apperrors.DatabaseError("create recording", err)
	}

	s.log.Info("recording uploaded", "recording_uuid", recording.UUID, "student_id", actorID, "size_bytes", upload.SizeBytes)
	return nil
}

// GetRecordingByID retrieves a recording. The owning student always has
// access; the assignment's teacher has access once it is shared.
func (s *ServiceImpl) GetRecordingByID(ctx context.Context, id uint, actorID string) (*models.Recording, error) {
	recording, err := s.repository.GetRecordingByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("recording", id)
	}
	if recording.StudentID == actorID {
		return recording, nil
	}
	if recording.SharedWithTeacher && recording.AssignmentID != nil && s.assignments != nil {
		assignment, err := s.assignments.GetAssignmentByID(ctx, *recording.AssignmentID)
		if err == nil && assignment.AssignedBy == actorID {
			return recording, nil
		}
	}
	return nil, apperrors.Forbidden("access another student's recording")
}

// Recordings are never public; download links expire.
const downloadURLTTLSecs = 900

// DownloadURL returns a time-limited download link for a recording's audio.
// Access follows the same rules as reading the recording itself.
func (s *ServiceImpl) DownloadURL(ctx context.Context, id uint, actorID string) (string, error) {
	recording, err := s.GetRecordingByID(ctx, id, actorID)
	if err != nil {
		return "", err
	}
	if s.store == nil {
		return "", apperrors.New(apperrors.ErrCodeConfigInvalid, "object storage is not configured")
	}

	url, err := s.store.SignedURL(ctx, recording.Bucket, recording.Path, downloadURLTTLSecs)
	if err != nil {
		return "", apperrors.ExternalServiceError("storage", err)
	}
	return url, nil
}

// ListForStudent retrieves a student's own recordings
func (s *ServiceImpl) ListForStudent(ctx context.Context, studentID string, actorID string, limit, offset int) ([]models.Recording, int64, error) {
	if studentID != actorID {
		return nil, 0, apperrors.Forbidden("list another student's recordings")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	recordings, total, err := s.repository.ListForStudent(ctx, studentID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.DatabaseError("list recordings", err)
	}
	return recordings, total, nil
}

// ListSharedForAssignment retrieves the shared recordings of an assignment.
// Only the assigning teacher and the assigned student may list.
func (s *ServiceImpl) ListSharedForAssignment(ctx context.Context, assignmentID uint, actorID string) ([]models.Recording, error) {
	if s.assignments != nil {
		assignment, err := s.assignments.GetAssignmentByID(ctx, assignmentID)
		if err != nil {
			return nil, apperrors.NotFound("assignment", assignmentID)
		}
		if assignment.AssignedBy != actorID && assignment.StudentID != actorID {
			return nil, apperrors.Forbidden("list recordings of another user's assignment")
		}
	}

	recordings, err := s.repository.ListSharedForAssignment(ctx, assignmentID)
	if err != nil {
		return nil, apperrors.DatabaseError("list shared recordings", err)
	}
	return recordings, nil
}

// SetShared toggles teacher visibility. Sharing notifies the assignment's
// teacher. Only the owning student may toggle.
func (s *ServiceImpl) SetShared(ctx context.Context, id uint, shared bool, actorID string) (*models.Recording, error) {
	recording, err := s.repository.GetRecordingByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("recording", id)
	}
	if recording.StudentID != actorID {
		return nil, apperrors.Forbidden("share another student's recording")
	}

	alreadyShared := recording.SharedWithTeacher
	recording.SharedWithTeacher = shared
	if err := s.repository.UpdateRecording(ctx, recording); err != nil {
		return nil, apperrors.DatabaseError("update recording", err)
	}

	if shared && !alreadyShared && recording.AssignmentID != nil && s.assignments != nil && s.notifier != nil {
		assignment, err := s.assignments.GetAssignmentByID(ctx, *recording.AssignmentID)
		if err == nil {
			// Best effort; the share itself is already persisted.
			if err := s.notifier.Notify(ctx, assignment.AssignedBy, models.NotificationRecordingShared,
				"Recording shared",
				"A student shared a practice recording with you",
				"recordings", recording.UUID); err != nil {
				s.log.Warn("share notification failed", "recording_uuid", recording.UUID, "error", err)
			}
		}
	}

	return recording, nil
}

// DeleteRecording removes a recording and its stored audio. Only the owner
// may delete.
func (s *ServiceImpl) DeleteRecording(ctx context.Context, id uint, actorID string) error {
	recording, err := s.repository.GetRecordingByID(ctx, id)
	if err != nil {
		return apperrors.NotFound("recording", id)
	}
	if recording.StudentID != actorID {
		return apperrors.Forbidden("delete another student's recording")
	}

	if recording.Path != "" && s.store != nil {
		if err := s.store.Remove(ctx, recording.Bucket, []string{recording.Path}); err != nil {
			s.log.Warn("failed to remove recording object", "recording_uuid", recording.UUID, "error", err)
		}
	}

	if err := s.repository.DeleteRecording(ctx, recording.ID); err != nil {
		return apperrors.DatabaseError("delete recording", err)
	}
	return nil
}
