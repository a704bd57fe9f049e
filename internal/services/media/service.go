package media

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
	audioBucket    string
	maxUploadBytes int64
	log            *logger.Logger
}

// NewService creates a new media service. store may be nil when object
// storage is not configured; audio operations then fail with a clear error.
func NewService(repository Repository, store ObjectStore, audioBucket string, maxUploadBytes int64, log *logger.Logger) Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &ServiceImpl{
		repository:     repository,
		store:          store,
		audioBucket:    audioBucket,
		maxUploadBytes: maxUploadBytes,
		log:            log,
	}
}

// CreateMedia validates and persists a new media item
func (s *ServiceImpl) CreateMedia(ctx context.Context, media *models.Media, actorID string) error {
	if strings.TrimSpace(media.Title) == "" {
		return apperrors.MissingFieldError("title")
	}
	media.CreatedBy = actorID
	if err := s.repository.CreateMedia(ctx, media); err != nil {
		return apperrors.DatabaseError("create media", err)
	}
	return nil
}

// GetMediaByID retrieves a media item by its database ID
func (s *ServiceImpl) GetMediaByID(ctx context.Context, id uint) (*models.Media, error) {
	media, err := s.repository.GetMediaByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("media", id)
	}
	return media, nil
}

// GetMediaByUUID retrieves a media item by its UUID
func (s *ServiceImpl) GetMediaByUUID(ctx context.Context, uuid string) (*models.Media, error) {
	media, err := s.repository.GetMediaByUUID(ctx, uuid)
	if err != nil {
		return nil, apperrors.NotFound("media", uuid)
	}
	return media, nil
}

// ListMedia retrieves media items with pagination
func (s *ServiceImpl) ListMedia(ctx context.Context, limit, offset int) ([]models.Media, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	items, total, err := s.repository.ListMedia(ctx, limit, offset)
	if err != nil {
		return nil, 0, apperrors.DatabaseError("list media", err)
	}
	return items, total, nil
}

// UpdateLyrics replaces the lyrics text. Only the owner may update.
// Existing annotations keep their offsets; ranges that no longer fit are
// dropped when views are built.
func (s *ServiceImpl) UpdateLyrics(ctx context.Context, id uint, lyrics string, actorID string) (*models.Media, error) {
	media, err := s.repository.GetMediaByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("media", id)
	}
	if media.CreatedBy != actorID {
		return nil, apperrors.Forbidden("update media owned by another user")
	}

	media.LyricsText = lyrics
	if err := s.repository.UpdateMedia(ctx, media); err != nil {
		return nil, apperrors.DatabaseError("update media", err)
	}

	s.log.Info("lyrics updated", "media_uuid", media.UUID, "lyrics_len", len(lyrics))
	return media, nil
}

// AttachAudio uploads a backing-track audio object and links it to the
// media item. Only the owner may attach audio.
func (s *ServiceImpl) AttachAudio(ctx context.Context, id uint, upload AudioUpload, actorID string) (*models.Media, error) {
	if s.store == nil {
		return nil, apperrors.New(apperrors.ErrCodeConfigInvalid, "object storage is not configured")
	}

	media, err := s.repository.GetMediaByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("media", id)
	}
	if media.CreatedBy != actorID {
		return nil, apperrors.Forbidden("attach audio to media owned by another user")
	}

	if !strings.HasPrefix(upload.ContentType, "audio/") {
		return nil, apperrors.ValidationError("content_type", "must be an audio type")
	}
	if s.maxUploadBytes > 0 && upload.SizeBytes > s.maxUploadBytes {
		return nil, apperrors.ValidationError("file", fmt.Sprintf("exceeds maximum upload size of %d bytes", s.maxUploadBytes))
	}

	objectPath := fmt.Sprintf("media/%s/%s%s", media.UUID, uuid.New().String(), path.Ext(upload.Filename))
	if err := s.store.Upload(ctx, s.audioBucket, objectPath, upload.Data, upload.ContentType); err != nil {
		return nil, apperrors.ExternalServiceError("storage", err)
	}

	media.AudioBucket = s.audioBucket
	media.AudioPath = objectPath
	media.AudioURL = s.store.PublicURL(s.audioBucket, objectPath)
	media.ContentType = upload.ContentType
	media.SizeBytes = upload.SizeBytes

	if err := s.repository.UpdateMedia(ctx, media); err != nil {
		return nil, apperrors.DatabaseError("update media", err)
	}

	s.log.Info("audio attached", "media_uuid", media.UUID, "path", objectPath, "size_bytes", upload.SizeBytes)
	return media, nil
}

// DeleteMedia deletes a media item and its stored audio object.
// Only the owner may delete.
func (s *ServiceImpl) DeleteMedia(ctx context.Context, id uint, actorID string) error {
	media, err := s.repository.GetMediaByID(ctx, id)
	if err != nil {
		return apperrors.NotFound("media", id)
	}
	if media.CreatedBy != actorID {
		return apperrors.Forbidden("delete media owned by another user")
	}

	if media.AudioPath != "" && s.store != nil {
		if err := s.store.Remove(ctx, media.AudioBucket, []string{media.AudioPath}); err != nil {
			// The DB row is the source of truth; orphaned objects are
			// cleaned up out of band.
			s.log.Warn("failed to remove audio object", "media_uuid", media.UUID, "error", err)
		}
	}

	if err := s.repository.DeleteMedia(ctx, media.ID); err != nil {
		return apperrors.DatabaseError("delete media", err)
	}
	return nil
}
