package notifications

import (
	"context"

	"github.com/voicelab/coach-api/internal/models"
	apperrors "github.com/voicelab/coach-api/pkg/errors"
	"github.com/voicelab/coach-api/pkg/logger"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	log        *logger.Logger
}

// NewService creates a new notification service
func NewService(repository Repository, log *logger.Logger) Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &ServiceImpl{repository: repository, log: log}
}

// Notify creates a notification for a user. Failures are logged but
// returned so callers can decide whether delivery is best-effort.
func (s *ServiceImpl) Notify(ctx context.Context, userID, kind, title, body, refType, refID string) error {
	if userID == "" {
		return apperrors.MissingFieldError("user_id")
	}
	notification := &models.Notification{
		UserID:  userID,
		Kind:    kind,
		Title:   title,
		Body:    body,
		RefType: refType,
		RefID:   refID,
	}
	if err := s.repository.CreateNotification(ctx, notification); err != nil {
		s.log.Warn("failed to deliver notification", "user_id", userID, "kind", kind, "error", err)
		return apperrors.DatabaseError("create notification", err)
	}
	return nil
}

// ListForUser retrieves a user's notifications, newest first
func (s *ServiceImpl) ListForUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	items, total, err := s.repository.ListForUser(ctx, userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, 0, apperrors.DatabaseError("list notifications", err)
	}
	return items, total, nil
}

// CountUnread counts a user's unread notifications
func (s *ServiceImpl) CountUnread(ctx context.Context, userID string) (int64, error) {
	count, err := s.repository.CountUnread(ctx, userID)
	if err != nil {
		return 0, apperrors.DatabaseError("count unread notifications", err)
	}
	return count, nil
}

// MarkRead marks one of the actor's notifications as read
func (s *ServiceImpl) MarkRead(ctx context.Context, id uint, actorID string) error {
	notification, err := s.repository.GetNotificationByID(ctx, id)
	if err != nil {
		return apperrors.NotFound("notification", id)
	}
	if notification.UserID != actorID {
		return apperrors.Forbidden("read another user's notification")
	}
	if err := s.repository.MarkRead(ctx, id); err != nil {
		return apperrors.DatabaseError("mark notification read", err)
	}
	return nil
}

// MarkAllRead marks all of the actor's notifications as read
func (s *ServiceImpl) MarkAllRead(ctx context.Context, actorID string) error {
	if err := s.repository.MarkAllRead(ctx, actorID); err != nil {
		return apperrors.DatabaseError("mark notifications read", err)
	}
	return nil
}
