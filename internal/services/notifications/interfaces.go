package notifications

import (
	"context"

	"github.com/voicelab/coach-api/internal/models"
)

// Repository defines the interface for notification data access
type Repository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	GetNotificationByID(ctx context.Context, id uint) (*models.Notification, error)
	ListForUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id uint) error
	MarkAllRead(ctx context.Context, userID string) error
}

// Service defines the interface for notification business logic
type Service interface {
	Notify(ctx context.Context, userID, kind, title, body, refType, refID string) error
	ListForUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id uint, actorID string) error
	MarkAllRead(ctx context.Context, actorID string) error
}
