package profiles

import (
	"context"

	"github.com/voicelab/coach-api/internal/models"
)

// Repository defines the interface for profile data access
type Repository interface {
	UpsertProfile(ctx context.Context, profile *models.UserProfile) error
	GetProfileByID(ctx context.Context, id string) (*models.UserProfile, error)
	ListStudents(ctx context.Context, limit, offset int) ([]models.UserProfile, int64, error)
	UpdateProfile(ctx context.Context, profile *models.UserProfile) error
}

// Service defines the interface for profile business logic
type Service interface {
	// EnsureProfile upserts the durable profile row from validated claims.
	EnsureProfile(ctx context.Context, id, email, role string) (*models.UserProfile, error)
	GetProfile(ctx context.Context, id string) (*models.UserProfile, error)
	ListStudents(ctx context.Context, actorID string, limit, offset int) ([]models.UserProfile, int64, error)
	UpdateProfile(ctx context.Context, id string, displayName, bio, avatarURL string, actorID string) (*models.UserProfile, error)
}
