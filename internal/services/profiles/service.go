package profiles

import (
	"context"
	"strings"

	"github.com/voicelab/coach-api/internal/models"
	apperrors "github.com/voicelab/coach-api/pkg/errors"
	"github.com/voicelab/coach-api/pkg/logger"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	log        *logger.Logger
}

// NewService creates a new profile service
func NewService(repository Repository, log *logger.Logger) Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &ServiceImpl{repository: repository, log: log}
}

// EnsureProfile upserts the durable profile row from validated claims.
// Unknown roles fall back to student.
func (s *ServiceImpl) EnsureProfile(ctx context.Context, id, email, role string) (*models.UserProfile, error) {
	if id == "" {
		return nil, apperrors.MissingFieldError("id")
	}
	if role != models.RoleTeacher {
		role = models.RoleStudent
	}

	profile := &models.UserProfile{
		ID:    id,
		Email: email,
		Role:  role,
	}
	if err := s.repository.UpsertProfile(ctx, profile); err != nil {
		return nil, apperrors.DatabaseError("upsert profile", err)
	}

	stored, err := s.repository.GetProfileByID(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError("get profile", err)
	}
	return stored, nil
}

// GetProfile retrieves a profile by provider ID
func (s *ServiceImpl) GetProfile(ctx context.Context, id string) (*models.UserProfile, error) {
	profile, err := s.repository.GetProfileByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("profile", id)
	}
	return profile, nil
}

// ListStudents retrieves student profiles. Teacher only.
func (s *ServiceImpl) ListStudents(ctx context.Context, actorID string, limit, offset int) ([]models.UserProfile, int64, error) {
	actor, err := s.repository.GetProfileByID(ctx, actorID)
	if err != nil {
		return nil, 0, apperrors.NotFound("profile", actorID)
	}
	if !actor.IsTeacher() {
		return nil, 0, apperrors.Forbidden("list students without the teacher role")
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	students, total, err := s.repository.ListStudents(ctx, limit, offset)
	if err != nil {
		return nil, 0, apperrors.DatabaseError("list students", err)
	}
	return students, total, nil
}

// UpdateProfile updates the user-managed profile fields. Users may only
// update their own profile; the role comes from the identity provider and
// is not mutable here.
func (s *ServiceImpl) UpdateProfile(ctx context.Context, id string, displayName, bio, avatarURL string, actorID string) (*models.UserProfile, error) {
	if id != actorID {
		return nil, apperrors.Forbidden("update another user's profile")
	}

	profile, err := s.repository.GetProfileByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("profile", id)
	}

	if strings.TrimSpace(displayName) != "" {
		profile.DisplayName = displayName
	}
	if bio != "" {
		profile.Bio = bio
	}
	if avatarURL != "" {
		profile.AvatarURL = avatarURL
	}

	if err := s.repository.UpdateProfile(ctx, profile); err != nil {
		return nil, apperrors.DatabaseError("update profile", err)
	}
	return profile, nil
}
