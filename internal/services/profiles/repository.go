package profiles

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/voicelab/coach-api/internal/models"
)

// RepositoryImpl implements the Repository interface using GORM
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new profile repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// UpsertProfile creates or refreshes a profile row keyed by provider ID.
// Display name, bio and avatar are user-managed and left untouched on
// conflict.
func (r *RepositoryImpl) UpsertProfile(ctx context.Context, profile *models.UserProfile) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "role", "updated_at"}),
		}).
		Create(profile).Error
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

// GetProfileByID retrieves a profile by provider ID
func (r *RepositoryImpl) GetProfileByID(ctx context.Context, id string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("getting profile by ID: %w", err)
	}
	return &profile, nil
}

// ListStudents retrieves student profiles with pagination
func (r *RepositoryImpl) ListStudents(ctx context.Context, limit, offset int) ([]models.UserProfile, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.UserProfile{}).Where("role = ?", models.RoleStudent)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting students: %w", err)
	}

	var students []models.UserProfile
	err := query.
		Order("display_name ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&students).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing students: %w", err)
	}

	return students, total, nil
}

// UpdateProfile updates an existing profile
func (r *RepositoryImpl) UpdateProfile(ctx context.Context, profile *models.UserProfile) error {
	result := r.db.WithContext(ctx).Save(profile)
	if result.Error != nil {
		return fmt.Errorf("updating profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("profile not found")
	}
	return nil
}
