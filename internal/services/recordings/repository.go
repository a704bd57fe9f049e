package recordings

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/voicelab/coach-api/internal/models"
)

// RepositoryImpl implements the Repository interface using GORM
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new recording repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateRecording creates a new recording
func (r *RepositoryImpl) CreateRecording(ctx context.Context, recording *models.Recording) error {
	if err := r.db.WithContext(ctx).Create(recording).Error; err != nil {
		return fmt.Errorf("creating recording: %w", err)
	}
	return nil
}

// GetRecordingByID retrieves a recording by its database ID
func (r *RepositoryImpl) GetRecordingByID(ctx context.Context, id uint) (*models.Recording, error) {
	var recording models.Recording
	if err := r.db.WithContext(ctx).First(&recording, id).Error; err != nil {
		return nil, fmt.Errorf("getting recording by ID: %w", err)
	}
	return &recording, nil
}

// ListForStudent retrieves a student's recordings, newest first
func (r *RepositoryImpl) ListForStudent(ctx context.Context, studentID string, limit, offset int) ([]models.Recording, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Recording{}).Where("student_id = ?", studentID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting recordings: %w", err)
	}

	var recordings []models.Recording
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&recordings).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing recordings: %w", err)
	}

	return recordings, total, nil
}

// ListSharedForAssignment retrieves an assignment's teacher-shared recordings
func (r *RepositoryImpl) ListSharedForAssignment(ctx context.Context, assignmentID uint) ([]models.Recording, error) {
	var recordings []models.Recording
	err := r.db.WithContext(ctx).
		Where("assignment_id = ? AND shared_with_teacher = ?", assignmentID, true).
		Order("created_at DESC").
		Find(&recordings).Error
	if err != nil {
		return nil, fmt.Errorf("listing shared recordings: %w", err)
	}
	return recordings, nil
}

// UpdateRecording updates an existing recording
func (r *RepositoryImpl) UpdateRecording(ctx context.Context, recording *models.Recording) error {
	result := r.db.WithContext(ctx).Save(recording)
	if result.Error != nil {
		return fmt.Errorf("updating recording: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("recording not found")
	}
	return nil
}

// DeleteRecording deletes a recording
func (r *RepositoryImpl) DeleteRecording(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Recording{}, id).Error; err != nil {
		return fmt.Errorf("deleting recording: %w", err)
	}
	return nil
}
