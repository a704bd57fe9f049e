package lessons

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

// NewRepository creates a new lesson repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateLesson creates a new lesson
func (r *RepositoryImpl) CreateLesson(ctx context.Context, lesson *models.Lesson) error {
	if err := r.db.WithContext(ctx).Create(lesson).Error; err != nil {
		return fmt.Errorf("creating lesson: %w", err)
	}
	return nil
}

// GetLessonByID retrieves a lesson with its steps ordered by position
func (r *RepositoryImpl) GetLessonByID(ctx context.Context, id uint) (*models.Lesson, error) {
	var lesson models.Lesson
	err := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Steps.Media").
		First(&lesson, id).Error
	if err != nil {
		return nil, fmt.Errorf("getting lesson by ID: %w", err)
	}
	return &lesson, nil
}

// GetLessonByUUID retrieves a lesson by its UUID
func (r *RepositoryImpl) GetLessonByUUID(ctx context.Context, uuid string) (*models.Lesson, error) {
	var lesson models.Lesson
	err := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("uuid = ?", uuid).
		First(&lesson).Error
	if err != nil {
		return nil, fmt.Errorf("getting lesson by UUID: %w", err)
	}
	return &lesson, nil
}

// ListLessons retrieves lessons with optional creator and published filters
func (r *RepositoryImpl) ListLessons(ctx context.Context, createdBy string, publishedOnly bool, limit, offset int) ([]models.Lesson, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Lesson{})
	if createdBy != "" {
		query = query.Where("created_by = ?", createdBy)
	}
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting lessons: %w", err)
	}

	var lessons []models.Lesson
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&lessons).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing lessons: %w", err)
	}

	return lessons, total, nil
}

// UpdateLesson updates an existing lesson
func (r *RepositoryImpl) UpdateLesson(ctx context.Context, lesson *models.Lesson) error {
	result := r.db.WithContext(ctx).Save(lesson)
	if result.Error != nil {
		return fmt.Errorf("updating lesson: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("lesson not found")
	}
	return nil
}

// DeleteLesson deletes a lesson and its steps
func (r *RepositoryImpl) DeleteLesson(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lesson_id = ?", id).Delete(&models.LessonStep{}).Error; err != nil {
			return fmt.Errorf("deleting lesson steps: %w", err)
		}
		if err := tx.Delete(&models.Lesson{}, id).Error; err != nil {
			return fmt.Errorf("deleting lesson: %w", err)
		}
		return nil
	})
}

// CreateStep creates a new lesson step
func (r *RepositoryImpl) CreateStep(ctx context.Context, step *models.LessonStep) error {
	if err := r.db.WithContext(ctx).Create(step).Error; err != nil {
		return fmt.Errorf("creating lesson step: %w", err)
	}
	return nil
}

// GetStepByID retrieves a lesson step by its database ID
func (r *RepositoryImpl) GetStepByID(ctx context.Context, id uint) (*models.LessonStep, error) {
	var step models.LessonStep
	if err := r.db.WithContext(ctx).First(&step, id).Error; err != nil {
		return nil, fmt.Errorf("getting lesson step by ID: %w", err)
	}
	return &step, nil
}

// MaxStepPosition returns the highest step position in a lesson, 0 if none
func (r *RepositoryImpl) MaxStepPosition(ctx context.Context, lessonID uint) (int, error) {
	var max int
	err := r.db.WithContext(ctx).
		Model(&models.LessonStep{}).
		Where("lesson_id = ?", lessonID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("getting max step position: %w", err)
	}
	return max, nil
}

// UpdateStep updates an existing lesson step
func (r *RepositoryImpl) UpdateStep(ctx context.Context, step *models.LessonStep) error {
	result := r.db.WithContext(ctx).Save(step)
	if result.Error != nil {
		return fmt.Errorf("updating lesson step: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("lesson step not found")
	}
	return nil
}

// DeleteStep deletes a lesson step
func (r *RepositoryImpl) DeleteStep(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.LessonStep{}, id).Error; err != nil {
		return fmt.Errorf("deleting lesson step: %w", err)
	}
	return nil
}

// CreateAssignment creates a new assignment
func (r *RepositoryImpl) CreateAssignment(ctx context.Context, assignment *models.Assignment) error {
	if err := r.db.WithContext(ctx).Create(assignment).Error; err != nil {
		return fmt.Errorf("creating assignment: %w", err)
	}
	return nil
}

// GetAssignmentByID retrieves an assignment with its lesson
func (r *RepositoryImpl) GetAssignmentByID(ctx context.Context, id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.WithContext(ctx).
		Preload("Lesson").
		First(&assignment, id).Error
	if err != nil {
		return nil, fmt.Errorf("getting assignment by ID: %w", err)
	}
	return &assignment, nil
}

// ListAssignmentsForStudent retrieves a student's assignments, newest first
func (r *RepositoryImpl) ListAssignmentsForStudent(ctx context.Context, studentID string, limit, offset int) ([]models.Assignment, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Assignment{}).Where("student_id = ?", studentID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting assignments: %w", err)
	}

	var assignments []models.Assignment
	err := query.
		Preload("Lesson").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&assignments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing assignments: %w", err)
	}

	return assignments, total, nil
}

// ListAssignmentsForLesson retrieves all assignments of a lesson
func (r *RepositoryImpl) ListAssignmentsForLesson(ctx context.Context, lessonID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.WithContext(ctx).
		Where("lesson_id = ?", lessonID).
		Order("created_at DESC").
		Find(&assignments).Error
	if err != nil {
		return nil, fmt.Errorf("listing lesson assignments: %w", err)
	}
	return assignments, nil
}

// UpdateAssignment updates an existing assignment
func (r *RepositoryImpl) UpdateAssignment(ctx context.Context, assignment *models.Assignment) error {
	result := r.db.WithContext(ctx).Save(assignment)
	if result.Error != nil {
		return fmt.Errorf("updating assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("assignment not found")
	}
	return nil
}
