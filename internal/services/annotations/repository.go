package annotations

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/voicelab/coach-api/internal/models"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new annotation repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateAnnotation creates a new annotation in the database
func (r *RepositoryImpl) CreateAnnotation(ctx context.Context, annotation *models.Annotation) error {
	if err := r.db.WithContext(ctx).Create(annotation).Error; err != nil {
		return fmt.Errorf("creating annotation: %w", err)
	}
	return nil
}

// GetAnnotationByID retrieves an annotation by its ID
func (r *RepositoryImpl) GetAnnotationByID(ctx context.Context, id uint) (*models.Annotation, error) {
	var annotation models.Annotation
	if err := r.db.WithContext(ctx).First(&annotation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("annotation not found")
		}
		return nil, fmt.Errorf("getting annotation: %w", err)
	}
	return &annotation, nil
}

// ListForContext retrieves the annotations visible in the given viewing
// context, ordered by start offset
func (r *RepositoryImpl) ListForContext(ctx context.Context, mediaID uint, view ViewContext) ([]models.Annotation, error) {
	query := r.db.WithContext(ctx).Where("media_id = ?", mediaID)

	switch view.Mode {
	case ModeLessonCreation:
		query = query.Where("annotation_type = ?", models.AnnotationGlobal)

	case ModeAssignment:
		if view.AssignmentID != nil {
			query = query.Where(
				"annotation_type = ? OR (annotation_type = ? AND assignment_id = ?)",
				models.AnnotationGlobal, models.AnnotationStudentSpecific, *view.AssignmentID,
			)
		} else {
			query = query.Where("annotation_type = ?", models.AnnotationGlobal)
		}

	case ModePractice:
		if view.IsTeacher {
			query = query.Where(
				"annotation_type = ? OR (annotation_type = ? AND (created_by = ? OR visible_to_teacher = ?))",
				models.AnnotationGlobal, models.AnnotationPrivate, view.UserID, true,
			)
		} else {
			query = query.Where(
				"annotation_type = ? OR (annotation_type = ? AND created_by = ?)",
				models.AnnotationGlobal, models.AnnotationPrivate, view.UserID,
			)
		}

	default:
		return nil, fmt.Errorf("unknown context mode %q", view.Mode)
	}

	var annotations []models.Annotation
	if err := query.Order("start_index ASC").Find(&annotations).Error; err != nil {
		return nil, fmt.Errorf("listing annotations for media: %w", err)
	}
	return annotations, nil
}

// UpdateAnnotation updates an existing annotation
func (r *RepositoryImpl) UpdateAnnotation(ctx context.Context, annotation *models.Annotation) error {
	result := r.db.WithContext(ctx).Save(annotation)
	if result.Error != nil {
		return fmt.Errorf("updating annotation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("annotation not found")
	}
	return nil
}

// DeleteAnnotation deletes an annotation by its ID
func (r *RepositoryImpl) DeleteAnnotation(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Annotation{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting annotation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("annotation not found")
	}
	return nil
}

// CheckOverlapping checks whether the candidate's range overlaps an
// existing annotation in the same visibility scope. Scopes are independent
// layers: global annotations only collide with global ones, student-specific
// with the same assignment, private with the same author.
func (r *RepositoryImpl) CheckOverlapping(ctx context.Context, candidate *models.Annotation, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.Annotation{}).
		Where("media_id = ? AND start_index < ? AND end_index > ?",
			candidate.MediaID, candidate.EndIndex, candidate.StartIndex).
		Where("annotation_type = ?", candidate.AnnotationType)

	switch candidate.AnnotationType {
	case models.AnnotationStudentSpecific:
		if candidate.AssignmentID == nil {
			return false, fmt.Errorf("student-specific annotation without assignment")
		}
		query = query.Where("assignment_id = ?", *candidate.AssignmentID)
	case models.AnnotationPrivate:
		query = query.Where("created_by = ?", candidate.CreatedBy)
	}

	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
