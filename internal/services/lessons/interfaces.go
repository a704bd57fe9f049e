package lessons

import (
	"context"

	"github.com/voicelab/coach-api/internal/models"
)

// Notifier delivers feed entries when assignments are created.
type Notifier interface {
	Notify(ctx context.Context, userID, kind, title, body, refType, refID string) error
}

// ProfileSource resolves user profiles for role checks.
type ProfileSource interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
}

// Repository defines the interface for lesson data access
type Repository interface {
	// Lesson operations
	CreateLesson(ctx context.Context, lesson *models.Lesson) error
	GetLessonByID(ctx context.Context, id uint) (*models.Lesson, error)
	GetLessonByUUID(ctx context.Context, uuid string) (*models.Lesson, error)
	ListLessons(ctx context.Context, createdBy string, publishedOnly bool, limit, offset int) ([]models.Lesson, int64, error)
	UpdateLesson(ctx context.Context, lesson *models.Lesson) error
	DeleteLesson(ctx context.Context, id uint) error

	// Step operations
	CreateStep(ctx context.Context, step *models.LessonStep) error
	GetStepByID(ctx context.Context, id uint) (*models.LessonStep, error)
	MaxStepPosition(ctx context.Context, lessonID uint) (int, error)
	UpdateStep(ctx context.Context, step *models.LessonStep) error
	DeleteStep(ctx context.Context, id uint) error

	// Assignment operations
	CreateAssignment(ctx context.Context, assignment *models.Assignment) error
	GetAssignmentByID(ctx context.Context, id uint) (*models.Assignment, error)
	ListAssignmentsForStudent(ctx context.Context, studentID string, limit, offset int) ([]models.Assignment, int64, error)
	ListAssignmentsForLesson(ctx context.Context, lessonID uint) ([]models.Assignment, error)
	UpdateAssignment(ctx context.Context, assignment *models.Assignment) error
}

// Service defines the interface for lesson business logic
type Service interface {
	// Lesson operations
	CreateLesson(ctx context.Context, lesson *models.Lesson, actorID string) error
	GetLessonByID(ctx context.Context, id uint) (*models.Lesson, error)
	ListLessons(ctx context.Context, createdBy string, publishedOnly bool, limit, offset int) ([]models.Lesson, int64, error)
	UpdateLesson(ctx context.Context, id uint, title, description string, published *bool, actorID string) (*models.Lesson, error)
	DeleteLesson(ctx context.Context, id uint, actorID string) error

	// Step operations
	AddStep(ctx context.Context, lessonID uint, step *models.LessonStep, actorID string) error
	UpdateStep(ctx context.Context, stepID uint, title, instructions string, mediaID *uint, actorID string) (*models.LessonStep, error)
	RemoveStep(ctx context.Context, stepID uint, actorID string) error

	// Assignment operations
	AssignLesson(ctx context.Context, lessonID uint, studentID string, notes string, actorID string) (*models.Assignment, error)
	GetAssignmentByID(ctx context.Context, id uint) (*models.Assignment, error)
	ListAssignmentsForStudent(ctx context.Context, studentID string, limit, offset int) ([]models.Assignment, int64, error)
	UpdateAssignmentStatus(ctx context.Context, id uint, status string, actorID string) (*models.Assignment, error)
}
