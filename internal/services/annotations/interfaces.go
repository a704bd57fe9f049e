package annotations

import (
	"context"

	"github.com/voicelab/coach-api/internal/models"
	"github.com/voicelab/coach-api/pkg/textrange"
)

// ContextMode identifies the viewing situation that determines which
// annotations are fetched and which are editable.
type ContextMode string

const (
	ModeLessonCreation ContextMode = "lesson_creation"
	ModeAssignment     ContextMode = "assignment"
	ModePractice       ContextMode = "practice"
)

// ViewContext describes who is looking at a media item and in which mode.
// It is constructed per request from validated claims and never persisted.
type ViewContext struct {
	Mode         ContextMode
	UserID       string
	IsTeacher    bool
	AssignmentID *uint
}

// UpdatePatch carries the mutable annotation fields. Offsets are immutable
// after creation.
type UpdatePatch struct {
	AnnotationText   string
	VisibleToTeacher *bool
}

// SegmentView is one renderable slice of the lyrics text, plain or
// highlighted.
type SegmentView struct {
	Text       string             `json:"text"`
	Annotation *models.Annotation `json:"annotation,omitempty"`
	Editable   bool               `json:"editable,omitempty"`
	Style      string             `json:"style,omitempty"`
}

// MediaSource provides the lyrics text that annotations anchor into.
type MediaSource interface {
	GetMediaByID(ctx context.Context, id uint) (*models.Media, error)
}

// AssignmentSource resolves assignments so student-specific annotations can
// be checked against the assignment's parties.
type AssignmentSource interface {
	GetAssignmentByID(ctx context.Context, id uint) (*models.Assignment, error)
}

// Notifier delivers feed entries when annotations are added for a student.
type Notifier interface {
	Notify(ctx context.Context, userID, kind, title, body, refType, refID string) error
}

// Repository defines the interface for annotation data access
type Repository interface {
	// Create operations
	CreateAnnotation(ctx context.Context, annotation *models.Annotation) error

	// Read operations
	GetAnnotationByID(ctx context.Context, id uint) (*models.Annotation, error)
	ListForContext(ctx context.Context, mediaID uint, view ViewContext) ([]models.Annotation, error)

	// Update operations
	UpdateAnnotation(ctx context.Context, annotation *models.Annotation) error

	// Delete operations
	DeleteAnnotation(ctx context.Context, id uint) error

	// CheckOverlapping reports whether the candidate's range overlaps an
	// existing annotation in the same visibility scope on the same media.
	CheckOverlapping(ctx context.Context, candidate *models.Annotation, excludeID uint) (bool, error)
}

// Service defines the interface for annotation business logic
type Service interface {
	// Create operations
	CreateAnnotation(ctx context.Context, annotation *models.Annotation, actorID string) error

	// Read operations
	GetAnnotationByID(ctx context.Context, id uint) (*models.Annotation, error)
	ListForContext(ctx context.Context, mediaID uint, view ViewContext) ([]models.Annotation, error)
	BuildView(ctx context.Context, mediaID uint, view ViewContext) ([]SegmentView, error)
	ResolveSelection(ctx context.Context, mediaID uint, nodes []string, sel textrange.Selection) (textrange.Extract, error)

	// Update operations
	UpdateAnnotation(ctx context.Context, id uint, patch UpdatePatch, actorID string) (*models.Annotation, error)

	// Delete operations
	DeleteAnnotation(ctx context.Context, id uint, actorID string) error
}
