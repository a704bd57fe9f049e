package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/voicelab/coach-api/pkg/textrange"
)

// Annotation visibility types.
const (
	AnnotationGlobal          = "global"           // visible to every student of the lesson
	AnnotationStudentSpecific = "student_specific" // visible within one assignment
	AnnotationPrivate         = "private"          // visible to the author, optionally the teacher
)

// MaxAnnotationTextLen bounds the free-form note length.
const MaxAnnotationTextLen = 500

// Annotation is a user-authored note anchored to a rune-offset range within
// a media item's lyrics text. The range is half-open (EndIndex exclusive)
// and immutable after creation; HighlightedText is a snapshot of the
// covered substring at creation time.
type Annotation struct {
	gorm.Model
	UUID            string `json:"uuid" gorm:"uniqueIndex"`
	MediaID         uint   `json:"media_id" gorm:"not null;index"`
	StartIndex      int    `json:"start_index" gorm:"not null"`
	EndIndex        int    `json:"end_index" gorm:"not null"`
	HighlightedText string `json:"highlighted_text" gorm:"type:text"`
	AnnotationText  string `json:"annotation_text" gorm:"size:500"`
	AnnotationType  string `json:"annotation_type" gorm:"not null;default:global;index"`

	// Set when AnnotationType is student_specific, absent otherwise.
	StudentID    string `json:"student_id,omitempty" gorm:"index"`
	AssignmentID *uint  `json:"assignment_id,omitempty" gorm:"index"`

	CreatedBy string `json:"created_by" gorm:"not null;index"`

	// Meaningful only for private annotations.
	VisibleToTeacher bool `json:"visible_to_teacher" gorm:"default:false"`

	// Relationship
	Media Media `json:"media,omitempty" gorm:"foreignKey:MediaID"`
}

// Span returns the annotation's range as a textrange span.
func (a *Annotation) Span() textrange.Span {
	return textrange.Span{Start: a.StartIndex, End: a.EndIndex}
}

// BeforeCreate generates a UUID before creating a new annotation
func (a *Annotation) BeforeCreate(tx *gorm.DB) error {
	if a.UUID == "" {
		a.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Annotation model
func (Annotation) TableName() string {
	return "annotations"
}
