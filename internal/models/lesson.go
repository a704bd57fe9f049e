package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assignment status values.
const (
	AssignmentAssigned   = "assigned"
	AssignmentInProgress = "in_progress"
	AssignmentCompleted  = "completed"
)

// Lesson is a teacher-authored, multi-step voice-training lesson.
type Lesson struct {
	gorm.Model
	UUID        string       `json:"uuid" gorm:"uniqueIndex"`
	Title       string       `json:"title" gorm:"not null"`
	Description string       `json:"description" gorm:"type:text"`
	CreatedBy   string       `json:"created_by" gorm:"not null;index"`
	Published   bool         `json:"published" gorm:"default:false"`
	Steps       []LessonStep `json:"steps,omitempty" gorm:"foreignKey:LessonID"`
}

// BeforeCreate generates a UUID before creating a new lesson
func (l *Lesson) BeforeCreate(tx *gorm.DB) error {
	if l.UUID == "" {
		l.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Lesson model
func (Lesson) TableName() string {
	return "lessons"
}

// LessonStep is one ordered step of a lesson, optionally backed by a media
// item (lyric sheet and/or backing track).
type LessonStep struct {
	gorm.Model
	LessonID     uint   `json:"lesson_id" gorm:"not null;index"`
	Position     int    `json:"position" gorm:"not null"`
	Title        string `json:"title" gorm:"not null"`
	Instructions string `json:"instructions" gorm:"type:text"`
	MediaID      *uint  `json:"media_id,omitempty" gorm:"index"`
	Media        *Media `json:"media,omitempty" gorm:"foreignKey:MediaID"`
}

// TableName returns the table name for the LessonStep model
func (LessonStep) TableName() string {
	return "lesson_steps"
}

// Assignment links a lesson to a student. Student-specific annotations and
// practice recordings hang off the assignment.
type Assignment struct {
	gorm.Model
	UUID       string `json:"uuid" gorm:"uniqueIndex"`
	LessonID   uint   `json:"lesson_id" gorm:"not null;index"`
	StudentID  string `json:"student_id" gorm:"not null;index"`
	AssignedBy string `json:"assigned_by" gorm:"not null"`
	Status     string `json:"status" gorm:"not null;default:assigned"`
	Notes      string `json:"notes" gorm:"type:text"`
	Lesson     Lesson `json:"lesson,omitempty" gorm:"foreignKey:LessonID"`
}

// BeforeCreate generates a UUID before creating a new assignment
func (a *Assignment) BeforeCreate(tx *gorm.DB) error {
	if a.UUID == "" {
		a.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Assignment model
func (Assignment) TableName() string {
	return "assignments"
}
