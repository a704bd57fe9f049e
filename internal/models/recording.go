package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recording is a student's practice audio, stored as an object in external
// storage and optionally shared with the teacher.
type Recording struct {
	gorm.Model
	UUID              string  `json:"uuid" gorm:"uniqueIndex"`
	StudentID         string  `json:"student_id" gorm:"not null;index"`
	AssignmentID      *uint   `json:"assignment_id,omitempty" gorm:"index"`
	MediaID           *uint   `json:"media_id,omitempty" gorm:"index"`
	Bucket            string  `json:"bucket"`
	Path              string  `json:"path"`
	AudioURL          string  `json:"audio_url"`
	ContentType       string  `json:"content_type"`
	SizeBytes         int64   `json:"size_bytes" gorm:"default:0"`
	DurationSecs      float64 `json:"duration_secs" gorm:"default:0"`
	Notes             string  `json:"notes" gorm:"type:text"`
	SharedWithTeacher bool    `json:"shared_with_teacher" gorm:"default:false"`
}

// BeforeCreate generates a UUID before creating a new recording
func (r *Recording) BeforeCreate(tx *gorm.DB) error {
	if r.UUID == "" {
		r.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Recording model
func (Recording) TableName() string {
	return "recordings"
}
