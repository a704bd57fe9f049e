package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification kinds.
const (
	NotificationAssignmentCreated = "assignment_created"
	NotificationRecordingShared   = "recording_shared"
	NotificationAnnotationAdded   = "annotation_added"
)

// Notification is one entry in a user's notification feed.
type Notification struct {
	gorm.Model
	UUID    string     `json:"uuid" gorm:"uniqueIndex"`
	UserID  string     `json:"user_id" gorm:"not null;index"`
	Kind    string     `json:"kind" gorm:"not null"`
	Title   string     `json:"title" gorm:"not null"`
	Body    string     `json:"body" gorm:"type:text"`
	RefType string     `json:"ref_type"` // referenced entity table
	RefID   string     `json:"ref_id"`   // referenced entity UUID
	ReadAt  *time.Time `json:"read_at,omitempty"`
}

// IsRead reports whether the notification has been marked read.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// BeforeCreate generates a UUID before creating a new notification
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.UUID == "" {
		n.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
