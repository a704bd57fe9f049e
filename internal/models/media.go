package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Media represents a lesson media item: a lyric sheet and, optionally, a
// backing-track audio object held in external object storage. LyricsText is
// the source text that annotations anchor into; annotation offsets are rune
// offsets into it.
type Media struct {
	gorm.Model
	UUID        string `json:"uuid" gorm:"uniqueIndex"`
	Title       string `json:"title" gorm:"not null"`
	LyricsText  string `json:"lyrics_text" gorm:"type:text"`
	AudioBucket string `json:"audio_bucket"`
	AudioPath   string `json:"audio_path"`
	AudioURL    string `json:"audio_url"` // public URL resolved from storage
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes" gorm:"default:0"`
	CreatedBy   string `json:"created_by" gorm:"not null;index"`
}

// BeforeCreate generates a UUID before creating a new media item
func (m *Media) BeforeCreate(tx *gorm.DB) error {
	if m.UUID == "" {
		m.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Media model
func (Media) TableName() string {
	return "media"
}
