package types

import (
	"github.com/voicelab/coach-api/internal/models"
	"github.com/voicelab/coach-api/internal/services/annotations"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`            // One of the Status constants above
	Message string `json:"message,omitempty"` // Human-readable message
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// AnnotationsResponse for annotation lists
type AnnotationsResponse struct {
	BaseResponse
	Annotations []models.Annotation `json:"annotations"`
	Count       int                 `json:"count"`
}

// SingleAnnotationResponse for one annotation
type SingleAnnotationResponse struct {
	BaseResponse
	Annotation *models.Annotation `json:"annotation"`
}

// AnnotatedViewResponse carries the segmented render model of a media item
type AnnotatedViewResponse struct {
	BaseResponse
	MediaID  uint                      `json:"media_id"`
	Segments []annotations.SegmentView `json:"segments"`
}

// SelectionResponse returns the resolved absolute offsets of a selection
type SelectionResponse struct {
	BaseResponse
	Text       string `json:"text"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
}

// MediaResponse for one media item
type MediaResponse struct {
	BaseResponse
	Media *models.Media `json:"media"`
}

// MediaListResponse for media lists
type MediaListResponse struct {
	BaseResponse
	Media  []models.Media `json:"media"`
	Count  int            `json:"count"`
	Total  int64          `json:"total"`
	Offset int            `json:"offset,omitempty"`
}

// LessonResponse for one lesson
type LessonResponse struct {
	BaseResponse
	Lesson *models.Lesson `json:"lesson"`
}

// LessonsResponse for lesson lists
type LessonsResponse struct {
	BaseResponse
	Lessons []models.Lesson `json:"lessons"`
	Count   int             `json:"count"`
	Total   int64           `json:"total"`
	Offset  int             `json:"offset,omitempty"`
}

// StepResponse for one lesson step
type StepResponse struct {
	BaseResponse
	Step *models.LessonStep `json:"step"`
}

// AssignmentResponse for one assignment
type AssignmentResponse struct {
	BaseResponse
	Assignment *models.Assignment `json:"assignment"`
}

// AssignmentsResponse for assignment lists
type AssignmentsResponse struct {
	BaseResponse
	Assignments []models.Assignment `json:"assignments"`
	Count       int                 `json:"count"`
	Total       int64               `json:"total"`
}

// RecordingResponse for one recording
type RecordingResponse struct {
	BaseResponse
	Recording *models.Recording `json:"recording"`
}

// RecordingsResponse for recording lists
type RecordingsResponse struct {
	BaseResponse
	Recordings []models.Recording `json:"recordings"`
	Count      int                `json:"count"`
	Total      int64              `json:"total"`
}

// DownloadResponse carries a time-limited download URL
type DownloadResponse struct {
	BaseResponse
	URL string `json:"url"`
}

// NotificationsResponse for notification feeds
type NotificationsResponse struct {
	BaseResponse
	Notifications []models.Notification `json:"notifications"`
	Count         int                   `json:"count"`
	Total         int64                 `json:"total"`
	Unread        int64                 `json:"unread"`
}

// ProfileResponse for one profile
type ProfileResponse struct {
	BaseResponse
	Profile *models.UserProfile `json:"profile"`
}

// ProfilesResponse for profile lists
type ProfilesResponse struct {
	BaseResponse
	Profiles []models.UserProfile `json:"profiles"`
	Count    int                  `json:"count"`
	Total    int64                `json:"total"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}
