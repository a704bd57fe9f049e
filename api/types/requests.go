package types

// Request DTOs shared across handlers

// CreateAnnotationRequest creates a text-range annotation on a media item.
// Offsets are rune offsets into the lyrics text, half-open [start, end).
type CreateAnnotationRequest struct {
	StartIndex     int    `json:"start_index" binding:"min=0"`
	EndIndex       int    `json:"end_index" binding:"required,gtfield=StartIndex"`
	AnnotationText string `json:"annotation_text" binding:"required"`
	AnnotationType string `json:"annotation_type"`
	StudentID      string `json:"student_id,omitempty"`
	AssignmentID   *uint  `json:"assignment_id,omitempty"`
}

// UpdateAnnotationRequest edits an annotation's note and sharing flag
type UpdateAnnotationRequest struct {
	AnnotationText   string `json:"annotation_text" binding:"required"`
	VisibleToTeacher *bool  `json:"visible_to_teacher,omitempty"`
}

// ResolveSelectionRequest maps a rendered node selection to lyric offsets.
// Nodes are the rendered text nodes in document order; offsets are rune
// offsets within the named node.
type ResolveSelectionRequest struct {
	Nodes       []string `json:"nodes" binding:"required"`
	StartNode   int      `json:"start_node" binding:"min=0"`
	StartOffset int      `json:"start_offset" binding:"min=0"`
	EndNode     int      `json:"end_node" binding:"min=0"`
	EndOffset   int      `json:"end_offset" binding:"min=0"`
}

// CreateMediaRequest creates a lesson media item
type CreateMediaRequest struct {
	Title      string `json:"title" binding:"required"`
	LyricsText string `json:"lyrics_text"`
}

// UpdateLyricsRequest replaces a media item's lyrics text
type UpdateLyricsRequest struct {
	LyricsText string `json:"lyrics_text" binding:"required"`
}

// CreateLessonRequest creates a lesson
type CreateLessonRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// UpdateLessonRequest updates lesson metadata
type UpdateLessonRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Published   *bool  `json:"published,omitempty"`
}

// CreateStepRequest appends a step to a lesson
type CreateStepRequest struct {
	Title        string `json:"title" binding:"required"`
	Instructions string `json:"instructions"`
	MediaID      *uint  `json:"media_id,omitempty"`
}

// UpdateStepRequest updates a lesson step
type UpdateStepRequest struct {
	Title        string `json:"title"`
	Instructions string `json:"instructions"`
	MediaID      *uint  `json:"media_id,omitempty"`
}

// AssignLessonRequest assigns a lesson to a student
type AssignLessonRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Notes     string `json:"notes"`
}

// UpdateAssignmentStatusRequest moves an assignment through its lifecycle
type UpdateAssignmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ShareRecordingRequest toggles teacher visibility of a recording
type ShareRecordingRequest struct {
	Shared bool `json:"shared"`
}

// UpdateProfileRequest updates the user-managed profile fields
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
}
