package types

import (
	"github.com/voicelab/coach-api/internal/database"
	"github.com/voicelab/coach-api/internal/services/annotations"
	"github.com/voicelab/coach-api/internal/services/auth"
	"github.com/voicelab/coach-api/internal/services/lessons"
	"github.com/voicelab/coach-api/internal/services/media"
	"github.com/voicelab/coach-api/internal/services/notifications"
	"github.com/voicelab/coach-api/internal/services/profiles"
	"github.com/voicelab/coach-api/internal/services/recordings"
	"github.com/voicelab/coach-api/pkg/logger"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                  *database.DB
	AuthService         *auth.Service
	AttemptStore        *auth.AttemptStore
	ProfileService      profiles.Service
	LessonService       lessons.Service
	MediaService        media.Service
	AnnotationService   annotations.Service
	RecordingService    recordings.Service
	NotificationService notifications.Service
	Log                 *logger.Logger
}
