package api

import (
	"context"

	"github.com/voicelab/coach-api/internal/models"
	"github.com/voicelab/coach-api/internal/services/lessons"
	"github.com/voicelab/coach-api/internal/services/profiles"
)

// profileAdapter narrows the profile service to the lookup the lesson
// service needs.
type profileAdapter struct {
	service profiles.Service
}

func (a profileAdapter) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	return a.service.GetProfile(ctx, userID)
}

// assignmentAdapter narrows the lesson service to the lookup the recording
// service needs.
type assignmentAdapter struct {
	service lessons.Service
}

func (a assignmentAdapter) GetAssignmentByID(ctx context.Context, id uint) (*models.Assignment, error) {
	return a.service.GetAssignmentByID(ctx, id)
}
