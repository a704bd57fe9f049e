package lessons

import (
	"context"
	"fmt"
	"strings"

	"github.com/voicelab/coach-api/internal/models"
	apperrors "github.com/voicelab/coach-api/pkg/errors"
	"github.com/voicelab/coach-api/pkg/logger"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	profiles   ProfileSource
	notifier   Notifier
	log        *logger.Logger
}

// NewService creates a new lesson service. notifier may be nil; assignment
// notifications are then skipped.
func NewService(repository Repository, profiles ProfileSource, notifier Notifier, log *logger.Logger) Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &ServiceImpl{
		repository: repository,
		profiles:   profiles,
		notifier:   notifier,
		log:        log,
	}
}

// CreateLesson validates and persists a new lesson. Only teachers may
// author lessons.
func (s *ServiceImpl) CreateLesson(ctx context.Context, lesson *models.Lesson, actorID string) error {
	if strings.TrimSpace(lesson.Title) == "" {
		return apperrors.MissingFieldError("title")
	}
	if err := s.requireTeacher(ctx, actorID); err != nil {
		return err
	}

	lesson.CreatedBy = actorID
	if err := s.repository.CreateLesson(ctx, lesson); err != nil {
		return apperrors.DatabaseError("create lesson", err)
	}
	return nil
}

// GetLessonByID retrieves a lesson with its ordered steps
func (s *ServiceImpl) GetLessonByID(ctx context.Context, id uint) (*models.Lesson, error) {
	lesson, err := s.repository.GetLessonByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("lesson", id)
	}
	return lesson, nil
}

// ListLessons retrieves lessons with pagination
func (s *ServiceImpl) ListLessons(ctx context.Context, createdBy string, publishedOnly bool, limit, offset int) ([]models.Lesson, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	lessons, total, err := s.repository.ListLessons(ctx, createdBy, publishedOnly, limit, offset)
	if err != nil {
		return nil, 0, apperrors.DatabaseError("list lessons", err)
	}
	return lessons, total, nil
}

// UpdateLesson updates lesson metadata. Only the author may update.
func (s *ServiceImpl) UpdateLesson(ctx context.Context, id uint, title, description string, published *bool, actorID string) (*models.Lesson, error) {
	lesson, err := s.repository.GetLessonByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("lesson", id)
	}
	if lesson.CreatedBy != actorID {
		return nil, apperrors.Forbidden("update a lesson authored by another teacher")
	}

	if title != "" {
		lesson.Title = title
	}
	if description != "" {
		lesson.Description = description
	}
	if published != nil {
		lesson.Published = *published
	}

	if err := s.repository.UpdateLesson(ctx, lesson); err != nil {
		return nil, apperrors.DatabaseError("update lesson", err)
	}
	return lesson, nil
}

// DeleteLesson deletes a lesson and its steps. Only the author may delete,
// and only while the lesson has no assignments.
func (s *ServiceImpl) DeleteLesson(ctx context.Context, id uint, actorID string) error {
	lesson, err := s.repository.GetLessonByID(ctx, id)
	if err != nil {
		return apperrors.NotFound("lesson", id)
	}
	if lesson.CreatedBy != actorID {
		return apperrors.Forbidden("delete a lesson authored by another teacher")
	}

	assignments, err := s.repository.ListAssignmentsForLesson(ctx, id)
	if err != nil {
		return apperrors.DatabaseError("list lesson assignments", err)
	}
	if len(assignments) > 0 {
		return apperrors.Conflict("lesson", "has active assignments")
	}

	if err := s.repository.DeleteLesson(ctx, id); err != nil {
		return apperrors.DatabaseError("delete lesson", err)
	}
	return nil
}

// AddStep appends a step to a lesson. Only the author may add steps.
// Position is assigned automatically at the end.
func (s *ServiceImpl) AddStep(ctx context.Context, lessonID uint, step *models.LessonStep, actorID string) error {
	lesson, err := s.repository.GetLessonByID(ctx, lessonID)
	if err != nil {
		return apperrors.NotFound("lesson", lessonID)
	}
	if lesson.CreatedBy != actorID {
		return apperrors.Forbidden("modify a lesson authored by another teacher")
	}
	if strings.TrimSpace(step.Title) == "" {
		return apperrors.MissingFieldError("title")
	}

	max, err := s.repository.MaxStepPosition(ctx, lessonID)
	if err != nil {
		return apperrors.DatabaseError("get step position", err)
	}

	step.LessonID = lessonID
	step.Position = max + 1
	if err := s.repository.CreateStep(ctx, step); err != nil {
		return apperrors.DatabaseError("create lesson step", err)
	}
	return nil
}

// UpdateStep updates a step's content. Only the lesson author may update.
func (s *ServiceImpl) UpdateStep(ctx context.Context, stepID uint, title, instructions string, mediaID *uint, actorID string) (*models.LessonStep, error) {
	step, err := s.repository.GetStepByID(ctx, stepID)
	if err != nil {
		return nil, apperrors.NotFound("lesson step", stepID)
	}

	lesson, err := s.repository.GetLessonByID(ctx, step.LessonID)
	if err != nil {
		return nil, apperrors.NotFound("lesson", step.LessonID)
	}
	if lesson.CreatedBy != actorID {
		return nil, apperrors.Forbidden("modify a lesson authored by another teacher")
	}

	if title != "" {
		step.Title = title
	}
	if instructions != "" {
		step.Instructions = instructions
	}
	if mediaID != nil {
		step.MediaID = mediaID
	}

	if err := s.repository.UpdateStep(ctx, step); err != nil {
		return nil, apperrors.DatabaseError("update lesson step", err)
	}
	return step, nil
}

// RemoveStep deletes a step. Only the lesson author may remove.
func (s *ServiceImpl) RemoveStep(ctx context.Context, stepID uint, actorID string) error {
	step, err := s.repository.GetStepByID(ctx, stepID)
	if err != nil {
		return apperrors.NotFound("lesson step", stepID)
	}

	lesson, err := s.repository.GetLessonByID(ctx, step.LessonID)
	if err != nil {
		return apperrors.NotFound("lesson", step.LessonID)
	}
	if lesson.CreatedBy != actorID {
		return apperrors.Forbidden("modify a lesson authored by another teacher")
	}

	if err := s.repository.DeleteStep(ctx, stepID); err != nil {
		return apperrors.DatabaseError("delete lesson step", err)
	}
	return nil
}

// AssignLesson assigns a published lesson to a student and drops a
// notification into the student's feed. Only the lesson author may assign.
func (s *ServiceImpl) AssignLesson(ctx context.Context, lessonID uint, studentID string, notes string, actorID string) (*models.Assignment, error) {
	lesson, err := s.repository.GetLessonByID(ctx, lessonID)
	if err != nil {
		return nil, apperrors.NotFound("lesson", lessonID)
	}
	if lesson.CreatedBy != actorID {
		return nil, apperrors.Forbidden("assign a lesson authored by another teacher")
	}
	if !lesson.Published {
		return nil, apperrors.Conflict("lesson", "must be published before it can be assigned")
	}
	if studentID == "" {
		return nil, apperrors.MissingFieldError("student_id")
	}

	if s.profiles != nil {
		student, err := s.profiles.GetProfile(ctx, studentID)
		if err != nil {
			return nil, apperrors.NotFound("student", studentID)
		}
		if student.IsTeacher() {
			return nil, apperrors.ValidationError("student_id", "lessons can only be assigned to students")
		}
	}

	assignment := &models.Assignment{
		LessonID:   lessonID,
		StudentID:  studentID,
		AssignedBy: actorID,
		Status:     models.AssignmentAssigned,
		Notes:      notes,
	}
	if err := s.repository.CreateAssignment(ctx, assignment); err != nil {
		return nil, apperrors.DatabaseError("create assignment", err)
	}

	if s.notifier != nil {
		// Best effort; the assignment exists either way.
		if err := s.notifier.Notify(ctx, studentID, models.NotificationAssignmentCreated,
			"New assignment",
			fmt.Sprintf("%q was assigned to you", lesson.Title),
			"assignments", assignment.UUID); err != nil {
			s.log.Warn("assignment notification failed", "assignment_uuid", assignment.UUID, "error", err)
		}
	}

	return assignment, nil
}

// GetAssignmentByID retrieves an assignment with its lesson
func (s *ServiceImpl) GetAssignmentByID(ctx context.Context, id uint) (*models.Assignment, error) {
	assignment, err := s.repository.GetAssignmentByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("assignment", id)
	}
	return assignment, nil
}

// ListAssignmentsForStudent retrieves a student's assignments
func (s *ServiceImpl) ListAssignmentsForStudent(ctx context.Context, studentID string, limit, offset int) ([]models.Assignment, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	assignments, total, err := s.repository.ListAssignmentsForStudent(ctx, studentID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.DatabaseError("list assignments", err)
	}
	return assignments, total, nil
}

// UpdateAssignmentStatus moves an assignment through its lifecycle. The
// assigned student advances progress; the assigning teacher may also
// update.
func (s *ServiceImpl) UpdateAssignmentStatus(ctx context.Context, id uint, status string, actorID string) (*models.Assignment, error) {
	switch status {
	case models.AssignmentAssigned, models.AssignmentInProgress, models.AssignmentCompleted:
	default:
		return nil, apperrors.ValidationError("status", "must be assigned, in_progress or completed")
	}

	assignment, err := s.repository.GetAssignmentByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("assignment", id)
	}
	if assignment.StudentID != actorID && assignment.AssignedBy != actorID {
		return nil, apperrors.Forbidden("update an assignment belonging to another user")
	}

	assignment.Status = status
	if err := s.repository.UpdateAssignment(ctx, assignment); err != nil {
		return nil, apperrors.DatabaseError("update assignment", err)
	}
	return assignment, nil
}

func (s *ServiceImpl) requireTeacher(ctx context.Context, actorID string) error {
	if s.profiles == nil {
		return nil
	}
	profile, err := s.profiles.GetProfile(ctx, actorID)
	if err != nil {
		return apperrors.NotFound("profile", actorID)
	}
	if !profile.IsTeacher() {
		return apperrors.Forbidden("author lessons without the teacher role")
	}
	return nil
}
