package annotations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/voicelab/coach-api/internal/models"
	apperrors "github.com/voicelab/coach-api/pkg/errors"
	"github.com/voicelab/coach-api/pkg/textrange"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateAnnotation(ctx context.Context, annotation *models.Annotation) error {
	args := m.Called(ctx, annotation)
	return args.Error(0)
}

func (m *MockRepository) GetAnnotationByID(ctx context.Context, id uint) (*models.Annotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Annotation), args.Error(1)
}

func (m *MockRepository) ListForContext(ctx context.Context, mediaID uint, view ViewContext) ([]models.Annotation, error) {
	args := m.Called(ctx, mediaID, view)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Annotation), args.Error(1)
}

func (m *MockRepository) UpdateAnnotation(ctx context.Context, annotation *models.Annotation) error {
	args := m.Called(ctx, annotation)
	return args.Error(0)
}

func (m *MockRepository) DeleteAnnotation(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) CheckOverlapping(ctx context.Context, candidate *models.Annotation, excludeID uint) (bool, error) {
	args := m.Called(ctx, candidate, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockMediaSource is a mock implementation of MediaSource
type MockMediaSource struct {
	mock.Mock
}

func (m *MockMediaSource) GetMediaByID(ctx context.Context, id uint) (*models.Media, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

// MockAssignmentSource is a mock implementation of AssignmentSource
type MockAssignmentSource struct {
	mock.Mock
}

func (m *MockAssignmentSource) GetAssignmentByID(ctx context.Context, id uint) (*models.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assignment), args.Error(1)
}

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, userID, kind, title, body, refType, refID string) error {
	args := m.Called(ctx, userID, kind, title, body, refType, refID)
	return args.Error(0)
}

func newTestService(t *testing.T) (*MockRepository, *MockMediaSource, Service) {
	t.Helper()
	repo := new(MockRepository)
	media := new(MockMediaSource)
	return repo, media, NewService(repo, media, nil, nil, nil)
}

func newAssignmentTestService(t *testing.T) (*MockRepository, *MockMediaSource, *MockAssignmentSource, *MockNotifier, Service) {
	t.Helper()
	repo := new(MockRepository)
	media := new(MockMediaSource)
	assignments := new(MockAssignmentSource)
	notifier := new(MockNotifier)
	return repo, media, assignments, notifier, NewService(repo, media, assignments, notifier, nil)
}

func practiceAssignment() *models.Assignment {
	a := &models.Assignment{LessonID: 1, StudentID: "student-1", AssignedBy: "teacher-1"}
	a.ID = 7
	return a
}

func lessonMedia(lyrics string) *models.Media {
	m := &models.Media{Title: "Breath Support", LyricsText: lyrics}
	m.ID = 1
	return m
}

func TestCreateAnnotation(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots highlighted text and stamps the author", func(t *testing.T) {
		repo, media, service := newTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("Hello world"), nil)
		repo.On("CheckOverlapping", ctx, mock.AnythingOfType("*models.Annotation"), uint(0)).Return(false, nil)
		repo.On("CreateAnnotation", ctx, mock.AnythingOfType("*models.Annotation")).Return(nil)

		annotation := &models.Annotation{
			MediaID:        1,
			StartIndex:     0,
			EndIndex:       5,
			AnnotationText: "open vowel here",
			AnnotationType: models.AnnotationGlobal,
		}
		err := service.CreateAnnotation(ctx, annotation, "teacher-1")

		require.NoError(t, err)
		assert.Equal(t, "Hello", annotation.HighlightedText)
		assert.Equal(t, "teacher-1", annotation.CreatedBy)
		repo.AssertExpectations(t)
	})

	t.Run("snapshots multibyte text by rune offsets", func(t *testing.T) {
		repo, media, service := newTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("naïve résumé"), nil)
		repo.On("CheckOverlapping", ctx, mock.AnythingOfType("*models.Annotation"), uint(0)).Return(false, nil)
		repo.On("CreateAnnotation", ctx, mock.AnythingOfType("*models.Annotation")).Return(nil)

		annotation := &models.Annotation{
			MediaID:        1,
			StartIndex:     6,
			EndIndex:       12,
			AnnotationText: "roll the r",
			AnnotationType: models.AnnotationGlobal,
		}
		err := service.CreateAnnotation(ctx, annotation, "teacher-1")

		require.NoError(t, err)
		assert.Equal(t, "résumé", annotation.HighlightedText)
	})

	t.Run("rejects out-of-bounds range", func(t *testing.T) {
		repo, media, service := newTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("short"), nil)

		annotation := &models.Annotation{
			MediaID:        1,
			StartIndex:     2,
			EndIndex:       50,
			AnnotationText: "note",
			AnnotationType: models.AnnotationGlobal,
		}
		err := service.CreateAnnotation(ctx, annotation, "teacher-1")

		assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
		repo.AssertNotCalled(t, "CreateAnnotation")
	})

	t.Run("rejects empty note text", func(t *testing.T) {
		_, media, service := newTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("Hello world"), nil)

		annotation := &models.Annotation{
			MediaID:        1,
			StartIndex:     0,
			EndIndex:       5,
			AnnotationText: "   ",
			AnnotationType: models.AnnotationGlobal,
		}
		err := service.CreateAnnotation(ctx, annotation, "teacher-1")

		assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))
	})

	t.Run("rejects overlapping range in same scope", func(t *testing.T) {
		repo, media, service := newTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("Hello world"), nil)
		repo.On("CheckOverlapping", ctx, mock.AnythingOfType("*models.Annotation"), uint(0)).Return(true, nil)

		annotation := &models.Annotation{
			MediaID:        1,
			StartIndex:     0,
			EndIndex:       5,
			AnnotationText: "note",
			AnnotationType: models.AnnotationGlobal,
		}
		err := service.CreateAnnotation(ctx, annotation, "teacher-1")

		assert.True(t, apperrors.Is(err, apperrors.ErrCodeConflict))
		repo.AssertNotCalled(t, "CreateAnnotation")
	})

	t.Run("student specific requires an assignment", func(t *testing.T) {
		_, media, service := newTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("Hello world"), nil)

		annotation := &models.Annotation{
			MediaID:        1,
			StartIndex:     0,
			EndIndex:       5,
			AnnotationText: "for you",
			AnnotationType: models.AnnotationStudentSpecific,
			StudentID:      "student-1",
		}
		err := service.CreateAnnotation(ctx, annotation, "teacher-1")

		assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))
	})

	t.Run("student specific must come from the assigning teacher", func(t *testing.T) {
		repo, media, assignments, _, service := newAssignmentTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("Hello world"), nil)
		assignments.On("GetAssignmentByID", ctx, uint(7)).Return(practiceAssignment(), nil)

		assignmentID := uint(7)
		annotation := &models.Annotation{
			MediaID:        1,
			StartIndex:     0,
			EndIndex:       5,
			AnnotationText: "for you",
			AnnotationType: models.AnnotationStudentSpecific,
			AssignmentID:   &assignmentID,
		}
		err := service.CreateAnnotation(ctx, annotation, "teacher-2")

		assert.True(t, apperrors.Is(err, apperrors.ErrCodeForbidden))
		repo.AssertNotCalled(t, "CreateAnnotation")
	})

	t.Run("student specific fills the student from the assignment and notifies", func(t *testing.T) {
		repo, media, assignments, notifier, service := newAssignmentTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("Hello world"), nil)
		assignments.On("GetAssignmentByID", ctx, uint(7)).Return(practiceAssignment(), nil)
		repo.On("CheckOverlapping", ctx, mock.AnythingOfType("*models.Annotation"), uint(0)).Return(false, nil)
		repo.On("CreateAnnotation", ctx, mock.AnythingOfType("*models.Annotation")).Return(nil)
		notifier.On("Notify", ctx, "student-1", models.NotificationAnnotationAdded,
			mock.AnythingOfType("string"), mock.AnythingOfType("string"),
			"annotations", mock.AnythingOfType("string")).Return(nil)

		assignmentID := uint(7)
		annotation := &models.Annotation{
			MediaID:        1,
			StartIndex:     0,
			EndIndex:       5,
			AnnotationText: "for you",
			AnnotationType: models.AnnotationStudentSpecific,
			AssignmentID:   &assignmentID,
		}
		err := service.CreateAnnotation(ctx, annotation, "teacher-1")

		require.NoError(t, err)
		assert.Equal(t, "student-1", annotation.StudentID)
		notifier.AssertExpectations(t)
	})

	t.Run("rejects a student that is not the assignment's", func(t *testing.T) {
		repo, media, assignments, _, service := newAssignmentTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("Hello world"), nil)
		assignments.On("GetAssignmentByID", ctx, uint(7)).Return(practiceAssignment(), nil)

		assignmentID := uint(7)
		annotation := &models.Annotation{
			MediaID:        1,
			StartIndex:     0,
			EndIndex:       5,
			AnnotationText: "for you",
			AnnotationType: models.AnnotationStudentSpecific,
			StudentID:      "student-2",
			AssignmentID:   &assignmentID,
		}
		err := service.CreateAnnotation(ctx, annotation, "teacher-1")

		assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
		repo.AssertNotCalled(t, "CreateAnnotation")
	})

	t.Run("rejects unknown annotation type", func(t *testing.T) {
		_, media, service := newTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("Hello world"), nil)

		annotation := &models.Annotation{
			MediaID:        1,
			StartIndex:     0,
			EndIndex:       5,
			AnnotationText: "note",
			AnnotationType: "broadcast",
		}
		err := service.CreateAnnotation(ctx, annotation, "teacher-1")

		assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	})

	t.Run("missing media", func(t *testing.T) {
		_, media, service := newTestService(t)
		media.On("GetMediaByID", ctx, uint(9)).Return(nil, errors.New("record not found"))

		annotation := &models.Annotation{MediaID: 9, StartIndex: 0, EndIndex: 1, AnnotationText: "x"}
		err := service.CreateAnnotation(ctx, annotation, "teacher-1")

		assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
	})
}

func TestListForContext(t *testing.T) {
	ctx := context.Background()
	view := ViewContext{Mode: ModeLessonCreation, UserID: "teacher-1", IsTeacher: true}

	t.Run("drops annotations that no longer fit the lyrics", func(t *testing.T) {
		repo, media, service := newTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("Hello world"), nil)
		repo.On("ListForContext", ctx, uint(1), view).Return([]models.Annotation{
			{StartIndex: 0, EndIndex: 5, AnnotationType: models.AnnotationGlobal},
			{StartIndex: 6, EndIndex: 40, AnnotationType: models.AnnotationGlobal},
		}, nil)

		annotations, err := service.ListForContext(ctx, 1, view)

		require.NoError(t, err)
		require.Len(t, annotations, 1)
		assert.Equal(t, 0, annotations[0].StartIndex)
	})

	t.Run("assignment mode is limited to the assignment's parties", func(t *testing.T) {
		repo, media, assignments, _, service := newAssignmentTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("Hello world"), nil)
		assignments.On("GetAssignmentByID", ctx, uint(7)).Return(practiceAssignment(), nil)

		assignmentID := uint(7)
		outsider := ViewContext{Mode: ModeAssignment, UserID: "student-2", AssignmentID: &assignmentID}
		_, err := service.ListForContext(ctx, 1, outsider)

		assert.True(t, apperrors.Is(err, apperrors.ErrCodeForbidden))
		repo.AssertNotCalled(t, "ListForContext")
	})

	t.Run("assignment mode admits the student and the assigning teacher", func(t *testing.T) {
		repo, media, assignments, _, service := newAssignmentTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("Hello world"), nil)
		assignments.On("GetAssignmentByID", ctx, uint(7)).Return(practiceAssignment(), nil)

		assignmentID := uint(7)
		for _, userID := range []string{"student-1", "teacher-1"} {
			party := ViewContext{Mode: ModeAssignment, UserID: userID, AssignmentID: &assignmentID}
			repo.On("ListForContext", ctx, uint(1), party).Return([]models.Annotation{}, nil)

			_, err := service.ListForContext(ctx, 1, party)
			require.NoError(t, err)
		}
	})

	t.Run("assignment mode rejects an unknown assignment", func(t *testing.T) {
		_, media, assignments, _, service := newAssignmentTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("Hello world"), nil)
		assignments.On("GetAssignmentByID", ctx, uint(9)).Return(nil, errors.New("record not found"))

		assignmentID := uint(9)
		view := ViewContext{Mode: ModeAssignment, UserID: "student-1", AssignmentID: &assignmentID}
		_, err := service.ListForContext(ctx, 1, view)

		assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
	})

	t.Run("returns annotations sorted by start offset", func(t *testing.T) {
		repo, media, service := newTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("Hello world"), nil)
		repo.On("ListForContext", ctx, uint(1), view).Return([]models.Annotation{
			{StartIndex: 6, EndIndex: 11, AnnotationType: models.AnnotationGlobal},
			{StartIndex: 0, EndIndex: 5, AnnotationType: models.AnnotationGlobal},
		}, nil)

		annotations, err := service.ListForContext(ctx, 1, view)

		require.NoError(t, err)
		require.Len(t, annotations, 2)
		assert.Equal(t, 0, annotations[0].StartIndex)
		assert.Equal(t, 6, annotations[1].StartIndex)
	})
}

func TestBuildView(t *testing.T) {
	ctx := context.Background()
	view := ViewContext{Mode: ModePractice, UserID: "student-1"}

	t.Run("interleaves plain and highlighted segments", func(t *testing.T) {
		repo, media, service := newTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("Hello world"), nil)
		repo.On("ListForContext", ctx, uint(1), view).Return([]models.Annotation{
			{StartIndex: 0, EndIndex: 5, AnnotationType: models.AnnotationGlobal, AnnotationText: "warm up", CreatedBy: "teacher-1"},
		}, nil)

		segments, err := service.BuildView(ctx, 1, view)

		require.NoError(t, err)
		require.Len(t, segments, 2)

		assert.Equal(t, "Hello", segments[0].Text)
		require.NotNil(t, segments[0].Annotation)
		assert.Equal(t, "warm up", segments[0].Annotation.AnnotationText)
		assert.Equal(t, StyleGlobal, segments[0].Style)
		assert.False(t, segments[0].Editable)

		assert.Equal(t, " world", segments[1].Text)
		assert.Nil(t, segments[1].Annotation)
	})

	t.Run("own private annotation renders editable", func(t *testing.T) {
		repo, media, service := newTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("Hello world"), nil)
		repo.On("ListForContext", ctx, uint(1), view).Return([]models.Annotation{
			{StartIndex: 6, EndIndex: 11, AnnotationType: models.AnnotationPrivate, AnnotationText: "breathe", CreatedBy: "student-1"},
		}, nil)

		segments, err := service.BuildView(ctx, 1, view)

		require.NoError(t, err)
		require.Len(t, segments, 2)
		assert.Equal(t, " world", segments[1].Text)
		assert.True(t, segments[1].Editable)
		assert.Equal(t, StylePrivate, segments[1].Style)
	})

	t.Run("media without lyrics yields no segments", func(t *testing.T) {
		repo, media, service := newTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia(""), nil)
		repo.On("ListForContext", ctx, uint(1), view).Return([]models.Annotation{}, nil)

		segments, err := service.BuildView(ctx, 1, view)

		require.NoError(t, err)
		assert.Empty(t, segments)
	})
}

func TestResolveSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("maps node offsets onto absolute lyrics offsets", func(t *testing.T) {
		_, media, service := newTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("Hello world"), nil)

		extract, err := service.ResolveSelection(ctx, 1, []string{"Hello ", "world"}, textrange.Selection{
			StartNode: 0, StartOffset: 4, EndNode: 1, EndOffset: 3,
		})

		require.NoError(t, err)
		assert.Equal(t, "o wor", extract.Text)
		assert.Equal(t, 4, extract.Start)
		assert.Equal(t, 9, extract.End)
	})

	t.Run("rejects stale rendered text", func(t *testing.T) {
		_, media, service := newTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("Hello world"), nil)

		_, err := service.ResolveSelection(ctx, 1, []string{"Hello ", "moon"}, textrange.Selection{
			StartNode: 0, StartOffset: 0, EndNode: 1, EndOffset: 2,
		})

		assert.True(t, apperrors.Is(err, apperrors.ErrCodeConflict))
	})

	t.Run("rejects collapsed selection", func(t *testing.T) {
		_, media, service := newTestService(t)
		media.On("GetMediaByID", ctx, uint(1)).Return(lessonMedia("Hello world"), nil)

		_, err := service.ResolveSelection(ctx, 1, []string{"Hello world"}, textrange.Selection{
			StartNode: 0, StartOffset: 3, EndNode: 0, EndOffset: 3,
		})

		assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	})
}

func TestUpdateAnnotation(t *testing.T) {
	ctx := context.Background()

	existing := func() *models.Annotation {
		a := &models.Annotation{
			MediaID:        1,
			StartIndex:     0,
			EndIndex:       5,
			AnnotationText: "old note",
			AnnotationType: models.AnnotationPrivate,
			CreatedBy:      "student-1",
		}
		a.ID = 10
		return a
	}

	t.Run("author updates text and sharing", func(t *testing.T) {
		repo, _, service := newTestService(t)
		repo.On("GetAnnotationByID", ctx, uint(10)).Return(existing(), nil)
		repo.On("UpdateAnnotation", ctx, mock.AnythingOfType("*models.Annotation")).Return(nil)

		share := true
		updated, err := service.UpdateAnnotation(ctx, 10, UpdatePatch{
			AnnotationText:   "new note",
			VisibleToTeacher: &share,
		}, "student-1")

		require.NoError(t, err)
		assert.Equal(t, "new note", updated.AnnotationText)
		assert.True(t, updated.VisibleToTeacher)
		assert.Equal(t, 0, updated.StartIndex)
		assert.Equal(t, 5, updated.EndIndex)
	})

	t.Run("non-author is forbidden", func(t *testing.T) {
		repo, _, service := newTestService(t)
		repo.On("GetAnnotationByID", ctx, uint(10)).Return(existing(), nil)

		_, err := service.UpdateAnnotation(ctx, 10, UpdatePatch{AnnotationText: "hijack"}, "student-2")

		assert.True(t, apperrors.Is(err, apperrors.ErrCodeForbidden))
		repo.AssertNotCalled(t, "UpdateAnnotation")
	})

	t.Run("sharing flag only applies to private annotations", func(t *testing.T) {
		repo, _, service := newTestService(t)
		global := existing()
		global.AnnotationType = models.AnnotationGlobal
		global.CreatedBy = "teacher-1"
		repo.On("GetAnnotationByID", ctx, uint(10)).Return(global, nil)
		repo.On("UpdateAnnotation", ctx, mock.AnythingOfType("*models.Annotation")).Return(nil)

		share := true
		updated, err := service.UpdateAnnotation(ctx, 10, UpdatePatch{
			AnnotationText:   "still global",
			VisibleToTeacher: &share,
		}, "teacher-1")

		require.NoError(t, err)
		assert.False(t, updated.VisibleToTeacher)
	})

	t.Run("not found", func(t *testing.T) {
		repo, _, service := newTestService(t)
		repo.On("GetAnnotationByID", ctx, uint(99)).Return(nil, errors.New("record not found"))

		_, err := service.UpdateAnnotation(ctx, 99, UpdatePatch{AnnotationText: "x"}, "student-1")

		assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
	})
}

func TestDeleteAnnotation(t *testing.T) {
	ctx := context.Background()

	existing := &models.Annotation{AnnotationType: models.AnnotationGlobal, CreatedBy: "teacher-1"}
	existing.ID = 4

	t.Run("author deletes", func(t *testing.T) {
		repo, _, service := newTestService(t)
		repo.On("GetAnnotationByID", ctx, uint(4)).Return(existing, nil)
		repo.On("DeleteAnnotation", ctx, uint(4)).Return(nil)

		err := service.DeleteAnnotation(ctx, 4, "teacher-1")

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("non-author is forbidden", func(t *testing.T) {
		repo, _, service := newTestService(t)
		repo.On("GetAnnotationByID", ctx, uint(4)).Return(existing, nil)

		err := service.DeleteAnnotation(ctx, 4, "teacher-2")

		assert.True(t, apperrors.Is(err, apperrors.ErrCodeForbidden))
		repo.AssertNotCalled(t, "DeleteAnnotation")
	})
}
