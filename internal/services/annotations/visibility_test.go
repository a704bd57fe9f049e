package annotations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voicelab/coach-api/internal/models"
)

func uintPtr(v uint) *uint { return &v }

func TestVisible_LessonCreation(t *testing.T) {
	view := ViewContext{Mode: ModeLessonCreation, UserID: "teacher-1", IsTeacher: true}

	tests := []struct {
		name       string
		annotation *models.Annotation
		want       bool
	}{
		{
			name:       "global annotation is visible",
			annotation: &models.Annotation{AnnotationType: models.AnnotationGlobal, CreatedBy: "teacher-1"},
			want:       true,
		},
		{
			name:       "student specific annotation is hidden",
			annotation: &models.Annotation{AnnotationType: models.AnnotationStudentSpecific, AssignmentID: uintPtr(7), CreatedBy: "teacher-1"},
			want:       false,
		},
		{
			name:       "private annotation is hidden even for its author",
			annotation: &models.Annotation{AnnotationType: models.AnnotationPrivate, CreatedBy: "teacher-1"},
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Visible(tt.annotation, view))
		})
	}
}

func TestVisible_Assignment(t *testing.T) {
	view := ViewContext{Mode: ModeAssignment, UserID: "teacher-1", IsTeacher: true, AssignmentID: uintPtr(42)}

	tests := []struct {
		name       string
		annotation *models.Annotation
		want       bool
	}{
		{
			name:       "global annotation is visible",
			annotation: &models.Annotation{AnnotationType: models.AnnotationGlobal},
			want:       true,
		},
		{
			name:       "student specific for this assignment is visible",
			annotation: &models.Annotation{AnnotationType: models.AnnotationStudentSpecific, StudentID: "student-1", AssignmentID: uintPtr(42)},
			want:       true,
		},
		{
			name:       "student specific for another assignment is hidden",
			annotation: &models.Annotation{AnnotationType: models.AnnotationStudentSpecific, StudentID: "student-1", AssignmentID: uintPtr(43)},
			want:       false,
		},
		{
			name:       "private annotation is hidden",
			annotation: &models.Annotation{AnnotationType: models.AnnotationPrivate, CreatedBy: "teacher-1"},
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Visible(tt.annotation, view))
		})
	}
}

func TestVisible_Practice(t *testing.T) {
	tests := []struct {
		name       string
		view       ViewContext
		annotation *models.Annotation
		want       bool
	}{
		{
			name:       "student sees global",
			view:       ViewContext{Mode: ModePractice, UserID: "student-1"},
			annotation: &models.Annotation{AnnotationType: models.AnnotationGlobal},
			want:       true,
		},
		{
			name:       "student sees own private",
			view:       ViewContext{Mode: ModePractice, UserID: "student-1"},
			annotation: &models.Annotation{AnnotationType: models.AnnotationPrivate, CreatedBy: "student-1"},
			want:       true,
		},
		{
			name:       "student does not see another student's private",
			view:       ViewContext{Mode: ModePractice, UserID: "student-1"},
			annotation: &models.Annotation{AnnotationType: models.AnnotationPrivate, CreatedBy: "student-2"},
			want:       false,
		},
		{
			name:       "student does not see shared private of others",
			view:       ViewContext{Mode: ModePractice, UserID: "student-1"},
			annotation: &models.Annotation{AnnotationType: models.AnnotationPrivate, CreatedBy: "student-2", VisibleToTeacher: true},
			want:       false,
		},
		{
			name:       "teacher sees shared private",
			view:       ViewContext{Mode: ModePractice, UserID: "teacher-1", IsTeacher: true},
			annotation: &models.Annotation{AnnotationType: models.AnnotationPrivate, CreatedBy: "student-1", VisibleToTeacher: true},
			want:       true,
		},
		{
			name:       "teacher does not see unshared private",
			view:       ViewContext{Mode: ModePractice, UserID: "teacher-1", IsTeacher: true},
			annotation: &models.Annotation{AnnotationType: models.AnnotationPrivate, CreatedBy: "student-1", VisibleToTeacher: false},
			want:       false,
		},
		{
			name:       "student specific is hidden during practice",
			view:       ViewContext{Mode: ModePractice, UserID: "student-1"},
			annotation: &models.Annotation{AnnotationType: models.AnnotationStudentSpecific, StudentID: "student-1", AssignmentID: uintPtr(1)},
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Visible(tt.annotation, tt.view))
		})
	}
}

func TestEditable(t *testing.T) {
	tests := []struct {
		name       string
		view       ViewContext
		annotation *models.Annotation
		want       bool
	}{
		{
			name:       "author can edit own global",
			view:       ViewContext{Mode: ModeLessonCreation, UserID: "teacher-1", IsTeacher: true},
			annotation: &models.Annotation{AnnotationType: models.AnnotationGlobal, CreatedBy: "teacher-1"},
			want:       true,
		},
		{
			name:       "teacher cannot edit another teacher's global",
			view:       ViewContext{Mode: ModeLessonCreation, UserID: "teacher-2", IsTeacher: true},
			annotation: &models.Annotation{AnnotationType: models.AnnotationGlobal, CreatedBy: "teacher-1"},
			want:       false,
		},
		{
			name:       "student can edit own private",
			view:       ViewContext{Mode: ModePractice, UserID: "student-1"},
			annotation: &models.Annotation{AnnotationType: models.AnnotationPrivate, CreatedBy: "student-1"},
			want:       true,
		},
		{
			name:       "teacher cannot edit a shared private note",
			view:       ViewContext{Mode: ModePractice, UserID: "teacher-1", IsTeacher: true},
			annotation: &models.Annotation{AnnotationType: models.AnnotationPrivate, CreatedBy: "student-1", VisibleToTeacher: true},
			want:       false,
		},
		{
			name:       "student cannot edit a teacher's assignment note",
			view:       ViewContext{Mode: ModeAssignment, UserID: "student-1", AssignmentID: uintPtr(1)},
			annotation: &models.Annotation{AnnotationType: models.AnnotationStudentSpecific, StudentID: "student-1", AssignmentID: uintPtr(1), CreatedBy: "teacher-1"},
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Editable(tt.annotation, tt.view))
		})
	}
}

func TestStyleFor(t *testing.T) {
	assert.Equal(t, StyleGlobal, StyleFor(&models.Annotation{AnnotationType: models.AnnotationGlobal}))
	assert.Equal(t, StyleStudent, StyleFor(&models.Annotation{AnnotationType: models.AnnotationStudentSpecific}))
	assert.Equal(t, StylePrivate, StyleFor(&models.Annotation{AnnotationType: models.AnnotationPrivate}))
}
