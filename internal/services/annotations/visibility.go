package annotations

import "github.com/voicelab/coach-api/internal/models"

// Highlight style keys, one per annotation type. Non-editable annotations
// additionally render at reduced opacity on the client.
const (
	StyleGlobal  = "highlight-global"
	StyleStudent = "highlight-student"
	StylePrivate = "highlight-private"
)

// Visible reports whether the annotation is included for the viewing
// context. The repository applies the same rules in SQL; this is the
// reference implementation used for defensive filtering and tests.
func Visible(a *models.Annotation, view ViewContext) bool {
	switch view.Mode {
	case ModeLessonCreation:
		// Teacher-authoring view: all global annotations for the media.
		return a.AnnotationType == models.AnnotationGlobal

	case ModeAssignment:
		if a.AnnotationType == models.AnnotationGlobal {
			return true
		}
		return a.AnnotationType == models.AnnotationStudentSpecific &&
			a.AssignmentID != nil && view.AssignmentID != nil &&
			*a.AssignmentID == *view.AssignmentID

	case ModePractice:
		if a.AnnotationType == models.AnnotationGlobal {
			return true
		}
		if a.AnnotationType != models.AnnotationPrivate {
			return false
		}
		if a.CreatedBy == view.UserID {
			return true
		}
		return view.IsTeacher && a.VisibleToTeacher

	default:
		return false
	}
}

// Editable reports whether the actor in the context may edit or delete the
// annotation. Teachers viewing a shared private note may read but not edit.
func Editable(a *models.Annotation, view ViewContext) bool {
	return a.CreatedBy == view.UserID
}

// StyleFor returns the highlight style key for an annotation type.
func StyleFor(a *models.Annotation) string {
	switch a.AnnotationType {
	case models.AnnotationStudentSpecific:
		return StyleStudent
	case models.AnnotationPrivate:
		return StylePrivate
	default:
		return StyleGlobal
	}
}
