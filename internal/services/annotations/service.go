package annotations

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/voicelab/coach-api/internal/models"
	apperrors "github.com/voicelab/coach-api/pkg/errors"
	"github.com/voicelab/coach-api/pkg/logger"
	"github.com/voicelab/coach-api/pkg/textrange"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository  Repository
	media       MediaSource
	assignments AssignmentSource
	notifier    Notifier
	log         *logger.Logger
}

// NewService creates a new annotation service
func NewService(repository Repository, media MediaSource, assignments AssignmentSource, notifier Notifier, log *logger.Logger) Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &ServiceImpl{
		repository:  repository,
		media:       media,
		assignments: assignments,
		notifier:    notifier,
		log:         log,
	}
}

// checkAssignmentParty verifies the actor is the assignment's student or
// its assigning teacher.
func (s *ServiceImpl) checkAssignmentParty(ctx context.Context, assignmentID uint, actorID string) error {
	if s.assignments == nil {
		return nil
	}
	assignment, err := s.assignments.GetAssignmentByID(ctx, assignmentID)
	if err != nil {
		return apperrors.NotFound("assignment", assignmentID)
	}
	if assignment.StudentID != actorID && assignment.AssignedBy != actorID {
		return apperrors.Forbidden("view annotations for another student's assignment")
	}
	return nil
}

// CreateAnnotation validates and persists a new annotation. The range is
// checked against the media's current lyrics, the highlighted text snapshot
// is taken server-side, and overlaps within the same visibility scope are
// rejected.
func (s *ServiceImpl) CreateAnnotation(ctx context.Context, annotation *models.Annotation, actorID string) error {
	media, err := s.media.GetMediaByID(ctx, annotation.MediaID)
	if err != nil {
		return apperrors.NotFound("media", annotation.MediaID)
	}

	if err := validateNoteText(annotation.AnnotationText); err != nil {
		return err
	}

	lyrics := []rune(media.LyricsText)
	span := annotation.Span()
	if !span.Valid(len(lyrics)) {
		return apperrors.ValidationError("range", "selection is out of bounds for the lyrics text")
	}

	switch annotation.AnnotationType {
	case "", models.AnnotationGlobal:
		annotation.AnnotationType = models.AnnotationGlobal
		annotation.StudentID = ""
		annotation.AssignmentID = nil
		annotation.VisibleToTeacher = false
	case models.AnnotationStudentSpecific:
		if annotation.AssignmentID == nil {
			return apperrors.MissingFieldError("assignment_id")
		}
		if s.assignments != nil {
			assignment, err := s.assignments.GetAssignmentByID(ctx, *annotation.AssignmentID)
			if err != nil {
				return apperrors.NotFound("assignment", *annotation.AssignmentID)
			}
			if assignment.AssignedBy != actorID {
				return apperrors.Forbidden("annotate an assignment made by another teacher")
			}
			if annotation.StudentID == "" {
				annotation.StudentID = assignment.StudentID
			} else if annotation.StudentID != assignment.StudentID {
				return apperrors.ValidationError("student_id", "does not match the assignment's student")
			}
		}
		if annotation.StudentID == "" {
			return apperrors.MissingFieldError("student_id")
		}
		annotation.VisibleToTeacher = false
	case models.AnnotationPrivate:
		annotation.StudentID = ""
		annotation.AssignmentID = nil
	default:
		return apperrors.ValidationError("annotation_type", "must be global, student_specific or private")
	}

	annotation.CreatedBy = actorID
	annotation.HighlightedText = string(lyrics[span.Start:span.End])

	overlaps, err := s.repository.CheckOverlapping(ctx, annotation, 0)
	if err != nil {
		return apperrors.DatabaseError("overlap check", err)
	}
	if overlaps {
		return apperrors.Conflict("annotation", "range overlaps an existing annotation")
	}

	if err := s.repository.CreateAnnotation(ctx, annotation); err != nil {
		return apperrors.DatabaseError("create annotation", err)
	}

	if annotation.AnnotationType == models.AnnotationStudentSpecific && s.notifier != nil {
		// Best effort; the annotation exists either way.
		if err := s.notifier.Notify(ctx, annotation.StudentID, models.NotificationAnnotationAdded,
			"New note from your teacher",
			fmt.Sprintf("A note was added on %q", media.Title),
			"annotations", annotation.UUID); err != nil {
			s.log.Warn("annotation notification failed", "annotation_uuid", annotation.UUID, "error", err)
		}
	}
	return nil
}

// GetAnnotationByID retrieves an annotation by its ID
func (s *ServiceImpl) GetAnnotationByID(ctx context.Context, id uint) (*models.Annotation, error) {
	annotation, err := s.repository.GetAnnotationByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("annotation", id)
	}
	return annotation, nil
}

// ListForContext returns the annotations visible in the viewing context,
// sorted by start offset. Annotations whose range no longer fits the
// current lyrics text are dropped and logged.
func (s *ServiceImpl) ListForContext(ctx context.Context, mediaID uint, view ViewContext) ([]models.Annotation, error) {
	media, err := s.media.GetMediaByID(ctx, mediaID)
	if err != nil {
		return nil, apperrors.NotFound("media", mediaID)
	}

	// The assignment ID arrives from the client; student-specific
	// annotations are only served to the assignment's own parties.
	if view.Mode == ModeAssignment && view.AssignmentID != nil {
		if err := s.checkAssignmentParty(ctx, *view.AssignmentID, view.UserID); err != nil {
			return nil, err
		}
	}

	fetched, err := s.repository.ListForContext(ctx, mediaID, view)
	if err != nil {
		return nil, apperrors.DatabaseError("list annotations", err)
	}

	lyricsLen := utf8.RuneCountInString(media.LyricsText)
	annotations := make([]models.Annotation, 0, len(fetched))
	for _, a := range fetched {
		if !a.Span().Valid(lyricsLen) {
			s.log.Warn("dropping out-of-bounds annotation",
				"annotation_uuid", a.UUID,
				"media_id", mediaID,
				"start_index", a.StartIndex,
				"end_index", a.EndIndex,
				"lyrics_len", lyricsLen,
			)
			continue
		}
		// The repository already filters; keep the pure resolver as the
		// final word so both implementations stay in agreement.
		if !Visible(&a, view) {
			continue
		}
		annotations = append(annotations, a)
	}

	// The store returns rows ordered by start offset; re-sort defensively.
	sort.SliceStable(annotations, func(i, j int) bool {
		return annotations[i].StartIndex < annotations[j].StartIndex
	})

	return annotations, nil
}

// BuildView derives the render model for a media item: ordered plain and
// highlighted segments, each highlighted segment tagged with its annotation,
// editability and style.
func (s *ServiceImpl) BuildView(ctx context.Context, mediaID uint, view ViewContext) ([]SegmentView, error) {
	media, err := s.media.GetMediaByID(ctx, mediaID)
	if err != nil {
		return nil, apperrors.NotFound("media", mediaID)
	}

	annotations, err := s.ListForContext(ctx, mediaID, view)
	if err != nil {
		return nil, err
	}

	spans := make([]textrange.Span, len(annotations))
	for i, a := range annotations {
		spans[i] = a.Span()
	}

	segments := textrange.BuildSegments(media.LyricsText, spans)
	views := make([]SegmentView, len(segments))
	for i, seg := range segments {
		sv := SegmentView{Text: seg.Text}
		if seg.Highlighted() {
			a := annotations[seg.SpanIndex]
			sv.Annotation = &a
			sv.Editable = Editable(&a, view)
			sv.Style = StyleFor(&a)
		}
		views[i] = sv
	}
	return views, nil
}

// ResolveSelection maps a node-based selection tuple onto the media's
// lyrics and returns the selected text with its absolute offsets.
func (s *ServiceImpl) ResolveSelection(ctx context.Context, mediaID uint, nodes []string, sel textrange.Selection) (textrange.Extract, error) {
	media, err := s.media.GetMediaByID(ctx, mediaID)
	if err != nil {
		return textrange.Extract{}, apperrors.NotFound("media", mediaID)
	}

	// The flattened node text must match the stored lyrics, otherwise the
	// client rendered a stale copy and any offsets would be meaningless.
	if strings.Join(nodes, "") != media.LyricsText {
		return textrange.Extract{}, apperrors.Conflict("selection", "rendered text does not match the current lyrics")
	}

	extract, ok := textrange.Resolve(nodes, sel)
	if !ok {
		return textrange.Extract{}, apperrors.ValidationError("selection", "selection is collapsed, empty or outside the container")
	}
	return extract, nil
}

// UpdateAnnotation applies a patch to an existing annotation. Only the note
// text and teacher visibility are mutable; offsets are fixed at creation.
// Only the author may update.
func (s *ServiceImpl) UpdateAnnotation(ctx context.Context, id uint, patch UpdatePatch, actorID string) (*models.Annotation, error) {
	annotation, err := s.repository.GetAnnotationByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("annotation", id)
	}

	if annotation.CreatedBy != actorID {
		return nil, apperrors.Forbidden("update an annotation created by another user")
	}

	if err := validateNoteText(patch.AnnotationText); err != nil {
		return nil, err
	}

	annotation.AnnotationText = patch.AnnotationText
	if patch.VisibleToTeacher != nil && annotation.AnnotationType == models.AnnotationPrivate {
		annotation.VisibleToTeacher = *patch.VisibleToTeacher
	}

	if err := s.repository.UpdateAnnotation(ctx, annotation); err != nil {
		return nil, apperrors.DatabaseError("update annotation", err)
	}
	return annotation, nil
}

// DeleteAnnotation removes an annotation. Only the author may delete.
func (s *ServiceImpl) DeleteAnnotation(ctx context.Context, id uint, actorID string) error {
	annotation, err := s.repository.GetAnnotationByID(ctx, id)
	if err != nil {
		return apperrors.NotFound("annotation", id)
	}

	if annotation.CreatedBy != actorID {
		return apperrors.Forbidden("delete an annotation created by another user")
	}

	if err := s.repository.DeleteAnnotation(ctx, annotation.ID); err != nil {
		return apperrors.DatabaseError("delete annotation", err)
	}
	return nil
}

func validateNoteText(text string) error {
	if strings.TrimSpace(text) == "" {
		return apperrors.MissingFieldError("annotation_text")
	}
	if utf8.RuneCountInString(text) > models.MaxAnnotationTextLen {
		return apperrors.ValidationError("annotation_text", "must be at most 500 characters")
	}
	return nil
}
