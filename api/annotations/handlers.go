package annotations

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apiauth "github.com/voicelab/coach-api/api/auth"
	"github.com/voicelab/coach-api/api/types"
	"github.com/voicelab/coach-api/internal/models"
	"github.com/voicelab/coach-api/internal/services/annotations"
	"github.com/voicelab/coach-api/pkg/textrange"
)

// viewContextFromRequest builds the viewing context from the authenticated
// actor and the mode/assignment query parameters. Defaults to practice.
func viewContextFromRequest(c *gin.Context) (annotations.ViewContext, bool) {
	view := annotations.ViewContext{
		UserID:    apiauth.ActorID(c),
		IsTeacher: apiauth.IsTeacher(c),
	}

	switch mode := c.DefaultQuery("mode", string(annotations.ModePractice)); annotations.ContextMode(mode) {
	case annotations.ModeLessonCreation:
		view.Mode = annotations.ModeLessonCreation
	case annotations.ModeAssignment:
		view.Mode = annotations.ModeAssignment
	case annotations.ModePractice:
		view.Mode = annotations.ModePractice
	default:
		types.SendBadRequest(c, "Invalid mode")
		return view, false
	}

	if raw := c.Query("assignment_id"); raw != "" {
		parsed := types.ParseQueryInt(c, "assignment_id", 0)
		if parsed <= 0 {
			types.SendBadRequest(c, "Invalid assignment_id")
			return view, false
		}
		id := uint(parsed)
		view.AssignmentID = &id
	}
	if view.Mode == annotations.ModeAssignment && view.AssignmentID == nil {
		types.SendBadRequest(c, "assignment_id is required for assignment mode")
		return view, false
	}

	return view, true
}

// CreateAnnotation creates a new annotation on a media item
// @Summary      Create annotation
// @Description  Annotate a rune-offset range of a media item's lyrics text
// @Tags         annotations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Media ID"
// @Param        annotation body types.CreateAnnotationRequest true "Annotation data"
// @Success      201 {object} types.SingleAnnotationResponse "Created annotation"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Media not found"
// @Failure      409 {object} types.ErrorResponse "Range overlaps an existing annotation"
// @Router       /api/v1/media/{id}/annotations [post]
func CreateAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.CreateAnnotationRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		annotation := &models.Annotation{
			MediaID:        mediaID,
			StartIndex:     req.StartIndex,
			EndIndex:       req.EndIndex,
			AnnotationText: req.AnnotationText,
			AnnotationType: req.AnnotationType,
			StudentID:      req.StudentID,
			AssignmentID:   req.AssignmentID,
		}

		if err := deps.AnnotationService.CreateAnnotation(c.Request.Context(), annotation, apiauth.ActorID(c)); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendCreated(c, types.SingleAnnotationResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Annotation:   annotation,
		})
	}
}

// ListAnnotations retrieves the annotations visible in a viewing context
// @Summary      List annotations
// @Description  Retrieve the annotations of a media item visible in the given mode, ordered by start offset
// @Tags         annotations
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Media ID"
// @Param        mode query string false "Viewing mode: lesson_creation, assignment or practice" default(practice)
// @Param        assignment_id query int false "Assignment ID, required in assignment mode"
// @Success      200 {object} types.AnnotationsResponse "List of annotations"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      403 {object} types.ErrorResponse "Not a party to the assignment"
// @Failure      404 {object} types.ErrorResponse "Media not found"
// @Router       /api/v1/media/{id}/annotations [get]
func ListAnnotations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		view, ok := viewContextFromRequest(c)
		if !ok {
			return
		}

		items, err := deps.AnnotationService.ListForContext(c.Request.Context(), mediaID, view)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.AnnotationsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Annotations:  items,
			Count:        len(items),
		})
	}
}

// GetAnnotatedView returns the segmented render model of a media item
// @Summary      Get annotated view
// @Description  Split the lyrics text into ordered plain and highlighted segments for the viewing context
// @Tags         annotations
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Media ID"
// @Param        mode query string false "Viewing mode: lesson_creation, assignment or practice" default(practice)
// @Param        assignment_id query int false "Assignment ID, required in assignment mode"
// @Success      200 {object} types.AnnotatedViewResponse "Segmented view"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      403 {object} types.ErrorResponse "Not a party to the assignment"
// @Failure      404 {object} types.ErrorResponse "Media not found"
// @Router       /api/v1/media/{id}/view [get]
func GetAnnotatedView(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		view, ok := viewContextFromRequest(c)
		if !ok {
			return
		}

		segments, err := deps.AnnotationService.BuildView(c.Request.Context(), mediaID, view)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.AnnotatedViewResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			MediaID:      mediaID,
			Segments:     segments,
		})
	}
}

// ResolveSelection maps a rendered node selection onto lyric offsets
// @Summary      Resolve selection
// @Description  Convert a node-relative text selection into absolute rune offsets into the lyrics text
// @Tags         annotations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Media ID"
// @Param        selection body types.ResolveSelectionRequest true "Selection data"
// @Success      200 {object} types.SelectionResponse "Resolved selection"
// @Failure      400 {object} types.ErrorResponse "Selection is collapsed, empty or out of bounds"
// @Failure      404 {object} types.ErrorResponse "Media not found"
// @Failure      409 {object} types.ErrorResponse "Rendered text does not match the current lyrics"
// @Router       /api/v1/media/{id}/selection [post]
func ResolveSelection(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.ResolveSelectionRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		extract, err := deps.AnnotationService.ResolveSelection(c.Request.Context(), mediaID, req.Nodes, textrange.Selection{
			StartNode:   req.StartNode,
			StartOffset: req.StartOffset,
			EndNode:     req.EndNode,
			EndOffset:   req.EndOffset,
		})
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.SelectionResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Text:         extract.Text,
			StartIndex:   extract.Start,
			EndIndex:     extract.End,
		})
	}
}

// UpdateAnnotation edits an annotation's note text and sharing flag
// @Summary      Update annotation
// @Description  Update the note text and teacher visibility of an annotation. Only the author may update.
// @Tags         annotations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Annotation ID"
// @Param        annotation body types.UpdateAnnotationRequest true "Updated fields"
// @Success      200 {object} types.SingleAnnotationResponse "Updated annotation"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      403 {object} types.ErrorResponse "Not the author"
// @Failure      404 {object} types.ErrorResponse "Annotation not found"
// @Router       /api/v1/annotations/{id} [put]
func UpdateAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.UpdateAnnotationRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		annotation, err := deps.AnnotationService.UpdateAnnotation(c.Request.Context(), id, annotations.UpdatePatch{
			AnnotationText:   req.AnnotationText,
			VisibleToTeacher: req.VisibleToTeacher,
		}, apiauth.ActorID(c))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.SingleAnnotationResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Annotation:   annotation,
		})
	}
}

// DeleteAnnotation removes an annotation
// @Summary      Delete annotation
// @Description  Delete an annotation. Only the author may delete.
// @Tags         annotations
// @Security     BearerAuth
// @Param        id path int true "Annotation ID"
// @Success      204 "Deleted"
// @Failure      403 {object} types.ErrorResponse "Not the author"
// @Failure      404 {object} types.ErrorResponse "Annotation not found"
// @Router       /api/v1/annotations/{id} [delete]
func DeleteAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.AnnotationService.DeleteAnnotation(c.Request.Context(), id, apiauth.ActorID(c)); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendNoContent(c)
	}
}
