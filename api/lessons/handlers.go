package lessons

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apiauth "github.com/voicelab/coach-api/api/auth"
	"github.com/voicelab/coach-api/api/types"
	"github.com/voicelab/coach-api/internal/models"
)

// CreateLesson creates a lesson
// @Summary      Create lesson
// @Description  Create an unpublished lesson. Teacher only.
// @Tags         lessons
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        lesson body types.CreateLessonRequest true "Lesson data"
// @Success      201 {object} types.LessonResponse "Created lesson"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      403 {object} types.ErrorResponse "Teacher role required"
// @Router       /api/v1/lessons [post]
func CreateLesson(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateLessonRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		lesson := &models.Lesson{
			Title:       req.Title,
			Description: req.Description,
		}
		if err := deps.LessonService.CreateLesson(c.Request.Context(), lesson, apiauth.ActorID(c)); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendCreated(c, types.LessonResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Lesson:       lesson,
		})
	}
}

// GetLesson retrieves a lesson with its ordered steps
// @Summary      Get lesson
// @Tags         lessons
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Lesson ID"
// @Success      200 {object} types.LessonResponse "Lesson with steps"
// @Failure      404 {object} types.ErrorResponse "Lesson not found"
// @Router       /api/v1/lessons/{id} [get]
func GetLesson(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		lesson, err := deps.LessonService.GetLessonByID(c.Request.Context(), id)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.LessonResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Lesson:       lesson,
		})
	}
}

// ListLessons retrieves a page of lessons
// @Summary      List lessons
// @Description  Students see published lessons only; teachers see everything, optionally filtered to their own with mine=true
// @Tags         lessons
// @Security     BearerAuth
// @Produce      json
// @Param        mine query bool false "Only lessons created by the caller"
// @Param        limit query int false "Page size" default(20)
// @Param        offset query int false "Page offset" default(0)
// @Success      200 {object} types.LessonsResponse "Lesson page"
// @Router       /api/v1/lessons [get]
func ListLessons(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := types.ParseQueryInt(c, "limit", 20)
		if limit < 1 || limit > 100 {
			limit = 20
		}
		offset := types.ParseQueryInt(c, "offset", 0)
		if offset < 0 {
			offset = 0
		}

		createdBy := ""
		if c.Query("mine") == "true" {
			createdBy = apiauth.ActorID(c)
		}
		publishedOnly := !apiauth.IsTeacher(c)

		items, total, err := deps.LessonService.ListLessons(c.Request.Context(), createdBy, publishedOnly, limit, offset)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.LessonsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Lessons:      items,
			Count:        len(items),
			Total:        total,
			Offset:       offset,
		})
	}
}

// UpdateLesson updates lesson metadata and publication state
// @Summary      Update lesson
// @Tags         lessons
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Lesson ID"
// @Param        lesson body types.UpdateLessonRequest true "Updated fields"
// @Success      200 {object} types.LessonResponse "Updated lesson"
// @Failure      403 {object} types.ErrorResponse "Not the author"
// @Failure      404 {object} types.ErrorResponse "Lesson not found"
// @Router       /api/v1/lessons/{id} [put]
func UpdateLesson(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.UpdateLessonRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		lesson, err := deps.LessonService.UpdateLesson(c.Request.Context(), id, req.Title, req.Description, req.Published, apiauth.ActorID(c))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.LessonResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Lesson:       lesson,
		})
	}
}

// DeleteLesson removes a lesson and its steps
// @Summary      Delete lesson
// @Description  Delete a lesson. Fails while assignments reference it.
// @Tags         lessons
// @Security     BearerAuth
// @Param        id path int true "Lesson ID"
// @Success      204 "Deleted"
// @Failure      403 {object} types.ErrorResponse "Not the author"
// @Failure      404 {object} types.ErrorResponse "Lesson not found"
// @Failure      409 {object} types.ErrorResponse "Lesson has assignments"
// @Router       /api/v1/lessons/{id} [delete]
func DeleteLesson(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.LessonService.DeleteLesson(c.Request.Context(), id, apiauth.ActorID(c)); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendNoContent(c)
	}
}

// AddStep appends a step to a lesson
// @Summary      Add step
// @Description  Append a step to the end of the lesson's step sequence
// @Tags         lessons
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Lesson ID"
// @Param        step body types.CreateStepRequest true "Step data"
// @Success      201 {object} types.StepResponse "Created step"
// @Failure      403 {object} types.ErrorResponse "Not the author"
// @Failure      404 {object} types.ErrorResponse "Lesson not found"
// @Router       /api/v1/lessons/{id}/steps [post]
func AddStep(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		lessonID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.CreateStepRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		step := &models.LessonStep{
			Title:        req.Title,
			Instructions: req.Instructions,
			MediaID:      req.MediaID,
		}
		if err := deps.LessonService.AddStep(c.Request.Context(), lessonID, step, apiauth.ActorID(c)); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendCreated(c, types.StepResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Step:         step,
		})
	}
}

// UpdateStep updates a lesson step
// @Summary      Update step
// @Tags         lessons
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Step ID"
// @Param        step body types.UpdateStepRequest true "Updated fields"
// @Success      200 {object} types.StepResponse "Updated step"
// @Failure      403 {object} types.ErrorResponse "Not the lesson author"
// @Failure      404 {object} types.ErrorResponse "Step not found"
// @Router       /api/v1/lessons/steps/{id} [put]
func UpdateStep(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		stepID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.UpdateStepRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		step, err := deps.LessonService.UpdateStep(c.Request.Context(), stepID, req.Title, req.Instructions, req.MediaID, apiauth.ActorID(c))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.StepResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Step:         step,
		})
	}
}

// RemoveStep deletes a lesson step
// @Summary      Remove step
// @Tags         lessons
// @Security     BearerAuth
// @Param        id path int true "Step ID"
// @Success      204 "Deleted"
// @Failure      403 {object} types.ErrorResponse "Not the lesson author"
// @Failure      404 {object} types.ErrorResponse "Step not found"
// @Router       /api/v1/lessons/steps/{id} [delete]
func RemoveStep(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		stepID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.LessonService.RemoveStep(c.Request.Context(), stepID, apiauth.ActorID(c)); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendNoContent(c)
	}
}

// AssignLesson assigns a published lesson to a student
// @Summary      Assign lesson
// @Description  Assign a published lesson to a student and notify them
// @Tags         assignments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Lesson ID"
// @Param        assignment body types.AssignLessonRequest true "Assignment data"
// @Success      201 {object} types.AssignmentResponse "Created assignment"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      403 {object} types.ErrorResponse "Not the lesson author"
// @Failure      409 {object} types.ErrorResponse "Lesson not published"
// @Router       /api/v1/lessons/{id}/assign [post]
func AssignLesson(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		lessonID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.AssignLessonRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		assignment, err := deps.LessonService.AssignLesson(c.Request.Context(), lessonID, req.StudentID, req.Notes, apiauth.ActorID(c))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendCreated(c, types.AssignmentResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Assignment:   assignment,
		})
	}
}

// GetAssignment retrieves one assignment
// @Summary      Get assignment
// @Tags         assignments
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Assignment ID"
// @Success      200 {object} types.AssignmentResponse "Assignment"
// @Failure      404 {object} types.ErrorResponse "Assignment not found"
// @Router       /api/v1/assignments/{id} [get]
func GetAssignment(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		assignment, err := deps.LessonService.GetAssignmentByID(c.Request.Context(), id)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.AssignmentResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Assignment:   assignment,
		})
	}
}

// ListMyAssignments retrieves the caller's assignments
// @Summary      List my assignments
// @Tags         assignments
// @Security     BearerAuth
// @Produce      json
// @Param        limit query int false "Page size" default(20)
// @Param        offset query int false "Page offset" default(0)
// @Success      200 {object} types.AssignmentsResponse "Assignment page"
// @Router       /api/v1/assignments [get]
func ListMyAssignments(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := types.ParseQueryInt(c, "limit", 20)
		if limit < 1 || limit > 100 {
			limit = 20
		}
		offset := types.ParseQueryInt(c, "offset", 0)
		if offset < 0 {
			offset = 0
		}

		items, total, err := deps.LessonService.ListAssignmentsForStudent(c.Request.Context(), apiauth.ActorID(c), limit, offset)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.AssignmentsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Assignments:  items,
			Count:        len(items),
			Total:        total,
		})
	}
}

// UpdateAssignmentStatus moves an assignment through its lifecycle
// @Summary      Update assignment status
// @Description  Set the assignment status to assigned, in_progress or completed. Only the student or the assigning teacher may update.
// @Tags         assignments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Assignment ID"
// @Param        status body types.UpdateAssignmentStatusRequest true "New status"
// @Success      200 {object} types.AssignmentResponse "Updated assignment"
// @Failure      400 {object} types.ErrorResponse "Invalid status"
// @Failure      403 {object} types.ErrorResponse "Not a participant"
// @Failure      404 {object} types.ErrorResponse "Assignment not found"
// @Router       /api/v1/assignments/{id}/status [put]
func UpdateAssignmentStatus(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.UpdateAssignmentStatusRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		assignment, err := deps.LessonService.UpdateAssignmentStatus(c.Request.Context(), id, req.Status, apiauth.ActorID(c))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.AssignmentResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Assignment:   assignment,
		})
	}
}
