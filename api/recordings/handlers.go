package recordings

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apiauth "github.com/voicelab/coach-api/api/auth"
	"github.com/voicelab/coach-api/api/types"
	"github.com/voicelab/coach-api/internal/models"
	"github.com/voicelab/coach-api/internal/services/recordings"
)

// UploadRecording uploads a practice recording
// @Summary      Upload recording
// @Description  Upload an audio file as multipart form data under the "audio" field. Optional form fields: assignment_id, media_id, duration_secs, notes.
// @Tags         recordings
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio formData file true "Audio file"
// @Param        assignment_id formData int false "Assignment the recording belongs to"
// @Param        media_id formData int false "Media item the recording practices"
// @Param        duration_secs formData number false "Recording duration in seconds"
// @Param        notes formData string false "Free-form notes"
// @Success      201 {object} types.RecordingResponse "Created recording"
// @Failure      400 {object} types.ErrorResponse "Missing or invalid audio file"
// @Failure      403 {object} types.ErrorResponse "Assignment belongs to another student"
// @Router       /api/v1/recordings [post]
func UploadRecording(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("audio")
		if err != nil {
			types.SendBadRequest(c, "Audio file is required")
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			types.SendBadRequest(c, "Could not read audio file")
			return
		}
		defer file.Close()

		recording := &models.Recording{
			Notes: c.PostForm("notes"),
		}
		if raw := c.PostForm("assignment_id"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				types.SendBadRequest(c, "Invalid assignment_id")
				return
			}
			id := uint(parsed)
			recording.AssignmentID = &id
		}
		if raw := c.PostForm("media_id"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				types.SendBadRequest(c, "Invalid media_id")
				return
			}
			id := uint(parsed)
			recording.MediaID = &id
		}

		duration := 0.0
		if raw := c.PostForm("duration_secs"); raw != "" {
			duration, err = strconv.ParseFloat(raw, 64)
			if err != nil || duration < 0 {
				types.SendBadRequest(c, "Invalid duration_secs")
				return
			}
		}

		upload := recordings.AudioUpload{
			Filename:     fileHeader.Filename,
			ContentType:  fileHeader.Header.Get("Content-Type"),
			SizeBytes:    fileHeader.Size,
			DurationSecs: duration,
			Data:         file,
		}
		if err := deps.RecordingService.UploadRecording(c.Request.Context(), recording, upload, apiauth.ActorID(c)); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendCreated(c, types.RecordingResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Recording:    recording,
		})
	}
}

// GetRecording retrieves one recording
// @Summary      Get recording
// @Description  Retrieve a recording. The owner always may; the assigning teacher may once it is shared.
// @Tags         recordings
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Recording ID"
// @Success      200 {object} types.RecordingResponse "Recording"
// @Failure      403 {object} types.ErrorResponse "Not permitted"
// @Failure      404 {object} types.ErrorResponse "Recording not found"
// @Router       /api/v1/recordings/{id} [get]
func GetRecording(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		recording, err := deps.RecordingService.GetRecordingByID(c.Request.Context(), id, apiauth.ActorID(c))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.RecordingResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Recording:    recording,
		})
	}
}

// DownloadRecording returns a time-limited download link
// @Summary      Download recording
// @Description  Return a signed, expiring URL for the recording's audio. Access follows the recording's read rules.
// @Tags         recordings
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Recording ID"
// @Success      200 {object} types.DownloadResponse "Signed download URL"
// @Failure      403 {object} types.ErrorResponse "Not permitted"
// @Failure      404 {object} types.ErrorResponse "Recording not found"
// @Router       /api/v1/recordings/{id}/download [get]
func DownloadRecording(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		url, err := deps.RecordingService.DownloadURL(c.Request.Context(), id, apiauth.ActorID(c))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.DownloadResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			URL:          url,
		})
	}
}

// ListMyRecordings retrieves the caller's recordings
// @Summary      List my recordings
// @Tags         recordings
// @Security     BearerAuth
// @Produce      json
// @Param        limit query int false "Page size" default(20)
// @Param        offset query int false "Page offset" default(0)
// @Success      200 {object} types.RecordingsResponse "Recording page"
// @Router       /api/v1/recordings [get]
func ListMyRecordings(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := types.ParseQueryInt(c, "limit", 20)
		if limit < 1 || limit > 100 {
			limit = 20
		}
		offset := types.ParseQueryInt(c, "offset", 0)
		if offset < 0 {
			offset = 0
		}

		actorID := apiauth.ActorID(c)
		items, total, err := deps.RecordingService.ListForStudent(c.Request.Context(), actorID, actorID, limit, offset)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.RecordingsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Recordings:   items,
			Count:        len(items),
			Total:        total,
		})
	}
}

// ListSharedForAssignment retrieves the shared recordings of an assignment
// @Summary      List shared recordings
// @Description  List the recordings shared with the teacher for an assignment. Available to the assignment's student and teacher.
// @Tags         recordings
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Assignment ID"
// @Success      200 {object} types.RecordingsResponse "Shared recordings"
// @Failure      403 {object} types.ErrorResponse "Not a participant"
// @Failure      404 {object} types.ErrorResponse "Assignment not found"
// @Router       /api/v1/recordings/assignment/{id} [get]
func ListSharedForAssignment(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		assignmentID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		items, err := deps.RecordingService.ListSharedForAssignment(c.Request.Context(), assignmentID, apiauth.ActorID(c))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.RecordingsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Recordings:   items,
			Count:        len(items),
			Total:        int64(len(items)),
		})
	}
}

// ShareRecording toggles teacher visibility of a recording
// @Summary      Share recording
// @Description  Share or unshare a recording with the assigning teacher. Only the owner may toggle.
// @Tags         recordings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Recording ID"
// @Param        share body types.ShareRecordingRequest true "Sharing flag"
// @Success      200 {object} types.RecordingResponse "Updated recording"
// @Failure      403 {object} types.ErrorResponse "Not the owner"
// @Failure      404 {object} types.ErrorResponse "Recording not found"
// @Router       /api/v1/recordings/{id}/share [put]
func ShareRecording(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.ShareRecordingRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		recording, err := deps.RecordingService.SetShared(c.Request.Context(), id, req.Shared, apiauth.ActorID(c))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.RecordingResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Recording:    recording,
		})
	}
}

// DeleteRecording removes a recording and its stored audio
// @Summary      Delete recording
// @Tags         recordings
// @Security     BearerAuth
// @Param        id path int true "Recording ID"
// @Success      204 "Deleted"
// @Failure      403 {object} types.ErrorResponse "Not the owner"
// @Failure      404 {object} types.ErrorResponse "Recording not found"
// @Router       /api/v1/recordings/{id} [delete]
func DeleteRecording(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.RecordingService.DeleteRecording(c.Request.Context(), id, apiauth.ActorID(c)); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendNoContent(c)
	}
}
