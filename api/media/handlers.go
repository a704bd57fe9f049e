package media

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apiauth "github.com/voicelab/coach-api/api/auth"
	"github.com/voicelab/coach-api/api/types"
	"github.com/voicelab/coach-api/internal/models"
	"github.com/voicelab/coach-api/internal/services/media"
)

// CreateMedia creates a lesson media item
// @Summary      Create media
// @Description  Create a media item holding a title and lyrics text. Teacher only.
// @Tags         media
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        media body types.CreateMediaRequest true "Media data"
// @Success      201 {object} types.MediaResponse "Created media"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      403 {object} types.ErrorResponse "Teacher role required"
// @Router       /api/v1/media [post]
func CreateMedia(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateMediaRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		item := &models.Media{
			Title:      req.Title,
			LyricsText: req.LyricsText,
		}
		if err := deps.MediaService.CreateMedia(c.Request.Context(), item, apiauth.ActorID(c)); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendCreated(c, types.MediaResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Media:        item,
		})
	}
}

// GetMedia retrieves one media item
// @Summary      Get media
// @Tags         media
// @Produce      json
// @Param        id path string true "Media ID or UUID"
// @Success      200 {object} types.MediaResponse "Media item"
// @Failure      404 {object} types.ErrorResponse "Media not found"
// @Router       /api/v1/media/{id} [get]
func GetMedia(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item *models.Media
		var err error

		// Numeric IDs come from internal references; clients that only
		// hold the public identifier fetch by UUID.
		raw := c.Param("id")
		if id, parseErr := strconv.ParseUint(raw, 10, 32); parseErr == nil {
			item, err = deps.MediaService.GetMediaByID(c.Request.Context(), uint(id))
		} else {
			item, err = deps.MediaService.GetMediaByUUID(c.Request.Context(), raw)
		}
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.MediaResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Media:        item,
		})
	}
}

// ListMedia retrieves a page of media items
// @Summary      List media
// @Tags         media
// @Produce      json
// @Param        limit query int false "Page size" default(20)
// @Param        offset query int false "Page offset" default(0)
// @Success      200 {object} types.MediaListResponse "Media page"
// @Router       /api/v1/media [get]
func ListMedia(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := types.ParseQueryInt(c, "limit", 20)
		if limit < 1 || limit > 100 {
			limit = 20
		}
		offset := types.ParseQueryInt(c, "offset", 0)
		if offset < 0 {
			offset = 0
		}

		items, total, err := deps.MediaService.ListMedia(c.Request.Context(), limit, offset)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.MediaListResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Media:        items,
			Count:        len(items),
			Total:        total,
			Offset:       offset,
		})
	}
}

// UpdateLyrics replaces a media item's lyrics text
// @Summary      Update lyrics
// @Description  Replace the lyrics text. Only the media author may update. Existing annotations keep their offsets and are dropped from views when they no longer fit.
// @Tags         media
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Media ID"
// @Param        lyrics body types.UpdateLyricsRequest true "New lyrics text"
// @Success      200 {object} types.MediaResponse "Updated media"
// @Failure      403 {object} types.ErrorResponse "Not the author"
// @Failure      404 {object} types.ErrorResponse "Media not found"
// @Router       /api/v1/media/{id}/lyrics [put]
func UpdateLyrics(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.UpdateLyricsRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		item, err := deps.MediaService.UpdateLyrics(c.Request.Context(), id, req.LyricsText, apiauth.ActorID(c))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.MediaResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Media:        item,
		})
	}
}

// UploadAudio attaches an audio file to a media item
// @Summary      Upload audio
// @Description  Upload an audio file as multipart form data under the "audio" field and attach it to the media item
// @Tags         media
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path int true "Media ID"
// @Param        audio formData file true "Audio file"
// @Success      200 {object} types.MediaResponse "Media with audio attached"
// @Failure      400 {object} types.ErrorResponse "Missing or invalid audio file"
// @Failure      403 {object} types.ErrorResponse "Not the author"
// @Failure      404 {object} types.ErrorResponse "Media not found"
// @Router       /api/v1/media/{id}/audio [post]
func UploadAudio(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

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

		item, err := deps.MediaService.AttachAudio(c.Request.Context(), id, media.AudioUpload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			SizeBytes:   fileHeader.Size,
			Data:        file,
		}, apiauth.ActorID(c))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.MediaResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Media:        item,
		})
	}
}

// DeleteMedia removes a media item and its stored audio
// @Summary      Delete media
// @Tags         media
// @Security     BearerAuth
// @Param        id path int true "Media ID"
// @Success      204 "Deleted"
// @Failure      403 {object} types.ErrorResponse "Not the author"
// @Failure      404 {object} types.ErrorResponse "Media not found"
// @Router       /api/v1/media/{id} [delete]
func DeleteMedia(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.MediaService.DeleteMedia(c.Request.Context(), id, apiauth.ActorID(c)); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendNoContent(c)
	}
}
