package profiles

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apiauth "github.com/voicelab/coach-api/api/auth"
	"github.com/voicelab/coach-api/api/types"
)

// GetMyProfile retrieves the caller's profile
// @Summary      Get my profile
// @Tags         profiles
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.ProfileResponse "Profile"
// @Failure      404 {object} types.ErrorResponse "Profile not found"
// @Router       /api/v1/profiles/me [get]
func GetMyProfile(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := deps.ProfileService.GetProfile(c.Request.Context(), apiauth.ActorID(c))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.ProfileResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Profile:      profile,
		})
	}
}

// GetProfile retrieves one profile
// @Summary      Get profile
// @Tags         profiles
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} types.ProfileResponse "Profile"
// @Failure      404 {object} types.ErrorResponse "Profile not found"
// @Router       /api/v1/profiles/{id} [get]
func GetProfile(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			types.SendBadRequest(c, "Invalid id")
			return
		}

		profile, err := deps.ProfileService.GetProfile(c.Request.Context(), id)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.ProfileResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Profile:      profile,
		})
	}
}

// ListStudents retrieves a page of student profiles. Teacher only.
// @Summary      List students
// @Tags         profiles
// @Security     BearerAuth
// @Produce      json
// @Param        limit query int false "Page size" default(20)
// @Param        offset query int false "Page offset" default(0)
// @Success      200 {object} types.ProfilesResponse "Student page"
// @Failure      403 {object} types.ErrorResponse "Teacher role required"
// @Router       /api/v1/profiles/students [get]
func ListStudents(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := types.ParseQueryInt(c, "limit", 20)
		if limit < 1 || limit > 100 {
			limit = 20
		}
		offset := types.ParseQueryInt(c, "offset", 0)
		if offset < 0 {
			offset = 0
		}

		items, total, err := deps.ProfileService.ListStudents(c.Request.Context(), apiauth.ActorID(c), limit, offset)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.ProfilesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Profiles:     items,
			Count:        len(items),
			Total:        total,
		})
	}
}

// UpdateMyProfile edits the caller's display name, bio and avatar
// @Summary      Update my profile
// @Tags         profiles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        profile body types.UpdateProfileRequest true "Updated fields"
// @Success      200 {object} types.ProfileResponse "Updated profile"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Router       /api/v1/profiles/me [put]
func UpdateMyProfile(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.UpdateProfileRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		actorID := apiauth.ActorID(c)
		profile, err := deps.ProfileService.UpdateProfile(c.Request.Context(), actorID, req.DisplayName, req.Bio, req.AvatarURL, actorID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.ProfileResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Profile:      profile,
		})
	}
}
