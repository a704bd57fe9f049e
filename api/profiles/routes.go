package profiles

import (
	"github.com/gin-gonic/gin"
	apiauth "github.com/voicelab/coach-api/api/auth"
	"github.com/voicelab/coach-api/api/types"
)

// RegisterRoutes registers the profile routes. The student roster is
// teacher only.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, auth *apiauth.Handler) {
	router.GET("/me", GetMyProfile(deps))
	router.PUT("/me", UpdateMyProfile(deps))
	router.GET("/students", auth.RequireTeacher(), ListStudents(deps))
	router.GET("/:id", GetProfile(deps))
}
