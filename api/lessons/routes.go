package lessons

import (
	"github.com/gin-gonic/gin"
	apiauth "github.com/voicelab/coach-api/api/auth"
	"github.com/voicelab/coach-api/api/types"
)

// RegisterRoutes registers the lesson routes. Authoring requires the
// teacher role.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, auth *apiauth.Handler) {
	router.GET("", ListLessons(deps))
	router.GET("/:id", GetLesson(deps))

	router.POST("", auth.RequireTeacher(), CreateLesson(deps))
	router.PUT("/:id", auth.RequireTeacher(), UpdateLesson(deps))
	router.DELETE("/:id", auth.RequireTeacher(), DeleteLesson(deps))

	router.POST("/:id/steps", auth.RequireTeacher(), AddStep(deps))
	router.PUT("/steps/:id", auth.RequireTeacher(), UpdateStep(deps))
	router.DELETE("/steps/:id", auth.RequireTeacher(), RemoveStep(deps))

	router.POST("/:id/assign", auth.RequireTeacher(), AssignLesson(deps))
}

// RegisterAssignmentRoutes registers the assignment routes
func RegisterAssignmentRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListMyAssignments(deps))
	router.GET("/:id", GetAssignment(deps))
	router.PUT("/:id/status", UpdateAssignmentStatus(deps))
}
