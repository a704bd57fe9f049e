package recordings

import (
	"github.com/gin-gonic/gin"
	"github.com/voicelab/coach-api/api/types"
)

// RegisterRoutes registers the recording routes. Uploads carry their own
// tighter rate limit.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, uploadLimit gin.HandlerFunc) {
	router.GET("", ListMyRecordings(deps))
	router.GET("/:id", GetRecording(deps))
	router.GET("/:id/download", DownloadRecording(deps))
	router.GET("/assignment/:id", ListSharedForAssignment(deps))

	router.POST("", uploadLimit, UploadRecording(deps))
	router.PUT("/:id/share", ShareRecording(deps))
	router.DELETE("/:id", DeleteRecording(deps))
}
