package annotations

import (
	"github.com/gin-gonic/gin"
	"github.com/voicelab/coach-api/api/types"
)

// RegisterMediaRoutes registers the media-nested annotation routes
func RegisterMediaRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/:id/annotations", CreateAnnotation(deps))
	router.GET("/:id/annotations", ListAnnotations(deps))
	router.GET("/:id/view", GetAnnotatedView(deps))
	router.POST("/:id/selection", ResolveSelection(deps))
}

// RegisterRoutes registers the direct annotation routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.PUT("/:id", UpdateAnnotation(deps))
	router.DELETE("/:id", DeleteAnnotation(deps))
}
