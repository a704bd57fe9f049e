package notifications

import (
	"github.com/gin-gonic/gin"
	"github.com/voicelab/coach-api/api/types"
)

// RegisterRoutes registers the notification routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListNotifications(deps))
	router.PUT("/read", MarkAllNotificationsRead(deps))
	router.PUT("/:id/read", MarkNotificationRead(deps))
}
