package notifications

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apiauth "github.com/voicelab/coach-api/api/auth"
	"github.com/voicelab/coach-api/api/types"
)

// ListNotifications retrieves the caller's notification feed
// @Summary      List notifications
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Param        unread query bool false "Only unread notifications"
// @Param        limit query int false "Page size" default(20)
// @Param        offset query int false "Page offset" default(0)
// @Success      200 {object} types.NotificationsResponse "Notification page with unread count"
// @Router       /api/v1/notifications [get]
func ListNotifications(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := types.ParseQueryInt(c, "limit", 20)
		if limit < 1 || limit > 100 {
			limit = 20
		}
		offset := types.ParseQueryInt(c, "offset", 0)
		if offset < 0 {
			offset = 0
		}
		unreadOnly := c.Query("unread") == "true"

		actorID := apiauth.ActorID(c)
		items, total, err := deps.NotificationService.ListForUser(c.Request.Context(), actorID, unreadOnly, limit, offset)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		unread, err := deps.NotificationService.CountUnread(c.Request.Context(), actorID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.NotificationsResponse{
			BaseResponse:  types.BaseResponse{Status: types.StatusOK},
			Notifications: items,
			Count:         len(items),
			Total:         total,
			Unread:        unread,
		})
	}
}

// MarkNotificationRead marks one notification as read
// @Summary      Mark notification read
// @Tags         notifications
// @Security     BearerAuth
// @Param        id path int true "Notification ID"
// @Success      204 "Marked read"
// @Failure      403 {object} types.ErrorResponse "Not the recipient"
// @Failure      404 {object} types.ErrorResponse "Notification not found"
// @Router       /api/v1/notifications/{id}/read [put]
func MarkNotificationRead(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.NotificationService.MarkRead(c.Request.Context(), id, apiauth.ActorID(c)); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendNoContent(c)
	}
}

// MarkAllNotificationsRead marks the caller's whole feed as read
// @Summary      Mark all notifications read
// @Tags         notifications
// @Security     BearerAuth
// @Success      204 "Marked read"
// @Router       /api/v1/notifications/read [put]
func MarkAllNotificationsRead(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.NotificationService.MarkAllRead(c.Request.Context(), apiauth.ActorID(c)); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendNoContent(c)
	}
}
