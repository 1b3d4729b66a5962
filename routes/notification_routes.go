package routes

import (
	"cityresponse/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupNotificationRoutes sets up routes for notification reads
func SetupNotificationRoutes(r *gin.RouterGroup, notificationHandler *handlers.NotificationHandler) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("/recipients/:recipientId", notificationHandler.ListNotifications)
		notifications.GET("/recipients/:recipientId/unread-count", notificationHandler.GetUnreadCount)
		notifications.PUT("/recipients/:recipientId/read-all", notificationHandler.MarkAllAsRead)
		notifications.PUT("/:id/read", notificationHandler.MarkAsRead)
	}
}
