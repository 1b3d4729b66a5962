package handlers

import (
	"cityresponse/internal/repositories/interfaces"
	"cityresponse/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationHandler struct {
	notificationRepo interfaces.NotificationRepository
}

func NewNotificationHandler(notificationRepo interfaces.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{
		notificationRepo: notificationRepo,
	}
}

// ListNotifications returns a recipient's notifications, newest first.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	recipientID, err := primitive.ObjectIDFromHex(c.Param("recipientId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid recipient ID")
		return
	}

	params := utils.GetPaginationParams(c)
	notifications, total, err := h.notificationRepo.GetByRecipient(c.Request.Context(), recipientID, params)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Notifications", notifications, &utils.Meta{
		Pagination: utils.CalculatePaginationMeta(params, total),
		Count:      len(notifications),
	})
}

// GetUnreadCount returns the recipient's unread notification count.
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	recipientID, err := primitive.ObjectIDFromHex(c.Param("recipientId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid recipient ID")
		return
	}

	count, err := h.notificationRepo.GetUnreadCount(c.Request.Context(), recipientID)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Unread count", gin.H{"unread_count": count})
}

// MarkAsRead marks one notification read.
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid notification ID")
		return
	}

	if err := h.notificationRepo.MarkAsRead(c.Request.Context(), id); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Notification marked as read", nil)
}

// MarkAllAsRead marks every notification for a recipient read.
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	recipientID, err := primitive.ObjectIDFromHex(c.Param("recipientId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid recipient ID")
		return
	}

	if err := h.notificationRepo.MarkAllAsRead(c.Request.Context(), recipientID); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "All notifications marked as read", nil)
}
