package interfaces

import (
	"context"

	"cityresponse/internal/models"
	"cityresponse/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error

	// ExistsByReportAndTrigger backs the scheduler's at-most-once
	// eta_reminder check.
	ExistsByReportAndTrigger(ctx context.Context, reportID primitive.ObjectID, trigger models.NotificationTrigger) (bool, error)

	GetByRecipient(ctx context.Context, recipientID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Notification, int64, error)
	GetUnreadCount(ctx context.Context, recipientID primitive.ObjectID) (int64, error)
	MarkAsRead(ctx context.Context, id primitive.ObjectID) error
	MarkAllAsRead(ctx context.Context, recipientID primitive.ObjectID) error
}
