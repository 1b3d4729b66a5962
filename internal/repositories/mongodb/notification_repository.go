package mongodb

import (
	"context"
	"fmt"
	"time"

	"cityresponse/internal/models"
	"cityresponse/internal/repositories/interfaces"
	"cityresponse/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type notificationRepository struct {
	collection *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) interfaces.NotificationRepository {
	return &notificationRepository{
		collection: db.Collection("notifications"),
	}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	notification.ID = primitive.NewObjectID()
	notification.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, notification)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

func (r *notificationRepository) ExistsByReportAndTrigger(ctx context.Context, reportID primitive.ObjectID, trigger models.NotificationTrigger) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"related_report_id": reportID,
		"trigger_type":      trigger,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check notification existence: %w", err)
	}

	return count > 0, nil
}

func (r *notificationRepository) GetByRecipient(ctx context.Context, recipientID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Notification, int64, error) {
	filter := bson.M{"recipient_id": recipientID}

	if params == nil {
		params = utils.DefaultPaginationParams()
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.MongoFindOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []*models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, 0, fmt.Errorf("failed to decode notifications: %w", err)
	}

	return notifications, total, nil
}

func (r *notificationRepository) GetUnreadCount(ctx context.Context, recipientID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"recipient_id": recipientID,
		"is_read":      false,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now()
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_read": true, "read_at": now}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("notification not found")
	}

	return nil
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context, recipientID primitive.ObjectID) error {
	now := time.Now()
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"recipient_id": recipientID, "is_read": false},
		bson.M{"$set": bson.M{"is_read": true, "read_at": now}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}

	return nil
}
