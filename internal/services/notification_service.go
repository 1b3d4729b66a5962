package services

import (
	"context"
	"fmt"

	"cityresponse/internal/models"
	"cityresponse/internal/repositories/interfaces"
	"cityresponse/internal/utils"
	"cityresponse/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationService is a thin persistence wrapper. Deduplication is the
// caller's responsibility; this stays a reusable primitive.
type NotificationService interface {
	// NotifyAutomated writes a scheduler-originated notification
	// (is_automated=true).
	NotifyAutomated(ctx context.Context, recipient primitive.ObjectID, title, message string, trigger models.NotificationTrigger, relatedReportID *primitive.ObjectID) error

	// NotifyManual writes an admin-originated notification
	// (is_automated=false).
	NotifyManual(ctx context.Context, recipient primitive.ObjectID, title, message string, trigger models.NotificationTrigger, relatedReportID *primitive.ObjectID) error
}

type notificationService struct {
	notificationRepo interfaces.NotificationRepository
	logger           *logger.Logger
}

func NewNotificationService(notificationRepo interfaces.NotificationRepository, log *logger.Logger) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		logger:           log,
	}
}

func (s *notificationService) NotifyAutomated(ctx context.Context, recipient primitive.ObjectID, title, message string, trigger models.NotificationTrigger, relatedReportID *primitive.ObjectID) error {
	return s.notify(ctx, recipient, title, message, trigger, relatedReportID, true)
}

func (s *notificationService) NotifyManual(ctx context.Context, recipient primitive.ObjectID, title, message string, trigger models.NotificationTrigger, relatedReportID *primitive.ObjectID) error {
	return s.notify(ctx, recipient, title, message, trigger, relatedReportID, false)
}

func (s *notificationService) notify(ctx context.Context, recipient primitive.ObjectID, title, message string, trigger models.NotificationTrigger, relatedReportID *primitive.ObjectID, automated bool) error {
	notification := &models.Notification{
		RecipientID:     recipient,
		Title:           title,
		Message:         message,
		TriggerType:     trigger,
		IsAutomated:     automated,
		RelatedReportID: relatedReportID,
	}

	if err := utils.ValidateStruct(notification); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.WithError(err).WithField("trigger_type", string(trigger)).Error("Failed to persist notification")
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return nil
}
