package services

import (
	"context"
	"fmt"
	"time"

	"cityresponse/internal/models"
	"cityresponse/internal/repositories/interfaces"
	"cityresponse/internal/utils"
	"cityresponse/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateIncidentInput struct {
	ReporterID  primitive.ObjectID
	Title       string
	Description string
	Priority    models.IncidentPriority
	Coordinate  *models.Coordinate
}

// IncidentService covers report submission and the manual admin actions the
// scheduler and dispatcher assume exist: scheduling a response and resolving
// an incident.
type IncidentService interface {
	CreateReport(ctx context.Context, input *CreateIncidentInput) (*models.IncidentReport, error)
	GetIncident(ctx context.Context, id primitive.ObjectID) (*models.IncidentReport, error)
	ListIncidents(ctx context.Context, filter *interfaces.IncidentFilter, params *utils.PaginationParams) ([]*models.IncidentReport, int64, error)

	// ScheduleResponse stores the admin-chosen response time and notifies
	// the reporter. The timestamp is validated here; the stored value stays
	// a string so the scheduler re-parses it on every pass.
	ScheduleResponse(ctx context.Context, id primitive.ObjectID, scheduledResponseTime string) error

	// ResolveIncident advances the incident to resolved. Already-resolved
	// incidents conflict; resolution is never reverted.
	ResolveIncident(ctx context.Context, id primitive.ObjectID) error
}

type incidentService struct {
	incidentRepo interfaces.IncidentRepository
	classifier   ClassifierService
	notifier     NotificationService
	logger       *logger.Logger
}

func NewIncidentService(
	incidentRepo interfaces.IncidentRepository,
	classifier ClassifierService,
	notifier NotificationService,
	log *logger.Logger,
) IncidentService {
	return &incidentService{
		incidentRepo: incidentRepo,
		classifier:   classifier,
		notifier:     notifier,
		logger:       log,
	}
}

func (s *incidentService) CreateReport(ctx context.Context, input *CreateIncidentInput) (*models.IncidentReport, error) {
	incident := &models.IncidentReport{
		ReporterID:  input.ReporterID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      models.IncidentStatusPending,
	}

	if input.Coordinate != nil {
		if err := input.Coordinate.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		incident.Coordinate = input.Coordinate
		incident.ZoneName = s.classifier.Classify(input.Coordinate.Lat, input.Coordinate.Lng)
	}

	if err := utils.ValidateStruct(incident); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.incidentRepo.Create(ctx, incident); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.logger.WithIncidentID(incident.ID).WithZone(incident.ZoneName).Info("Incident report created")
	return incident, nil
}

func (s *incidentService) GetIncident(ctx context.Context, id primitive.ObjectID) (*models.IncidentReport, error) {
	incident, err := s.incidentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: incident %s", ErrNotFound, id.Hex())
	}
	return incident, nil
}

func (s *incidentService) ListIncidents(ctx context.Context, filter *interfaces.IncidentFilter, params *utils.PaginationParams) ([]*models.IncidentReport, int64, error) {
	return s.incidentRepo.List(ctx, filter, params)
}

func (s *incidentService) ScheduleResponse(ctx context.Context, id primitive.ObjectID, scheduledResponseTime string) error {
	scheduled, err := utils.ParseTimestamp(scheduledResponseTime)
	if err != nil {
		return fmt.Errorf("%w: invalid scheduled_response_time: %v", ErrValidation, err)
	}

	incident, err := s.incidentRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: incident %s", ErrNotFound, id.Hex())
	}
	if incident.IsResolved() {
		return fmt.Errorf("%w: cannot schedule a resolved incident", ErrStateConflict)
	}

	incident.ScheduledResponseTime = &scheduledResponseTime
	if err := utils.ValidateStruct(incident); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.incidentRepo.SetSchedule(ctx, id, scheduledResponseTime); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := s.notifier.NotifyManual(ctx,
		incident.ReporterID,
		"Response scheduled",
		fmt.Sprintf("A response to your report %q is scheduled for %s.", incident.Title, scheduled.Format("Jan 2, 3:04 PM")),
		models.TriggerScheduledResponse,
		&incident.ID,
	); err != nil {
		return err
	}

	return nil
}

func (s *incidentService) ResolveIncident(ctx context.Context, id primitive.ObjectID) error {
	incident, err := s.incidentRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: incident %s", ErrNotFound, id.Hex())
	}
	if !models.CanTransition(incident.Status, models.IncidentStatusResolved) {
		return fmt.Errorf("%w: incident already resolved", ErrStateConflict)
	}

	resolved, err := s.incidentRepo.MarkResolved(ctx, id, time.Now())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !resolved {
		return fmt.Errorf("%w: incident already resolved", ErrStateConflict)
	}

	if err := s.notifier.NotifyManual(ctx,
		incident.ReporterID,
		"Report resolved",
		fmt.Sprintf("Your report %q has been resolved.", incident.Title),
		models.TriggerIncidentResolved,
		&incident.ID,
	); err != nil {
		return err
	}

	s.logger.LogIncidentEvent(id, "resolved", nil)
	return nil
}
