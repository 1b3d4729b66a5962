package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"cityresponse/internal/config"
	"cityresponse/internal/models"
	"cityresponse/internal/repositories/interfaces"
	"cityresponse/internal/utils"
	"cityresponse/pkg/logger"
)

// PassLease is the optional cross-replica guard for scheduler passes. The
// redis cache satisfies it; a nil lease means single-instance deployment.
type PassLease interface {
	AcquireLease(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ReleaseLease(ctx context.Context, key string) error
}

// PassStats summarizes one scheduler pass.
type PassStats struct {
	Processed    int
	Transitioned int
	Reminders    int
	Failures     int
	Skipped      bool
}

// SchedulerService drives the incident lifecycle on a fixed interval:
// pending incidents whose scheduled response time has arrived become active,
// and active incidents approaching their ETA get a single reminder.
type SchedulerService interface {
	Start()
	Stop()

	// RunPass executes one scheduling pass. Exposed for manual triggering
	// and tests; Start calls it on every tick.
	RunPass(ctx context.Context) (PassStats, error)
}

type schedulerService struct {
	incidentRepo     interfaces.IncidentRepository
	notificationRepo interfaces.NotificationRepository
	notifier         NotificationService
	lease            PassLease
	cfg              *config.SchedulerConfig
	logger           *logger.Logger
	now              func() time.Time

	// inFlight is the single-flight guard: a tick that fires while the
	// previous pass is still running is skipped, never queued.
	inFlight atomic.Bool

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewSchedulerService(
	incidentRepo interfaces.IncidentRepository,
	notificationRepo interfaces.NotificationRepository,
	notifier NotificationService,
	lease PassLease,
	cfg *config.SchedulerConfig,
	log *logger.Logger,
) SchedulerService {
	return &schedulerService{
		incidentRepo:     incidentRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		lease:            lease,
		cfg:              cfg,
		logger:           log,
		now:              time.Now,
		stopCh:           make(chan struct{}),
		doneCh:           make(chan struct{}),
	}
}

func (s *schedulerService) Start() {
	go func() {
		defer close(s.doneCh)

		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()

		s.logger.WithField("interval", utils.FormatDuration(s.cfg.Interval)).Info("Lifecycle scheduler started")

		for {
			select {
			case <-ticker.C:
				stats, err := s.RunPass(context.Background())
				if err != nil {
					s.logger.WithError(err).Error("Scheduler pass failed")
					continue
				}
				if stats.Skipped {
					s.logger.Warn("Scheduler pass skipped: previous pass still running")
				}
			case <-s.stopCh:
				s.logger.Info("Lifecycle scheduler stopped")
				return
			}
		}
	}()
}

func (s *schedulerService) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		<-s.doneCh
	})
}

func (s *schedulerService) RunPass(ctx context.Context) (PassStats, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return PassStats{Skipped: true}, nil
	}
	defer s.inFlight.Store(false)

	if s.lease != nil {
		acquired, err := s.lease.AcquireLease(ctx, utils.SchedulerLeaseKey, s.cfg.LeaseTTL)
		if err != nil {
			s.logger.WithError(err).Warn("Scheduler lease check failed; proceeding without it")
		} else if !acquired {
			return PassStats{Skipped: true}, nil
		} else {
			defer s.lease.ReleaseLease(ctx, utils.SchedulerLeaseKey)
		}
	}

	started := s.now()

	incidents, err := s.incidentRepo.GetSchedulable(ctx)
	if err != nil {
		return PassStats{}, fmt.Errorf("failed to load schedulable incidents: %w", err)
	}

	var stats PassStats
	for _, incident := range incidents {
		stats.Processed++

		// Per-incident isolation: one bad incident never aborts the pass.
		transitioned, reminded, err := s.processIncident(ctx, incident)
		if err != nil {
			stats.Failures++
			s.logger.WithError(err).WithIncidentID(incident.ID).Error("Failed to process incident")
			continue
		}
		if transitioned {
			stats.Transitioned++
		}
		if reminded {
			stats.Reminders++
		}
	}

	s.logger.LogSchedulerPass(stats.Processed, stats.Transitioned, stats.Reminders, stats.Failures, time.Since(started))
	return stats, nil
}

func (s *schedulerService) processIncident(ctx context.Context, incident *models.IncidentReport) (transitioned, reminded bool, err error) {
	now := s.now()

	if models.CanTransition(incident.Status, models.IncidentStatusActive) {
		due, err := s.scheduleDue(incident, now)
		if err != nil {
			return false, false, err
		}
		if !due {
			return false, false, nil
		}

		// The guarded update keeps this idempotent: a concurrent writer
		// that already advanced the status turns this into a no-op.
		advanced, err := s.incidentRepo.MarkActive(ctx, incident.ID, now)
		if err != nil {
			return false, false, err
		}
		if !advanced {
			return false, false, nil
		}
		transitioned = true
		s.logger.LogIncidentEvent(incident.ID, "response_started", map[string]interface{}{
			"scheduled_response_time": *incident.ScheduledResponseTime,
		})

		if err := s.notifier.NotifyAutomated(ctx,
			incident.ReporterID,
			"Response team dispatched",
			fmt.Sprintf("A response team has started responding to your report %q.", incident.Title),
			models.TriggerResponseStarted,
			&incident.ID,
		); err != nil {
			return transitioned, false, err
		}
	}

	// Re-read before ETA evaluation so the reminder only ever considers
	// the durably written status.
	current, err := s.incidentRepo.GetByID(ctx, incident.ID)
	if err != nil {
		return transitioned, false, err
	}
	if current.Status != models.IncidentStatusActive || current.EstimatedArrivalTime == nil {
		return transitioned, false, nil
	}

	reminded, err = s.maybeSendETAReminder(ctx, current, now)
	return transitioned, reminded, err
}

func (s *schedulerService) scheduleDue(incident *models.IncidentReport, now time.Time) (bool, error) {
	if incident.ScheduledResponseTime == nil || *incident.ScheduledResponseTime == "" {
		return false, nil
	}

	scheduled, err := utils.ParseTimestamp(*incident.ScheduledResponseTime)
	if err != nil {
		return false, fmt.Errorf("malformed scheduled_response_time %q: %w", *incident.ScheduledResponseTime, err)
	}

	return !scheduled.After(now), nil
}

func (s *schedulerService) maybeSendETAReminder(ctx context.Context, incident *models.IncidentReport, now time.Time) (bool, error) {
	arrival := *incident.EstimatedArrivalTime
	windowStart := arrival.Add(-s.cfg.ETAReminderWindow)

	// Half-open window [arrival-window, arrival).
	if now.Before(windowStart) || !now.Before(arrival) {
		return false, nil
	}

	exists, err := s.notificationRepo.ExistsByReportAndTrigger(ctx, incident.ID, models.TriggerETAReminder)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	minutesLeft := int(arrival.Sub(now).Minutes()) + 1
	if err := s.notifier.NotifyAutomated(ctx,
		incident.ReporterID,
		"Response team arriving soon",
		fmt.Sprintf("The response team is about %d minute(s) away.", minutesLeft),
		models.TriggerETAReminder,
		&incident.ID,
	); err != nil {
		return false, err
	}

	return true, nil
}
