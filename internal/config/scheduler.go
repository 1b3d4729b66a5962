package config

import (
	"time"
)

type SchedulerConfig struct {
	Enabled           bool          `yaml:"enabled"`
	Interval          time.Duration `yaml:"interval"`
	ETAReminderWindow time.Duration `yaml:"eta_reminder_window"`
	LeaseTTL          time.Duration `yaml:"lease_ttl"`
}

func loadSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		Enabled:           getEnvAsBool("SCHEDULER_ENABLED", true),
		Interval:          getEnvAsDuration("SCHEDULER_INTERVAL", 60*time.Second),
		ETAReminderWindow: getEnvAsDuration("SCHEDULER_ETA_REMINDER_WINDOW", 3*time.Minute),
		LeaseTTL:          getEnvAsDuration("SCHEDULER_LEASE_TTL", 55*time.Second),
	}
}
