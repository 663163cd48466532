package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// JobRetentionDays is how many days to keep completed/failed Job rows
	// before deleting them. Jobs are append-heavy and have no downstream
	// consumer once terminal, unlike chat messages or transitions.
	JobRetentionDays int `yaml:"job_retention_days"`

	// EventTTL is the maximum age of Event rows before deletion. The
	// durable event log only needs to outlive the longest plausible
	// WebSocket reconnect gap, not the life of the ticket.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		JobRetentionDays: 30,
		EventTTL:         1 * time.Hour,
		CleanupInterval:  12 * time.Hour,
	}
}
