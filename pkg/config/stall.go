package config

import "time"

// StallConfig holds the StallController's age thresholds.
type StallConfig struct {
	// PickupThreshold: how long a todo/ready_for_qa issue may sit with no
	// activity before its runner is (re-)enqueued (tiers 1/2).
	PickupThreshold time.Duration `yaml:"pickup_threshold"`

	// StuckThreshold: how long in_progress/in_qa may run with no activity
	// before being reverted to the prior column (tiers 2b/2c). Must exceed
	// the agent run timeout plus a safety margin.
	StuckThreshold time.Duration `yaml:"stuck_threshold"`

	// WarnThreshold: age at which a user-visible stall warning is posted
	// (tier 3a).
	WarnThreshold time.Duration `yaml:"warn_threshold"`

	// EscalateThreshold: age at which tech_lead is escalated (tier 3b).
	EscalateThreshold time.Duration `yaml:"escalate_threshold"`

	// SweepInterval is how often the StallController runs, fixed at 5
	// minutes via a cron schedule.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultStallConfig returns the built-in stall-recovery thresholds.
func DefaultStallConfig() *StallConfig {
	return &StallConfig{
		PickupThreshold:   5 * time.Minute,
		StuckThreshold:    20 * time.Minute,
		WarnThreshold:     45 * time.Minute,
		EscalateThreshold: 4 * time.Hour,
		SweepInterval:     5 * time.Minute,
	}
}
