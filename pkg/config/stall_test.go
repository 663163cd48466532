package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestDefaultStallConfig pins the built-in thresholds verbatim (pickup
// 5 min, stuck 20 min, warn 45 min, escalate 4 h) and the fixed 5-minute
// sweep cadence run via cron.
func TestDefaultStallConfig(t *testing.T) {
	cfg := DefaultStallConfig()

	assert.Equal(t, 5*time.Minute, cfg.PickupThreshold)
	assert.Equal(t, 20*time.Minute, cfg.StuckThreshold)
	assert.Equal(t, 45*time.Minute, cfg.WarnThreshold)
	assert.Equal(t, 4*time.Hour, cfg.EscalateThreshold)
	assert.Equal(t, 5*time.Minute, cfg.SweepInterval)
}

// TestStallThresholdOrdering guards the invariant pkg/stall's decideTier
// relies on: each tier's floor must exceed the previous tier's, and the
// stuck threshold must clear the agent run timeout (900s) plus a safety
// margin.
func TestStallThresholdOrdering(t *testing.T) {
	cfg := DefaultStallConfig()

	assert.Less(t, cfg.PickupThreshold, cfg.StuckThreshold)
	assert.Less(t, cfg.StuckThreshold, cfg.WarnThreshold)
	assert.Less(t, cfg.WarnThreshold, cfg.EscalateThreshold)
	assert.Greater(t, cfg.StuckThreshold, 15*time.Minute, "stuck threshold must exceed the 900s agent run timeout")
}
