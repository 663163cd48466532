package stall

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ticketforge/kanbanengine/pkg/config"
	"github.com/ticketforge/kanbanengine/pkg/statemachine"
)

func testConfig() *config.StallConfig {
	return config.DefaultStallConfig()
}

func TestDecideTierTodoPickup(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, tierNone, decideTier(statemachine.ColumnTodo, 4*time.Minute, cfg))
	assert.Equal(t, tierPickupDev, decideTier(statemachine.ColumnTodo, 6*time.Minute, cfg))
}

func TestDecideTierReadyForQAPickup(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, tierPickupQA, decideTier(statemachine.ColumnReadyForQA, 10*time.Minute, cfg))
}

func TestDecideTierRevertBeforeWarnThreshold(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, tierRevertTier, decideTier(statemachine.ColumnInProgress, 25*time.Minute, cfg))
	assert.Equal(t, tierRevertTier, decideTier(statemachine.ColumnInQA, 30*time.Minute, cfg))
}

func TestDecideTierWarnBetweenThresholds(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, tierWarnTier, decideTier(statemachine.ColumnInProgress, 50*time.Minute, cfg))
	assert.Equal(t, tierWarnTier, decideTier(statemachine.ColumnInQA, 3*time.Hour, cfg))
}

func TestDecideTierEscalateAtFourHours(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, tierEscalateTier, decideTier(statemachine.ColumnInProgress, 4*time.Hour, cfg))
	assert.Equal(t, tierEscalateTier, decideTier(statemachine.ColumnInQA, 5*time.Hour, cfg))
}

func TestDecideTierQuietColumnsNeverMatch(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, tierNone, decideTier(statemachine.ColumnDone, 10*time.Hour, cfg))
	assert.Equal(t, tierNone, decideTier(statemachine.ColumnDismissed, 10*time.Hour, cfg))
	assert.Equal(t, tierNone, decideTier(statemachine.ColumnTriage, 10*time.Hour, cfg))
}
