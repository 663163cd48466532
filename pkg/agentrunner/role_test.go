package agentrunner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ticketforge/kanbanengine/pkg/config"
	"github.com/ticketforge/kanbanengine/pkg/statemachine"
)

func TestEntryAllowedDev(t *testing.T) {
	assert.True(t, entryAllowed(config.RoleDev, statemachine.ColumnTodo))
	assert.False(t, entryAllowed(config.RoleDev, statemachine.ColumnReadyForQA))
}

func TestEntryAllowedQA(t *testing.T) {
	assert.True(t, entryAllowed(config.RoleQA, statemachine.ColumnReadyForQA))
	assert.False(t, entryAllowed(config.RoleQA, statemachine.ColumnTodo))
}

func TestEntryAllowedTechLeadAnyNonTerminal(t *testing.T) {
	assert.True(t, entryAllowed(config.RoleTechLead, statemachine.ColumnInProgress))
	assert.True(t, entryAllowed(config.RoleTechLead, statemachine.ColumnInQA))
	assert.False(t, entryAllowed(config.RoleTechLead, statemachine.ColumnDone))
	assert.False(t, entryAllowed(config.RoleTechLead, statemachine.ColumnDismissed))
}

func TestResultAllowed(t *testing.T) {
	assert.True(t, resultAllowed(config.RoleDev, statemachine.ColumnReadyForQA))
	assert.False(t, resultAllowed(config.RoleDev, statemachine.ColumnDone))
	assert.True(t, resultAllowed(config.RoleQA, statemachine.ColumnTodo))
	assert.True(t, resultAllowed(config.RoleQA, statemachine.ColumnReadyForUAT))
}
