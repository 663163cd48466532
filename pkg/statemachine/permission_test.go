package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedHappyPathTransitions(t *testing.T) {
	cases := []struct {
		actor Actor
		from  Column
		to    Column
	}{
		{ActorPM, ColumnTriage, ColumnReadyForUATApproval},
		{ActorCustomer, ColumnReadyForUATApproval, ColumnTodo},
		{ActorDev, ColumnTodo, ColumnInProgress},
		{ActorDev, ColumnInProgress, ColumnReadyForQA},
		{ActorQA, ColumnReadyForQA, ColumnInQA},
		{ActorQA, ColumnInQA, ColumnReadyForUAT},
		{ActorCustomer, ColumnReadyForUAT, ColumnDone},
	}
	for _, c := range cases {
		assert.True(t, IsAllowed(c.actor, c.from, c.to), "%s %s->%s", c.actor, c.from, c.to)
	}
}

func TestIsAllowedRejectsWrongActor(t *testing.T) {
	assert.False(t, IsAllowed(ActorCustomer, ColumnTodo, ColumnInProgress))
	assert.False(t, IsAllowed(ActorQA, ColumnTodo, ColumnInProgress))
	assert.False(t, IsAllowed(ActorDev, ColumnReadyForQA, ColumnInQA))
}

func TestCustomerMayDismissAnyNonTerminalColumn(t *testing.T) {
	assert.True(t, IsAllowed(ActorCustomer, ColumnTriage, ColumnDismissed))
	assert.True(t, IsAllowed(ActorCustomer, ColumnInProgress, ColumnDismissed))
	assert.False(t, IsAllowed(ActorCustomer, ColumnDone, ColumnDismissed))
}

func TestTechLeadMayForceAnyNonTerminalToInProgress(t *testing.T) {
	assert.True(t, IsAllowed(ActorTechLead, ColumnTriage, ColumnInProgress))
	assert.True(t, IsAllowed(ActorTechLead, ColumnReadyForQA, ColumnInProgress))
	assert.False(t, IsAllowed(ActorTechLead, ColumnDone, ColumnInProgress))
}

func TestSystemMayDoAnyTransition(t *testing.T) {
	assert.True(t, IsAllowed(ActorSystem, ColumnTriage, ColumnDone))
}

func TestIncrementsDevFailCount(t *testing.T) {
	assert.True(t, IncrementsDevFailCount(ColumnReadyForUAT, ColumnTodo))
	assert.True(t, IncrementsDevFailCount(ColumnInQA, ColumnTodo))
	assert.False(t, IncrementsDevFailCount(ColumnTodo, ColumnInProgress))
}

func TestIndexOrdering(t *testing.T) {
	assert.Less(t, Index(ColumnTriage), Index(ColumnTodo))
	assert.Less(t, Index(ColumnTodo), Index(ColumnDone))
	assert.Equal(t, -1, Index(ColumnDismissed))
}

func TestProjectLegacyStatus(t *testing.T) {
	assert.Equal(t, StatusOpen, ProjectLegacyStatus(ColumnTriage))
	assert.Equal(t, StatusInProgress, ProjectLegacyStatus(ColumnInQA))
	assert.Equal(t, StatusPendingApproval, ProjectLegacyStatus(ColumnReadyForUAT))
	assert.Equal(t, StatusResolved, ProjectLegacyStatus(ColumnDone))
	assert.Equal(t, StatusDismissed, ProjectLegacyStatus(ColumnDismissed))
}
