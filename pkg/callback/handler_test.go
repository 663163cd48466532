package callback

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ticketforge/kanbanengine/pkg/statemachine"
)

func TestIsStaleSameColumn(t *testing.T) {
	assert.True(t, isStale(statemachine.ActorDev, statemachine.ColumnReadyForQA, statemachine.ColumnReadyForQA))
}

func TestIsStaleBehindColumn(t *testing.T) {
	// A duplicate dev-completion callback arriving after qa_agent already
	// picked the issue up: dev is not permitted in_qa->ready_for_qa, and
	// in_qa is already past ready_for_qa.
	assert.True(t, isStale(statemachine.ActorDev, statemachine.ColumnInQA, statemachine.ColumnReadyForQA))
}

func TestIsStaleForwardColumnIsNotStale(t *testing.T) {
	assert.False(t, isStale(statemachine.ActorDev, statemachine.ColumnTodo, statemachine.ColumnInProgress))
}

func TestIsStaleDismissNeverStale(t *testing.T) {
	assert.False(t, isStale(statemachine.ActorCustomer, statemachine.ColumnDone, statemachine.ColumnDismissed))
}

func TestIsStaleQAFailIsNeverStaleEvenThoughItMovesBackward(t *testing.T) {
	// in_qa (index 5) -> todo (index 2) is a matrix-granted QA-fail move;
	// the blanket index comparison alone would misclassify it as stale.
	assert.False(t, isStale(statemachine.ActorQA, statemachine.ColumnInQA, statemachine.ColumnTodo))
}

func TestIsStaleUATRejectIsNeverStale(t *testing.T) {
	assert.False(t, isStale(statemachine.ActorCustomer, statemachine.ColumnReadyForUAT, statemachine.ColumnTodo))
}

func TestHandlerAuthorize(t *testing.T) {
	h := &Handler{internalToken: "s3cr3t"}
	assert.True(t, h.Authorize("s3cr3t"))
	assert.False(t, h.Authorize("wrong"))
	assert.False(t, h.Authorize(""))
}
