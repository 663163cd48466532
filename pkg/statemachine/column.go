// Package statemachine implements the nine-stage kanban pipeline: the only
// code path allowed to change an Issue's kanban_column.
package statemachine

// Column is one stage of the kanban pipeline.
type Column string

// The canonical column order. dismissed is a terminal sink reachable from
// any non-terminal column and deliberately excluded from the ordered list:
// it never participates in the idempotency index comparison (§4.1).
const (
	ColumnTriage                Column = "triage"
	ColumnReadyForUATApproval   Column = "ready_for_uat_approval"
	ColumnTodo                  Column = "todo"
	ColumnInProgress            Column = "in_progress"
	ColumnReadyForQA            Column = "ready_for_qa"
	ColumnInQA                  Column = "in_qa"
	ColumnReadyForUAT           Column = "ready_for_uat"
	ColumnDone                  Column = "done"
	ColumnDismissed             Column = "dismissed"
)

// order is the canonical, index-comparable sequence used by the
// idempotency guard. dismissed has no place in it.
var order = []Column{
	ColumnTriage,
	ColumnReadyForUATApproval,
	ColumnTodo,
	ColumnInProgress,
	ColumnReadyForQA,
	ColumnInQA,
	ColumnReadyForUAT,
	ColumnDone,
}

// Index returns c's position in the canonical order, or -1 for dismissed
// and any unrecognized column.
func Index(c Column) int {
	for i, o := range order {
		if o == c {
			return i
		}
	}
	return -1
}

// LegacyStatus is the backward-compatible status projection.
type LegacyStatus string

const (
	StatusOpen             LegacyStatus = "open"
	StatusInProgress       LegacyStatus = "in_progress"
	StatusPendingApproval  LegacyStatus = "pending_approval"
	StatusResolved         LegacyStatus = "resolved"
	StatusDismissed        LegacyStatus = "dismissed"
)

// ProjectLegacyStatus implements the fixed column→status projection
// (invariant I1). Every column must map to exactly one status.
func ProjectLegacyStatus(c Column) LegacyStatus {
	switch c {
	case ColumnTriage, ColumnReadyForUATApproval, ColumnTodo:
		return StatusOpen
	case ColumnInProgress, ColumnReadyForQA, ColumnInQA:
		return StatusInProgress
	case ColumnReadyForUAT:
		return StatusPendingApproval
	case ColumnDone:
		return StatusResolved
	case ColumnDismissed:
		return StatusDismissed
	default:
		return StatusOpen
	}
}
