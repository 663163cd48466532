package agentrunner

import (
	"github.com/ticketforge/kanbanengine/pkg/config"
	"github.com/ticketforge/kanbanengine/pkg/statemachine"
)

// spec is the fixed per-role protocol parameters: the column(s) an issue
// must be in for this role to pick it up, the column the role moves it to
// while working, the word budget for its prompt, and the actor under which
// its completion transition is applied.
type spec struct {
	entryColumns    []statemachine.Column // nil means "any non-terminal column" (tech_lead)
	workColumn      statemachine.Column
	wordBudget      int
	completionActor statemachine.Actor
	allowedResults  []statemachine.Column // transition_to values the callback may request
}

// specs covers dev/qa/tech_lead. pm_agent does not spawn and has no entry
// here (see pkg/pmactions for its synchronous path).
var specs = map[config.Role]spec{
	config.RoleDev: {
		entryColumns:    []statemachine.Column{statemachine.ColumnTodo},
		workColumn:      statemachine.ColumnInProgress,
		wordBudget:      1200,
		completionActor: statemachine.ActorDev,
		allowedResults:  []statemachine.Column{statemachine.ColumnReadyForQA},
	},
	config.RoleQA: {
		entryColumns:    []statemachine.Column{statemachine.ColumnReadyForQA},
		workColumn:      statemachine.ColumnInQA,
		wordBudget:      800,
		completionActor: statemachine.ActorQA,
		allowedResults:  []statemachine.Column{statemachine.ColumnReadyForUAT, statemachine.ColumnTodo},
	},
	config.RoleTechLead: {
		// tech_lead's only matrix grant is "any non-terminal -> in_progress"
		// (pkg/statemachine.IsAllowed); its completion transition is applied
		// under the system actor instead, since the matrix grants no
		// tech_lead-specific forward move out of in_progress (see
		// DESIGN.md).
		entryColumns:    nil,
		workColumn:      statemachine.ColumnInProgress,
		wordBudget:      1500,
		completionActor: statemachine.ActorSystem,
		allowedResults:  []statemachine.Column{statemachine.ColumnTodo, statemachine.ColumnReadyForQA},
	},
}

// entryAllowed reports whether col is an acceptable pickup column for role.
func entryAllowed(role config.Role, col statemachine.Column) bool {
	s := specs[role]
	if s.entryColumns == nil {
		return col != statemachine.ColumnDone && col != statemachine.ColumnDismissed
	}
	for _, c := range s.entryColumns {
		if c == col {
			return true
		}
	}
	return false
}

// resultAllowed reports whether role's callback may request transition_to.
func resultAllowed(role config.Role, to statemachine.Column) bool {
	for _, c := range specs[role].allowedResults {
		if c == to {
			return true
		}
	}
	return false
}

// CompletionActor returns the actor a role's callback-driven completion
// transition is applied under. Exported for pkg/callback, which cannot
// reuse Runner.Run directly since the transition there is driven by an
// HTTP callback rather than a dispatch.Handler.
func CompletionActor(role config.Role) statemachine.Actor {
	return specs[role].completionActor
}

// ResultAllowed is the exported form of resultAllowed, for pkg/callback to
// validate transition_to before applying it.
func ResultAllowed(role config.Role, to statemachine.Column) bool {
	return resultAllowed(role, to)
}
