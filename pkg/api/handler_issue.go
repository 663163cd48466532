package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/ticketforge/kanbanengine/pkg/statemachine"
)

// transitionRequest is the body of POST /issues/:id/transition.
type transitionRequest struct {
	ToCol string `json:"to_col"`
	Note  string `json:"note,omitempty"`
}

// transitionResponse reports what Apply did, or that it was skipped as an
// idempotent no-op.
type transitionResponse struct {
	Column       string `json:"column,omitempty"`
	DevFailCount int    `json:"dev_fail_count,omitempty"`
	Skipped      bool   `json:"skipped,omitempty"`
}

// transitionHandler handles POST /issues/:id/transition: the general
// customer-initiated column change.
func (s *Server) transitionHandler(c echo.Context) error {
	issueID := c.PathParam("id")
	customerID, err := s.resolveTenant(c)
	if err != nil {
		return err
	}
	if err := s.verifyOwnership(c, customerID, issueID); err != nil {
		return err
	}

	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ToCol == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "to_col is required")
	}

	return s.applyTransition(c, issueID, statemachine.ActorCustomer, statemachine.Column(req.ToCol), req.Note)
}

// approveAndStartHandler handles POST /issues/:id/approve-and-start, the
// shorthand for ready_for_uat_approval -> todo.
func (s *Server) approveAndStartHandler(c echo.Context) error {
	issueID := c.PathParam("id")
	customerID, err := s.resolveTenant(c)
	if err != nil {
		return err
	}
	if err := s.verifyOwnership(c, customerID, issueID); err != nil {
		return err
	}
	return s.applyTransition(c, issueID, statemachine.ActorCustomer, statemachine.ColumnTodo, "")
}

// uatRejectHandler handles POST /issues/:id/uat-reject: ready_for_uat ->
// todo, incrementing dev_fail_count (escalation to tech_lead at 3 is
// applied inside statemachine.Apply, not here).
func (s *Server) uatRejectHandler(c echo.Context) error {
	issueID := c.PathParam("id")
	customerID, err := s.resolveTenant(c)
	if err != nil {
		return err
	}
	if err := s.verifyOwnership(c, customerID, issueID); err != nil {
		return err
	}

	var req transitionRequest
	_ = c.Bind(&req) // note is optional; a malformed body just means no note

	return s.applyTransition(c, issueID, statemachine.ActorCustomer, statemachine.ColumnTodo, req.Note)
}

// applyTransition is the shared tail of every customer transition
// endpoint: call the service, translate an IdempotencyNoop into a
// skipped-but-successful response, and surface everything else through
// mapServiceError.
func (s *Server) applyTransition(c echo.Context, issueID string, actor statemachine.Actor, to statemachine.Column, note string) error {
	result, err := s.transitionService.Apply(c.Request().Context(), issueID, actor, to, note)
	if err != nil {
		if noop, ok := isIdempotentNoop(err); ok {
			return c.JSON(http.StatusOK, &transitionResponse{
				Column:  string(noop.CurrentColumn),
				Skipped: true,
			})
		}
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &transitionResponse{
		Column:       string(result.ToColumn),
		DevFailCount: result.DevFailCount,
	})
}

// transitionView is one row of the audit log returned by
// GET /issues/:id/transitions.
type transitionView struct {
	ID        string `json:"id"`
	Actor     string `json:"actor"`
	From      string `json:"from_column"`
	To        string `json:"to_column"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at"`
}

// listTransitionsHandler handles GET /issues/:id/transitions.
func (s *Server) listTransitionsHandler(c echo.Context) error {
	issueID := c.PathParam("id")
	customerID, err := s.resolveTenant(c)
	if err != nil {
		return err
	}
	if err := s.verifyOwnership(c, customerID, issueID); err != nil {
		return err
	}

	transitions, err := s.transitionService.ListTransitions(c.Request().Context(), issueID)
	if err != nil {
		return mapServiceError(err)
	}

	views := make([]transitionView, 0, len(transitions))
	for _, t := range transitions {
		views = append(views, transitionView{
			ID:        t.ID,
			Actor:     string(t.Actor),
			From:      string(t.FromColumn),
			To:        string(t.ToColumn),
			Note:      t.Note,
			CreatedAt: t.CreatedAt.Format(timeFormat),
		})
	}
	return c.JSON(http.StatusOK, views)
}

// verifyOwnership returns a 404 (never a 403 — a customer should not learn
// another tenant's issue exists) when issueID does not belong to
// customerID.
func (s *Server) verifyOwnership(c echo.Context, customerID, issueID string) error {
	owns, err := s.issueService.Owns(c.Request().Context(), customerID, issueID)
	if err != nil {
		return mapServiceError(err)
	}
	if !owns {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	return nil
}

const timeFormat = "2006-01-02T15:04:05Z07:00"
