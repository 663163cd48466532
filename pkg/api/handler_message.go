package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// postMessageRequest is the body of POST /issues/:id/messages.
type postMessageRequest struct {
	Body string `json:"body"`
}

// messageView is one chat thread entry.
type messageView struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

// listMessagesHandler handles GET /issues/:id/messages.
func (s *Server) listMessagesHandler(c echo.Context) error {
	issueID := c.PathParam("id")
	customerID, err := s.resolveTenant(c)
	if err != nil {
		return err
	}
	if err := s.verifyOwnership(c, customerID, issueID); err != nil {
		return err
	}

	messages, err := s.chatMessageService.ListMessages(c.Request().Context(), issueID)
	if err != nil {
		return mapServiceError(err)
	}

	views := make([]messageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, messageView{
			ID:        m.ID,
			Author:    string(m.Author),
			Body:      m.Body,
			CreatedAt: m.CreatedAt.Format(timeFormat),
		})
	}
	return c.JSON(http.StatusOK, views)
}

// postMessageHandler handles POST /issues/:id/messages: appends the
// customer's message, then runs pm_agent synchronously so its reply is
// already in the thread by the time this returns.
func (s *Server) postMessageHandler(c echo.Context) error {
	issueID := c.PathParam("id")
	customerID, err := s.resolveTenant(c)
	if err != nil {
		return err
	}
	if err := s.verifyOwnership(c, customerID, issueID); err != nil {
		return err
	}

	var req postMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	msg, err := s.chatMessageService.PostCustomerMessage(c.Request().Context(), issueID, req.Body)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, &messageView{
		ID:        msg.ID,
		Author:    string(msg.Author),
		Body:      msg.Body,
		CreatedAt: msg.CreatedAt.Format(timeFormat),
	})
}
