package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/ticketforge/kanbanengine/pkg/callback"
)

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header, or "" if the header is absent or malformed.
func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimPrefix(auth, prefix)
}

// agentResultHandler handles POST /internal/agent-result: the only way a
// spawned dev_agent/qa_agent/tech_lead session reports back. pm_agent
// never calls this.
func (s *Server) agentResultHandler(c echo.Context) error {
	if !s.callbackHandler.Authorize(bearerToken(c)) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid internal token")
	}

	var req callback.Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.IssueID == "" || req.AgentRole == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "issue_id and agent_role are required")
	}

	resp, err := s.callbackHandler.Handle(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// saveCredentialRequest is the body of POST /internal/save-credential.
type saveCredentialRequest struct {
	SiteID         string `json:"site_id"`
	CredentialType string `json:"credential_type"`
	Value          string `json:"value"`
}

// saveCredentialHandler handles POST /internal/save-credential, used by
// pm_agent's MarkerSaveCredential path when it cannot write inline within
// its own transaction (pkg/pmactions normally does this write directly).
func (s *Server) saveCredentialHandler(c echo.Context) error {
	if !s.callbackHandler.Authorize(bearerToken(c)) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid internal token")
	}

	var req saveCredentialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.SiteID == "" || req.CredentialType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "site_id and credential_type are required")
	}

	created, err := s.credentialService.SaveCredential(c.Request().Context(), req.SiteID, req.CredentialType, req.Value)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":              created.ID,
		"site_id":         created.SiteID,
		"credential_type": created.CredentialType,
	})
}
