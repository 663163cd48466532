package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/ticketforge/kanbanengine/pkg/callback"
	"github.com/ticketforge/kanbanengine/pkg/config"
)

func TestBearerToken(t *testing.T) {
	e := echo.New()

	t.Run("valid header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/internal/agent-result", nil)
		req.Header.Set("Authorization", "Bearer secret-token")
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, "secret-token", bearerToken(c))
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/internal/agent-result", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, "", bearerToken(c))
	})

	t.Run("malformed scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/internal/agent-result", nil)
		req.Header.Set("Authorization", "Basic secret-token")
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, "", bearerToken(c))
	})
}

func newTestCallbackHandler(token string) *callback.Handler {
	return callback.New(nil, nil, nil, nil, &config.Config{InternalToken: token})
}

func TestAgentResultHandler_RejectsBadToken(t *testing.T) {
	s := &Server{callbackHandler: newTestCallbackHandler("secret-token")}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/agent-result", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer wrong-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.agentResultHandler(c)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusUnauthorized, he.Code)
		}
	}
}

func TestSaveCredentialHandler_RejectsBadToken(t *testing.T) {
	s := &Server{callbackHandler: newTestCallbackHandler("secret-token")}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/save-credential", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer wrong-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.saveCredentialHandler(c)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusUnauthorized, he.Code)
		}
	}
}
