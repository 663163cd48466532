package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

// Only the pre-service validation path (missing tenant identity) is
// exercised here: every handler below calls resolveTenant before touching
// any service, so a Server with nil services is safe to construct.
// Happy-path coverage requires a real database and belongs to integration
// tests.

func TestTransitionHandler_MissingTenantHeader(t *testing.T) {
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/issues/issue-1/transition", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPathParams(echo.PathParams{{Name: "id", Value: "issue-1"}})

	err := s.transitionHandler(c)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok, "expected echo.HTTPError") {
			assert.Equal(t, http.StatusUnauthorized, he.Code)
		}
	}
}

func TestApproveAndStartHandler_MissingTenantHeader(t *testing.T) {
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/issues/issue-1/approve-and-start", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPathParams(echo.PathParams{{Name: "id", Value: "issue-1"}})

	err := s.approveAndStartHandler(c)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusUnauthorized, he.Code)
		}
	}
}

func TestUatRejectHandler_MissingTenantHeader(t *testing.T) {
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/issues/issue-1/uat-reject", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPathParams(echo.PathParams{{Name: "id", Value: "issue-1"}})

	err := s.uatRejectHandler(c)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusUnauthorized, he.Code)
		}
	}
}

func TestListTransitionsHandler_MissingTenantHeader(t *testing.T) {
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/issues/issue-1/transitions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPathParams(echo.PathParams{{Name: "id", Value: "issue-1"}})

	err := s.listTransitionsHandler(c)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusUnauthorized, he.Code)
		}
	}
}
