package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/ticketforge/kanbanengine/pkg/services"
	"github.com/ticketforge/kanbanengine/pkg/statemachine"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}

	var conflictErr *statemachine.ConflictError
	if errors.As(err, &conflictErr) {
		return echo.NewHTTPError(http.StatusConflict, conflictErr.Error())
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

// isIdempotentNoop reports whether err is the state machine's no-op signal,
// which transition handlers treat as a skipped-but-successful outcome
// rather than an HTTP error.
func isIdempotentNoop(err error) (*statemachine.IdempotencyNoop, bool) {
	var noop *statemachine.IdempotencyNoop
	if errors.As(err, &noop) {
		return noop, true
	}
	return nil, false
}
