package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/ticketforge/kanbanengine/pkg/database"
	"github.com/ticketforge/kanbanengine/pkg/dispatch"
)

// HealthResponse is the body returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Database *database.HealthStatus `json:"database,omitempty"`
	Queue    *dispatch.PoolHealth   `json:"queue,omitempty"`
}

// healthHandler handles GET /health.
func (s *Server) healthHandler(c echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, &HealthResponse{
			Status:   "unhealthy",
			Database: dbHealth,
		})
	}

	response := &HealthResponse{
		Status:   "healthy",
		Database: dbHealth,
	}
	if s.workerPool != nil {
		response.Queue = s.workerPool.Health()
		if !response.Queue.IsHealthy {
			response.Status = "degraded"
		}
	}

	return c.JSON(http.StatusOK, response)
}
