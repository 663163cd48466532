// Package api provides the ticket engine's HTTP API: the customer-facing
// transition/chat/WebSocket surface and the internal agent-callback/
// credential-save endpoints.
package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/ticketforge/kanbanengine/pkg/callback"
	"github.com/ticketforge/kanbanengine/pkg/config"
	"github.com/ticketforge/kanbanengine/pkg/database"
	"github.com/ticketforge/kanbanengine/pkg/dispatch"
	"github.com/ticketforge/kanbanengine/pkg/metrics"
	"github.com/ticketforge/kanbanengine/pkg/realtime"
	"github.com/ticketforge/kanbanengine/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	cfg        *config.Config
	dbClient   *database.Client

	customerService    *services.CustomerService
	issueService       *services.IssueService
	transitionService  *services.TransitionService
	chatMessageService *services.ChatMessageService
	credentialService  *services.CredentialService

	callbackHandler *callback.Handler
	connManager     *realtime.ConnectionManager
	workerPool      *dispatch.WorkerPool
}

// NewServer creates a new API server with Echo v5 and registers every
// route the engine exposes.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	customerService *services.CustomerService,
	issueService *services.IssueService,
	transitionService *services.TransitionService,
	chatMessageService *services.ChatMessageService,
	credentialService *services.CredentialService,
	callbackHandler *callback.Handler,
	connManager *realtime.ConnectionManager,
	workerPool *dispatch.WorkerPool,
) *Server {
	e := echo.New()

	s := &Server{
		echo:               e,
		cfg:                cfg,
		dbClient:           dbClient,
		customerService:    customerService,
		issueService:       issueService,
		transitionService:  transitionService,
		chatMessageService: chatMessageService,
		credentialService:  credentialService,
		callbackHandler:    callbackHandler,
		connManager:        connManager,
		workerPool:         workerPool,
	}

	s.setupRoutes()
	return s
}

// setupRoutes registers all API routes.
func (s *Server) setupRoutes() {
	s.echo.Use(securityHeaders())
	s.echo.Use(middleware.BodyLimit(1024 * 1024))

	s.echo.GET("/health", s.healthHandler)
	s.echo.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	s.echo.POST("/issues/:id/transition", s.transitionHandler)
	s.echo.POST("/issues/:id/approve-and-start", s.approveAndStartHandler)
	s.echo.POST("/issues/:id/uat-reject", s.uatRejectHandler)
	s.echo.GET("/issues/:id/transitions", s.listTransitionsHandler)
	s.echo.GET("/issues/:id/messages", s.listMessagesHandler)
	s.echo.POST("/issues/:id/messages", s.postMessageHandler)

	s.echo.GET("/ws/issues/:id", s.wsHandler)

	s.echo.POST("/internal/agent-result", s.agentResultHandler)
	s.echo.POST("/internal/save-credential", s.saveCredentialHandler)
}

// Start starts the HTTP server on the given address (blocking).
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
