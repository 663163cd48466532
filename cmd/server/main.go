// Command server runs the ticket engine's HTTP API, background dispatch
// workers, the stall-recovery cron sweep, and the retention cleanup loop.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/ticketforge/kanbanengine/pkg/agentrunner"
	"github.com/ticketforge/kanbanengine/pkg/api"
	"github.com/ticketforge/kanbanengine/pkg/callback"
	"github.com/ticketforge/kanbanengine/pkg/cleanup"
	"github.com/ticketforge/kanbanengine/pkg/config"
	"github.com/ticketforge/kanbanengine/pkg/crypto"
	"github.com/ticketforge/kanbanengine/pkg/database"
	"github.com/ticketforge/kanbanengine/pkg/dispatch"
	"github.com/ticketforge/kanbanengine/pkg/events"
	"github.com/ticketforge/kanbanengine/pkg/lock"
	"github.com/ticketforge/kanbanengine/pkg/pmactions"
	"github.com/ticketforge/kanbanengine/pkg/realtime"
	"github.com/ticketforge/kanbanengine/pkg/services"
	"github.com/ticketforge/kanbanengine/pkg/spawner"
	"github.com/ticketforge/kanbanengine/pkg/stall"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := getEnv("CONFIG_DIR", "./deploy/config")

	envPath := filepath.Join(configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("no .env file at %s, using existing environment", envPath)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	credentialKey := crypto.DeriveKey(cfg.CredentialKeyRaw)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("loading database config: %v", err)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("closing database client", "error", err)
		}
	}()
	slog.Info("connected to PostgreSQL", "database", dbConfig.Database)

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("parsing LOCK_STORE_URL: %v", err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("closing redis client", "error", err)
		}
	}()
	lockService := lock.NewService(redisClient, cfg.InternalToken)

	dispatcher := dispatch.NewDispatcher(dbClient.Client)
	publisher := events.NewPublisher(dbClient.DB())

	issueService := services.NewIssueService(dbClient.Client, dbClient.DB())

	connManager := realtime.NewConnectionManager(
		issueService,
		issueService,
		events.NewEventServiceAdapter(services.NewEventService(dbClient.Client)),
	)

	listener := events.NewNotifyListener(dsnFromConfig(dbConfig), connManager)
	connManager.SetListener(listener)

	spawnerClient := spawner.New(cfg.AgentHostBaseURL, cfg.AgentHostToken)

	pmGateway := pmactions.NewHTTPGateway(cfg.AgentHostBaseURL, cfg.AgentHostToken)
	pmRunner := pmactions.New(dbClient.Client, pmGateway, dispatcher, publisher, cfg, credentialKey)

	devQARunner := agentrunner.New(dbClient.Client, lockService, dispatcher, publisher, spawnerClient, cfg, credentialKey)

	callbackHandler := callback.New(dbClient.Client, lockService, dispatcher, publisher, cfg)

	// Run errors are logged, not returned: a held lock means another run is
	// in flight, and failed runs are re-dispatched by the stall sweep.
	runAgent := func(ctx context.Context, job *dispatch.Job, role config.Role) error {
		err := devQARunner.Run(ctx, issueIDFromArgs(job), role)
		var held *agentrunner.ErrLockHeld
		if errors.As(err, &held) {
			slog.Info("agent run skipped, lock held", "issue_id", held.IssueID, "role", role)
		} else if err != nil {
			slog.Error("agent run failed", "issue_id", issueIDFromArgs(job), "role", role, "error", err)
		}
		return nil
	}

	handlers := map[string]dispatch.Handler{
		"run_dev_agent": dispatch.HandlerFunc(func(ctx context.Context, job *dispatch.Job) error {
			return runAgent(ctx, job, config.RoleDev)
		}),
		"run_qa_agent": dispatch.HandlerFunc(func(ctx context.Context, job *dispatch.Job) error {
			return runAgent(ctx, job, config.RoleQA)
		}),
		"run_tech_lead": dispatch.HandlerFunc(func(ctx context.Context, job *dispatch.Job) error {
			return runAgent(ctx, job, config.RoleTechLead)
		}),
	}

	workerPool := dispatch.NewWorkerPool(podID(), dbClient.Client, cfg.Queue, handlers)
	if err := workerPool.Start(ctx); err != nil {
		log.Fatalf("starting worker pool: %v", err)
	}
	defer workerPool.Stop()

	stallController := stall.New(dbClient.Client, dispatcher, publisher, cfg.Stall)
	if err := stallController.Start(); err != nil {
		log.Fatalf("starting stall controller: %v", err)
	}
	defer stallController.Stop()

	cleanupService := cleanup.NewService(cfg.Retention, dispatcher, services.NewEventService(dbClient.Client))
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	if err := listener.Start(ctx); err != nil {
		log.Fatalf("starting NOTIFY listener: %v", err)
	}
	defer listener.Stop(context.Background())

	customerService := services.NewCustomerService(dbClient.Client)
	transitionService := services.NewTransitionService(dbClient.Client, dispatcher, publisher)
	chatMessageService := services.NewChatMessageService(dbClient.Client, publisher, pmRunner)
	credentialService := services.NewCredentialService(dbClient.Client, credentialKey)

	server := api.NewServer(
		cfg,
		dbClient,
		customerService,
		issueService,
		transitionService,
		chatMessageService,
		credentialService,
		callbackHandler,
		connManager,
		workerPool,
	)

	addr := ":" + cfg.HTTPPort
	serverErrCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
			return
		}
		serverErrCh <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	case err := <-serverErrCh:
		if err != nil {
			slog.Error("HTTP server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

// issueIDFromArgs extracts the issue_id argument every agent-run job
// carries (pkg/statemachine and pkg/stall both enqueue with this key).
func issueIDFromArgs(job *dispatch.Job) string {
	if job == nil {
		return ""
	}
	if v, ok := job.Args["issue_id"].(string); ok {
		return v
	}
	return ""
}

// podID gives the worker pool a stable identity for its health report,
// derived from the hostname Kubernetes assigns each pod.
func podID() string {
	host, err := os.Hostname()
	if err != nil {
		return "server"
	}
	return host
}

// dsnFromConfig builds the libpq-style connection string NotifyListener's
// dedicated pgx connection needs, reusing the same fields as
// database.NewClient's pool DSN.
func dsnFromConfig(cfg database.Config) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)
}
