package database

import (
	"context"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/pkg/database"
)

// NewTestClient returns a fully migrated *database.Client for one test.
// With CI_DATABASE_URL set it targets the CI-provided Postgres service;
// otherwise it starts a dedicated testcontainer. Both the ent schema and
// the GIN indexes the engine's full-text queries need are created before
// returning, and t.Cleanup tears everything down.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	dsn := os.Getenv("CI_DATABASE_URL")
	if dsn != "" {
		t.Log("using CI-provided PostgreSQL via CI_DATABASE_URL")
	} else {
		t.Log("starting PostgreSQL testcontainer")
		container, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			postgres.WithInitScripts("../../deploy/postgres-init/01-init.sql"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(container); err != nil {
				t.Logf("terminating postgres container: %v", err)
			}
		})

		dsn, err = container.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	drv, err := sql.Open(dialect.Postgres, dsn)
	require.NoError(t, err)

	pool := drv.DB()
	pool.SetMaxOpenConns(10)
	pool.SetMaxIdleConns(5)

	entClient := ent.NewClient(ent.Driver(drv))

	// Tests use ent's auto-migration; the versioned SQL under
	// pkg/database/migrations is exercised by the production startup path.
	require.NoError(t, entClient.Schema.Create(ctx))
	require.NoError(t, database.CreateGINIndexes(ctx, drv))

	client := database.NewClientFromEnt(entClient, pool)
	t.Cleanup(func() { _ = client.Close() })
	return client
}
