// Package util holds shared Postgres plumbing for this repo's
// integration tests: one testcontainer per package, one schema per test.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ticketforge/kanbanengine/ent"
)

var (
	sharedDSN         string
	containerOnce     sync.Once
	containerSetupErr error
)

// SetupTestDatabase gives the calling test its own freshly migrated schema
// inside the shared database (CI_DATABASE_URL in CI, a package-wide
// testcontainer locally) and returns the ent client plus the raw pool for
// callers that also need database/sql access. The schema is dropped via
// t.Cleanup.
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	ctx := context.Background()

	baseDSN := getOrCreateSharedDatabase(t)
	schemaName := GenerateSchemaName(t)

	setup, err := stdsql.Open("pgx", baseDSN)
	require.NoError(t, err)
	_, err = setup.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schemaName))
	require.NoError(t, err)
	t.Logf("created test schema %s", schemaName)
	_ = setup.Close()

	// Reconnect with search_path baked into the DSN so every pooled
	// connection lands in this test's schema.
	pool, err := stdsql.Open("pgx", AddSearchPathToConnString(baseDSN, schemaName))
	require.NoError(t, err)
	pool.SetMaxOpenConns(10)
	pool.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, pool)
	entClient := ent.NewClient(ent.Driver(drv))

	require.NoError(t, entClient.Schema.Create(ctx))

	t.Cleanup(func() {
		if _, err := pool.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName)); err != nil {
			t.Logf("dropping schema %s: %v", schemaName, err)
		}
		_ = entClient.Close()
		_ = pool.Close()
	})

	return entClient, pool
}

// GetBaseConnectionString returns the shared database's DSN without any
// search_path. Used where a test needs a dedicated raw connection, e.g.
// the pgx.Conn behind pkg/events.NotifyListener.
func GetBaseConnectionString(t *testing.T) string {
	return getOrCreateSharedDatabase(t)
}

// getOrCreateSharedDatabase resolves the shared database: CI_DATABASE_URL
// when set, otherwise a testcontainer started once per test package.
func getOrCreateSharedDatabase(t *testing.T) string {
	if ciDSN := os.Getenv("CI_DATABASE_URL"); ciDSN != "" {
		t.Log("using CI-provided PostgreSQL via CI_DATABASE_URL")
		return ciDSN
	}

	containerOnce.Do(func() {
		ctx := context.Background()
		t.Log("starting shared PostgreSQL testcontainer for this package")

		container, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			postgres.WithInitScripts(resolveInitScriptPath()),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			containerSetupErr = fmt.Errorf("starting postgres container: %w", err)
			return
		}

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			containerSetupErr = fmt.Errorf("resolving container DSN: %w", err)
			return
		}

		sharedDSN = dsn
		t.Logf("shared container ready: %s", sharedDSN)
	})

	require.NoError(t, containerSetupErr, "shared test container setup failed")
	return sharedDSN
}

// GenerateSchemaName derives a unique, identifier-safe schema name from the
// test's own name plus a random suffix, short enough for Postgres's 63-char
// identifier limit.
func GenerateSchemaName(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("generating schema-name suffix: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}

// AddSearchPathToConnString appends a search_path parameter so every pooled
// connection opened from the DSN uses the given schema.
func AddSearchPathToConnString(dsn, schemaName string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%ssearch_path=%s", dsn, sep, schemaName)
}

// resolveInitScriptPath locates deploy/postgres-init/01-init.sql relative
// to this source file, so the container bootstraps identically no matter
// which package's tests start it.
func resolveInitScriptPath() string {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("resolveInitScriptPath: runtime.Caller(0) failed")
	}
	root := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
	return filepath.Join(root, "deploy", "postgres-init", "01-init.sql")
}
