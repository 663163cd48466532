package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/pkg/database"
	"github.com/ticketforge/kanbanengine/test/util"
)

// SharedTestDB is one Postgres schema shared by several test replicas.
// Each replica gets an independent pool from NewClient, but every pool
// points at the same schema — the setup a cross-replica NOTIFY/LISTEN
// test needs, since Postgres only delivers a NOTIFY to connections on
// the same database.
type SharedTestDB struct {
	schemaDSN  string
	baseDSN    string
	schemaName string
}

// NewSharedTestDB creates the shared schema, migrates it once (ent schema
// plus the GIN and partial-unique indexes the engine relies on), and
// registers a t.Cleanup that drops it after every replica has shut down
// (cleanups run LIFO, so replica cleanups fire first).
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()
	ctx := context.Background()

	baseDSN := util.GetBaseConnectionString(t)
	schemaName := util.GenerateSchemaName(t)

	setup, err := stdsql.Open("pgx", baseDSN)
	require.NoError(t, err)
	_, err = setup.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schemaName))
	require.NoError(t, err)
	t.Logf("SharedTestDB: created schema %s", schemaName)
	_ = setup.Close()

	schemaDSN := util.AddSearchPathToConnString(baseDSN, schemaName)
	pool, err := stdsql.Open("pgx", schemaDSN)
	require.NoError(t, err)
	pool.SetMaxOpenConns(10)
	pool.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, pool)
	migrator := ent.NewClient(ent.Driver(drv))

	require.NoError(t, migrator.Schema.Create(ctx))
	require.NoError(t, database.CreateGINIndexes(ctx, drv))
	require.NoError(t, database.CreatePartialUniqueIndexes(ctx, drv))

	// Migration done; replicas open their own pools.
	_ = migrator.Close()
	_ = pool.Close()

	t.Cleanup(func() {
		cleaner, err := stdsql.Open("pgx", baseDSN)
		if err != nil {
			t.Logf("SharedTestDB: could not connect to drop schema %s: %v", schemaName, err)
			return
		}
		defer func() { _ = cleaner.Close() }()
		if _, err := cleaner.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName)); err != nil {
			t.Logf("SharedTestDB: dropping schema %s: %v", schemaName, err)
		}
	})

	return &SharedTestDB{
		schemaDSN:  schemaDSN,
		baseDSN:    baseDSN,
		schemaName: schemaName,
	}
}

// NewClient opens an independent *database.Client over its own pool into
// the shared schema, so one replica can be shut down without starving the
// others' connections. Closed via t.Cleanup.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()

	pool, err := stdsql.Open("pgx", s.schemaDSN)
	require.NoError(t, err)
	pool.SetMaxOpenConns(10)
	pool.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, pool)
	entClient := ent.NewClient(ent.Driver(drv))
	client := database.NewClientFromEnt(entClient, pool)

	t.Cleanup(func() {
		_ = entClient.Close()
		_ = pool.Close()
	})

	return client
}
