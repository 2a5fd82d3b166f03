// Package testhelper provides a migrated Moodle schema for integration tests
// and seed helpers for the tables the gateway touches.
package testhelper

import (
	"context"
	"fmt"
	"net"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/leeloo-sync/migrations"
)

// DSNEnv points the integration tests at an existing database instead of a
// throwaway container.
const DSNEnv = "LEELOO_TEST_DSN"

const (
	pgImage  = "postgres:17-alpine"
	pgUser   = "leeloo"
	pgSecret = "leeloo"
	pgDB     = "moodle"
)

var schema struct {
	once sync.Once
	dsn  string
	err  error
}

// SetupTestDB returns a pool on a database migrated to the latest schema.
// The schema is prepared once per test binary and shared, so seeds must use
// unique business keys (see UniqueName). Short mode skips the test.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test: needs PostgreSQL")
	}

	schema.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		schema.dsn, schema.err = prepare(ctx)
	})
	if schema.err != nil {
		t.Fatalf("testhelper: %v", schema.err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, schema.dsn)
	if err != nil {
		t.Fatalf("testhelper: pgxpool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func prepare(ctx context.Context) (string, error) {
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		var err error
		if dsn, err = startPostgres(ctx); err != nil {
			return "", err
		}
	}

	p, err := migrations.Open(ctx, dsn)
	if err != nil {
		return "", err
	}
	defer p.Close()

	if _, err := p.Up(ctx); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}
	return dsn, nil
}

// startPostgres launches the container. It is left running for the life of
// the binary and reaped by testcontainers' Ryuk sidecar.
func startPostgres(ctx context.Context) (string, error) {
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        pgImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgSecret,
				"POSTGRES_DB":       pgDB,
			},
			// postgres restarts once after initdb, so the line appears twice.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", pgImage, err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("container port: %w", err)
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		pgUser, pgSecret, net.JoinHostPort(host, port.Port()), pgDB), nil
}
