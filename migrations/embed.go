// Package migrations embeds the goose SQL migrations so the binary and the
// test helpers apply the same schema.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Provider is a goose provider over the embedded migrations together with
// the database/sql handle it runs on. Close releases the handle.
type Provider struct {
	*goose.Provider
	db *sql.DB
}

// Open connects to dsn and prepares the migration provider.
func Open(ctx context.Context, dsn string) (*Provider, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	p, err := goose.NewProvider(goose.DialectPostgres, db, FS)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	return &Provider{Provider: p, db: db}, nil
}

// Close closes the database handle.
func (p *Provider) Close() error { return p.db.Close() }
