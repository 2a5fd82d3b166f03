// Package settings implements the key-value settings stores (global config
// and per-course grade settings) using PostgreSQL.
package settings

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/leeloo-sync/internal/adapter/postgres"
	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

const (
	getConfigSQL = `SELECT value FROM config WHERE name = $1`

	upsertConfigSQL = `INSERT INTO config (name, value) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value`

	listConfigSQL = `SELECT name, value FROM config WHERE name = ANY($1) ORDER BY name`

	upsertCourseSQL = `INSERT INTO grade_settings (courseid, name, value) VALUES ($1, $2, $3)
		ON CONFLICT (courseid, name) DO UPDATE SET value = EXCLUDED.value`

	listCourseSQL = `SELECT name, value FROM grade_settings WHERE courseid = $1 ORDER BY name`
)

// Repo provides settings persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetConfig returns the value of a global config key.
func (r *Repo) GetConfig(ctx context.Context, name string) (string, error) {
	var v string
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getConfigSQL, name).Scan(&v); err != nil {
		return "", postgres.MapError(err, "config", name)
	}
	return v, nil
}

// ListConfig returns the stored values of the given global keys.
func (r *Repo) ListConfig(ctx context.Context, names []string) ([]domain.Setting, error) {
	var out []domain.Setting
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, listConfigSQL, names); err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	return out, nil
}

// UpsertConfig writes each setting into the global config store.
func (r *Repo) UpsertConfig(ctx context.Context, settings []domain.Setting) error {
	batch := &pgx.Batch{}
	for _, s := range settings {
		batch.Queue(upsertConfigSQL, s.Name, s.Value)
	}
	return r.send(ctx, batch, settings, "config")
}

// ListCourse returns the grade settings stored for a course.
func (r *Repo) ListCourse(ctx context.Context, courseID int64) ([]domain.Setting, error) {
	var out []domain.Setting
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, listCourseSQL, courseID); err != nil {
		return nil, fmt.Errorf("list grade_settings of course %d: %w", courseID, err)
	}
	return out, nil
}

// UpsertCourse writes each setting into the grade settings of a course.
func (r *Repo) UpsertCourse(ctx context.Context, courseID int64, settings []domain.Setting) error {
	batch := &pgx.Batch{}
	for _, s := range settings {
		batch.Queue(upsertCourseSQL, courseID, s.Name, s.Value)
	}
	return r.send(ctx, batch, settings, "grade_settings")
}

func (r *Repo) send(ctx context.Context, batch *pgx.Batch, settings []domain.Setting, entity string) error {
	if batch.Len() == 0 {
		return nil
	}

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer br.Close()

	for _, s := range settings {
		if _, err := br.Exec(); err != nil {
			return postgres.MapError(err, entity, s.Name)
		}
	}
	return nil
}
