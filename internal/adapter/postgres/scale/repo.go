// Package scale implements the scale repository using PostgreSQL.
package scale

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/leeloo-sync/internal/adapter/postgres"
	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

const columns = `id, courseid, userid, name, scale, description, timemodified`

const (
	getByIDSQL = `SELECT ` + columns + ` FROM scale WHERE id = $1`

	createSQL = `INSERT INTO scale (courseid, userid, name, scale, description, timemodified)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + columns

	updateSQL = `UPDATE scale SET courseid = $2, userid = $3, name = $4, scale = $5, description = $6,
		timemodified = $7
		WHERE id = $1
		RETURNING ` + columns

	deleteSQL = `DELETE FROM scale WHERE id = $1`
)

// Repo provides scale persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new scale repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns the scale with the given id.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Scale, error) {
	var s domain.Scale
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, getByIDSQL, id); err != nil {
		return domain.Scale{}, postgres.MapError(err, "scale", id)
	}
	return s, nil
}

// Create inserts a scale.
func (r *Repo) Create(ctx context.Context, s domain.Scale) (domain.Scale, error) {
	var out domain.Scale
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, createSQL,
		s.CourseID, s.UserID, s.Name, s.Scale, s.Description, s.TimeModified,
	)
	if err != nil {
		return domain.Scale{}, postgres.MapError(err, "scale", s.Name)
	}
	return out, nil
}

// Update overwrites scale s.ID.
func (r *Repo) Update(ctx context.Context, s domain.Scale) (domain.Scale, error) {
	var out domain.Scale
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, updateSQL,
		s.ID, s.CourseID, s.UserID, s.Name, s.Scale, s.Description, s.TimeModified,
	)
	if err != nil {
		return domain.Scale{}, postgres.MapError(err, "scale", s.ID)
	}
	return out, nil
}

// Delete removes a scale.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "scale", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("scale %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
