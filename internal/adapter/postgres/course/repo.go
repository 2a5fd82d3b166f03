// Package course implements the course repository using PostgreSQL.
package course

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/leeloo-sync/internal/adapter/postgres"
	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

const columns = `id, category, fullname, shortname, idnumber, summary, format, visible,
	startdate, enddate, timecreated, timemodified`

const (
	getByIDSQL = `SELECT ` + columns + ` FROM course WHERE id = $1`

	// Blank keys are passed as '' and never match because the predicate
	// requires a non-blank argument.
	findByKeysSQL = `SELECT ` + columns + ` FROM course
		WHERE ($1 <> '' AND shortname = $1) OR ($2 <> '' AND idnumber = $2)
		ORDER BY id`

	createSQL = `INSERT INTO course (category, fullname, shortname, idnumber, summary, format, visible,
		startdate, enddate, timecreated, timemodified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + columns

	updateSQL = `UPDATE course SET category = $2, fullname = $3, shortname = $4, idnumber = $5,
		summary = $6, format = $7, visible = $8, startdate = $9, enddate = $10, timemodified = $11
		WHERE id = $1
		RETURNING ` + columns

	existsSQL = `SELECT EXISTS(SELECT 1 FROM course WHERE id = $1)`
)

// Repo provides course persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new course repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns the course with the given id.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Course, error) {
	var c domain.Course
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &c, getByIDSQL, id); err != nil {
		return domain.Course{}, postgres.MapError(err, "course", id)
	}
	return c, nil
}

// FindByKeys returns every course holding the non-blank shortname or idnumber.
func (r *Repo) FindByKeys(ctx context.Context, shortname, idnumber string) ([]domain.Course, error) {
	var out []domain.Course
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, findByKeysSQL, shortname, idnumber); err != nil {
		return nil, fmt.Errorf("find courses by keys: %w", err)
	}
	return out, nil
}

// Create inserts a course and returns the stored row.
func (r *Repo) Create(ctx context.Context, c domain.Course) (domain.Course, error) {
	var out domain.Course
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, createSQL,
		c.Category, c.Fullname, c.Shortname, c.IDNumber, c.Summary, c.Format, c.Visible,
		c.StartDate, c.EndDate, c.TimeCreated, c.TimeModified,
	)
	if err != nil {
		return domain.Course{}, postgres.MapError(err, "course", c.Shortname)
	}
	return out, nil
}

// Update overwrites the editable fields of course c.ID.
func (r *Repo) Update(ctx context.Context, c domain.Course) (domain.Course, error) {
	var out domain.Course
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, updateSQL,
		c.ID, c.Category, c.Fullname, c.Shortname, c.IDNumber, c.Summary, c.Format, c.Visible,
		c.StartDate, c.EndDate, c.TimeModified,
	)
	if err != nil {
		return domain.Course{}, postgres.MapError(err, "course", c.ID)
	}
	return out, nil
}

// Exists reports whether a course with the given id exists.
func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, existsSQL, id).Scan(&ok); err != nil {
		return false, postgres.MapError(err, "course", id)
	}
	return ok, nil
}
