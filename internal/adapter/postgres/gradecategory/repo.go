// Package gradecategory implements the grade category repository using PostgreSQL.
package gradecategory

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/leeloo-sync/internal/adapter/postgres"
	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

const columns = `id, courseid, parent, depth, path, fullname, aggregation, keephigh, droplow,
	aggregateonlygraded, hidden, timecreated, timemodified`

const (
	getByIDSQL = `SELECT ` + columns + ` FROM grade_categories WHERE id = $1`

	listByCourseSQL = `SELECT ` + columns + ` FROM grade_categories WHERE courseid = $1 ORDER BY path, id`

	// Path and depth are filled by SetPlacement once the id is known.
	createSQL = `INSERT INTO grade_categories (courseid, parent, depth, path, fullname, aggregation,
		keephigh, droplow, aggregateonlygraded, hidden, timecreated, timemodified)
		VALUES ($1, $2, 1, '', $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + columns

	updateSQL = `UPDATE grade_categories SET fullname = $2, aggregation = $3, keephigh = $4, droplow = $5,
		aggregateonlygraded = $6, hidden = $7, timemodified = $8
		WHERE id = $1
		RETURNING ` + columns

	setPlacementSQL = `UPDATE grade_categories SET parent = $2, path = $3, depth = $4 WHERE id = $1`

	deleteSQL = `DELETE FROM grade_categories WHERE id = $1`
)

// Repo provides grade category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new grade category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns the category with the given id.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.GradeCategory, error) {
	var c domain.GradeCategory
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &c, getByIDSQL, id); err != nil {
		return domain.GradeCategory{}, postgres.MapError(err, "grade_category", id)
	}
	return c, nil
}

// ListByCourse returns every category of a course ordered by path.
func (r *Repo) ListByCourse(ctx context.Context, courseID int64) ([]domain.GradeCategory, error) {
	var out []domain.GradeCategory
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, listByCourseSQL, courseID); err != nil {
		return nil, fmt.Errorf("list grade_categories of course %d: %w", courseID, err)
	}
	return out, nil
}

// Create inserts a category row. The returned row has no path yet; callers
// must follow up with SetPlacement in the same transaction.
func (r *Repo) Create(ctx context.Context, c domain.GradeCategory) (domain.GradeCategory, error) {
	var out domain.GradeCategory
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, createSQL,
		c.CourseID, c.Parent, c.Fullname, c.Aggregation, c.KeepHigh, c.DropLow,
		c.AggregateOnlyGraded, c.Hidden, c.TimeCreated, c.TimeModified,
	)
	if err != nil {
		return domain.GradeCategory{}, postgres.MapError(err, "grade_category", c.Fullname)
	}
	return out, nil
}

// Update overwrites the descriptive fields of category c.ID. Placement
// (parent, path, depth) is changed only through SetPlacement and ApplyMoves.
func (r *Repo) Update(ctx context.Context, c domain.GradeCategory) (domain.GradeCategory, error) {
	var out domain.GradeCategory
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, updateSQL,
		c.ID, c.Fullname, c.Aggregation, c.KeepHigh, c.DropLow, c.AggregateOnlyGraded, c.Hidden, c.TimeModified,
	)
	if err != nil {
		return domain.GradeCategory{}, postgres.MapError(err, "grade_category", c.ID)
	}
	return out, nil
}

// SetPlacement writes parent, path and depth of a single category.
func (r *Repo) SetPlacement(ctx context.Context, m domain.CategoryMove) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, setPlacementSQL, m.ID, m.Parent, m.Path, m.Depth)
	if err != nil {
		return postgres.MapError(err, "grade_category", m.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("grade_category %d: %w", m.ID, domain.ErrNotFound)
	}
	return nil
}

// ApplyMoves writes a planned subtree rewrite in one batch.
func (r *Repo) ApplyMoves(ctx context.Context, moves []domain.CategoryMove) error {
	if len(moves) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, m := range moves {
		batch.Queue(setPlacementSQL, m.ID, m.Parent, m.Path, m.Depth)
	}

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer br.Close()

	for _, m := range moves {
		tag, err := br.Exec()
		if err != nil {
			return postgres.MapError(err, "grade_category", m.ID)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("grade_category %d: %w", m.ID, domain.ErrNotFound)
		}
	}
	return nil
}

// Delete removes a category row.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "grade_category", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("grade_category %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
