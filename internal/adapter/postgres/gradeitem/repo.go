// Package gradeitem implements the grade item repository using PostgreSQL.
package gradeitem

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/leeloo-sync/internal/adapter/postgres"
	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

const table = "grade_items"

var columns = []string{
	"id", "courseid", "categoryid", "itemname", "itemtype", "itemmodule", "iteminstance", "idnumber",
	"gradetype", "grademax", "grademin", "scaleid", "sortorder", "hidden", "locked", "timecreated", "timemodified",
}

// categoryOwned are the item types attached to a category via iteminstance.
var categoryOwned = []string{string(domain.ItemTypeCourse), string(domain.ItemTypeCategory)}

// Repo provides grade item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new grade item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) selectItems() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

func (r *Repo) get(ctx context.Context, q squirrel.SelectBuilder, id any) (domain.GradeItem, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return domain.GradeItem{}, fmt.Errorf("build grade_item query: %w", err)
	}
	var out domain.GradeItem
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return domain.GradeItem{}, postgres.MapError(err, "grade_item", id)
	}
	return out, nil
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder) ([]domain.GradeItem, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build grade_item query: %w", err)
	}
	var out []domain.GradeItem
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, fmt.Errorf("list grade_items: %w", err)
	}
	return out, nil
}

func (r *Repo) exec(ctx context.Context, q squirrel.Sqlizer, id any) (int64, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build grade_item statement: %w", err)
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "grade_item", id)
	}
	return tag.RowsAffected(), nil
}

func values(g domain.GradeItem) map[string]any {
	return map[string]any{
		"courseid":     g.CourseID,
		"categoryid":   g.CategoryID,
		"itemname":     g.ItemName,
		"itemtype":     string(g.ItemType),
		"itemmodule":   g.ItemModule,
		"iteminstance": g.ItemInstance,
		"idnumber":     g.IDNumber,
		"gradetype":    g.GradeType,
		"grademax":     g.GradeMax,
		"grademin":     g.GradeMin,
		"scaleid":      g.ScaleID,
		"sortorder":    g.SortOrder,
		"hidden":       g.Hidden,
		"locked":       g.Locked,
		"timemodified": g.TimeModified,
	}
}

// GetByID returns the grade item with the given id.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.GradeItem, error) {
	return r.get(ctx, r.selectItems().Where(squirrel.Eq{"id": id}), id)
}

// GetCategoryItem returns the course or category item owned by a category.
func (r *Repo) GetCategoryItem(ctx context.Context, categoryID int64) (domain.GradeItem, error) {
	q := r.selectItems().
		Where(squirrel.Eq{"iteminstance": categoryID, "itemtype": categoryOwned}).
		OrderBy("id").
		Limit(1)
	return r.get(ctx, q, categoryID)
}

// FindByIDNumber returns the items of a course holding idnumber.
func (r *Repo) FindByIDNumber(ctx context.Context, courseID int64, idnumber string) ([]domain.GradeItem, error) {
	return r.list(ctx, r.selectItems().
		Where(squirrel.Eq{"courseid": courseID, "idnumber": idnumber}).
		OrderBy("id"))
}

// ListByCategory returns the manual and mod items filed under a category.
func (r *Repo) ListByCategory(ctx context.Context, categoryID int64) ([]domain.GradeItem, error) {
	return r.list(ctx, r.selectItems().
		Where(squirrel.Eq{"categoryid": categoryID}).
		Where(squirrel.NotEq{"itemtype": categoryOwned}).
		OrderBy("sortorder", "id"))
}

// Create inserts a grade item and returns the stored row.
func (r *Repo) Create(ctx context.Context, g domain.GradeItem) (domain.GradeItem, error) {
	v := values(g)
	v["timecreated"] = g.TimeCreated

	sql, args, err := postgres.Builder().Insert(table).SetMap(v).
		Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return domain.GradeItem{}, fmt.Errorf("build grade_item insert: %w", err)
	}
	var out domain.GradeItem
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return domain.GradeItem{}, postgres.MapError(err, "grade_item", g.ItemName)
	}
	return out, nil
}

// Update overwrites item g.ID.
func (r *Repo) Update(ctx context.Context, g domain.GradeItem) (domain.GradeItem, error) {
	sql, args, err := postgres.Builder().Update(table).SetMap(values(g)).
		Where(squirrel.Eq{"id": g.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return domain.GradeItem{}, fmt.Errorf("build grade_item update: %w", err)
	}
	var out domain.GradeItem
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return domain.GradeItem{}, postgres.MapError(err, "grade_item", g.ID)
	}
	return out, nil
}

// MoveItems refiles every manual and mod item of category from into to.
// A nil to makes them course-level items.
func (r *Repo) MoveItems(ctx context.Context, from int64, to *int64, now int64) (int64, error) {
	q := postgres.Builder().Update(table).
		Set("categoryid", to).
		Set("timemodified", now).
		Where(squirrel.Eq{"categoryid": from}).
		Where(squirrel.NotEq{"itemtype": categoryOwned})
	return r.exec(ctx, q, from)
}

// DeleteCategoryItem removes the course or category item owned by a category.
func (r *Repo) DeleteCategoryItem(ctx context.Context, categoryID int64) (int64, error) {
	q := postgres.Builder().Delete(table).
		Where(squirrel.Eq{"iteminstance": categoryID, "itemtype": categoryOwned})
	return r.exec(ctx, q, categoryID)
}

// Delete removes a grade item.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	n, err := r.exec(ctx, postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}), id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("grade_item %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountByScale returns the number of items graded on a scale.
func (r *Repo) CountByScale(ctx context.Context, scaleID int64) (int, error) {
	sql, args, err := postgres.Builder().Select("count(*)").From(table).
		Where(squirrel.Eq{"scaleid": scaleID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build grade_item count: %w", err)
	}
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "scale", scaleID)
	}
	return n, nil
}
