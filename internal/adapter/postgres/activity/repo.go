// Package activity writes open/close windows of activity module tables.
package activity

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/leeloo-sync/internal/adapter/postgres"
	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

// Repo updates activity windows backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// SetWindow writes the start/end columns of one activity instance and
// reports whether the row exists. Table and column names come from the
// fixed domain table; only values are bound as parameters.
func (r *Repo) SetWindow(ctx context.Context, u domain.ActivityWindowUpdate) (bool, error) {
	if u.Columns.Table == "" || u.Columns.Start == "" {
		return false, fmt.Errorf("activity window: %w", domain.ErrValidation)
	}

	sql, args, err := postgres.Builder().
		Update(u.Columns.Table).
		SetMap(u.Values()).
		Where(squirrel.Eq{"id": u.InstanceID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build %s window update: %w", u.Columns.Table, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, u.Columns.Table, u.InstanceID)
	}
	return tag.RowsAffected() > 0, nil
}
