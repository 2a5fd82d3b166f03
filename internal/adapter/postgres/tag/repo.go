// Package tag implements the tag and tag instance repository using PostgreSQL.
package tag

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/leeloo-sync/internal/adapter/postgres"
	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

const tagColumns = `id, userid, name, rawname, isstandard, description, timecreated, timemodified`

const instanceColumns = `id, tagid, itemtype, itemid, timecreated`

const (
	getByIDSQL   = `SELECT ` + tagColumns + ` FROM tag WHERE id = $1`
	getByNameSQL = `SELECT ` + tagColumns + ` FROM tag WHERE name = $1`

	createSQL = `INSERT INTO tag (userid, name, rawname, isstandard, description, timecreated, timemodified)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (name) DO NOTHING
		RETURNING ` + tagColumns

	deleteSQL = `DELETE FROM tag WHERE id = $1`

	listInstancesSQL = `SELECT ` + instanceColumns + ` FROM tag_instance
		WHERE itemtype = $1 AND itemid = $2 ORDER BY tagid`

	ensureInstanceSQL = `INSERT INTO tag_instance (tagid, itemtype, itemid, timecreated)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (tagid, itemtype, itemid) DO NOTHING`

	deleteInstanceSQL = `DELETE FROM tag_instance WHERE tagid = $1 AND itemtype = $2 AND itemid = $3`

	// Tag-to-tag links reference a tag from both columns.
	countInstancesSQL = `SELECT count(*) FROM tag_instance
		WHERE tagid = $1 OR (itemtype = 'tag' AND itemid = $1)`

	instanceExistsSQL = `SELECT EXISTS(
		SELECT 1 FROM tag_instance WHERE tagid = $1 AND itemtype = $2 AND itemid = $3)`
)

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tag repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Tags
// ---------------------------------------------------------------------------

// GetByID returns the tag with the given id.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Tag, error) {
	var t domain.Tag
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &t, getByIDSQL, id); err != nil {
		return domain.Tag{}, postgres.MapError(err, "tag", id)
	}
	return t, nil
}

// GetByName returns the tag whose name matches exactly.
func (r *Repo) GetByName(ctx context.Context, name string) (domain.Tag, error) {
	var t domain.Tag
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &t, getByNameSQL, name); err != nil {
		return domain.Tag{}, postgres.MapError(err, "tag", name)
	}
	return t, nil
}

// Create inserts a tag. A name collision yields domain.ErrAlreadyExists and
// leaves an enclosing transaction usable, so the caller can read the holder.
func (r *Repo) Create(ctx context.Context, t domain.Tag) (domain.Tag, error) {
	var out domain.Tag
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, createSQL,
		t.UserID, t.Name, t.RawName, t.IsStandard, t.Description, t.TimeCreated, t.TimeModified,
	)
	if pgxscan.NotFound(err) {
		return domain.Tag{}, fmt.Errorf("tag %v: %w", t.Name, domain.ErrAlreadyExists)
	}
	if err != nil {
		return domain.Tag{}, postgres.MapError(err, "tag", t.Name)
	}
	return out, nil
}

// Delete removes a tag; its edges go with it.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "tag", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tag %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteMany removes the given tags and returns how many existed.
func (r *Repo) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	sql, args, err := postgres.Builder().Delete("tag").Where(squirrel.Eq{"id": ids}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build tag delete: %w", err)
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "tag", ids)
	}
	return tag.RowsAffected(), nil
}

// DetachTags removes the tag-to-tag edges pointing at the given tags. Edges
// leaving them are removed by the foreign key cascade on delete.
func (r *Repo) DetachTags(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	sql, args, err := postgres.Builder().Delete("tag_instance").
		Where(squirrel.Eq{"itemtype": domain.TagItemType, "itemid": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build tag_instance detach: %w", err)
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "tag_instance", ids)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Instances
// ---------------------------------------------------------------------------

// ListInstances returns the edges of an item.
func (r *Repo) ListInstances(ctx context.Context, itemType string, itemID int64) ([]domain.TagInstance, error) {
	var out []domain.TagInstance
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, listInstancesSQL, itemType, itemID); err != nil {
		return nil, fmt.Errorf("list tag_instances of %s %d: %w", itemType, itemID, err)
	}
	return out, nil
}

// ListInstancesByTags returns every edge leaving one of the given tags.
func (r *Repo) ListInstancesByTags(ctx context.Context, tagIDs []int64) ([]domain.TagInstance, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}
	sql, args, err := postgres.Builder().
		Select("id", "tagid", "itemtype", "itemid", "timecreated").
		From("tag_instance").
		Where(squirrel.Eq{"tagid": tagIDs}).
		OrderBy("tagid", "itemtype", "itemid").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tag_instance query: %w", err)
	}
	var out []domain.TagInstance
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, fmt.Errorf("list tag_instances by tags: %w", err)
	}
	return out, nil
}

// EnsureInstance creates the edge unless it already exists and reports
// whether a row was inserted.
func (r *Repo) EnsureInstance(ctx context.Context, tagID int64, itemType string, itemID, now int64) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, ensureInstanceSQL, tagID, itemType, itemID, now)
	if err != nil {
		return false, postgres.MapError(err, "tag_instance", tagID)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteInstance removes an edge and reports whether it existed.
func (r *Repo) DeleteInstance(ctx context.Context, tagID int64, itemType string, itemID int64) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteInstanceSQL, tagID, itemType, itemID)
	if err != nil {
		return false, postgres.MapError(err, "tag_instance", tagID)
	}
	return tag.RowsAffected() > 0, nil
}

// InstanceExists reports whether the edge exists.
func (r *Repo) InstanceExists(ctx context.Context, tagID int64, itemType string, itemID int64) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, instanceExistsSQL, tagID, itemType, itemID).Scan(&ok); err != nil {
		return false, postgres.MapError(err, "tag_instance", tagID)
	}
	return ok, nil
}

// CountInstances returns the number of edges referencing a tag from either side.
func (r *Repo) CountInstances(ctx context.Context, tagID int64) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countInstancesSQL, tagID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "tag_instance", tagID)
	}
	return n, nil
}
