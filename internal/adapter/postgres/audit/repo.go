// Package audit implements the sync journal repository using PostgreSQL.
// It provides append-only operations for journal records.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/leeloo-sync/internal/adapter/postgres"
	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

const (
	createSQL = `INSERT INTO sync_journal (id, function, entity_type, entity_id, action, changes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, function, entity_type, entity_id, action, changes, created_at`

	byEntitySQL = `SELECT id, function, entity_type, entity_id, action, changes, created_at
		FROM sync_journal
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC
		LIMIT $3`

	pruneSQL = `DELETE FROM sync_journal WHERE created_at < $1`
)

// Repo provides journal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new journal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a journal record and returns the persisted row.
// A zero ID or CreatedAt is filled in.
func (r *Repo) Create(ctx context.Context, record domain.JournalRecord) (domain.JournalRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if record.Changes == nil {
		record.Changes = map[string]any{}
	}

	changesJSON, err := json.Marshal(record.Changes)
	if err != nil {
		return domain.JournalRecord{}, fmt.Errorf("sync_journal marshal changes: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		record.ID, record.Function, string(record.EntityType), record.EntityID,
		string(record.Action), changesJSON, record.CreatedAt,
	)
	out, err := scanRecord(row)
	if err != nil {
		return domain.JournalRecord{}, postgres.MapError(err, "sync_journal", record.ID)
	}
	return out, nil
}

// Log creates a journal record without returning it.
func (r *Repo) Log(ctx context.Context, record domain.JournalRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// Prune deletes records older than before and returns how many were removed.
func (r *Repo) Prune(ctx context.Context, before time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, pruneSQL, before)
	if err != nil {
		return 0, fmt.Errorf("prune sync_journal: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history of an entity, newest first.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.JournalRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, byEntitySQL, string(entityType), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("get sync_journal by entity: %w", err)
	}
	defer rows.Close()

	var records []domain.JournalRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get sync_journal by entity: %w", err)
	}
	return records, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (domain.JournalRecord, error) {
	var (
		rec        domain.JournalRecord
		entityType string
		action     string
		changes    []byte
	)
	if err := row.Scan(&rec.ID, &rec.Function, &entityType, &rec.EntityID, &action, &changes, &rec.CreatedAt); err != nil {
		return domain.JournalRecord{}, err
	}
	rec.EntityType = domain.EntityType(entityType)
	rec.Action = domain.JournalAction(action)

	// changes: JSONB -> map[string]any
	if len(changes) > 0 {
		m := make(map[string]any)
		if err := json.Unmarshal(changes, &m); err != nil {
			return domain.JournalRecord{}, fmt.Errorf("sync_journal %s unmarshal changes: %w", rec.ID, err)
		}
		rec.Changes = m
	}
	return rec, nil
}
