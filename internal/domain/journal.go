package domain

import (
	"time"

	"github.com/google/uuid"
)

// JournalRecord logs one mutation performed by a sync function.
type JournalRecord struct {
	ID         uuid.UUID      `db:"id"`
	Function   string         `db:"function"`
	EntityType EntityType     `db:"entity_type"`
	EntityID   int64          `db:"entity_id"`
	Action     JournalAction  `db:"action"`
	Changes    map[string]any `db:"changes"`
	CreatedAt  time.Time      `db:"created_at"`
}
