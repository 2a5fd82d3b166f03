package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

// SyncActivityWindow writes the open/close dates of an activity. Modules
// without a known window and missing activities are skipped; the result
// reports whether a row was written.
func (s *Service) SyncActivityWindow(ctx context.Context, input ActivityWindowInput) (bool, error) {
	cols, ok := domain.ActivityWindow(input.ModuleType)
	if !ok {
		s.log.DebugContext(ctx, "activity window skipped: module has no window",
			slog.String("module", input.ModuleType))
		return false, nil
	}
	if err := input.Validate(); err != nil {
		return false, err
	}

	start, err := domain.ParseTimestamp(input.Start)
	if err != nil {
		return false, domain.NewValidationError("start", "unrecognized date")
	}
	end, err := domain.ParseTimestamp(input.End)
	if err != nil {
		return false, domain.NewValidationError("end", "unrecognized date")
	}

	upd := domain.ActivityWindowUpdate{
		Columns:    cols,
		InstanceID: input.ActivityID,
		Start:      start,
		End:        end,
	}

	var written bool
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		written, err = s.activities.SetWindow(txCtx, upd)
		if err != nil {
			return fmt.Errorf("set activity window: %w", err)
		}
		if !written {
			return nil
		}
		return s.record(txCtx, domain.EntityTypeActivity, input.ActivityID, domain.JournalActionUpdate, map[string]any{
			"module": cols.Table,
			"start":  start,
			"end":    end,
		})
	})
	if err != nil {
		return false, err
	}

	if !written {
		s.log.WarnContext(ctx, "activity window skipped: activity not found",
			slog.String("module", cols.Table),
			slog.Int64("activity_id", input.ActivityID))
		return false, nil
	}
	s.log.InfoContext(ctx, "activity window synced",
		slog.String("module", cols.Table),
		slog.Int64("activity_id", input.ActivityID))
	return true, nil
}
