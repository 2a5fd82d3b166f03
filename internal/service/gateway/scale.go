package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

// SyncScale creates or updates a scale and returns its id.
func (s *Service) SyncScale(ctx context.Context, input ScalePayload) (int64, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	var out domain.Scale
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		action := domain.JournalActionCreate
		var scale domain.Scale
		if input.ID.present() {
			id := int64(*input.ID)
			cur, err := s.scales.GetByID(txCtx, id)
			if err != nil {
				return lookupErr(err, domain.EntityTypeScale, id)
			}
			scale = cur
			action = domain.JournalActionUpdate
		}
		input.apply(&scale)
		scale.TimeModified = s.unix()

		var err error
		if action == domain.JournalActionUpdate {
			out, err = s.scales.Update(txCtx, scale)
			if err != nil {
				return fmt.Errorf("update scale: %w", err)
			}
		} else {
			out, err = s.scales.Create(txCtx, scale)
			if err != nil {
				return fmt.Errorf("create scale: %w", err)
			}
		}

		return s.record(txCtx, domain.EntityTypeScale, out.ID, action, map[string]any{
			"name":  out.Name,
			"scale": out.Scale,
		})
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "scale synced", slog.Int64("scale_id", out.ID))
	return out.ID, nil
}

// DeleteScale removes a scale. A scale still used by grade items yields
// domain.ErrInUse. Deleting a missing scale succeeds.
func (s *Service) DeleteScale(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "out of range")
	}

	var deleted bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		scale, err := s.scales.GetByID(txCtx, id)
		if isNotFound(err) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get scale: %w", err)
		}

		n, err := s.items.CountByScale(txCtx, id)
		if err != nil {
			return fmt.Errorf("count scale usage: %w", err)
		}
		if n > 0 {
			return fmt.Errorf("scale %d graded by %d items: %w", id, n, domain.ErrInUse)
		}

		if err := s.scales.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete scale: %w", err)
		}
		deleted = true

		return s.record(txCtx, domain.EntityTypeScale, id, domain.JournalActionDelete, map[string]any{
			"name": scale.Name,
		})
	})
	if err != nil {
		return err
	}

	if deleted {
		s.log.InfoContext(ctx, "scale deleted", slog.Int64("scale_id", id))
	}
	return nil
}
