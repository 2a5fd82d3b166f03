package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

// SyncTags makes the tag set of an item equal to the payload: tags are
// resolved by name or created, missing edges are added and stale ones
// removed. Tag-to-tag edges are kept in both directions. Non-standard tags
// left without any edge are deleted.
func (s *Service) SyncTags(ctx context.Context, input TagsSyncInput) ([]domain.TagLink, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	symmetric := domain.Symmetric(input.ItemType)
	links := make([]domain.TagLink, 0, len(input.Tags))
	var linked, unlinked, collected []int64

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if symmetric {
			if _, err := s.tags.GetByID(txCtx, input.ItemID); err != nil {
				if isNotFound(err) {
					s.log.WarnContext(ctx, "tags sync skipped: tagged tag not found", slog.Int64("tag_id", input.ItemID))
					return nil
				}
				return fmt.Errorf("get tagged tag: %w", err)
			}
		}

		now := s.unix()
		keep := make(map[int64]bool, len(input.Tags))
		for _, p := range input.Tags {
			tag, err := s.resolveTag(txCtx, p, now)
			if err != nil {
				return err
			}
			links = append(links, domain.TagLink{LeelooID: p.ID, MoodleID: tag.ID})
			if symmetric && tag.ID == input.ItemID {
				continue
			}
			if keep[tag.ID] {
				continue
			}
			keep[tag.ID] = true

			if _, err := s.tags.EnsureInstance(txCtx, tag.ID, input.ItemType, input.ItemID, now); err != nil {
				return fmt.Errorf("link tag %d: %w", tag.ID, err)
			}
			if symmetric {
				if _, err := s.tags.EnsureInstance(txCtx, input.ItemID, domain.TagItemType, tag.ID, now); err != nil {
					return fmt.Errorf("link tag %d back: %w", tag.ID, err)
				}
			}
			linked = append(linked, tag.ID)
		}

		edges, err := s.tags.ListInstances(txCtx, input.ItemType, input.ItemID)
		if err != nil {
			return fmt.Errorf("list tag instances: %w", err)
		}
		for _, e := range edges {
			if keep[e.TagID] {
				continue
			}
			if _, err := s.tags.DeleteInstance(txCtx, e.TagID, input.ItemType, input.ItemID); err != nil {
				return fmt.Errorf("unlink tag %d: %w", e.TagID, err)
			}
			if symmetric {
				if _, err := s.tags.DeleteInstance(txCtx, input.ItemID, domain.TagItemType, e.TagID); err != nil {
					return fmt.Errorf("unlink tag %d back: %w", e.TagID, err)
				}
			}
			unlinked = append(unlinked, e.TagID)
		}

		for _, id := range unlinked {
			if symmetric && id == input.ItemID {
				continue
			}
			ok, err := s.collectTag(txCtx, id)
			if err != nil {
				return err
			}
			if ok {
				collected = append(collected, id)
			}
		}

		if len(linked) == 0 && len(unlinked) == 0 {
			return nil
		}
		return s.record(txCtx, domain.EntityTypeTag, input.ItemID, domain.JournalActionLink, map[string]any{
			"itemtype":  input.ItemType,
			"linked":    linked,
			"unlinked":  unlinked,
			"collected": collected,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tags synced",
		slog.String("item_type", input.ItemType),
		slog.Int64("item_id", input.ItemID),
		slog.Int("linked", len(linked)),
		slog.Int("unlinked", len(unlinked)),
		slog.Int("collected", len(collected)),
	)
	return links, nil
}

// resolveTag finds a tag by its exact trimmed name or creates it without the
// caller's identity fields.
func (s *Service) resolveTag(ctx context.Context, p TagPayload, now int64) (domain.Tag, error) {
	name := domain.NormalizeTagName(p.Name)
	tag, err := s.tags.GetByName(ctx, name)
	if err == nil {
		return tag, nil
	}
	if !isNotFound(err) {
		return domain.Tag{}, fmt.Errorf("get tag %q: %w", name, err)
	}

	created, err := s.tags.Create(ctx, p.toTag().Stripped(now))
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Created by a concurrent sync; the insert did not abort the tx.
		tag, err = s.tags.GetByName(ctx, name)
		if err != nil {
			return domain.Tag{}, fmt.Errorf("get tag %q after conflict: %w", name, err)
		}
		return tag, nil
	}
	if err != nil {
		return domain.Tag{}, fmt.Errorf("create tag %q: %w", name, err)
	}
	return created, nil
}

// collectTag deletes a non-standard tag that no longer has any edge and
// reports whether it did.
func (s *Service) collectTag(ctx context.Context, id int64) (bool, error) {
	n, err := s.tags.CountInstances(ctx, id)
	if err != nil {
		return false, fmt.Errorf("count tag %d instances: %w", id, err)
	}
	if n > 0 {
		return false, nil
	}
	tag, err := s.tags.GetByID(ctx, id)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get tag %d: %w", id, err)
	}
	if tag.Standard() {
		return false, nil
	}
	if err := s.tags.Delete(ctx, id); err != nil && !isNotFound(err) {
		return false, fmt.Errorf("delete tag %d: %w", id, err)
	}
	return true, nil
}

// CombineTags merges the retracted tags into the surviving tag: their edges
// are re-pointed at the survivor and the retracted tags are deleted. An edge
// is not re-created when the survivor already has it in either direction.
func (s *Service) CombineTags(ctx context.Context, input CombineTagsInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	retracted := make([]int64, 0, len(input.RetractedIDs))
	for _, id := range input.RetractedIDs {
		if id != input.SurvivingID && !slices.Contains(retracted, id) {
			retracted = append(retracted, id)
		}
	}
	if len(retracted) == 0 {
		return nil
	}

	var deleted int64
	var relinked int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.tags.GetByID(txCtx, input.SurvivingID); err != nil {
			if isNotFound(err) {
				s.log.WarnContext(ctx, "tags combine skipped: surviving tag not found", slog.Int64("tag_id", input.SurvivingID))
				return nil
			}
			return fmt.Errorf("get surviving tag: %w", err)
		}

		edges, err := s.tags.ListInstancesByTags(txCtx, retracted)
		if err != nil {
			return fmt.Errorf("list retracted tag instances: %w", err)
		}
		if _, err := s.tags.DetachTags(txCtx, retracted); err != nil {
			return fmt.Errorf("detach retracted tags: %w", err)
		}
		deleted, err = s.tags.DeleteMany(txCtx, retracted)
		if err != nil {
			return fmt.Errorf("delete retracted tags: %w", err)
		}

		now := s.unix()
		type target struct {
			itemType string
			itemID   int64
		}
		seen := make(map[target]bool, len(edges))
		for _, e := range edges {
			symmetric := domain.Symmetric(e.ItemType)
			if symmetric && (e.ItemID == input.SurvivingID || slices.Contains(retracted, e.ItemID)) {
				continue
			}
			t := target{e.ItemType, e.ItemID}
			if seen[t] {
				continue
			}
			seen[t] = true

			exists, err := s.tags.InstanceExists(txCtx, input.SurvivingID, e.ItemType, e.ItemID)
			if err != nil {
				return fmt.Errorf("check survivor edge: %w", err)
			}
			if !exists && symmetric {
				exists, err = s.tags.InstanceExists(txCtx, e.ItemID, domain.TagItemType, input.SurvivingID)
				if err != nil {
					return fmt.Errorf("check survivor reverse edge: %w", err)
				}
			}
			if exists {
				continue
			}

			if _, err := s.tags.EnsureInstance(txCtx, input.SurvivingID, e.ItemType, e.ItemID, now); err != nil {
				return fmt.Errorf("relink %s %d: %w", e.ItemType, e.ItemID, err)
			}
			if symmetric {
				if _, err := s.tags.EnsureInstance(txCtx, e.ItemID, domain.TagItemType, input.SurvivingID, now); err != nil {
					return fmt.Errorf("relink tag %d back: %w", e.ItemID, err)
				}
			}
			relinked++
		}

		return s.record(txCtx, domain.EntityTypeTag, input.SurvivingID, domain.JournalActionMerge, map[string]any{
			"retracted": retracted,
			"deleted":   deleted,
			"relinked":  relinked,
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "tags combined",
		slog.Int64("surviving_id", input.SurvivingID),
		slog.Int64("deleted", deleted),
		slog.Int("relinked", relinked),
	)
	return nil
}

// DeleteTag removes a tag and every edge touching it. Deleting a missing tag
// succeeds.
func (s *Service) DeleteTag(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "out of range")
	}

	var deleted bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		tag, err := s.tags.GetByID(txCtx, id)
		if isNotFound(err) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get tag: %w", err)
		}
		edges, err := s.tags.DetachTags(txCtx, []int64{id})
		if err != nil {
			return fmt.Errorf("detach tag: %w", err)
		}
		if err := s.tags.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete tag: %w", err)
		}
		deleted = true

		return s.record(txCtx, domain.EntityTypeTag, id, domain.JournalActionDelete, map[string]any{
			"name":  tag.Name,
			"edges": edges,
		})
	})
	if err != nil {
		return err
	}

	if deleted {
		s.log.InfoContext(ctx, "tag deleted", slog.Int64("tag_id", id))
	}
	return nil
}
