package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

// SyncItem creates or updates a grade item and returns its id. An item for a
// course that does not exist is skipped and reports 0.
func (s *Service) SyncItem(ctx context.Context, input ItemPayload) (int64, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	var id int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		id, err = s.syncItem(txCtx, input, 0)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "grade item synced", slog.Int64("item_id", id))
	return id, nil
}

func (s *Service) syncItem(ctx context.Context, in ItemPayload, courseID int64) (int64, error) {
	now := s.unix()

	var (
		item   domain.GradeItem
		action = domain.JournalActionCreate
	)
	if in.ID.present() {
		id := int64(*in.ID)
		cur, err := s.items.GetByID(ctx, id)
		if err != nil {
			return 0, lookupErr(err, domain.EntityTypeGradeItem, id)
		}
		item = cur
		in.applyGrading(&item)
		if !item.ItemType.OwnedByCategory() {
			if in.CategoryID != nil {
				item.CategoryID = optionalID(in.CategoryID)
			}
			if m := text(in.ItemModule); m != "" {
				item.ItemModule = m
			}
			if in.ItemInstance.present() {
				item.ItemInstance = optionalID(in.ItemInstance)
			}
		}
		setInt(&item.SortOrder, in.SortOrder)
		item.TimeModified = now
		action = domain.JournalActionUpdate
	} else {
		if courseID == 0 {
			courseID = int64(in.CourseID)
		}
		ok, err := s.courses.Exists(ctx, courseID)
		if err != nil {
			return 0, fmt.Errorf("check course: %w", err)
		}
		if !ok {
			s.log.WarnContext(ctx, "grade item skipped: course not found", slog.Int64("course_id", courseID))
			return 0, nil
		}
		item = in.toItem(courseID, now)
	}

	if err := item.CheckOwnership(); err != nil {
		return 0, err
	}
	if err := checkGradeRange(item); err != nil {
		return 0, err
	}
	skip, err := s.checkItemOwner(ctx, &item, action)
	if err != nil || skip {
		return 0, err
	}
	if err := s.checkIDNumber(ctx, item); err != nil {
		return 0, err
	}

	var out domain.GradeItem
	if action == domain.JournalActionCreate {
		out, err = s.items.Create(ctx, item)
	} else {
		out, err = s.items.Update(ctx, item)
	}
	if err != nil {
		return 0, fmt.Errorf("%s grade item: %w", action, err)
	}

	err = s.record(ctx, domain.EntityTypeGradeItem, out.ID, action, map[string]any{
		"itemname":   out.ItemName,
		"itemtype":   out.ItemType,
		"categoryid": out.CategoryID,
		"idnumber":   out.IDNumber,
	})
	if err != nil {
		return 0, err
	}
	return out.ID, nil
}

// checkItemOwner verifies the category an item is filed under. manual and mod
// items whose category is missing become course-level items; a new course or
// category item whose category is missing is skipped.
func (s *Service) checkItemOwner(ctx context.Context, item *domain.GradeItem, action domain.JournalAction) (skip bool, err error) {
	owner := item.OwnerCategory()
	if owner == 0 {
		return false, nil
	}

	cat, err := s.categories.GetByID(ctx, owner)
	if isNotFound(err) {
		if item.ItemType.OwnedByCategory() {
			if action == domain.JournalActionCreate {
				s.log.WarnContext(ctx, "grade item skipped: owning category not found", slog.Int64("category_id", owner))
				return true, nil
			}
			return false, nil
		}
		s.log.WarnContext(ctx, "grade item category not found, filing at course level", slog.Int64("category_id", owner))
		item.CategoryID = nil
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get grade category: %w", err)
	}
	if cat.CourseID != item.CourseID {
		return false, domain.NewValidationError("categoryid", "category belongs to another course")
	}

	if item.ItemType.OwnedByCategory() && action == domain.JournalActionCreate {
		_, err := s.items.GetCategoryItem(ctx, owner)
		if err == nil {
			return false, fmt.Errorf("category %d already has its grade item: %w", owner, domain.ErrAlreadyExists)
		}
		if !isNotFound(err) {
			return false, fmt.Errorf("get category item: %w", err)
		}
	}
	return false, nil
}

// checkIDNumber rejects a non-blank idnumber already used by another item of
// the same course.
func (s *Service) checkIDNumber(ctx context.Context, item domain.GradeItem) error {
	if !item.HasIDNumber() {
		return nil
	}
	holders, err := s.items.FindByIDNumber(ctx, item.CourseID, strings.TrimSpace(item.IDNumber))
	if err != nil {
		return fmt.Errorf("find grade items by idnumber: %w", err)
	}
	for _, h := range holders {
		if h.ID != item.ID {
			return fmt.Errorf("grade item idnumber %q held by item %d: %w", item.IDNumber, h.ID, domain.ErrAlreadyExists)
		}
	}
	return nil
}

// DeleteItem removes a manual or mod grade item. Course and category items
// go with their category. Deleting a missing item succeeds.
func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "out of range")
	}

	var deleted bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.items.GetByID(txCtx, id)
		if isNotFound(err) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get grade item: %w", err)
		}
		if item.ItemType.OwnedByCategory() {
			return domain.NewValidationError("id", "course and category items are removed with their category")
		}
		if err := s.items.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete grade item: %w", err)
		}
		deleted = true

		return s.record(txCtx, domain.EntityTypeGradeItem, id, domain.JournalActionDelete, map[string]any{
			"itemname": item.ItemName,
			"itemtype": item.ItemType,
		})
	})
	if err != nil {
		return err
	}

	if deleted {
		s.log.InfoContext(ctx, "grade item deleted", slog.Int64("item_id", id))
	}
	return nil
}

// DuplicateItem copies a manual grade item next to the original and returns
// the copy's id. A missing item yields domain.ErrUnknownID.
func (s *Service) DuplicateItem(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, domain.NewValidationError("id", "out of range")
	}

	var copyID int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		src, err := s.items.GetByID(txCtx, id)
		if err != nil {
			return lookupErr(err, domain.EntityTypeGradeItem, id)
		}
		if !src.Duplicable() {
			return domain.NewValidationError("id", "only manual items can be duplicated")
		}

		now := s.unix()
		c := src.Copy()
		c.TimeCreated, c.TimeModified = now, now
		out, err := s.items.Create(txCtx, c)
		if err != nil {
			return fmt.Errorf("create grade item copy: %w", err)
		}
		copyID = out.ID

		return s.record(txCtx, domain.EntityTypeGradeItem, out.ID, domain.JournalActionCreate, map[string]any{
			"source_id": src.ID,
			"itemname":  out.ItemName,
		})
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "grade item duplicated", slog.Int64("source_id", id), slog.Int64("item_id", copyID))
	return copyID, nil
}
