package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

// SyncCategory creates or updates a grade category with its category item.
// A payload for a course that does not exist is skipped and reports 0,0.
func (s *Service) SyncCategory(ctx context.Context, input CategoryPayload) (CategorySyncResult, error) {
	if err := input.Validate(); err != nil {
		return CategorySyncResult{}, err
	}

	var res CategorySyncResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		res, err = s.syncCategory(txCtx, input, 0)
		return err
	})
	if err != nil {
		return CategorySyncResult{}, err
	}

	s.log.InfoContext(ctx, "grade category synced",
		slog.Int64("category_id", res.CategoryID),
		slog.Int64("item_id", res.ItemID),
	)
	return res, nil
}

// syncCategory runs inside a transaction. A non-zero courseID overrides the
// payload's courseid.
func (s *Service) syncCategory(ctx context.Context, in CategoryPayload, courseID int64) (CategorySyncResult, error) {
	if in.ID.present() {
		return s.updateCategory(ctx, in)
	}

	if courseID == 0 {
		courseID = int64(in.CourseID)
	}
	ok, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		return CategorySyncResult{}, fmt.Errorf("check course: %w", err)
	}
	if !ok {
		s.log.WarnContext(ctx, "grade category skipped: course not found", slog.Int64("course_id", courseID))
		return CategorySyncResult{}, nil
	}
	return s.createCategory(ctx, in, courseID)
}

func (s *Service) createCategory(ctx context.Context, in CategoryPayload, courseID int64) (CategorySyncResult, error) {
	now := s.unix()

	parent, err := s.resolveParent(ctx, courseID, in.Parent.Int64())
	if err != nil {
		return CategorySyncResult{}, err
	}

	cat := in.toCategory(courseID, now)
	if parent != nil {
		cat.Parent = parent.ID
	}
	created, err := s.categories.Create(ctx, cat)
	if err != nil {
		return CategorySyncResult{}, fmt.Errorf("create grade category: %w", err)
	}

	created.Path, created.Depth = domain.Placement(created.ID, parent)
	err = s.categories.SetPlacement(ctx, domain.CategoryMove{
		ID:     created.ID,
		Parent: created.Parent,
		Path:   created.Path,
		Depth:  created.Depth,
	})
	if err != nil {
		return CategorySyncResult{}, fmt.Errorf("place grade category: %w", err)
	}

	err = s.record(ctx, domain.EntityTypeGradeCategory, created.ID, domain.JournalActionCreate, map[string]any{
		"fullname": created.Fullname,
		"parent":   created.Parent,
		"path":     created.Path,
	})
	if err != nil {
		return CategorySyncResult{}, err
	}

	itemID, err := s.ensureCategoryItem(ctx, created, in.Item)
	if err != nil {
		return CategorySyncResult{}, err
	}
	return CategorySyncResult{CategoryID: created.ID, ItemID: itemID}, nil
}

// resolveParent loads the requested parent. A missing parent places the
// category at the root.
func (s *Service) resolveParent(ctx context.Context, courseID, parentID int64) (*domain.GradeCategory, error) {
	if parentID == 0 {
		return nil, nil
	}
	p, err := s.categories.GetByID(ctx, parentID)
	if isNotFound(err) {
		s.log.WarnContext(ctx, "grade category parent not found, placing at root",
			slog.Int64("parent_id", parentID))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get parent category: %w", err)
	}
	if p.CourseID != courseID {
		return nil, domain.NewValidationError("parent", "parent belongs to another course")
	}
	return &p, nil
}

func (s *Service) updateCategory(ctx context.Context, in CategoryPayload) (CategorySyncResult, error) {
	id := int64(*in.ID)
	cur, err := s.categories.GetByID(ctx, id)
	if isNotFound(err) {
		s.log.WarnContext(ctx, "grade category update skipped: not found", slog.Int64("category_id", id))
		return CategorySyncResult{}, nil
	}
	if err != nil {
		return CategorySyncResult{}, fmt.Errorf("get grade category: %w", err)
	}

	upd := cur
	in.apply(&upd, s.unix())
	updated, err := s.categories.Update(ctx, upd)
	if err != nil {
		return CategorySyncResult{}, fmt.Errorf("update grade category: %w", err)
	}

	newParent := cur.Parent
	if in.Parent != nil {
		newParent = int64(*in.Parent)
	}
	placed, moved, err := s.placeCategory(ctx, updated, newParent)
	if err != nil {
		return CategorySyncResult{}, err
	}

	err = s.record(ctx, domain.EntityTypeGradeCategory, id, domain.JournalActionUpdate, map[string]any{
		"fullname": map[string]any{"old": cur.Fullname, "new": placed.Fullname},
		"parent":   map[string]any{"old": cur.Parent, "new": placed.Parent},
		"path":     map[string]any{"old": cur.Path, "new": placed.Path},
		"moved":    moved,
	})
	if err != nil {
		return CategorySyncResult{}, err
	}

	itemID, err := s.ensureCategoryItem(ctx, placed, in.Item)
	if err != nil {
		return CategorySyncResult{}, err
	}
	return CategorySyncResult{CategoryID: id, ItemID: itemID}, nil
}

// placeCategory moves cat under newParent when the parent changed or its
// stored path is stale, rewriting the subtree. It returns the category as
// placed and the number of rows rewritten.
func (s *Service) placeCategory(ctx context.Context, cat domain.GradeCategory, newParent int64) (domain.GradeCategory, int, error) {
	cats, err := s.categories.ListByCourse(ctx, cat.CourseID)
	if err != nil {
		return cat, 0, fmt.Errorf("list grade categories: %w", err)
	}
	tree := domain.NewCategoryTree(cats)

	if newParent != 0 {
		if _, ok := tree.Get(newParent); !ok {
			if _, err := s.categories.GetByID(ctx, newParent); err == nil {
				return cat, 0, domain.NewValidationError("parent", "parent belongs to another course")
			} else if !isNotFound(err) {
				return cat, 0, fmt.Errorf("get parent category: %w", err)
			}
			s.log.WarnContext(ctx, "grade category parent not found, keeping placement",
				slog.Int64("category_id", cat.ID),
				slog.Int64("parent_id", newParent))
			newParent = cat.Parent
			if _, ok := tree.Get(newParent); !ok {
				newParent = 0
			}
		}
	}

	if newParent == cat.Parent {
		var parent *domain.GradeCategory
		if p, ok := tree.Get(cat.Parent); ok {
			parent = &p
		}
		if cat.Parent == 0 || parent != nil {
			if domain.CheckPath(cat, parent) == nil {
				return cat, 0, nil
			}
		} else {
			newParent = 0
		}
	}

	moves, err := tree.PlanMove(cat.ID, newParent)
	if err != nil {
		return cat, 0, err
	}
	if err := s.categories.ApplyMoves(ctx, moves); err != nil {
		return cat, 0, fmt.Errorf("move grade category: %w", err)
	}

	if err := s.retypeCategoryItems(ctx, cat, moves); err != nil {
		return cat, 0, err
	}

	cat.Parent, cat.Path, cat.Depth = moves[0].Parent, moves[0].Path, moves[0].Depth
	return cat, len(moves), nil
}

// retypeCategoryItems keeps the course/category item type of moved categories
// in line with their root status. self is handled by ensureCategoryItem.
func (s *Service) retypeCategoryItems(ctx context.Context, self domain.GradeCategory, moves []domain.CategoryMove) error {
	for _, m := range moves {
		if m.ID == self.ID || m.Parent != 0 {
			continue
		}
		c := domain.GradeCategory{ID: m.ID, CourseID: self.CourseID, Parent: m.Parent}
		if _, err := s.ensureCategoryItem(ctx, c, nil); err != nil {
			return err
		}
	}
	return nil
}

// ensureCategoryItem creates the course/category item of cat when missing,
// fixes its type and applies the optional grading override.
func (s *Service) ensureCategoryItem(ctx context.Context, cat domain.GradeCategory, override *ItemPayload) (int64, error) {
	now := s.unix()
	want := domain.CategoryItem(cat, now)

	item, err := s.items.GetCategoryItem(ctx, cat.ID)
	if isNotFound(err) {
		if override != nil {
			override.applyGrading(&want)
			if err := checkGradeRange(want); err != nil {
				return 0, err
			}
		}
		if err := s.checkIDNumber(ctx, want); err != nil {
			return 0, err
		}
		created, err := s.items.Create(ctx, want)
		if err != nil {
			return 0, fmt.Errorf("create category item: %w", err)
		}
		err = s.record(ctx, domain.EntityTypeGradeItem, created.ID, domain.JournalActionCreate, map[string]any{
			"itemtype":     created.ItemType,
			"iteminstance": cat.ID,
		})
		if err != nil {
			return 0, err
		}
		return created.ID, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get category item: %w", err)
	}

	if item.ItemType == want.ItemType && override == nil {
		return item.ID, nil
	}
	oldType := item.ItemType
	item.ItemType = want.ItemType
	if override != nil {
		override.applyGrading(&item)
		if err := checkGradeRange(item); err != nil {
			return 0, err
		}
	}
	item.TimeModified = now
	if err := s.checkIDNumber(ctx, item); err != nil {
		return 0, err
	}
	updated, err := s.items.Update(ctx, item)
	if err != nil {
		return 0, fmt.Errorf("update category item: %w", err)
	}
	err = s.record(ctx, domain.EntityTypeGradeItem, updated.ID, domain.JournalActionUpdate, map[string]any{
		"itemtype": map[string]any{"old": oldType, "new": updated.ItemType},
	})
	if err != nil {
		return 0, err
	}
	return updated.ID, nil
}

// DeleteCategory removes a category. Its child categories and items move up
// to the former parent; items of a deleted root become course-level items.
// Deleting a missing category succeeds.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "out of range")
	}

	var deleted bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cat, err := s.categories.GetByID(txCtx, id)
		if isNotFound(err) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get grade category: %w", err)
		}

		cats, err := s.categories.ListByCourse(txCtx, cat.CourseID)
		if err != nil {
			return fmt.Errorf("list grade categories: %w", err)
		}
		moves, err := domain.NewCategoryTree(cats).PlanRemoval(id)
		if err != nil {
			return err
		}
		if err := s.categories.ApplyMoves(txCtx, moves); err != nil {
			return fmt.Errorf("lift child categories: %w", err)
		}
		if err := s.retypeCategoryItems(txCtx, cat, moves); err != nil {
			return err
		}

		var to *int64
		if !cat.IsRoot() {
			parent := cat.Parent
			to = &parent
		}
		movedItems, err := s.items.MoveItems(txCtx, id, to, s.unix())
		if err != nil {
			return fmt.Errorf("move category items: %w", err)
		}
		if _, err := s.items.DeleteCategoryItem(txCtx, id); err != nil {
			return fmt.Errorf("delete category item: %w", err)
		}
		if err := s.categories.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete grade category: %w", err)
		}
		deleted = true

		return s.record(txCtx, domain.EntityTypeGradeCategory, id, domain.JournalActionDelete, map[string]any{
			"fullname":    cat.Fullname,
			"path":        cat.Path,
			"moved":       len(moves),
			"items_moved": movedItems,
		})
	})
	if err != nil {
		return err
	}

	if deleted {
		s.log.InfoContext(ctx, "grade category deleted", slog.Int64("category_id", id))
	}
	return nil
}

// DuplicateCategory copies a category, its category item and its manual
// items under the same parent. A missing source yields domain.ErrUnknownID;
// the course (root) category is not duplicable since a course has one.
func (s *Service) DuplicateCategory(ctx context.Context, id int64) (CategorySyncResult, error) {
	if id <= 0 {
		return CategorySyncResult{}, domain.NewValidationError("id", "out of range")
	}

	var res CategorySyncResult
	var copied int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		src, err := s.categories.GetByID(txCtx, id)
		if err != nil {
			return lookupErr(err, domain.EntityTypeGradeCategory, id)
		}
		if src.IsRoot() {
			return domain.NewValidationError("id", "the course category cannot be duplicated")
		}
		now := s.unix()

		parent, err := s.resolveParent(txCtx, src.CourseID, src.Parent)
		if err != nil {
			return err
		}
		if parent == nil {
			return fmt.Errorf("parent of grade category %d: %w", id, domain.ErrNotFound)
		}

		cp := src
		cp.ID = 0
		cp.Parent = parent.ID
		cp.Fullname = src.Fullname + domain.CopySuffix
		cp.TimeCreated, cp.TimeModified = now, now

		created, err := s.categories.Create(txCtx, cp)
		if err != nil {
			return fmt.Errorf("create grade category copy: %w", err)
		}
		created.Path, created.Depth = domain.Placement(created.ID, parent)
		err = s.categories.SetPlacement(txCtx, domain.CategoryMove{
			ID: created.ID, Parent: created.Parent, Path: created.Path, Depth: created.Depth,
		})
		if err != nil {
			return fmt.Errorf("place grade category copy: %w", err)
		}

		item := domain.CategoryItem(created, now)
		srcItem, err := s.items.GetCategoryItem(txCtx, src.ID)
		switch {
		case err == nil:
			item.GradeType, item.GradeMax, item.GradeMin = srcItem.GradeType, srcItem.GradeMax, srcItem.GradeMin
			item.ScaleID, item.Hidden, item.Locked = srcItem.ScaleID, srcItem.Hidden, srcItem.Locked
			if srcItem.ItemName != "" {
				item.ItemName = srcItem.ItemName + domain.CopySuffix
			}
		case !isNotFound(err):
			return fmt.Errorf("get category item: %w", err)
		}
		item, err = s.items.Create(txCtx, item)
		if err != nil {
			return fmt.Errorf("create category item copy: %w", err)
		}

		children, err := s.items.ListByCategory(txCtx, src.ID)
		if err != nil {
			return fmt.Errorf("list category items: %w", err)
		}
		for _, it := range children {
			if !it.Duplicable() {
				continue
			}
			c := it.Copy()
			c.ItemName = it.ItemName
			c.CategoryID = &created.ID
			c.TimeCreated, c.TimeModified = now, now
			if _, err := s.items.Create(txCtx, c); err != nil {
				return fmt.Errorf("copy grade item %d: %w", it.ID, err)
			}
			copied++
		}

		res = CategorySyncResult{CategoryID: created.ID, ItemID: item.ID}
		return s.record(txCtx, domain.EntityTypeGradeCategory, created.ID, domain.JournalActionCreate, map[string]any{
			"source_id":    src.ID,
			"fullname":     created.Fullname,
			"path":         created.Path,
			"items_copied": copied,
		})
	})
	if err != nil {
		return CategorySyncResult{}, err
	}

	s.log.InfoContext(ctx, "grade category duplicated",
		slog.Int64("source_id", id),
		slog.Int64("category_id", res.CategoryID),
		slog.Int("items_copied", copied),
	)
	return res, nil
}
