package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

// SyncCourse creates or updates a course and, optionally, its root grade
// category and a grade item. A shortname or idnumber already held by
// another course yields domain.ErrAlreadyExists and nothing is written.
func (s *Service) SyncCourse(ctx context.Context, input CourseSyncInput) (CourseSyncResult, error) {
	if err := input.Validate(); err != nil {
		return CourseSyncResult{}, err
	}

	var res CourseSyncResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		course, err := s.upsertCourse(txCtx, input.Course)
		if err != nil {
			return err
		}
		res.CourseID = course.ID

		switch {
		case input.Category != nil:
			cat := *input.Category
			if cat.Item == nil {
				cat.Item = input.Item
			}
			cr, err := s.syncCategory(txCtx, cat, course.ID)
			if err != nil {
				return err
			}
			res.CategoryID, res.ItemID = cr.CategoryID, cr.ItemID
		case input.Item != nil:
			itemID, err := s.syncItem(txCtx, *input.Item, course.ID)
			if err != nil {
				return err
			}
			res.ItemID = itemID
		}
		return nil
	})
	if err != nil {
		return CourseSyncResult{}, err
	}

	s.log.InfoContext(ctx, "course synced",
		slog.Int64("course_id", res.CourseID),
		slog.Int64("category_id", res.CategoryID),
		slog.Int64("item_id", res.ItemID),
	)
	return res, nil
}

func (s *Service) upsertCourse(ctx context.Context, in CoursePayload) (domain.Course, error) {
	now := s.unix()

	c := domain.Course{Format: "topics", Visible: 1, TimeCreated: now}
	action := domain.JournalActionCreate
	if in.ID.present() {
		id := int64(*in.ID)
		cur, err := s.courses.GetByID(ctx, id)
		if err != nil {
			return domain.Course{}, lookupErr(err, domain.EntityTypeCourse, id)
		}
		c = cur
		action = domain.JournalActionUpdate
	}
	if err := in.apply(&c); err != nil {
		return domain.Course{}, err
	}
	c.TimeModified = now

	short, idnum := c.BusinessKeys()
	if short != "" || idnum != "" {
		holders, err := s.courses.FindByKeys(ctx, short, idnum)
		if err != nil {
			return domain.Course{}, fmt.Errorf("find courses by keys: %w", err)
		}
		for _, h := range holders {
			if c.CollidesWith(h) {
				return domain.Course{}, fmt.Errorf("course %q/%q held by course %d: %w",
					short, idnum, h.ID, domain.ErrAlreadyExists)
			}
		}
	}

	var (
		out domain.Course
		err error
	)
	if c.ID == 0 {
		out, err = s.courses.Create(ctx, c)
	} else {
		out, err = s.courses.Update(ctx, c)
	}
	if err != nil {
		return domain.Course{}, fmt.Errorf("%s course: %w", action, err)
	}

	err = s.record(ctx, domain.EntityTypeCourse, out.ID, action, map[string]any{
		"fullname":  out.Fullname,
		"shortname": out.Shortname,
		"idnumber":  out.IDNumber,
		"visible":   out.Visible,
	})
	if err != nil {
		return domain.Course{}, err
	}
	return out, nil
}
