package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// GradeCategory mirrors a row of grade_categories.
type GradeCategory struct {
	ID                  int64  `db:"id"`
	CourseID            int64  `db:"courseid"`
	Parent              int64  `db:"parent"`
	Depth               int    `db:"depth"`
	Path                string `db:"path"`
	Fullname            string `db:"fullname"`
	Aggregation         int    `db:"aggregation"`
	KeepHigh            int    `db:"keephigh"`
	DropLow             int    `db:"droplow"`
	AggregateOnlyGraded int16  `db:"aggregateonlygraded"`
	Hidden              int16  `db:"hidden"`
	TimeCreated         int64  `db:"timecreated"`
	TimeModified        int64  `db:"timemodified"`
}

// IsRoot reports whether the category sits at the top of its course tree.
func (c GradeCategory) IsRoot() bool { return c.Parent == 0 }

// RootPath is the materialized path of a root category.
func RootPath(id int64) string {
	return "/" + strconv.FormatInt(id, 10)
}

// ChildPath is the materialized path of category id placed under parentPath.
func ChildPath(parentPath string, id int64) string {
	return strings.TrimSuffix(parentPath, "/") + "/" + strconv.FormatInt(id, 10)
}

// Placement computes path and depth of category id under parent.
// A nil parent places the category at the root.
func Placement(id int64, parent *GradeCategory) (path string, depth int) {
	if parent == nil {
		return RootPath(id), 1
	}
	return ChildPath(parent.Path, id), parent.Depth + 1
}

// PathIDs splits a materialized path into its ancestor-or-self ids.
func PathIDs(path string) ([]int64, error) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil, fmt.Errorf("path %q: %w", path, ErrValidation)
	}
	parts := strings.Split(trimmed, "/")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("path %q segment %q: %w", path, p, ErrValidation)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// CheckPath verifies the path and depth invariant of c against its parent.
func CheckPath(c GradeCategory, parent *GradeCategory) error {
	wantPath, wantDepth := Placement(c.ID, parent)
	if c.Path != wantPath || c.Depth != wantDepth {
		return fmt.Errorf("grade_category %d: path %q depth %d, want %q depth %d: %w",
			c.ID, c.Path, c.Depth, wantPath, wantDepth, ErrConflict)
	}
	return nil
}

// CategoryMove is one row update produced by a subtree rewrite.
type CategoryMove struct {
	ID     int64
	Parent int64
	Path   string
	Depth  int
}

// CategoryTree is an in-memory index over the categories of one course.
type CategoryTree struct {
	byID     map[int64]GradeCategory
	children map[int64][]int64
}

// NewCategoryTree indexes cats by id and by parent.
func NewCategoryTree(cats []GradeCategory) *CategoryTree {
	t := &CategoryTree{
		byID:     make(map[int64]GradeCategory, len(cats)),
		children: make(map[int64][]int64),
	}
	for _, c := range cats {
		t.byID[c.ID] = c
		t.children[c.Parent] = append(t.children[c.Parent], c.ID)
	}
	for k := range t.children {
		slices.Sort(t.children[k])
	}
	return t
}

// Get returns the category with the given id.
func (t *CategoryTree) Get(id int64) (GradeCategory, bool) {
	c, ok := t.byID[id]
	return c, ok
}

// Children returns the ids of the direct children of id in ascending order.
func (t *CategoryTree) Children(id int64) []int64 {
	return t.children[id]
}

// IsAncestor reports whether ancestor is on the parent chain of id.
// A parent chain that loops is reported as ErrConflict.
func (t *CategoryTree) IsAncestor(ancestor, id int64) (bool, error) {
	visited := make(map[int64]bool)
	cur, ok := t.byID[id]
	for ok && cur.Parent != 0 {
		if visited[cur.ID] {
			return false, fmt.Errorf("grade_category %d: parent chain loops: %w", id, ErrConflict)
		}
		visited[cur.ID] = true
		if cur.Parent == ancestor {
			return true, nil
		}
		cur, ok = t.byID[cur.Parent]
	}
	return false, nil
}

// PlanMove computes the row updates needed to place category id under
// newParent (0 for root): the moved category gets the new parent, path and
// depth, and every descendant gets its old path prefix replaced by the new one
// with depth shifted by the same delta.
//
// Moving a category under itself or one of its descendants fails with a
// ValidationError. A tree whose stored paths or parent links disagree is
// reported as ErrConflict.
func (t *CategoryTree) PlanMove(id, newParent int64) ([]CategoryMove, error) {
	cat, ok := t.byID[id]
	if !ok {
		return nil, fmt.Errorf("grade_category %d: %w", id, ErrNotFound)
	}

	var parent *GradeCategory
	if newParent != 0 {
		if newParent == id {
			return nil, NewValidationError("parent", "category cannot be its own parent")
		}
		p, ok := t.byID[newParent]
		if !ok {
			return nil, fmt.Errorf("grade_category %d: %w", newParent, ErrNotFound)
		}
		if p.CourseID != cat.CourseID {
			return nil, NewValidationError("parent", "parent belongs to another course")
		}
		desc, err := t.IsAncestor(id, newParent)
		if err != nil {
			return nil, err
		}
		if desc {
			return nil, NewValidationError("parent", "parent is a descendant of the category")
		}
		parent = &p
	}

	newPath, newDepth := Placement(id, parent)
	oldPrefix := cat.Path
	delta := newDepth - cat.Depth

	moves := []CategoryMove{{ID: id, Parent: newParent, Path: newPath, Depth: newDepth}}
	visited := map[int64]bool{id: true}

	stack := slices.Clone(t.children[id])
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]

		if visited[cur] {
			return nil, fmt.Errorf("grade_category %d: visited twice during subtree walk: %w", cur, ErrConflict)
		}
		visited[cur] = true

		c := t.byID[cur]
		if !strings.HasPrefix(c.Path, oldPrefix+"/") {
			return nil, fmt.Errorf("grade_category %d: path %q outside ancestor %q: %w", cur, c.Path, oldPrefix, ErrConflict)
		}
		moves = append(moves, CategoryMove{
			ID:     cur,
			Parent: c.Parent,
			Path:   newPath + strings.TrimPrefix(c.Path, oldPrefix),
			Depth:  c.Depth + delta,
		})
		stack = append(stack, t.children[cur]...)
	}

	return moves, nil
}

// PlanRemoval computes the row updates that lift the children of id (and
// their subtrees) to id's former parent, as done before deleting id.
func (t *CategoryTree) PlanRemoval(id int64) ([]CategoryMove, error) {
	cat, ok := t.byID[id]
	if !ok {
		return nil, fmt.Errorf("grade_category %d: %w", id, ErrNotFound)
	}

	// Detach id so the former parent is not treated as a descendant.
	pruned := make([]GradeCategory, 0, len(t.byID)-1)
	for _, c := range t.byID {
		if c.ID != id {
			pruned = append(pruned, c)
		}
	}
	rest := NewCategoryTree(pruned)

	var moves []CategoryMove
	for _, child := range t.children[id] {
		m, err := rest.PlanMove(child, cat.Parent)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m...)
	}
	return moves, nil
}
