package domain

import "strings"

// CopySuffix is appended to the name of duplicated grade items and categories.
const CopySuffix = " (copy)"

// GradeItem mirrors a row of grade_items.
//
// course and category items reference their owning grade category through
// ItemInstance; manual and mod items through CategoryID. For mod items
// ItemInstance is the activity instance.
type GradeItem struct {
	ID           int64    `db:"id"`
	CourseID     int64    `db:"courseid"`
	CategoryID   *int64   `db:"categoryid"`
	ItemName     string   `db:"itemname"`
	ItemType     ItemType `db:"itemtype"`
	ItemModule   string   `db:"itemmodule"`
	ItemInstance *int64   `db:"iteminstance"`
	IDNumber     string   `db:"idnumber"`
	GradeType    int16    `db:"gradetype"`
	GradeMax     float64  `db:"grademax"`
	GradeMin     float64  `db:"grademin"`
	ScaleID      *int64   `db:"scaleid"`
	SortOrder    int      `db:"sortorder"`
	Hidden       int16    `db:"hidden"`
	Locked       int16    `db:"locked"`
	TimeCreated  int64    `db:"timecreated"`
	TimeModified int64    `db:"timemodified"`
}

// OwnerCategory returns the grade category the item belongs to, or 0.
func (g GradeItem) OwnerCategory() int64 {
	if g.ItemType.OwnedByCategory() {
		if g.ItemInstance != nil {
			return *g.ItemInstance
		}
		return 0
	}
	if g.CategoryID != nil {
		return *g.CategoryID
	}
	return 0
}

// CheckOwnership validates the categoryid XOR iteminstance rule for course
// and category items. manual and mod items without a categoryid are
// course-level items.
func (g GradeItem) CheckOwnership() error {
	if !g.ItemType.IsValid() {
		return NewValidationError("itemtype", "unknown item type")
	}
	if !g.ItemType.OwnedByCategory() {
		return nil
	}
	if g.CategoryID != nil {
		return NewValidationError("categoryid", "must be empty for "+string(g.ItemType)+" items")
	}
	if g.ItemInstance == nil {
		return NewValidationError("iteminstance", "required for "+string(g.ItemType)+" items")
	}
	return nil
}

// HasIDNumber reports whether the item carries a non-blank idnumber.
func (g GradeItem) HasIDNumber() bool {
	return strings.TrimSpace(g.IDNumber) != ""
}

// Duplicable reports whether the item may be copied. Only manual items are:
// course and category items follow their category, mod items their activity.
func (g GradeItem) Duplicable() bool {
	return g.ItemType == ItemTypeManual
}

// Copy returns an unsaved copy of the item with the copy suffix on its name
// and a cleared idnumber.
func (g GradeItem) Copy() GradeItem {
	c := g
	c.ID = 0
	c.ItemName = g.ItemName + CopySuffix
	c.IDNumber = ""
	return c
}

// CategoryItem builds the category-type grade item for a category.
func CategoryItem(cat GradeCategory, now int64) GradeItem {
	typ := ItemTypeCategory
	if cat.IsRoot() {
		typ = ItemTypeCourse
	}
	inst := cat.ID
	return GradeItem{
		CourseID:     cat.CourseID,
		ItemType:     typ,
		ItemInstance: &inst,
		GradeType:    1,
		GradeMax:     100,
		TimeCreated:  now,
		TimeModified: now,
	}
}
