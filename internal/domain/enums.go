package domain

// EntityType identifies the kind of synced entity (used in the sync journal).
type EntityType string

const (
	EntityTypeCourse        EntityType = "course"
	EntityTypeGradeCategory EntityType = "grade_category"
	EntityTypeGradeItem     EntityType = "grade_item"
	EntityTypeTag           EntityType = "tag"
	EntityTypeScale         EntityType = "scale"
	EntityTypeActivity      EntityType = "activity"
	EntityTypeSetting       EntityType = "setting"
	EntityTypeEnrolment     EntityType = "enrolment"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeCourse, EntityTypeGradeCategory, EntityTypeGradeItem, EntityTypeTag,
		EntityTypeScale, EntityTypeActivity, EntityTypeSetting, EntityTypeEnrolment:
		return true
	}
	return false
}

// JournalAction represents the kind of mutation recorded in the sync journal.
type JournalAction string

const (
	JournalActionCreate JournalAction = "create"
	JournalActionUpdate JournalAction = "update"
	JournalActionDelete JournalAction = "delete"
	JournalActionMerge  JournalAction = "merge"
	JournalActionLink   JournalAction = "link"
)

func (a JournalAction) String() string { return string(a) }

func (a JournalAction) IsValid() bool {
	switch a {
	case JournalActionCreate, JournalActionUpdate, JournalActionDelete, JournalActionMerge, JournalActionLink:
		return true
	}
	return false
}

// ItemType is the grade_items.itemtype discriminator.
type ItemType string

const (
	ItemTypeCourse   ItemType = "course"
	ItemTypeCategory ItemType = "category"
	ItemTypeManual   ItemType = "manual"
	ItemTypeMod      ItemType = "mod"
)

func (t ItemType) String() string { return string(t) }

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeCourse, ItemTypeCategory, ItemTypeManual, ItemTypeMod:
		return true
	}
	return false
}

// OwnedByCategory reports whether items of this type point at their owning
// grade category through iteminstance rather than categoryid.
func (t ItemType) OwnedByCategory() bool {
	return t == ItemTypeCourse || t == ItemTypeCategory
}
