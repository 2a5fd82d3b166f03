package domain

import "strings"

// TagItemType is the tag_instance.itemtype used for tag-to-tag links.
const TagItemType = "tag"

// Tag mirrors a row of the tag table.
type Tag struct {
	ID           int64  `db:"id"`
	UserID       int64  `db:"userid"`
	Name         string `db:"name"`
	RawName      string `db:"rawname"`
	IsStandard   int16  `db:"isstandard"`
	Description  string `db:"description"`
	TimeCreated  int64  `db:"timecreated"`
	TimeModified int64  `db:"timemodified"`
}

// Standard reports whether the tag is protected from orphan cleanup.
func (t Tag) Standard() bool { return t.IsStandard != 0 }

// TagInstance is an edge between a tag and a taggable item.
type TagInstance struct {
	ID          int64  `db:"id"`
	TagID       int64  `db:"tagid"`
	ItemType    string `db:"itemtype"`
	ItemID      int64  `db:"itemid"`
	TimeCreated int64  `db:"timecreated"`
}

// TagLink maps an external tag id to the local tag it resolved to.
type TagLink struct {
	LeelooID int64 `json:"leeloo_id"`
	MoodleID int64 `json:"moodle_id"`
}

// Symmetric reports whether edges of this item type come in pairs.
func Symmetric(itemType string) bool { return itemType == TagItemType }

// NormalizeTagName trims a tag name; matching is exact on the result.
func NormalizeTagName(name string) string {
	return strings.TrimSpace(name)
}

// Stripped returns the tag with externally supplied identity and ownership
// fields cleared so it can be inserted as a new local row.
func (t Tag) Stripped(now int64) Tag {
	name := NormalizeTagName(t.Name)
	raw := t.RawName
	if strings.TrimSpace(raw) == "" {
		raw = name
	}
	return Tag{
		Name:         name,
		RawName:      raw,
		IsStandard:   t.IsStandard,
		Description:  t.Description,
		TimeCreated:  now,
		TimeModified: now,
	}
}
