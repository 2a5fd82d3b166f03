package gateway

import "strconv"

// CourseSyncResult holds the ids produced by course_sync. Zero means the
// part was not synced.
type CourseSyncResult struct {
	CourseID   int64
	CategoryID int64
	ItemID     int64
}

// String renders the "<course>,<category>,<item>" wire form.
func (r CourseSyncResult) String() string {
	return strconv.FormatInt(r.CourseID, 10) + "," +
		strconv.FormatInt(r.CategoryID, 10) + "," +
		strconv.FormatInt(r.ItemID, 10)
}

// CategorySyncResult holds the ids of a category and its grade item.
type CategorySyncResult struct {
	CategoryID int64
	ItemID     int64
}

// String renders the "<category>,<item>" wire form.
func (r CategorySyncResult) String() string {
	return strconv.FormatInt(r.CategoryID, 10) + "," + strconv.FormatInt(r.ItemID, 10)
}
