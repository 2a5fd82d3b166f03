package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WindowColumns names the open/close columns of an activity table.
// End is empty for modules that only carry a start time.
type WindowColumns struct {
	Table string
	Start string
	End   string
}

var activityWindows = map[string]WindowColumns{
	"quiz":     {Table: "quiz", Start: "timeopen", End: "timeclose"},
	"assign":   {Table: "assign", Start: "allowsubmissionsfromdate", End: "duedate"},
	"lesson":   {Table: "lesson", Start: "available", End: "deadline"},
	"chat":     {Table: "chat", Start: "chattime"},
	"choice":   {Table: "choice", Start: "timeopen", End: "timeclose"},
	"data":     {Table: "data", Start: "timeavailablefrom", End: "timeavailableto"},
	"feedback": {Table: "feedback", Start: "timeopen", End: "timeclose"},
	"forum":    {Table: "forum", Start: "duedate", End: "cutoffdate"},
	"workshop": {Table: "workshop", Start: "submissionstart", End: "submissionend"},
	"scorm":    {Table: "scorm", Start: "timeopen", End: "timeclose"},
}

// ActivityWindow resolves the columns for a module type. ok is false for
// modules without a known window.
func ActivityWindow(moduleType string) (WindowColumns, bool) {
	w, ok := activityWindows[strings.ToLower(strings.TrimSpace(moduleType))]
	return w, ok
}

// ActivityModules lists the module types with a known window.
func ActivityModules() []string {
	out := make([]string, 0, len(activityWindows))
	for k := range activityWindows {
		out = append(out, k)
	}
	return out
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp converts an inbound date value to Unix seconds.
// Digits are taken as Unix seconds; date layouts are read in UTC unless they
// carry an offset. Blank input is 0, meaning "not set".
func ParseTimestamp(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("timestamp %q: %w", raw, ErrValidation)
		}
		return n, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, fmt.Errorf("timestamp %q: %w", raw, ErrValidation)
}

// ActivityWindowUpdate is a resolved open/close change for one activity.
type ActivityWindowUpdate struct {
	Columns    WindowColumns
	InstanceID int64
	Start      int64
	End        int64
}

// Values returns the column assignments of the update.
func (u ActivityWindowUpdate) Values() map[string]any {
	v := map[string]any{u.Columns.Start: u.Start}
	if u.Columns.End != "" {
		v[u.Columns.End] = u.End
	}
	return v
}
