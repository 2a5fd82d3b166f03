package domain

import "strings"

// Scale mirrors a row of the scale table.
type Scale struct {
	ID           int64  `db:"id"`
	CourseID     int64  `db:"courseid"`
	UserID       int64  `db:"userid"`
	Name         string `db:"name"`
	Scale        string `db:"scale"`
	Description  string `db:"description"`
	TimeModified int64  `db:"timemodified"`
}

// Items returns the ordered scale values.
func (s Scale) Items() []string {
	parts := strings.Split(s.Scale, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
