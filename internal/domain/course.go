package domain

import "strings"

// Course mirrors a row of the course table.
type Course struct {
	ID           int64  `db:"id"`
	Category     int64  `db:"category"`
	Fullname     string `db:"fullname"`
	Shortname    string `db:"shortname"`
	IDNumber     string `db:"idnumber"`
	Summary      string `db:"summary"`
	Format       string `db:"format"`
	Visible      int16  `db:"visible"`
	StartDate    int64  `db:"startdate"`
	EndDate      int64  `db:"enddate"`
	TimeCreated  int64  `db:"timecreated"`
	TimeModified int64  `db:"timemodified"`
}

// BusinessKeys returns the non-blank identity keys of the course.
// Blank keys never take part in uniqueness checks.
func (c Course) BusinessKeys() (shortname, idnumber string) {
	return strings.TrimSpace(c.Shortname), strings.TrimSpace(c.IDNumber)
}

// CollidesWith reports whether other holds one of c's business keys while
// being a different course.
func (c Course) CollidesWith(other Course) bool {
	if other.ID == c.ID && c.ID != 0 {
		return false
	}
	short, idnum := c.BusinessKeys()
	if short != "" && strings.TrimSpace(other.Shortname) == short {
		return true
	}
	if idnum != "" && strings.TrimSpace(other.IDNumber) == idnum {
		return true
	}
	return false
}
