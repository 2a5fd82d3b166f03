package domain

import (
	"fmt"
	"math"
)

// CourseGrade is a user's grade on the course total item.
type CourseGrade struct {
	FinalGrade *float64 `db:"finalgrade" json:"finalgrade"`
	GradeMax   float64  `db:"grademax"   json:"grademax"`
}

// Completion counts completion-tracked modules of a course for one user.
type Completion struct {
	Tracked   int `db:"tracked"`
	Completed int `db:"completed"`
}

// Percentage returns the completed share formatted with two decimals.
// A course that tracks nothing reports "0.00".
func (c Completion) Percentage() string {
	if c.Tracked <= 0 {
		return "0.00"
	}
	p := float64(c.Completed) * 100 / float64(c.Tracked)
	return fmt.Sprintf("%.2f", math.Min(p, 100))
}
