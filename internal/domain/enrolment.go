package domain

// DefaultRole is assigned when an enrolment payload names no role.
const DefaultRole = "student"

// User is the subset of the users table the gateway reads.
type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Email    string `db:"email"`
}

// Enrolment is a resolved enrolment request.
type Enrolment struct {
	UserID    int64
	CourseID  int64
	RoleID    int64
	TimeStart int64
	TimeEnd   int64
	Status    int16
}
