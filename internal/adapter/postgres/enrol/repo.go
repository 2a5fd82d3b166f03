// Package enrol implements user enrolment and role assignment persistence
// using PostgreSQL.
package enrol

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/leeloo-sync/internal/adapter/postgres"
	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

const (
	findUserSQL = `SELECT id, username, email FROM users
		WHERE deleted = 0 AND (username = $1 OR ($1 = '' AND $2 <> '' AND email = $2))
		ORDER BY (username = $1) DESC, id
		LIMIT 1`

	roleByShortnameSQL = `SELECT id FROM role WHERE shortname = $1`

	upsertEnrolmentSQL = `INSERT INTO user_enrolments (courseid, userid, status, timestart, timeend, timecreated, timemodified)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (courseid, userid) DO UPDATE
		SET status = EXCLUDED.status, timestart = EXCLUDED.timestart, timeend = EXCLUDED.timeend,
			timemodified = EXCLUDED.timemodified`

	assignRoleSQL = `INSERT INTO role_assignments (roleid, courseid, userid, timemodified)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (roleid, courseid, userid) DO NOTHING`

	deleteEnrolmentSQL = `DELETE FROM user_enrolments WHERE courseid = $1 AND userid = $2`

	unassignRolesSQL = `DELETE FROM role_assignments WHERE courseid = $1 AND userid = $2`
)

// Repo provides enrolment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new enrolment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// FindUser resolves a user by username, falling back to email when no
// username is given.
func (r *Repo) FindUser(ctx context.Context, username, email string) (domain.User, error) {
	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, findUserSQL, username, email); err != nil {
		return domain.User{}, postgres.MapError(err, "user", username+email)
	}
	return u, nil
}

// RoleID resolves a role shortname.
func (r *Repo) RoleID(ctx context.Context, shortname string) (int64, error) {
	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, roleByShortnameSQL, shortname).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "role", shortname)
	}
	return id, nil
}

// UpsertEnrolment creates or refreshes the enrolment window of a user.
func (r *Repo) UpsertEnrolment(ctx context.Context, e domain.Enrolment, now int64) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, upsertEnrolmentSQL,
		e.CourseID, e.UserID, e.Status, e.TimeStart, e.TimeEnd, now)
	if err != nil {
		return postgres.MapError(err, "user_enrolment", e.UserID)
	}
	return nil
}

// AssignRole gives the user the enrolment's role in the course.
func (r *Repo) AssignRole(ctx context.Context, e domain.Enrolment, now int64) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, assignRoleSQL, e.RoleID, e.CourseID, e.UserID, now)
	if err != nil {
		return postgres.MapError(err, "role_assignment", e.UserID)
	}
	return nil
}

// DeleteEnrolment removes the enrolment and reports whether it existed.
func (r *Repo) DeleteEnrolment(ctx context.Context, userID, courseID int64) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteEnrolmentSQL, courseID, userID)
	if err != nil {
		return false, postgres.MapError(err, "user_enrolment", userID)
	}
	return tag.RowsAffected() > 0, nil
}

// UnassignRoles removes every role the user holds in the course.
func (r *Repo) UnassignRoles(ctx context.Context, userID, courseID int64) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, unassignRolesSQL, courseID, userID)
	if err != nil {
		return 0, postgres.MapError(err, "role_assignment", userID)
	}
	return tag.RowsAffected(), nil
}
