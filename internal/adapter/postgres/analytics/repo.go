// Package analytics implements the read-only reporting queries using PostgreSQL.
package analytics

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/leeloo-sync/internal/adapter/postgres"
	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

const (
	courseGradeSQL = `SELECT gg.finalgrade, gi.grademax
		FROM grade_items gi
		JOIN grade_grades gg ON gg.itemid = gi.id
		WHERE gi.courseid = $1 AND gi.itemtype = 'course' AND gg.userid = $2
		ORDER BY gi.id
		LIMIT 1`

	attemptCountSQL = `SELECT count(*) FROM quiz_attempts
		WHERE quiz = $1 AND userid = $2 AND state = 'finished'`
)

// completionStateComplete and above count as done (complete, pass).
const completionStateComplete = 1

// Repo runs analytics reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new analytics repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// CourseGrade returns the user's course total grade.
func (r *Repo) CourseGrade(ctx context.Context, userID, courseID int64) (domain.CourseGrade, error) {
	var g domain.CourseGrade
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &g, courseGradeSQL, courseID, userID); err != nil {
		return domain.CourseGrade{}, postgres.MapError(err, "course_grade", courseID)
	}
	return g, nil
}

// Completion counts the completion-tracked visible modules of a course and
// how many of them the user completed.
func (r *Repo) Completion(ctx context.Context, userID, courseID int64) (domain.Completion, error) {
	sql, args, err := postgres.Builder().
		Select(
			"count(cm.id) AS tracked",
			"count(cmc.id) AS completed",
		).
		From("course_modules cm").
		LeftJoin("course_modules_completion cmc ON cmc.coursemoduleid = cm.id AND cmc.userid = ? AND cmc.completionstate >= ?",
			userID, completionStateComplete).
		Where(squirrel.Eq{"cm.course": courseID, "cm.visible": 1}).
		Where(squirrel.Gt{"cm.completion": 0}).
		ToSql()
	if err != nil {
		return domain.Completion{}, fmt.Errorf("build completion query: %w", err)
	}

	var c domain.Completion
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &c, sql, args...); err != nil {
		return domain.Completion{}, postgres.MapError(err, "completion", courseID)
	}
	return c, nil
}

// AttemptCount returns the number of finished attempts of a user on a quiz.
func (r *Repo) AttemptCount(ctx context.Context, userID, quizID int64) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, attemptCountSQL, quizID, userID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "quiz_attempts", quizID)
	}
	return n, nil
}
