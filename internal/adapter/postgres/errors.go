package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

// sqlStateErrors maps the SQLSTATE codes the Moodle schema can raise onto
// domain sentinels.
var sqlStateErrors = map[string]error{
	"23505": domain.ErrAlreadyExists,  // unique_violation
	"23503": domain.ErrNotFound,       // foreign_key_violation
	"23514": domain.ErrValidation,     // check_violation
	"23502": domain.ErrValidation,     // not_null_violation
	"22001": domain.ErrValidation,     // string_data_right_truncation
	"22003": domain.ErrValidation,     // numeric_value_out_of_range
	"57014": context.DeadlineExceeded, // query_canceled (statement_timeout)
}

// MapError annotates err with the entity it concerns and translates
// "no rows" and known SQLSTATEs into domain errors. Context errors and
// unrecognised failures keep their original chain.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	var target error = err
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
	case errors.Is(err, pgx.ErrNoRows), pgxscan.NotFound(err):
		target = domain.ErrNotFound
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if mapped, ok := sqlStateErrors[pgErr.Code]; ok {
				target = mapped
			}
		}
	}
	return fmt.Errorf("%s %v: %w", entity, id, target)
}
