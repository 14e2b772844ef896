package httperr

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation (SQLSTATE 23505), e.g. the booking admission index firing under
// a concurrent duplicate insert.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsTimeout reports whether err came from an expired request deadline; these
// map to 503 rather than 500 so clients can tell a stalled backend apart
// from a bug.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
