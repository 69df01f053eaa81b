package infra

import (
	"errors"

	"marketlink/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindCheckViolated      RepositoryErrorKind = "CHECK_VIOLATED"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeCheckViolation      = "23514"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: k, msg: msg, err: err}
}

// ClassifyPgErr translates driver-level failures into repository kinds so
// callers never branch on raw postgres error codes.
func ClassifyPgErr(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return WrapRepoErr(msg, err, KindNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return WrapRepoErr(msg, err, KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return WrapRepoErr(msg, err, KindForeignKeyViolated)
		case pgErrCodeCheckViolation:
			return WrapRepoErr(msg, err, KindCheckViolated)
		}
	}

	return WrapRepoErr(msg, err, KindDBFailure)
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
