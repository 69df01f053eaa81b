// Package errs wraps cockroachdb/errors so usecases can mark failures
// with marketplace sentinels (duplicate offer, stale transition, missing
// row) while keeping the underlying cause chain intact.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches a sentinel so callers can match with errors.Is without
// losing the storage-layer cause.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
