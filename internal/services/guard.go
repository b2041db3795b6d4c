// Package services holds the per-entity orchestration sitting between the
// HTTP handlers and the generic repository. Every mutation follows the
// same shape: optional pre-check, repository call, zero rows affected
// translated into the entity's not-found error. That translation happens
// here and nowhere else.
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/crewbase-dev/crewbase/internal/apperr"
)

// guard converts the repository's (rows, err) result into a domain error.
func guard(rows int64, err error, notFound *apperr.Error) error {
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}

// asConflict maps a unique-constraint rejection to the entity's conflict
// error. The database constraint, not the service pre-check, is the source
// of truth for uniqueness; the pre-check only gives a friendlier fast
// path.
func asConflict(err error, conflict *apperr.Error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflict
	}
	return err
}
