package repositories

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no document matches the given id.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a conditional update matched no rows,
	// e.g. completing an exam that is already completed.
	ErrConflict = errors.New("conditional update failed")

	// ErrDuplicate is returned when a uniqueness constraint is violated.
	ErrDuplicate = errors.New("duplicate record")
)

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}
