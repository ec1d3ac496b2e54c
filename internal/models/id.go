package models

import (
	"fmt"

	"github.com/google/uuid"
)

// ID is an opaque document identifier. External strings must go through
// ParseID so malformed ids never reach the store.
type ID string

func NewID() ID {
	return ID(uuid.NewString())
}

func ParseID(s string) (ID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("invalid id %q: %w", s, err)
	}
	return ID(s), nil
}

func (id ID) String() string {
	return string(id)
}

func (id ID) IsZero() bool {
	return id == ""
}
