package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrValidation marks caller mistakes the handler reports as 400.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidRole is returned when a role switch is refused.
	ErrInvalidRole = errors.New("invalid role credentials")
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// parseID parses an optional id; the empty string yields nil.
func parseID(field, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, invalid("%s is not a valid id", field)
	}
	return &id, nil
}
