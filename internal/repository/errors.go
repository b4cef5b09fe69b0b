package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a drug or stock lot does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInsufficientStock is returned when a sale would take a lot below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// translate maps gorm's sentinel errors onto the repository's own.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrNotFound
	default:
		return err
	}
}
