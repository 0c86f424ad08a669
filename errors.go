package gridgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/gridgo/column"
)

var (
	// ErrNotFound is returned when a visible-row index is out of range.
	ErrNotFound = errors.New("not found")

	// ErrUnknownColumn is returned when an operation references a field
	// with no registered column. Sorting an unregistered column is a
	// programmer error and fails fast rather than silently no-opping.
	ErrUnknownColumn = errors.New("unknown column")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var uf *column.UnknownFieldError
	if errors.As(err, &uf) {
		return fmt.Errorf("%w: %w", ErrUnknownColumn, err)
	}

	return err
}
