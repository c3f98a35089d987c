package logic

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange is returned when a deselect index is outside the selection
	ErrOutOfRange = errors.New("index out of range")
	// ErrInvalidCatalog is returned when a catalog repeats an option value
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// IndexError reports a rejected positional operation
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d outside selection of length %d", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// DuplicateError lists the values that appeared more than once in a catalog
type DuplicateError struct {
	Values []string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate option values: %s", strings.Join(e.Values, ", "))
}

func (e *DuplicateError) Unwrap() error { return ErrInvalidCatalog }
