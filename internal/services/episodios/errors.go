package episodios

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrEpisodioNotFound = errors.New("episodio not found")
	ErrDuplicateTitle   = errors.New("episodio title already exists")
)

// NotFoundError represents an error when an episode is not found
type NotFoundError struct {
	Field string
	Value interface{}
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("episodio with %s %v not found", e.Field, e.Value)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrEpisodioNotFound
}

// DuplicateTitleError is returned when an insert or update collides with an existing title
type DuplicateTitleError struct {
	Titulo string
}

func (e DuplicateTitleError) Error() string {
	return fmt.Sprintf("episode with title '%s' already exists", e.Titulo)
}

func (e DuplicateTitleError) Is(target error) bool {
	return target == ErrDuplicateTitle
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(field string, value interface{}) error {
	return NotFoundError{Field: field, Value: value}
}

// NewDuplicateTitleError creates a new DuplicateTitleError
func NewDuplicateTitleError(titulo string) error {
	return DuplicateTitleError{Titulo: titulo}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEpisodioNotFound)
}

// IsDuplicateTitle checks if an error is a title collision
func IsDuplicateTitle(err error) bool {
	return errors.Is(err, ErrDuplicateTitle)
}
