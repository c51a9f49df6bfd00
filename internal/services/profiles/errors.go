package profiles

import (
	"errors"
	"fmt"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
)

// DuplicateNameError is returned when the store rejects a profile name
type DuplicateNameError struct {
	Nome string
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("profile with name '%s' already exists", e.Nome)
}

func (e DuplicateNameError) Is(target error) bool {
	return target == ErrProfileExists
}
