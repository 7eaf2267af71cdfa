// Package app holds the application services and business logic.
package app

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation wraps every input validation failure.
	ErrValidation = errors.New("invalid input")
	// ErrUserNotFound indicates that the user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrFoodNotFound indicates that the food does not exist.
	ErrFoodNotFound = errors.New("food not found")
	// ErrExerciseNotFound indicates that the exercise does not exist.
	ErrExerciseNotFound = errors.New("exercise not found")
)

// DataAccessError reports a failed read or write against the store.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

func dataErr(op string, err error) error {
	return &DataAccessError{Op: op, Err: err}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
