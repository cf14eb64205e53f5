package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Structural input errors (fail fast, no partial profile)
	ErrInput            = errors.New("invalid input table")
	ErrNoColumns        = fmt.Errorf("%w: table has no columns", ErrInput)
	ErrRowCountMismatch = fmt.Errorf("%w: column row count mismatch", ErrInput)
	ErrDuplicateColumn  = fmt.Errorf("%w: duplicate column name", ErrInput)
	ErrColumnNotFound   = errors.New("column not found")

	// Configuration errors (checked after input validity)
	ErrConfiguration = errors.New("invalid configuration")

	// Persistence errors
	ErrNotFound        = errors.New("resource not found")
	ErrProfileNotFound = fmt.Errorf("%w: profile", ErrNotFound)
)

// NewInputError wraps ErrInput with context about the structural problem.
func NewInputError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInput, reason)
}

// NewRowCountError reports a column whose length disagrees with the table.
func NewRowCountError(column string, got, want int) error {
	return fmt.Errorf("%w: column %q has %d rows, table declares %d", ErrRowCountMismatch, column, got, want)
}

// NewConfigurationError reports an option value outside its valid domain.
func NewConfigurationError(option string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrConfiguration, option, reason)
}

// Error checking helpers
func IsInputError(err error) bool {
	return errors.Is(err, ErrInput)
}

func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
