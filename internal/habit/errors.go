package habit

import (
	"errors"
	"fmt"
)

// Error represents an expected, recoverable failure of a registry or ledger
// operation. All four codes are reported to the caller for user-facing
// display; none is process-fatal, and no operation partially mutates state
// before returning one.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Habit names the affected habit, when known.
	Habit string

	// Err is the underlying cause (storage errors only).
	Err error
}

// ErrorCode categorizes habit errors.
type ErrorCode string

const (
	// ErrCodeDuplicateHabit indicates an add with an already-registered name.
	ErrCodeDuplicateHabit ErrorCode = "DUPLICATE_HABIT"

	// ErrCodeHabitNotFound indicates an operation on an unknown habit name.
	ErrCodeHabitNotFound ErrorCode = "HABIT_NOT_FOUND"

	// ErrCodeDuplicateCompletion indicates a completion recorded for a
	// period that already has one.
	ErrCodeDuplicateCompletion ErrorCode = "DUPLICATE_COMPLETION"

	// ErrCodeStorage indicates an underlying persistence failure,
	// propagated unchanged and never retried.
	ErrCodeStorage ErrorCode = "STORAGE_ERROR"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Habit != "" {
		return fmt.Sprintf("%s: %s (habit=%q)", e.Code, e.Message, e.Habit)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf extracts the ErrorCode from an error.
// Returns "" if the error is not a habit.Error. Uses errors.As to handle
// wrapped errors.
func CodeOf(err error) ErrorCode {
	var he *Error
	if errors.As(err, &he) {
		return he.Code
	}
	return ""
}

// IsDuplicateHabit reports whether err is a DUPLICATE_HABIT error.
func IsDuplicateHabit(err error) bool {
	return CodeOf(err) == ErrCodeDuplicateHabit
}

// IsNotFound reports whether err is a HABIT_NOT_FOUND error.
func IsNotFound(err error) bool {
	return CodeOf(err) == ErrCodeHabitNotFound
}

// IsDuplicateCompletion reports whether err is a DUPLICATE_COMPLETION error.
func IsDuplicateCompletion(err error) bool {
	return CodeOf(err) == ErrCodeDuplicateCompletion
}

// IsStorageError reports whether err is a STORAGE_ERROR.
func IsStorageError(err error) bool {
	return CodeOf(err) == ErrCodeStorage
}

// NewDuplicateHabitError creates an Error for an add with an existing name.
func NewDuplicateHabitError(name string) *Error {
	return &Error{
		Code:    ErrCodeDuplicateHabit,
		Message: "habit already exists",
		Habit:   name,
	}
}

// NewNotFoundError creates an Error for an unknown habit name.
func NewNotFoundError(name string) *Error {
	return &Error{
		Code:    ErrCodeHabitNotFound,
		Message: "habit does not exist",
		Habit:   name,
	}
}

// NewDuplicateCompletionError creates an Error for an already-completed period.
func NewDuplicateCompletionError(name, periodStart string) *Error {
	return &Error{
		Code:    ErrCodeDuplicateCompletion,
		Message: fmt.Sprintf("completion already recorded for period starting %s", periodStart),
		Habit:   name,
	}
}

// NewStorageError wraps a persistence failure.
func NewStorageError(op string, err error) *Error {
	return &Error{
		Code:    ErrCodeStorage,
		Message: op,
		Err:     err,
	}
}
