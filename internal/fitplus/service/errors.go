package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/fitplus/internal/fitplus/store"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/validate"
)

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRecovery    = errors.New("incorrect username or security answer")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrUnknownFood        = errors.New("food item not found")
)

// ErrUserNotFound is returned by the nutrition operations; it is the same
// error as ErrNotFound.
var ErrUserNotFound = ErrNotFound

// ValidationError rejects one input field. Message is safe to show.
type ValidationError struct {
	Field   string
	Reason  validate.Reason
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// invalid tags a validate rejection with the field it came from.
func invalid(field string, err error) error {
	var ve *validate.Error
	if errors.As(err, &ve) {
		return &ValidationError{Field: field, Reason: ve.Reason, Message: ve.Message}
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// StorageError is any store failure that is not a missing or duplicate
// record: disk trouble, corruption, a closed database.
type StorageError struct {
	Op    string
	Cause error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: storage: %v", e.Op, e.Cause)
}

func (e *StorageError) Unwrap() error { return e.Cause }

// classify turns whatever escaped a transaction into the taxonomy above.
// Errors already in the taxonomy pass through untouched.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var ve *ValidationError
	var se *StorageError
	switch {
	case errors.As(err, &ve), errors.As(err, &se):
		return err
	case errors.Is(err, ErrDuplicateUsername),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidRecovery),
		errors.Is(err, ErrTooManyAttempts),
		errors.Is(err, ErrUnknownFood):
		return err
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrAlreadyExists):
		return ErrDuplicateUsername
	}
	return &StorageError{Op: op, Cause: err}
}
