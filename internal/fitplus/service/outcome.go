package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/fitplus/pkg/slogx"
)

const genericFailure = "Something went wrong, please try again"

// Outcome reduces err to what a front-end shows: whether the operation
// succeeded and a message for the user. Storage failures are logged here
// and never retried.
func Outcome(ctx context.Context, err error) (bool, string) {
	if err == nil {
		return true, ""
	}

	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return false, ve.Message
	case errors.Is(err, ErrDuplicateUsername):
		return false, "Username already exists"
	case errors.Is(err, ErrInvalidCredentials):
		return false, "Invalid username or password"
	case errors.Is(err, ErrInvalidRecovery):
		return false, "Incorrect username or security answer"
	case errors.Is(err, ErrNotFound):
		return false, "User not found"
	case errors.Is(err, ErrTooManyAttempts):
		return false, "Too many login attempts, please wait and try again"
	case errors.Is(err, ErrUnknownFood):
		return false, "Food item not found"
	}

	slogx.FromContext(ctx).Error("operation failed", slog.Any("error", err))
	return false, genericFailure
}
