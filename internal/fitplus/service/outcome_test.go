package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/aussiebroadwan/fitplus/internal/fitplus/domain"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/store"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/validate"
	"github.com/aussiebroadwan/fitplus/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestOutcomeMessages(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		err  error
		ok   bool
		msg  string
	}{
		{"success", nil, true, ""},
		{"validation", &ValidationError{Field: "username", Reason: validate.TooShort, Message: "Username must be at least 3 characters"}, false, "Username must be at least 3 characters"},
		{"duplicate", ErrDuplicateUsername, false, "Username already exists"},
		{"credentials", ErrInvalidCredentials, false, "Invalid username or password"},
		{"recovery", ErrInvalidRecovery, false, "Incorrect username or security answer"},
		{"not found", ErrUserNotFound, false, "User not found"},
		{"throttled", ErrTooManyAttempts, false, "Too many login attempts, please wait and try again"},
		{"unknown food", ErrUnknownFood, false, "Food item not found"},
		{"storage", &StorageError{Op: "register", Cause: errors.New("disk I/O error")}, false, genericFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := Outcome(ctx, tt.err)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.msg, msg)
		})
	}
}

func TestOutcomeLogsStorageErrors(t *testing.T) {
	var buf bytes.Buffer
	ctx := slogx.WithContext(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	_, _ = Outcome(ctx, ErrInvalidCredentials)
	require.Empty(t, buf.String())

	_, _ = Outcome(ctx, &StorageError{Op: "progress", Cause: errors.New("database is locked")})
	require.Contains(t, buf.String(), "database is locked")
	require.Contains(t, buf.String(), "level=ERROR")
}

func TestClassify(t *testing.T) {
	require.NoError(t, classify("op", nil))
	require.ErrorIs(t, classify("op", store.ErrNotFound), ErrNotFound)
	require.ErrorIs(t, classify("op", store.ErrAlreadyExists), ErrDuplicateUsername)
	require.Equal(t, ErrUnknownFood, classify("op", ErrUnknownFood))

	cause := errors.New("boom")
	var se *StorageError
	require.ErrorAs(t, classify("op", cause), &se)
	require.Equal(t, "op", se.Op)
	require.ErrorIs(t, se, cause)
}

func TestClosedStoreIsAStorageError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice")
	require.NoError(t, f.store.Close())

	_, err := f.nutrition.AddFoodItem(ctx, "alice", domain.Nutrients{Calories: 1})
	var se *StorageError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "add food item", se.Op)

	ok, msg := Outcome(ctx, err)
	require.False(t, ok)
	require.Equal(t, genericFailure, msg)
}
