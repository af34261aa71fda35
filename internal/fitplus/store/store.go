package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/fitplus/internal/fitplus/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. Repositories hang off it as methods so a Tx can
// hand out the same repositories bound to the transaction.
type Store interface {
	Users() Users

	// ApplyMigrations creates the schema if it is absent and brings it up to
	// date.
	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Users is the fixed set of operations on the users table. There is no
// generic field-map update; each mutation names the columns it touches.
type Users interface {
	// CreateUser inserts a new record. A username collision yields
	// ErrAlreadyExists and leaves the existing row untouched.
	CreateUser(ctx context.Context, u domain.User) error

	// FindUser returns the record and true, or false when the username is
	// absent.
	FindUser(ctx context.Context, username string) (domain.User, bool, error)

	UpdateCalorieLimit(ctx context.Context, username string, limit int) error

	// AddIntake adds n to all five ledgers and advances last_update to day.
	AddIntake(ctx context.Context, username string, n domain.Nutrients, day domain.Day) error

	// ResetIntake zeroes all five ledgers and advances last_update to day.
	ResetIntake(ctx context.Context, username string, day domain.Day) error

	// ResetCalories zeroes the calorie intake ledger only.
	ResetCalories(ctx context.Context, username string) error

	// ResetMacros zeroes the fat, carbs, protein and sugars ledgers.
	ResetMacros(ctx context.Context, username string) error

	UpdateMetric(ctx context.Context, username string, m domain.Metric, value float64) error

	UpdatePassword(ctx context.Context, username, password string) error

	// DeleteUser removes the record. ErrNotFound if there was none.
	DeleteUser(ctx context.Context, username string) error

	CountUsers(ctx context.Context) (int, error)
}
