package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/fitplus/internal/fitplus/domain"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/store"
	"github.com/jmoiron/sqlx"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sqlx.DB
	dsn string
}

// NewStore opens the database at dsn. An in-memory database is limited to a
// single connection, otherwise every pooled connection would see its own
// empty database.
func NewStore(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if isMemory(dsn) {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

// FileDSN builds a DSN for an on-disk database with WAL and a busy timeout.
func FileDSN(path string) string {
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

func isMemory(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users { return &usersRepo{q: s.db} }

// userRow mirrors the users table. created_at is kept as RFC 3339 text so
// the driver never has to guess at time formats.
type userRow struct {
	Username         string         `db:"username"`
	Password         string         `db:"password"`
	SecurityQuestion string         `db:"security_question"`
	SecurityAnswer   string         `db:"security_answer"`
	CalorieLimit     int            `db:"daily_calorie_limit"`
	CalorieIntake    float64        `db:"daily_calorie_intake"`
	Fat              float64        `db:"daily_fat"`
	Carbs            float64        `db:"daily_carbs"`
	Protein          float64        `db:"daily_protein"`
	Sugars           float64        `db:"daily_sugars"`
	CurrentWeight    float64        `db:"current_weight"`
	IdealWeight      float64        `db:"ideal_weight"`
	BenchPressPR     float64        `db:"bench_press_pr"`
	SquatPR          float64        `db:"squat_pr"`
	DeadliftPR       float64        `db:"deadlift_pr"`
	LastUpdate       sql.NullString `db:"last_update"`
	CreatedAt        string         `db:"created_at"`
}

func mapUser(row userRow) (domain.User, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, row.CreatedAt)
	if err != nil {
		return domain.User{}, fmt.Errorf("sqlite: user %q has malformed created_at %q: %w", row.Username, row.CreatedAt, err)
	}

	return domain.User{
		Username:         row.Username,
		Password:         row.Password,
		SecurityQuestion: row.SecurityQuestion,
		SecurityAnswer:   row.SecurityAnswer,
		CalorieLimit:     row.CalorieLimit,
		Intake: domain.Nutrients{
			Calories: row.CalorieIntake,
			Fat:      row.Fat,
			Carbs:    row.Carbs,
			Protein:  row.Protein,
			Sugars:   row.Sugars,
		},
		CurrentWeight: row.CurrentWeight,
		IdealWeight:   row.IdealWeight,
		BenchPressPR:  row.BenchPressPR,
		SquatPR:       row.SquatPR,
		DeadliftPR:    row.DeadliftPR,
		LastUpdate:    domain.Day(mapNullString(row.LastUpdate)),
		CreatedAt:     createdAt,
	}, nil
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func isUniqueViolation(err error) bool {
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	}
	return false
}

// expectOne maps an exec result that touched no rows to store.ErrNotFound.
func expectOne(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
