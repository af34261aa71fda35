// Package postgres implements the store against a PostgreSQL server. It is
// the optional alternative to the local sqlite file.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/fitplus/internal/fitplus/domain"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/store"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type Store struct {
	db *sqlx.DB
}

// NewStore connects to PostgreSQL and pings it.
func NewStore(connStr string) (*Store, error) {
	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users { return &usersRepo{q: s.db} }

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
	CreatedAt        time.Time      `db:"created_at"`
}

func mapUser(row userRow) domain.User {
	var lastUpdate domain.Day
	if row.LastUpdate.Valid {
		lastUpdate = domain.Day(row.LastUpdate.String)
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
		LastUpdate:    lastUpdate,
		CreatedAt:     row.CreatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

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
