package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/fitplus/internal/fitplus/domain"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/store"
	"github.com/jmoiron/sqlx"
)

const selectUser = `
SELECT username, password, security_question, security_answer,
       daily_calorie_limit, daily_calorie_intake,
       daily_fat, daily_carbs, daily_protein, daily_sugars,
       current_weight, ideal_weight,
       bench_press_pr, squat_pr, deadlift_pr,
       last_update, created_at
FROM users
WHERE username = ?`

type usersRepo struct {
	q sqlx.ExtContext
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.q.ExecContext(ctx, `
INSERT INTO users (
    username, password, security_question, security_answer,
    daily_calorie_limit, daily_calorie_intake,
    daily_fat, daily_carbs, daily_protein, daily_sugars,
    current_weight, ideal_weight,
    bench_press_pr, squat_pr, deadlift_pr,
    last_update, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Username, u.Password, u.SecurityQuestion, u.SecurityAnswer,
		u.CalorieLimit, u.Intake.Calories,
		u.Intake.Fat, u.Intake.Carbs, u.Intake.Protein, u.Intake.Sugars,
		u.CurrentWeight, u.IdealWeight,
		u.BenchPressPR, u.SquatPR, u.DeadliftPR,
		mapStringNull(u.LastUpdate.String()), createdAt.UTC().Format(time.RFC3339Nano),
	)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *usersRepo) FindUser(ctx context.Context, username string) (domain.User, bool, error) {
	var row userRow
	err := sqlx.GetContext(ctx, r.q, &row, selectUser, username)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, false, nil
	}
	if err != nil {
		return domain.User{}, false, err
	}
	user, err := mapUser(row)
	if err != nil {
		return domain.User{}, false, err
	}
	return user, true, nil
}

func (r *usersRepo) UpdateCalorieLimit(ctx context.Context, username string, limit int) error {
	return expectOne(r.q.ExecContext(ctx,
		`UPDATE users SET daily_calorie_limit = ? WHERE username = ?`,
		limit, username,
	))
}

func (r *usersRepo) AddIntake(ctx context.Context, username string, n domain.Nutrients, day domain.Day) error {
	return expectOne(r.q.ExecContext(ctx, `
UPDATE users SET
    daily_calorie_intake = daily_calorie_intake + ?,
    daily_fat = daily_fat + ?,
    daily_carbs = daily_carbs + ?,
    daily_protein = daily_protein + ?,
    daily_sugars = daily_sugars + ?,
    last_update = max(COALESCE(last_update, ''), ?)
WHERE username = ?`,
		n.Calories, n.Fat, n.Carbs, n.Protein, n.Sugars, day.String(), username,
	))
}

func (r *usersRepo) ResetIntake(ctx context.Context, username string, day domain.Day) error {
	return expectOne(r.q.ExecContext(ctx, `
UPDATE users SET
    daily_calorie_intake = 0,
    daily_fat = 0,
    daily_carbs = 0,
    daily_protein = 0,
    daily_sugars = 0,
    last_update = max(COALESCE(last_update, ''), ?)
WHERE username = ?`,
		day.String(), username,
	))
}

func (r *usersRepo) ResetCalories(ctx context.Context, username string) error {
	return expectOne(r.q.ExecContext(ctx,
		`UPDATE users SET daily_calorie_intake = 0 WHERE username = ?`,
		username,
	))
}

func (r *usersRepo) ResetMacros(ctx context.Context, username string) error {
	return expectOne(r.q.ExecContext(ctx, `
UPDATE users SET
    daily_fat = 0,
    daily_carbs = 0,
    daily_protein = 0,
    daily_sugars = 0
WHERE username = ?`,
		username,
	))
}

func (r *usersRepo) UpdateMetric(ctx context.Context, username string, m domain.Metric, value float64) error {
	var query string
	switch m {
	case domain.MetricCurrentWeight:
		query = `UPDATE users SET current_weight = ? WHERE username = ?`
	case domain.MetricIdealWeight:
		query = `UPDATE users SET ideal_weight = ? WHERE username = ?`
	case domain.MetricBenchPressPR:
		query = `UPDATE users SET bench_press_pr = ? WHERE username = ?`
	case domain.MetricSquatPR:
		query = `UPDATE users SET squat_pr = ? WHERE username = ?`
	case domain.MetricDeadliftPR:
		query = `UPDATE users SET deadlift_pr = ? WHERE username = ?`
	default:
		return fmt.Errorf("sqlite: unknown metric %s", m)
	}
	return expectOne(r.q.ExecContext(ctx, query, value, username))
}

func (r *usersRepo) UpdatePassword(ctx context.Context, username, password string) error {
	return expectOne(r.q.ExecContext(ctx,
		`UPDATE users SET password = ? WHERE username = ?`,
		password, username,
	))
}

func (r *usersRepo) DeleteUser(ctx context.Context, username string) error {
	return expectOne(r.q.ExecContext(ctx, `DELETE FROM users WHERE username = ?`, username))
}

func (r *usersRepo) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, r.q, &count, `SELECT COUNT(*) FROM users`)
	return count, err
}
