package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/fitplus/internal/fitplus/domain"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/store"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/validate"
	"github.com/aussiebroadwan/fitplus/pkg/slogx"
)

// NutritionService keeps the per-day calorie and macro ledgers. Every read
// and write goes through Rollover first.
type NutritionService struct {
	Store    store.Store
	Rollover *RolloverPolicy
}

// current loads username and applies the rollover policy inside tx.
func (s *NutritionService) current(ctx context.Context, tx store.Tx, username string) (domain.User, error) {
	user, found, err := tx.Users().FindUser(ctx, username)
	if err != nil {
		return domain.User{}, err
	}
	if !found {
		return domain.User{}, ErrUserNotFound
	}
	user, _, err = s.Rollover.Apply(ctx, tx.Users(), user)
	return user, err
}

// AddFoodItem adds n to today's ledgers and returns the new totals.
func (s *NutritionService) AddFoodItem(ctx context.Context, username string, n domain.Nutrients) (domain.Nutrients, error) {
	log := slogx.FromContext(ctx)
	username = strings.TrimSpace(username)

	if err := checkNutrients(n); err != nil {
		return domain.Nutrients{}, err
	}

	var totals domain.Nutrients
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := s.current(ctx, tx, username)
		if err != nil {
			return err
		}
		if err := tx.Users().AddIntake(ctx, username, n, s.Rollover.Today()); err != nil {
			return err
		}
		totals = user.Intake.Add(n)
		return nil
	})
	if err = classify("add food item", err); err != nil {
		return domain.Nutrients{}, err
	}

	log.Info("food added",
		slog.String("user", username),
		slog.Float64("calories", n.Calories),
		slog.Float64("total_calories", totals.Calories),
	)
	return totals, nil
}

// AddCatalogFood adds one serving of the named catalog item.
func (s *NutritionService) AddCatalogFood(ctx context.Context, username, name string) (domain.FoodItem, domain.Nutrients, error) {
	item, ok := domain.LookupFood(name)
	if !ok {
		return domain.FoodItem{}, domain.Nutrients{}, ErrUnknownFood
	}
	totals, err := s.AddFoodItem(ctx, username, item.Nutrients)
	if err != nil {
		return domain.FoodItem{}, domain.Nutrients{}, err
	}
	return item, totals, nil
}

func checkNutrients(n domain.Nutrients) error {
	fields := []struct {
		name string
		v    float64
	}{
		{"calories", n.Calories},
		{"fat", n.Fat},
		{"carbs", n.Carbs},
		{"protein", n.Protein},
		{"sugars", n.Sugars},
	}
	for _, f := range fields {
		if _, err := validate.Range(f.v, 0, domain.MaxItemNutrient); err != nil {
			return invalid(f.name, err)
		}
	}
	return nil
}

// ResetDailyIntake zeroes the calorie intake regardless of the date.
func (s *NutritionService) ResetDailyIntake(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().ResetCalories(ctx, username)
	})
	if err = classify("reset daily intake", err); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("daily intake reset", slog.String("user", username))
	return nil
}

// ResetMacros zeroes fat, carbs, protein and sugars regardless of the date.
func (s *NutritionService) ResetMacros(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().ResetMacros(ctx, username)
	})
	if err = classify("reset macros", err); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("macros reset", slog.String("user", username))
	return nil
}

// SetCalorieLimit parses raw, stores it and starts the day's ledgers over
// against the new limit. Fractional limits are truncated.
func (s *NutritionService) SetCalorieLimit(ctx context.Context, username, raw string) (int, error) {
	username = strings.TrimSpace(username)

	v, err := validate.Numeric(raw, domain.MinCalorieLimit, domain.MaxCalorieLimit)
	if err != nil {
		return 0, invalid("calorie_limit", err)
	}
	limit := int(v)

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdateCalorieLimit(ctx, username, limit); err != nil {
			return err
		}
		return tx.Users().ResetIntake(ctx, username, s.Rollover.Today())
	})
	if err = classify("set calorie limit", err); err != nil {
		return 0, err
	}

	slogx.FromContext(ctx).Info("calorie limit updated",
		slog.String("user", username),
		slog.Int("limit", limit),
	)
	return limit, nil
}

// RemainingCalories is today's limit minus today's intake. Negative means
// the user is over budget.
func (s *NutritionService) RemainingCalories(ctx context.Context, username string) (float64, error) {
	summary, err := s.Today(ctx, username)
	if err != nil {
		return 0, err
	}
	return summary.Remaining, nil
}

// Today summarises the current day's ledgers.
func (s *NutritionService) Today(ctx context.Context, username string) (domain.DailySummary, error) {
	username = strings.TrimSpace(username)

	var user domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		user, err = s.current(ctx, tx, username)
		return err
	})
	if err = classify("daily summary", err); err != nil {
		return domain.DailySummary{}, err
	}

	return domain.DailySummary{
		Day:          s.Rollover.Today(),
		CalorieLimit: user.CalorieLimit,
		Intake:       user.Intake,
		Remaining:    user.Remaining(),
	}, nil
}
