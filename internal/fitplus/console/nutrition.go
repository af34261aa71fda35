package console

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/aussiebroadwan/fitplus/internal/fitplus/domain"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/validate"
)

func (s *Shell) food(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("food list|add <name>|custom <cal> <fat> <carbs> <protein> <sugars>|reset")
	}

	switch strings.ToLower(args[0]) {
	case "list":
		s.foodList()
		return nil
	case "add":
		return s.foodAdd(ctx, args[1:])
	case "custom":
		return s.foodCustom(ctx, args[1:])
	case "reset":
		username, err := s.requireSession()
		if err != nil {
			return err
		}
		if err := s.Nutrition.ResetDailyIntake(ctx, username); err != nil {
			return err
		}
		s.println("Daily intake reset successfully")
		return nil
	}
	return usageError("food list|add <name>|custom <cal> <fat> <carbs> <protein> <sugars>|reset")
}

func (s *Shell) foodList() {
	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "Food\tkcal\tFat\tCarbs\tProtein\tSugars")
	for _, item := range s.Catalog.Foods() {
		_, _ = fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%g\n",
			item.Name, item.Calories, item.Fat, item.Carbs, item.Protein, item.Sugars)
	}
	_ = w.Flush()
}

func (s *Shell) foodAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("food add <name>")
	}
	username, err := s.requireSession()
	if err != nil {
		return err
	}

	item, totals, err := s.Nutrition.AddCatalogFood(ctx, username, strings.Join(args, " "))
	if err != nil {
		return err
	}
	s.printf("Food added successfully: %s. Total today: %g kcal\n", item.Name, totals.Calories)
	return nil
}

func (s *Shell) foodCustom(ctx context.Context, args []string) error {
	if len(args) != 5 {
		return usageError("food custom <cal> <fat> <carbs> <protein> <sugars>")
	}
	username, err := s.requireSession()
	if err != nil {
		return err
	}

	var v [5]float64
	for i, raw := range args {
		if v[i], err = validate.Numeric(raw, 0, domain.MaxItemNutrient); err != nil {
			s.println(err.Error())
			return nil
		}
	}

	totals, err := s.Nutrition.AddFoodItem(ctx, username, domain.Nutrients{
		Calories: v[0], Fat: v[1], Carbs: v[2], Protein: v[3], Sugars: v[4],
	})
	if err != nil {
		return err
	}
	s.printf("Food added successfully. Total today: %g kcal\n", totals.Calories)
	return nil
}

func (s *Shell) macros(ctx context.Context, args []string) error {
	if len(args) != 1 || !strings.EqualFold(args[0], "reset") {
		return usageError("macros reset")
	}
	username, err := s.requireSession()
	if err != nil {
		return err
	}
	if err := s.Nutrition.ResetMacros(ctx, username); err != nil {
		return err
	}
	s.println("Macros reset successfully")
	return nil
}

func (s *Shell) limit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("limit <kcal>")
	}
	username, err := s.requireSession()
	if err != nil {
		return err
	}
	limit, err := s.Nutrition.SetCalorieLimit(ctx, username, args[0])
	if err != nil {
		return err
	}
	s.printf("Calorie limit updated successfully to %d kcal\n", limit)
	return nil
}

func (s *Shell) today(ctx context.Context) error {
	username, err := s.requireSession()
	if err != nil {
		return err
	}
	sum, err := s.Nutrition.Today(ctx, username)
	if err != nil {
		return err
	}

	s.printf("Today (%s)\n", sum.Day)
	s.printf("  Limit:     %d kcal\n", sum.CalorieLimit)
	s.printf("  Eaten:     %g kcal\n", sum.Intake.Calories)
	s.printf("  Remaining: %g kcal\n", sum.Remaining)
	s.printf("  Fat %gg, Carbs %gg, Protein %gg, Sugars %gg\n",
		sum.Intake.Fat, sum.Intake.Carbs, sum.Intake.Protein, sum.Intake.Sugars)
	return nil
}
