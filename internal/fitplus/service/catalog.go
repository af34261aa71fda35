package service

import (
	"strings"

	"github.com/aussiebroadwan/fitplus/internal/fitplus/domain"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/validate"
)

// CatalogService serves the built-in food, workout and recipe lists. It
// needs no store.
type CatalogService struct{}

func (CatalogService) Foods() []domain.FoodItem { return domain.FoodCatalog() }

func (CatalogService) Food(name string) (domain.FoodItem, error) {
	item, ok := domain.LookupFood(name)
	if !ok {
		return domain.FoodItem{}, ErrUnknownFood
	}
	return item, nil
}

// Workouts filters by category and level; empty matches all. Unknown names
// are rejected so a typo is not mistaken for an empty category.
func (CatalogService) Workouts(category, level string) ([]domain.WorkoutVideo, error) {
	var err error
	if strings.TrimSpace(category) != "" {
		if category, err = validate.OneOf(category, domain.WorkoutCategories); err != nil {
			return nil, invalid("category", err)
		}
	}
	if strings.TrimSpace(level) != "" {
		if level, err = validate.OneOf(level, domain.WorkoutLevels); err != nil {
			return nil, invalid("level", err)
		}
	}
	return domain.Workouts(strings.TrimSpace(category), strings.TrimSpace(level)), nil
}

func (CatalogService) Recipes() []domain.Recipe { return domain.Recipes() }
