package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/fitplus/internal/fitplus/domain"
	"github.com/stretchr/testify/require"
)

func TestDayOrdering(t *testing.T) {
	d := domain.DayOf(time.Date(2024, 5, 1, 23, 59, 0, 0, time.Local))
	require.Equal(t, domain.Day("2024-05-01"), d)

	require.True(t, domain.Day("").Before("2024-05-01"))
	require.False(t, domain.Day("").Before(""))
	require.True(t, domain.Day("2024-04-30").Before("2024-05-01"))
	require.False(t, domain.Day("2024-05-01").Before("2024-05-01"))
	require.False(t, domain.Day("2024-05-02").Before("2024-05-01"))

	_, err := domain.ParseDay("2024-13-01")
	require.Error(t, err)
	parsed, err := domain.ParseDay("2024-02-29")
	require.NoError(t, err)
	require.Equal(t, "2024-02-29", parsed.String())
}

func TestRemainingMayGoNegative(t *testing.T) {
	u := domain.User{CalorieLimit: 2000, Intake: domain.Nutrients{Calories: 2150.5}}
	require.InDelta(t, -150.5, u.Remaining(), 1e-9)
}

func TestWeightDelta(t *testing.T) {
	tests := []struct {
		current, ideal, want float64
	}{
		{80, 75, -5},
		{60, 65, 5},
		{70, 70, 0},
	}
	for _, tt := range tests {
		p := domain.User{CurrentWeight: tt.current, IdealWeight: tt.ideal}.Progress()
		require.InDelta(t, tt.want, p.WeightDelta, 1e-9)
	}
}

func TestAchievements(t *testing.T) {
	p := domain.Progress{BenchPressPR: 60, SquatPR: 19.5, DeadliftPR: 140}
	got := map[string]bool{}
	for _, a := range p.Achievements() {
		got[a.Title] = a.Achieved
	}

	require.Len(t, got, 15)
	require.True(t, got["Reach a 60kg bench press"])
	require.False(t, got["Reach a 80kg bench press"])
	require.False(t, got["Reach a 20kg squat"])
	require.True(t, got["Reach a 140kg deadlift"])
}

func TestMetricBounds(t *testing.T) {
	require.Equal(t, float64(domain.MaxWeightKg), domain.MetricCurrentWeight.Max())
	require.Equal(t, float64(domain.MaxWeightKg), domain.MetricIdealWeight.Max())
	require.Equal(t, float64(domain.MaxLiftKg), domain.MetricDeadliftPR.Max())
	require.Equal(t, "squat_pr", domain.MetricSquatPR.String())
	require.Equal(t, "metric(99)", domain.Metric(99).String())
}

func TestCatalogLookups(t *testing.T) {
	foods := domain.FoodCatalog()
	require.Len(t, foods, 25)

	egg, ok := domain.LookupFood("  EGG ")
	require.True(t, ok)
	require.Equal(t, "Egg", egg.Name)
	require.Greater(t, egg.Calories, 0.0)

	_, ok = domain.LookupFood("unicorn")
	require.False(t, ok)

	// Callers get a copy, not the catalog itself.
	foods[0].Name = "changed"
	require.NotEqual(t, "changed", domain.FoodCatalog()[0].Name)

	for _, v := range domain.Workouts("", "") {
		require.Contains(t, domain.WorkoutCategories, v.Category)
		require.Contains(t, domain.WorkoutLevels, v.Level)
	}
	require.NotEmpty(t, domain.Workouts("hiit", "advanced"))
	require.Len(t, domain.Recipes(), 7)
}

func TestNutrientsAdd(t *testing.T) {
	a := domain.Nutrients{Calories: 1, Fat: 2, Carbs: 3, Protein: 4, Sugars: 5}
	require.Equal(t, domain.Nutrients{Calories: 2, Fat: 4, Carbs: 6, Protein: 8, Sugars: 10}, a.Add(a))
}
