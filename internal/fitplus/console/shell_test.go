package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/fitplus/internal/fitplus/console"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/service"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

// run feeds script to a fresh shell over an in-memory store and returns
// everything it printed.
func run(t *testing.T, script ...string) string {
	t.Helper()
	out, _ := runShell(t, script...)
	return out
}

func runShell(t *testing.T, script ...string) (string, *console.Shell) {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	now := func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local) }

	var out bytes.Buffer
	shell := console.NewShell(
		&service.AccountService{Store: s, Now: now},
		&service.NutritionService{Store: s, Rollover: &service.RolloverPolicy{Now: now}},
		&service.ProgressService{Store: s},
		strings.NewReader(strings.Join(script, "\n")+"\n"),
		&out,
	)
	require.NoError(t, shell.Run(context.Background()))
	return out.String(), shell
}

var registerAlice = []string{"register", "alice", "secret1", "Pet?", "Rex"}
var loginAlice = []string{"login", "alice", "secret1"}

func script(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestBannerAndQuit(t *testing.T) {
	out := run(t, "help", "quit", "register")
	require.Contains(t, out, "Welcome to FitPlus")
	require.Contains(t, out, "0 registered user(s).")
	require.Contains(t, out, "food custom <cal> <fat> <carbs> <protein> <sugars>")
	require.Contains(t, out, "Goodbye!")
	require.NotContains(t, out, "Registration successful")
}

func TestRegisterAndLogin(t *testing.T) {
	out, shell := runShell(t, script(registerAlice, loginAlice)...)
	require.Contains(t, out, "Registration successful")
	require.Contains(t, out, "Login successful. Welcome, alice!")

	session, ok := shell.Session()
	require.True(t, ok)
	require.Equal(t, "alice", session.Username)
}

func TestRegisterValidationMessages(t *testing.T) {
	out := run(t,
		"register", "al", "secret1", "Q", "A",
		"register", "alice", "123", "Q", "A",
		"register", "alice", "secret1", " ", "A",
	)
	require.Contains(t, out, "Username must be at least 3 characters")
	require.Contains(t, out, "Password must be at least 6 characters")
	require.Contains(t, out, "Input cannot be empty")
}

func TestDuplicateAndBadLogin(t *testing.T) {
	out := run(t, script(
		registerAlice,
		registerAlice,
		[]string{"login", "alice", "wrong!!"},
		[]string{"login", "nobody", "secret1"},
	)...)
	require.Contains(t, out, "Username already exists")
	require.Equal(t, 2, strings.Count(out, "Invalid username or password"))
}

func TestCommandsNeedSession(t *testing.T) {
	out := run(t, "today", "food add egg", "limit 2500", "set bench 50", "progress", "delete", "logout")
	require.Equal(t, 7, strings.Count(out, "Please log in first"))
}

func TestFoodFlow(t *testing.T) {
	out := run(t, script(
		registerAlice,
		loginAlice,
		[]string{
			"food add Egg",
			"food custom 100 1 2 3 4",
			"food custom 100 -1 2 3 4",
			"food add unicorn",
			"today",
			"macros reset",
			"food reset",
			"today",
		},
	)...)
	require.Contains(t, out, "Food added successfully: Egg. Total today: 155 kcal")
	require.Contains(t, out, "Food added successfully. Total today: 255 kcal")
	require.Contains(t, out, "Value must be at least 0")
	require.Contains(t, out, "Food item not found")
	require.Contains(t, out, "Remaining: 1745 kcal")
	require.Contains(t, out, "Macros reset successfully")
	require.Contains(t, out, "Daily intake reset successfully")
	require.Contains(t, out, "Remaining: 2000 kcal")
}

func TestCalorieLimit(t *testing.T) {
	out := run(t, script(
		registerAlice,
		loginAlice,
		[]string{"food custom 700 0 0 0 0", "limit 3000", "today", "limit 6000", "limit abc", "limit"},
	)...)
	require.Contains(t, out, "Calorie limit updated successfully to 3000 kcal")
	require.Contains(t, out, "Remaining: 3000 kcal")
	require.Contains(t, out, "Value must be at most 5000")
	require.Contains(t, out, "Please enter a valid number")
	require.Contains(t, out, "Usage: limit <kcal>")
}

func TestProgressFlow(t *testing.T) {
	out := run(t, script(
		registerAlice,
		loginAlice,
		[]string{"set weight 80", "set ideal 75", "set bench 45", "set squat 1001", "set height 2", "progress"},
	)...)
	require.Contains(t, out, "Current weight updated successfully to 80kg")
	require.Contains(t, out, "Ideal weight updated successfully to 75kg")
	require.Contains(t, out, "Bench Press PR updated successfully to 45kg")
	require.Contains(t, out, "Value must be at most 1000")
	require.Contains(t, out, "Usage: set weight|ideal|bench|squat|deadlift <kg>")
	require.Contains(t, out, "Lose 5kg to reach your goal")
	require.Contains(t, out, "[x] Reach a 40kg bench press")
	require.Contains(t, out, "[ ] Reach a 60kg bench press")
}

func TestRecoverAndDelete(t *testing.T) {
	out, shell := runShell(t, script(
		registerAlice,
		[]string{"recover", "alice", "Rex"},
		[]string{"recover", "alice", "rex"},
		[]string{"question", "alice"},
		loginAlice,
		[]string{"delete", "bob"},
		[]string{"delete", "alice"},
		loginAlice,
	)...)
	require.Contains(t, out, "Pet?: ")
	require.Contains(t, out, "Password retrieved successfully: secret1")
	require.Contains(t, out, "Incorrect username or security answer")
	require.Contains(t, out, "Security question: Pet?")
	require.Contains(t, out, "Account deletion cancelled")
	require.Contains(t, out, "Your account has been deleted successfully")
	require.Contains(t, out, "Invalid username or password")

	_, ok := shell.Session()
	require.False(t, ok)
}

func TestQuestionInlineOrPrompted(t *testing.T) {
	out := run(t, script(
		registerAlice,
		[]string{"question alice"},
		[]string{"question", "ghost"},
		[]string{"question a b"},
	)...)
	require.Equal(t, 1, strings.Count(out, "Security question: Pet?"))
	require.Contains(t, out, "Username: ")
	require.Contains(t, out, "Incorrect username or security answer")
	require.Contains(t, out, "Usage: question [username]")
}

func TestLogout(t *testing.T) {
	out, shell := runShell(t, script(registerAlice, loginAlice, []string{"logout"})...)
	require.Contains(t, out, "User logged out successfully")
	_, ok := shell.Session()
	require.False(t, ok)
}

func TestCatalogCommands(t *testing.T) {
	out := run(t, "food list", "workouts yoga beginner", "workouts pilates", "meals", "dance")
	require.Contains(t, out, "Banana")
	require.Contains(t, out, "Yoga     Beginner")
	require.Contains(t, out, "Choose one of Cardio, Strength, Yoga, HIIT")
	require.Contains(t, out, "https://")
	require.Contains(t, out, `Unknown command "dance"`)
}

func TestStoppedShellIgnoresInput(t *testing.T) {
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	accounts := &service.AccountService{Store: s}
	var out bytes.Buffer
	shell := console.NewShell(
		accounts,
		&service.NutritionService{Store: s, Rollover: &service.RolloverPolicy{}},
		&service.ProgressService{Store: s},
		strings.NewReader(strings.Join(registerAlice, "\n")+"\n"),
		&out,
	)

	shell.Stop()
	require.ErrorIs(t, shell.Run(context.Background()), context.Canceled)
	require.NotContains(t, out.String(), "Registration successful")

	n, err := accounts.RegisteredUsers(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
}
