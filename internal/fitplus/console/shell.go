// Package console is a line-oriented front-end over the fitplus services.
// It reads commands from any io.Reader and writes replies to an io.Writer.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aussiebroadwan/fitplus/internal/fitplus/domain"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/service"
)

var errNotLoggedIn = errors.New("no user logged in")

type Shell struct {
	Accounts  *service.AccountService
	Nutrition *service.NutritionService
	Progress  *service.ProgressService
	Catalog   service.CatalogService

	in  *bufio.Scanner
	out io.Writer

	session *domain.Session
	// sctx carries the session-scoped logger while logged in.
	sctx context.Context

	// mu is held while a command runs; stopped is guarded by it.
	mu      sync.Mutex
	stopped bool
}

func NewShell(accounts *service.AccountService, nutrition *service.NutritionService, progress *service.ProgressService, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		Accounts:  accounts,
		Nutrition: nutrition,
		Progress:  progress,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Session returns the logged in session, if any.
func (s *Shell) Session() (domain.Session, bool) {
	if s.session == nil {
		return domain.Session{}, false
	}
	return *s.session, true
}

// Run prints the banner and executes commands until quit or end of input.
func (s *Shell) Run(ctx context.Context) error {
	s.banner(ctx)

	for {
		s.prompt()
		line, ok := s.readLine()
		if !ok {
			break
		}

		s.mu.Lock()
		if s.stopped {
			s.mu.Unlock()
			return context.Canceled
		}
		quit := s.Exec(ctx, line)
		s.mu.Unlock()

		if quit {
			s.println("Goodbye!")
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return s.in.Err()
}

// Stop waits for the command in progress, if any, and makes Run discard
// every later line. A read blocked on input is not interrupted; Run returns
// once that read completes.
func (s *Shell) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
}

func (s *Shell) banner(ctx context.Context) {
	s.println("Welcome to FitPlus. Type 'help' for commands.")
	if n, err := s.Accounts.RegisteredUsers(ctx); err == nil {
		s.printf("%d registered user(s).\n", n)
	}
}

func (s *Shell) prompt() {
	if s.session != nil {
		s.printf("%s> ", s.session.Username)
		return
	}
	s.printf("fitplus> ")
}

// Exec runs one command line and reports whether the shell should exit.
func (s *Shell) Exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	if s.session != nil {
		ctx = s.sctx
	}

	var err error
	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		s.help()
	case "register":
		err = s.register(ctx)
	case "login":
		err = s.login(ctx)
	case "logout":
		err = s.logout(ctx)
	case "recover":
		err = s.recover(ctx)
	case "question":
		err = s.question(ctx, args)
	case "delete":
		err = s.deleteAccount(ctx)
	case "food":
		err = s.food(ctx, args)
	case "macros":
		err = s.macros(ctx, args)
	case "limit":
		err = s.limit(ctx, args)
	case "today":
		err = s.today(ctx)
	case "set":
		err = s.set(ctx, args)
	case "progress":
		err = s.progress(ctx)
	case "workouts":
		err = s.workouts(args)
	case "meals":
		s.meals()
	default:
		s.printf("Unknown command %q. Type 'help' for commands.\n", cmd)
	}

	if err != nil {
		s.fail(ctx, err)
	}
	return false
}

func (s *Shell) fail(ctx context.Context, err error) {
	if errors.Is(err, errNotLoggedIn) {
		s.println("Please log in first")
		return
	}
	var u usageError
	if errors.As(err, &u) {
		s.printf("Usage: %s\n", string(u))
		return
	}
	if _, msg := service.Outcome(ctx, err); msg != "" {
		s.println(msg)
	}
}

// usageError is a malformed command line; the value is the usage string.
type usageError string

func (u usageError) Error() string { return "usage: " + string(u) }

func (s *Shell) requireSession() (string, error) {
	if s.session == nil {
		return "", errNotLoggedIn
	}
	return s.session.Username, nil
}

// ask prints label and reads the next input line. ok is false at end of
// input.
func (s *Shell) ask(label string) (string, bool) {
	s.printf("%s: ", label)
	return s.readLine()
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) println(msg string) {
	_, _ = fmt.Fprintln(s.out, msg)
}

func (s *Shell) help() {
	s.println(`Account:
  register                 create an account
  login                    log in
  logout                   log out
  recover                  retrieve your password with the security answer
  question [username]      show the security question for an account
  delete                   delete the logged in account
Nutrition:
  food list                show the food catalog
  food add <name>          log one serving of a catalog food
  food custom <cal> <fat> <carbs> <protein> <sugars>
  food reset               reset today's calorie intake
  macros reset             reset today's fat, carbs, protein and sugars
  limit <kcal>             set the daily calorie limit (500-5000)
  today                    show today's intake and remaining calories
Progress:
  set <metric> <value>     metric is weight, ideal, bench, squat or deadlift
  progress                 show weights, PRs and achievements
Catalogs:
  workouts [category [level]]
  meals
Other:
  help, quit`)
}
