package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/fitplus/internal/fitplus/domain"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/store"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/validate"
	"github.com/aussiebroadwan/fitplus/pkg/cryptox"
	"github.com/aussiebroadwan/fitplus/pkg/idx"
	"github.com/aussiebroadwan/fitplus/pkg/limitx"
	"github.com/aussiebroadwan/fitplus/pkg/slogx"
)

type AccountService struct {
	Store store.Store

	// Credentials defaults to PlaintextCredentials.
	Credentials Credentials

	// Limiter, when set, throttles Authenticate per username.
	Limiter *limitx.Limiter

	Now func() time.Time
}

func (s *AccountService) credentials() Credentials {
	if s.Credentials == nil {
		return PlaintextCredentials{}
	}
	return s.Credentials
}

func (s *AccountService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Register validates and stores a new user with the default calorie limit
// and empty ledgers.
func (s *AccountService) Register(ctx context.Context, username, password, question, answer string) error {
	log := slogx.FromContext(ctx)

	username, err := validate.Username(username)
	if err != nil {
		return invalid("username", err)
	}
	password, err = validate.Password(strings.TrimSpace(password))
	if err != nil {
		return invalid("password", err)
	}
	question, err = validate.NonEmpty(question)
	if err != nil {
		return invalid("security_question", err)
	}
	answer, err = validate.NonEmpty(answer)
	if err != nil {
		return invalid("security_answer", err)
	}

	sealed, err := s.credentials().Seal(password)
	if err != nil {
		return &StorageError{Op: "register", Cause: err}
	}

	user := domain.User{
		Username:         username,
		Password:         sealed,
		SecurityQuestion: question,
		SecurityAnswer:   answer,
		CalorieLimit:     domain.DefaultCalorieLimit,
		CreatedAt:        s.now(),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, user)
	})
	if err = classify("register", err); err != nil {
		log.Warn("registration failed", slog.String("user", username), slog.Any("error", err))
		return err
	}

	log.Info("user registered", slog.String("user", username))
	return nil
}

// Authenticate checks the trimmed username and password and opens a
// session. Unknown users and wrong passwords are indistinguishable.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (domain.Session, error) {
	log := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if s.Limiter != nil && !s.Limiter.Allow(username) {
		log.Warn("login throttled",
			slog.String("user", username),
			slog.Duration("retry_after", s.Limiter.RetryAfter(username)),
		)
		return domain.Session{}, ErrTooManyAttempts
	}

	var user domain.User
	var found bool
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		user, found, err = tx.Users().FindUser(ctx, username)
		return err
	})
	if err = classify("authenticate", err); err != nil {
		return domain.Session{}, err
	}

	if !found || !s.credentials().Match(password, user.Password) {
		log.Warn("login failed", slog.String("user", username))
		return domain.Session{}, ErrInvalidCredentials
	}

	if s.Limiter != nil {
		s.Limiter.Reset(username)
	}

	now := s.now()
	session := domain.Session{
		ID:        idx.NewAt(now.UTC()),
		Username:  user.Username,
		StartedAt: now,
	}
	log.Info("login successful",
		slog.String("user", user.Username),
		slog.String("session_id", session.ID.String()),
	)
	return session, nil
}

// RecoverPassword checks the security answer and returns a password the
// user can log in with: the stored one in plaintext mode, or a freshly
// issued temporary one otherwise.
func (s *AccountService) RecoverPassword(ctx context.Context, username, answer string) (string, error) {
	log := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	answer = strings.TrimSpace(answer)
	creds := s.credentials()

	var password string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, found, err := tx.Users().FindUser(ctx, username)
		if err != nil {
			return err
		}
		if !found || answer == "" || !constantTimeEqual(answer, user.SecurityAnswer) {
			return ErrInvalidRecovery
		}

		if stored, ok := creds.Reveal(user.Password); ok {
			password = stored
			return nil
		}

		temp, err := cryptox.GeneratePassword()
		if err != nil {
			return err
		}
		sealed, err := creds.Seal(temp)
		if err != nil {
			return err
		}
		if err := tx.Users().UpdatePassword(ctx, username, sealed); err != nil {
			return err
		}
		password = temp
		return nil
	})
	if err = classify("recover password", err); err != nil {
		log.Warn("password recovery failed", slog.String("user", username), slog.Any("error", err))
		return "", err
	}

	log.Info("password recovered", slog.String("user", username))
	return password, nil
}

// SecurityQuestion returns the question to ask before RecoverPassword.
func (s *AccountService) SecurityQuestion(ctx context.Context, username string) (string, error) {
	username = strings.TrimSpace(username)

	var question string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, found, err := tx.Users().FindUser(ctx, username)
		if err != nil {
			return err
		}
		if !found {
			return ErrInvalidRecovery
		}
		question = user.SecurityQuestion
		return nil
	})
	if err = classify("security question", err); err != nil {
		return "", err
	}
	return question, nil
}

// DeleteAccount removes the user outright. There is no undo.
func (s *AccountService) DeleteAccount(ctx context.Context, username string) error {
	log := slogx.FromContext(ctx)
	username = strings.TrimSpace(username)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().DeleteUser(ctx, username)
	})
	if err = classify("delete account", err); err != nil {
		log.Warn("account deletion failed", slog.String("user", username), slog.Any("error", err))
		return err
	}

	log.Info("account deleted", slog.String("user", username))
	return nil
}

// RegisteredUsers counts the accounts in the store.
func (s *AccountService) RegisteredUsers(ctx context.Context) (int, error) {
	n, err := s.Store.Users().CountUsers(ctx)
	return n, classify("count users", err)
}
