package console

import (
	"context"

	"github.com/aussiebroadwan/fitplus/pkg/slogx"
)

// askAll prompts for each label in turn. It stops early at end of input.
func (s *Shell) askAll(labels ...string) ([]string, bool) {
	answers := make([]string, 0, len(labels))
	for _, label := range labels {
		v, ok := s.ask(label)
		if !ok {
			return nil, false
		}
		answers = append(answers, v)
	}
	return answers, true
}

func (s *Shell) register(ctx context.Context) error {
	in, ok := s.askAll("Username", "Password", "Security question", "Security answer")
	if !ok {
		return nil
	}
	if err := s.Accounts.Register(ctx, in[0], in[1], in[2], in[3]); err != nil {
		return err
	}
	s.println("Registration successful")
	return nil
}

func (s *Shell) login(ctx context.Context) error {
	if s.session != nil {
		s.printf("Already logged in as %s\n", s.session.Username)
		return nil
	}
	in, ok := s.askAll("Username", "Password")
	if !ok {
		return nil
	}

	session, err := s.Accounts.Authenticate(ctx, in[0], in[1])
	if err != nil {
		return err
	}
	s.session = &session
	s.sctx = slogx.WithSession(ctx, session.ID.String(), session.Username)

	s.printf("Login successful. Welcome, %s!\n", session.Username)
	return nil
}

func (s *Shell) logout(ctx context.Context) error {
	if _, err := s.requireSession(); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("user logged out")
	s.session = nil
	s.sctx = nil
	s.println("User logged out successfully")
	return nil
}

// question takes the username inline or prompts for it.
func (s *Shell) question(ctx context.Context, args []string) error {
	var username string
	switch len(args) {
	case 0:
		v, ok := s.ask("Username")
		if !ok {
			return nil
		}
		username = v
	case 1:
		username = args[0]
	default:
		return usageError("question [username]")
	}
	q, err := s.Accounts.SecurityQuestion(ctx, username)
	if err != nil {
		return err
	}
	s.printf("Security question: %s\n", q)
	return nil
}

func (s *Shell) recover(ctx context.Context) error {
	username, ok := s.ask("Username")
	if !ok {
		return nil
	}
	q, err := s.Accounts.SecurityQuestion(ctx, username)
	if err != nil {
		return err
	}
	answer, ok := s.ask(q)
	if !ok {
		return nil
	}

	password, err := s.Accounts.RecoverPassword(ctx, username, answer)
	if err != nil {
		return err
	}
	s.printf("Password retrieved successfully: %s\n", password)
	return nil
}

func (s *Shell) deleteAccount(ctx context.Context) error {
	username, err := s.requireSession()
	if err != nil {
		return err
	}
	confirm, ok := s.ask("Type your username to confirm deletion")
	if !ok {
		return nil
	}
	if confirm != username {
		s.println("Account deletion cancelled")
		return nil
	}

	if err := s.Accounts.DeleteAccount(ctx, username); err != nil {
		return err
	}
	s.session = nil
	s.sctx = nil
	s.println("Your account has been deleted successfully")
	return nil
}
