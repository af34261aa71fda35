package service

import (
	"crypto/subtle"

	"github.com/aussiebroadwan/fitplus/pkg/cryptox"
)

// Credentials decides how passwords are stored and checked.
type Credentials interface {
	// Seal converts a validated password into its stored form.
	Seal(password string) (string, error)
	// Match reports whether password matches the stored form.
	Match(password, stored string) bool
	// Reveal returns the password behind stored when it can be recovered
	// as-is. When it cannot, recovery issues a new one.
	Reveal(stored string) (string, bool)
}

// PlaintextCredentials stores passwords as given. Recovery hands the stored
// password back.
type PlaintextCredentials struct{}

func (PlaintextCredentials) Seal(password string) (string, error) { return password, nil }

func (PlaintextCredentials) Match(password, stored string) bool {
	return constantTimeEqual(password, stored)
}

func (PlaintextCredentials) Reveal(stored string) (string, bool) { return stored, true }

// HashedCredentials stores argon2id hashes. Rows written before the switch
// to hashed mode still log in with their plaintext value.
type HashedCredentials struct {
	Hasher cryptox.Hasher
}

func (c HashedCredentials) Seal(password string) (string, error) {
	return c.Hasher.Hash(password)
}

func (c HashedCredentials) Match(password, stored string) bool {
	if !cryptox.IsHash(stored) {
		return constantTimeEqual(password, stored)
	}
	return c.Hasher.Verify(password, stored) == nil
}

func (HashedCredentials) Reveal(string) (string, bool) { return "", false }

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
