// Package auth guards profile access with attempt-limited password
// verification.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/cardtable/blackjack/internal/console"
	"github.com/cardtable/blackjack/internal/profile"
)

var (
	// ErrCanceled indicates the operator typed the cancel sentinel.
	ErrCanceled = errors.New("auth: canceled")

	// ErrAttemptsExhausted indicates every allowed attempt was wrong.
	ErrAttemptsExhausted = errors.New("auth: attempts exhausted")

	// ErrNoPassword indicates the record has no password set; the caller
	// should route to the set-password flow instead of authenticating.
	ErrNoPassword = errors.New("auth: no password set")
)

// CancelSentinel aborts password entry when typed at any prompt.
const CancelSentinel = "back"

// DefaultAttempts is the number of password attempts allowed per login.
const DefaultAttempts = 3

// HashPassword returns the hex SHA-256 digest of the password. The empty
// password maps to the empty string so "no password set" round-trips
// through storage unchanged.
func HashPassword(password string) string {
	if password == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether password hashes to storedHash.
func Verify(password, storedHash string) bool {
	h := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(h), []byte(storedHash)) == 1
}

// Gate prompts for passwords through an injected console. It never
// mutates records; on any failure the caller simply does not load the
// profile.
type Gate struct {
	console  console.Console
	attempts int
}

// NewGate creates a gate with the default attempt limit.
func NewGate(c console.Console) *Gate {
	return &Gate{console: c, attempts: DefaultAttempts}
}

// NewGateWithAttempts creates a gate allowing a custom number of attempts.
func NewGateWithAttempts(c console.Console, attempts int) *Gate {
	return &Gate{console: c, attempts: attempts}
}

func isCancel(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), CancelSentinel)
}

// Authenticate verifies the operator against rec's stored hash. Typing
// the cancel sentinel aborts immediately; each wrong password reports
// how many attempts remain.
func (g *Gate) Authenticate(rec *profile.Record) error {
	if rec.PasswordHash == "" {
		return ErrNoPassword
	}

	for attempt := 1; attempt <= g.attempts; attempt++ {
		input, err := g.console.PromptPassword("Enter password (or type 'back' to cancel): ")
		if err != nil {
			return err
		}
		if isCancel(input) {
			g.console.Println("Authentication canceled.")
			return ErrCanceled
		}
		if Verify(input, rec.PasswordHash) {
			return nil
		}

		remaining := g.attempts - attempt
		if remaining > 0 {
			g.console.Printf("Incorrect password. Attempts remaining: %d\n", remaining)
		}
	}

	g.console.Println("Too many incorrect attempts.")
	return ErrAttemptsExhausted
}

// SetPassword runs the double-entry flow for choosing a new password and
// returns its hash. An empty first entry is rejected and re-prompted; a
// mismatched confirmation restarts; the cancel sentinel aborts with
// ErrCanceled and no side effects.
func (g *Gate) SetPassword() (string, error) {
	for {
		first, err := g.console.PromptPassword("Enter new password (or type 'back' to cancel): ")
		if err != nil {
			return "", err
		}
		if isCancel(first) {
			return "", ErrCanceled
		}
		if strings.TrimSpace(first) == "" {
			g.console.Println("Password cannot be empty.")
			continue
		}

		confirm, err := g.console.PromptPassword("Confirm password: ")
		if err != nil {
			return "", err
		}
		if first != confirm {
			g.console.Println("Passwords do not match. Try again.")
			continue
		}

		return HashPassword(first), nil
	}
}
