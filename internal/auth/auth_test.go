package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardtable/blackjack/internal/console"
	"github.com/cardtable/blackjack/internal/profile"
)

func TestHashPassword(t *testing.T) {
	assert.Equal(t, "", HashPassword(""), "empty password must hash to the empty sentinel")

	h := HashPassword("secret")
	assert.Len(t, h, 64)
	assert.Equal(t, h, HashPassword("secret"), "hashing must be deterministic")
	assert.NotEqual(t, h, HashPassword("Secret"))
}

func TestVerify(t *testing.T) {
	stored := HashPassword("secret")

	assert.True(t, Verify("secret", stored))
	assert.False(t, Verify("wrong", stored))
	assert.False(t, Verify("", stored))
}

func record(password string) *profile.Record {
	return &profile.Record{
		Username:     "alice",
		PasswordHash: HashPassword(password),
		Balance:      500,
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	gate := NewGate(console.NewScript("secret"))

	require.NoError(t, gate.Authenticate(record("secret")))
}

func TestAuthenticateSuccessAfterWrongAttempt(t *testing.T) {
	script := console.NewScript("wrong", "secret")
	gate := NewGate(script)

	require.NoError(t, gate.Authenticate(record("secret")))
	assert.Contains(t, script.Output(), "Attempts remaining: 2")
}

func TestAuthenticateExhaustsAttempts(t *testing.T) {
	rec := record("secret")
	script := console.NewScript("a", "b", "c")
	gate := NewGate(script)

	err := gate.Authenticate(rec)
	assert.ErrorIs(t, err, ErrAttemptsExhausted)

	// The record itself is never touched.
	assert.Equal(t, HashPassword("secret"), rec.PasswordHash)
	assert.Equal(t, 500, rec.Balance)

	// The operator is told the remaining count after each miss but not
	// after the final one.
	assert.Equal(t, 2, strings.Count(script.Output(), "Attempts remaining:"))
}

func TestAuthenticateCancelIsImmediate(t *testing.T) {
	script := console.NewScript("back", "secret")
	gate := NewGate(script)

	err := gate.Authenticate(record("secret"))
	assert.ErrorIs(t, err, ErrCanceled)
	assert.False(t, script.Exhausted(), "cancel must not consume further attempts")
}

func TestAuthenticateCancelIsCaseInsensitive(t *testing.T) {
	gate := NewGate(console.NewScript("BACK"))

	assert.ErrorIs(t, gate.Authenticate(record("secret")), ErrCanceled)
}

func TestAuthenticateEmptyHashRoutesToSetPassword(t *testing.T) {
	gate := NewGate(console.NewScript("anything"))

	rec := &profile.Record{Username: "alice", Balance: 500}
	assert.ErrorIs(t, gate.Authenticate(rec), ErrNoPassword)
}

func TestSetPassword(t *testing.T) {
	gate := NewGate(console.NewScript("secret", "secret"))

	hash, err := gate.SetPassword()
	require.NoError(t, err)
	assert.Equal(t, HashPassword("secret"), hash)
}

func TestSetPasswordRejectsEmptyFirstEntry(t *testing.T) {
	script := console.NewScript("", "  ", "secret", "secret")
	gate := NewGate(script)

	hash, err := gate.SetPassword()
	require.NoError(t, err)
	assert.Equal(t, HashPassword("secret"), hash)
	assert.Contains(t, script.Output(), "Password cannot be empty.")
}

func TestSetPasswordRetriesOnMismatch(t *testing.T) {
	script := console.NewScript("secret", "oops", "secret", "secret")
	gate := NewGate(script)

	hash, err := gate.SetPassword()
	require.NoError(t, err)
	assert.Equal(t, HashPassword("secret"), hash)
	assert.Contains(t, script.Output(), "Passwords do not match.")
}

func TestSetPasswordCancel(t *testing.T) {
	gate := NewGate(console.NewScript("back"))

	_, err := gate.SetPassword()
	assert.ErrorIs(t, err, ErrCanceled)
}

func TestGateWithCustomAttempts(t *testing.T) {
	gate := NewGateWithAttempts(console.NewScript("a"), 1)

	assert.ErrorIs(t, gate.Authenticate(record("secret")), ErrAttemptsExhausted)
}
