package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.Save("alice", "hash1", 300))

	rec, err := store.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", rec.Username)
	assert.Equal(t, "hash1", rec.PasswordHash)
	assert.Equal(t, 300, rec.Balance)
}

func TestLoadMissingProfile(t *testing.T) {
	store := testStore(t)

	_, err := store.Load("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveOverwritesWholesale(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.Save("alice", "hash1", 300))
	require.NoError(t, store.Save("alice", "hash2", 150))

	rec, err := store.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, "hash2", rec.PasswordHash)
	assert.Equal(t, 150, rec.Balance)
}

func TestLegacyParseFallbacks(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		wantHash    string
		wantBalance int
	}{
		{"balance only legacy record", "500\n", "", 500},
		{"balance only no newline", "350", "", 350},
		{"password only", "mypassword\n", "mypassword", 500},
		{"empty file", "", "", 500},
		{"blank line only", "\n", "", 500},
		{"bad balance line", "hash1\nnotanumber\n", "hash1", 500},
		{"normal record", "hash1\n275\n", "hash1", 275},
		{"windows line endings", "hash1\r\n275\r\n", "hash1", 275},
		{"negative balance", "hash1\n-25\n", "hash1", -25},
		{"balance with whitespace", "hash1\n  42 \n", "hash1", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testStore(t)
			path := filepath.Join(store.Dir(), "user"+Ext)
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0600))

			rec, err := store.Load("user")
			require.NoError(t, err)
			assert.Equal(t, tt.wantHash, rec.PasswordHash)
			assert.Equal(t, tt.wantBalance, rec.Balance)
		})
	}
}

func TestExists(t *testing.T) {
	store := testStore(t)

	assert.False(t, store.Exists("alice"))
	require.NoError(t, store.Save("alice", "hash1", 500))
	assert.True(t, store.Exists("alice"))
}

func TestDelete(t *testing.T) {
	store := testStore(t)

	removed, err := store.Delete("alice")
	require.NoError(t, err)
	assert.False(t, removed, "deleting a missing profile should report false")

	require.NoError(t, store.Save("alice", "hash1", 500))

	removed, err = store.Delete("alice")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, store.Exists("alice"))
}

func TestList(t *testing.T) {
	store := testStore(t)

	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, store.Save("carol", "h", 500))
	require.NoError(t, store.Save("alice", "h", 500))
	require.NoError(t, store.Save("bob", "h", 500))

	// A stray non-profile file must not show up.
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "notes.txt"), []byte("x"), 0600))

	names, err = store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, names)
}

func TestUsernameValidation(t *testing.T) {
	store := testStore(t)

	for _, bad := range []string{"", "a/b", `a\b`, ".", ".."} {
		t.Run("save "+bad, func(t *testing.T) {
			err := store.Save(bad, "h", 500)
			assert.ErrorIs(t, err, ErrInvalidUsername)
		})
	}

	assert.False(t, ValidUsername("../etc/passwd"))
	assert.True(t, ValidUsername("alice"))
	assert.True(t, ValidUsername("alice.b"))
}

type failingSaver struct {
	failures int
	calls    int
}

func (f *failingSaver) Save(username, passwordHash string, balance int) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("disk full")
	}
	return nil
}
