// Package profile persists per-user records of password hash and credit
// balance, one file per username.
//
// The on-disk format is two text lines: the password hash (possibly
// empty) and the integer balance. The format grew out of an older
// balance-only file, so Load tolerates every historical shape
// deterministically instead of failing.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cardtable/blackjack/internal/fileutil"
)

const (
	// DefaultBalance is the balance assigned to new profiles and used as
	// the recovery value for malformed records.
	DefaultBalance = 500

	// Ext is the profile file extension.
	Ext = ".profile"
)

var (
	// ErrNotFound is returned by Load when no record exists.
	ErrNotFound = errors.New("profile: not found")

	// ErrInvalidUsername is returned for usernames that cannot serve as a
	// filename stem.
	ErrInvalidUsername = errors.New("profile: invalid username")
)

// Record is one user's persisted profile. An empty PasswordHash means no
// password has been set yet.
type Record struct {
	Username     string
	PasswordHash string
	Balance      int
}

// Store is a file-per-user profile store rooted at a directory. All
// operations are synchronous and whole-file; saves are atomic renames so
// a record is never left half-written.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating profile directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store is rooted at
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(username string) string {
	return filepath.Join(s.dir, username+Ext)
}

// ValidUsername reports whether username can be used as a profile name.
// The username doubles as the filename stem, so path characters are
// rejected.
func ValidUsername(username string) bool {
	if username == "" {
		return false
	}
	return !strings.ContainsAny(username, `/\`) && username != "." && username != ".."
}

// Save writes the record wholesale, overwriting any existing file.
func (s *Store) Save(username, passwordHash string, balance int) error {
	if !ValidUsername(username) {
		return fmt.Errorf("%w: %q", ErrInvalidUsername, username)
	}

	data := fmt.Sprintf("%s\n%d\n", passwordHash, balance)
	if err := fileutil.WriteFileAtomic(s.path(username), []byte(data), 0600); err != nil {
		return fmt.Errorf("saving profile %q: %w", username, err)
	}
	return nil
}

// Load reads a record, applying the tolerant legacy parse:
//
//   - empty file: no password, default balance
//   - one integer line: legacy balance-only record
//   - one non-integer line: password-only record, default balance
//   - two lines with an unparseable balance: default balance
func (s *Store) Load(username string) (*Record, error) {
	if !ValidUsername(username) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUsername, username)
	}

	data, err := os.ReadFile(s.path(username))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, username)
		}
		return nil, fmt.Errorf("loading profile %q: %w", username, err)
	}

	return parseRecord(username, string(data)), nil
}

func parseRecord(username, data string) *Record {
	rec := &Record{Username: username, Balance: DefaultBalance}

	lines := strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n")
	// Trim a trailing blank line from the final newline.
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	switch {
	case len(lines) == 0:
		return rec
	case len(lines) == 1:
		line := strings.TrimSpace(lines[0])
		if n, err := strconv.Atoi(line); err == nil {
			// Legacy record from before the password field existed.
			rec.Balance = n
		} else {
			rec.PasswordHash = line
		}
		return rec
	default:
		rec.PasswordHash = strings.TrimSpace(lines[0])
		if n, err := strconv.Atoi(strings.TrimSpace(lines[1])); err == nil {
			rec.Balance = n
		}
		return rec
	}
}

// Exists reports whether a record exists for username.
func (s *Store) Exists(username string) bool {
	if !ValidUsername(username) {
		return false
	}
	_, err := os.Stat(s.path(username))
	return err == nil
}

// Delete removes a record. It returns true iff a file existed and was
// removed.
func (s *Store) Delete(username string) (bool, error) {
	if !ValidUsername(username) {
		return false, fmt.Errorf("%w: %q", ErrInvalidUsername, username)
	}

	err := os.Remove(s.path(username))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("deleting profile %q: %w", username, err)
	}
	return true, nil
}

// List returns the usernames of all stored profiles, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), Ext))
	}

	sort.Strings(names)
	return names, nil
}
